// Package patch applies JSON patches to configuration trees.
//
// [Apply] takes an RFC 6902 patch, [Merge] an RFC 7386 merge patch. The
// tree is projected to JSON, patched with github.com/evanphx/json-patch and
// read back. Settings that survive the patch keep their member order,
// their integer width, float type and display format.
package patch
