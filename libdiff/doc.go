// Package libdiff computes structural differences between two setting
// trees.
//
// # Usage
//
//	changes := libdiff.Diff(oldRoot, newRoot)
//	for _, c := range changes {
//		fmt.Println(c)
//	}
//
// Group members are aligned by name and array or list elements by their
// written form, using the diff algorithm of
// github.com/sergi/go-diff/diffmatchpatch. Members and elements present
// on both sides are compared recursively; a deleted element followed by
// an inserted one at the same position is reported as a replacement.
//
// # Related Packages
//
//   - github.com/signadot/setting-format/go-setting/ir - setting trees
//   - github.com/signadot/setting-format/go-setting/patch - JSON patches
package libdiff
