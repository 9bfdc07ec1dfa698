package patch

import (
	"errors"
	"fmt"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/eval"
	"github.com/signadot/setting-format/go-setting/ir"

	jsonpatch "github.com/evanphx/json-patch"
)

var ErrPatch = errors.New("patch")

// Apply applies the RFC 6902 patch p to doc and returns the patched
// tree. doc is not modified.
func Apply(doc *ir.Node, p []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return run(doc, func(d []byte) ([]byte, error) {
		return ops.Apply(d)
	})
}

// ApplyNode is like Apply with the patch given as a tree, typically a
// list of groups with op, path and value members.
func ApplyNode(doc, p *ir.Node) (*ir.Node, error) {
	d, err := eval.MarshalJSON(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return Apply(doc, d)
}

// Merge applies the RFC 7386 merge patch p to doc.
func Merge(doc *ir.Node, p []byte) (*ir.Node, error) {
	return run(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, p)
	})
}

// MergeNode is like Merge with the merge patch given as a tree.
func MergeNode(doc, p *ir.Node) (*ir.Node, error) {
	d, err := eval.MarshalJSON(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return Merge(doc, d)
}

func run(doc *ir.Node, f func([]byte) ([]byte, error)) (*ir.Node, error) {
	d, err := eval.MarshalJSON(doc)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("patch %s\n  -> %s\n", d, out)
	}
	res, err := eval.UnmarshalJSON(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err = rebuild(doc, res)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}
