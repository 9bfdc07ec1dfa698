package setting

import (
	"fmt"

	"github.com/signadot/setting-format/go-setting/debug"
	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/patch"
)

// Patch applies the patch p, given as a setting tree, to doc. A list is
// an RFC 6902 patch, a list of groups with op, path and value members.
// A group is an RFC 7386 merge patch. doc is not modified.
func Patch(doc, p *ir.Node) (*ir.Node, error) {
	if debug.Patch() {
		debug.Logf("patch %s with\n%s", doc.Path(), debug.Tree{Node: p})
	}
	switch p.Type() {
	case ir.ListType:
		return patch.ApplyNode(doc, p)
	case ir.GroupType:
		return patch.MergeNode(doc, p)
	default:
		return nil, fmt.Errorf("%w: a patch is a list or a group, not %s", ir.ErrInvalidOperation, p.Type())
	}
}

// Patch applies p to the tree of c, see [Patch]. On error c is
// unchanged.
func (c *Config) Patch(p *ir.Node) error {
	res, err := Patch(c.root, p)
	if err != nil {
		return err
	}
	return c.replace(res)
}

// PatchJSON applies an RFC 6902 patch given as JSON.
func (c *Config) PatchJSON(p []byte) error {
	res, err := patch.Apply(c.root, p)
	if err != nil {
		return err
	}
	return c.replace(res)
}

// MergeJSON applies an RFC 7386 merge patch given as JSON.
func (c *Config) MergeJSON(p []byte) error {
	res, err := patch.Merge(c.root, p)
	if err != nil {
		return err
	}
	return c.replace(res)
}

func (c *Config) replace(root *ir.Node) error {
	if !root.IsGroup() {
		return fmt.Errorf("%w: patch result is a %s, not a group", ir.ErrInvalidOperation, root.Type())
	}
	root.SetAutoConvert(c.opts.AutoConvert)
	c.root = root
	return nil
}
