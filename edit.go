package setting

import (
	"fmt"

	"github.com/signadot/setting-format/go-setting/ir"
	"github.com/signadot/setting-format/go-setting/ir/kpath"
)

// Set stores v at path. The parent of path must exist. A scalar of the
// same type as v is updated in place; any other existing setting is
// removed and v is appended to the parent in its place. v must be
// detached. On error the tree is unchanged.
func (c *Config) Set(path string, v *ir.Node) error {
	kp, err := kpath.Parse(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ir.ErrInvalidOperation, err)
	}
	if kp == nil {
		return fmt.Errorf("%w: cannot replace the root setting", ir.ErrInvalidOperation)
	}
	parent := c.root.LookupKPath(kp.Parent())
	if parent == nil {
		return fmt.Errorf("%w: no setting %q", ir.ErrInvalidOperation, kp.Parent().String())
	}
	last := kp.Last()
	if last.Index != nil {
		return setElem(parent, *last.Index, v)
	}
	name := *last.Field
	if cur := parent.Member(name); cur != nil && cur.IsScalar() && cur.Type() == v.Type() {
		return setScalar(cur, v)
	}
	return parent.ReplaceMember(name, v)
}

func setElem(parent *ir.Node, i int, v *ir.Node) error {
	if !v.IsScalar() {
		if i != parent.Len() {
			return fmt.Errorf("%w: only scalars replace elements of %q", ir.ErrInvalidOperation, parent.Path())
		}
		return parent.Attach("", v)
	}
	if err := parent.SetElem(i, v.Value()); err != nil {
		return err
	}
	if v.Type().IsInteger() {
		return parent.At(i).SetFormat(v.Format())
	}
	return nil
}

func setScalar(cur, v *ir.Node) error {
	if err := cur.Set(v.Value()); err != nil {
		return err
	}
	if v.Type().IsInteger() {
		return cur.SetFormat(v.Format())
	}
	return nil
}

// Remove removes the setting at path.
func (c *Config) Remove(path string) error {
	n := c.Lookup(path)
	if n == nil {
		return fmt.Errorf("%w: no setting %q", ir.ErrInvalidOperation, path)
	}
	return n.Remove()
}
