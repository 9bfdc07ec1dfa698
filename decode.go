package setting

import (
	"fmt"

	"github.com/signadot/setting-format/go-setting/gomap"
	"github.com/signadot/setting-format/go-setting/ir"
)

// Decode stores the setting at path in v, which must be a non-nil
// pointer. The empty path denotes the root group. Struct fields are
// matched by name or by a `setting:"field=name"` tag.
func (c *Config) Decode(path string, v any) error {
	n := c.Lookup(path)
	if n == nil {
		return fmt.Errorf("%w: no setting at %q", ir.ErrInvalidOperation, path)
	}
	return gomap.FromIR(n, v)
}

// Encode replaces the tree of c with the settings of v, a struct or a
// map with string keys. On error c is unchanged.
func (c *Config) Encode(v any) error {
	n, err := gomap.ToIR(v)
	if err != nil {
		return err
	}
	if !n.IsGroup() {
		return fmt.Errorf("%w: %T does not encode to a group", ir.ErrInvalidOperation, v)
	}
	n.SetAutoConvert(c.opts.AutoConvert)
	c.root = n
	return nil
}
