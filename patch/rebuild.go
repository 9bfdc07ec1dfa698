package patch

import (
	"slices"

	"github.com/signadot/setting-format/go-setting/format"
	"github.com/signadot/setting-format/go-setting/ir"
)

// rebuild returns a copy of res shaped after orig, the setting at the
// same path before patching (nil if there was none).
func rebuild(orig, res *ir.Node) (*ir.Node, error) {
	if orig != nil && orig.Type() != res.Type() && !(orig.IsScalar() && res.IsScalar()) {
		orig = nil
	}
	switch res.Type() {
	case ir.GroupType:
		return rebuildGroup(orig, res)
	case ir.ListType:
		lst := ir.NewList()
		for i, e := range res.Elements() {
			c, err := rebuild(elem(orig, i), e)
			if err != nil {
				return nil, err
			}
			if err := lst.Attach("", c); err != nil {
				return nil, err
			}
		}
		return lst, nil
	case ir.ArrayType:
		return rebuildArray(orig, res)
	default:
		v, f := scalar(orig, res)
		n := ir.FromValue(v)
		if f != format.Default {
			n.SetFormat(f)
		}
		return n, nil
	}
}

func elem(orig *ir.Node, i int) *ir.Node {
	if orig == nil {
		return nil
	}
	return orig.At(i)
}

// rebuildGroup keeps the members of orig in their order, followed by new
// members.
func rebuildGroup(orig, res *ir.Node) (*ir.Node, error) {
	var names []string
	if orig != nil {
		for name := range orig.Members() {
			if res.Member(name) != nil {
				names = append(names, name)
			}
		}
	}
	for name := range res.Members() {
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	g := ir.NewGroup()
	for _, name := range names {
		var om *ir.Node
		if orig != nil {
			om = orig.Member(name)
		}
		c, err := rebuild(om, res.Member(name))
		if err != nil {
			return nil, err
		}
		if err := g.Attach(name, c); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func rebuildArray(orig, res *ir.Node) (*ir.Node, error) {
	vals := make([]ir.Value, 0, res.Len())
	fmts := make([]format.Format, 0, res.Len())
	wide := false
	for i, e := range res.Elements() {
		o := elem(orig, i)
		if o == nil && orig != nil && orig.Len() > 0 {
			o = orig.At(0)
		}
		v, f := scalar(o, e)
		vals = append(vals, v)
		fmts = append(fmts, f)
		wide = wide || v.Type() == ir.Int64Type
	}
	arr := ir.NewArray()
	for i, v := range vals {
		if wide && v.Type() == ir.IntType {
			v = ir.Int64(int64(v.Any().(int32)))
		}
		if err := arr.SetElem(i, v); err != nil {
			return nil, err
		}
		if fmts[i] != format.Default {
			arr.At(i).SetFormat(fmts[i])
		}
	}
	return arr, nil
}

// scalar returns the value of res in the type and format of orig where
// the JSON projection lost them.
func scalar(orig, res *ir.Node) (ir.Value, format.Format) {
	v := res.Value()
	if orig == nil || !orig.IsScalar() {
		return v, format.Default
	}
	switch {
	case orig.Type() == ir.Int64Type && v.Type() == ir.IntType:
		v = ir.Int64(int64(v.Any().(int32)))
	case orig.Type() == ir.FloatType && v.Type().IsInteger():
		switch x := v.Any().(type) {
		case int32:
			v = ir.Float64(float64(x))
		case int64:
			v = ir.Float64(float64(x))
		}
	}
	if v.Type().IsInteger() && orig.Type().IsInteger() {
		return v, orig.Format()
	}
	return v, format.Default
}
