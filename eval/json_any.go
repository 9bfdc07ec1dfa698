package eval

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/signadot/setting-format/go-setting/encode"
	"github.com/signadot/setting-format/go-setting/ir"
)

var ErrProjection = errors.New("cannot project value")

// ToAny returns n as plain Go values: groups become map[string]any,
// arrays and lists []any and scalars their Go value.
func ToAny(n *ir.Node) any {
	switch n.Type() {
	case ir.GroupType:
		res := make(map[string]any, n.Len())
		for name, m := range n.Members() {
			res[name] = ToAny(m)
		}
		return res
	case ir.ArrayType, ir.ListType:
		res := make([]any, 0, n.Len())
		for _, e := range n.Elements() {
			res = append(res, ToAny(e))
		}
		return res
	case ir.IntType:
		v, _ := n.Int32()
		return int(v)
	default:
		return n.Value().Any()
	}
}

// FromAny builds a detached tree from plain Go values. Map keys are
// sorted. Slices whose elements are scalars of one type become arrays,
// other slices lists.
func FromAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x.Clone(), nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		g := ir.NewGroup()
		for _, k := range keys {
			c, err := FromAny(x[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			if err := g.Attach(k, c); err != nil {
				return nil, err
			}
		}
		return g, nil
	case []any:
		elts := make([]*ir.Node, len(x))
		for i := range x {
			c, err := FromAny(x[i])
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}
			elts[i] = c
		}
		return seq(elts)
	case json.Number:
		return fromNumber(x)
	case int:
		return fromInt(int64(x)), nil
	case int32:
		return ir.FromInt32(x), nil
	case int64:
		return ir.FromInt64(x), nil
	case float64:
		return fromFloat(x)
	case float32:
		return fromFloat(float64(x))
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrProjection, v)
	}
}

func fromInt(i int64) *ir.Node {
	if i < math.MinInt32 || i > math.MaxInt32 {
		return ir.FromInt64(i)
	}
	return ir.FromInt32(int32(i))
}

func fromFloat(f float64) (*ir.Node, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("%w: float %g", ErrProjection, f)
	}
	return ir.FromFloat(f), nil
}

func fromNumber(x json.Number) (*ir.Node, error) {
	if i, err := x.Int64(); err == nil {
		return fromInt(i), nil
	}
	f, err := x.Float64()
	if err != nil {
		return nil, fmt.Errorf("%w: number %s", ErrProjection, x)
	}
	return ir.FromFloat(f), nil
}

// seq makes an array of elts if they are scalars of one type and a list
// otherwise. Mixed Int and Int64 elements widen to Int64.
func seq(elts []*ir.Node) (*ir.Node, error) {
	et := ir.NoneType
	array := true
	for _, e := range elts {
		t := e.Type()
		switch {
		case !t.IsScalar():
			array = false
		case et == ir.NoneType, et == t:
			et = t
		case et.IsInteger() && t.IsInteger():
			et = ir.Int64Type
		default:
			array = false
		}
	}
	var res *ir.Node
	if array && len(elts) > 0 {
		res = ir.NewArray()
		for i, e := range elts {
			v := e.Value()
			if et == ir.Int64Type && v.Type() == ir.IntType {
				v = ir.Int64(int64(v.Any().(int32)))
			}
			if err := res.SetElem(i, v); err != nil {
				return nil, err
			}
		}
		return res, nil
	}
	if len(elts) == 0 {
		return ir.NewArray(), nil
	}
	res = ir.NewList()
	for _, e := range elts {
		if err := res.Attach("", e); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// MarshalJSON encodes n as JSON, keeping group member order.
func MarshalJSON(n *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := writeJSON(buf, n); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, n *ir.Node) error {
	switch n.Type() {
	case ir.GroupType:
		buf.WriteByte('{')
		i := 0
		for name, m := range n.Members() {
			if i > 0 {
				buf.WriteByte(',')
			}
			i++
			d, _ := json.Marshal(name)
			buf.Write(d)
			buf.WriteByte(':')
			if err := writeJSON(buf, m); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	case ir.ArrayType, ir.ListType:
		buf.WriteByte('[')
		for i, e := range n.Elements() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ir.FloatType:
		f, _ := n.Float64()
		if math.IsInf(f, 0) || math.IsNaN(f) {
			return fmt.Errorf("%w: %g at %q", ErrProjection, f, n.Path())
		}
		buf.WriteString(encode.FormatFloat(f, 0, true))
	case ir.NoneType:
		buf.WriteString("null")
	default:
		d, err := json.Marshal(n.Value().Any())
		if err != nil {
			return err
		}
		buf.Write(d)
	}
	return nil
}

// UnmarshalJSON decodes a JSON document into a detached tree, keeping
// object member order. null values are not representable.
func UnmarshalJSON(d []byte) (*ir.Node, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	res, err := decodeJSON(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after JSON value", ErrProjection)
	}
	return res, nil
}

func decodeJSON(dec *json.Decoder) (*ir.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch x := tok.(type) {
	case json.Delim:
		switch x {
		case '{':
			g := ir.NewGroup()
			for dec.More() {
				kt, err := dec.Token()
				if err != nil {
					return nil, err
				}
				k, _ := kt.(string)
				c, err := decodeJSON(dec)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", k, err)
				}
				if err := g.Attach(k, c); err != nil {
					return nil, err
				}
			}
			_, err := dec.Token()
			return g, err
		case '[':
			var elts []*ir.Node
			for dec.More() {
				c, err := decodeJSON(dec)
				if err != nil {
					return nil, fmt.Errorf("[%d]: %w", len(elts), err)
				}
				elts = append(elts, c)
			}
			if _, err := dec.Token(); err != nil {
				return nil, err
			}
			return seq(elts)
		}
		return nil, fmt.Errorf("%w: unexpected %s", ErrProjection, x)
	case nil:
		return nil, fmt.Errorf("%w: null", ErrProjection)
	default:
		return FromAny(x)
	}
}
