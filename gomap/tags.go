package gomap

import (
	"fmt"
	"reflect"
	"strings"
)

const tagKey = "setting"

// FieldInfo holds field metadata extracted from struct tags
type FieldInfo struct {
	// Index is the index of the field in its struct.
	Index int

	// Name is the setting name.
	Name string

	Omit     bool
	Optional bool
	Required bool
}

// ParseStructTag parses a tag of the form `key1=value1,flag`.
func ParseStructTag(tag string) (map[string]string, error) {
	result := make(map[string]string)
	if tag == "" {
		return result, nil
	}
	for _, part := range strings.Split(tag, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		k, v, _ := strings.Cut(part, "=")
		if _, dup := result[k]; dup {
			return nil, fmt.Errorf("duplicate tag key %q", k)
		}
		result[k] = v
	}
	return result, nil
}

// structFields returns the convertible fields of the struct type t.
func structFields(t reflect.Type) ([]FieldInfo, error) {
	res := make([]FieldInfo, 0, t.NumField())
	for i := range t.NumField() {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}
		tag, err := ParseStructTag(f.Tag.Get(tagKey))
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", f.Name, err)
		}
		info := FieldInfo{Index: i, Name: f.Name}
		for k, v := range tag {
			switch k {
			case "field":
				if v == "" {
					return nil, fmt.Errorf("field %s: empty field name", f.Name)
				}
				info.Name = v
			case "omit":
				info.Omit = true
			case "optional":
				info.Optional = true
			case "required":
				info.Required = true
			default:
				return nil, fmt.Errorf("field %s: unknown tag key %q", f.Name, k)
			}
		}
		if info.Omit {
			continue
		}
		res = append(res, info)
	}
	return res, nil
}

func joinPath(prefix, seg string) string {
	switch {
	case prefix == "":
		return seg
	case strings.HasPrefix(seg, "["):
		return prefix + seg
	default:
		return prefix + "." + seg
	}
}
