package ir

import "fmt"

type Type int

const (
	NoneType Type = iota
	IntType
	Int64Type
	FloatType
	BoolType
	StringType
	ArrayType
	ListType
	GroupType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NoneType:   "None",
		IntType:    "Int",
		Int64Type:  "Int64",
		FloatType:  "Float",
		BoolType:   "Bool",
		StringType: "String",
		ArrayType:  "Array",
		ListType:   "List",
		GroupType:  "Group",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"None":   NoneType,
		"Int":    IntType,
		"Int64":  Int64Type,
		"Float":  FloatType,
		"Bool":   BoolType,
		"String": StringType,
		"Array":  ArrayType,
		"List":   ListType,
		"Group":  GroupType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NoneType,
		IntType,
		Int64Type,
		FloatType,
		BoolType,
		StringType,
		ArrayType,
		ListType,
		GroupType,
	}
}

// IsScalar reports whether t may be an element of an array.
func (t Type) IsScalar() bool {
	switch t {
	case IntType, Int64Type, FloatType, BoolType, StringType:
		return true
	default:
		return false
	}
}

func (t Type) IsAggregate() bool {
	switch t {
	case ArrayType, ListType, GroupType:
		return true
	default:
		return false
	}
}

func (t Type) IsNumber() bool {
	switch t {
	case IntType, Int64Type, FloatType:
		return true
	default:
		return false
	}
}

func (t Type) IsInteger() bool {
	return t == IntType || t == Int64Type
}
