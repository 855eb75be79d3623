package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	StringType
	RawType
	ListType
	CompoundType
	ByteArrayType
	IntArrayType
	LongArrayType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		NullType:      "Null",
		BoolType:      "Bool",
		ByteType:      "Byte",
		ShortType:     "Short",
		IntType:       "Int",
		LongType:      "Long",
		FloatType:     "Float",
		DoubleType:    "Double",
		StringType:    "String",
		RawType:       "Raw",
		ListType:      "List",
		CompoundType:  "Compound",
		ByteArrayType: "ByteArray",
		IntArrayType:  "IntArray",
		LongArrayType: "LongArray",
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
		"Null":      NullType,
		"Bool":      BoolType,
		"Byte":      ByteType,
		"Short":     ShortType,
		"Int":       IntType,
		"Long":      LongType,
		"Float":     FloatType,
		"Double":    DoubleType,
		"String":    StringType,
		"Raw":       RawType,
		"List":      ListType,
		"Compound":  CompoundType,
		"ByteArray": ByteArrayType,
		"IntArray":  IntArrayType,
		"LongArray": LongArrayType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		StringType,
		RawType,
		ListType,
		CompoundType,
		ByteArrayType,
		IntArrayType,
		LongArrayType,
	}
}

// IsLeaf reports whether nodes of this type have no child nodes. The
// array types hold machine numbers, not nodes, so they count as leaves.
func (t Type) IsLeaf() bool {
	switch t {
	case ListType, CompoundType:
		return false
	default:
		return true
	}
}

// IsIntegral reports whether the type is one of the fixed-width signed
// integer types carried in Node.Int.
func (t Type) IsIntegral() bool {
	switch t {
	case ByteType, ShortType, IntType, LongType:
		return true
	default:
		return false
	}
}

// IsFloating reports whether the type is carried in Node.Float.
func (t Type) IsFloating() bool {
	return t == FloatType || t == DoubleType
}
