package ir

import (
	"maps"
	"slices"
)

type Node struct {
	Type Type

	// String holds the payload of StringType and RawType nodes.
	String string
	Bool   bool
	// Int holds Byte, Short, Int and Long payloads; the Type tag fixes
	// the width.
	Int   int64
	Float float64

	// Fields[i] is the key for Values[i] on CompoundType nodes. On
	// ListType nodes only Values is used.
	Fields []string
	Values []*Node

	Bytes []int8
	Ints  []int32
	Longs []int64
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromByte(v int8) *Node {
	return &Node{Type: ByteType, Int: int64(v)}
}

func FromShort(v int16) *Node {
	return &Node{Type: ShortType, Int: int64(v)}
}

func FromInt(v int32) *Node {
	return &Node{Type: IntType, Int: int64(v)}
}

func FromLong(v int64) *Node {
	return &Node{Type: LongType, Int: v}
}

func FromFloat(v float32) *Node {
	return &Node{Type: FloatType, Float: float64(v)}
}

func FromDouble(v float64) *Node {
	return &Node{Type: DoubleType, Float: v}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromRaw wraps a pre-formatted SNBT fragment. The encoder emits the
// fragment verbatim, with no escaping or re-typing.
func FromRaw(v string) *Node {
	return &Node{Type: RawType, String: v}
}

func FromSlice(vs []*Node) *Node {
	res := &Node{Type: ListType}
	res.Values = make([]*Node, len(vs))
	copy(res.Values, vs)
	return res
}

// FromMap builds a compound from a Go map. Keys are sorted so the result
// is deterministic; use FromKeyVals when insertion order matters.
func FromMap(m map[string]*Node) *Node {
	res := Compound()
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Set(key, m[key])
	}
	return res
}

type KeyVal struct {
	Key string
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := Compound()
	for i := range kvs {
		res.Set(kvs[i].Key, kvs[i].Val)
	}
	return res
}

// Compound returns an empty compound node.
func Compound() *Node {
	return &Node{Type: CompoundType}
}

func FromByteArray(vs []int8) *Node {
	res := &Node{Type: ByteArrayType}
	res.Bytes = make([]int8, len(vs))
	copy(res.Bytes, vs)
	return res
}

func FromIntArray(vs []int32) *Node {
	res := &Node{Type: IntArrayType}
	res.Ints = make([]int32, len(vs))
	copy(res.Ints, vs)
	return res
}

func FromLongArray(vs []int64) *Node {
	res := &Node{Type: LongArrayType}
	res.Longs = make([]int64, len(vs))
	copy(res.Longs, vs)
	return res
}

// Set writes a field on a compound node. A later write to an existing
// key replaces the value in place, keeping the key's original position.
func (y *Node) Set(field string, v *Node) *Node {
	for i := range y.Fields {
		if y.Fields[i] == field {
			y.Values[i] = v
			return y
		}
	}
	y.Fields = append(y.Fields, field)
	y.Values = append(y.Values, v)
	return y
}

// Get returns the value for a compound field, or nil if absent or if
// the node is not a compound.
func (y *Node) Get(field string) *Node {
	if y.Type != CompoundType {
		return nil
	}
	for i := range y.Fields {
		if y.Fields[i] == field {
			return y.Values[i]
		}
	}
	return nil
}

// Append adds an element to a list node.
func (y *Node) Append(v *Node) *Node {
	y.Values = append(y.Values, v)
	return y
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.Type = y.Type
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int = y.Int
	dst.Float = y.Float
	dst.Fields = slices.Clone(y.Fields)
	dst.Bytes = slices.Clone(y.Bytes)
	dst.Ints = slices.Clone(y.Ints)
	dst.Longs = slices.Clone(y.Longs)
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}
