package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Nodes of different types order by type tag.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case ByteType, ShortType, IntType, LongType:
		return cmp.Compare(a.Int, b.Int)
	case FloatType, DoubleType:
		return cmp.Compare(a.Float, b.Float)
	case StringType, RawType:
		return strings.Compare(a.String, b.String)
	case ListType:
		return compareValues(a, b)
	case CompoundType:
		return compareCompounds(a, b)
	case ByteArrayType:
		return compareSlices(a.Bytes, b.Bytes)
	case IntArrayType:
		return compareSlices(a.Ints, b.Ints)
	case LongArrayType:
		return compareSlices(a.Longs, b.Longs)
	}
	return 0
}

// Equal reports structural equality. Raw nodes are equal when their
// wrapped fragments are identical strings.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}

func compareValues(a, b *Node) int {
	if d := cmp.Compare(len(a.Values), len(b.Values)); d != 0 {
		return d
	}
	for i := range a.Values {
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareCompounds(a, b *Node) int {
	if d := cmp.Compare(len(a.Fields), len(b.Fields)); d != 0 {
		return d
	}
	for i := range a.Fields {
		if d := strings.Compare(a.Fields[i], b.Fields[i]); d != 0 {
			return d
		}
		if d := Compare(a.Values[i], b.Values[i]); d != 0 {
			return d
		}
	}
	return 0
}

func compareSlices[T cmp.Ordered](a, b []T) int {
	if d := cmp.Compare(len(a), len(b)); d != 0 {
		return d
	}
	for i := range a {
		if d := cmp.Compare(a[i], b[i]); d != 0 {
			return d
		}
	}
	return 0
}
