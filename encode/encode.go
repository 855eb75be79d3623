package encode

import (
	"io"
	"strconv"

	"github.com/ProjectUnified/CraftItem/ir"
	"github.com/ProjectUnified/CraftItem/token"
)

type EncState struct {
	components bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node as SNBT text. A nil or null node encodes to "{}",
// or to "[]" when the component form is selected. The component form
// flag is honored only for the node passed here; nested compounds are
// always written in brace form.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil || node.Type == ir.NullType {
		if es.components {
			return writeString(w, "[]")
		}
		return writeString(w, "{}")
	}
	if node.Type == ir.CompoundType {
		return encodeCompound(node, w, es, es.components)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		// a null leaf inside a tree has no SNBT spelling; write an
		// empty string so the document stays well formed
		return writeValue(w, es, ir.StringType, `""`)
	case ir.BoolType:
		return writeValue(w, es, ir.BoolType, strconv.FormatBool(node.Bool))
	case ir.ByteType:
		return writeValue(w, es, ir.ByteType, strconv.FormatInt(node.Int, 10)+"b")
	case ir.ShortType:
		return writeValue(w, es, ir.ShortType, strconv.FormatInt(node.Int, 10)+"s")
	case ir.IntType:
		return writeValue(w, es, ir.IntType, strconv.FormatInt(node.Int, 10))
	case ir.LongType:
		return writeValue(w, es, ir.LongType, strconv.FormatInt(node.Int, 10)+"L")
	case ir.FloatType:
		return writeValue(w, es, ir.FloatType, strconv.FormatFloat(node.Float, 'g', -1, 32)+"f")
	case ir.DoubleType:
		return writeValue(w, es, ir.DoubleType, strconv.FormatFloat(node.Float, 'g', -1, 64))
	case ir.RawType:
		// pre-formatted fragment, emitted verbatim
		return writeString(w, node.String)
	case ir.StringType:
		return writeValue(w, es, ir.StringType, quoteString(node.String))
	case ir.ListType:
		return encodeList(node, w, es)
	case ir.CompoundType:
		return encodeCompound(node, w, es, false)
	case ir.ByteArrayType:
		return encodeByteArray(node, w, es)
	case ir.IntArrayType:
		return encodeIntArray(node, w, es)
	case ir.LongArrayType:
		return encodeLongArray(node, w, es)
	default:
		panic("type")
	}
}

func encodeCompound(node *ir.Node, w io.Writer, es *EncState, components bool) error {
	open, sep, closing := "{", ":", "}"
	if components {
		open, sep, closing = "[", "=", "]"
	}
	if err := writeSep(w, es, open); err != nil {
		return err
	}
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeField(w, es, quoteKey(field)); err != nil {
			return err
		}
		if err := writeSep(w, es, sep); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, closing)
}

func encodeList(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, "["); err != nil {
		return err
	}
	for i, v := range node.Values {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
	}
	return writeSep(w, es, "]")
}

func encodeByteArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, "[B;"); err != nil {
		return err
	}
	for i, v := range node.Bytes {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeValue(w, es, ir.ByteType, strconv.FormatInt(int64(v), 10)+"b"); err != nil {
			return err
		}
	}
	return writeSep(w, es, "]")
}

func encodeIntArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, "[I;"); err != nil {
		return err
	}
	for i, v := range node.Ints {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeValue(w, es, ir.IntType, strconv.FormatInt(int64(v), 10)); err != nil {
			return err
		}
	}
	return writeSep(w, es, "]")
}

func encodeLongArray(node *ir.Node, w io.Writer, es *EncState) error {
	if err := writeSep(w, es, "[L;"); err != nil {
		return err
	}
	for i, v := range node.Longs {
		if i > 0 {
			if err := writeSep(w, es, ","); err != nil {
				return err
			}
		}
		if err := writeValue(w, es, ir.LongType, strconv.FormatInt(v, 10)+"L"); err != nil {
			return err
		}
	}
	return writeSep(w, es, "]")
}

// String quoting helper

func quoteString(v string) string {
	if token.NeedsQuote(v) {
		return token.Quote(v)
	}
	return v
}

func quoteKey(v string) string {
	if token.NeedsQuoteKey(v) {
		return token.Quote(v)
	}
	return v
}

// Helper functions for writing

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func writeValue(w io.Writer, es *EncState, t ir.Type, s string) error {
	if es.Color != nil {
		s = es.Color(t, ValueColor, s)
	}
	return writeString(w, s)
}

func writeField(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.CompoundType, FieldColor, s)
	}
	return writeString(w, s)
}

func writeSep(w io.Writer, es *EncState, s string) error {
	if es.Color != nil {
		s = es.Color(ir.CompoundType, SepColor, s)
	}
	return writeString(w, s)
}
