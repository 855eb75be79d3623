package normalize

import (
	"errors"
	"testing"

	"github.com/ProjectUnified/CraftItem/ir"
)

func forced(typ string, value any) map[string]any {
	return map[string]any{"$type": typ, "$value": value}
}

func TestForcedTypes(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want *ir.Node
	}{
		{"byte from number", forced("byte", 300), ir.FromByte(44)}, // truncates
		{"byte from string", forced("byte", "5"), ir.FromByte(5)},
		{"byte strips suffix", forced("byte", "5b"), ir.FromByte(5)},
		{"byte strips upper suffix", forced("BYTE", "5B"), ir.FromByte(5)},
		{"short", forced("short", "300"), ir.FromShort(300)},
		{"int", forced("int", "70000"), ir.FromInt(70000)},
		{"integer alias", forced("integer", 7), ir.FromInt(7)},
		{"int strips i suffix", forced("int", "42i"), ir.FromInt(42)},
		{"long", forced("long", "9999999999"), ir.FromLong(9999999999)},
		{"float", forced("float", "123.45"), ir.FromFloat(123.45)},
		{"float strips suffix", forced("float", "123.45f"), ir.FromFloat(123.45)},
		{"double", forced("double", "1.5"), ir.FromDouble(1.5)},
		{"double from number", forced("double", 1.5), ir.FromDouble(1.5)},
		{"boolean true", forced("boolean", true), ir.FromBool(true)},
		{"boolean from string", forced("boolean", "TRUE"), ir.FromBool(true)},
		{"boolean from false string", forced("boolean", "false"), ir.FromBool(false)},
		{"boolean from nonzero", forced("boolean", 2), ir.FromBool(true)},
		{"boolean from zero", forced("boolean", 0), ir.FromBool(false)},
		{"boolean from numeric string", forced("boolean", "1"), ir.FromBool(true)},
		{"string from number", forced("string", 42), ir.FromString("42")},
		{"string stays string", forced("string", "123"), ir.FromString("123")},
		{"raw", forced("raw", "{custom:1}"), ir.FromRaw("{custom:1}")},
		{"list", forced("list", []any{"5b", 2}), ir.FromSlice([]*ir.Node{
			ir.FromByte(5), ir.FromInt(2),
		})},
		{"compound", forced("compound", map[string]any{"a": 1}),
			ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})},
		{"byte_array from strings", forced("byte_array", []any{"1", "-2b", 3}),
			ir.FromByteArray([]int8{1, -2, 3})},
		{"bytearray alias", forced("bytearray", []int8{1}), ir.FromByteArray([]int8{1})},
		{"int_array", forced("int_array", []any{1, "2"}), ir.FromIntArray([]int32{1, 2})},
		{"long_array", forced("longarray", []any{"7l"}), ir.FromLongArray([]int64{7})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Normalize(c.raw)
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(c.want, got) {
				t.Errorf("got %#v, want %#v", got, c.want)
			}
		})
	}
}

func TestForcedNestedDirective(t *testing.T) {
	// a compound directive re-enters the mapping path, so nested
	// directives still fire
	raw := forced("compound", map[string]any{
		"inner": forced("byte", "7"),
	})
	got, err := Normalize(raw)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.FromKeyVals([]ir.KeyVal{{Key: "inner", Val: ir.FromByte(7)}})
	if !ir.Equal(want, got) {
		t.Errorf("got %#v, want %#v", got, want)
	}
}

func TestForcedTranslator(t *testing.T) {
	tr := func(s string) string {
		if s == "${count}" {
			return "12"
		}
		return s
	}
	got, err := Normalize(forced("int", "${count}"), Translator(tr))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(ir.FromInt(12), got) {
		t.Errorf("got %#v, want Int(12)", got)
	}
}

func TestForcedErrors(t *testing.T) {
	cases := []struct {
		name string
		raw  any
		want error
	}{
		{"missing value", map[string]any{"$type": "int"}, ErrMissingValueKey},
		{"type not string", map[string]any{"$type": 5, "$value": 1}, ErrInvalidTypeKey},
		{"unknown type", forced("bogus", "1"), ErrUnknownType},
		{"bad numeric literal", forced("int", "twelve"), ErrInvalidNumericLiteral},
		{"bad boolean literal", forced("boolean", "maybe"), ErrInvalidNumericLiteral},
		{"list on scalar", forced("list", "nope"), ErrTypeMismatch},
		{"compound on scalar", forced("compound", 5), ErrTypeMismatch},
		{"byte on list", forced("byte", []any{1}), ErrTypeMismatch},
		{"boolean on list", forced("boolean", []any{}), ErrTypeMismatch},
		{"byte_array on scalar", forced("byte_array", 5), ErrTypeMismatch},
		{"array element error", forced("int_array", []any{"x"}), ErrInvalidNumericLiteral},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Normalize(c.raw)
			if !errors.Is(err, c.want) {
				t.Errorf("got %v, want %v", err, c.want)
			}
		})
	}
}

func TestErrorAbortsWholeCall(t *testing.T) {
	raw := map[string]any{
		"good": "fine",
		"bad":  forced("bogus", 1),
	}
	node, err := Normalize(raw)
	if err == nil {
		t.Fatal("expected error")
	}
	if node != nil {
		t.Errorf("expected no partial tree, got %#v", node)
	}
}

func TestParseTag(t *testing.T) {
	for _, c := range []struct {
		in   string
		want Tag
	}{
		{"byte", ByteTag},
		{"Byte", ByteTag},
		{"INT_ARRAY", IntArrayTag},
		{"intarray", IntArrayTag},
		{"longarray", LongArrayTag},
	} {
		got, err := ParseTag(c.in)
		if err != nil {
			t.Errorf("ParseTag(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseTag(%q) = %v, want %v", c.in, got, c.want)
		}
	}
	if _, err := ParseTag("bogus"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ParseTag(bogus) = %v, want ErrUnknownType", err)
	}
}
