package encode

import (
	"testing"

	"github.com/ProjectUnified/CraftItem/ir"
)

func TestEncodeScalars(t *testing.T) {
	cases := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"bool true", ir.FromBool(true), "true"},
		{"bool false", ir.FromBool(false), "false"},
		{"byte", ir.FromByte(5), "5b"},
		{"negative byte", ir.FromByte(-2), "-2b"},
		{"short", ir.FromShort(300), "300s"},
		{"int", ir.FromInt(42), "42"},
		{"long", ir.FromLong(7), "7L"},
		{"float", ir.FromFloat(1.5), "1.5f"},
		{"double", ir.FromDouble(2.25), "2.25"},
		{"plain string", ir.FromString("hello_world"), "hello_world"},
		{"spaced string", ir.FromString("hi there"), `"hi there"`},
		{"empty string", ir.FromString(""), `""`},
		{"numeric-looking string", ir.FromString("123"), `"123"`},
		{"raw verbatim", ir.FromRaw(`{Enchantments:[{id:"sharpness",lvl:5s}]}`), `{Enchantments:[{id:"sharpness",lvl:5s}]}`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := String(c.node)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestEncodeArrays(t *testing.T) {
	cases := []struct {
		name string
		node *ir.Node
		want string
	}{
		{"byte array", ir.FromByteArray([]int8{1, -2, 3}), "[B;1b,-2b,3b]"},
		{"int array", ir.FromIntArray([]int32{1, 2}), "[I;1,2]"},
		{"long array", ir.FromLongArray([]int64{7}), "[L;7L]"},
		{"empty byte array", ir.FromByteArray(nil), "[B;]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := MustString(c.node); got != c.want {
				t.Errorf("got %s, want %s", got, c.want)
			}
		})
	}
}

func TestEncodeCompoundOrder(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "zeta", Val: ir.FromInt(1)},
		{Key: "alpha", Val: ir.FromString("two")},
		{Key: "mid", Val: ir.FromBool(true)},
	})
	want := `{zeta:1,alpha:two,mid:true}`
	if got := MustString(node); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncodeComponentsToggle(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	if got := MustString(node); got != "{a:1}" {
		t.Errorf("compound form: got %s", got)
	}
	if got := MustString(node, EncodeComponents(true)); got != "[a=1]" {
		t.Errorf("component form: got %s", got)
	}
}

func TestComponentsAppliesTopLevelOnly(t *testing.T) {
	inner := ir.FromKeyVals([]ir.KeyVal{{Key: "b", Val: ir.FromInt(2)}})
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "nested", Val: inner},
		{Key: "list", Val: ir.FromSlice([]*ir.Node{inner})},
	})
	want := `[nested={b:2},list=[{b:2}]]`
	if got := MustString(node, EncodeComponents(true)); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncodeNull(t *testing.T) {
	if got := MustString(nil); got != "{}" {
		t.Errorf("nil: got %s", got)
	}
	if got := MustString(ir.Null()); got != "{}" {
		t.Errorf("null: got %s", got)
	}
	if got := MustString(nil, EncodeComponents(true)); got != "[]" {
		t.Errorf("nil components: got %s", got)
	}
	// nested null renders as an empty string value
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.Null()}})
	if got := MustString(node); got != `{a:""}` {
		t.Errorf("nested null: got %s", got)
	}
}

func TestEncodeKeyQuoting(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: "1abc", Val: ir.FromInt(1)},     // leading digit ok in keys
		{Key: "has space", Val: ir.FromInt(2)},
	})
	want := `{1abc:1,"has space":2}`
	if got := MustString(node); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestEncodeColorsProducesOutput(t *testing.T) {
	cs := NewColors()
	node := ir.FromKeyVals([]ir.KeyVal{{Key: "a", Val: ir.FromInt(1)}})
	plain := MustString(node)
	colored := MustString(node, EncodeColors(cs))
	if len(colored) < len(plain) {
		t.Errorf("colored output shorter than plain: %q vs %q", colored, plain)
	}
}
