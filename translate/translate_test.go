package translate

import "testing"

func TestVars(t *testing.T) {
	tr := Vars(map[string]string{
		"name": "Excalibur",
		"lvl":  "5",
	})
	cases := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"${name}", "Excalibur"},
		{"${lvl}b", "5b"},
		{"a ${name} of level ${lvl}", "a Excalibur of level 5"},
		{"${unknown}", "${unknown}"},
		{"${unterminated", "${unterminated"},
		{"$notref", "$notref"},
	}
	for _, c := range cases {
		if got := tr(c.in); got != c.want {
			t.Errorf("Vars(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestExpr(t *testing.T) {
	tr := Expr(map[string]any{
		"base":  10,
		"bonus": 2,
	})
	cases := []struct {
		in, want string
	}{
		{"${base + bonus}", "12"},
		{"${base * 2}s", "20s"},
		{"no refs", "no refs"},
		{"${base +}", "${base +}"}, // compile failure leaves the occurrence
	}
	for _, c := range cases {
		if got := tr(c.in); got != c.want {
			t.Errorf("Expr(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIdentity(t *testing.T) {
	if got := Identity()("  as-is "); got != "  as-is " {
		t.Errorf("identity changed input: %q", got)
	}
}
