package token

import (
	"errors"
	"testing"
)

func TestNeedsQuote(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"hello_world", false},
		{"hi there", true},
		{"123", true},        // leading digit
		{"-lead", true},      // leading sign
		{".lead", true},
		{"+lead", true},
		{"a-b.c+d_e", false}, // allowed class
		{"minecraft:stone", true},
		{"quote\"inside", true},
		{"tab\there", true},
	}
	for _, c := range cases {
		if got := NeedsQuote(c.in); got != c.want {
			t.Errorf("NeedsQuote(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestNeedsQuoteKey(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"1abc", false}, // leading digit does not force key quoting
		{"-abc", false},
		{"hi there", true},
		{"a:b", true},
	}
	for _, c := range cases {
		if got := NeedsQuoteKey(c.in); got != c.want {
			t.Errorf("NeedsQuoteKey(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestQuote(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", `""`},
		{"hi there", `"hi there"`},
		{`say "hi"`, `"say \"hi\""`},
		{`back\slash`, `"back\\slash"`},
	}
	for _, c := range cases {
		if got := Quote(c.in); got != c.want {
			t.Errorf("Quote(%q) = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestQuoteUnquoteRoundTrip(t *testing.T) {
	for _, in := range []string{
		"",
		"plain",
		`with "quotes" and \ slashes`,
		`trailing\`,
		"spaces and :colons:",
	} {
		q := Quote(in)
		out, n, err := Unquote([]byte(q))
		if err != nil {
			t.Errorf("Unquote(Quote(%q)): %v", in, err)
			continue
		}
		if n != len(q) {
			t.Errorf("Unquote(%s) consumed %d of %d bytes", q, n, len(q))
		}
		if out != in {
			t.Errorf("round trip of %q gave %q", in, out)
		}
	}
}

func TestUnquoteSingle(t *testing.T) {
	out, n, err := Unquote([]byte(`'it\'s'`))
	if err != nil {
		t.Fatal(err)
	}
	if out != "it's" || n != 7 {
		t.Errorf("got %q (%d bytes)", out, n)
	}
}

func TestUnquoteErrors(t *testing.T) {
	for _, in := range []string{``, `"`, `"unterminated`, `"bad \x escape"`, `no quote`} {
		if _, _, err := Unquote([]byte(in)); !errors.Is(err, ErrQuote) {
			t.Errorf("Unquote(%q) = %v, want ErrQuote", in, err)
		}
	}
}
