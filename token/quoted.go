package token

import (
	"fmt"
	"unicode"
)

// NeedsQuote reports whether a string value must be quoted in SNBT
// output. A value needs quotes when it is empty, when its first
// character would read as the start of a number, or when it contains a
// character outside the unquoted class (letters, digits, '_', '-',
// '.', '+').
func NeedsQuote(v string) bool {
	if v == "" {
		return true
	}
	switch v[0] {
	case '-', '.', '+':
		return true
	}
	if asciiDigit(v[0]) {
		return true
	}
	return NeedsQuoteKey(v)
}

// NeedsQuoteKey reports whether a compound key must be quoted. Unlike
// NeedsQuote, a leading digit or sign does not force quoting; only the
// character-class check applies.
func NeedsQuoteKey(v string) bool {
	if v == "" {
		return true
	}
	for _, r := range v {
		if !unquotedRune(r) {
			return true
		}
	}
	return false
}

func unquotedRune(r rune) bool {
	switch r {
	case '_', '-', '.', '+':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func asciiDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Quote wraps v in double quotes, backslash-escaping embedded
// backslashes and double quotes.
func Quote(v string) string {
	d := make([]byte, 1, len(v)+2)
	d[0] = '"'
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '"', '\\':
			d = append(d, '\\', v[i])
		default:
			d = append(d, v[i])
		}
	}
	d = append(d, '"')
	return string(d)
}

// Unquote reads a quoted string starting at d[0], which must be '"' or
// '\''. It returns the unescaped contents and the number of bytes
// consumed, including both quote characters.
func Unquote(d []byte) (string, int, error) {
	if len(d) < 2 {
		return "", 0, fmt.Errorf("%w: too short", ErrQuote)
	}
	q := d[0]
	if q != '"' && q != '\'' {
		return "", 0, fmt.Errorf("%w: no opening quote", ErrQuote)
	}
	res := make([]byte, 0, len(d)-2)
	i := 1
	for i < len(d) {
		c := d[i]
		switch c {
		case q:
			return string(res), i + 1, nil
		case '\\':
			if i+1 >= len(d) {
				return "", 0, fmt.Errorf("%w: trailing backslash", ErrQuote)
			}
			e := d[i+1]
			switch e {
			case q, '\\':
				res = append(res, e)
			default:
				return "", 0, fmt.Errorf("%w: bad escape %q", ErrQuote, string(rune(e)))
			}
			i += 2
		default:
			res = append(res, c)
			i++
		}
	}
	return "", 0, fmt.Errorf("%w: unterminated", ErrQuote)
}
