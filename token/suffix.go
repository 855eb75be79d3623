package token

// Numeric type-suffix letters as they appear in SNBT literals. The 'i'
// suffix never appears in output but is accepted on input for symmetry
// with the other integer widths.
const (
	SuffixByte   = 'b'
	SuffixShort  = 's'
	SuffixLong   = 'l'
	SuffixFloat  = 'f'
	SuffixDouble = 'd'
	SuffixInt    = 'i'
)

// SplitNumberSuffix splits a trailing type-suffix letter from s. The
// suffix is matched case-insensitively and returned lower-cased. ok is
// false when s is shorter than two characters or does not end in a
// suffix letter; the numeric body is not validated here.
func SplitNumberSuffix(s string) (body string, suffix byte, ok bool) {
	if len(s) < 2 {
		return "", 0, false
	}
	c := lower(s[len(s)-1])
	switch c {
	case SuffixByte, SuffixShort, SuffixLong, SuffixFloat, SuffixDouble, SuffixInt:
		return s[:len(s)-1], c, true
	default:
		return "", 0, false
	}
}

// TrimSuffixFold removes a single trailing occurrence of the given
// suffix letter, matched case-insensitively. Used by forced-type
// coercion, where "12b" with a byte directive means 12.
func TrimSuffixFold(s string, suffix byte) string {
	if len(s) == 0 {
		return s
	}
	if lower(s[len(s)-1]) == suffix {
		return s[:len(s)-1]
	}
	return s
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
