// Package translate builds the string translators the normalizer
// applies to every string scalar. A translator is a plain synchronous
// function; it cannot fail, so both constructors leave an occurrence
// untouched when it cannot be resolved.
package translate

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
)

type Func func(string) string

func Identity() Func {
	return func(s string) string { return s }
}

// Vars replaces ${name} occurrences with the named variable. Unknown
// names are left intact.
func Vars(vars map[string]string) Func {
	return func(s string) string {
		return expand(s, func(name string) (string, bool) {
			v, ok := vars[name]
			return v, ok
		})
	}
}

// Expr evaluates ${...} occurrences as expressions against env. An
// occurrence that fails to compile or evaluate is left intact.
func Expr(env map[string]any) Func {
	return func(s string) string {
		return expand(s, func(src string) (string, bool) {
			out, err := expr.Eval(src, env)
			if err != nil {
				return "", false
			}
			return fmt.Sprint(out), true
		})
	}
}

// expand scans s for ${...} occurrences, replacing each via repl. No
// nesting: the occurrence ends at the first '}'.
func expand(s string, repl func(string) (string, bool)) string {
	var b strings.Builder
	i := 0
	for {
		j := strings.Index(s[i:], "${")
		if j < 0 {
			b.WriteString(s[i:])
			return b.String()
		}
		j += i
		k := strings.Index(s[j+2:], "}")
		if k < 0 {
			b.WriteString(s[i:])
			return b.String()
		}
		end := j + 2 + k + 1
		b.WriteString(s[i:j])
		if v, ok := repl(s[j+2 : end-1]); ok {
			b.WriteString(v)
		} else {
			b.WriteString(s[j:end])
		}
		i = end
	}
}
