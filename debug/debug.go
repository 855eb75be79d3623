// Package debug holds env-var gated debug switches for the SNBT
// engine. Set CRAFTITEM_DEBUG_NORMALIZE=1 or CRAFTITEM_DEBUG_PARSE=1
// to get trace output on stderr.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Normalize bool
	Parse     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Normalize = boolEnv("CRAFTITEM_DEBUG_NORMALIZE")
	d.Parse = boolEnv("CRAFTITEM_DEBUG_PARSE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Normalize() bool {
	return d.Normalize
}

func Parse() bool {
	return d.Parse
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
