package normalize

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/ProjectUnified/CraftItem/ir"
	"github.com/ProjectUnified/CraftItem/token"

	"github.com/goccy/go-yaml"
)

type Option func(*options)

type options struct {
	translate func(string) string
}

// Translator sets the string translator applied to every string scalar
// before interpretation. The default is the identity.
func Translator(f func(string) string) Option {
	return func(o *options) { o.translate = f }
}

// Entry is an ordered raw compound entry. A []Entry input preserves
// insertion order in the resulting compound, as does yaml.MapSlice;
// plain Go maps are normalized with sorted keys.
type Entry struct {
	Key   string
	Value any
}

// Normalize converts a raw value tree into typed IR. The raw tree may
// contain Go scalars, strings, []any sequences, map[string]any or
// ordered mappings, primitive arrays, already-built *ir.Node values,
// and "$type"/"$value" forced-value directives.
func Normalize(raw any, opts ...Option) (*ir.Node, error) {
	o := &options{translate: func(s string) string { return s }}
	for _, opt := range opts {
		opt(o)
	}
	return o.value(raw)
}

func (o *options) value(raw any) (*ir.Node, error) {
	if entries, ok := mapEntries(raw); ok {
		return o.mapping(entries)
	}
	switch v := raw.(type) {
	case nil:
		return ir.Null(), nil
	case *ir.Node:
		return v, nil
	case bool:
		return ir.FromBool(v), nil
	case int8:
		return ir.FromByte(v), nil
	case int16:
		return ir.FromShort(v), nil
	case int32:
		return ir.FromInt(v), nil
	case int64:
		return ir.FromLong(v), nil
	case int:
		return intNode(int64(v)), nil
	case uint:
		return uintNode(uint64(v)), nil
	case uint32:
		return uintNode(uint64(v)), nil
	case uint64:
		return uintNode(v), nil
	case float32:
		return ir.FromFloat(v), nil
	case float64:
		return ir.FromDouble(v), nil
	case []int8:
		return ir.FromByteArray(v), nil
	case []byte:
		return ir.FromByteArray(signedBytes(v)), nil
	case []int32:
		return ir.FromIntArray(v), nil
	case []int64:
		return ir.FromLongArray(v), nil
	case string:
		return o.stringScalar(v), nil
	case []any:
		return o.list(v)
	case []string:
		res := ir.FromSlice(nil)
		for _, s := range v {
			res.Append(o.stringScalar(s))
		}
		return res, nil
	default:
		// no typed representation; keep the serialization boundary
		// total and let the value render as text
		return ir.FromString(fmt.Sprint(v)), nil
	}
}

func (o *options) list(vs []any) (*ir.Node, error) {
	res := ir.FromSlice(nil)
	for _, item := range vs {
		child, err := o.value(item)
		if err != nil {
			return nil, err
		}
		res.Append(child)
	}
	return res, nil
}

func (o *options) mapping(entries []Entry) (*ir.Node, error) {
	var typeRaw, valueRaw any
	hasType, hasValue := false, false
	for i := range entries {
		switch entries[i].Key {
		case "$type":
			typeRaw, hasType = entries[i].Value, true
		case "$value":
			valueRaw, hasValue = entries[i].Value, true
		}
	}
	if hasType {
		if !hasValue {
			return nil, fmt.Errorf(`%w: mapping with a "$type" entry must also have a "$value" entry`, ErrMissingValueKey)
		}
		return o.forced(typeRaw, valueRaw)
	}
	res := ir.Compound()
	for _, e := range entries {
		child, err := o.value(e.Value)
		if err != nil {
			return nil, err
		}
		res.Set(e.Key, child)
	}
	return res, nil
}

// stringScalar applies the general string path: trim, translate, then
// suffixed numeric literal detection. A string that fails the literal
// check stays a string; types are never inferred from bare numbers
// here, so a value like "123" survives as text.
func (o *options) stringScalar(s string) *ir.Node {
	s = o.translate(strings.TrimSpace(s))
	if body, suffix, ok := token.SplitNumberSuffix(s); ok {
		if n, ok := suffixedLiteral(body, suffix); ok {
			return n
		}
	}
	return ir.FromString(s)
}

func suffixedLiteral(body string, suffix byte) (*ir.Node, bool) {
	switch suffix {
	case token.SuffixByte:
		if n, err := strconv.ParseInt(body, 10, 8); err == nil {
			return ir.FromByte(int8(n)), true
		}
	case token.SuffixShort:
		if n, err := strconv.ParseInt(body, 10, 16); err == nil {
			return ir.FromShort(int16(n)), true
		}
	case token.SuffixInt:
		if n, err := strconv.ParseInt(body, 10, 32); err == nil {
			return ir.FromInt(int32(n)), true
		}
	case token.SuffixLong:
		if n, err := strconv.ParseInt(body, 10, 64); err == nil {
			return ir.FromLong(n), true
		}
	case token.SuffixFloat:
		if f, err := strconv.ParseFloat(body, 32); err == nil {
			return ir.FromFloat(float32(f)), true
		}
	case token.SuffixDouble:
		if f, err := strconv.ParseFloat(body, 64); err == nil {
			return ir.FromDouble(f), true
		}
	}
	return nil, false
}

// mapEntries admits the supported mapping shapes as an ordered entry
// list. Go maps sort their keys for determinism.
func mapEntries(raw any) ([]Entry, bool) {
	switch m := raw.(type) {
	case []Entry:
		return m, true
	case map[string]any:
		entries := make([]Entry, 0, len(m))
		for _, key := range slices.Sorted(maps.Keys(m)) {
			entries = append(entries, Entry{Key: key, Value: m[key]})
		}
		return entries, true
	case yaml.MapSlice:
		entries := make([]Entry, 0, len(m))
		for _, item := range m {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			entries = append(entries, Entry{Key: key, Value: item.Value})
		}
		return entries, true
	default:
		return nil, false
	}
}

func intNode(v int64) *ir.Node {
	if v >= math.MinInt32 && v <= math.MaxInt32 {
		return ir.FromInt(int32(v))
	}
	return ir.FromLong(v)
}

func uintNode(v uint64) *ir.Node {
	if v <= math.MaxInt32 {
		return ir.FromInt(int32(v))
	}
	return ir.FromLong(int64(v))
}

func signedBytes(v []byte) []int8 {
	res := make([]int8, len(v))
	for i, b := range v {
		res[i] = int8(b)
	}
	return res
}
