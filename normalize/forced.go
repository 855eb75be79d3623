package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ProjectUnified/CraftItem/debug"
	"github.com/ProjectUnified/CraftItem/ir"
	"github.com/ProjectUnified/CraftItem/token"
)

// Tag enumerates the type names a "$type" directive may carry.
type Tag int

const (
	ByteTag Tag = iota
	BooleanTag
	ShortTag
	IntTag
	LongTag
	FloatTag
	DoubleTag
	StringTag
	RawTag
	ListTag
	CompoundTag
	ByteArrayTag
	IntArrayTag
	LongArrayTag
)

// ParseTag resolves a "$type" name, case-insensitively. The array tags
// accept both the underscore and the joined spelling.
func ParseTag(v string) (Tag, error) {
	t, ok := map[string]Tag{
		"byte":       ByteTag,
		"boolean":    BooleanTag,
		"short":      ShortTag,
		"int":        IntTag,
		"integer":    IntTag,
		"long":       LongTag,
		"float":      FloatTag,
		"double":     DoubleTag,
		"string":     StringTag,
		"raw":        RawTag,
		"list":       ListTag,
		"compound":   CompoundTag,
		"byte_array": ByteArrayTag,
		"bytearray":  ByteArrayTag,
		"int_array":  IntArrayTag,
		"intarray":   IntArrayTag,
		"long_array": LongArrayTag,
		"longarray":  LongArrayTag,
	}[strings.ToLower(v)]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownType, v)
	}
	return t, nil
}

func (t Tag) String() string {
	s, ok := map[Tag]string{
		ByteTag:      "byte",
		BooleanTag:   "boolean",
		ShortTag:     "short",
		IntTag:       "int",
		LongTag:      "long",
		FloatTag:     "float",
		DoubleTag:    "double",
		StringTag:    "string",
		RawTag:       "raw",
		ListTag:      "list",
		CompoundTag:  "compound",
		ByteArrayTag: "byte_array",
		IntArrayTag:  "int_array",
		LongArrayTag: "long_array",
	}[t]
	if ok {
		return s
	}
	return "<unknown tag>"
}

func (o *options) forced(typeRaw, valueRaw any) (*ir.Node, error) {
	ts, ok := typeRaw.(string)
	if !ok {
		return nil, fmt.Errorf(`%w: "$type" is %T, must be a string`, ErrInvalidTypeKey, typeRaw)
	}
	tag, err := ParseTag(ts)
	if err != nil {
		return nil, err
	}
	if debug.Normalize() {
		debug.Logf("normalize: forcing %T to %s\n", valueRaw, tag)
	}
	switch tag {
	case ByteTag:
		n, err := o.integral(valueRaw, 8, token.SuffixByte, "byte")
		if err != nil {
			return nil, err
		}
		return ir.FromByte(int8(n)), nil
	case BooleanTag:
		b, err := o.boolean(valueRaw)
		if err != nil {
			return nil, err
		}
		return ir.FromBool(b), nil
	case ShortTag:
		n, err := o.integral(valueRaw, 16, token.SuffixShort, "short")
		if err != nil {
			return nil, err
		}
		return ir.FromShort(int16(n)), nil
	case IntTag:
		n, err := o.integral(valueRaw, 32, token.SuffixInt, "int")
		if err != nil {
			return nil, err
		}
		return ir.FromInt(int32(n)), nil
	case LongTag:
		n, err := o.integral(valueRaw, 64, token.SuffixLong, "long")
		if err != nil {
			return nil, err
		}
		return ir.FromLong(n), nil
	case FloatTag:
		f, err := o.floating(valueRaw, 32, token.SuffixFloat, "float")
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(float32(f)), nil
	case DoubleTag:
		f, err := o.floating(valueRaw, 64, token.SuffixDouble, "double")
		if err != nil {
			return nil, err
		}
		return ir.FromDouble(f), nil
	case StringTag:
		return ir.FromString(o.translate(stringify(valueRaw))), nil
	case RawTag:
		return ir.FromRaw(o.translate(stringify(valueRaw))), nil
	case ListTag:
		vs, ok := sequence(valueRaw)
		if !ok {
			return nil, fmt.Errorf(`%w: "list" type requires a sequence, got %T`, ErrTypeMismatch, valueRaw)
		}
		return o.list(vs)
	case CompoundTag:
		if _, ok := mapEntries(valueRaw); !ok {
			return nil, fmt.Errorf(`%w: "compound" type requires a mapping, got %T`, ErrTypeMismatch, valueRaw)
		}
		// re-enters the general mapping path so nested directives
		// are honored
		return o.value(valueRaw)
	case ByteArrayTag:
		return o.byteArray(valueRaw)
	case IntArrayTag:
		return o.intArray(valueRaw)
	case LongArrayTag:
		return o.longArray(valueRaw)
	default:
		panic("tag")
	}
}

// integral coerces a native number (truncating) or a string (trimmed,
// translated, optional width suffix stripped) to a signed integer of
// the given width.
func (o *options) integral(value any, bits int, suffix byte, name string) (int64, error) {
	if n, ok := asInt64(value); ok {
		return truncInt(n, bits), nil
	}
	s, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("%w: cannot convert %T to %s", ErrTypeMismatch, value, name)
	}
	str := o.translate(strings.TrimSpace(s))
	str = token.TrimSuffixFold(str, suffix)
	n, err := strconv.ParseInt(str, 10, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot convert %q to %s", ErrInvalidNumericLiteral, s, name)
	}
	return n, nil
}

func (o *options) floating(value any, bits int, suffix byte, name string) (float64, error) {
	if f, ok := asFloat64(value); ok {
		return f, nil
	}
	s, ok := value.(string)
	if !ok {
		return 0, fmt.Errorf("%w: cannot convert %T to %s", ErrTypeMismatch, value, name)
	}
	str := o.translate(strings.TrimSpace(s))
	str = token.TrimSuffixFold(str, suffix)
	f, err := strconv.ParseFloat(str, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: cannot convert %q to %s", ErrInvalidNumericLiteral, s, name)
	}
	return f, nil
}

func (o *options) boolean(value any) (bool, error) {
	if b, ok := value.(bool); ok {
		return b, nil
	}
	if f, ok := asFloat64(value); ok {
		return f != 0, nil
	}
	s, ok := value.(string)
	if !ok {
		return false, fmt.Errorf("%w: cannot convert %T to boolean", ErrTypeMismatch, value)
	}
	str := strings.ToLower(o.translate(strings.TrimSpace(s)))
	switch str {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	n, err := strconv.ParseInt(str, 10, 64)
	if err != nil {
		return false, fmt.Errorf("%w: cannot convert %q to boolean", ErrInvalidNumericLiteral, s)
	}
	return n != 0, nil
}

func (o *options) byteArray(value any) (*ir.Node, error) {
	switch v := value.(type) {
	case []int8:
		return ir.FromByteArray(v), nil
	case []byte:
		return ir.FromByteArray(signedBytes(v)), nil
	}
	vs, ok := sequence(value)
	if !ok {
		return nil, fmt.Errorf(`%w: "byte_array" type requires a byte array or sequence, got %T`, ErrTypeMismatch, value)
	}
	res := make([]int8, len(vs))
	for i, item := range vs {
		n, err := o.integral(item, 8, token.SuffixByte, "byte")
		if err != nil {
			return nil, err
		}
		res[i] = int8(n)
	}
	return ir.FromByteArray(res), nil
}

func (o *options) intArray(value any) (*ir.Node, error) {
	switch v := value.(type) {
	case []int32:
		return ir.FromIntArray(v), nil
	case []int:
		res := make([]int32, len(v))
		for i, n := range v {
			res[i] = int32(n)
		}
		return ir.FromIntArray(res), nil
	}
	vs, ok := sequence(value)
	if !ok {
		return nil, fmt.Errorf(`%w: "int_array" type requires an int array or sequence, got %T`, ErrTypeMismatch, value)
	}
	res := make([]int32, len(vs))
	for i, item := range vs {
		n, err := o.integral(item, 32, token.SuffixInt, "int")
		if err != nil {
			return nil, err
		}
		res[i] = int32(n)
	}
	return ir.FromIntArray(res), nil
}

func (o *options) longArray(value any) (*ir.Node, error) {
	if v, ok := value.([]int64); ok {
		return ir.FromLongArray(v), nil
	}
	vs, ok := sequence(value)
	if !ok {
		return nil, fmt.Errorf(`%w: "long_array" type requires a long array or sequence, got %T`, ErrTypeMismatch, value)
	}
	res := make([]int64, len(vs))
	for i, item := range vs {
		n, err := o.integral(item, 64, token.SuffixLong, "long")
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return ir.FromLongArray(res), nil
}

func sequence(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		res := make([]any, len(v))
		for i, s := range v {
			res[i] = s
		}
		return res, true
	default:
		return nil, false
	}
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	return fmt.Sprint(value)
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	default:
		return 0, false
	}
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		i, ok := asInt64(v)
		if !ok {
			return 0, false
		}
		return float64(i), true
	}
}

func truncInt(n int64, bits int) int64 {
	switch bits {
	case 8:
		return int64(int8(n))
	case 16:
		return int64(int16(n))
	case 32:
		return int64(int32(n))
	default:
		return n
	}
}
