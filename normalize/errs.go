package normalize

import "errors"

var (
	// ErrMissingValueKey reports a mapping with a "$type" entry but no
	// "$value" entry.
	ErrMissingValueKey = errors.New(`missing "$value" entry`)

	// ErrInvalidTypeKey reports a "$type" entry whose value is not a
	// string.
	ErrInvalidTypeKey = errors.New(`invalid "$type" entry`)

	// ErrUnknownType reports a "$type" entry naming an unsupported
	// type tag.
	ErrUnknownType = errors.New("unknown type")

	// ErrInvalidNumericLiteral reports a string that could not be
	// parsed as the type a "$type" directive requested.
	ErrInvalidNumericLiteral = errors.New("invalid numeric literal")

	// ErrTypeMismatch reports a "$value" whose shape is incompatible
	// with the requested "$type", or a raw value of a Go type the
	// normalizer has no representation for.
	ErrTypeMismatch = errors.New("type mismatch")
)
