// Package normalize coerces loosely typed configuration values into
// the typed IR the SNBT encoder expects.
//
// Input trees typically come from YAML or JSON config, where scalars
// often arrive as strings. Normalize resolves three things:
//
//   - forced-value directives: a mapping with reserved keys "$type" and
//     "$value" coerces $value to the named type ("byte", "boolean",
//     "int_array", ...)
//   - suffixed numeric literals: a string like "123.45f" or "5b"
//     becomes the typed number its suffix names
//   - translation: a caller-supplied string-to-string function is
//     applied to every string scalar before interpretation
//
// Normalization is all or nothing: the first invalid node aborts the
// call with an error from the taxonomy in errs.go.
package normalize
