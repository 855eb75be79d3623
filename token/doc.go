// Package token provides the lexical pieces of SNBT shared by the
// encoder, the normalizer and the parser: string quoting rules and
// numeric type-suffix handling.
package token
