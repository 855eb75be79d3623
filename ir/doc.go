// Package ir holds the typed value model for SNBT documents.
//
// A document is a tree of *Node values. Every node carries a Type tag and
// the payload fields relevant to that type:
//
//   - NullType: no payload
//   - BoolType: Bool
//   - ByteType, ShortType, IntType, LongType: Int
//   - FloatType, DoubleType: Float
//   - StringType, RawType: String
//   - ListType: Values
//   - CompoundType: Fields[i] is the key for Values[i], insertion ordered
//   - ByteArrayType: Bytes
//   - IntArrayType: Ints
//   - LongArrayType: Longs
//
// Nodes are built with the From* constructors and are not synchronized;
// a tree belongs to a single conversion call.
//
// # Related Packages
//
//   - github.com/ProjectUnified/CraftItem/encode - Node to SNBT text
//   - github.com/ProjectUnified/CraftItem/normalize - raw config values to Node
//   - github.com/ProjectUnified/CraftItem/parse - SNBT text to Node
package ir
