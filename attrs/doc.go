// Package attrs defines the closed attribute-value variant shared by the
// core property tables and the graphml codec.
//
// What:
//
//   - Kind enumerates the five canonical value kinds: KindInt, KindBool,
//     KindDouble, KindString, KindVectorDouble.
//   - Value is a tagged variant over those kinds; construction is the only
//     way to obtain a valid Value, so dispatch never needs reflection.
//   - Wider source representations collapse at construction: int32/int64
//     both become KindInt, float32/float64 both become KindDouble, and
//     float vectors of either width become KindVectorDouble.
//
// Why:
//
//   - GraphML attribute data is limited to a small closed type set; a sum
//     type with pattern-match dispatch keeps parsing and formatting total
//     over that set and makes unsupported types unrepresentable.
//
// Errors: none — accessors report kind mismatches with a boolean, the
// zero Value carries KindInvalid and is rejected by consumers.
package attrs
