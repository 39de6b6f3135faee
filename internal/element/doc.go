// Package element implements the typed decoding and rescaling core for
// NIfTI voxel data.
//
// A NIfTI volume stores its samples as a flat byte buffer of one of ten
// fixed-width numeric encodings, in either byte order, optionally with an
// affine rescale (scl_slope, scl_inter) that recovers physical units. This
// package turns those bytes into correctly typed Go slices and applies the
// rescale with type-appropriate precision.
//
// # Two dispatch faces
//
// The ten element types exist both as a runtime tag and as a compile-time
// constraint:
//
//   - [Type] tags an element encoding derived from the header's datatype
//     code; [Decode] and [Samples] dispatch on it once, at the type boundary.
//   - [Value] is the generic constraint listing exactly the ten Go types;
//     [DecodeOne], [DecodeMany], [Transform] and friends are instantiated
//     per type with no type inspection inside their loops.
//
// # Decoding
//
// [DecodeMany] picks between two strategies resolved by a single comparison:
// a zero-copy reinterpretation of the buffer when the on-disk layout is
// bit-compatible with the host (1-byte elements, or matching byte order and
// a properly aligned buffer), and per-element reconstruction otherwise.
// Buffers whose length is not a whole number of elements are rejected with
// [ErrTruncated]; nothing is ever silently padded or truncated.
//
// # Rescaling
//
// value' = value*slope + intercept runs in a working precision bound to the
// element type when the transformer is built, not per element:
//
//	Strategy     | Types                        | Working precision
//	-------------|------------------------------|------------------
//	via-float32  | u8, i8, u16, i16, u32, i32   | float32
//	via-float64  | u64, i64                     | float64
//	via-native   | f32, f64                     | the element's own type
//
// A slope of exactly 0 is the format's "no rescale" convention and returns
// the value bit-for-bit unchanged. Conversion back to an integer element
// truncates toward zero, saturates at the type's range, and maps NaN to
// zero; Go's own out-of-range float-to-int conversion is
// implementation-defined, so the clamp is explicit.
//
// Every operation here is pure and reentrant. Callers may shard bulk calls
// across goroutines; TransformManyInPlace needs exclusive access to its
// slice for the duration of the call.
package element
