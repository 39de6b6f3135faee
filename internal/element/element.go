package element

import "errors"

// Common errors
var (
	ErrTruncated   = errors.New("buffer length is not a multiple of the element width")
	ErrUnknownType = errors.New("unknown element type")
)

// Type identifies one of the fixed primitive sample encodings a NIfTI
// volume can store. The set is closed; it mirrors the datatype codes the
// header layer recognizes.
type Type uint8

const (
	Invalid Type = iota
	Uint8
	Int8
	Uint16
	Int16
	Uint32
	Int32
	Uint64
	Int64
	Float32
	Float64
)

// Value is the closed set of Go types samples decode to. The constraint is
// exact (no ~): the tagged dispatch in this package type-switches on slices
// of these types, and a defined type would silently miss every case.
type Value interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 |
		uint64 | int64 | float32 | float64
}

// Width returns the element size in bytes, or 0 for an invalid type.
func (t Type) Width() int {
	switch t {
	case Uint8, Int8:
		return 1
	case Uint16, Int16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	case Uint64, Int64, Float64:
		return 8
	}
	return 0
}

func (t Type) String() string {
	switch t {
	case Uint8:
		return "uint8"
	case Int8:
		return "int8"
	case Uint16:
		return "uint16"
	case Int16:
		return "int16"
	case Uint32:
		return "uint32"
	case Int32:
		return "int32"
	case Uint64:
		return "uint64"
	case Int64:
		return "int64"
	case Float32:
		return "float32"
	case Float64:
		return "float64"
	}
	return "invalid"
}

// TypeOf returns the tag for a Go sample type.
func TypeOf[T Value]() Type {
	switch any(*new(T)).(type) {
	case uint8:
		return Uint8
	case int8:
		return Int8
	case uint16:
		return Uint16
	case int16:
		return Int16
	case uint32:
		return Uint32
	case int32:
		return Int32
	case uint64:
		return Uint64
	case int64:
		return Int64
	case float32:
		return Float32
	case float64:
		return Float64
	}
	return Invalid
}
