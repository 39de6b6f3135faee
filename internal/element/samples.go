package element

import (
	"encoding/binary"
	"fmt"
)

// Samples is a decoded sample sequence paired with its element type tag.
// It is the runtime-dispatch face of the generic codec: the volume layer
// builds one from the header's datatype code and from then on calls it
// without knowing the element type. The zero value is not usable; build
// one with Decode or FromSlice.
type Samples struct {
	typ  Type
	data any
}

// Decode decodes an entire raw buffer as elements of the tagged type.
// See DecodeMany for the buffer ownership and error contract.
func Decode(t Type, buf []byte, order binary.ByteOrder) (*Samples, error) {
	var (
		data any
		err  error
	)
	switch t {
	case Uint8:
		data, err = DecodeMany[uint8](buf, order)
	case Int8:
		data, err = DecodeMany[int8](buf, order)
	case Uint16:
		data, err = DecodeMany[uint16](buf, order)
	case Int16:
		data, err = DecodeMany[int16](buf, order)
	case Uint32:
		data, err = DecodeMany[uint32](buf, order)
	case Int32:
		data, err = DecodeMany[int32](buf, order)
	case Uint64:
		data, err = DecodeMany[uint64](buf, order)
	case Int64:
		data, err = DecodeMany[int64](buf, order)
	case Float32:
		data, err = DecodeMany[float32](buf, order)
	case Float64:
		data, err = DecodeMany[float64](buf, order)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, t)
	}
	if err != nil {
		return nil, err
	}
	return &Samples{typ: t, data: data}, nil
}

// FromSlice wraps an existing typed slice without copying it.
func FromSlice[T Value](values []T) *Samples {
	return &Samples{typ: TypeOf[T](), data: values}
}

// Type returns the element type tag.
func (s *Samples) Type() Type {
	return s.typ
}

// Data returns the underlying typed slice ([]uint8, []int16, ...).
func (s *Samples) Data() any {
	return s.data
}

// Len returns the number of samples.
func (s *Samples) Len() int {
	switch v := s.data.(type) {
	case []uint8:
		return len(v)
	case []int8:
		return len(v)
	case []uint16:
		return len(v)
	case []int16:
		return len(v)
	case []uint32:
		return len(v)
	case []int32:
		return len(v)
	case []uint64:
		return len(v)
	case []int64:
		return len(v)
	case []float32:
		return len(v)
	case []float64:
		return len(v)
	}
	return 0
}

// Rescale applies the affine transform in place, using the strategy bound
// to the element type.
func (s *Samples) Rescale(slope, intercept float32) {
	switch v := s.data.(type) {
	case []uint8:
		TransformManyInPlace(v, slope, intercept)
	case []int8:
		TransformManyInPlace(v, slope, intercept)
	case []uint16:
		TransformManyInPlace(v, slope, intercept)
	case []int16:
		TransformManyInPlace(v, slope, intercept)
	case []uint32:
		TransformManyInPlace(v, slope, intercept)
	case []int32:
		TransformManyInPlace(v, slope, intercept)
	case []uint64:
		TransformManyInPlace(v, slope, intercept)
	case []int64:
		TransformManyInPlace(v, slope, intercept)
	case []float32:
		TransformManyInPlace(v, slope, intercept)
	case []float64:
		TransformManyInPlace(v, slope, intercept)
	}
}

// Rescaled returns a transformed copy, leaving the receiver untouched.
func (s *Samples) Rescaled(slope, intercept float32) *Samples {
	out := &Samples{typ: s.typ}
	switch v := s.data.(type) {
	case []uint8:
		out.data = TransformMany(v, slope, intercept)
	case []int8:
		out.data = TransformMany(v, slope, intercept)
	case []uint16:
		out.data = TransformMany(v, slope, intercept)
	case []int16:
		out.data = TransformMany(v, slope, intercept)
	case []uint32:
		out.data = TransformMany(v, slope, intercept)
	case []int32:
		out.data = TransformMany(v, slope, intercept)
	case []uint64:
		out.data = TransformMany(v, slope, intercept)
	case []int64:
		out.data = TransformMany(v, slope, intercept)
	case []float32:
		out.data = TransformMany(v, slope, intercept)
	case []float64:
		out.data = TransformMany(v, slope, intercept)
	}
	return out
}

// Encode serializes the samples in the given byte order. It is the inverse
// of Decode.
func (s *Samples) Encode(order binary.ByteOrder) []byte {
	switch v := s.data.(type) {
	case []uint8:
		return EncodeMany(v, order)
	case []int8:
		return EncodeMany(v, order)
	case []uint16:
		return EncodeMany(v, order)
	case []int16:
		return EncodeMany(v, order)
	case []uint32:
		return EncodeMany(v, order)
	case []int32:
		return EncodeMany(v, order)
	case []uint64:
		return EncodeMany(v, order)
	case []int64:
		return EncodeMany(v, order)
	case []float32:
		return EncodeMany(v, order)
	case []float64:
		return EncodeMany(v, order)
	}
	return nil
}

// Float64s returns the samples converted to float64. This is a plain
// numeric conversion, not a rescale.
func (s *Samples) Float64s() []float64 {
	switch v := s.data.(type) {
	case []uint8:
		return convertSlice[uint8, float64](v)
	case []int8:
		return convertSlice[int8, float64](v)
	case []uint16:
		return convertSlice[uint16, float64](v)
	case []int16:
		return convertSlice[int16, float64](v)
	case []uint32:
		return convertSlice[uint32, float64](v)
	case []int32:
		return convertSlice[int32, float64](v)
	case []uint64:
		return convertSlice[uint64, float64](v)
	case []int64:
		return convertSlice[int64, float64](v)
	case []float32:
		return convertSlice[float32, float64](v)
	case []float64:
		out := make([]float64, len(v))
		copy(out, v)
		return out
	}
	return nil
}

// Float32s returns the samples converted to float32. This is a plain
// numeric conversion, not a rescale.
func (s *Samples) Float32s() []float32 {
	switch v := s.data.(type) {
	case []uint8:
		return convertSlice[uint8, float32](v)
	case []int8:
		return convertSlice[int8, float32](v)
	case []uint16:
		return convertSlice[uint16, float32](v)
	case []int16:
		return convertSlice[int16, float32](v)
	case []uint32:
		return convertSlice[uint32, float32](v)
	case []int32:
		return convertSlice[int32, float32](v)
	case []uint64:
		return convertSlice[uint64, float32](v)
	case []int64:
		return convertSlice[int64, float32](v)
	case []float32:
		out := make([]float32, len(v))
		copy(out, v)
		return out
	case []float64:
		return convertSlice[float64, float32](v)
	}
	return nil
}

func convertSlice[F, T Value](src []F) []T {
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = T(v)
	}
	return out
}
