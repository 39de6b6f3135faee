package element

import (
	"encoding/binary"
	"io"
	"math"
	"unsafe"
)

// EncodeMany serializes elements back to raw bytes in the given byte order.
// It is the exact inverse of DecodeMany for every type and order.
func EncodeMany[T Value](values []T, order binary.ByteOrder) []byte {
	var zero T
	width := int(unsafe.Sizeof(zero))
	buf := make([]byte, len(values)*width)
	switch src := any(values).(type) {
	case []uint8:
		copy(buf, src)
	case []int8:
		for i, v := range src {
			buf[i] = byte(v)
		}
	case []uint16:
		for i, v := range src {
			order.PutUint16(buf[2*i:], v)
		}
	case []int16:
		for i, v := range src {
			order.PutUint16(buf[2*i:], uint16(v))
		}
	case []uint32:
		for i, v := range src {
			order.PutUint32(buf[4*i:], v)
		}
	case []int32:
		for i, v := range src {
			order.PutUint32(buf[4*i:], uint32(v))
		}
	case []uint64:
		for i, v := range src {
			order.PutUint64(buf[8*i:], v)
		}
	case []int64:
		for i, v := range src {
			order.PutUint64(buf[8*i:], uint64(v))
		}
	case []float32:
		for i, v := range src {
			order.PutUint32(buf[4*i:], math.Float32bits(v))
		}
	case []float64:
		for i, v := range src {
			order.PutUint64(buf[8*i:], math.Float64bits(v))
		}
	}
	return buf
}

// EncodeOne writes a single element to w in the given byte order.
func EncodeOne[T Value](w io.Writer, v T, order binary.ByteOrder) error {
	_, err := w.Write(EncodeMany([]T{v}, order))
	return err
}
