package element

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// hostOrder is the byte order of the running platform, detected once.
var hostOrder = func() binary.ByteOrder {
	var x uint16 = 1
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return binary.LittleEndian
	}
	return binary.BigEndian
}()

// HostOrder returns the byte order of the running platform.
func HostOrder() binary.ByteOrder {
	return hostOrder
}

// DecodeOne reads exactly one element from src, reassembling multi-byte
// values according to order. Byte order is irrelevant for 1-byte elements.
// A short or failing source surfaces as a wrapped read error.
func DecodeOne[T Value](src io.Reader, order binary.ByteOrder) (T, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	var raw [8]byte
	if _, err := io.ReadFull(src, raw[:width]); err != nil {
		return zero, fmt.Errorf("reading %d-byte element: %w", width, err)
	}
	return decodeValue[T](raw[:width], order), nil
}

// DecodeMany decodes an entire raw buffer into a slice of elements.
//
// When the on-disk layout is bit-compatible with the host representation
// (1-byte elements, or matching byte order with a properly aligned buffer)
// the buffer is reinterpreted without per-element copying and the result
// aliases buf; ownership of the buffer passes to the result. Any other
// combination falls back to per-element reconstruction into a fresh slice.
// Both paths produce identical values. The choice costs a single comparison
// per call.
//
// A buffer whose length is not a whole number of elements is rejected with
// ErrTruncated.
func DecodeMany[T Value](buf []byte, order binary.ByteOrder) ([]T, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))
	if len(buf)%width != 0 {
		return nil, fmt.Errorf("%w: %d bytes of %d-byte elements", ErrTruncated, len(buf), width)
	}
	n := len(buf) / width
	if n == 0 {
		return []T{}, nil
	}
	if width == 1 || order == hostOrder {
		if out, ok := reinterpret[T](buf); ok {
			return out, nil
		}
		// Misaligned buffer: reinterpretation would over-read, so fall
		// through to the per-element path.
	}
	out := make([]T, n)
	decodeSlice(out, buf, order)
	return out, nil
}

// reinterpret views a byte buffer as a numeric slice without copying.
// It refuses buffers that do not satisfy the element type's length and
// alignment requirements.
func reinterpret[E constraints.Integer | constraints.Float](b []byte) ([]E, bool) {
	var zero E
	size := int(unsafe.Sizeof(zero))
	if len(b)%size != 0 {
		return nil, false
	}
	p := unsafe.Pointer(unsafe.SliceData(b))
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, false
	}
	return unsafe.Slice((*E)(p), len(b)/size), true
}

// decodeSlice fills dst by reconstructing each element from its bytes.
// The type dispatch happens once, outside the loops. len(buf) must be
// len(dst) times the element width; DecodeMany validates that.
func decodeSlice[T Value](dst []T, buf []byte, order binary.ByteOrder) {
	switch dst := any(dst).(type) {
	case []uint8:
		copy(dst, buf)
	case []int8:
		for i := range dst {
			dst[i] = int8(buf[i])
		}
	case []uint16:
		for i := range dst {
			dst[i] = order.Uint16(buf[2*i:])
		}
	case []int16:
		for i := range dst {
			dst[i] = int16(order.Uint16(buf[2*i:]))
		}
	case []uint32:
		for i := range dst {
			dst[i] = order.Uint32(buf[4*i:])
		}
	case []int32:
		for i := range dst {
			dst[i] = int32(order.Uint32(buf[4*i:]))
		}
	case []uint64:
		for i := range dst {
			dst[i] = order.Uint64(buf[8*i:])
		}
	case []int64:
		for i := range dst {
			dst[i] = int64(order.Uint64(buf[8*i:]))
		}
	case []float32:
		for i := range dst {
			dst[i] = math.Float32frombits(order.Uint32(buf[4*i:]))
		}
	case []float64:
		for i := range dst {
			dst[i] = math.Float64frombits(order.Uint64(buf[8*i:]))
		}
	}
}

// decodeValue reconstructs a single element from exactly width(T) bytes.
func decodeValue[T Value](b []byte, order binary.ByteOrder) T {
	var v T
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[0]
	case *int8:
		*p = int8(b[0])
	case *uint16:
		*p = order.Uint16(b)
	case *int16:
		*p = int16(order.Uint16(b))
	case *uint32:
		*p = order.Uint32(b)
	case *int32:
		*p = int32(order.Uint32(b))
	case *uint64:
		*p = order.Uint64(b)
	case *int64:
		*p = int64(order.Uint64(b))
	case *float32:
		*p = math.Float32frombits(order.Uint32(b))
	case *float64:
		*p = math.Float64frombits(order.Uint64(b))
	}
	return v
}
