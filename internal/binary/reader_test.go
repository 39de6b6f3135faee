package binary

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

func TestReaderReadUint8(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x42, 0xFF}), binary.LittleEndian)

	v, err := r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02x", v)
	}

	v, err = r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0xFF {
		t.Errorf("expected 0xFF, got 0x%02x", v)
	}
}

func TestReaderReadUint16(t *testing.T) {
	tests := []struct {
		name     string
		order    binary.ByteOrder
		data     []byte
		expected uint16
	}{
		{"little-endian", binary.LittleEndian, []byte{0x02, 0x01}, 0x0102},
		{"big-endian", binary.BigEndian, []byte{0x02, 0x01}, 0x0201},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(bytes.NewReader(tt.data), tt.order)
			v, err := r.ReadUint16()
			if err != nil {
				t.Fatalf("ReadUint16 failed: %v", err)
			}
			if v != tt.expected {
				t.Errorf("expected 0x%04x, got 0x%04x", tt.expected, v)
			}
		})
	}
}

func TestReaderReadUint32(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, uint32(0x12345678))

	r := NewReader(&buf, binary.LittleEndian)
	v, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32 failed: %v", err)
	}
	if v != 0x12345678 {
		t.Errorf("expected 0x12345678, got 0x%08x", v)
	}
}

func TestReaderReadUint64(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, uint64(0x123456789ABCDEF0))

	r := NewReader(&buf, binary.BigEndian)
	v, err := r.ReadUint64()
	if err != nil {
		t.Fatalf("ReadUint64 failed: %v", err)
	}
	if v != 0x123456789ABCDEF0 {
		t.Errorf("expected 0x123456789ABCDEF0, got 0x%016x", v)
	}
}

func TestReaderReadInt16(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0xFF, 0xFF}), binary.LittleEndian)
	v, err := r.ReadInt16()
	if err != nil {
		t.Fatalf("ReadInt16 failed: %v", err)
	}
	if v != -1 {
		t.Errorf("expected -1, got %d", v)
	}
}

func TestReaderReadFloat32(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.LittleEndian, math.Float32bits(3.5))

	r := NewReader(&buf, binary.LittleEndian)
	v, err := r.ReadFloat32()
	if err != nil {
		t.Fatalf("ReadFloat32 failed: %v", err)
	}
	if v != 3.5 {
		t.Errorf("expected 3.5, got %v", v)
	}
}

func TestReaderReadFloat64(t *testing.T) {
	var buf bytes.Buffer
	binary.Write(&buf, binary.BigEndian, math.Float64bits(-0.125))

	r := NewReader(&buf, binary.BigEndian)
	v, err := r.ReadFloat64()
	if err != nil {
		t.Fatalf("ReadFloat64 failed: %v", err)
	}
	if v != -0.125 {
		t.Errorf("expected -0.125, got %v", v)
	}
}

func TestReaderShortRead(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01}), binary.LittleEndian)
	_, err := r.ReadUint32()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestReaderSkip(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00, 0x01, 0x02, 0x03}), binary.LittleEndian)

	if err := r.Skip(2); err != nil {
		t.Fatalf("Skip failed: %v", err)
	}
	v, err := r.ReadUint8()
	if err != nil {
		t.Fatalf("ReadUint8 failed: %v", err)
	}
	if v != 0x02 {
		t.Errorf("expected 0x02, got 0x%02x", v)
	}
	if r.Pos() != 3 {
		t.Errorf("expected pos 3, got %d", r.Pos())
	}
}

func TestReaderSkipPastEnd(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x00}), binary.LittleEndian)
	if err := r.Skip(10); !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestReaderWithOrder(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{0x01, 0x00, 0x01, 0x00}), binary.LittleEndian)

	v, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 1 {
		t.Errorf("little-endian: expected 1, got %d", v)
	}

	be := r.WithOrder(binary.BigEndian)
	v, err = be.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16 failed: %v", err)
	}
	if v != 256 {
		t.Errorf("big-endian: expected 256, got %d", v)
	}
	if be.Pos() != 4 {
		t.Errorf("expected pos 4, got %d", be.Pos())
	}
}
