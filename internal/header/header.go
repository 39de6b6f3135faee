// Package header handles parsing of the NIfTI-1 header structure.
//
// The header is the fixed 348-byte entry point of any NIfTI-1 file,
// containing the volume dimensions, the sample encoding (datatype code and
// byte order), the data offset, and the affine rescale parameters.
package header

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	binpkg "github.com/robert-malhotra/go-nifti/internal/binary"
	"github.com/robert-malhotra/go-nifti/internal/element"
)

// Size is the fixed byte size of a NIfTI-1 header. sizeof_hdr must decode
// to this value under the file's byte order; that is how endianness is
// detected.
const Size = 348

// DefaultVoxOffset is the data offset written for single-file volumes:
// the 348-byte header, a 4-byte extension indicator, then the samples.
const DefaultVoxOffset = 352

// maxVoxOffset bounds the declared data offset. vox_offset is a float32,
// so non-finite or absurd values must be rejected before the int64
// conversion in DataOffset, which is implementation-defined out of range.
const maxVoxOffset = 1 << 31

// Magic values for the last four header bytes.
var (
	MagicSingle = [4]byte{'n', '+', '1', 0} // header and data in one file
	MagicPair   = [4]byte{'n', 'i', '1', 0} // header-only file of a .hdr/.img pair
)

// NIfTI-1 datatype codes for the supported primitive encodings.
const (
	CodeUint8   int16 = 2
	CodeInt16   int16 = 4
	CodeInt32   int16 = 8
	CodeFloat32 int16 = 16
	CodeFloat64 int16 = 64
	CodeInt8    int16 = 256
	CodeUint16  int16 = 512
	CodeUint32  int16 = 768
	CodeInt64   int16 = 1024
	CodeUint64  int16 = 1280
)

// Errors
var (
	ErrNotNIfTI        = errors.New("not a NIfTI-1 file")
	ErrUnsupportedType = errors.New("unsupported datatype code")
	ErrBadDimensions   = errors.New("invalid dimension field")
)

// Header contains the NIfTI-1 fields this library reads. Fields the decoder
// skips (intent, slice timing, orientation quaternions) are preserved only
// as the raw bytes they occupy, not parsed.
type Header struct {
	// Dim holds the dimension array: Dim[0] is the rank (1..7), Dim[1..7]
	// the extent of each axis.
	Dim [8]int16

	// DatatypeCode is the raw NIfTI datatype code; Bitpix the declared bits
	// per voxel, which must agree with the code's width.
	DatatypeCode int16
	Bitpix       int16

	// PixDim holds grid spacings; PixDim[0] carries the qfac orientation
	// flag and is not a spacing.
	PixDim [8]float32

	// VoxOffset is the byte offset of the first sample in a single-file
	// volume.
	VoxOffset float32

	// SclSlope and SclInter define the affine rescale. A slope of exactly 0
	// means no rescale, by format convention.
	SclSlope float32
	SclInter float32

	// CalMax and CalMin are the display range hints.
	CalMax float32
	CalMin float32

	// Descrip is the free-form description, trimmed of trailing NULs.
	Descrip string

	// Magic distinguishes single-file from paired volumes.
	Magic [4]byte

	// ByteOrder is the detected byte order of the file, applied to the
	// header fields and to the sample data alike.
	ByteOrder binary.ByteOrder
}

// Decode reads and parses a 348-byte NIfTI-1 header from r, detecting the
// byte order from sizeof_hdr.
func Decode(r io.Reader) (*Header, error) {
	raw := make([]byte, Size)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	order, err := detectOrder(raw)
	if err != nil {
		return nil, err
	}

	h := &Header{ByteOrder: order}
	br := binpkg.NewReader(bytes.NewReader(raw), order)

	// sizeof_hdr already validated by detectOrder; skip it together with
	// the unused data_type, db_name, extents, session_error, regular and
	// dim_info fields.
	if err := br.Skip(40); err != nil {
		return nil, err
	}
	for i := range h.Dim {
		if h.Dim[i], err = br.ReadInt16(); err != nil {
			return nil, err
		}
	}
	if err := br.Skip(14); err != nil { // intent_p1..p3, intent_code
		return nil, err
	}
	if h.DatatypeCode, err = br.ReadInt16(); err != nil {
		return nil, err
	}
	if h.Bitpix, err = br.ReadInt16(); err != nil {
		return nil, err
	}
	if err := br.Skip(2); err != nil { // slice_start
		return nil, err
	}
	for i := range h.PixDim {
		if h.PixDim[i], err = br.ReadFloat32(); err != nil {
			return nil, err
		}
	}
	if h.VoxOffset, err = br.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.SclSlope, err = br.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.SclInter, err = br.ReadFloat32(); err != nil {
		return nil, err
	}
	if err := br.Skip(4); err != nil { // slice_end, slice_code, xyzt_units
		return nil, err
	}
	if h.CalMax, err = br.ReadFloat32(); err != nil {
		return nil, err
	}
	if h.CalMin, err = br.ReadFloat32(); err != nil {
		return nil, err
	}
	if err := br.Skip(16); err != nil { // slice_duration, toffset, glmax, glmin
		return nil, err
	}
	descrip, err := br.ReadBytes(80)
	if err != nil {
		return nil, err
	}
	h.Descrip = string(bytes.TrimRight(descrip, "\x00"))
	// aux_file through intent_name: everything between descrip and magic.
	if err := br.Skip(Size - 4 - 228); err != nil {
		return nil, err
	}
	magic, err := br.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	copy(h.Magic[:], magic)

	if h.Magic != MagicSingle && h.Magic != MagicPair {
		return nil, fmt.Errorf("%w: bad magic %q", ErrNotNIfTI, h.Magic[:])
	}
	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// detectOrder decodes sizeof_hdr under both orders and picks the one that
// yields 348.
func detectOrder(raw []byte) (binary.ByteOrder, error) {
	switch {
	case binary.LittleEndian.Uint32(raw) == Size:
		return binary.LittleEndian, nil
	case binary.BigEndian.Uint32(raw) == Size:
		return binary.BigEndian, nil
	default:
		return nil, fmt.Errorf("%w: sizeof_hdr is not %d in either byte order", ErrNotNIfTI, Size)
	}
}

func (h *Header) validate() error {
	rank := int(h.Dim[0])
	if rank < 1 || rank > 7 {
		return fmt.Errorf("%w: rank %d out of range 1..7", ErrBadDimensions, rank)
	}
	// The running product stays below MaxInt/8 so a byte-size computation
	// cannot overflow for any element width.
	n := 1
	for i := 1; i <= rank; i++ {
		d := int(h.Dim[i])
		if d < 1 {
			return fmt.Errorf("%w: dim[%d] = %d", ErrBadDimensions, i, d)
		}
		if n > math.MaxInt/8/d {
			return fmt.Errorf("%w: dimension product overflows", ErrBadDimensions)
		}
		n *= d
	}
	off := float64(h.VoxOffset)
	if math.IsNaN(off) || math.IsInf(off, 0) || off > maxVoxOffset {
		return fmt.Errorf("%w: vox_offset %g out of range", ErrNotNIfTI, h.VoxOffset)
	}
	t, err := h.ElementType()
	if err != nil {
		return err
	}
	if int(h.Bitpix) != t.Width()*8 {
		return fmt.Errorf("%w: bitpix %d does not match %s samples", ErrBadDimensions, h.Bitpix, t)
	}
	return nil
}

// ElementType maps the header's datatype code to an element type tag.
func (h *Header) ElementType() (element.Type, error) {
	switch h.DatatypeCode {
	case CodeUint8:
		return element.Uint8, nil
	case CodeInt8:
		return element.Int8, nil
	case CodeUint16:
		return element.Uint16, nil
	case CodeInt16:
		return element.Int16, nil
	case CodeUint32:
		return element.Uint32, nil
	case CodeInt32:
		return element.Int32, nil
	case CodeUint64:
		return element.Uint64, nil
	case CodeInt64:
		return element.Int64, nil
	case CodeFloat32:
		return element.Float32, nil
	case CodeFloat64:
		return element.Float64, nil
	}
	return element.Invalid, fmt.Errorf("%w: %d", ErrUnsupportedType, h.DatatypeCode)
}

// CodeFor returns the datatype code and bitpix for an element type tag.
func CodeFor(t element.Type) (code, bitpix int16, err error) {
	switch t {
	case element.Uint8:
		code = CodeUint8
	case element.Int8:
		code = CodeInt8
	case element.Uint16:
		code = CodeUint16
	case element.Int16:
		code = CodeInt16
	case element.Uint32:
		code = CodeUint32
	case element.Int32:
		code = CodeInt32
	case element.Uint64:
		code = CodeUint64
	case element.Int64:
		code = CodeInt64
	case element.Float32:
		code = CodeFloat32
	case element.Float64:
		code = CodeFloat64
	default:
		return 0, 0, fmt.Errorf("%w: %d", element.ErrUnknownType, t)
	}
	return code, int16(t.Width() * 8), nil
}

// Rank returns the number of dimensions.
func (h *Header) Rank() int {
	return int(h.Dim[0])
}

// Dims returns the extent of each axis.
func (h *Header) Dims() []int {
	dims := make([]int, h.Rank())
	for i := range dims {
		dims[i] = int(h.Dim[i+1])
	}
	return dims
}

// NumVoxels returns the total sample count declared by the dimension array.
func (h *Header) NumVoxels() int {
	n := 1
	for _, d := range h.Dims() {
		n *= d
	}
	return n
}

// DataOffset returns the byte offset of the first sample, falling back to
// the conventional default when vox_offset is unset or nonsensical.
func (h *Header) DataOffset() int64 {
	if h.Magic == MagicPair {
		// Paired .img files carry bare sample data.
		return 0
	}
	off := int64(h.VoxOffset)
	if off < Size {
		return DefaultVoxOffset
	}
	return off
}
