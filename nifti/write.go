package nifti

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/robert-malhotra/go-nifti/internal/element"
	"github.com/robert-malhotra/go-nifti/internal/header"
)

// NewVolume builds a single-file volume from axis extents and a typed
// sample slice in row-major order. The product of dims must equal
// len(data).
func NewVolume[T element.Value](dims []int, data []T) (*Volume, error) {
	if len(dims) < 1 || len(dims) > 7 {
		return nil, fmt.Errorf("%w: rank %d out of range 1..7", ErrBadDimensions, len(dims))
	}
	n := 1
	for i, d := range dims {
		if d < 1 || d > 1<<15-1 {
			return nil, fmt.Errorf("%w: dim[%d] = %d", ErrBadDimensions, i+1, d)
		}
		if n > math.MaxInt/8/d {
			return nil, fmt.Errorf("%w: dimension product overflows", ErrBadDimensions)
		}
		n *= d
	}
	if n != len(data) {
		return nil, fmt.Errorf("%w: %d voxels declared, %d samples given", ErrBadDimensions, n, len(data))
	}

	code, bitpix, err := header.CodeFor(element.TypeOf[T]())
	if err != nil {
		return nil, err
	}

	h := &header.Header{
		DatatypeCode: code,
		Bitpix:       bitpix,
		VoxOffset:    header.DefaultVoxOffset,
		Magic:        header.MagicSingle,
		ByteOrder:    binary.LittleEndian,
	}
	h.Dim[0] = int16(len(dims))
	for i, d := range dims {
		h.Dim[i+1] = int16(d)
	}
	for i := range h.PixDim {
		h.PixDim[i] = 1
	}

	return &Volume{header: h, samples: element.FromSlice(data)}, nil
}

// SetDescription sets the header's free-form description (truncated to the
// field's 80 bytes on write).
func (v *Volume) SetDescription(s string) {
	v.header.Descrip = s
}

// SetRescale records affine rescale parameters in the header. They are
// written out for readers to apply; the in-memory samples are not changed.
func (v *Volume) SetRescale(slope, intercept float32) {
	v.header.SclSlope = slope
	v.header.SclInter = intercept
}

// Save writes the volume as a single-file NIfTI-1 volume, gzipped when the
// path ends in .gz. Output is always little-endian.
func (v *Volume) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	var w io.Writer = f
	var gz *gzip.Writer
	if strings.HasSuffix(path, ".gz") {
		gz = gzip.NewWriter(f)
		w = gz
	}

	err = v.encode(w)
	if gz != nil {
		if cerr := gz.Close(); err == nil {
			err = cerr
		}
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Encode writes the volume to w as a single-file NIfTI-1 stream.
func (v *Volume) Encode(w io.Writer) error {
	return v.encode(w)
}

func (v *Volume) encode(w io.Writer) error {
	// The written form is always a single-file little-endian volume with no
	// extensions, whatever shape the volume was read from.
	h := *v.header
	h.Magic = header.MagicSingle
	h.VoxOffset = header.DefaultVoxOffset
	if err := h.Encode(w); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if _, err := w.Write(v.samples.Encode(binary.LittleEndian)); err != nil {
		return fmt.Errorf("writing samples: %w", err)
	}
	return nil
}
