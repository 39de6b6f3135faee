package nifti

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/robert-malhotra/go-nifti/internal/element"
	"github.com/robert-malhotra/go-nifti/internal/header"
)

// Volume is an in-memory NIfTI-1 volume: the parsed header plus the decoded
// sample sequence. Unless opened with WithoutRescale, samples have had the
// header's affine rescale applied exactly once at load time.
type Volume struct {
	header  *header.Header
	samples *element.Samples
}

// Open reads a NIfTI-1 volume from disk. Both plain and gzipped files are
// handled (sniffed by magic bytes, so any extension works), and a
// header-only .hdr/.hdr.gz resolves its companion .img/.img.gz
// automatically.
func Open(path string, opts ...OpenOption) (*Volume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	src, err := sniffGzip(f)
	if err != nil {
		return nil, err
	}
	h, err := header.Decode(src)
	if err != nil {
		return nil, err
	}
	if h.Magic == header.MagicPair {
		return openCompanion(path, h, opts...)
	}
	return decodeData(h, src, header.Size, opts...)
}

// Decode reads a single-file NIfTI-1 volume from r, transparently
// decompressing gzipped input. A header-only stream fails with
// ErrHeaderOnly because the sample data lives in a separate file.
func Decode(r io.Reader, opts ...OpenOption) (*Volume, error) {
	src, err := sniffGzip(r)
	if err != nil {
		return nil, err
	}
	h, err := header.Decode(src)
	if err != nil {
		return nil, err
	}
	if h.Magic == header.MagicPair {
		return nil, ErrHeaderOnly
	}
	return decodeData(h, src, header.Size, opts...)
}

// openCompanion loads sample data for a paired header from the matching
// .img or .img.gz next to the header file.
func openCompanion(hdrPath string, h *header.Header, opts ...OpenOption) (*Volume, error) {
	base := strings.TrimSuffix(hdrPath, ".gz")
	base = strings.TrimSuffix(base, ".hdr")
	var f *os.File
	var err error
	for _, candidate := range []string{base + ".img", base + ".img.gz"} {
		if f, err = os.Open(candidate); err == nil {
			break
		}
	}
	if f == nil {
		return nil, fmt.Errorf("opening companion image for %s: %w", hdrPath, err)
	}
	defer f.Close()

	src, err := sniffGzip(f)
	if err != nil {
		return nil, err
	}
	return decodeData(h, src, 0, opts...)
}

// decodeData reads the sample blob from src (which has already delivered
// `consumed` bytes), decodes it as the header's element type and applies
// the rescale once.
func decodeData(h *header.Header, src io.Reader, consumed int64, opts ...OpenOption) (*Volume, error) {
	o := defaultOpenOptions()
	for _, opt := range opts {
		opt(o)
	}

	t, err := h.ElementType()
	if err != nil {
		return nil, err
	}

	if skip := h.DataOffset() - consumed; skip > 0 {
		if _, err := io.CopyN(io.Discard, src, skip); err != nil {
			return nil, fmt.Errorf("%w: seeking to sample data: %v", ErrShortData, err)
		}
	}

	raw := make([]byte, h.NumVoxels()*t.Width())
	if _, err := io.ReadFull(src, raw); err != nil {
		return nil, fmt.Errorf("%w: want %d bytes: %v", ErrShortData, len(raw), err)
	}

	samples, err := element.Decode(t, raw, h.ByteOrder)
	if err != nil {
		return nil, fmt.Errorf("decoding samples: %w", err)
	}
	if o.rescale {
		samples.Rescale(h.SclSlope, h.SclInter)
	}
	return &Volume{header: h, samples: samples}, nil
}

// sniffGzip peeks at the stream's magic bytes and interposes a gzip reader
// when they match; the stream is otherwise passed through buffered.
func sniffGzip(r io.Reader) (io.Reader, error) {
	br := bufio.NewReader(r)
	magic, err := br.Peek(2)
	if err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return nil, fmt.Errorf("reading gzip stream: %w", err)
		}
		return gz, nil
	}
	// Too short to hold a magic number; let the header parser report it.
	return br, nil
}

// Dims returns the extent of each axis.
func (v *Volume) Dims() []int {
	return v.header.Dims()
}

// Rank returns the number of dimensions.
func (v *Volume) Rank() int {
	return v.header.Rank()
}

// NumVoxels returns the total sample count.
func (v *Volume) NumVoxels() int {
	return v.samples.Len()
}

// PixDims returns the grid spacing of each axis.
func (v *Volume) PixDims() []float32 {
	dims := make([]float32, v.header.Rank())
	for i := range dims {
		dims[i] = v.header.PixDim[i+1]
	}
	return dims
}

// DataType returns the sample type name ("uint8", "float32", ...).
func (v *Volume) DataType() string {
	return v.samples.Type().String()
}

// Description returns the header's free-form description field.
func (v *Volume) Description() string {
	return v.header.Descrip
}

// Slope and Intercept return the header's affine rescale parameters.
// A slope of 0 means the volume carries no rescale.
func (v *Volume) Slope() float32 {
	return v.header.SclSlope
}

// Intercept returns the header's rescale intercept.
func (v *Volume) Intercept() float32 {
	return v.header.SclInter
}

// Data returns the decoded samples as their natural typed slice
// ([]uint8, []int16, ..., []float64).
func (v *Volume) Data() any {
	return v.samples.Data()
}

// ReadFloat64 returns the samples converted to float64.
func (v *Volume) ReadFloat64() []float64 {
	return v.samples.Float64s()
}

// ReadFloat32 returns the samples converted to float32.
func (v *Volume) ReadFloat32() []float32 {
	return v.samples.Float32s()
}
