package header

import (
	"encoding/binary"
	"fmt"
	"io"

	binpkg "github.com/robert-malhotra/go-nifti/internal/binary"
)

// Encode writes h as a 348-byte NIfTI-1 header followed by the 4-byte
// extension indicator (all zero: no extensions). Output is always
// little-endian regardless of the order the header was read with.
func (h *Header) Encode(w io.Writer) error {
	bw := binpkg.NewWriter(w, binary.LittleEndian)

	if err := bw.WriteInt32(Size); err != nil { // sizeof_hdr
		return err
	}
	if err := bw.WriteZeros(36); err != nil { // data_type .. dim_info
		return err
	}
	for _, d := range h.Dim {
		if err := bw.WriteInt16(d); err != nil {
			return err
		}
	}
	if err := bw.WriteZeros(14); err != nil { // intent_p1..p3, intent_code
		return err
	}
	if err := bw.WriteInt16(h.DatatypeCode); err != nil {
		return err
	}
	if err := bw.WriteInt16(h.Bitpix); err != nil {
		return err
	}
	if err := bw.WriteZeros(2); err != nil { // slice_start
		return err
	}
	for _, p := range h.PixDim {
		if err := bw.WriteFloat32(p); err != nil {
			return err
		}
	}
	if err := bw.WriteFloat32(h.VoxOffset); err != nil {
		return err
	}
	if err := bw.WriteFloat32(h.SclSlope); err != nil {
		return err
	}
	if err := bw.WriteFloat32(h.SclInter); err != nil {
		return err
	}
	if err := bw.WriteZeros(4); err != nil { // slice_end, slice_code, xyzt_units
		return err
	}
	if err := bw.WriteFloat32(h.CalMax); err != nil {
		return err
	}
	if err := bw.WriteFloat32(h.CalMin); err != nil {
		return err
	}
	if err := bw.WriteZeros(16); err != nil { // slice_duration, toffset, glmax, glmin
		return err
	}
	descrip := make([]byte, 80)
	copy(descrip, h.Descrip)
	if err := bw.WriteBytes(descrip); err != nil {
		return err
	}
	if err := bw.WriteZeros(Size - 4 - 228); err != nil { // aux_file .. intent_name
		return err
	}
	if err := bw.WriteBytes(h.Magic[:]); err != nil {
		return err
	}
	// Extension indicator: four zero bytes, no header extensions.
	if err := bw.WriteZeros(4); err != nil {
		return err
	}
	if bw.Pos() != DefaultVoxOffset {
		return fmt.Errorf("encoded header is %d bytes, want %d", bw.Pos(), DefaultVoxOffset)
	}
	return nil
}
