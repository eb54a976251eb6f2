package wire

import (
	"encoding/binary"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/gerrors"
)

func dimString(hasZ, hasM bool) string {
	switch {
	case hasZ && hasM:
		return "XYZM"
	case hasZ:
		return "XYZ"
	case hasM:
		return "XYM"
	default:
		return "XY"
	}
}

// writeBoxFloats appends a box's widened single-precision ranges in
// axis order X, Y, [Z], [M], low then high per axis.
func writeBoxFloats(buf []byte, box coord.Box) []byte {
	buf = putF32(buf, float32(box.Low.X))
	buf = putF32(buf, float32(box.High.X))
	buf = putF32(buf, float32(box.Low.Y))
	buf = putF32(buf, float32(box.High.Y))
	if box.HasZ {
		buf = putF32(buf, float32(box.Low.Z))
		buf = putF32(buf, float32(box.High.Z))
	}
	if box.HasM {
		buf = putF32(buf, float32(box.Low.M))
		buf = putF32(buf, float32(box.High.M))
	}
	return buf
}

// SetBBox copies a new bounding box into a serialized buffer, widening
// it first (idempotent when the caller already did). If the existing
// serialization already carries a bbox of the same width, it is
// overwritten in place and the same backing array is returned;
// otherwise a fresh buffer is allocated: header + optional extended
// word + the new box + the original payload, with BBOX set and varlen
// updated.
func SetBBox(buf []byte, box coord.Box) ([]byte, error) {
	flagsByte, _, off, err := readHeader(buf)
	if err != nil {
		return nil, err
	}
	f, ver := UnpackFlags(flagsByte, 0)
	bz, bm := f.BoxFlags()
	if box.HasZ != bz || box.HasM != bm {
		return nil, &gerrors.DimensionMismatchError{
			Context: "set_bbox",
			Want:    dimString(bz, bm),
			Got:     dimString(box.HasZ, box.HasM),
		}
	}
	box = box.Widen()
	boxBytes := int(bboxSize(f))

	if f.HasBBox {
		// In-place overwrite: same box width, same buffer.
		widened := writeBoxFloats(nil, box)
		copy(buf[off:off+boxBytes], widened)
		return buf, nil
	}

	prefixLen := off // header (+ extended if present), no bbox yet
	payload := buf[prefixLen:]

	out := make([]byte, 0, prefixLen+boxBytes+len(payload))
	out = putU32(out, 0) // varlen placeholder
	out = append(out, buf[4], buf[5], buf[6])
	newFlagsByte := flagsByte | bitBBox
	out = append(out, newFlagsByte)
	if ver == V2 && HasExtended(flagsByte) {
		out = append(out, buf[HeaderSize:HeaderSize+ExtendedSize]...)
	}
	out = writeBoxFloats(out, box)
	out = append(out, payload...)
	binary.LittleEndian.PutUint32(out[0:4], PackVarlen(uint32(len(out))))
	return out, nil
}

// DropBBox allocates a fresh buffer with the bbox segment removed,
// clearing BBOX and updating varlen. A buffer with no bbox comes back
// as a plain copy.
func DropBBox(buf []byte) ([]byte, error) {
	flagsByte, _, off, err := readHeader(buf)
	if err != nil {
		return nil, err
	}
	f, ver := UnpackFlags(flagsByte, 0)
	if !f.HasBBox {
		cp := make([]byte, len(buf))
		copy(cp, buf)
		return cp, nil
	}
	boxBytes := int(bboxSize(f))
	payload := buf[off+boxBytes:]
	prefixLen := off

	out := make([]byte, 0, prefixLen+len(payload))
	out = putU32(out, 0)
	out = append(out, buf[4], buf[5], buf[6])
	out = append(out, flagsByte&^bitBBox)
	if ver == V2 && HasExtended(flagsByte) {
		out = append(out, buf[HeaderSize:HeaderSize+ExtendedSize]...)
	}
	out = append(out, payload...)
	binary.LittleEndian.PutUint32(out[0:4], PackVarlen(uint32(len(out))))
	return out, nil
}
