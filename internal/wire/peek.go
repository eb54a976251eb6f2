package wire

import (
	"encoding/binary"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/gerrors"
	"github.com/planargeo/geom/internal/model"
)

func readHeader(buf []byte) (flagsByte byte, extended uint64, bodyOff int, err error) {
	if len(buf) < HeaderSize {
		return 0, 0, 0, &gerrors.InvalidPayloadError{Reason: "buffer shorter than header"}
	}
	flagsByte = buf[7]
	ver := versionOf(flagsByte)
	if ver != V1 && ver != V2 {
		return 0, 0, 0, &gerrors.UnknownVersionError{Version: uint8(ver)}
	}
	off := HeaderSize
	if ver == V2 && HasExtended(flagsByte) {
		if len(buf) < off+ExtendedSize {
			return 0, 0, 0, &gerrors.InvalidPayloadError{Reason: "truncated extended flags"}
		}
		extended = binary.LittleEndian.Uint64(buf[off:])
		off += ExtendedSize
	}
	return flagsByte, extended, off, nil
}

// PeekFlags returns the decoded in-memory flags without touching the
// bbox or payload.
func PeekFlags(buf []byte) (coord.Flags, error) {
	flagsByte, extended, _, err := readHeader(buf)
	if err != nil {
		return coord.Flags{}, err
	}
	f, _ := UnpackFlags(flagsByte, extended)
	return f, nil
}

// PeekSRID reads the SRID out of the common header.
func PeekSRID(buf []byte) (int32, error) {
	if len(buf) < HeaderSize {
		return 0, &gerrors.InvalidPayloadError{Reason: "buffer shorter than header"}
	}
	var b [3]byte
	copy(b[:], buf[4:7])
	return UnpackSRID(b), nil
}

// PeekHasBBox reports the BBOX flag without reading the box itself.
func PeekHasBBox(buf []byte) (bool, error) {
	f, err := PeekFlags(buf)
	if err != nil {
		return false, err
	}
	return f.HasBBox, nil
}

// PeekNdims returns the number of ordinates per coordinate (2-4).
func PeekNdims(buf []byte) (int, error) {
	f, err := PeekFlags(buf)
	if err != nil {
		return 0, err
	}
	return f.Ndims(), nil
}

// PeekType reads the geometry's top-level type tag, the first word of
// the payload, without deserializing the rest.
func PeekType(buf []byte) (model.GeomType, error) {
	_, _, off, err := readHeader(buf)
	if err != nil {
		return 0, err
	}
	f, _ := PeekFlags(buf)
	if f.HasBBox {
		off += int(bboxSize(f))
	}
	if len(buf) < off+4 {
		return 0, &gerrors.InvalidPayloadError{Reason: "truncated type tag", Offset: off}
	}
	return model.GeomType(binary.LittleEndian.Uint32(buf[off:])), nil
}

func payloadOffset(buf []byte) (int, coord.Flags, error) {
	flagsByte, extended, off, err := readHeader(buf)
	if err != nil {
		return 0, coord.Flags{}, err
	}
	f, _ := UnpackFlags(flagsByte, extended)
	if f.HasBBox {
		off += int(bboxSize(f))
	}
	return off, f, nil
}

// PeekBBox returns the embedded bbox if present, otherwise attempts
// one of four cheap derivations without traversing the whole payload:
// a single point, a two-vertex line, a single-entry multipoint of one
// point, or a single-entry multi-line of a two-vertex line. Any other
// case fails with NotAvailable.
func PeekBBox(buf []byte) (coord.Box, error) {
	flagsByte, extended, off, err := readHeader(buf)
	if err != nil {
		return coord.Box{}, err
	}
	f, _ := UnpackFlags(flagsByte, extended)
	bz, bm := f.BoxFlags()
	if f.HasBBox {
		c := &cursor{buf: buf, pos: off}
		return readBoxFloats(c, f)
	}

	c := &cursor{buf: buf, pos: off}
	typ, err := c.u32()
	if err != nil {
		return coord.Box{}, err
	}
	gt := model.GeomType(typ)

	readPoint := func() (coord.Point, error) {
		var p coord.Point
		var v float64
		if v, err = c.f64(); err != nil {
			return p, err
		}
		p.X = v
		if v, err = c.f64(); err != nil {
			return p, err
		}
		p.Y = v
		if f.HasZ {
			if v, err = c.f64(); err != nil {
				return p, err
			}
			p.Z = v
		}
		if f.HasM {
			if v, err = c.f64(); err != nil {
				return p, err
			}
			p.M = v
		}
		return p, nil
	}

	switch gt {
	case model.PointType:
		n, err := c.u32()
		if err != nil || n == 0 {
			return coord.Box{}, &gerrors.NotAvailableError{Operation: "peek_bbox"}
		}
		p, err := readPoint()
		if err != nil {
			return coord.Box{}, err
		}
		return coord.FromPoint(p, bz, bm), nil

	case model.LineStringType:
		n, err := c.u32()
		if err != nil || n != 2 {
			return coord.Box{}, &gerrors.NotAvailableError{Operation: "peek_bbox"}
		}
		p1, err := readPoint()
		if err != nil {
			return coord.Box{}, err
		}
		p2, err := readPoint()
		if err != nil {
			return coord.Box{}, err
		}
		b := coord.FromPoint(p1, bz, bm)
		b2 := coord.FromPoint(p2, bz, bm)
		u, _ := coord.Union(b, b2)
		return u, nil

	case model.MultiPointType:
		ng, err := c.u32()
		if err != nil || ng != 1 {
			return coord.Box{}, &gerrors.NotAvailableError{Operation: "peek_bbox"}
		}
		if _, err = c.u32(); err != nil { // child type
			return coord.Box{}, err
		}
		n, err := c.u32()
		if err != nil || n != 1 {
			return coord.Box{}, &gerrors.NotAvailableError{Operation: "peek_bbox"}
		}
		p, err := readPoint()
		if err != nil {
			return coord.Box{}, err
		}
		return coord.FromPoint(p, bz, bm), nil

	case model.MultiLineStringType:
		ng, err := c.u32()
		if err != nil || ng != 1 {
			return coord.Box{}, &gerrors.NotAvailableError{Operation: "peek_bbox"}
		}
		if _, err = c.u32(); err != nil { // child type
			return coord.Box{}, err
		}
		n, err := c.u32()
		if err != nil || n != 2 {
			return coord.Box{}, &gerrors.NotAvailableError{Operation: "peek_bbox"}
		}
		p1, err := readPoint()
		if err != nil {
			return coord.Box{}, err
		}
		p2, err := readPoint()
		if err != nil {
			return coord.Box{}, err
		}
		b := coord.FromPoint(p1, bz, bm)
		b2 := coord.FromPoint(p2, bz, bm)
		u, _ := coord.Union(b, b2)
		return u, nil

	default:
		return coord.Box{}, &gerrors.NotAvailableError{Operation: "peek_bbox"}
	}
}

// PeekFirstPoint returns the first coordinate of a point geometry
// without materializing the tree; fails for any non-point.
func PeekFirstPoint(buf []byte) (coord.Point, error) {
	off, f, err := payloadOffset(buf)
	if err != nil {
		return coord.Point{}, err
	}
	c := &cursor{buf: buf, pos: off}
	typ, err := c.u32()
	if err != nil {
		return coord.Point{}, err
	}
	if model.GeomType(typ) != model.PointType {
		return coord.Point{}, &gerrors.NotAvailableError{Operation: "peek_first_point"}
	}
	n, err := c.u32()
	if err != nil || n == 0 {
		return coord.Point{}, &gerrors.NotAvailableError{Operation: "peek_first_point"}
	}
	pa, err := readPointArray(c, 1, f)
	if err != nil {
		return coord.Point{}, err
	}
	return pa.Get(0), nil
}

// IsEmpty recursively walks the payload reading only the leading
// uint32 counts (never ordinate bytes), returning true iff every
// reachable primitive's point count is zero.
func IsEmpty(buf []byte) (bool, error) {
	off, f, err := payloadOffset(buf)
	if err != nil {
		return false, err
	}
	c := &cursor{buf: buf, pos: off}
	return isEmptyPayload(c, f)
}

// isEmptyPayload reads the leading counts of one sub-payload,
// advancing c past its entire extent (ring-size arrays, padding, and
// ordinate bytes included) regardless of the emptiness verdict, so a
// caller iterating a collection's children always lands on the next
// sibling correctly.
func isEmptyPayload(c *cursor, f coord.Flags) (bool, error) {
	typ, err := c.u32()
	if err != nil {
		return false, err
	}
	gt := model.GeomType(typ)
	nd := f.Ndims()

	switch {
	case isCollectionType(gt):
		ng, err := c.u32()
		if err != nil {
			return false, err
		}
		empty := true
		for i := uint32(0); i < ng; i++ {
			childEmpty, err := isEmptyPayload(c, f)
			if err != nil {
				return false, err
			}
			if !childEmpty {
				empty = false
			}
		}
		return empty, nil

	case gt == model.PolygonType:
		nrings, err := c.u32()
		if err != nil {
			return false, err
		}
		sizes := make([]uint32, nrings)
		for i := range sizes {
			if sizes[i], err = c.u32(); err != nil {
				return false, err
			}
		}
		if nrings%2 != 0 {
			if _, err := c.u32(); err != nil {
				return false, err
			}
		}
		total := uint32(0)
		for _, sz := range sizes {
			total += sz
			if err := c.skip(int(sz) * nd * 8); err != nil {
				return false, err
			}
		}
		return total == 0, nil

	default:
		n, err := c.u32()
		if err != nil {
			return false, err
		}
		if err := c.skip(int(n) * nd * 8); err != nil {
			return false, err
		}
		return n == 0, nil
	}
}
