package wire

import (
	"encoding/binary"
	"math"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/corert"
	"github.com/planargeo/geom/internal/gerrors"
	"github.com/planargeo/geom/internal/model"
)

type cursor struct {
	buf []byte
	pos int
}

func (c *cursor) need(n int) error {
	if c.pos+n > len(c.buf) {
		return &gerrors.InvalidPayloadError{Reason: "buffer truncated", Offset: c.pos}
	}
	return nil
}

func (c *cursor) skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) f64() (float64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := math.Float64frombits(binary.LittleEndian.Uint64(c.buf[c.pos:]))
	c.pos += 8
	return v, nil
}

func (c *cursor) f32() (float32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := math.Float32frombits(binary.LittleEndian.Uint32(c.buf[c.pos:]))
	c.pos += 4
	return v, nil
}

// readPointArray reads npoints coordinates of the given dimensionality
// out of buf and returns a point array with ReadOnly set, marking it
// as logically borrowed from the source buffer. The ordinates are
// copied into a []float64 rather than aliased in place via unsafe;
// the safe copy costs one pass and keeps the ReadOnly bookkeeping,
// which is all EnsureOwned and the copy-on-write contract depend on.
func readPointArray(c *cursor, npoints int, f coord.Flags) (*model.PointArray, error) {
	nd := f.Ndims()
	n := npoints * nd * 8
	if err := c.need(n); err != nil {
		return nil, err
	}
	raw := c.buf[c.pos : c.pos+n]
	c.pos += n
	ords := make([]float64, npoints*nd)
	for i := 0; i < npoints*nd; i++ {
		ords[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*8:]))
	}
	bf := f
	bf.ReadOnly = true
	return &model.PointArray{Ordinates: ords, Flags: bf}, nil
}

// readBoxFloats reads a bbox segment off the cursor: low,high per axis
// in axis order X, Y, [Z], [M], where the axis set comes from the
// buffer's flags (geodetic boxes are always XYZ).
func readBoxFloats(c *cursor, f coord.Flags) (coord.Box, error) {
	bz, bm := f.BoxFlags()
	b := coord.Box{HasZ: bz, HasM: bm}
	pair := func(lo, hi *float64) error {
		l, err := c.f32()
		if err != nil {
			return err
		}
		h, err := c.f32()
		if err != nil {
			return err
		}
		*lo, *hi = float64(l), float64(h)
		return nil
	}
	if err := pair(&b.Low.X, &b.High.X); err != nil {
		return coord.Box{}, err
	}
	if err := pair(&b.Low.Y, &b.High.Y); err != nil {
		return coord.Box{}, err
	}
	if bz {
		if err := pair(&b.Low.Z, &b.High.Z); err != nil {
			return coord.Box{}, err
		}
	}
	if bm {
		if err := pair(&b.Low.M, &b.High.M); err != nil {
			return coord.Box{}, err
		}
	}
	return b, nil
}

func decodePayload(c *cursor, f coord.Flags, rt *corert.Runtime) (*model.Geometry, error) {
	if err := rt.CheckInterrupted("wire.decodePayload"); err != nil {
		return nil, err
	}
	typ, err := c.u32()
	if err != nil {
		return nil, err
	}
	gt := model.GeomType(typ)

	switch gt {
	case model.PointType, model.LineStringType, model.CircularStringType, model.TriangleType:
		n, err := c.u32()
		if err != nil {
			return nil, err
		}
		pa, err := readPointArray(c, int(n), f)
		if err != nil {
			return nil, err
		}
		if err := model.ValidatePoints(gt, pa); err != nil {
			return nil, &gerrors.InvalidPayloadError{Reason: err.Error(), Offset: c.pos}
		}
		return &model.Geometry{Type: gt, Flags: f, Points: pa}, nil

	case model.PolygonType:
		nrings, err := c.u32()
		if err != nil {
			return nil, err
		}
		sizes := make([]uint32, nrings)
		for i := range sizes {
			sizes[i], err = c.u32()
			if err != nil {
				return nil, err
			}
		}
		if nrings%2 != 0 {
			if _, err := c.u32(); err != nil { // padding word
				return nil, err
			}
		}
		g := &model.Geometry{Type: gt, Flags: f}
		for _, sz := range sizes {
			ring, err := readPointArray(c, int(sz), f)
			if err != nil {
				return nil, err
			}
			if err := g.AddRing(ring); err != nil {
				return nil, &gerrors.InvalidPayloadError{Reason: err.Error(), Offset: c.pos}
			}
		}
		return g, nil

	default:
		if !isCollectionType(gt) {
			return nil, &gerrors.InvalidPayloadError{Reason: "unrecognized geometry type tag", Offset: c.pos}
		}
		ngeoms, err := c.u32()
		if err != nil {
			return nil, err
		}
		g := &model.Geometry{Type: gt, Flags: f}
		for i := uint32(0); i < ngeoms; i++ {
			childFlags := f
			childFlags.HasBBox = false // nested bboxes are never serialized
			sub, err := decodePayload(c, childFlags, rt)
			if err != nil {
				return nil, err
			}
			if err := g.AddGeom(sub); err != nil {
				return nil, &gerrors.InvalidPayloadError{Reason: err.Error(), Offset: c.pos}
			}
		}
		return g, nil
	}
}

// Decode deserializes a full wire buffer (header, optional extended
// word, optional bbox, payload) into a Geometry. Failures are also
// forwarded to rt's error sink.
func Decode(buf []byte, rt *corert.Runtime) (*model.Geometry, error) {
	g, err := decodeBuffer(buf, rt)
	if err != nil {
		rt.Report(corert.SeverityError, err)
	}
	return g, err
}

func decodeBuffer(buf []byte, rt *corert.Runtime) (*model.Geometry, error) {
	c := &cursor{buf: buf}
	if err := c.need(HeaderSize); err != nil {
		return nil, err
	}
	varlen, err := c.u32()
	if err != nil {
		return nil, err
	}
	_ = varlen
	var sridBytes [3]byte
	copy(sridBytes[:], buf[c.pos:c.pos+3])
	c.pos += 3
	flagsByte := buf[c.pos]
	c.pos++

	ver := versionOf(flagsByte)
	if ver != V1 && ver != V2 {
		return nil, &gerrors.UnknownVersionError{Version: uint8(ver)}
	}

	var extended uint64
	if ver == V2 && HasExtended(flagsByte) {
		if err := c.need(ExtendedSize); err != nil {
			return nil, err
		}
		extended = binary.LittleEndian.Uint64(buf[c.pos:])
		c.pos += ExtendedSize
	}

	f, _ := UnpackFlags(flagsByte, extended)
	srid := UnpackSRID(sridBytes)

	var box *coord.Box
	if f.HasBBox {
		b, berr := readBoxFloats(c, f)
		if berr != nil {
			return nil, berr
		}
		box = &b
	}

	g, err := decodePayload(c, f, rt)
	if err != nil {
		return nil, err
	}
	g.SRID = srid
	g.BBox = box
	if box == nil && needsBBox(g) {
		if raw, ok := computeBBox(g); ok {
			w := raw.Widen()
			g.BBox = &w
		}
	}
	return g, nil
}
