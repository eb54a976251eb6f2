package wire

import (
	"encoding/binary"
	"math"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/corert"
	"github.com/planargeo/geom/internal/gerrors"
	"github.com/planargeo/geom/internal/model"
)

func putU32(buf []byte, v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return append(buf, b[:]...)
}

func putF64(buf []byte, v float64) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], math.Float64bits(v))
	return append(buf, b[:]...)
}

func putF32(buf []byte, v float32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], math.Float32bits(v))
	return append(buf, b[:]...)
}

// appendOrdinates writes every coordinate of pa in order.
func appendOrdinates(buf []byte, pa *model.PointArray) []byte {
	n := pa.NumPoints()
	for i := 0; i < n; i++ {
		p := pa.Get(i)
		buf = putF64(buf, p.X)
		buf = putF64(buf, p.Y)
		if pa.Flags.HasZ {
			buf = putF64(buf, p.Z)
		}
		if pa.Flags.HasM {
			buf = putF64(buf, p.M)
		}
	}
	return buf
}

// encodePayload writes the recursive payload for g. A payload never
// includes a bbox segment of its own: the top-level bbox, if any, is
// written once by encode before the payload, and nested collection
// children never carry one.
func encodePayload(buf []byte, g *model.Geometry, rt *corert.Runtime) ([]byte, error) {
	if err := rt.CheckInterrupted("wire.encodePayload"); err != nil {
		return nil, err
	}
	switch {
	case g.Points != nil:
		buf = putU32(buf, uint32(g.Type))
		buf = putU32(buf, uint32(g.Points.NumPoints()))
		buf = appendOrdinates(buf, g.Points)
		return buf, nil
	case g.Type == model.PolygonType:
		buf = putU32(buf, uint32(g.Type))
		buf = putU32(buf, uint32(len(g.Rings)))
		for _, r := range g.Rings {
			buf = putU32(buf, uint32(r.NumPoints()))
		}
		if len(g.Rings)%2 != 0 {
			buf = putU32(buf, 0)
		}
		for _, r := range g.Rings {
			buf = appendOrdinates(buf, r)
		}
		return buf, nil
	case isCollectionType(g.Type):
		buf = putU32(buf, uint32(g.Type))
		buf = putU32(buf, uint32(len(g.Geoms)))
		var err error
		for _, sub := range g.Geoms {
			buf, err = encodePayload(buf, sub, rt)
			if err != nil {
				return nil, err
			}
		}
		return buf, nil
	default:
		return nil, &gerrors.InvalidPayloadError{Reason: "unknown geometry type " + g.Type.String()}
	}
}

// computeBBox derives the full-precision bbox of g by walking every
// owned coordinate, recursively over collections.
func computeBBox(g *model.Geometry) (coord.Box, bool) {
	bz, bm := g.Flags.BoxFlags()
	var acc coord.Box
	have := false
	absorb := func(pa *model.PointArray) {
		n := pa.NumPoints()
		for i := 0; i < n; i++ {
			p := pa.Get(i)
			b := coord.FromPoint(p, bz, bm)
			if !have {
				acc = b
				have = true
			} else {
				acc, _ = coord.Union(acc, b)
			}
		}
	}
	if g.Points != nil {
		absorb(g.Points)
	}
	for _, r := range g.Rings {
		absorb(r)
	}
	for _, sub := range g.Geoms {
		b, ok := computeBBox(sub)
		if !ok {
			continue
		}
		if !have {
			acc, have = b, true
		} else {
			acc, _ = coord.Union(acc, b)
		}
	}
	return acc, have
}

// needsBBox reports whether FromGeometry attaches a bbox for this
// variant by default: every non-empty, non-Point type. Empty
// geometries never carry a bbox, and a lone point's bbox is the point
// itself and adds no filtering value.
func needsBBox(g *model.Geometry) bool {
	if g.IsEmpty() {
		return false
	}
	switch g.Type {
	case model.PointType:
		return false
	default:
		return true
	}
}

// FromGeometry serializes g to its V2 wire form, attaching a widened
// bbox when the geometry's type warrants one and none is already
// cached.
func FromGeometry(g *model.Geometry, rt *corert.Runtime) ([]byte, error) {
	return encode(g, V2, rt)
}

// FromGeometryV1 serializes g to the legacy V1 wire form.
func FromGeometryV1(g *model.Geometry, rt *corert.Runtime) ([]byte, error) {
	return encode(g, V1, rt)
}

func encode(g *model.Geometry, ver Version, rt *corert.Runtime) ([]byte, error) {
	f := g.Flags
	box := g.BBox
	if box == nil && needsBBox(g) {
		if raw, ok := computeBBox(g); ok {
			box = &raw
		}
	}
	if box != nil {
		bz, bm := f.BoxFlags()
		if box.HasZ != bz || box.HasM != bm {
			err := &gerrors.DimensionMismatchError{
				Context: "serialize bbox",
				Want:    dimString(bz, bm),
				Got:     dimString(box.HasZ, box.HasM),
			}
			rt.Report(corert.SeverityError, err)
			return nil, err
		}
		// Widen whatever box is about to hit the wire: a cached box may
		// still be full precision, and widening is idempotent on one
		// that already went through it.
		w := box.Widen()
		box = &w
	}
	f.HasBBox = box != nil

	flagsByte := PackFlags(f, ver)
	extended := ver == V2 && f.Solid
	if extended {
		flagsByte |= bitV2Extended
	}

	buf := make([]byte, 0, SizeWithBBox(g)+ExtendedSize)
	buf = putU32(buf, 0) // varlen placeholder, patched below
	srid := PackSRID(g.SRID)
	buf = append(buf, srid[0], srid[1], srid[2])
	buf = append(buf, flagsByte)

	if extended {
		var eb [8]byte
		binary.LittleEndian.PutUint64(eb[:], PackExtended(f))
		buf = append(buf, eb[:]...)
	}

	if box != nil {
		buf = writeBoxFloats(buf, *box)
	}

	buf, err := encodePayload(buf, g, rt)
	if err != nil {
		rt.Report(corert.SeverityError, err)
		return nil, err
	}

	binary.LittleEndian.PutUint32(buf[0:4], PackVarlen(uint32(len(buf))))
	return buf, nil
}
