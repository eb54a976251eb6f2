package wire

import (
	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
)

func isCollectionType(t model.GeomType) bool {
	switch t {
	case model.MultiPointType, model.MultiLineStringType, model.MultiPolygonType,
		model.GeometryCollectionType, model.CompoundCurveType, model.CurvePolygonType,
		model.MultiCurveType, model.MultiSurfaceType, model.PolyhedralSurfaceType, model.TINType:
		return true
	}
	return false
}

// payloadSize computes the recursive payload size of g: type tag,
// counts, and ordinates; for collections, the concatenated payloads
// of every child with each child's own bbox forced off.
func payloadSize(g *model.Geometry) uint32 {
	ndims := uint32(g.Flags.Ndims())
	switch {
	case g.Points != nil:
		n := uint32(g.Points.NumPoints())
		return 4 + 4 + n*ndims*8
	case g.Type == model.PolygonType:
		size := uint32(4 + 4 + len(g.Rings)*4)
		if len(g.Rings)%2 != 0 {
			size += 4 // zero-padding word when nrings is odd
		}
		for _, r := range g.Rings {
			size += uint32(r.NumPoints()) * ndims * 8
		}
		return size
	case isCollectionType(g.Type):
		size := uint32(4 + 4)
		for _, sub := range g.Geoms {
			size += payloadSize(sub)
		}
		return size
	default:
		return 8
	}
}

// bboxSize returns the byte length of the bbox segment under f: 2
// single-precision floats per box axis (6 floats geodetic, 2*ndims
// otherwise).
func bboxSize(f coord.Flags) uint32 {
	return uint32(f.NdimsBox()) * 2 * 4
}

// SizeFor returns the serialized size of g as if no bbox were
// attached, the size of a freshly parsed geometry before one is
// computed and attached.
func SizeFor(g *model.Geometry) uint32 {
	size := uint32(HeaderSize) + payloadSize(g)
	if g.Flags.Solid {
		size += ExtendedSize
	}
	return size
}

// SizeWithBBox returns the serialized size of g once a bbox has been
// attached (the size FromGeometry actually produces for types that
// carry one).
func SizeWithBBox(g *model.Geometry) uint32 {
	size := SizeFor(g)
	if g.BBox != nil || needsBBox(g) {
		size += bboxSize(g.Flags)
	}
	return size
}
