package model

import "github.com/planargeo/geom/internal/gerrors"

// AddRing appends a ring to a Polygon, checking dimensionality
// compatibility and ring validity (closed, >= 4 points).
// The first ring added becomes the exterior; every later one is
// interior.
func (g *Geometry) AddRing(ring *PointArray) error {
	if g.Type != PolygonType {
		return &gerrors.SubtypeNotAllowedError{Collection: g.Type.String(), Member: "ring"}
	}
	if !flagsCompatible(g.Flags, ring.Flags) {
		return dimMismatch("add_ring", g.Flags, ring.Flags)
	}
	if err := ValidateRing(ring); err != nil {
		return err
	}
	kind := RingExterior
	if len(g.Rings) > 0 {
		kind = RingInterior
	}
	g.Rings = append(g.Rings, ring)
	g.ringKind = append(g.ringKind, kind)
	return nil
}

// RingKindAt returns the exterior/interior tag for ring i.
func (g *Geometry) RingKindAt(i int) RingKind {
	return g.ringKind[i]
}

// subtypeAllowed reports whether member may be added to a collection
// of kind collection.
func subtypeAllowed(collection GeomType, member GeomType) bool {
	switch collection {
	case MultiPointType:
		return member == PointType
	case MultiLineStringType:
		return member == LineStringType
	case MultiPolygonType:
		return member == PolygonType
	case MultiCurveType:
		return member == LineStringType || member == CircularStringType || member == CompoundCurveType
	case MultiSurfaceType:
		return member == PolygonType || member == CurvePolygonType
	case PolyhedralSurfaceType, TINType:
		return member == PolygonType || member == TriangleType
	case GeometryCollectionType:
		return true
	case CompoundCurveType:
		return member == LineStringType || member == CircularStringType
	case CurvePolygonType:
		return member == LineStringType || member == CircularStringType || member == CompoundCurveType
	default:
		return false
	}
}

// AddGeom appends a sub-geometry to a collection variant, checking
// subtype compatibility, dimensionality, and (for a member whose own
// backing is a single point array) point-count validity on that member.
func (g *Geometry) AddGeom(sub *Geometry) error {
	if !subtypeAllowed(g.Type, sub.Type) {
		return &gerrors.SubtypeNotAllowedError{Collection: g.Type.String(), Member: sub.Type.String()}
	}
	if !flagsCompatible(g.Flags, sub.Flags) {
		return dimMismatch("add_geom", g.Flags, sub.Flags)
	}
	if sub.Points != nil {
		if err := ValidatePoints(sub.Type, sub.Points); err != nil {
			return err
		}
	}
	if g.Type == CurvePolygonType {
		kind := RingExterior
		if len(g.Geoms) > 0 {
			kind = RingInterior
		}
		g.ringKind = append(g.ringKind, kind)
	}
	g.Geoms = append(g.Geoms, sub)
	return nil
}
