package model

// AsCurve lifts a linear variant to its curvilinear counterpart: a
// LineString becomes a one-piece CompoundCurve, a Polygon becomes a
// CurvePolygon whose rings are one-piece LineStrings, and a
// MultiLineString or MultiPolygon becomes a MultiCurve or MultiSurface
// whose members are lifted the same way. Variants that are already
// curvilinear, or have no curvilinear counterpart (Point, MultiPoint,
// Triangle), are returned unchanged (cloned, to keep the operation
// total and side-effect-free).
func (g *Geometry) AsCurve() *Geometry {
	switch g.Type {
	case LineStringType:
		out := &Geometry{Type: CompoundCurveType, SRID: g.SRID, Flags: g.Flags}
		out.Geoms = []*Geometry{g.CloneDeep()}
		return out
	case PolygonType:
		out := &Geometry{Type: CurvePolygonType, SRID: g.SRID, Flags: g.Flags}
		for i, ring := range g.Rings {
			lineRing := &Geometry{Type: LineStringType, SRID: g.SRID, Flags: g.Flags, Points: ring.Clone()}
			out.Geoms = append(out.Geoms, lineRing)
			kind := RingExterior
			if i > 0 {
				kind = RingInterior
			}
			out.ringKind = append(out.ringKind, kind)
		}
		return out
	case MultiLineStringType:
		out := &Geometry{Type: MultiCurveType, SRID: g.SRID, Flags: g.Flags}
		for _, sub := range g.Geoms {
			out.Geoms = append(out.Geoms, sub.AsCurve())
		}
		return out
	case MultiPolygonType:
		out := &Geometry{Type: MultiSurfaceType, SRID: g.SRID, Flags: g.Flags}
		for _, sub := range g.Geoms {
			out.Geoms = append(out.Geoms, sub.AsCurve())
		}
		return out
	default:
		return g.CloneDeep()
	}
}
