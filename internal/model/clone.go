package model

// CloneDeep returns a fully independent structural copy sharing no
// storage with g, including any cached bbox.
func (g *Geometry) CloneDeep() *Geometry {
	out := &Geometry{Type: g.Type, SRID: g.SRID, Flags: g.Flags}
	if g.Points != nil {
		out.Points = g.Points.Clone()
	}
	if g.Rings != nil {
		out.Rings = make([]*PointArray, len(g.Rings))
		for i, r := range g.Rings {
			out.Rings[i] = r.Clone()
		}
	}
	if g.Geoms != nil {
		out.Geoms = make([]*Geometry, len(g.Geoms))
		for i, sub := range g.Geoms {
			out.Geoms[i] = sub.CloneDeep()
		}
	}
	if g.ringKind != nil {
		out.ringKind = append([]RingKind(nil), g.ringKind...)
	}
	if g.BBox != nil {
		b := *g.BBox
		out.BBox = &b
	}
	return out
}
