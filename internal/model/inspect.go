package model

// CountVertices walks the tree and sums every point array's length.
func (g *Geometry) CountVertices() int {
	if g.Points != nil {
		return g.Points.NumPoints()
	}
	total := 0
	for _, r := range g.Rings {
		total += r.NumPoints()
	}
	for _, sub := range g.Geoms {
		total += sub.CountVertices()
	}
	return total
}

// IsEmpty reports whether the geometry has no coordinates anywhere in
// its tree.
func (g *Geometry) IsEmpty() bool {
	return g.CountVertices() == 0
}

// HasZ reports Z-ordinate presence.
func (g *Geometry) HasZ() bool { return g.Flags.HasZ }

// HasM reports M-ordinate presence.
func (g *Geometry) HasM() bool { return g.Flags.HasM }

// GetSRID returns the spatial reference identifier.
func (g *Geometry) GetSRID() int32 { return g.SRID }

// SetSRID sets the spatial reference identifier. It does not recurse:
// sub-geometries share their parent's SRID implicitly and are never
// queried for it independently, matching the wire format where SRID is
// stored once in the header.
func (g *Geometry) SetSRID(srid int32) { g.SRID = srid }
