package geom

// Type returns the geometry's variant tag.
func (g *Geometry) Type() GeomType { return g.inner.Type }

// SRID returns the spatial reference identifier.
func (g *Geometry) SRID() int32 { return g.inner.GetSRID() }

// SetSRID sets the spatial reference identifier in place.
func (g *Geometry) SetSRID(srid int32) { g.inner.SetSRID(srid) }

// HasZ reports Z-ordinate presence.
func (g *Geometry) HasZ() bool { return g.inner.HasZ() }

// HasM reports M-ordinate presence.
func (g *Geometry) HasM() bool { return g.inner.HasM() }

// IsEmpty reports whether the geometry has no coordinates anywhere in
// its tree.
func (g *Geometry) IsEmpty() bool { return g.inner.IsEmpty() }

// CountVertices returns the total number of coordinates in the tree.
func (g *Geometry) CountVertices() int { return g.inner.CountVertices() }
