package geom

import "github.com/planargeo/geom/internal/model"

// SwapOrdinates swaps two named axes over every owned coordinate in
// the tree (and the matching ranges of a cached bbox). Swapping an
// axis not present on this geometry (e.g. M on an XYZ geometry) is a
// no-op.
func (g *Geometry) SwapOrdinates(a, b Axis) { g.inner.SwapOrdinates(a, b) }

// Scale multiplies every owned coordinate componentwise by factor
// (X, Y, Z, M), re-deriving the cached bbox if present.
func (g *Geometry) Scale(factor [4]float64) { g.inner.Scale(factor) }

// ForceClockwise normalizes a Polygon's rings: the exterior to
// clockwise, every interior ring to counter-clockwise. A no-op on any
// other variant.
func (g *Geometry) ForceClockwise() { g.inner.ForceClockwise() }

// IsClockwise reports whether ring's signed area is non-negative.
func IsClockwise(ring *PointArray) bool { return model.IsClockwise(ring.inner) }

// CloneDeep returns a fully independent structural copy sharing no
// storage with g.
func (g *Geometry) CloneDeep() *Geometry { return wrap(g.inner.CloneDeep()) }

// AsCurve lifts a linear variant to its curvilinear counterpart: a
// LineString becomes a one-piece CompoundCurve, a Polygon a
// CurvePolygon, and a MultiLineString or MultiPolygon a MultiCurve or
// MultiSurface whose members are lifted the same way. Every other
// variant (MultiPoint included) is returned cloned, unchanged.
func (g *Geometry) AsCurve() *Geometry { return wrap(g.inner.AsCurve()) }

// CollectionExtract returns a fresh multi-geometry containing exactly
// the sub-geometries of wantType found anywhere in g, recursively
// flattened through nested collections.
func (g *Geometry) CollectionExtract(wantType GeomType) *Geometry {
	return wrap(model.CollectionExtract(g.inner, wantType))
}
