package geom

import (
	"github.com/planargeo/geom/internal/planar"
	"github.com/planargeo/geom/internal/rectindex"
)

// Index is a rectangle-tree spatial index built over one
// geometry's primitive edges (points, straight segments, circular
// arcs), accelerating point-in-geometry, intersection, and
// minimum-distance queries.
//
// Example:
//
//	idx := geom.FromGeometry(polygon)
//	if idx.ContainsPoint(geom.Point{X: 1, Y: 1}) {
//	    // ...
//	}
type Index struct {
	root *rectindex.Node
}

// FromGeometry builds a rectangle-tree index over g. Returns an Index
// whose queries are trivially false/infinite for an empty geometry.
func FromGeometry(g *Geometry) *Index {
	return &Index{root: rectindex.FromGeometry(g.inner)}
}

// FromGeometryInterruptible is FromGeometry with host cancellation:
// construction polls rt's interrupt flag between geometry nodes and
// fails with InterruptedError when it is set.
func FromGeometryInterruptible(g *Geometry, rt *Runtime) (*Index, error) {
	root, err := rectindex.FromGeometryInterruptible(g.inner, rt)
	if err != nil {
		return nil, err
	}
	return &Index{root: root}, nil
}

// ContainsPoint reports whether q is contained in or lies on the
// boundary of the geometry this index was built from. Only area
// variants (Polygon, CurvePolygon, and Multi-area/collections
// containing one) can ever answer true.
func (idx *Index) ContainsPoint(q Point) bool {
	return rectindex.ContainsPoint(idx.root, q)
}

// Intersects reports whether the geometries indexed by a and b share a
// point, via pruned simultaneous descent with a full-containment
// shortcut for area types.
func Intersects(a, b *Index) bool {
	return rectindex.Intersects(a.root, b.root)
}

// MinDistance returns the minimum distance between the geometries
// indexed by a and b, via best-first bounded descent. threshold lets
// a caller stop early once a "close enough" answer is found; pass 0
// for an exact minimum.
func MinDistance(a, b *Index, threshold float64) float64 {
	return rectindex.MinDistance(a.root, b.root, threshold)
}

// MinDistancePoints is MinDistance's closest-point-pair variant,
// additionally returning the witnessing coordinates on each geometry.
func MinDistancePoints(a, b *Index, threshold float64) (p1, p2 Point, dist float64) {
	return rectindex.MinDistancePoints(a.root, b.root, threshold)
}

// ClosestPoints returns the pair of points realizing the minimum
// distance between g1 and g2 by brute-force pairwise edge scan (no
// spatial index), useful for small geometries or cross-checking the
// index-accelerated MinDistancePoints.
func ClosestPoints(g1, g2 *Geometry, threshold float64) (p1, p2 Point, distance float64) {
	return planar.ClosestPoints(g1.inner, g2.inner, threshold)
}

// FarthestPoints returns the pair of points realizing the maximum
// distance between g1 and g2 by brute-force pairwise edge scan.
func FarthestPoints(g1, g2 *Geometry) (p1, p2 Point, distance float64) {
	return planar.FarthestPoints(g1.inner, g2.inner)
}

// PointInRing tests q against a single linear ring via the
// crossing-number test, without building a spatial index.
func PointInRing(ring *PointArray, q Point) bool {
	return planar.PointInRing(ring.inner, q)
}

// LineLength sums the Euclidean distance between consecutive points of
// g (LineString, CircularString, Triangle).
func (g *Geometry) LineLength() float64 { return planar.LineLength(g.inner) }

// PolygonArea returns the exterior ring's signed area minus the
// absolute area of every hole.
func (g *Geometry) PolygonArea() float64 { return planar.PolygonArea(g.inner) }

// PolygonPerimeter returns the exterior ring's length plus every
// hole's length.
func (g *Geometry) PolygonPerimeter() float64 { return planar.PolygonPerimeter(g.inner) }
