package planar

import (
	"math"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
)

// ringArea returns the signed Shoelace area of a closed ring (half the
// signedArea sum internal/model uses for orientation, since that one
// is scaled for a cheap sign test and this one needs the true
// magnitude): positive for a clockwise ring.
func ringArea(pa *model.PointArray) float64 {
	n := pa.NumPoints()
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n-1; i++ {
		p1 := pa.Get(i)
		p2 := pa.Get(i + 1)
		sum += (p2.X - p1.X) * (p2.Y + p1.Y)
	}
	return sum / 2
}

func ringLength(pa *model.PointArray) float64 {
	n := pa.NumPoints()
	var total float64
	for i := 0; i+1 < n; i++ {
		p1 := pa.Get(i)
		p2 := pa.Get(i + 1)
		total += math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	}
	return total
}

// LineLength sums the Euclidean distance between consecutive points of
// g's point array (LineString, CircularString, Triangle).
func LineLength(g *model.Geometry) float64 {
	if g.Points == nil {
		return 0
	}
	return ringLength(g.Points)
}

// PolygonArea returns the exterior ring's signed area minus the
// absolute area of every hole.
func PolygonArea(g *model.Geometry) float64 {
	if len(g.Rings) == 0 {
		return 0
	}
	area := ringArea(g.Rings[0])
	for _, hole := range g.Rings[1:] {
		area -= math.Abs(ringArea(hole))
	}
	return area
}

// PolygonPerimeter returns the exterior ring's length plus every
// hole's length.
func PolygonPerimeter(g *model.Geometry) float64 {
	total := 0.0
	for _, r := range g.Rings {
		total += ringLength(r)
	}
	return total
}

// PointInRing tests a point against a single linear ring via the
// crossing-number test: ring must be closed
// (first == last), standard for this model's rings. Exposed standalone
// for callers that don't need a full rectangle tree for a one-off
// test; internal/rectindex.ContainsPoint runs the boundary-aware
// variant this reduces from when on-boundary detection also matters.
func PointInRing(pa *model.PointArray, q coord.Point) bool {
	n := pa.NumPoints()
	if n < 2 {
		return false
	}
	crossings := 0
	v1 := pa.Get(0)
	for i := 0; i < n-1; i++ {
		v2 := pa.Get(i + 1)
		if (v1.Y <= q.Y && v2.Y > q.Y) || (v1.Y > q.Y && v2.Y <= q.Y) {
			vt := (q.Y - v1.Y) / (v2.Y - v1.Y)
			if q.X < v1.X+vt*(v2.X-v1.X) {
				crossings++
			}
		}
		v1 = v2
	}
	return crossings%2 == 1
}
