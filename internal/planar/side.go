package planar

import (
	"math"

	"github.com/planargeo/geom/internal/coord"
)

// SegmentSide reports which side of the line through p1->p2 the point
// q falls on: -1 left, 1 right, 0 exactly on the line. A plain
// sign-of-cross-product test.
func SegmentSide(p1, p2, q coord.Point) int {
	cp := (p2.X-p1.X)*(q.Y-p1.Y) - (q.X-p1.X)*(p2.Y-p1.Y)
	switch {
	case cp > 0:
		return -1
	case cp < 0:
		return 1
	default:
		return 0
	}
}

// PointInSegment reports whether q lies on the closed segment p1-p2,
// given it has already been established to be collinear with it
// (SegmentSide == 0): a bounding-box containment check.
func PointInSegment(q, p1, p2 coord.Point) bool {
	minX, maxX := p1.X, p2.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := p1.Y, p2.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return q.X >= minX && q.X <= maxX && q.Y >= minY && q.Y <= maxY
}

// ArcSide reports which side of the arc p1-p2-p3 the point q falls on,
// using the same -1/0/1 convention as SegmentSide: 0 means q sits
// exactly on the circle through the three points. A degenerate
// (collinear) arc defers to the chord's segment side.
func ArcSide(p1, p2, p3, q coord.Point) int {
	center, radius, ok := arcCenterRadius(p1, p2, p3)
	if !ok {
		return SegmentSide(p1, p3, q)
	}
	d := hypotDist(q, center)
	switch {
	case d < radius:
		// Inside the circle: side depends on the arc's winding
		// (clockwise vs counter-clockwise through p1,p2,p3).
		if isClockwiseThrough(p1, p2, p3) {
			return 1
		}
		return -1
	case d > radius:
		if isClockwiseThrough(p1, p2, p3) {
			return -1
		}
		return 1
	default:
		return 0
	}
}

func hypotDist(a, b coord.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// isClockwiseThrough reports whether p1->p2->p3 winds clockwise around
// their circumcircle (Cartesian Y-up convention). The cross product
// computed here is negative for a clockwise turn; internal/model's
// Shoelace sum has the opposite sign and is positive for the same turn.
func isClockwiseThrough(p1, p2, p3 coord.Point) bool {
	area := (p2.X-p1.X)*(p3.Y-p1.Y) - (p3.X-p1.X)*(p2.Y-p1.Y)
	return area < 0
}
