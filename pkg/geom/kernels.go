package geom

import (
	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/planar"
)

// SegmentSide reports which side of the line through p1->p2 the point
// q falls on: -1 left, 1 right, 0 exactly on the line. Exposed
// standalone so a curve predicate outside the spatial index (e.g. a
// future WKT emitter) has a stable entry point.
func SegmentSide(p1, p2, q Point) int { return planar.SegmentSide(p1, p2, q) }

// ArcSide reports which side of the arc p1-p2-p3 the point q falls on,
// using the same -1/0/1 convention as SegmentSide. A degenerate
// (collinear) arc defers to the chord's segment side.
func ArcSide(p1, p2, p3, q Point) int { return planar.ArcSide(p1, p2, p3, q) }

// ArcBox computes the bounding box of a circular arc through p1
// (start), p2 (midpoint on the arc), p3 (end), enlarging to the full
// circumcircle on X/Y per this core's conservative policy for the
// arc's angular sweep. hasZ/hasM select which extra axes the box
// tracks (ranged over the three defining points).
func ArcBox(p1, p2, p3 Point, hasZ, hasM bool) Box {
	return coord.ArcBox(p1, p2, p3, hasZ, hasM)
}
