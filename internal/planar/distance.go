// Package planar implements the planar measure and predicate kernels:
// point/segment/arc distance, segment intersection, side tests, and
// area/length: the leaf oracles internal/rectindex dispatches to and
// the primitives user-level measures are built from.
package planar

import (
	"math"

	"github.com/planargeo/geom/internal/coord"
)

// Mode selects whether a DistState tracks the minimum or maximum
// distance seen so far. The sign is what lets a single comparison
// expression serve both directions.
type Mode int

const (
	ModeMin Mode = 1
	ModeMax Mode = -1
)

// DistState carries the running extremum across a sequence of
// primitive-primitive distance calls. Twisted tracks whether the two
// top-level arguments have been swapped along the recursion, so P1/P2
// always come back in the order the caller passed their geometries,
// even though individual kernels below sometimes swap operands for
// convenience.
type DistState struct {
	Distance  float64
	P1, P2    coord.Point
	Mode      Mode
	Twisted   int
	Threshold float64
}

// NewDistState starts a fresh accumulator: +Inf for minimum-distance
// search (anything beats it), -1 for maximum-distance search (anything
// non-negative beats it).
func NewDistState(mode Mode, threshold float64) *DistState {
	d := &DistState{Mode: mode, Twisted: 1, Threshold: threshold}
	if mode == ModeMin {
		d.Distance = math.Inf(1)
	} else {
		d.Distance = -1
	}
	return d
}

// betterThan reports whether a candidate distance improves on the
// current extremum, (old-new)*mode > 0: for ModeMin that's new<old,
// for ModeMax that's new>old.
func (dl *DistState) betterThan(candidate float64) bool {
	return (dl.Distance-candidate)*float64(dl.Mode) > 0
}

func (dl *DistState) record(p1, p2 coord.Point, dist float64) {
	if dl.Twisted < 0 {
		p1, p2 = p2, p1
	}
	dl.Distance = dist
	dl.P1 = p1
	dl.P2 = p2
}

// PtPt updates dl with the distance between two points.
func PtPt(p1, p2 coord.Point, dl *DistState) {
	dist := math.Hypot(p2.X-p1.X, p2.Y-p1.Y)
	if dl.betterThan(dist) {
		dl.record(p1, p2, dist)
	}
}

// PtSeg updates dl with the distance from p to the closed segment AB:
// project p onto the line, clamp to the segment, and in max-distance
// mode compare against whichever endpoint the
// projection parameter r favors rather than the true closest point
// (the farthest point from p on a segment is always an endpoint).
func PtSeg(p, a, b coord.Point, dl *DistState) {
	if a.X == b.X && a.Y == b.Y {
		PtPt(p, a, dl)
		return
	}
	abx, aby := b.X-a.X, b.Y-a.Y
	r := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / (abx*abx + aby*aby)

	if dl.Mode == ModeMax {
		if r >= 0.5 {
			PtPt(p, a, dl)
		} else {
			PtPt(p, b, dl)
		}
		return
	}
	if r < 0 {
		PtPt(p, a, dl)
		return
	}
	if r >= 1 {
		PtPt(p, b, dl)
		return
	}
	c := coord.Point{X: a.X + r*abx, Y: a.Y + r*aby}
	PtPt(p, c, dl)
}

// SegSeg updates dl with the distance between segments AB and CD:
// degenerate segments fall back to PtSeg; otherwise the parametric
// r/s intersection test is used, and a parallel,
// non-intersecting, or max-distance case falls back to checking all
// four endpoint-vs-opposite-segment distances.
func SegSeg(a, b, c, d coord.Point, dl *DistState) {
	if a.X == b.X && a.Y == b.Y {
		PtSeg(a, c, d, dl)
		return
	}
	if c.X == d.X && c.Y == d.Y {
		dl.Twisted = -dl.Twisted
		PtSeg(d, a, b, dl)
		return
	}

	rTop := (a.Y-c.Y)*(d.X-c.X) - (a.X-c.X)*(d.Y-c.Y)
	rBot := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)
	sTop := (a.Y-c.Y)*(b.X-a.X) - (a.X-c.X)*(b.Y-a.Y)
	sBot := (b.X-a.X)*(d.Y-c.Y) - (b.Y-a.Y)*(d.X-c.X)

	fourWayFallback := func() {
		PtSeg(a, c, d, dl)
		PtSeg(b, c, d, dl)
		dl.Twisted = -dl.Twisted
		PtSeg(c, a, b, dl)
		PtSeg(d, a, b, dl)
	}

	if rBot == 0 || sBot == 0 {
		fourWayFallback()
		return
	}

	r := rTop / rBot
	s := sTop / sBot

	if r < 0 || r > 1 || s < 0 || s > 1 || dl.Mode == ModeMax {
		fourWayFallback()
		return
	}

	// Segments intersect: the intersection point has distance zero. If
	// it coincides with an input endpoint exactly, report that point.
	var p coord.Point
	switch {
	case a == c || a == d:
		p = a
	case b == c || b == d:
		p = b
	default:
		p = coord.Point{X: a.X + r*(b.X-a.X), Y: a.Y + r*(b.Y-a.Y)}
	}
	dl.Distance = 0
	dl.P1, dl.P2 = p, p
}

// circleProjection returns the point on the circle of the given center
// and radius closest to (or, for the far side, farthest from) p, used
// by the arc kernels below to reduce an arc to a chord-bounded circle
// problem: distance to the nearest point on the circle, clamped to
// the arc's angular extent.
func circleProjection(p, center coord.Point, radius float64, far bool) coord.Point {
	dx, dy := p.X-center.X, p.Y-center.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		// p is the center: any point on the circle is equidistant: pick
		// the +X direction arbitrarily.
		dx, dy, d = 1, 0, 1
	}
	sign := 1.0
	if far {
		sign = -1.0
	}
	return coord.Point{X: center.X + sign*radius*dx/d, Y: center.Y + sign*radius*dy/d}
}

// angleOf returns the angle of p around center in [0, 2*pi).
func angleOf(p, center coord.Point) float64 {
	a := math.Atan2(p.Y-center.Y, p.X-center.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// angleInSweep reports whether angle a lies within the arc swept from
// start to end through mid (all already expressed as angleOf values).
// Offsets are measured counter-clockwise from start; mid falling past
// end means the arc actually runs clockwise, and the covered offsets
// are the complement of the counter-clockwise range.
func angleInSweep(a, start, mid, end float64) bool {
	offset := func(x float64) float64 {
		o := math.Mod(x-start, 2*math.Pi)
		if o < 0 {
			o += 2 * math.Pi
		}
		return o
	}
	m := offset(mid)
	e := offset(end)
	x := offset(a)
	if m <= e {
		// Counter-clockwise: the arc covers offsets [0, e].
		return x <= e
	}
	// Clockwise: the arc covers start itself plus offsets [e, 2*pi).
	return x == 0 || x >= e
}

// arcCenterRadius returns the circumcircle of an arc's three defining
// points, or ok=false if they are (nearly) collinear, in which case
// the "arc" is really a straight segment from p1 to p3.
func arcCenterRadius(p1, p2, p3 coord.Point) (center coord.Point, radius float64, ok bool) {
	b := coord.ArcBox(p1, p2, p3, false, false)
	cx := (b.Low.X + b.High.X) / 2
	cy := (b.Low.Y + b.High.Y) / 2
	r := (b.High.X - b.Low.X) / 2
	if r <= 0 {
		return coord.Point{}, 0, false
	}
	// ArcBox already falls back to the envelope for collinear inputs,
	// which is never a true circle: detect that case by checking p1 is
	// actually r from the candidate center.
	if math.Abs(math.Hypot(p1.X-cx, p1.Y-cy)-r) > 1e-6*math.Max(1, r) {
		return coord.Point{}, 0, false
	}
	return coord.Point{X: cx, Y: cy}, r, true
}

// closestArcPoint returns the closest (or farthest) point on arc
// p1-p2-p3 to q: the circle projection if it falls within the arc's
// angular sweep, else the nearer (or farther) of the two endpoints.
func closestArcPoint(q, p1, p2, p3 coord.Point, far bool) coord.Point {
	center, radius, ok := arcCenterRadius(p1, p2, p3)
	if !ok {
		// Degenerate: treat as the segment p1-p3.
		dl := NewDistState(ModeMin, 0)
		if far {
			dl = NewDistState(ModeMax, 0)
		}
		PtSeg(q, p1, p3, dl)
		if far {
			if dl.P1 == q {
				return dl.P2
			}
			return dl.P1
		}
		if dl.P1 == q {
			return dl.P2
		}
		return dl.P1
	}
	proj := circleProjection(q, center, radius, far)
	startA, midA, endA := angleOf(p1, center), angleOf(p2, center), angleOf(p3, center)
	if angleInSweep(angleOf(proj, center), startA, midA, endA) {
		return proj
	}
	// Outside the sweep: the extremum is at one of the two endpoints.
	d1 := math.Hypot(q.X-p1.X, q.Y-p1.Y)
	d3 := math.Hypot(q.X-p3.X, q.Y-p3.Y)
	if far {
		if d1 >= d3 {
			return p1
		}
		return p3
	}
	if d1 <= d3 {
		return p1
	}
	return p3
}

// PtArc updates dl with the distance from p to the arc p1-p2-p3.
func PtArc(p, p1, p2, p3 coord.Point, dl *DistState) {
	far := dl.Mode == ModeMax
	c := closestArcPoint(p, p1, p2, p3, far)
	PtPt(p, c, dl)
}

// closestSegPoint returns the point of the closed segment AB nearest
// to p: the perpendicular foot when it falls inside the segment, the
// nearer endpoint otherwise.
func closestSegPoint(p, a, b coord.Point) coord.Point {
	abx, aby := b.X-a.X, b.Y-a.Y
	den := abx*abx + aby*aby
	if den == 0 {
		return a
	}
	r := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / den
	if r <= 0 {
		return a
	}
	if r >= 1 {
		return b
	}
	return coord.Point{X: a.X + r*abx, Y: a.Y + r*aby}
}

// SegArc updates dl with the distance between segment AB and arc
// p1-p2-p3. Candidates: each segment endpoint reflected onto the arc,
// each arc endpoint against the segment, and the perpendicular foot of
// the arc's center on the segment reflected onto the arc; the last one
// catches a minimum realized between both primitives' interiors, which
// no endpoint projection samples. A degenerate (collinear) arc is the
// straight segment p1-p3.
func SegArc(a, b, p1, p2, p3 coord.Point, dl *DistState) {
	center, _, ok := arcCenterRadius(p1, p2, p3)
	if !ok {
		SegSeg(a, b, p1, p3, dl)
		return
	}
	far := dl.Mode == ModeMax
	// Every candidate below runs point-vs-segment with the point taken
	// from the arc, so the recorded pair order is flipped for the
	// duration of this call to keep P1 on the segment side.
	dl.Twisted = -dl.Twisted
	ca := closestArcPoint(a, p1, p2, p3, far)
	cb := closestArcPoint(b, p1, p2, p3, far)
	PtSeg(ca, a, b, dl)
	PtSeg(cb, a, b, dl)
	PtSeg(p1, a, b, dl)
	PtSeg(p3, a, b, dl)
	foot := closestSegPoint(center, a, b)
	cf := closestArcPoint(foot, p1, p2, p3, far)
	PtSeg(cf, a, b, dl)
	dl.Twisted = -dl.Twisted
}

// ArcArc updates dl with the distance between two arcs: each arc's
// endpoints reflected onto the other, plus the approach along the line
// joining the two centers, the interior-vs-interior case the endpoint
// candidates miss. A degenerate arc on either side reduces to the
// segment case.
func ArcArc(p1, p2, p3, q1, q2, q3 coord.Point, dl *DistState) {
	ca, _, okA := arcCenterRadius(p1, p2, p3)
	if !okA {
		SegArc(p1, p3, q1, q2, q3, dl)
		return
	}
	cb, _, okB := arcCenterRadius(q1, q2, q3)
	if !okB {
		dl.Twisted = -dl.Twisted
		SegArc(q1, q3, p1, p2, p3, dl)
		dl.Twisted = -dl.Twisted
		return
	}
	far := dl.Mode == ModeMax
	c1 := closestArcPoint(q1, p1, p2, p3, far)
	c2 := closestArcPoint(q2, p1, p2, p3, far)
	c3 := closestArcPoint(q3, p1, p2, p3, far)
	PtPt(c1, q1, dl)
	PtPt(c2, q2, dl)
	PtPt(c3, q3, dl)
	d1 := closestArcPoint(p1, q1, q2, q3, far)
	d3 := closestArcPoint(p3, q1, q2, q3, far)
	PtPt(p1, d1, dl)
	PtPt(p3, d3, dl)
	// Center-line candidates, taken from both sides since either arc's
	// sweep may clamp its point away from the ideal direction.
	pa := closestArcPoint(cb, p1, p2, p3, far)
	PtPt(pa, closestArcPoint(pa, q1, q2, q3, far), dl)
	qb := closestArcPoint(ca, q1, q2, q3, far)
	PtPt(closestArcPoint(qb, p1, p2, p3, far), qb, dl)
}
