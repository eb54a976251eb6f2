package planar

import (
	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
)

type edgeKind int

const (
	edgePoint edgeKind = iota
	edgeSegment
	edgeArc
)

type edge struct {
	kind       edgeKind
	p1, p2, p3 coord.Point
}

// edgesOf flattens a geometry into its leaf edges (points, straight
// segments, circular arcs), the same primitive decomposition
// internal/rectindex builds a tree over, but walked directly: the
// brute-force counterpart to the tree-accelerated path, a full
// pairwise scan with no pruning.
func edgesOf(g *model.Geometry) []edge {
	var out []edge
	switch {
	case g.Type == model.PointType:
		if g.Points != nil && g.Points.NumPoints() > 0 {
			out = append(out, edge{kind: edgePoint, p1: g.Points.Get(0)})
		}
	case g.Type == model.CircularStringType:
		n := g.Points.NumPoints()
		for i := 0; i+2 < n; i += 2 {
			out = append(out, edge{kind: edgeArc, p1: g.Points.Get(i), p2: g.Points.Get(i + 1), p3: g.Points.Get(i + 2)})
		}
	case g.Points != nil: // LineString, Triangle
		n := g.Points.NumPoints()
		for i := 0; i+1 < n; i++ {
			out = append(out, edge{kind: edgeSegment, p1: g.Points.Get(i), p2: g.Points.Get(i + 1)})
		}
	case g.Type == model.PolygonType:
		for _, r := range g.Rings {
			n := r.NumPoints()
			for i := 0; i+1 < n; i++ {
				out = append(out, edge{kind: edgeSegment, p1: r.Get(i), p2: r.Get(i + 1)})
			}
		}
	default:
		for _, sub := range g.Geoms {
			out = append(out, edgesOf(sub)...)
		}
	}
	return out
}

// distributeEdge dispatches one edge pair to the matching kernel. The
// twist sign is (re)set on every dispatch, the way the bruteforce
// distributor resets it per pair: kernels flip it internally when they
// swap operands, and a stale flip must not leak into the next pair.
func distributeEdge(a, b edge, dl *DistState) {
	dl.Twisted = 1
	switch a.kind {
	case edgePoint:
		switch b.kind {
		case edgePoint:
			PtPt(a.p1, b.p1, dl)
		case edgeSegment:
			PtSeg(a.p1, b.p1, b.p2, dl)
		case edgeArc:
			PtArc(a.p1, b.p1, b.p2, b.p3, dl)
		}
	case edgeSegment:
		switch b.kind {
		case edgePoint:
			dl.Twisted = -1
			PtSeg(b.p1, a.p1, a.p2, dl)
		case edgeSegment:
			SegSeg(a.p1, a.p2, b.p1, b.p2, dl)
		case edgeArc:
			SegArc(a.p1, a.p2, b.p1, b.p2, b.p3, dl)
		}
	case edgeArc:
		switch b.kind {
		case edgePoint:
			dl.Twisted = -1
			PtArc(b.p1, a.p1, a.p2, a.p3, dl)
		case edgeSegment:
			dl.Twisted = -1
			SegArc(b.p1, b.p2, a.p1, a.p2, a.p3, dl)
		case edgeArc:
			ArcArc(a.p1, a.p2, a.p3, b.p1, b.p2, b.p3, dl)
		}
	}
}

// ClosestPoints returns the pair of points realizing the minimum
// distance between g1 and g2, short-circuiting once a pair within
// threshold is found (distance still reported exactly, per the
// min_distance contract's tolerance semantics).
func ClosestPoints(g1, g2 *model.Geometry, threshold float64) (p1, p2 coord.Point, distance float64) {
	dl := NewDistState(ModeMin, threshold)
	e1, e2 := edgesOf(g1), edgesOf(g2)
	for _, a := range e1 {
		for _, b := range e2 {
			distributeEdge(a, b, dl)
			if dl.Distance <= dl.Threshold {
				return dl.P1, dl.P2, dl.Distance
			}
		}
	}
	return dl.P1, dl.P2, dl.Distance
}

// FarthestPoints returns the pair of points realizing the maximum
// distance between g1 and g2 (always a vertex-to-vertex extremum).
func FarthestPoints(g1, g2 *model.Geometry) (p1, p2 coord.Point, distance float64) {
	dl := NewDistState(ModeMax, 0)
	e1, e2 := edgesOf(g1), edgesOf(g2)
	for _, a := range e1 {
		for _, b := range e2 {
			distributeEdge(a, b, dl)
		}
	}
	return dl.P1, dl.P2, dl.Distance
}
