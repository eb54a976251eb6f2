package rectindex

import (
	"math"
	"sort"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/planar"
)

// distanceState carries the running bounds across a MinDistance
// descent: MinDist is the best distance found so far, MaxDist the
// smallest proven upper bound on the true answer (any node pair whose
// rectangles can't possibly beat it is pruned).
type distanceState struct {
	Threshold float64
	MinDist   float64
	MaxDist   float64
	P1, P2    coord.Point
}

// nodeMinDistance is the closest two rectangles can possibly place
// their contents, from their relative orientation (O(1), no square
// root unless the corners are diagonal).
func nodeMinDistance(n1, n2 *Node) float64 {
	left := n1.Box.Low.X > n2.Box.High.X
	right := n1.Box.High.X < n2.Box.Low.X
	bottom := n1.Box.Low.Y > n2.Box.High.Y
	top := n1.Box.High.Y < n2.Box.Low.Y

	switch {
	case top && left:
		return math.Hypot(n1.Box.Low.X-n2.Box.High.X, n1.Box.High.Y-n2.Box.Low.Y)
	case top && right:
		return math.Hypot(n1.Box.High.X-n2.Box.Low.X, n1.Box.High.Y-n2.Box.Low.Y)
	case bottom && left:
		return math.Hypot(n1.Box.Low.X-n2.Box.High.X, n1.Box.Low.Y-n2.Box.High.Y)
	case bottom && right:
		return math.Hypot(n1.Box.High.X-n2.Box.Low.X, n1.Box.Low.Y-n2.Box.High.Y)
	case left:
		return n1.Box.Low.X - n2.Box.High.X
	case right:
		return n2.Box.Low.X - n1.Box.High.X
	case bottom:
		return n1.Box.Low.Y - n2.Box.High.Y
	case top:
		return n2.Box.Low.Y - n1.Box.High.Y
	default:
		return 0
	}
}

// nodeMaxDistance is the farthest two rectangles' contents could be:
// opposite corners of the box that unions both.
func nodeMaxDistance(n1, n2 *Node) float64 {
	xmin := math.Min(n1.Box.Low.X, n2.Box.Low.X)
	ymin := math.Min(n1.Box.Low.Y, n2.Box.Low.Y)
	xmax := math.Max(n1.Box.High.X, n2.Box.High.X)
	ymax := math.Max(n1.Box.High.Y, n2.Box.High.Y)
	return math.Hypot(xmax-xmin, ymax-ymin)
}

// sortChildrenByDistance lazily orders each node's children by the
// squared distance of their rectangle center to the other node's
// rectangle center, once per node (not once per pair: a node visited
// against several different partners keeps the order computed the
// first time).
func sortChildrenByDistance(n1, n2 *Node) {
	if !n1.Leaf && !n1.sorted {
		c2 := n2.center()
		for _, c := range n1.children {
			cc := c.center()
			c.sortKey = (cc.X-c2.X)*(cc.X-c2.X) + (cc.Y-c2.Y)*(cc.Y-c2.Y)
		}
		sort.Slice(n1.children, func(i, j int) bool { return n1.children[i].sortKey < n1.children[j].sortKey })
		n1.sorted = true
	}
	if !n2.Leaf && !n2.sorted {
		c1 := n1.center()
		for _, c := range n2.children {
			cc := c.center()
			c.sortKey = (cc.X-c1.X)*(cc.X-c1.X) + (cc.Y-c1.Y)*(cc.Y-c1.Y)
		}
		sort.Slice(n2.children, func(i, j int) bool { return n2.children[i].sortKey < n2.children[j].sortKey })
		n2.sorted = true
	}
}

// leafDistance runs the matching kernel between two leaf edges and
// folds the result into state if it's a new global minimum.
func leafDistance(n1, n2 *Node, state *distanceState) float64 {
	dl := planar.NewDistState(planar.ModeMin, 0)
	switch n1.kind {
	case legPoint:
		switch n2.kind {
		case legPoint:
			planar.PtPt(n1.p1(), n2.p1(), dl)
		case legSegment:
			planar.PtSeg(n1.p1(), n2.p1(), n2.p2(), dl)
		case legArc:
			planar.PtArc(n1.p1(), n2.p1(), n2.p2(), n2.p3(), dl)
		}
	case legSegment:
		switch n2.kind {
		case legPoint:
			dl.Twisted = -1
			planar.PtSeg(n2.p1(), n1.p1(), n1.p2(), dl)
		case legSegment:
			planar.SegSeg(n1.p1(), n1.p2(), n2.p1(), n2.p2(), dl)
		case legArc:
			planar.SegArc(n1.p1(), n1.p2(), n2.p1(), n2.p2(), n2.p3(), dl)
		}
	case legArc:
		switch n2.kind {
		case legPoint:
			dl.Twisted = -1
			planar.PtArc(n2.p1(), n1.p1(), n1.p2(), n1.p3(), dl)
		case legSegment:
			dl.Twisted = -1
			planar.SegArc(n2.p1(), n2.p2(), n1.p1(), n1.p2(), n1.p3(), dl)
		case legArc:
			planar.ArcArc(n1.p1(), n1.p2(), n1.p3(), n2.p1(), n2.p2(), n2.p3(), dl)
		}
	}
	if dl.Distance < state.MinDist {
		state.MinDist = dl.Distance
		state.P1, state.P2 = dl.P1, dl.P2
	}
	return dl.Distance
}

// distanceRecursive is the best-first bounded descent: it
// short-circuits once the threshold is reached or an exact touch is
// found, prunes any pair whose minimum possible separation exceeds
// the tightest known upper bound, and otherwise recurses in
// distance-sorted order.
func distanceRecursive(n1, n2 *Node, state *distanceState) float64 {
	if state.MinDist < state.Threshold || state.MinDist == 0 {
		return state.MinDist
	}

	min := nodeMinDistance(n1, n2)
	if min > state.MaxDist {
		return math.MaxFloat64
	}

	if max := nodeMaxDistance(n1, n2); max < state.MaxDist {
		state.MaxDist = max
	}

	if n1.Leaf && n2.Leaf {
		return leafDistance(n1, n2, state)
	}

	sortChildrenByDistance(n1, n2)
	dmin := math.MaxFloat64
	switch {
	case n1.Leaf && !n2.Leaf:
		for _, c := range n2.children {
			if d := distanceRecursive(n1, c, state); d < dmin {
				dmin = d
			}
		}
	case n2.Leaf && !n1.Leaf:
		for _, c := range n1.children {
			if d := distanceRecursive(c, n2, state); d < dmin {
				dmin = d
			}
		}
	default:
		for _, c1 := range n1.children {
			for _, c2 := range n2.children {
				if d := distanceRecursive(c1, c2, state); d < dmin {
					dmin = d
				}
			}
		}
	}
	return dmin
}

// MinDistance returns the minimum distance between the geometries
// indexed by n1 and n2, short-circuiting to zero if either fully
// contains a point of the other or once threshold is reached.
func MinDistance(n1, n2 *Node, threshold float64) float64 {
	if n1 == nil || n2 == nil {
		return math.Inf(1)
	}
	if isArea(n1) && ContainsPoint(n1, anyPoint(n2)) {
		return 0
	}
	if isArea(n2) && ContainsPoint(n2, anyPoint(n1)) {
		return 0
	}
	state := &distanceState{Threshold: threshold, MinDist: math.MaxFloat64, MaxDist: math.MaxFloat64}
	return distanceRecursive(n1, n2, state)
}

// MinDistancePoints is MinDistance's closest-point-pair variant, for
// callers (pkg/geom's index-accelerated closest-points query) that
// want the witnessing coordinates, not just the scalar.
func MinDistancePoints(n1, n2 *Node, threshold float64) (p1, p2 coord.Point, dist float64) {
	if n1 == nil || n2 == nil {
		return coord.Point{}, coord.Point{}, math.Inf(1)
	}
	if isArea(n1) && ContainsPoint(n1, anyPoint(n2)) {
		p := anyPoint(n2)
		return p, p, 0
	}
	if isArea(n2) && ContainsPoint(n2, anyPoint(n1)) {
		p := anyPoint(n1)
		return p, p, 0
	}
	state := &distanceState{Threshold: threshold, MinDist: math.MaxFloat64, MaxDist: math.MaxFloat64}
	d := distanceRecursive(n1, n2, state)
	if d < state.MinDist {
		// distanceRecursive's return value is the pruned/short-circuited
		// minimum along its own call path; state.MinDist is the true
		// global minimum across the whole descent and is always <= d.
		d = state.MinDist
	}
	return state.P1, state.P2, state.MinDist
}
