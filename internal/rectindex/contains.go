package rectindex

import (
	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
	"github.com/planargeo/geom/internal/planar"
)

// leafSide reports whether a horizontal ray from q to the right
// crosses the leaf's edge, and whether q sits on the edge itself,
// with an up-going/down-going/horizontal rule that counts each ring
// vertex exactly once, applied uniformly to straight and arc leaves.
func leafSide(n *Node, q coord.Point) (crosses int, onBoundary bool) {
	switch n.kind {
	case legSegment:
		p1, p2 := n.p1(), n.p2()
		side := planar.SegmentSide(p1, p2, q)
		if side == 0 && planar.PointInSegment(q, p1, p2) {
			return 0, true
		}
		if p1.Y < p2.Y && side == -1 && q.Y != p2.Y {
			return 1, false
		}
		if p1.Y > p2.Y && side == 1 && q.Y != p2.Y {
			return 1, false
		}
		if p1.Y == p2.Y && q.X < p1.X {
			return 1, false
		}
		return 0, false

	case legArc:
		p1, p2, p3 := n.p1(), n.p2(), n.p3()
		arcSide := planar.ArcSide(p1, p2, p3, q)
		if arcSide == 0 {
			return 0, true
		}
		segSide := planar.SegmentSide(p1, p3, q)
		if segSide == arcSide {
			if p1.Y < p3.Y && segSide == -1 && q.Y != p3.Y {
				return 1, false
			}
			if p1.Y > p3.Y && segSide == 1 && q.Y != p3.Y {
				return 1, false
			}
		} else {
			if p1.Y < p3.Y && segSide == 1 && q.Y != p3.Y {
				return 1, false
			}
			if p1.Y > p3.Y && segSide == -1 && q.Y != p3.Y {
				return 1, false
			}
			if p1.Y == p3.Y {
				return 1, false
			}
		}
		return 0, false

	default:
		return 0, false
	}
}

// ringContainsPoint sums horizontal-ray crossings for the ring subtree
// rooted at node, only descending into nodes whose bounding rectangle
// straddles q's y and could lie to its right.
func ringContainsPoint(node *Node, q coord.Point) (crossings int, onBoundary bool) {
	if !(node.Box.Low.Y <= q.Y && q.Y <= node.Box.High.Y && q.X <= node.Box.High.X) {
		return 0, false
	}
	if node.Leaf {
		return leafSide(node, q)
	}
	total := 0
	for _, c := range node.children {
		r, onB := ringContainsPoint(c, q)
		total += r
		if onB {
			onBoundary = true
		}
	}
	return total, onBoundary
}

// areaContainsPoint walks down to ring heads and sums their
// containment contribution: +1 (or on-boundary) for an exterior ring,
// -1 for an interior ring whose crossing count is odd (a hole "cancels"
// the exterior's containment), 0 for a ring whose test lands on the
// boundary of a hole.
func areaContainsPoint(node *Node, q coord.Point) int {
	if node.Leaf {
		return 0
	}
	if node.ringKind == RingNone {
		sum := 0
		for _, c := range node.children {
			sum += areaContainsPoint(c, q)
		}
		return sum
	}
	crossings, onBoundary := ringContainsPoint(node, q)
	contained := crossings%2 == 1
	if node.ringKind == RingInterior {
		if onBoundary {
			return 0
		}
		if contained {
			return -1
		}
		return 0
	}
	if contained || onBoundary {
		return 1
	}
	return 0
}

func nodeBoundsPoint(node *Node, q coord.Point) bool {
	return q.Y >= node.Box.Low.Y && q.Y <= node.Box.High.Y &&
		q.X >= node.Box.Low.X && q.X <= node.Box.High.X
}

// ContainsPoint reports whether q is contained in or lies on the
// boundary of the geometry node indexes. Only Polygon/CurvePolygon area roots and Multi-area/collection roots
// answer true; any other variant (lines, points, curves with no area)
// never contains a point.
func ContainsPoint(node *Node, q coord.Point) bool {
	if node == nil || !nodeBoundsPoint(node, q) {
		return false
	}
	switch node.GeomType {
	case model.PolygonType, model.CurvePolygonType:
		return areaContainsPoint(node, q) > 0
	case model.MultiPolygonType, model.MultiSurfaceType, model.GeometryCollectionType:
		for _, c := range node.children {
			if ContainsPoint(c, q) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
