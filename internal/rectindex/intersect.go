package rectindex

import (
	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
	"github.com/planargeo/geom/internal/planar"
)

// leafIntersects tests two leaf edges for a true geometric
// intersection by running the matching distance kernel and checking
// for an exact zero: point/point equality, point/segment and
// segment/segment via their distance kernels, and any pair involving
// an arc via the arc kernels.
func leafIntersects(n1, n2 *Node) bool {
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
			planar.PtSeg(n2.p1(), n1.p1(), n1.p2(), dl)
		case legSegment:
			planar.SegSeg(n1.p1(), n1.p2(), n2.p1(), n2.p2(), dl)
		case legArc:
			planar.SegArc(n1.p1(), n1.p2(), n2.p1(), n2.p2(), n2.p3(), dl)
		}
	case legArc:
		switch n2.kind {
		case legPoint:
			planar.PtArc(n2.p1(), n1.p1(), n1.p2(), n1.p3(), dl)
		case legSegment:
			planar.SegArc(n2.p1(), n2.p2(), n1.p1(), n1.p2(), n1.p3(), dl)
		case legArc:
			planar.ArcArc(n1.p1(), n1.p2(), n1.p3(), n2.p1(), n2.p2(), n2.p3(), dl)
		}
	}
	return dl.Distance == 0
}

func boxesOverlap(a, b coord.Box) bool {
	return !(a.Low.X > b.High.X || b.Low.X > a.High.X || a.Low.Y > b.High.Y || b.Low.Y > a.High.Y)
}

// intersectsRecursive descends both trees simultaneously, pruning any
// pair of sub-nodes whose rectangles don't overlap.
func intersectsRecursive(n1, n2 *Node) bool {
	if !boxesOverlap(n1.Box, n2.Box) {
		return false
	}
	if n1.Leaf && n2.Leaf {
		return leafIntersects(n1, n2)
	}
	if n2.Leaf && !n1.Leaf {
		for _, c := range n1.children {
			if intersectsRecursive(c, n2) {
				return true
			}
		}
		return false
	}
	if n1.Leaf && !n2.Leaf {
		for _, c := range n2.children {
			if intersectsRecursive(c, n1) {
				return true
			}
		}
		return false
	}
	for _, c1 := range n1.children {
		for _, c2 := range n2.children {
			if intersectsRecursive(c1, c2) {
				return true
			}
		}
	}
	return false
}

// isArea reports whether node's subtree represents an area geometry
// (Polygon, CurvePolygon, MultiPolygon, MultiSurface, or a
// GeometryCollection recursively containing one), the set the
// full-containment shortcut applies to.
func isArea(n *Node) bool {
	switch n.GeomType {
	case model.PolygonType, model.CurvePolygonType, model.MultiPolygonType, model.MultiSurfaceType:
		return true
	case model.GeometryCollectionType:
		if n.Leaf {
			return false
		}
		for _, c := range n.children {
			if isArea(c) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// anyPoint returns some coordinate reachable from node's subtree, used
// to seed the full-containment shortcut.
func anyPoint(n *Node) coord.Point {
	if n.Leaf {
		return n.p1()
	}
	return anyPoint(n.children[0])
}

// Intersects reports whether the geometries indexed by n1 and n2 share
// a point. Before descending, it checks whether either side is an area
// type fully containing a point of the other, the case where one
// geometry swallows the other whole without any boundary edges
// crossing.
func Intersects(n1, n2 *Node) bool {
	if n1 == nil || n2 == nil {
		return false
	}
	if isArea(n1) && ContainsPoint(n1, anyPoint(n2)) {
		return true
	}
	if isArea(n2) && ContainsPoint(n2, anyPoint(n1)) {
		return true
	}
	return intersectsRecursive(n1, n2)
}
