// Package rectindex implements the rectangle-tree spatial index: a
// recursive bounding-rectangle tree over primitive edges (points,
// straight segments, circular arcs) supporting point-in-geometry,
// pairwise intersection, and pairwise minimum-distance queries.
package rectindex

import (
	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
)

// FanOut is the fixed branching factor nodes merge to: large enough
// for balance, small enough that a box union stays tight.
const FanOut = 8

// legKind tags a leaf's primitive edge type.
type legKind int

const (
	legPoint legKind = iota
	legSegment
	legArc
)

// RingKind tags an internal node by its role in an area geometry's
// boundary: rings contribute +containment
// (exterior) or -containment (interior) to a point-in-area test; a
// node with no ring role (most internal nodes) is RingNone.
type RingKind int

const (
	RingNone RingKind = iota
	RingExterior
	RingInterior
)

// Node is either a leaf referencing one primitive edge or an internal
// node owning up to FanOut children. Which fields are meaningful
// depends on Leaf.
type Node struct {
	Box      coord.Box
	GeomType model.GeomType

	Leaf bool

	// Leaf fields.
	kind   legKind
	pa     *model.PointArray
	segNum int

	// Internal fields.
	children []*Node
	ringKind RingKind
	sorted   bool
	sortKey  float64 // distance of this node's center to the other node's center, set lazily by sortChildrenByDistance
}

func (n *Node) center() coord.Point {
	return coord.Point{X: (n.Box.Low.X + n.Box.High.X) / 2, Y: (n.Box.Low.Y + n.Box.High.Y) / 2}
}

// p1 returns the leaf's first defining point, valid for every leaf
// kind. Arc edge i spans points (2i, 2i+1, 2i+2) of its circular
// string, every other kind's edge i starts at point i.
func (n *Node) p1() coord.Point {
	if n.kind == legArc {
		return n.pa.Get(n.segNum * 2)
	}
	return n.pa.Get(n.segNum)
}

// p2 returns the leaf's second defining point (segment end or arc
// midpoint); only valid for legSegment and legArc.
func (n *Node) p2() coord.Point {
	if n.kind == legArc {
		return n.pa.Get(n.segNum*2 + 1)
	}
	return n.pa.Get(n.segNum + 1)
}

// p3 returns the arc's end point; only valid for legArc.
func (n *Node) p3() coord.Point { return n.pa.Get(n.segNum*2 + 2) }

// legKindFor maps a geometry variant to the primitive edge type its
// own point array decomposes into.
func legKindFor(t model.GeomType) (legKind, bool) {
	switch t {
	case model.PointType:
		return legPoint, true
	case model.LineStringType, model.PolygonType, model.TriangleType, model.PolyhedralSurfaceType, model.TINType:
		return legSegment, true
	case model.CircularStringType:
		return legArc, true
	default:
		return 0, false
	}
}
