package rectindex

import (
	"sort"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/corert"
	"github.com/planargeo/geom/internal/model"
	"github.com/planargeo/geom/internal/wire"
)

// leafNew builds one leaf node for edge segNum of pa, under the
// decomposition implied by gt (point / straight segment / arc).
// Returns nil for a degenerate (zero-length) edge.
func leafNew(pa *model.PointArray, segNum int, kind legKind, gt model.GeomType) *Node {
	n := &Node{Leaf: true, GeomType: gt, kind: kind, pa: pa, segNum: segNum}
	switch kind {
	case legPoint:
		p := n.p1()
		n.Box = coord.FromPoint(p, false, false)
	case legSegment:
		p1, p2 := n.p1(), n.p2()
		if p1.X == p2.X && p1.Y == p2.Y {
			return nil
		}
		n.Box = coord.FromPoint(p1, false, false)
		b2 := coord.FromPoint(p2, false, false)
		n.Box, _ = coord.Union(n.Box, b2)
	case legArc:
		p1, p2, p3 := n.p1(), n.p2(), n.p3()
		if p1.X == p2.X && p2.X == p3.X && p1.Y == p2.Y && p2.Y == p3.Y {
			return nil
		}
		n.Box = coord.ArcBox(p1, p2, p3, false, false)
	}
	return n
}

// addChild folds add's box into node's and appends it.
func addChild(node, add *Node) {
	node.Box, _ = coord.Union(node.Box, add.Box)
	node.children = append(node.children, add)
}

func internalNew(seed *Node) *Node {
	return &Node{Box: seed.Box, GeomType: seed.GeomType}
}

// mergeNodes repeatedly groups a flat list of nodes into FanOut-wide
// internal nodes until a single root remains. Nodes
// are expected to already be in spatially coherent order (either the
// natural vertex order of a ring/line, or a caller-applied z-order
// sort for collections).
func mergeNodes(nodes []*Node) *Node {
	if len(nodes) == 0 {
		return nil
	}
	for len(nodes) > 1 {
		var level []*Node
		var cur *Node
		for _, nd := range nodes {
			if cur == nil {
				cur = internalNew(nd)
			}
			addChild(cur, nd)
			if len(cur.children) == FanOut {
				level = append(level, cur)
				cur = nil
			}
		}
		if cur != nil {
			level = append(level, cur)
		}
		nodes = level
	}
	return nodes[0]
}

// fromPointArray builds a tree of leaves over one point array, one
// leaf per edge, then merges them bottom-up. gt names the owning
// geometry's variant (the decomposition key, not necessarily the
// leaf's own type).
func fromPointArray(pa *model.PointArray, gt model.GeomType) *Node {
	kind, ok := legKindFor(gt)
	if !ok || pa == nil {
		return nil
	}
	n := pa.NumPoints()
	if n < 1 {
		return nil
	}
	if kind == legPoint {
		return leafNew(pa, 0, legPoint, gt)
	}

	var numEdges int
	switch kind {
	case legSegment:
		numEdges = n - 1
	case legArc:
		numEdges = (n - 1) / 2
	}

	leaves := make([]*Node, 0, numEdges)
	for i := 0; i < numEdges; i++ {
		if leaf := leafNew(pa, i, kind, gt); leaf != nil {
			leaves = append(leaves, leaf)
		}
	}
	return mergeNodes(leaves)
}

func sortByHash(nodes []*Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return wire.SortableHash(nodes[i].Box) < wire.SortableHash(nodes[j].Box)
	})
}

func fromPolygon(g *model.Geometry) *Node {
	if len(g.Rings) < 1 {
		return nil
	}
	nodes := make([]*Node, 0, len(g.Rings))
	for i, ring := range g.Rings {
		n := fromPointArray(ring, model.PolygonType)
		if n == nil {
			continue
		}
		if i == 0 {
			n.ringKind = RingExterior
		} else {
			n.ringKind = RingInterior
		}
		nodes = append(nodes, n)
	}
	tree := mergeNodes(nodes)
	if tree != nil {
		tree.GeomType = model.PolygonType
	}
	return tree
}

func fromCurvePolygon(g *model.Geometry, rt *corert.Runtime) (*Node, error) {
	if len(g.Geoms) < 1 {
		return nil, nil
	}
	nodes := make([]*Node, 0, len(g.Geoms))
	for i, ring := range g.Geoms {
		n, err := build(ring, rt)
		if err != nil {
			return nil, err
		}
		if n == nil {
			continue
		}
		// A ring that reduces to a single closed edge (e.g. a one-piece
		// circular string forming a full circle) arrives as a leaf: wrap
		// it so ring-kind tagging and the internal-node area walk both
		// have somewhere to attach.
		if n.Leaf {
			wrapped := internalNew(n)
			addChild(wrapped, n)
			n = wrapped
		}
		if i == 0 {
			n.ringKind = RingExterior
		} else {
			n.ringKind = RingInterior
		}
		nodes = append(nodes, n)
	}
	// Unlike a plain collection's members, a curve polygon's rings are
	// already presented in a spatially meaningful order (exterior then
	// its holes); no z-order re-sort, the rings merge directly.
	tree := mergeNodes(nodes)
	if tree != nil {
		tree.GeomType = model.CurvePolygonType
	}
	return tree, nil
}

func fromCollection(g *model.Geometry, rt *corert.Runtime) (*Node, error) {
	if len(g.Geoms) < 1 {
		return nil, nil
	}
	nodes := make([]*Node, 0, len(g.Geoms))
	for _, sub := range g.Geoms {
		n, err := build(sub, rt)
		if err != nil {
			return nil, err
		}
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	// Compound curves arrive with their edges already spatially adjacent
	// by construction (consecutive pieces share an endpoint); every
	// other collection's members can be in arbitrary order, so they are
	// sorted into z-order first so the fan-out merge below produces a
	// spatially coherent tree.
	if g.Type != model.CompoundCurveType {
		sortByHash(nodes)
	}
	// A lone member's root is wrapped rather than relabeled, so it keeps
	// its own variant for ContainsPoint and isArea.
	if len(nodes) == 1 {
		wrapped := internalNew(nodes[0])
		addChild(wrapped, nodes[0])
		nodes[0] = wrapped
	}
	tree := mergeNodes(nodes)
	if tree != nil {
		tree.GeomType = g.Type
	}
	return tree, nil
}

// build is the recursive constructor behind both entry points; the
// interrupt flag is polled once per geometry node, bounding the work
// between polls to one point array's worth of leaves.
func build(g *model.Geometry, rt *corert.Runtime) (*Node, error) {
	if g == nil {
		return nil, nil
	}
	if err := rt.CheckInterrupted("rectindex.build"); err != nil {
		return nil, err
	}
	switch g.Type {
	case model.PointType, model.LineStringType, model.CircularStringType, model.TriangleType:
		return fromPointArray(g.Points, g.Type), nil
	case model.PolygonType:
		return fromPolygon(g), nil
	case model.CurvePolygonType:
		return fromCurvePolygon(g, rt)
	case model.MultiPointType, model.MultiLineStringType, model.MultiPolygonType,
		model.MultiCurveType, model.MultiSurfaceType, model.PolyhedralSurfaceType,
		model.TINType, model.GeometryCollectionType, model.CompoundCurveType:
		return fromCollection(g, rt)
	default:
		return nil, nil
	}
}

// FromGeometry builds a rectangle-tree index over g, dispatching on
// its variant. Returns nil for an empty geometry.
func FromGeometry(g *model.Geometry) *Node {
	n, _ := build(g, nil)
	return n
}

// FromGeometryInterruptible is FromGeometry with host cancellation:
// construction polls rt's interrupt flag between geometry nodes and
// abandons the partial tree with Interrupted when it is set.
func FromGeometryInterruptible(g *model.Geometry, rt *corert.Runtime) (*Node, error) {
	return build(g, rt)
}
