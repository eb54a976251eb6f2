package rectindex

import (
	"testing"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
)

func ring(pts ...[2]float64) *model.PointArray {
	pa := model.NewPointArray(coord.Flags{})
	for _, p := range pts {
		pa.Append(coord.Point{X: p[0], Y: p[1]})
	}
	return pa
}

func square(x0, y0, x1, y1 float64) *model.Geometry {
	poly := model.New(model.PolygonType, 0, false, false)
	ext := ring([2]float64{x0, y0}, [2]float64{x0, y1}, [2]float64{x1, y1}, [2]float64{x1, y0}, [2]float64{x0, y0})
	if err := poly.AddRing(ext); err != nil {
		panic(err)
	}
	return poly
}

func TestContainsPointInsideAndOutside(t *testing.T) {
	tree := FromGeometry(square(0, 0, 10, 10))
	if !ContainsPoint(tree, coord.Point{X: 5, Y: 5}) {
		t.Fatal("center should be contained")
	}
	if ContainsPoint(tree, coord.Point{X: 20, Y: 20}) {
		t.Fatal("far point should not be contained")
	}
}

func TestContainsPointOnBoundary(t *testing.T) {
	tree := FromGeometry(square(0, 0, 10, 10))
	if !ContainsPoint(tree, coord.Point{X: 0, Y: 5}) {
		t.Fatal("edge point should be contained")
	}
}

func TestContainsPointHole(t *testing.T) {
	poly := model.New(model.PolygonType, 0, false, false)
	ext := ring([2]float64{0, 0}, [2]float64{0, 10}, [2]float64{10, 10}, [2]float64{10, 0}, [2]float64{0, 0})
	hole := ring([2]float64{3, 3}, [2]float64{3, 6}, [2]float64{6, 6}, [2]float64{6, 3}, [2]float64{3, 3})
	if err := poly.AddRing(ext); err != nil {
		t.Fatal(err)
	}
	if err := poly.AddRing(hole); err != nil {
		t.Fatal(err)
	}
	tree := FromGeometry(poly)
	if ContainsPoint(tree, coord.Point{X: 4, Y: 4}) {
		t.Fatal("point inside hole should not be contained")
	}
	if !ContainsPoint(tree, coord.Point{X: 1, Y: 1}) {
		t.Fatal("point between exterior and hole should be contained")
	}
}

func TestIntersectsOverlappingSquares(t *testing.T) {
	a := FromGeometry(square(0, 0, 10, 10))
	b := FromGeometry(square(5, 5, 15, 15))
	if !Intersects(a, b) {
		t.Fatal("overlapping squares should intersect")
	}
}

func TestIntersectsDisjointSquares(t *testing.T) {
	a := FromGeometry(square(0, 0, 10, 10))
	b := FromGeometry(square(20, 20, 30, 30))
	if Intersects(a, b) {
		t.Fatal("disjoint squares should not intersect")
	}
}

func TestIntersectsContainment(t *testing.T) {
	outer := FromGeometry(square(0, 0, 10, 10))
	innerPoly := model.New(model.PointType, 0, false, false)
	innerPoly.Points.Append(coord.Point{X: 5, Y: 5})
	inner := FromGeometry(innerPoly)
	if !Intersects(outer, inner) {
		t.Fatal("a point inside a polygon should intersect it even with no edge crossing")
	}
}

func TestMinDistanceDisjointSquares(t *testing.T) {
	a := FromGeometry(square(0, 0, 10, 10))
	b := FromGeometry(square(20, 0, 30, 10))
	d := MinDistance(a, b, 0)
	if d != 10 {
		t.Fatalf("got %v, want 10", d)
	}
}

func TestMinDistanceOverlapping(t *testing.T) {
	a := FromGeometry(square(0, 0, 10, 10))
	b := FromGeometry(square(5, 5, 15, 15))
	d := MinDistance(a, b, 0)
	if d != 0 {
		t.Fatalf("overlapping squares should have zero distance, got %v", d)
	}
}

func TestMinDistancePointToLine(t *testing.T) {
	line := model.New(model.LineStringType, 0, false, false)
	line.Points.Append(coord.Point{X: 0, Y: 0})
	line.Points.Append(coord.Point{X: 10, Y: 0})

	pt := model.New(model.PointType, 0, false, false)
	pt.Points.Append(coord.Point{X: 5, Y: 5})

	d := MinDistance(FromGeometry(line), FromGeometry(pt), 0)
	if d != 5 {
		t.Fatalf("got %v, want 5", d)
	}
}

// The "ziggy" polygon: a zigzag bottom edge under a flat top.
func ziggy() *model.Geometry {
	poly := model.New(model.PolygonType, 0, false, false)
	ext := ring(
		[2]float64{0, 0}, [2]float64{1, 3}, [2]float64{2, 0}, [2]float64{3, 3},
		[2]float64{4, 0}, [2]float64{4, 5}, [2]float64{0, 5}, [2]float64{0, 0},
	)
	if err := poly.AddRing(ext); err != nil {
		panic(err)
	}
	return poly
}

func TestContainsPointZiggy(t *testing.T) {
	tree := FromGeometry(ziggy())
	if !ContainsPoint(tree, coord.Point{X: 2, Y: 1}) {
		t.Fatal("(2,1) should be inside")
	}
	if ContainsPoint(tree, coord.Point{X: -0.5, Y: 0.5}) {
		t.Fatal("(-0.5,0.5) should be outside")
	}
	if !ContainsPoint(tree, coord.Point{X: 0, Y: 1}) {
		t.Fatal("(0,1) is on the boundary and should report contained")
	}
}

// The "comb" polygon: deep concave teeth on the left, solid on the right.
func comb() *model.Geometry {
	poly := model.New(model.PolygonType, 0, false, false)
	ext := ring(
		[2]float64{0, 0}, [2]float64{3, 1}, [2]float64{0, 2}, [2]float64{3, 3},
		[2]float64{0, 4}, [2]float64{3, 5}, [2]float64{0, 6}, [2]float64{5, 6},
		[2]float64{5, 0}, [2]float64{0, 0},
	)
	if err := poly.AddRing(ext); err != nil {
		panic(err)
	}
	return poly
}

func TestIntersectsSingleVertexTouch(t *testing.T) {
	other := model.New(model.PolygonType, 0, false, false)
	ext := ring([2]float64{-1, 5}, [2]float64{0, 5}, [2]float64{0, 7}, [2]float64{-1, 7}, [2]float64{-1, 5})
	if err := other.AddRing(ext); err != nil {
		t.Fatal(err)
	}
	if !Intersects(FromGeometry(comb()), FromGeometry(other)) {
		t.Fatal("touching at a single vertex should intersect")
	}
}

func TestNonIntersectionInConcavity(t *testing.T) {
	other := model.New(model.PolygonType, 0, false, false)
	ext := ring([2]float64{0.3, 0.7}, [2]float64{0.3, 0.8}, [2]float64{0.4, 0.8}, [2]float64{0.4, 0.7}, [2]float64{0.3, 0.7})
	if err := other.AddRing(ext); err != nil {
		t.Fatal(err)
	}
	if Intersects(FromGeometry(comb()), FromGeometry(other)) {
		t.Fatal("a square nestled between the comb's teeth should not intersect it")
	}
}

func TestMinDistancePointToMultiPoint(t *testing.T) {
	pt := model.New(model.PointType, 0, false, false)
	pt.Points.Append(coord.Point{X: 0, Y: 0})

	mp := model.New(model.MultiPointType, 0, false, false)
	for _, y := range []float64{1.5, 2, 2.5} {
		p := model.New(model.PointType, 0, false, false)
		p.Points.Append(coord.Point{X: 0, Y: y})
		if err := mp.AddGeom(p); err != nil {
			t.Fatal(err)
		}
	}

	if d := MinDistance(FromGeometry(pt), FromGeometry(mp), 0); d != 1.5 {
		t.Fatalf("got %v, want exactly 1.5", d)
	}
}

func TestMinDistanceToCircularString(t *testing.T) {
	// Full unit circle as two arcs; the second arc's leaf must address
	// points (2,3,4) of the array, not (1,2,3).
	cs := model.New(model.CircularStringType, 0, false, false)
	for _, p := range [][2]float64{{-1, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		cs.Points.Append(coord.Point{X: p[0], Y: p[1]})
	}
	pt := model.New(model.PointType, 0, false, false)
	pt.Points.Append(coord.Point{X: 3, Y: 0})

	if d := MinDistance(FromGeometry(cs), FromGeometry(pt), 0); d != 2 {
		t.Fatalf("got %v, want 2 (to the circle's east pole)", d)
	}
}

func TestMinDistancePointsOrder(t *testing.T) {
	line := model.New(model.LineStringType, 0, false, false)
	line.Points.Append(coord.Point{X: 0, Y: 0})
	line.Points.Append(coord.Point{X: 10, Y: 0})
	pt := model.New(model.PointType, 0, false, false)
	pt.Points.Append(coord.Point{X: 5, Y: 5})

	p1, p2, d := MinDistancePoints(FromGeometry(line), FromGeometry(pt), 0)
	if d != 5 {
		t.Fatalf("got %v, want 5", d)
	}
	if p1.Y != 0 {
		t.Fatalf("p1 should lie on the first tree's line, got %+v", p1)
	}
	if p2.X != 5 || p2.Y != 5 {
		t.Fatalf("p2 should be the second tree's point, got %+v", p2)
	}
}
