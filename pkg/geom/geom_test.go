package geom

import "testing"

func square(x0, y0, x1, y1 float64) *Geometry {
	g := NewEmpty(PolygonType, 4326, false, false)
	ring := NewPointArray(false, false)
	ring.Append(Point{X: x0, Y: y0})
	ring.Append(Point{X: x0, Y: y1})
	ring.Append(Point{X: x1, Y: y1})
	ring.Append(Point{X: x1, Y: y0})
	ring.Append(Point{X: x0, Y: y0})
	if err := g.AddRing(ring); err != nil {
		panic(err)
	}
	return g
}

func TestNewEmptyPolygonIsEmpty(t *testing.T) {
	g := NewEmpty(PolygonType, 0, false, false)
	if !g.IsEmpty() {
		t.Fatal("freshly built polygon should be empty")
	}
}

func TestAddRingAndCountVertices(t *testing.T) {
	g := square(0, 0, 10, 10)
	if g.IsEmpty() {
		t.Fatal("square should not be empty")
	}
	if got := g.CountVertices(); got != 5 {
		t.Fatalf("got %d vertices, want 5", got)
	}
}

func TestAddRingDimensionMismatch(t *testing.T) {
	g := NewEmpty(PolygonType, 0, false, false)
	ring := NewPointArray(true, false)
	ring.Append(Point{X: 0, Y: 0, Z: 1})
	if err := g.AddRing(ring); err == nil {
		t.Fatal("expected a DimensionMismatchError")
	} else if _, ok := err.(*DimensionMismatchError); !ok {
		t.Fatalf("got %T, want *DimensionMismatchError", err)
	}
}

func TestSameStructuralEquality(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := square(0, 0, 10, 10)
	if !Same(a, b) {
		t.Fatal("identical squares should be Same")
	}
	c := square(0, 0, 20, 20)
	if Same(a, c) {
		t.Fatal("differently sized squares should not be Same")
	}
}

func TestCloneDeepIndependence(t *testing.T) {
	a := square(0, 0, 10, 10)
	b := a.CloneDeep()
	if !Same(a, b) {
		t.Fatal("clone should be structurally equal")
	}
	b.Points() // no-op for a polygon, exercising the nil path
}

func TestForceClockwiseIdempotent(t *testing.T) {
	g := square(0, 0, 10, 10)
	g.ForceClockwise()
	first := g.CloneDeep()
	g.ForceClockwise()
	if !Same(first, g) {
		t.Fatal("force_clockwise should be idempotent")
	}
}

func TestSwapOrdinatesRoundTrip(t *testing.T) {
	g := NewEmpty(LineStringType, 0, true, false)
	pts := g.Points()
	pts.Append(Point{X: 1, Y: 2, Z: 3})
	pts.Append(Point{X: 4, Y: 5, Z: 6})
	clone := g.CloneDeep()

	g.SwapOrdinates(AxisX, AxisZ)
	g.SwapOrdinates(AxisX, AxisZ)
	if !Same(g, clone) {
		t.Fatal("swapping the same axes twice should be a no-op")
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	g := square(0, 0, 10, 10)
	buf, err := g.Serialize(nil)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Deserialize(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !Same(g, back) {
		t.Fatal("round-tripped geometry should be Same as the original")
	}
}

func TestIndexContainsPoint(t *testing.T) {
	g := square(0, 0, 10, 10)
	idx := FromGeometry(g)
	if !idx.ContainsPoint(Point{X: 5, Y: 5}) {
		t.Fatal("center should be contained")
	}
	if idx.ContainsPoint(Point{X: 50, Y: 50}) {
		t.Fatal("far point should not be contained")
	}
}

func TestIndexMinDistance(t *testing.T) {
	a := FromGeometry(square(0, 0, 10, 10))
	b := FromGeometry(square(20, 0, 30, 10))
	if d := MinDistance(a, b, 0); d != 10 {
		t.Fatalf("got %v, want 10", d)
	}
}

func TestCollectionExtract(t *testing.T) {
	coll := NewEmpty(GeometryCollectionType, 0, false, false)
	if err := coll.AddGeom(square(0, 0, 1, 1)); err != nil {
		t.Fatal(err)
	}
	pt := NewEmpty(PointType, 0, false, false)
	pt.Points().Append(Point{X: 9, Y: 9})
	if err := coll.AddGeom(pt); err != nil {
		t.Fatal(err)
	}
	extracted := coll.CollectionExtract(PolygonType)
	if extracted.Type() != MultiPolygonType {
		t.Fatalf("got type %v, want MultiPolygonType", extracted.Type())
	}
	if extracted.CountVertices() != 5 {
		t.Fatalf("got %d vertices, want 5", extracted.CountVertices())
	}
}

func TestFromGeometryInterruptible(t *testing.T) {
	g := square(0, 0, 10, 10)
	rt := NewRuntime(WithInterruptFlag(func() bool { return true }))
	if _, err := FromGeometryInterruptible(g, rt); err == nil {
		t.Fatal("expected InterruptedError")
	} else if _, ok := err.(*InterruptedError); !ok {
		t.Fatalf("got %T, want *InterruptedError", err)
	}

	idx, err := FromGeometryInterruptible(g, NewRuntime())
	if err != nil {
		t.Fatal(err)
	}
	if !idx.ContainsPoint(Point{X: 5, Y: 5}) {
		t.Fatal("index built without interruption should answer queries")
	}
}
