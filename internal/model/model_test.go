package model

import (
	"testing"

	"github.com/planargeo/geom/internal/coord"
)

func ring(pts ...[2]float64) *PointArray {
	pa := NewPointArray(coord.Flags{})
	for _, p := range pts {
		pa.Append(coord.Point{X: p[0], Y: p[1]})
	}
	return pa
}

func TestAddRingDimensionMismatch(t *testing.T) {
	poly := New(PolygonType, 0, false, false)
	z := NewPointArray(coord.Flags{HasZ: true})
	z.Append(coord.Point{X: 0, Y: 0, Z: 0})
	if err := poly.AddRing(z); err == nil {
		t.Fatal("expected DimensionMismatch")
	}
}

func TestAddGeomSubtypeNotAllowed(t *testing.T) {
	mp := New(MultiPointType, 0, false, false)
	line := New(LineStringType, 0, false, false)
	if err := mp.AddGeom(line); err == nil {
		t.Fatal("expected SubtypeNotAllowed")
	}
}

func TestForceClockwiseIdempotent(t *testing.T) {
	poly := New(PolygonType, 0, false, false)
	ext := ring([2]float64{-1, -1}, [2]float64{-1, 2}, [2]float64{2, 2}, [2]float64{2, -1}, [2]float64{-1, -1})
	if err := poly.AddRing(ext); err != nil {
		t.Fatal(err)
	}
	poly.ForceClockwise()
	first := poly.Rings[0].Clone()
	poly.ForceClockwise()
	if !pointArraysEqual(first, poly.Rings[0]) {
		t.Fatal("force_clockwise not idempotent")
	}
	if !IsClockwise(poly.Rings[0]) {
		t.Fatal("exterior ring should be clockwise after ForceClockwise")
	}
}

func TestSwapOrdinatesInvolution(t *testing.T) {
	line := New(LineStringType, 0, true, false)
	line.Points.Append(coord.Point{X: 1, Y: 2, Z: 3})
	line.Points.Append(coord.Point{X: 4, Y: 5, Z: 6})
	orig := line.CloneDeep()

	line.SwapOrdinates(AxisX, AxisZ)
	line.SwapOrdinates(AxisX, AxisZ)

	if !Same(orig, line) {
		t.Fatal("swap_ordinates should be involutive")
	}
}

func TestSwapOrdinatesUpgradesBorrowed(t *testing.T) {
	pa := &PointArray{
		Ordinates: []float64{1, 2, 3, 4},
		Flags:     coord.Flags{ReadOnly: true},
	}
	line := &Geometry{Type: LineStringType, Points: pa}
	line.SwapOrdinates(AxisX, AxisY)
	if line.Points.Flags.ReadOnly {
		t.Fatal("swap should upgrade borrowed storage to owned")
	}
	if line.Points.Get(0).X != 2 || line.Points.Get(0).Y != 1 {
		t.Fatalf("unexpected swapped point: %+v", line.Points.Get(0))
	}
}

func TestCollectionExtract(t *testing.T) {
	coll := New(GeometryCollectionType, 0, false, false)
	p1 := New(PointType, 0, false, false)
	p1.Points.Append(coord.Point{X: 1, Y: 1})
	line := New(LineStringType, 0, false, false)
	line.Points.Append(coord.Point{X: 0, Y: 0})
	line.Points.Append(coord.Point{X: 1, Y: 1})
	nested := New(GeometryCollectionType, 0, false, false)
	p2 := New(PointType, 0, false, false)
	p2.Points.Append(coord.Point{X: 2, Y: 2})
	if err := nested.AddGeom(p2); err != nil {
		t.Fatal(err)
	}
	if err := coll.AddGeom(p1); err != nil {
		t.Fatal(err)
	}
	if err := coll.AddGeom(line); err != nil {
		t.Fatal(err)
	}
	if err := coll.AddGeom(nested); err != nil {
		t.Fatal(err)
	}

	points := CollectionExtract(coll, PointType)
	if points.Type != MultiPointType {
		t.Fatalf("expected MultiPoint container, got %s", points.Type)
	}
	if len(points.Geoms) != 2 {
		t.Fatalf("expected 2 points extracted (incl. nested), got %d", len(points.Geoms))
	}
}

func TestAsCurveLiftsPolygon(t *testing.T) {
	poly := New(PolygonType, 0, false, false)
	ext := ring([2]float64{0, 0}, [2]float64{0, 1}, [2]float64{1, 1}, [2]float64{1, 0}, [2]float64{0, 0})
	if err := poly.AddRing(ext); err != nil {
		t.Fatal(err)
	}
	curved := poly.AsCurve()
	if curved.Type != CurvePolygonType {
		t.Fatalf("expected CurvePolygon, got %s", curved.Type)
	}
	if len(curved.Geoms) != 1 || curved.Geoms[0].Type != LineStringType {
		t.Fatal("expected one LineString ring")
	}
}
