package coord

import (
	"math"
	"testing"
)

func TestRoundDownUp(t *testing.T) {
	cases := []struct {
		name string
		d    float64
	}{
		{"zero", 0},
		{"one third", 1.0 / 3.0},
		{"negative", -123.456},
		{"large", 1e30},
		{"tiny", 1e-30},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			down := RoundDown(c.d)
			up := RoundUp(c.d)
			if float64(down) > c.d {
				t.Fatalf("RoundDown(%v) = %v, overshoots", c.d, down)
			}
			if float64(up) < c.d {
				t.Fatalf("RoundUp(%v) = %v, undershoots", c.d, up)
			}
			if down > up {
				t.Fatalf("RoundDown(%v)=%v > RoundUp(%v)=%v", c.d, down, c.d, up)
			}
		})
	}
}

func TestRoundInfinityAndNaN(t *testing.T) {
	if !math.IsInf(float64(RoundDown(math.Inf(1))), 1) {
		t.Fatal("RoundDown(+Inf) should be +Inf")
	}
	if !math.IsInf(float64(RoundUp(math.Inf(-1))), -1) {
		t.Fatal("RoundUp(-Inf) should be -Inf")
	}
	if !math.IsNaN(float64(RoundDown(math.NaN()))) {
		t.Fatal("RoundDown(NaN) should preserve NaN")
	}
	if !math.IsNaN(float64(RoundUp(math.NaN()))) {
		t.Fatal("RoundUp(NaN) should preserve NaN")
	}
}

func TestBoxUnionDimensionMismatch(t *testing.T) {
	a := FromPoint(Point{X: 0, Y: 0}, false, false)
	b := FromPoint(Point{X: 1, Y: 1, Z: 1}, true, false)
	if _, err := Union(a, b); err == nil {
		t.Fatal("expected DimensionMismatch error")
	}
}

func TestBoxUnionAndContains(t *testing.T) {
	a := FromPoint(Point{X: -1, Y: -1}, false, false)
	b := FromPoint(Point{X: 2, Y: 2}, false, false)
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if u.Low.X != -1 || u.Low.Y != -1 || u.High.X != 2 || u.High.Y != 2 {
		t.Fatalf("unexpected union box: %+v", u)
	}
	if !u.Contains(Point{X: 0, Y: 0}) {
		t.Fatal("box should contain origin")
	}
	if u.Contains(Point{X: 3, Y: 0}) {
		t.Fatal("box should not contain (3,0)")
	}
}

func TestBoxContainsNaN(t *testing.T) {
	b := NewBox(Point{X: -1, Y: -1}, Point{X: 1, Y: 1}, false, false)
	if b.Contains(Point{X: math.NaN(), Y: 0}) {
		t.Fatal("box containment with NaN ordinate must be false")
	}
}

func TestArcBoxSemicircle(t *testing.T) {
	// Arc through (-1,0) -> (0,1) -> (1,0): unit circle, upper half.
	b := ArcBox(Point{X: -1, Y: 0}, Point{X: 0, Y: 1}, Point{X: 1, Y: 0}, false, false)
	if math.Abs(b.Low.X+1) > 1e-9 || math.Abs(b.High.X-1) > 1e-9 {
		t.Fatalf("unexpected arc box X range: %+v", b)
	}
	if math.Abs(b.Low.Y+1) > 1e-9 || math.Abs(b.High.Y-1) > 1e-9 {
		t.Fatalf("unexpected arc box Y range: %+v", b)
	}
}

func TestArcBoxCollinearFallsBackToEnvelope(t *testing.T) {
	b := ArcBox(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 2, Y: 0}, false, false)
	if b.Low.X != 0 || b.High.X != 2 || b.Low.Y != 0 || b.High.Y != 0 {
		t.Fatalf("unexpected collinear arc box: %+v", b)
	}
}

func TestFlagsNdims(t *testing.T) {
	f := Flags{HasZ: true}
	if f.Ndims() != 3 {
		t.Fatalf("expected 3 dims, got %d", f.Ndims())
	}
	f.HasM = true
	if f.Ndims() != 4 {
		t.Fatalf("expected 4 dims, got %d", f.Ndims())
	}
	f.Geodetic = true
	if f.NdimsBox() != 3 {
		t.Fatalf("geodetic box should be 3 dims, got %d", f.NdimsBox())
	}
}

func TestGetPutRoundTrip(t *testing.T) {
	f := Flags{HasZ: true, HasM: true}
	buf := make([]float64, 4*2)
	Put(buf, 0, f, Point{X: 1, Y: 2, Z: 3, M: 4})
	Put(buf, 1, f, Point{X: 5, Y: 6, Z: 7, M: 8})
	got := Get(buf, 1, f)
	want := Point{X: 5, Y: 6, Z: 7, M: 8}
	if !Equal(got, want, f) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestBoxTracksMWithoutZ(t *testing.T) {
	a := FromPoint(Point{X: 0, Y: 0, M: 5}, false, true)
	b := FromPoint(Point{X: 1, Y: 1, M: -3}, false, true)
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if u.Low.M != -3 || u.High.M != 5 {
		t.Fatalf("XYM union lost the M range: %+v", u)
	}
	if !u.Contains(Point{X: 0.5, Y: 0.5, M: 0}) {
		t.Fatal("point with in-range M should be contained")
	}
	if u.Contains(Point{X: 0.5, Y: 0.5, M: 9}) {
		t.Fatal("point with out-of-range M should not be contained")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, 0.0, 1.0); got != 1.0 {
		t.Fatalf("Clamp(1.5, 0, 1) = %v", got)
	}
	if got := Clamp(-7, 0, 10); got != 0 {
		t.Fatalf("Clamp(-7, 0, 10) = %v", got)
	}
	if got := Clamp(0.25, 0.0, 1.0); got != 0.25 {
		t.Fatalf("Clamp(0.25, 0, 1) = %v", got)
	}
}

func TestRoundBeyondFloat32Range(t *testing.T) {
	const huge = 1e39 // finite in float64, past float32's range
	if got := RoundDown(huge); got != math.MaxFloat32 {
		t.Fatalf("RoundDown(1e39) = %v, want MaxFloat32", got)
	}
	if got := RoundUp(huge); !math.IsInf(float64(got), 1) {
		t.Fatalf("RoundUp(1e39) = %v, want +Inf", got)
	}
	if got := RoundUp(-huge); got != -math.MaxFloat32 {
		t.Fatalf("RoundUp(-1e39) = %v, want -MaxFloat32", got)
	}
	if got := RoundDown(-huge); !math.IsInf(float64(got), -1) {
		t.Fatalf("RoundDown(-1e39) = %v, want -Inf", got)
	}
}
