package model

// signedArea computes the doubled Shoelace sum over a ring; positive
// means clockwise.
func signedArea(ring *PointArray) float64 {
	n := ring.NumPoints()
	sum := 0.0
	for i := 0; i < n-1; i++ {
		a := ring.Get(i)
		b := ring.Get(i + 1)
		sum += (b.X - a.X) * (b.Y + a.Y)
	}
	return sum
}

// reverseRing flips point order in place (requires an owned array).
func reverseRing(ring *PointArray) {
	ring.EnsureOwned()
	n := ring.NumPoints()
	nd := ring.Flags.Ndims()
	for i, j := 0, n-1; i < j; i, j = i+1, j-1 {
		for k := 0; k < nd; k++ {
			ring.Ordinates[i*nd+k], ring.Ordinates[j*nd+k] = ring.Ordinates[j*nd+k], ring.Ordinates[i*nd+k]
		}
	}
}

// IsClockwise reports whether a ring's signed area is non-negative
// (a degenerate zero-area ring is treated as already oriented).
func IsClockwise(ring *PointArray) bool {
	return signedArea(ring) >= 0
}

// ForceClockwise normalizes every ring of a polygon: the exterior
// (ring 0) to clockwise (positive signed area), every interior ring
// to counter-clockwise (negative). Reversal happens in place;
// idempotent, since a ring already in the right orientation is left
// untouched, and a zero-area ring counts as oriented either way.
func (g *Geometry) ForceClockwise() {
	if g.Type != PolygonType {
		return
	}
	for i, ring := range g.Rings {
		area := signedArea(ring)
		wantClockwise := g.RingKindAt(i) == RingExterior
		if (wantClockwise && area < 0) || (!wantClockwise && area > 0) {
			reverseRing(ring)
		}
	}
}
