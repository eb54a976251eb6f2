package coord

import (
	"math"

	"github.com/planargeo/geom/internal/gerrors"
)

// Box is an axis-aligned rectangle of matching dimensionality (XY,
// XYZ, XYM, XYZM); in the geodetic case it is a geocentric XYZ cap
// and is built with HasZ set. Which of the Z/M slots of Low and High
// are meaningful is governed by the HasZ/HasM axis flags; slots for
// absent axes are ignored.
type Box struct {
	Low, High  Point
	HasZ, HasM bool
}

// NDims returns the number of axes the box tracks (2, 3, or 4).
func (b Box) NDims() int {
	n := 2
	if b.HasZ {
		n++
	}
	if b.HasM {
		n++
	}
	return n
}

func (b Box) dimString() string {
	switch {
	case b.HasZ && b.HasM:
		return "XYZM"
	case b.HasZ:
		return "XYZ"
	case b.HasM:
		return "XYM"
	default:
		return "XY"
	}
}

// NewBox builds a box from explicit low/high corners.
func NewBox(low, high Point, hasZ, hasM bool) Box {
	return Box{Low: low, High: high, HasZ: hasZ, HasM: hasM}
}

// FromPoint returns the degenerate box containing exactly one point.
func FromPoint(p Point, hasZ, hasM bool) Box {
	return Box{Low: p, High: p, HasZ: hasZ, HasM: hasM}
}

// Union combines two boxes by taking the componentwise min of the
// lows and max of the highs. Fails with DimensionMismatch if the two
// boxes do not share an axis set.
func Union(a, b Box) (Box, error) {
	if a.HasZ != b.HasZ || a.HasM != b.HasM {
		return Box{}, &gerrors.DimensionMismatchError{
			Context: "box union",
			Want:    a.dimString(),
			Got:     b.dimString(),
		}
	}
	out := Box{HasZ: a.HasZ, HasM: a.HasM}
	out.Low.X = math.Min(a.Low.X, b.Low.X)
	out.Low.Y = math.Min(a.Low.Y, b.Low.Y)
	out.High.X = math.Max(a.High.X, b.High.X)
	out.High.Y = math.Max(a.High.Y, b.High.Y)
	if a.HasZ {
		out.Low.Z = math.Min(a.Low.Z, b.Low.Z)
		out.High.Z = math.Max(a.High.Z, b.High.Z)
	}
	if a.HasM {
		out.Low.M = math.Min(a.Low.M, b.Low.M)
		out.High.M = math.Max(a.High.M, b.High.M)
	}
	return out, nil
}

// ExpandBy grows a box by a fixed scalar margin on every axis.
func (b Box) ExpandBy(scalar float64) Box {
	out := b
	out.Low.X -= scalar
	out.Low.Y -= scalar
	out.High.X += scalar
	out.High.Y += scalar
	if b.HasZ {
		out.Low.Z -= scalar
		out.High.Z += scalar
	}
	if b.HasM {
		out.Low.M -= scalar
		out.High.M += scalar
	}
	return out
}

// Contains reports whether p lies within b on every axis b tracks:
// componentwise low <= coord <= high. A NaN ordinate
// on either side compares false, the same way it would if the check
// were run directly against the source coordinate (no special-casing).
func (b Box) Contains(p Point) bool {
	if !(b.Low.X <= p.X && p.X <= b.High.X) {
		return false
	}
	if !(b.Low.Y <= p.Y && p.Y <= b.High.Y) {
		return false
	}
	if b.HasZ && !(b.Low.Z <= p.Z && p.Z <= b.High.Z) {
		return false
	}
	if b.HasM && !(b.Low.M <= p.M && p.M <= b.High.M) {
		return false
	}
	return true
}

// Widen applies the bbox rounding (round_down on the low corner,
// round_up on the high corner), returning a box whose corners are
// exact float32 values re-widened to float64. Idempotent: a corner
// already exactly representable in single precision is left alone.
// Applied once before a box is written to the wire.
func (b Box) Widen() Box {
	out := b
	out.Low.X = float64(RoundDown(b.Low.X))
	out.Low.Y = float64(RoundDown(b.Low.Y))
	out.High.X = float64(RoundUp(b.High.X))
	out.High.Y = float64(RoundUp(b.High.Y))
	if b.HasZ {
		out.Low.Z = float64(RoundDown(b.Low.Z))
		out.High.Z = float64(RoundUp(b.High.Z))
	}
	if b.HasM {
		out.Low.M = float64(RoundDown(b.Low.M))
		out.High.M = float64(RoundUp(b.High.M))
	}
	return out
}

// ArcBox computes the bounding box of a circular arc through three
// points p1 (start), p2 (midpoint on the arc), p3 (end). The arc's
// true extent depends on its sweep direction and could touch the
// circumscribed circle's axis extrema; per the conservative policy
// recorded for the undocumented ±Inf-sweep case, this always enlarges
// to the full circumcircle (center ± radius on X and Y) rather than
// computing the arc's exact sweep, and takes the Z/M range from the
// three defining points directly (an arc's Z/M is linearly
// interpolated along its length in this model, never bulging beyond
// its endpoints' range the way X/Y can).
func ArcBox(p1, p2, p3 Point, hasZ, hasM bool) Box {
	cx, cy, r, ok := circumcircle(p1, p2, p3)
	if !ok {
		// Collinear (or coincident) points: the "arc" degenerates to a
		// segment: fall back to the envelope of the three points.
		return envelope(p1, p2, p3, hasZ, hasM)
	}
	out := Box{HasZ: hasZ, HasM: hasM}
	out.Low.X, out.High.X = cx-r, cx+r
	out.Low.Y, out.High.Y = cy-r, cy+r
	if hasZ {
		out.Low.Z = math.Min(p1.Z, math.Min(p2.Z, p3.Z))
		out.High.Z = math.Max(p1.Z, math.Max(p2.Z, p3.Z))
	}
	if hasM {
		out.Low.M = math.Min(p1.M, math.Min(p2.M, p3.M))
		out.High.M = math.Max(p1.M, math.Max(p2.M, p3.M))
	}
	return out
}

func envelope(p1, p2, p3 Point, hasZ, hasM bool) Box {
	out := Box{HasZ: hasZ, HasM: hasM}
	out.Low.X = math.Min(p1.X, math.Min(p2.X, p3.X))
	out.High.X = math.Max(p1.X, math.Max(p2.X, p3.X))
	out.Low.Y = math.Min(p1.Y, math.Min(p2.Y, p3.Y))
	out.High.Y = math.Max(p1.Y, math.Max(p2.Y, p3.Y))
	if hasZ {
		out.Low.Z = math.Min(p1.Z, math.Min(p2.Z, p3.Z))
		out.High.Z = math.Max(p1.Z, math.Max(p2.Z, p3.Z))
	}
	if hasM {
		out.Low.M = math.Min(p1.M, math.Min(p2.M, p3.M))
		out.High.M = math.Max(p1.M, math.Max(p2.M, p3.M))
	}
	return out
}

// circumcircle returns the center and radius of the circle through
// three 2D points, or ok=false if they are collinear.
func circumcircle(p1, p2, p3 Point) (cx, cy, r float64, ok bool) {
	ax, ay := p1.X, p1.Y
	bx, by := p2.X, p2.Y
	cxp, cyp := p3.X, p3.Y

	d := 2 * (ax*(by-cyp) + bx*(cyp-ay) + cxp*(ay-by))
	if math.Abs(d) < 1e-12 {
		return 0, 0, 0, false
	}

	a2 := ax*ax + ay*ay
	b2 := bx*bx + by*by
	c2 := cxp*cxp + cyp*cyp

	ux := (a2*(by-cyp) + b2*(cyp-ay) + c2*(ay-by)) / d
	uy := (a2*(cxp-bx) + b2*(ax-cxp) + c2*(bx-ax)) / d

	r = math.Hypot(ax-ux, ay-uy)
	return ux, uy, r, true
}
