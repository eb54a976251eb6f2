// Package coord implements the coordinate and flag primitives:
// the 2/3/4-dimensional point, the axis-aligned box, the
// dimensionality/flags byte, and float width-rounding. Every other
// component builds on this one; it has no internal dependencies of
// its own.
package coord

import "math"

// Point holds up to four ordinates. Unused trailing ordinates (no Z,
// no M) are zero and must be ignored by callers that know the
// governing Flags; the struct itself does not track its own
// dimensionality.
type Point struct {
	X, Y, Z, M float64
}

// Flags encodes per-geometry and per-point-array dimensionality and
// storage bits. This is the in-memory form; the wire flags byte is a
// narrower, version-specific encoding internal/wire produces from it.
type Flags struct {
	HasZ     bool
	HasM     bool
	HasBBox  bool
	Geodetic bool
	Solid    bool
	ReadOnly bool
}

// Ndims returns the number of ordinates (2, 3, or 4) implied by the
// flags: X and Y are always present.
func (f Flags) Ndims() int {
	n := 2
	if f.HasZ {
		n++
	}
	if f.HasM {
		n++
	}
	return n
}

// NdimsBox returns the number of ordinates in the bounding box for
// these flags. Geodetic boxes are always geocentric XYZ regardless of
// M presence.
func (f Flags) NdimsBox() int {
	if f.Geodetic {
		return 3
	}
	return f.Ndims()
}

// BoxFlags returns the axis set of a bounding box derived under f:
// geodetic boxes are geocentric XYZ regardless of M presence, planar
// boxes track whichever of Z and M the coordinates carry.
func (f Flags) BoxFlags() (hasZ, hasM bool) {
	if f.Geodetic {
		return true, false
	}
	return f.HasZ, f.HasM
}

// Get reads the ordinates of index i (0-based) out of a packed,
// flags-governed buffer of float64 ordinates (ndims per point,
// row-major), the same layout the serialized payload uses.
func Get(buf []float64, i int, f Flags) Point {
	n := f.Ndims()
	off := i * n
	p := Point{X: buf[off], Y: buf[off+1]}
	k := 2
	if f.HasZ {
		p.Z = buf[off+k]
		k++
	}
	if f.HasM {
		p.M = buf[off+k]
	}
	return p
}

// Put writes point p into a packed buffer at index i, honoring flags.
func Put(buf []float64, i int, f Flags, p Point) {
	n := f.Ndims()
	off := i * n
	buf[off] = p.X
	buf[off+1] = p.Y
	k := 2
	if f.HasZ {
		buf[off+k] = p.Z
		k++
	}
	if f.HasM {
		buf[off+k] = p.M
	}
}

// Equal reports whether two points agree on every ordinate governed
// by f. NaN ordinates never compare equal, matching IEEE-754 semantics
// rather than a structural-equality override; structural comparison
// with NaN carried through lives in internal/model's Same.
func Equal(a, b Point, f Flags) bool {
	if a.X != b.X || a.Y != b.Y {
		return false
	}
	if f.HasZ && a.Z != b.Z {
		return false
	}
	if f.HasM && a.M != b.M {
		return false
	}
	return true
}

// IsFinite reports whether every ordinate governed by f is neither
// NaN nor ±infinity.
func IsFinite(p Point, f Flags) bool {
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		return false
	}
	if f.HasZ && (math.IsNaN(p.Z) || math.IsInf(p.Z, 0)) {
		return false
	}
	if f.HasM && (math.IsNaN(p.M) || math.IsInf(p.M, 0)) {
		return false
	}
	return true
}
