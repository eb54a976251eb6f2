package model

import (
	"math"

	"github.com/planargeo/geom/internal/coord"
)

// axisValue extracts the ordinate named by a from a point.
func axisValue(p coord.Point, a Axis) float64 {
	switch a {
	case AxisX:
		return p.X
	case AxisY:
		return p.Y
	case AxisZ:
		return p.Z
	case AxisM:
		return p.M
	}
	return 0
}

// withAxis returns p with ordinate a set to v.
func withAxis(p coord.Point, a Axis, v float64) coord.Point {
	switch a {
	case AxisX:
		p.X = v
	case AxisY:
		p.Y = v
	case AxisZ:
		p.Z = v
	case AxisM:
		p.M = v
	}
	return p
}

func axisPresent(f coord.Flags, a Axis) bool {
	switch a {
	case AxisX, AxisY:
		return true
	case AxisZ:
		return f.HasZ
	case AxisM:
		return f.HasM
	}
	return false
}

// swapPoint exchanges axes a and b on a single point.
func swapPoint(p coord.Point, a, b Axis) coord.Point {
	va, vb := axisValue(p, a), axisValue(p, b)
	p = withAxis(p, a, vb)
	p = withAxis(p, b, va)
	return p
}

func swapOrdinatesArray(pa *PointArray, a, b Axis) {
	if !axisPresent(pa.Flags, a) || !axisPresent(pa.Flags, b) {
		return
	}
	pa.EnsureOwned()
	n := pa.NumPoints()
	for i := 0; i < n; i++ {
		coord.Put(pa.Ordinates, i, pa.Flags, swapPoint(pa.Get(i), a, b))
	}
}

// SwapOrdinates swaps two named axes over every owned coordinate in
// the tree, and swaps the matching ranges of a cached bbox. A borrowed
// point array is upgraded to owned before the swap. Swapping an axis
// not present (e.g. M on an XYZ geometry) is a no-op, so swapping the
// same two axes twice is always an identity even when one is absent.
func (g *Geometry) SwapOrdinates(a, b Axis) {
	if g.Points != nil {
		swapOrdinatesArray(g.Points, a, b)
	}
	for _, ring := range g.Rings {
		swapOrdinatesArray(ring, a, b)
	}
	for _, sub := range g.Geoms {
		sub.SwapOrdinates(a, b)
	}
	if g.BBox != nil && axisPresent(g.Flags, a) && axisPresent(g.Flags, b) {
		low := swapPoint(g.BBox.Low, a, b)
		high := swapPoint(g.BBox.High, a, b)
		g.BBox.Low, g.BBox.High = low, high
	}
}

func scaleArray(pa *PointArray, factor [4]float64) {
	pa.EnsureOwned()
	n := pa.NumPoints()
	for i := 0; i < n; i++ {
		p := pa.Get(i)
		p.X *= factor[0]
		p.Y *= factor[1]
		if pa.Flags.HasZ {
			p.Z *= factor[2]
		}
		if pa.Flags.HasM {
			p.M *= factor[3]
		}
		coord.Put(pa.Ordinates, i, pa.Flags, p)
	}
}

// Scale multiplies every owned coordinate componentwise by factor
// (X,Y,Z,M), re-deriving the bbox range per axis (swapping low/high if
// the factor on that axis is negative, per the "re-establishing
// min/max ordering" requirement).
func (g *Geometry) Scale(factor [4]float64) {
	if g.Points != nil {
		scaleArray(g.Points, factor)
	}
	for _, ring := range g.Rings {
		scaleArray(ring, factor)
	}
	for _, sub := range g.Geoms {
		sub.Scale(factor)
	}
	if g.BBox != nil {
		lo, hi := g.BBox.Low, g.BBox.High
		newLo := coord.Point{
			X: lo.X * factor[0], Y: lo.Y * factor[1],
			Z: lo.Z * factor[2], M: lo.M * factor[3],
		}
		newHi := coord.Point{
			X: hi.X * factor[0], Y: hi.Y * factor[1],
			Z: hi.Z * factor[2], M: hi.M * factor[3],
		}
		g.BBox.Low = coord.Point{
			X: math.Min(newLo.X, newHi.X), Y: math.Min(newLo.Y, newHi.Y),
			Z: math.Min(newLo.Z, newHi.Z), M: math.Min(newLo.M, newHi.M),
		}
		g.BBox.High = coord.Point{
			X: math.Max(newLo.X, newHi.X), Y: math.Max(newLo.Y, newHi.Y),
			Z: math.Max(newLo.Z, newHi.Z), M: math.Max(newLo.M, newHi.M),
		}
	}
}
