package model

import "math"

// ordEqual compares a single ordinate structurally: NaN equals NaN,
// so a geometry carrying NaN (which the core preserves rather than
// rejects) still compares Same as its own round trip.
func ordEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func pointArraysEqual(a, b *PointArray) bool {
	if a.Flags.HasZ != b.Flags.HasZ || a.Flags.HasM != b.Flags.HasM {
		return false
	}
	if len(a.Ordinates) != len(b.Ordinates) {
		return false
	}
	for i := range a.Ordinates {
		if !ordEqual(a.Ordinates[i], b.Ordinates[i]) {
			return false
		}
	}
	return true
}

// Same reports structural equality: equal type, equal dimensionality,
// equal vertex sequences, equal nesting. SRID and bbox are not
// compared (bbox is a derived cache, SRID is carried at the top level
// only and is compared separately by callers that need it).
func Same(a, b *Geometry) bool {
	if a.Type != b.Type {
		return false
	}
	if a.Flags.HasZ != b.Flags.HasZ || a.Flags.HasM != b.Flags.HasM {
		return false
	}
	if (a.Points == nil) != (b.Points == nil) {
		return false
	}
	if a.Points != nil && !pointArraysEqual(a.Points, b.Points) {
		return false
	}
	if len(a.Rings) != len(b.Rings) {
		return false
	}
	for i := range a.Rings {
		if !pointArraysEqual(a.Rings[i], b.Rings[i]) {
			return false
		}
	}
	if len(a.Geoms) != len(b.Geoms) {
		return false
	}
	for i := range a.Geoms {
		if !Same(a.Geoms[i], b.Geoms[i]) {
			return false
		}
	}
	return true
}
