// Package model implements the geometry tree: a tagged-variant value
// with a shared point-array backing, the shape internal/wire produces
// on decode and the parsers build up directly.
package model

import (
	"fmt"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/gerrors"
)

// GeomType tags the variant a Geometry holds. The values are also the
// on-disk uint32 type tags: internal/wire writes and reads these same
// constants in the payload's type field.
type GeomType uint32

const (
	PointType GeomType = iota + 1
	LineStringType
	PolygonType
	MultiPointType
	MultiLineStringType
	MultiPolygonType
	GeometryCollectionType
	CircularStringType
	CompoundCurveType
	CurvePolygonType
	MultiCurveType
	MultiSurfaceType
	TriangleType
	TINType
	PolyhedralSurfaceType
)

func (t GeomType) String() string {
	switch t {
	case PointType:
		return "Point"
	case LineStringType:
		return "LineString"
	case PolygonType:
		return "Polygon"
	case MultiPointType:
		return "MultiPoint"
	case MultiLineStringType:
		return "MultiLineString"
	case MultiPolygonType:
		return "MultiPolygon"
	case GeometryCollectionType:
		return "GeometryCollection"
	case CircularStringType:
		return "CircularString"
	case CompoundCurveType:
		return "CompoundCurve"
	case CurvePolygonType:
		return "CurvePolygon"
	case MultiCurveType:
		return "MultiCurve"
	case MultiSurfaceType:
		return "MultiSurface"
	case TriangleType:
		return "Triangle"
	case TINType:
		return "TIN"
	case PolyhedralSurfaceType:
		return "PolyhedralSurface"
	default:
		return fmt.Sprintf("GeomType(%d)", uint32(t))
	}
}

// Axis names an ordinate slot for SwapOrdinates/Scale.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisM
)

// PointArray is an ordered sequence of coordinates of uniform
// dimensionality. It owns its ordinate storage unless Flags.ReadOnly
// is set, in which case Ordinates borrows a read-only slice from a
// deserialization buffer and must be copied before any mutation.
type PointArray struct {
	Ordinates []float64
	Flags     coord.Flags
}

// NewPointArray allocates an owned, empty point array with the given
// dimensionality flags (ReadOnly is always false for a fresh array).
func NewPointArray(f coord.Flags) *PointArray {
	f.ReadOnly = false
	return &PointArray{Flags: f}
}

// NumPoints returns the number of coordinates stored.
func (pa *PointArray) NumPoints() int {
	n := pa.Flags.Ndims()
	if n == 0 {
		return 0
	}
	return len(pa.Ordinates) / n
}

// Get returns the i-th coordinate.
func (pa *PointArray) Get(i int) coord.Point {
	return coord.Get(pa.Ordinates, i, pa.Flags)
}

// Append adds a coordinate to an owned array; panics if called on a
// borrowed array (callers must EnsureOwned first; borrowed storage is
// strictly copy-on-write).
func (pa *PointArray) Append(p coord.Point) {
	if pa.Flags.ReadOnly {
		panic("model: Append on read-only point array")
	}
	n := pa.Flags.Ndims()
	off := len(pa.Ordinates)
	pa.Ordinates = append(pa.Ordinates, make([]float64, n)...)
	coord.Put(pa.Ordinates, off/n, pa.Flags, p)
}

// EnsureOwned upgrades a borrowed point array to owned storage by
// copying its ordinates, the copy-on-write step required before any
// in-place mutation.
func (pa *PointArray) EnsureOwned() {
	if !pa.Flags.ReadOnly {
		return
	}
	cp := make([]float64, len(pa.Ordinates))
	copy(cp, pa.Ordinates)
	pa.Ordinates = cp
	pa.Flags.ReadOnly = false
}

// IsClosed reports whether first == last (the ring invariant). An
// array of fewer than 1 point is considered not closed.
func (pa *PointArray) IsClosed() bool {
	n := pa.NumPoints()
	if n < 1 {
		return false
	}
	return coord.Equal(pa.Get(0), pa.Get(n-1), pa.Flags)
}

// ValidateRing checks a non-empty ring (polygon ring or triangle):
// closed, with at least 4 points (>= 3 distinct).
// An empty array (0 points) passes: it represents the not-yet-built
// or deliberately empty case, not a malformed ring.
func ValidateRing(pa *PointArray) error {
	n := pa.NumPoints()
	if n == 0 {
		return nil
	}
	if n < 4 {
		return &gerrors.InvalidGeometryError{Context: "ring", Reason: fmt.Sprintf("needs >= 4 points, got %d", n)}
	}
	if !pa.IsClosed() {
		return &gerrors.InvalidGeometryError{Context: "ring", Reason: "first point does not equal last point"}
	}
	a, b := pa.Get(0), pa.Get(0)
	distinct := 1
	for i := 1; i < n && distinct < 3; i++ {
		p := pa.Get(i)
		if !coord.Equal(p, a, pa.Flags) && (distinct == 1 || !coord.Equal(p, b, pa.Flags)) {
			b = p
			distinct++
		}
	}
	if distinct < 3 {
		return &gerrors.InvalidGeometryError{Context: "ring", Reason: "needs >= 3 distinct points"}
	}
	return nil
}

// ValidateLine checks a non-empty LineString: at least 2 points.
func ValidateLine(pa *PointArray) error {
	n := pa.NumPoints()
	if n == 0 {
		return nil
	}
	if n < 2 {
		return &gerrors.InvalidGeometryError{Context: "line", Reason: fmt.Sprintf("needs >= 2 points, got %d", n)}
	}
	return nil
}

// ValidateArc checks a non-empty CircularString: an odd point count
// of at least 3 (each arc segment contributes a start, mid, and
// shared end point).
func ValidateArc(pa *PointArray) error {
	n := pa.NumPoints()
	if n == 0 {
		return nil
	}
	if n < 3 || n%2 == 0 {
		return &gerrors.InvalidGeometryError{Context: "circular string", Reason: fmt.Sprintf("needs an odd count >= 3, got %d", n)}
	}
	return nil
}

// ValidatePoints dispatches to the right structural check for a
// primitive geometry's backing point array, by variant: Point carries
// no minimum, LineString needs ValidateLine, CircularString needs
// ValidateArc, Triangle needs ValidateRing (it is a ring).
func ValidatePoints(t GeomType, pa *PointArray) error {
	switch t {
	case LineStringType:
		return ValidateLine(pa)
	case CircularStringType:
		return ValidateArc(pa)
	case TriangleType:
		return ValidateRing(pa)
	default:
		return nil
	}
}

// Clone returns a deep, owned copy.
func (pa *PointArray) Clone() *PointArray {
	cp := make([]float64, len(pa.Ordinates))
	copy(cp, pa.Ordinates)
	f := pa.Flags
	f.ReadOnly = false
	return &PointArray{Ordinates: cp, Flags: f}
}

// Geometry is the tagged-variant tree node. Which of Points, Rings, or
// Geoms is populated depends on Type:
//
//   - Point, LineString, CircularString, Triangle: Points holds the
//     single backing array.
//   - Polygon: Rings holds ring 0 (exterior) then interior holes, all
//     plain linear point arrays.
//   - CompoundCurve: Geoms holds LineString/CircularString pieces.
//   - CurvePolygon: Geoms holds LineString/CircularString/CompoundCurve
//     rings (ring 0 exterior, rest interior).
//   - MultiPoint, MultiLineString, MultiPolygon, MultiCurve,
//     MultiSurface, PolyhedralSurface, TIN, GeometryCollection: Geoms
//     holds member geometries, constrained per Type by subtypeAllowed.
type Geometry struct {
	Type  GeomType
	SRID  int32
	Flags coord.Flags

	Points *PointArray
	Rings  []*PointArray
	Geoms  []*Geometry

	BBox     *coord.Box
	ringKind []RingKind // parallel to Rings/Geoms for Polygon/CurvePolygon
}

// RingKind tags a polygon/curve-polygon ring by position, matching
// the index's exterior/interior distinction.
type RingKind int

const (
	RingExterior RingKind = iota
	RingInterior
)

// New builds an empty geometry of the given variant.
func New(t GeomType, srid int32, hasZ, hasM bool) *Geometry {
	f := coord.Flags{HasZ: hasZ, HasM: hasM}
	g := &Geometry{Type: t, SRID: srid, Flags: f}
	switch t {
	case PointType, LineStringType, CircularStringType, TriangleType:
		g.Points = NewPointArray(f)
	}
	return g
}

// flagsCompatible reports whether a child's Z/M presence matches the
// parent's.
func flagsCompatible(parent, child coord.Flags) bool {
	return parent.HasZ == child.HasZ && parent.HasM == child.HasM
}

func dimString(f coord.Flags) string {
	switch {
	case f.HasZ && f.HasM:
		return "XYZM"
	case f.HasZ:
		return "XYZ"
	case f.HasM:
		return "XYM"
	default:
		return "XY"
	}
}

func dimMismatch(context string, parent, child coord.Flags) error {
	return &gerrors.DimensionMismatchError{
		Context: context,
		Want:    dimString(parent),
		Got:     dimString(child),
	}
}
