// Package geom is the public surface of the planar geometry core: a
// tagged-variant geometry value, its V1/V2 binary serialization, and a
// rectangle-tree spatial index over it. It wraps internal/model,
// internal/wire, internal/rectindex, and internal/planar with thin
// exported methods delegating to the internal engine.
package geom

import (
	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
)

// Point holds up to four ordinates (X, Y, and optionally Z, M).
// Unused trailing ordinates must be ignored by callers that know a
// geometry's HasZ/HasM.
type Point = coord.Point

// Box is an axis-aligned bounding rectangle of matching dimensionality.
type Box = coord.Box

// Flags encodes per-geometry dimensionality and storage bits.
type Flags = coord.Flags

// Axis names an ordinate slot for SwapOrdinates and Scale.
type Axis = model.Axis

const (
	AxisX Axis = model.AxisX
	AxisY Axis = model.AxisY
	AxisZ Axis = model.AxisZ
	AxisM Axis = model.AxisM
)

// GeomType tags a Geometry's variant.
type GeomType = model.GeomType

const (
	PointType              = model.PointType
	LineStringType         = model.LineStringType
	PolygonType            = model.PolygonType
	MultiPointType         = model.MultiPointType
	MultiLineStringType    = model.MultiLineStringType
	MultiPolygonType       = model.MultiPolygonType
	GeometryCollectionType = model.GeometryCollectionType
	CircularStringType     = model.CircularStringType
	CompoundCurveType      = model.CompoundCurveType
	CurvePolygonType       = model.CurvePolygonType
	MultiCurveType         = model.MultiCurveType
	MultiSurfaceType       = model.MultiSurfaceType
	TriangleType           = model.TriangleType
	TINType                = model.TINType
	PolyhedralSurfaceType  = model.PolyhedralSurfaceType
)

// Geometry is a planar geometry value: a tagged-variant tree over
// shared point-array storage. The zero
// value is not usable; build one with NewEmpty or Deserialize.
//
// Example:
//
//	g := geom.NewEmpty(geom.PolygonType, 4326, false, false)
//	ring := geom.NewPointArray(false, false)
//	ring.Append(geom.Point{X: 0, Y: 0})
//	ring.Append(geom.Point{X: 4, Y: 0})
//	ring.Append(geom.Point{X: 4, Y: 4})
//	ring.Append(geom.Point{X: 0, Y: 0})
//	if err := g.AddRing(ring); err != nil {
//	    log.Fatal(err)
//	}
type Geometry struct {
	inner *model.Geometry
}

// PointArray is an owned or borrowed coordinate sequence, built up with
// Append and attached to a Polygon via AddRing.
type PointArray struct {
	inner *model.PointArray
}

// NewEmpty builds an empty geometry of the given variant, spatial
// reference identifier, and dimensionality.
func NewEmpty(t GeomType, srid int32, hasZ, hasM bool) *Geometry {
	return &Geometry{inner: model.New(t, srid, hasZ, hasM)}
}

// NewPointArray allocates an empty, owned point array of the given
// dimensionality, ready for Append calls before being attached to a
// Polygon with AddRing. Point, LineString, CircularString and Triangle
// geometries are filled through the array their Points method returns.
func NewPointArray(hasZ, hasM bool) *PointArray {
	f := coord.Flags{HasZ: hasZ, HasM: hasM}
	return &PointArray{inner: model.NewPointArray(f)}
}

// Append adds a coordinate to the array.
func (pa *PointArray) Append(p Point) { pa.inner.Append(p) }

// NumPoints returns the number of coordinates stored.
func (pa *PointArray) NumPoints() int { return pa.inner.NumPoints() }

// Get returns the i-th coordinate.
func (pa *PointArray) Get(i int) Point { return pa.inner.Get(i) }

// Points returns the backing point array for Point, LineString,
// CircularString, and Triangle variants, nil for every other variant.
// Append coordinates directly to the returned array.
func (g *Geometry) Points() *PointArray {
	if g.inner.Points == nil {
		return nil
	}
	return &PointArray{inner: g.inner.Points}
}

func wrap(g *model.Geometry) *Geometry {
	if g == nil {
		return nil
	}
	return &Geometry{inner: g}
}
