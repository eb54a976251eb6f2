package geom

import (
	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/model"
)

// AddRing appends a ring to a Polygon geometry: the first ring added
// becomes the exterior, every later one an interior hole.
func (g *Geometry) AddRing(ring *PointArray) error {
	return g.inner.AddRing(ring.inner)
}

// AddGeom appends a sub-geometry to a collection variant (MultiPoint,
// MultiLineString, MultiPolygon, MultiCurve, MultiSurface,
// PolyhedralSurface, TIN, GeometryCollection, CompoundCurve,
// CurvePolygon), checking subtype and dimensionality compatibility.
func (g *Geometry) AddGeom(sub *Geometry) error {
	return g.inner.AddGeom(sub.inner)
}

// WithBBox returns a shallow copy of g with box installed as its
// cached bounding box, bypassing recomputation.
func (g *Geometry) WithBBox(box Box) *Geometry {
	out := *g.inner
	b := box
	out.BBox = &b
	return wrap(&out)
}

// WithoutBBox returns a shallow copy of g with its cached bounding box
// cleared, forcing the next consumer that needs one to recompute it.
func (g *Geometry) WithoutBBox() *Geometry {
	out := *g.inner
	out.BBox = nil
	return wrap(&out)
}

// BBoxCached returns the currently cached bounding box, if any.
func (g *Geometry) BBoxCached() (Box, bool) {
	if g.inner.BBox == nil {
		return Box{}, false
	}
	return *g.inner.BBox, true
}

// BBoxComputed derives the full-precision bounding box of g by walking
// every coordinate, ignoring any cached value. Returns ok=false for an
// empty geometry.
func (g *Geometry) BBoxComputed() (Box, bool) {
	return computeBBox(g.inner)
}

// computeBBox walks a geometry's tree absorbing every owned coordinate
// into a running union, the same traversal internal/wire performs
// before attaching a bbox to a freshly built geometry; kept local to
// pkg/geom since it is purely about the tree shape, not serialization.
func computeBBox(g *model.Geometry) (coord.Box, bool) {
	bz, bm := g.Flags.BoxFlags()
	var acc coord.Box
	have := false
	absorb := func(pa *model.PointArray) {
		n := pa.NumPoints()
		for i := 0; i < n; i++ {
			b := coord.FromPoint(pa.Get(i), bz, bm)
			if !have {
				acc, have = b, true
			} else {
				acc, _ = coord.Union(acc, b)
			}
		}
	}
	if g.Points != nil {
		absorb(g.Points)
	}
	for _, r := range g.Rings {
		absorb(r)
	}
	for _, sub := range g.Geoms {
		b, ok := computeBBox(sub)
		if !ok {
			continue
		}
		if !have {
			acc, have = b, true
		} else {
			acc, _ = coord.Union(acc, b)
		}
	}
	return acc, have
}
