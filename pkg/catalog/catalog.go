// Package catalog provides fast spatial queries over a bulk collection
// of geometries: the natural extension of pkg/geom's single-geometry
// Index API to many geometries at once.
package catalog

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/planargeo/geom/internal/coord"
)

// Entry is one catalog member: an opaque host identifier, its bounding
// box, and the spatial reference it was computed in.
type Entry struct {
	ID   string
	Box  coord.Box
	SRID int32
}

// rectOf converts a box to an R-tree rectangle. A degenerate
// (zero-width) box, a point entry or an axis-aligned line, is
// padded out with ExpandBy first, since rtreego.NewRect rejects
// zero-length sides.
func rectOf(b coord.Box) rtreego.Rect {
	const eps = 1e-10
	if b.High.X-b.Low.X <= 0 || b.High.Y-b.Low.Y <= 0 {
		b = b.ExpandBy(eps)
	}
	point := rtreego.Point{b.Low.X, b.Low.Y}
	lengths := []float64{b.High.X - b.Low.X, b.High.Y - b.Low.Y}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// Bounds implements rtreego.Spatial.
func (e Entry) Bounds() rtreego.Rect {
	return rectOf(e.Box)
}

// Catalog indexes many geometries by their bounding box for fast
// region queries: one rtreego.Rtree over lightweight Entry values.
type Catalog struct {
	entries []Entry
	rtree   *rtreego.Rtree
}

// New creates an empty catalog. minChildren/maxChildren tune the
// R-tree's branching factor, passed straight to rtreego.NewTree (use
// something like 25/50 for thousands of entries; a small catalog can
// use a tighter fan-out).
func New(minChildren, maxChildren int) *Catalog {
	return &Catalog{rtree: rtreego.NewTree(2, minChildren, maxChildren)}
}

// Insert adds one entry to the catalog, indexing it immediately.
func (c *Catalog) Insert(e Entry) {
	c.entries = append(c.entries, e)
	c.rtree.Insert(e)
}

// Build creates a new catalog holding entries, inserting each in
// turn: the bulk counterpart to repeated Insert calls, mirroring
// BuildIndex's one-shot construction from a loaded CellSet.
func Build(entries []Entry, minChildren, maxChildren int) *Catalog {
	c := New(minChildren, maxChildren)
	for _, e := range entries {
		c.Insert(e)
	}
	return c
}

// Query returns every entry whose bounding box intersects bounds,
// sorted by ID for a deterministic result order.
func (c *Catalog) Query(bounds coord.Box) []Entry {
	rect := rectOf(bounds)

	var result []Entry
	for _, spatial := range c.rtree.SearchIntersect(rect) {
		result = append(result, spatial.(Entry))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}

// Count returns the total number of entries in the catalog.
func (c *Catalog) Count() int { return len(c.entries) }

// Bounds returns the union of every entry's bounding box in the
// catalog, or the zero Box if the catalog is empty.
func (c *Catalog) Bounds() coord.Box {
	if len(c.entries) == 0 {
		return coord.Box{}
	}
	bounds := c.entries[0].Box
	for _, e := range c.entries[1:] {
		bounds, _ = coord.Union(bounds, e.Box)
	}
	return bounds
}

// All returns every entry in the catalog, in insertion order.
func (c *Catalog) All() []Entry {
	return c.entries
}
