package catalog

import (
	"testing"

	"github.com/planargeo/geom/internal/coord"
)

func box(x0, y0, x1, y1 float64) coord.Box {
	return coord.Box{Low: coord.Point{X: x0, Y: y0}, High: coord.Point{X: x1, Y: y1}}
}

func TestInsertAndQuery(t *testing.T) {
	c := New(2, 8)
	c.Insert(Entry{ID: "a", Box: box(0, 0, 10, 10), SRID: 4326})
	c.Insert(Entry{ID: "b", Box: box(20, 20, 30, 30), SRID: 4326})
	c.Insert(Entry{ID: "c", Box: box(5, 5, 15, 15), SRID: 4326})

	got := c.Query(box(0, 0, 10, 10))
	if len(got) != 2 {
		t.Fatalf("got %d entries, want 2: %+v", len(got), got)
	}
	if got[0].ID != "a" || got[1].ID != "c" {
		t.Fatalf("got %v, want [a c] in ID order", got)
	}
}

func TestQueryNoMatches(t *testing.T) {
	c := New(2, 8)
	c.Insert(Entry{ID: "a", Box: box(0, 0, 10, 10)})
	if got := c.Query(box(100, 100, 110, 110)); len(got) != 0 {
		t.Fatalf("got %d entries, want 0", len(got))
	}
}

func TestBuildBulkConstructor(t *testing.T) {
	entries := []Entry{
		{ID: "x", Box: box(0, 0, 1, 1)},
		{ID: "y", Box: box(2, 2, 3, 3)},
	}
	c := Build(entries, 2, 8)
	if c.Count() != 2 {
		t.Fatalf("got %d, want 2", c.Count())
	}
	if len(c.All()) != 2 {
		t.Fatalf("got %d entries from All, want 2", len(c.All()))
	}
}

func TestCountAndBounds(t *testing.T) {
	c := New(2, 8)
	if c.Count() != 0 {
		t.Fatalf("empty catalog should have Count 0, got %d", c.Count())
	}
	empty := c.Bounds()
	if (empty != coord.Box{}) {
		t.Fatalf("empty catalog should have the zero Box, got %+v", empty)
	}

	c.Insert(Entry{ID: "a", Box: box(0, 0, 10, 10)})
	c.Insert(Entry{ID: "b", Box: box(5, -5, 20, 5)})

	bounds := c.Bounds()
	want := box(0, -5, 20, 10)
	if bounds != want {
		t.Fatalf("got bounds %+v, want %+v", bounds, want)
	}
}

func TestDegenerateBoxIndexable(t *testing.T) {
	c := New(2, 8)
	// A point entry has a zero-width box on both axes; Entry.Bounds must
	// still produce a valid rtreego.Rect rather than panicking.
	c.Insert(Entry{ID: "pt", Box: box(5, 5, 5, 5)})
	got := c.Query(box(0, 0, 10, 10))
	if len(got) != 1 || got[0].ID != "pt" {
		t.Fatalf("got %+v, want a single entry pt", got)
	}
}

func BenchmarkQuery(b *testing.B) {
	c := New(25, 50)
	for i := 0; i < 10000; i++ {
		x := float64(i % 100)
		y := float64(i / 100)
		c.Insert(Entry{ID: "e", Box: box(x, y, x+1, y+1)})
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Query(box(40, 40, 60, 60))
	}
}
