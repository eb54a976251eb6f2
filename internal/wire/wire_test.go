package wire

import (
	"testing"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/corert"
	"github.com/planargeo/geom/internal/gerrors"
	"github.com/planargeo/geom/internal/model"
)

func point(f coord.Flags, pts ...coord.Point) *model.PointArray {
	pa := model.NewPointArray(f)
	for _, p := range pts {
		pa.Append(p)
	}
	return pa
}

func TestFromGeometryPointSize(t *testing.T) {
	g := model.New(model.PointType, UnknownSRID, false, false)
	g.Points.Append(coord.Point{X: 0, Y: 0})
	buf, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 32 {
		t.Fatalf("POINT(0 0) got %d bytes, want 32", len(buf))
	}

	gz := model.New(model.PointType, UnknownSRID, true, false)
	gz.Points.Append(coord.Point{X: 0, Y: 0, Z: 0})
	bufz, err := FromGeometry(gz, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(bufz) != 40 {
		t.Fatalf("POINT Z(0 0 0) got %d bytes, want 40", len(bufz))
	}
}

func ring(f coord.Flags, xy ...float64) *model.PointArray {
	pa := model.NewPointArray(f)
	for i := 0; i+1 < len(xy); i += 2 {
		pa.Append(coord.Point{X: xy[i], Y: xy[i+1]})
	}
	return pa
}

func polygonWithHole() *model.Geometry {
	f := coord.Flags{}
	g := model.New(model.PolygonType, UnknownSRID, false, false)
	ext := ring(f, -1, -1, -1, 2, 2, 2, 2, -1, -1, -1)
	hole := ring(f, 0, 0, 0, 1, 1, 1, 1, 0, 0, 0)
	if err := g.AddRing(ext); err != nil {
		panic(err)
	}
	if err := g.AddRing(hole); err != nil {
		panic(err)
	}
	return g
}

// The one-hole polygon's bbox-less size is 184 bytes; FromGeometry's
// actual output, which attaches a widened bbox for non-Point types,
// is 200 bytes.
func TestPolygonWithHoleSize(t *testing.T) {
	g := polygonWithHole()
	if got := SizeFor(g); got != 184 {
		t.Fatalf("SizeFor = %d, want 184", got)
	}
	buf, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(buf) != 200 {
		t.Fatalf("FromGeometry produced %d bytes, want 200", len(buf))
	}
	box, err := PeekBBox(buf)
	if err != nil {
		t.Fatal(err)
	}
	if box.Low.X != -1 || box.Low.Y != -1 || box.High.X != 2 || box.High.Y != 2 {
		t.Fatalf("bbox = %+v, want [-1,2]x[-1,2]", box)
	}
}

func TestPolygonRoundTrip(t *testing.T) {
	g := polygonWithHole()
	buf, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	back, err := Decode(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !model.Same(g, back) {
		t.Fatalf("round trip mismatch: got %+v", back)
	}
}

func TestV1V2Coexistence(t *testing.T) {
	g := polygonWithHole()
	v1, err := FromGeometryV1(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	g1, err := Decode(v1, nil)
	if err != nil {
		t.Fatal(err)
	}
	g2, err := Decode(v2, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !model.Same(g1, g2) {
		t.Fatalf("V1 and V2 decode to different geometries")
	}
	h1, err := Hash(v1)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := Hash(v2)
	if err != nil {
		t.Fatal(err)
	}
	if h1 != h2 {
		t.Fatalf("Hash differs across versions: %d vs %d", h1, h2)
	}
}

func TestIsEmpty(t *testing.T) {
	empty := model.New(model.LineStringType, UnknownSRID, false, false)
	buf, err := FromGeometry(empty, nil)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := IsEmpty(buf)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected empty LineString to report IsEmpty")
	}

	g := polygonWithHole()
	buf2, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	ok2, err := IsEmpty(buf2)
	if err != nil {
		t.Fatal(err)
	}
	if ok2 {
		t.Fatalf("expected non-empty polygon to report not empty")
	}
}

func TestIsEmptyInsideCollection(t *testing.T) {
	f := coord.Flags{}
	coll := model.New(model.GeometryCollectionType, UnknownSRID, false, false)
	empty := model.New(model.LineStringType, UnknownSRID, false, false)
	line := model.New(model.LineStringType, UnknownSRID, false, false)
	line.Points = point(f, coord.Point{X: 0, Y: 0}, coord.Point{X: 1, Y: 1})
	if err := coll.AddGeom(empty); err != nil {
		t.Fatal(err)
	}
	if err := coll.AddGeom(line); err != nil {
		t.Fatal(err)
	}
	buf, err := FromGeometry(coll, nil)
	if err != nil {
		t.Fatal(err)
	}
	ok, err := IsEmpty(buf)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("collection with one non-empty member must not report empty")
	}

	// The IsEmpty verdict above already needed its cursor to skip the
	// first (empty) child and land on the second; the decode round trip
	// checks that the collection itself was encoded intact.
	back, err := Decode(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !model.Same(coll, back) {
		t.Fatalf("round trip after IsEmpty scan mismatch")
	}
}

func TestPeekFirstPointAndType(t *testing.T) {
	g := model.New(model.PointType, UnknownSRID, false, false)
	g.Points.Append(coord.Point{X: 3, Y: 4})
	buf, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	typ, err := PeekType(buf)
	if err != nil {
		t.Fatal(err)
	}
	if typ != model.PointType {
		t.Fatalf("PeekType = %v, want Point", typ)
	}
	p, err := PeekFirstPoint(buf)
	if err != nil {
		t.Fatal(err)
	}
	if p.X != 3 || p.Y != 4 {
		t.Fatalf("PeekFirstPoint = %+v, want (3,4)", p)
	}

	poly := polygonWithHole()
	pbuf, _ := FromGeometry(poly, nil)
	if _, err := PeekFirstPoint(pbuf); err == nil {
		t.Fatalf("expected NotAvailable for PeekFirstPoint on a polygon")
	}
}

func TestSetBBoxAndDropBBox(t *testing.T) {
	g := model.New(model.PointType, UnknownSRID, false, false)
	g.Points.Append(coord.Point{X: 0, Y: 0})
	buf, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	hasBBox, err := PeekHasBBox(buf)
	if err != nil {
		t.Fatal(err)
	}
	if hasBBox {
		t.Fatalf("POINT(0 0) should not carry a bbox by default")
	}

	withBox, err := SetBBox(buf, coord.NewBox(coord.Point{X: -1, Y: -1}, coord.Point{X: 1, Y: 1}, false, false))
	if err != nil {
		t.Fatal(err)
	}
	hasBBox2, err := PeekHasBBox(withBox)
	if err != nil {
		t.Fatal(err)
	}
	if !hasBBox2 {
		t.Fatalf("SetBBox did not set the BBOX flag")
	}
	box, err := PeekBBox(withBox)
	if err != nil {
		t.Fatal(err)
	}
	if box.Low.X != -1 || box.High.X != 1 {
		t.Fatalf("bbox not written correctly: %+v", box)
	}

	dropped, err := DropBBox(withBox)
	if err != nil {
		t.Fatal(err)
	}
	hasBBox3, err := PeekHasBBox(dropped)
	if err != nil {
		t.Fatal(err)
	}
	if hasBBox3 {
		t.Fatalf("DropBBox did not clear the BBOX flag")
	}
	back, err := Decode(dropped, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !model.Same(g, back) {
		t.Fatalf("round trip after DropBBox mismatch")
	}

	// Overwriting an existing bbox happens in place.
	widerBox, err := SetBBox(withBox, coord.NewBox(coord.Point{X: -5, Y: -5}, coord.Point{X: 5, Y: 5}, false, false))
	if err != nil {
		t.Fatal(err)
	}
	box2, err := PeekBBox(widerBox)
	if err != nil {
		t.Fatal(err)
	}
	if box2.Low.X != -5 || box2.High.X != 5 {
		t.Fatalf("in-place SetBBox did not overwrite: %+v", box2)
	}
}

func TestCmpOrdersBySortableHash(t *testing.T) {
	a := model.New(model.PointType, UnknownSRID, false, false)
	a.Points.Append(coord.Point{X: -100, Y: -100})
	b := model.New(model.PointType, UnknownSRID, false, false)
	b.Points.Append(coord.Point{X: 100, Y: 100})

	bufA, err := FromGeometry(a, nil)
	if err != nil {
		t.Fatal(err)
	}
	bufB, err := FromGeometry(b, nil)
	if err != nil {
		t.Fatal(err)
	}
	c, err := Cmp(bufA, bufB)
	if err != nil {
		t.Fatal(err)
	}
	if c >= 0 {
		t.Fatalf("Cmp(a,b) = %d, want negative (a sorts before b)", c)
	}
	c2, err := Cmp(bufA, bufA)
	if err != nil {
		t.Fatal(err)
	}
	if c2 != 0 {
		t.Fatalf("Cmp(a,a) = %d, want 0", c2)
	}
}

func TestUnknownVersionError(t *testing.T) {
	g := model.New(model.PointType, UnknownSRID, false, false)
	g.Points.Append(coord.Point{X: 0, Y: 0})
	buf, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	corrupt := append([]byte(nil), buf...)
	corrupt[7] = corrupt[7]&^byte(versionMask<<versionShift) | byte(2<<versionShift)
	if _, err := Decode(corrupt, nil); err == nil {
		t.Fatalf("expected UnknownVersionError")
	} else if _, ok := err.(*gerrors.UnknownVersionError); !ok {
		t.Fatalf("expected *gerrors.UnknownVersionError, got %T", err)
	}
}

func TestInvalidPayloadErrorOnTruncatedBuffer(t *testing.T) {
	g := polygonWithHole()
	buf, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	truncated := buf[:len(buf)-20]
	if _, err := Decode(truncated, nil); err == nil {
		t.Fatalf("expected InvalidPayloadError on truncated buffer")
	} else if _, ok := err.(*gerrors.InvalidPayloadError); !ok {
		t.Fatalf("expected *gerrors.InvalidPayloadError, got %T", err)
	}
}

func TestEncodeInterrupted(t *testing.T) {
	rt := corert.New(corert.WithInterruptFlag(func() bool { return true }))
	g := polygonWithHole()
	if _, err := FromGeometry(g, rt); err == nil {
		t.Fatalf("expected Interrupted")
	} else if _, ok := err.(*gerrors.InterruptedError); !ok {
		t.Fatalf("expected *gerrors.InterruptedError, got %T", err)
	}
}

func TestDecodeReportsToSink(t *testing.T) {
	var reported []error
	rt := corert.New(corert.WithErrorSink(func(_ corert.Severity, err error) {
		reported = append(reported, err)
	}))

	g := polygonWithHole()
	buf, err := FromGeometry(g, rt)
	if err != nil {
		t.Fatal(err)
	}
	if len(reported) != 0 {
		t.Fatalf("clean serialize should not report, got %v", reported)
	}

	truncated := buf[:len(buf)-20]
	if _, err := Decode(truncated, rt); err == nil {
		t.Fatal("expected decode failure")
	}
	if len(reported) != 1 {
		t.Fatalf("decode failure should reach the sink once, got %d", len(reported))
	}
	if _, ok := reported[0].(*gerrors.InvalidPayloadError); !ok {
		t.Fatalf("sink received %T, want *gerrors.InvalidPayloadError", reported[0])
	}
}

func TestXYMBBoxCarriesMRange(t *testing.T) {
	g := model.New(model.LineStringType, UnknownSRID, false, true)
	g.Points.Append(coord.Point{X: 0, Y: 0, M: 10})
	g.Points.Append(coord.Point{X: 1, Y: 1, M: -10})
	buf, err := FromGeometry(g, nil)
	if err != nil {
		t.Fatal(err)
	}
	box, err := PeekBBox(buf)
	if err != nil {
		t.Fatal(err)
	}
	if box.HasZ || !box.HasM {
		t.Fatalf("XYM box should track M and not Z: %+v", box)
	}
	if box.Low.M != -10 || box.High.M != 10 {
		t.Fatalf("M range lost on the wire: %+v", box)
	}

	back, err := Decode(buf, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !model.Same(g, back) {
		t.Fatal("XYM round trip mismatch")
	}
}
