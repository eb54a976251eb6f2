package geom

import "github.com/planargeo/geom/internal/wire"

// Serialize produces g's V2 binary wire form, attaching a widened bbox
// when the variant warrants one and none is already cached.
func (g *Geometry) Serialize(rt *Runtime) ([]byte, error) {
	return wire.FromGeometry(g.inner, rt)
}

// SerializeV1 produces g's legacy V1 binary wire form.
func (g *Geometry) SerializeV1(rt *Runtime) ([]byte, error) {
	return wire.FromGeometryV1(g.inner, rt)
}

// Deserialize parses a wire buffer (header, optional extended word,
// optional bbox, payload) into a Geometry.
func Deserialize(buf []byte, rt *Runtime) (*Geometry, error) {
	g, err := wire.Decode(buf, rt)
	if err != nil {
		return nil, err
	}
	return wrap(g), nil
}

// SizeFor returns the serialized size of g as if no bbox were
// attached.
func (g *Geometry) SizeFor() uint32 { return wire.SizeFor(g.inner) }

// SizeWithBBox returns the serialized size of g once a bbox has been
// attached.
func (g *Geometry) SizeWithBBox() uint32 { return wire.SizeWithBBox(g.inner) }

// MaxHeaderSize is a cheap upper bound on the bytes a host needs to
// read off storage before a buffer's type is knowable.
func MaxHeaderSize() uint32 { return wire.MaxHeaderSize() }

// PeekType reads a serialized geometry's top-level type tag without
// deserializing the rest.
func PeekType(buf []byte) (GeomType, error) { return wire.PeekType(buf) }

// PeekSRID reads the SRID out of a serialized buffer's common header.
func PeekSRID(buf []byte) (int32, error) { return wire.PeekSRID(buf) }

// PeekFlags returns a serialized buffer's decoded dimensionality/storage
// flags without touching the bbox or payload.
func PeekFlags(buf []byte) (Flags, error) { return wire.PeekFlags(buf) }

// PeekHasBBox reports the BBOX flag without reading the box itself.
func PeekHasBBox(buf []byte) (bool, error) { return wire.PeekHasBBox(buf) }

// PeekNdims returns the number of ordinates per coordinate (2-4).
func PeekNdims(buf []byte) (int, error) { return wire.PeekNdims(buf) }

// PeekBBox returns a serialized geometry's embedded bbox if present,
// otherwise attempts one of a few cheap derivations (a single point, a
// two-vertex line, and their singleton multi- containers) without
// traversing the whole payload. Fails with NotAvailableError for any
// other case.
func PeekBBox(buf []byte) (Box, error) { return wire.PeekBBox(buf) }

// PeekFirstPoint returns the first coordinate of a serialized point
// geometry without materializing the tree; fails for any non-point.
func PeekFirstPoint(buf []byte) (Point, error) { return wire.PeekFirstPoint(buf) }

// IsEmptySerialized reports whether a serialized geometry has no
// coordinates anywhere in its tree, reading only leading counts.
func IsEmptySerialized(buf []byte) (bool, error) { return wire.IsEmpty(buf) }

// Hash returns a deterministic 64-bit hash of a serialized geometry's
// (SRID, type, ordinates), stable under equal geometries regardless of
// V1/V2 encoding.
func Hash(buf []byte) (uint64, error) { return wire.Hash(buf) }

// Cmp implements a total order over serialized buffers: first by the
// sortable hash of the bbox center, then by raw byte equality as a
// tie-breaker.
func Cmp(a, b []byte) (int, error) { return wire.Cmp(a, b) }

// SetBBox returns a serialized buffer with box installed as its
// bounding box, overwriting in place when the existing width matches
// or reallocating otherwise.
func SetBBox(buf []byte, box Box) ([]byte, error) { return wire.SetBBox(buf, box) }

// DropBBox returns a serialized buffer with its bbox segment removed.
func DropBBox(buf []byte) ([]byte, error) { return wire.DropBBox(buf) }
