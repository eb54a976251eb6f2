package wire

import (
	"bytes"
	"hash/fnv"
	"math"

	"github.com/planargeo/geom/internal/coord"
	"github.com/planargeo/geom/internal/gerrors"
)

// Hash returns a deterministic 64-bit FNV-1a hash of (SRID, type,
// ordinates), deliberately skipping the flags byte, any extended-flags
// word, and any bbox segment: everything from the payload's start to
// the end of the buffer, prefixed with the raw SRID bytes. Because the
// V1 and V2 payload encodings are byte-identical (only the front
// matter differs), equal geometries hash equally across the two
// versions; and because FNV is unseeded, the value is stable across
// processes, so a host may persist it.
func Hash(buf []byte) (uint64, error) {
	off, _, err := payloadOffset(buf)
	if err != nil {
		return 0, err
	}
	h := fnv.New64a()
	h.Write(buf[4:7]) // packed SRID
	h.Write(buf[off:])
	return h.Sum64(), nil
}

// World bounds assumed by the sortable-hash normalization: wide enough
// to cover both geographic (degrees) and typical projected coordinate
// systems without the quantization collapsing distinct subtrees onto
// the same cell in practice.
const (
	worldMin = -1e7
	worldMax = 1e7
)

func normalizeAxis(v float64) uint32 {
	t := coord.Clamp((v-worldMin)/(worldMax-worldMin), 0, 1)
	return uint32(t * float64(math.MaxUint32))
}

// spread interleaves the 32 bits of v into the even bit positions of a
// 64-bit word (the standard Morton/Z-order magic-number spread).
func spread(v uint32) uint64 {
	x := uint64(v)
	x = (x | (x << 16)) & 0x0000ffff0000ffff
	x = (x | (x << 8)) & 0x00ff00ff00ff00ff
	x = (x | (x << 4)) & 0x0f0f0f0f0f0f0f0f
	x = (x | (x << 2)) & 0x3333333333333333
	x = (x | (x << 1)) & 0x5555555555555555
	return x
}

// SortableHash computes the Morton-order key of a box's center,
// quantized to the fixed world bounds above.
func SortableHash(b coord.Box) uint64 {
	cx := (b.Low.X + b.High.X) / 2
	cy := (b.Low.Y + b.High.Y) / 2
	return spread(normalizeAxis(cx)) | (spread(normalizeAxis(cy)) << 1)
}

func bboxForCmp(buf []byte) (coord.Box, error) {
	b, err := PeekBBox(buf)
	if err == nil {
		return b, nil
	}
	g, derr := Decode(buf, nil)
	if derr != nil {
		return coord.Box{}, err
	}
	if g.BBox != nil {
		return *g.BBox, nil
	}
	box, ok := computeBBox(g)
	if !ok {
		return coord.Box{}, err
	}
	return box, nil
}

// cmpKey guards the quantization against NaN centers, which have no
// defined integer conversion and therefore no stable sort position.
func cmpKey(b coord.Box) (uint64, error) {
	cx := (b.Low.X + b.High.X) / 2
	cy := (b.Low.Y + b.High.Y) / 2
	if math.IsNaN(cx) || math.IsNaN(cy) {
		return 0, &gerrors.NumericDomainError{Operation: "cmp", Value: math.NaN()}
	}
	return SortableHash(b), nil
}

// Cmp implements the total order required of serialized buffers:
// first by the sortable hash of the bbox center, then by raw byte
// equality as a tie-breaker.
func Cmp(a, b []byte) (int, error) {
	ba, err := bboxForCmp(a)
	if err != nil {
		return 0, err
	}
	bb, err := bboxForCmp(b)
	if err != nil {
		return 0, err
	}
	ha, err := cmpKey(ba)
	if err != nil {
		return 0, err
	}
	hb, err := cmpKey(bb)
	if err != nil {
		return 0, err
	}
	if ha != hb {
		if ha < hb {
			return -1, nil
		}
		return 1, nil
	}
	return bytes.Compare(a, b), nil
}
