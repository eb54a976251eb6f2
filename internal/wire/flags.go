// Package wire implements the binary serialization: the common
// header, flags byte (V1 legacy and V2 with extended flags), bounding
// box segment, and the recursive payload encoding/decoding for every
// geometry variant in internal/model.
package wire

import "github.com/planargeo/geom/internal/coord"

// Version distinguishes the two wire formats. The version bits sit at
// bit 6-7 of the flags byte; values other than V1 and V2 fail with
// UnknownVersion.
type Version uint8

const (
	V1 Version = 0
	V2 Version = 1
)

// Flags byte bit positions, shared across both versions for the low
// nibble.
const (
	bitZ        = 1 << 0
	bitM        = 1 << 1
	bitBBox     = 1 << 2
	bitGeodetic = 1 << 3

	// V1-only upper bits.
	bitV1ReadOnly = 1 << 4
	bitV1Solid    = 1 << 5

	// V2-only upper bits.
	bitV2Extended = 1 << 4

	versionShift = 6
	versionMask  = 0x3
)

// Extended-flags word bits (V2 only, present when bitV2Extended is set).
const (
	extBitSolid = 1 << 0
)

// versionOf reads the 2-bit version field out of a flags byte.
func versionOf(flagsByte byte) Version {
	return Version((flagsByte >> versionShift) & versionMask)
}

// PackFlags encodes f and ver into the on-wire flags byte.
func PackFlags(f coord.Flags, ver Version) byte {
	var b byte
	if f.HasZ {
		b |= bitZ
	}
	if f.HasM {
		b |= bitM
	}
	if f.HasBBox {
		b |= bitBBox
	}
	if f.Geodetic {
		b |= bitGeodetic
	}
	switch ver {
	case V1:
		if f.ReadOnly {
			b |= bitV1ReadOnly
		}
		if f.Solid {
			b |= bitV1Solid
		}
	case V2:
		if f.Solid {
			// Solid is represented through the extended-flags word in
			// V2; the caller is responsible for writing the extended
			// word. The EXTENDED bit is set here so the returned byte is
			// the single source of truth for "do we need an extended word".
			b |= bitV2Extended
		}
	}
	b |= byte(ver) << versionShift
	return b
}

// UnpackFlags decodes a flags byte (plus, for V2, the extended-flags
// word if present) back into coord.Flags.
func UnpackFlags(flagsByte byte, extended uint64) (coord.Flags, Version) {
	ver := versionOf(flagsByte)
	f := coord.Flags{
		HasZ:     flagsByte&bitZ != 0,
		HasM:     flagsByte&bitM != 0,
		HasBBox:  flagsByte&bitBBox != 0,
		Geodetic: flagsByte&bitGeodetic != 0,
	}
	switch ver {
	case V1:
		f.ReadOnly = flagsByte&bitV1ReadOnly != 0
		f.Solid = flagsByte&bitV1Solid != 0
	case V2:
		if flagsByte&bitV2Extended != 0 {
			f.Solid = extended&extBitSolid != 0
		}
	}
	return f, ver
}

// HasExtended reports whether a V2 flags byte declares an
// extended-flags word follows the header.
func HasExtended(flagsByte byte) bool {
	return flagsByte&bitV2Extended != 0
}

// PackExtended builds the V2 extended-flags word from coord.Flags.
// Only SOLID is currently allocated; all other bits are reserved and
// must round-trip untouched by callers that preserve an existing word
// verbatim (SetBBox/DropBBox do this rather than rebuilding from
// coord.Flags, so a consumer's unrecognized extended bit survives).
func PackExtended(f coord.Flags) uint64 {
	var w uint64
	if f.Solid {
		w |= extBitSolid
	}
	return w
}
