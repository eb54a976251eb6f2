package geom

import "github.com/planargeo/geom/internal/gerrors"

// Error kinds on the boundary, re-exported so callers outside
// this module can dispatch on kind with errors.As without reaching
// into an internal package.
type (
	DimensionMismatchError = gerrors.DimensionMismatchError
	SubtypeNotAllowedError = gerrors.SubtypeNotAllowedError
	InvalidPayloadError    = gerrors.InvalidPayloadError
	UnknownVersionError    = gerrors.UnknownVersionError
	NotAvailableError      = gerrors.NotAvailableError
	NumericDomainError     = gerrors.NumericDomainError
	InterruptedError       = gerrors.InterruptedError
	AllocationFailedError  = gerrors.AllocationFailedError
)
