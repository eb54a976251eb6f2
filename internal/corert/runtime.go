// Package corert models the host-supplied collaborators described by
// the concurrency and resource model: an interrupt flag polled by
// long-running recursive operations, and a pluggable error-reporting
// sink. Both are installed once via functional options and are
// assumed immutable thereafter.
package corert

import "github.com/planargeo/geom/internal/gerrors"

// Severity classifies a report sent to the error sink.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

// Option configures a Runtime at construction time.
type Option func(*Runtime)

// Runtime bundles the host collaborators threaded through deeply
// recursive operations (serialization, tree construction). The zero
// value is usable: Interrupted always reports false and Report is a
// no-op, matching a host that installs nothing.
type Runtime struct {
	interrupted func() bool
	sink        func(Severity, error)
}

// WithInterruptFlag installs the poll closure for the host's interrupt
// flag. The core treats it as a single non-atomic read; the host is
// responsible for single-threading access to the underlying byte.
func WithInterruptFlag(f func() bool) Option {
	return func(rt *Runtime) { rt.interrupted = f }
}

// WithErrorSink installs the pluggable error-reporting sink. NotAvailable
// failures are expected control flow and are never reported here.
func WithErrorSink(f func(Severity, error)) Option {
	return func(rt *Runtime) { rt.sink = f }
}

// New builds a Runtime from options. Called once at host initialization.
func New(opts ...Option) *Runtime {
	rt := &Runtime{}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Interrupted polls the host's interrupt flag, if one was installed.
func (rt *Runtime) Interrupted() bool {
	if rt == nil || rt.interrupted == nil {
		return false
	}
	return rt.interrupted()
}

// CheckInterrupted returns an InterruptedError if the host has
// requested cancellation, for deeply recursive callers to check at
// bounded intervals.
func (rt *Runtime) CheckInterrupted(operation string) error {
	if rt.Interrupted() {
		return &gerrors.InterruptedError{Operation: operation}
	}
	return nil
}

// Report sends an error to the installed sink, if any. NotAvailable is
// expected control flow and Interrupted unwinds without logging, so
// neither is forwarded.
func (rt *Runtime) Report(sev Severity, err error) {
	if rt == nil || rt.sink == nil || err == nil {
		return
	}
	switch err.(type) {
	case *gerrors.NotAvailableError, *gerrors.InterruptedError:
		return
	}
	rt.sink(sev, err)
}
