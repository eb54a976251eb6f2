package geom

import "github.com/planargeo/geom/internal/corert"

// Severity classifies a report sent to an ErrorSink.
type Severity = corert.Severity

const (
	SeverityError   = corert.SeverityError
	SeverityWarning = corert.SeverityWarning
)

// RuntimeOption configures a Runtime at construction time.
type RuntimeOption = corert.Option

// Runtime bundles the host-supplied collaborators: an interrupt
// flag polled by deeply recursive operations (serialization, index
// construction) and a pluggable error-reporting sink. Installed once
// via NewRuntime and treated as immutable thereafter. A nil *Runtime
// is valid everywhere one is accepted: Interrupted always reports
// false and errors are simply returned, never reported to a sink.
type Runtime = corert.Runtime

// WithInterruptFlag installs the poll closure for the host's interrupt
// flag.
func WithInterruptFlag(f func() bool) RuntimeOption { return corert.WithInterruptFlag(f) }

// WithErrorSink installs the pluggable error-reporting sink.
// NotAvailable failures are expected control flow and are never
// reported here.
func WithErrorSink(f func(Severity, error)) RuntimeOption { return corert.WithErrorSink(f) }

// NewRuntime builds a Runtime from options, called once at host
// initialization.
func NewRuntime(opts ...RuntimeOption) *Runtime { return corert.New(opts...) }
