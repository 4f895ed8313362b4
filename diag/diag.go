package diag

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Sink bundles an optional structured logger with a non-fatal warning ledger.
// The zero value is usable: Logger defaults to a no-op logger and the ledger
// starts empty, matching the spec's "trace callback is optional" requirement.
type Sink struct {
	Logger   *zap.Logger
	warnings error
}

// NewSink returns a Sink. A nil logger is replaced with zap.NewNop() so
// callers never need a nil check before logging.
func NewSink(logger *zap.Logger) *Sink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sink{Logger: logger}
}

// Warn records a non-fatal planning condition: it is appended to the ledger
// (retrievable via Warnings) and, if a real logger was injected, emitted as a
// structured warning line.
func (s *Sink) Warn(kind string, fields ...zap.Field) {
	if s == nil {
		return
	}
	s.warnings = multierr.Append(s.warnings, fmt.Errorf("railplan: %s", kind))
	if s.Logger != nil {
		s.Logger.Warn(kind, fields...)
	}
}

// Warnings returns every non-fatal condition recorded since construction,
// combined with go.uber.org/multierr, or nil if none were recorded. This is
// never the error returned from PlanInitial/Replan — the core is total — it
// is an optional diagnostic accessor for callers that want it.
func (s *Sink) Warnings() error {
	if s == nil {
		return nil
	}
	return s.warnings
}
