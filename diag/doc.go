// Package diag provides the core's injected diagnostics surface: an optional
// structured logger and a non-fatal warning ledger.
//
// Per the spec's error-handling design, the core never raises an error to the
// caller for conditions like an unreachable target, negative slack, or an
// ambiguous restart heading — it proceeds with the documented fallback, and
// those three conditions are not recorded here. diag holds the non-fatal
// conditions the planning packages do report (the one reported is residual
// lateness left after an LNS pass), so a caller that cares can inspect them
// after the call returns, and so an injected *zap.Logger can surface them as
// structured log lines in real time.
package diag
