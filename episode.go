package railplan

import (
	"go.uber.org/zap"

	"github.com/google/uuid"

	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/planner"
	"github.com/katalvlaran/railplan/replanner"
)

// Option configures an Episode at construction time.
type Option = planner.Option

// WithLogger injects a structured logger for the episode's diagnostics sink.
func WithLogger(logger *zap.Logger) Option { return planner.WithLogger(logger) }

// WithSeed fixes the RNG stream the LNS improver draws from, for
// reproducible planning across an episode's PlanInitial and Replan calls.
func WithSeed(seed int64) Option { return planner.WithSeed(seed) }

// WithLNSIterations overrides the bounded LNS iteration counts used by
// PlanInitial and Replan respectively (defaults: 20 and 10).
func WithLNSIterations(initial, replan int) Option { return planner.WithLNSIterations(initial, replan) }

// Episode is the external interface of §6: PlanInitial starts it, Replan
// advances it one timestep at a time. It owns the one piece of state that
// survives across those calls — the agent-metadata cache and RNG stream —
// so a caller never has to thread a planner object through the simulator
// loop itself.
type Episode struct {
	p *planner.Planner
}

// NewEpisode constructs an Episode with a fresh identity.
func NewEpisode(opts ...Option) *Episode {
	return &Episode{p: planner.New(opts...)}
}

// ID returns the episode's identity, stable for the Episode's lifetime.
func (e *Episode) ID() uuid.UUID { return e.p.ID() }

// Warnings returns every non-fatal condition recorded by PlanInitial and
// Replan calls made on this Episode so far, or nil if none were recorded.
func (e *Episode) Warnings() error { return e.p.Warnings() }

// PlanInitial implements plan_initial: agents is the ordered agent list,
// rail the read-only grid transition map, maxTimestep the episode horizon.
// The returned paths are indexed by agent ID, each of length maxTimestep.
func (e *Episode) PlanInitial(agents []core.Agent, rail core.RailView, maxTimestep int) []core.Path {
	return e.p.PlanInitial(agents, rail, maxTimestep)
}

// Replan implements replan: tNow is the current timestep, existingPaths the
// plan returned by the last PlanInitial/Replan call, newMalfunctions and
// failed the (possibly overlapping) sets of agent IDs that must be
// repaired. Returns updated paths satisfying the prefix-preservation
// invariant of §4.5.
func (e *Episode) Replan(
	agents []core.Agent,
	rail core.RailView,
	tNow int,
	existingPaths []core.Path,
	maxTimestep int,
	newMalfunctions, failed []int,
) []core.Path {
	return replanner.Replan(replanner.Request{
		Planner:         e.p,
		Agents:          agents,
		Rail:            rail,
		TNow:            tNow,
		Existing:        existingPaths,
		MaxTimestep:     maxTimestep,
		NewMalfunctions: newMalfunctions,
		Failed:          failed,
	})
}
