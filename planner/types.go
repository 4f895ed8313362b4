package planner

import (
	"math/rand"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/railplan/agentmeta"
	"github.com/katalvlaran/railplan/diag"
)

// Planner holds per-episode state: the agent-metadata cache built by the
// most recent PlanInitial call, a deterministic RNG stream for the LNS improver,
// and a diagnostics sink. It is created once per episode and then reused by
// every subsequent Replan call (package replanner) against the same agents.
type Planner struct {
	id uuid.UUID

	sink  *diag.Sink
	cache *agentmeta.Cache
	rng   *rand.Rand

	lnsIterationsInitial int
	lnsIterationsReplan  int

	logger *zap.Logger
	seed   int64
}

// Option configures a Planner at construction time.
type Option func(*Planner)

// WithLogger injects a structured logger used for the Planner's diagnostics
// sink; a nil logger (the default) is replaced by a no-op logger, and
// warnings are still recorded and returned by Warnings.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Planner) { p.logger = logger }
}

// WithSeed fixes the RNG stream the LNS improver draws neighborhood seeds
// from, for reproducible test runs. The default seed is 1.
func WithSeed(seed int64) Option {
	return func(p *Planner) { p.seed = seed }
}

// WithLNSIterations overrides the bounded LNS iteration counts used by
// PlanInitial and Replan respectively. Defaults are 20 and 10, per the
// spec's suggested bounds.
func WithLNSIterations(initial, replan int) Option {
	return func(p *Planner) {
		p.lnsIterationsInitial = initial
		p.lnsIterationsReplan = replan
	}
}

// New constructs a Planner with a fresh episode identity.
func New(opts ...Option) *Planner {
	p := &Planner{
		id:                   uuid.New(),
		lnsIterationsInitial: 20,
		lnsIterationsReplan:  10,
		seed:                 1,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.sink = diag.NewSink(p.logger)
	p.rng = rand.New(rand.NewSource(p.seed))
	return p
}

// ID returns the Planner's episode identity.
func (p *Planner) ID() uuid.UUID { return p.id }

// Warnings returns every non-fatal condition recorded since construction.
func (p *Planner) Warnings() error { return p.sink.Warnings() }

// Cache exposes the agent-metadata cache built by the last PlanInitial call,
// nil until PlanInitial has run. package replanner reads this, never writes.
func (p *Planner) Cache() *agentmeta.Cache { return p.cache }

// Sink exposes the Planner's diagnostics sink, shared with package replanner
// so malfunction-triggered replans accumulate into the same warning ledger.
func (p *Planner) Sink() *diag.Sink { return p.sink }

// RNG exposes the Planner's deterministic RNG stream, shared with package
// replanner so the LNS improver draws from one continuous sequence across
// PlanInitial and every subsequent Replan in the same episode.
func (p *Planner) RNG() *rand.Rand { return p.rng }

// LNSIterationsReplan returns the bounded LNS iteration count configured for
// Replan calls (see WithLNSIterations).
func (p *Planner) LNSIterationsReplan() int { return p.lnsIterationsReplan }
