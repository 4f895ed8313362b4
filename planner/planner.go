package planner

import (
	"github.com/katalvlaran/railplan/agentmeta"
	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/lns"
	"github.com/katalvlaran/railplan/reservation"
	"github.com/katalvlaran/railplan/search"
)

// PlanInitial implements §4.4: it builds the agent-metadata cache, plans
// every agent from scratch in ascending (slack, Cmax) order against a
// reservation table shared across the whole call, pads every path to
// maxTimestep, and finally runs the LNS improver bounded by
// p.lnsIterationsInitial.
//
// The returned slice is indexed by agent ID and satisfies the path
// invariants of §3: every entry has length maxTimestep.
func (p *Planner) PlanInitial(agents []core.Agent, rail core.RailView, maxTimestep int) []core.Path {
	p.cache = agentmeta.Build(agents, maxTimestep)

	byID := make(map[int]core.Agent, len(agents))
	for _, a := range agents {
		byID[a.ID] = a
	}

	paths := make([]core.Path, len(agents))
	restarts := make(map[int]lns.RestartInfo, len(agents))
	tab := reservation.New()

	for _, agentID := range p.cache.PriorityOrder() {
		agent := byID[agentID]
		meta, _ := p.cache.Get(agentID)

		req := search.Request{
			Rail:         rail,
			Reservation:  tab,
			Start:        agent.InitialCell,
			StartHeading: agent.InitialHeading,
			Target:       agent.TargetCell,
			DepartFloor:  meta.EarliestDeparture,
			Cmax:         meta.Cmax,
		}
		raw := search.WithRetryHorizon(req, meta.Slack, maxTimestep)
		padded := raw.PadTo(maxTimestep)

		paths[agentID] = padded
		tab.Reserve(raw, 0)
		restarts[agentID] = lns.RestartInfo{
			RestartCell:    agent.InitialCell,
			RestartHeading: agent.InitialHeading,
		}
	}

	improved := lns.Improve(lns.Request{
		Rail:        rail,
		Cache:       p.cache,
		Agents:      agents,
		Paths:       paths,
		MaxTimestep: maxTimestep,
		Iterations:  p.lnsIterationsInitial,
		RNG:         p.rng,
		Restarts:    restarts,
		Sink:        p.sink,
	})

	return improved
}
