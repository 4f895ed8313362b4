package replanner

import (
	"github.com/katalvlaran/railplan/agentmeta"
	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/lns"
	"github.com/katalvlaran/railplan/reservation"
	"github.com/katalvlaran/railplan/search"
)

// Replan implements §4.5: it rebuilds the suffixes of every agent in
// NewMalfunctions ∪ Failed, starting at TNow, against a reservation seeded
// from every other agent's untouched future path, then runs the LNS
// improver restricted to the affected set so it never rewrites an
// unaffected agent's path.
//
// An empty affected set returns req.Existing unchanged, per the spec's
// short-circuit for a no-op replan call.
func Replan(req Request) []core.Path {
	affected := unionAffected(req.NewMalfunctions, req.Failed)
	if len(affected) == 0 {
		return req.Existing
	}

	cache := req.Planner.Cache()
	if cache == nil {
		cache = agentmeta.Build(req.Agents, req.MaxTimestep)
	}

	byID := make(map[int]core.Agent, len(req.Agents))
	for _, a := range req.Agents {
		byID[a.ID] = a
	}

	paths := core.ClonePaths(req.Existing)

	tab := reservation.New()
	for agentID, p := range paths {
		if _, isAffected := affected[agentID]; isAffected {
			continue
		}
		from := min(req.TNow, len(p))
		reserveUnpaddedSuffix(tab, p, byID[agentID].TargetCell, from)
	}

	restarts := make(map[int]lns.RestartInfo, len(affected))
	for _, agentID := range cache.PriorityOrderSubset(affected) {
		agent := byID[agentID]
		meta, _ := cache.Get(agentID)
		existing := paths[agentID]

		r := inferRestart(existing, req.TNow, agent)
		restarts[agentID] = toRestartInfo(r)

		newPath := search.RepairFromPrefix(search.RepairRequest{
			Rail:           req.Rail,
			Reservation:    tab,
			Prefix:         r.prefix,
			T0:             r.t0,
			RestartCell:    r.cell,
			RestartHeading: r.heading,
			Target:         agent.TargetCell,
			DepartFloor:    meta.EarliestDeparture,
			Cmax:           meta.Cmax,
			Slack:          meta.Slack,
			Horizon:        req.MaxTimestep,
		})
		padded := newPath.PadTo(req.MaxTimestep)
		paths[agentID] = padded
		reserveUnpaddedSuffix(tab, padded, agent.TargetCell, r.t0)
	}

	improved := lns.Improve(lns.Request{
		Rail:        req.Rail,
		Cache:       cache,
		Agents:      req.Agents,
		Paths:       paths,
		MaxTimestep: req.MaxTimestep,
		Iterations:  req.Planner.LNSIterationsReplan(),
		RNG:         req.Planner.RNG(),
		Touchable:   affected,
		Restarts:    restarts,
		Sink:        req.Planner.Sink(),
	})

	return improved
}

// inferRestart determines where an affected agent resumes from, per §4.5
// step 3: the cell it occupies at TNow if the existing path reaches that
// far, else its last cell; the heading inferred from the move into that
// cell, falling back to the agent's initial heading when no prior cell is
// available to diff against or the step into that cell is a wait. The
// returned prefix runs through the restart
// index inclusive, so its last cell duplicates the new search's start cell.
func inferRestart(existing core.Path, tNow int, agent core.Agent) restart {
	idx := tNow
	if idx >= len(existing) {
		idx = len(existing) - 1
	}
	if idx < 0 {
		return restart{cell: agent.InitialCell, heading: agent.InitialHeading}
	}

	restartCell := existing[idx]
	heading := agent.InitialHeading
	if idx > 0 {
		prev := existing[idx-1]
		if h, ok := headingBetween(prev, restartCell); ok {
			heading = h
		}
	}

	prefix := make(core.Path, idx+1)
	copy(prefix, existing[:idx+1])

	return restart{prefix: prefix, t0: idx, cell: restartCell, heading: heading}
}

// headingBetween returns the Heading of the move from-to, or false if from
// and to are identical (a wait, from which no heading can be inferred).
func headingBetween(from, to core.Cell) (core.Heading, bool) {
	if from == to {
		return 0, false
	}
	for h := core.Heading(0); h < core.NumHeadings; h++ {
		dr, dc := h.Delta()
		if from.Add(dr, dc) == to {
			return h, true
		}
	}
	return 0, false
}

// reserveUnpaddedSuffix reserves p[from:] up to (and including) the agent's
// first arrival at target, but no further: the idle-at-target tail is never
// reserved, since the simulator removes an agent from the grid once it
// reaches its destination and later occupancy of that cell cannot conflict.
func reserveUnpaddedSuffix(tab *reservation.Table, p core.Path, target core.Cell, from int) {
	end := p.FirstIndexOf(target) + 1
	if end > len(p) {
		end = len(p)
	}
	if from >= end {
		return
	}
	tab.Reserve(p[from:end], from)
}

func unionAffected(newMalfunctions, failed []int) map[int]struct{} {
	out := make(map[int]struct{}, len(newMalfunctions)+len(failed))
	for _, id := range newMalfunctions {
		out[id] = struct{}{}
	}
	for _, id := range failed {
		out[id] = struct{}{}
	}
	return out
}
