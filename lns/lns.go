package lns

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/railplan/agentmeta"
	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/reservation"
	"github.com/katalvlaran/railplan/search"
)

// Improve runs the destroy-and-repair loop described by the spec's §4.6 over
// req.Paths and returns the (possibly unchanged) improved plan, indexed by
// agent ID. It never returns an error: a round that fails to strictly reduce
// total lateness is simply discarded and the previous plan carries forward.
func Improve(req Request) []core.Path {
	paths := core.ClonePaths(req.Paths)
	if len(paths) == 0 || req.Iterations <= 0 {
		return paths
	}

	byID := make(map[int]core.Agent, len(req.Agents))
	for _, a := range req.Agents {
		byID[a.ID] = a
	}

	touchable := req.Touchable
	if touchable == nil {
		touchable = make(map[int]struct{}, len(req.Agents))
		for _, a := range req.Agents {
			touchable[a.ID] = struct{}{}
		}
	}

	rng := req.RNG
	if rng == nil {
		rng = rngFromSeed(0)
	}

	for iter := 0; iter < req.Iterations; iter++ {
		late := lateAgents(paths, byID, req.Cache, touchable)
		if len(late) == 0 {
			break
		}
		seed := late[rng.Intn(len(late))]

		neighborhood := spatiotemporalNeighborhood(seed, paths)
		toReplan := intersectTouchable(neighborhood, touchable)
		if len(toReplan) == 0 {
			continue
		}

		candidate := core.ClonePaths(paths)
		tab := reservation.New()
		for agentID, p := range paths {
			if _, replan := toReplan[agentID]; replan {
				continue
			}
			restart := restartFor(agentID, byID[agentID], req.Restarts)
			reserveUnpaddedSuffix(tab, p, byID[agentID].TargetCell, restart.T0)
		}

		order := req.Cache.PriorityOrderSubset(toReplan)
		for _, agentID := range order {
			agent := byID[agentID]
			meta, ok := req.Cache.Get(agentID)
			if !ok {
				continue
			}
			restart := restartFor(agentID, agent, req.Restarts)

			newPath := search.RepairFromPrefix(search.RepairRequest{
				Rail:           req.Rail,
				Reservation:    tab,
				Prefix:         restart.Prefix,
				T0:             restart.T0,
				RestartCell:    restart.RestartCell,
				RestartHeading: restart.RestartHeading,
				Target:         agent.TargetCell,
				DepartFloor:    meta.EarliestDeparture,
				Cmax:           meta.Cmax,
				Slack:          meta.Slack,
				Horizon:        req.MaxTimestep,
			})
			padded := newPath.PadTo(req.MaxTimestep)
			candidate[agentID] = padded
			reserveUnpaddedSuffix(tab, padded, agent.TargetCell, restart.T0)
		}

		if totalLateness(candidate, byID, req.Cache) < totalLateness(paths, byID, req.Cache) {
			paths = candidate
		}
	}

	if req.Sink != nil {
		if residual := totalLateness(paths, byID, req.Cache); residual > 0 {
			req.Sink.Warn("lns_residual_lateness", zap.Int("total_lateness", residual))
		}
	}

	return paths
}

func restartFor(agentID int, agent core.Agent, restarts map[int]RestartInfo) RestartInfo {
	if r, ok := restarts[agentID]; ok {
		return r
	}
	return RestartInfo{RestartCell: agent.InitialCell, RestartHeading: agent.InitialHeading}
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

// arrival returns the first timestep at which path reaches target, or
// len(path) (never arrived within the plan) if it does not.
func arrival(path core.Path, target core.Cell) int {
	return path.FirstIndexOf(target)
}

func lateness(path core.Path, target core.Cell, deadline int) int {
	if d := arrival(path, target) - deadline; d > 0 {
		return d
	}
	return 0
}

func totalLateness(paths []core.Path, byID map[int]core.Agent, cache *agentmeta.Cache) int {
	total := 0
	for agentID, p := range paths {
		meta, ok := cache.Get(agentID)
		if !ok {
			continue
		}
		total += lateness(p, byID[agentID].TargetCell, meta.Deadline)
	}
	return total
}

// lateAgents returns, in arbitrary order, the IDs of every touchable agent
// whose arrival at target exceeds its deadline: the candidate pool step 2 of
// the spec's loop draws its seed from.
func lateAgents(paths []core.Path, byID map[int]core.Agent, cache *agentmeta.Cache, touchable map[int]struct{}) []int {
	var out []int
	for agentID, p := range paths {
		if _, ok := touchable[agentID]; !ok {
			continue
		}
		meta, ok := cache.Get(agentID)
		if !ok {
			continue
		}
		if lateness(p, byID[agentID].TargetCell, meta.Deadline) > 0 {
			out = append(out, agentID)
		}
	}
	return out
}

// spatiotemporalNeighborhood returns {seed} ∪ {j : ∃t, paths[seed][t] ==
// paths[j][t]}, the literal "shares a cell at some timestep" contact set the
// spec defines.
func spatiotemporalNeighborhood(seed int, paths []core.Path) map[int]struct{} {
	out := map[int]struct{}{seed: {}}
	seedPath := paths[seed]
	for agentID, p := range paths {
		if agentID == seed {
			continue
		}
		for t := 0; t < len(seedPath) && t < len(p); t++ {
			if seedPath[t] == p[t] {
				out[agentID] = struct{}{}
				break
			}
		}
	}
	return out
}

func intersectTouchable(neighborhood, touchable map[int]struct{}) map[int]struct{} {
	out := make(map[int]struct{}, len(neighborhood))
	for id := range neighborhood {
		if _, ok := touchable[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}
