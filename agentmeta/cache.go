package agentmeta

import (
	"math"
	"sort"

	"github.com/katalvlaran/railplan/core"
)

// Metadata is the precomputed planning metadata for a single agent.
type Metadata struct {
	AgentID           int
	Deadline          int
	EarliestDeparture int
	Cmax              int
	Slack             int // may be negative: infeasible from the start
}

// Cache holds Metadata for every agent in an episode, keyed by agent ID.
type Cache struct {
	byAgent map[int]Metadata
	order   []int // agent IDs in ascending (slack, Cmax) order
}

// Build computes a fresh Cache for agents against an episode horizon of
// maxTimestep. This is called once per PlanInitial and the result is reused,
// read-only, by Replan for the rest of the episode.
func Build(agents []core.Agent, maxTimestep int) *Cache {
	c := &Cache{
		byAgent: make(map[int]Metadata, len(agents)),
		order:   make([]int, len(agents)),
	}
	for i, a := range agents {
		c.byAgent[a.ID] = extract(a, maxTimestep)
		c.order[i] = a.ID
	}
	sortBySlackThenSpeed(c.order, c.byAgent)
	return c
}

// extract implements the metadata extraction formulas of the spec:
//
//	deadline           = LatestArrival if present, else maxTimestep
//	earliest_departure = Agent.EarliestDeparture (already defaults to 0)
//	Cmax               = round(1/Speed) if Speed ∈ (0,1], else 1
//	slack              = deadline - earliest_departure - Manhattan(start,target)
func extract(a core.Agent, maxTimestep int) Metadata {
	deadline := maxTimestep
	if a.LatestArrival != nil {
		deadline = *a.LatestArrival
	}
	cmax := 1
	if a.Speed > 0 && a.Speed <= 1 {
		cmax = int(math.Round(1 / a.Speed))
		if cmax < 1 {
			cmax = 1
		}
	}
	dist := a.InitialCell.Manhattan(a.TargetCell)
	slack := deadline - a.EarliestDeparture - dist

	return Metadata{
		AgentID:           a.ID,
		Deadline:          deadline,
		EarliestDeparture: a.EarliestDeparture,
		Cmax:              cmax,
		Slack:             slack,
	}
}

// sortBySlackThenSpeed orders agent IDs ascending by (slack, Cmax): the
// tightest-slack agents first and, among equal slack, the lower-Cmax (faster)
// agent first, breaking remaining ties by agent ID for determinism. SliceStable (rather than Slice) keeps the ordering
// unambiguous when slack and Cmax are both equal.
func sortBySlackThenSpeed(ids []int, byAgent map[int]Metadata) {
	sort.SliceStable(ids, func(i, j int) bool {
		mi, mj := byAgent[ids[i]], byAgent[ids[j]]
		if mi.Slack != mj.Slack {
			return mi.Slack < mj.Slack
		}
		if mi.Cmax != mj.Cmax {
			return mi.Cmax < mj.Cmax
		}
		return ids[i] < ids[j]
	})
}

// Get returns the Metadata for agentID and whether it was found.
func (c *Cache) Get(agentID int) (Metadata, bool) {
	m, ok := c.byAgent[agentID]
	return m, ok
}

// PriorityOrder returns agent IDs ascending by (slack, Cmax), the order the
// prioritized planner and the LNS improver both plan agents in.
func (c *Cache) PriorityOrder() []int {
	out := make([]int, len(c.order))
	copy(out, c.order)
	return out
}

// PriorityOrderSubset filters PriorityOrder down to the given agent ID set,
// preserving relative (slack, Cmax) order. Used by the replanner and the LNS
// improver, which only ever re-plan a subset of agents.
func (c *Cache) PriorityOrderSubset(ids map[int]struct{}) []int {
	out := make([]int, 0, len(ids))
	for _, id := range c.order {
		if _, ok := ids[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
