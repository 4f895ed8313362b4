package replanner_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/planner"
	"github.com/katalvlaran/railplan/replanner"
)

func cell(r, c int) core.Cell { return core.Cell{Row: r, Col: c} }

func TestReplanEmptyAffectedSetReturnsUnchanged(t *testing.T) {
	rail := core.NewOpenGridRail(5, 1)
	agents := []core.Agent{{ID: 0, InitialCell: cell(0, 0), InitialHeading: core.East, TargetCell: cell(0, 4)}}

	p := planner.New()
	existing := p.PlanInitial(agents, rail, 10)

	out := replanner.Replan(replanner.Request{
		Planner:     p,
		Agents:      agents,
		Rail:        rail,
		TNow:        3,
		Existing:    existing,
		MaxTimestep: 10,
	})
	assert.Equal(t, existing, out)
}

func TestReplanPreservesUnaffectedAgentPath(t *testing.T) {
	rail := core.NewOpenGridRail(5, 1)
	agents := []core.Agent{
		{ID: 0, InitialCell: cell(0, 0), InitialHeading: core.East, TargetCell: cell(0, 4)},
		{ID: 1, InitialCell: cell(0, 4), InitialHeading: core.West, TargetCell: cell(0, 0)},
	}

	p := planner.New(planner.WithSeed(11))
	existing := p.PlanInitial(agents, rail, 12)

	out := replanner.Replan(replanner.Request{
		Planner:         p,
		Agents:          agents,
		Rail:            rail,
		TNow:            2,
		Existing:        existing,
		MaxTimestep:     12,
		NewMalfunctions: []int{0},
	})

	require.Len(t, out, 2)
	assert.Equal(t, existing[1], out[1], "unaffected agent's path must be untouched")
}

func TestReplanPreservesAffectedAgentPrefix(t *testing.T) {
	rail := core.NewOpenGridRail(5, 1)
	agents := []core.Agent{{ID: 0, InitialCell: cell(0, 0), InitialHeading: core.East, TargetCell: cell(0, 4)}}

	p := planner.New()
	existing := p.PlanInitial(agents, rail, 12)

	tNow := 2
	out := replanner.Replan(replanner.Request{
		Planner:         p,
		Agents:          agents,
		Rail:            rail,
		TNow:            tNow,
		Existing:        existing,
		MaxTimestep:     12,
		NewMalfunctions: []int{0},
	})

	require.Len(t, out, 1)
	for i := 0; i < tNow; i++ {
		assert.Equal(t, existing[0][i], out[0][i], "prefix before t_now must be untouched at index %d", i)
	}
}

func TestReplanRepairedSuffixContinuityFromRestartCell(t *testing.T) {
	rail := core.NewOpenGridRail(5, 1)
	agents := []core.Agent{{ID: 0, InitialCell: cell(0, 0), InitialHeading: core.East, TargetCell: cell(0, 4)}}

	p := planner.New()
	existing := p.PlanInitial(agents, rail, 12)

	tNow := 2
	out := replanner.Replan(replanner.Request{
		Planner:         p,
		Agents:          agents,
		Rail:            rail,
		TNow:            tNow,
		Existing:        existing,
		MaxTimestep:     12,
		NewMalfunctions: []int{0},
	})

	require.Len(t, out, 1)
	assert.Equal(t, existing[0][tNow], out[0][tNow], "restart cell itself must not be skipped")
	for i := 1; i < len(out[0]); i++ {
		if out[0][i] == out[0][i-1] {
			continue
		}
		assert.Equal(t, 1, out[0][i-1].Manhattan(out[0][i]), "step %d must not jump more than one cell", i)
	}
}

func TestReplanNoConflictWithUnaffectedAgent(t *testing.T) {
	rail := core.NewOpenGridRail(5, 1)
	agents := []core.Agent{
		{ID: 0, InitialCell: cell(0, 0), InitialHeading: core.East, TargetCell: cell(0, 4)},
		{ID: 1, InitialCell: cell(0, 4), InitialHeading: core.West, TargetCell: cell(0, 0)},
	}

	p := planner.New(planner.WithSeed(3))
	existing := p.PlanInitial(agents, rail, 15)

	tNow := 3
	out := replanner.Replan(replanner.Request{
		Planner:         p,
		Agents:          agents,
		Rail:            rail,
		TNow:            tNow,
		Existing:        existing,
		MaxTimestep:     15,
		NewMalfunctions: []int{0},
	})

	require.Len(t, out, 2)
	assert.Equal(t, existing[1], out[1], "unaffected agent's path must be untouched")

	length := len(out[0])
	require.Equal(t, len(out[1]), length)
	for tstep := 0; tstep < length; tstep++ {
		assert.NotEqual(t, out[0][tstep], out[1][tstep], "no vertex conflict at tick %d", tstep)
		if tstep > 0 {
			swap := out[0][tstep] == out[1][tstep-1] && out[1][tstep] == out[0][tstep-1]
			assert.False(t, swap, "no edge swap conflict at tick %d", tstep)
		}
	}
}

func TestReplanUnionsOverlappingAffectedSets(t *testing.T) {
	rail := core.NewOpenGridRail(3, 1)
	agents := []core.Agent{{ID: 0, InitialCell: cell(0, 0), InitialHeading: core.East, TargetCell: cell(0, 2)}}

	p := planner.New()
	existing := p.PlanInitial(agents, rail, 6)

	out := replanner.Replan(replanner.Request{
		Planner:         p,
		Agents:          agents,
		Rail:            rail,
		TNow:            1,
		Existing:        existing,
		MaxTimestep:     6,
		NewMalfunctions: []int{0},
		Failed:          []int{0},
	})
	require.Len(t, out, 1)
	assert.Len(t, out[0], 6)
}
