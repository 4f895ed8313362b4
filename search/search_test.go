package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/reservation"
	"github.com/katalvlaran/railplan/search"
)

func cell(r, c int) core.Cell { return core.Cell{Row: r, Col: c} }

func TestSearchStraightLine(t *testing.T) {
	rail := core.NewOpenGridRail(3, 3)
	tab := reservation.New()

	path, reached := search.Search(search.Request{
		Rail:         rail,
		Reservation:  tab,
		Start:        cell(0, 0),
		StartHeading: core.East,
		Target:       cell(0, 2),
		Cmax:         1,
		TMax:         10,
	})
	require.True(t, reached)
	assert.Equal(t, core.Path{cell(0, 0), cell(0, 1), cell(0, 2)}, path)
}

func TestSearchUnreachableFallsBackToStart(t *testing.T) {
	rail := core.NewOpenGridRail(3, 3)
	// Wall off the only cell adjacent to start toward the target direction.
	rail.Block(cell(0, 0), core.East)
	tab := reservation.New()

	path, reached := search.Search(search.Request{
		Rail:         rail,
		Reservation:  tab,
		Start:        cell(0, 0),
		StartHeading: core.East,
		Target:       cell(5, 5), // out of grid entirely: unreachable
		Cmax:         1,
		TMax:         5,
	})
	assert.False(t, reached)
	assert.Equal(t, core.Path{cell(0, 0)}, path)
}

func TestSearchRespectsReservedVertex(t *testing.T) {
	rail := core.NewOpenGridRail(5, 1)
	tab := reservation.New()
	// Reserve cell (0,1) at t=1, forcing the agent to wait one tick.
	tab.Reserve(core.Path{cell(9, 9), cell(0, 1)}, 0)

	path, reached := search.Search(search.Request{
		Rail:         rail,
		Reservation:  tab,
		Start:        cell(0, 0),
		StartHeading: core.East,
		Target:       cell(0, 2),
		Cmax:         1,
		TMax:         10,
	})
	require.True(t, reached)
	// Must wait at (0,0) for one tick before the reserved cell frees up.
	assert.Equal(t, cell(0, 0), path[0])
	assert.Equal(t, cell(0, 0), path[1])
	assert.Equal(t, cell(0, 2), path[len(path)-1])
}

func TestSearchSpeedDwellsBeforeMoving(t *testing.T) {
	rail := core.NewOpenGridRail(3, 1)
	tab := reservation.New()

	path, reached := search.Search(search.Request{
		Rail:         rail,
		Reservation:  tab,
		Start:        cell(0, 0),
		StartHeading: core.East,
		Target:       cell(0, 1),
		Cmax:         3,
		TMax:         10,
	})
	require.True(t, reached)
	// Cmax=3 keeps the agent on the origin for three ticks (t=0,1,2: two
	// waits) before it crosses, arriving at t=3.
	require.Len(t, path, 4)
	assert.Equal(t, cell(0, 0), path[0])
	assert.Equal(t, cell(0, 0), path[1])
	assert.Equal(t, cell(0, 0), path[2])
	assert.Equal(t, cell(0, 1), path[3])
}

func TestSearchDepartFloorDelaysMove(t *testing.T) {
	rail := core.NewOpenGridRail(3, 1)
	tab := reservation.New()

	path, reached := search.Search(search.Request{
		Rail:         rail,
		Reservation:  tab,
		Start:        cell(0, 0),
		StartHeading: core.East,
		Target:       cell(0, 1),
		DepartFloor:  4,
		Cmax:         1,
		TMax:         10,
	})
	require.True(t, reached)
	for tstep := 0; tstep <= 4; tstep++ {
		assert.Equal(t, cell(0, 0), path[tstep], "agent must wait at origin until DepartFloor")
	}
	assert.Equal(t, cell(0, 1), path[5])
}

func TestWithRetryHorizonExpandsUntilReached(t *testing.T) {
	rail := core.NewOpenGridRail(20, 1)
	tab := reservation.New()
	// Hold (0,1) for t=1..30 so the agent cannot leave the origin before
	// t=30 and reaches (0,19) only at t=49.
	blocker := make(core.Path, 30)
	for i := range blocker {
		blocker[i] = cell(0, 1)
	}
	tab.Reserve(blocker, 1)
	req := search.Request{
		Rail:         rail,
		Reservation:  tab,
		Start:        cell(0, 0),
		StartHeading: core.East,
		Target:       cell(0, 19),
		Cmax:         1,
	}
	// The first TMax (0 + 19 + slack 0 + 20 = 39) is too short for an
	// arrival at t=49; the retry loop must expand it (to 59) to get there.
	path := search.WithRetryHorizon(req, 0, 200)
	assert.Len(t, path, 50)
	assert.Equal(t, cell(0, 19), path[len(path)-1])
}

func TestWithRetryHorizonGivesUpAtHorizon(t *testing.T) {
	rail := core.NewOpenGridRail(3, 1)
	rail.Block(cell(0, 0), core.East)
	tab := reservation.New()
	req := search.Request{
		Rail:         rail,
		Reservation:  tab,
		Start:        cell(0, 0),
		StartHeading: core.East,
		Target:       cell(0, 2),
		Cmax:         1,
	}
	path := search.WithRetryHorizon(req, 0, 30)
	assert.Equal(t, core.Path{cell(0, 0)}, path)
}
