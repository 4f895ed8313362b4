package railplan_test

import (
	"fmt"

	"github.com/katalvlaran/railplan"
	"github.com/katalvlaran/railplan/core"
)

// ExampleEpisode plans two agents crossing an open corridor in opposite
// directions, then repairs the plan after a malfunction at t_now=2.
func ExampleEpisode() {
	rail := core.NewOpenGridRail(5, 1)
	agents := []core.Agent{
		{ID: 0, InitialCell: core.Cell{Row: 0, Col: 0}, InitialHeading: core.East, TargetCell: core.Cell{Row: 0, Col: 4}},
		{ID: 1, InitialCell: core.Cell{Row: 0, Col: 4}, InitialHeading: core.West, TargetCell: core.Cell{Row: 0, Col: 0}},
	}

	ep := railplan.NewEpisode(railplan.WithSeed(1))
	paths := ep.PlanInitial(agents, rail, 10)

	updated := ep.Replan(agents, rail, 2, paths, 10, []int{0}, nil)
	fmt.Println(len(updated), len(updated[0]))
	// Output: 2 10
}
