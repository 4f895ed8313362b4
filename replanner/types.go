package replanner

import (
	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/lns"
	"github.com/katalvlaran/railplan/planner"
)

// Request bundles the inputs to Replan, mirroring the external interface of
// §6: same agents/rail/horizon as PlanInitial, plus the episode's current
// time and committed plan and the two affected-agent sets.
type Request struct {
	Planner *planner.Planner

	Agents      []core.Agent
	Rail        core.RailView
	TNow        int
	Existing    []core.Path
	MaxTimestep int

	NewMalfunctions []int
	Failed          []int
}

// restart is the inferred resumption point for one affected agent: the cell
// and heading it will depart from at TNow, and the committed prefix that
// must survive unchanged. prefix runs through t0 inclusive, so
// prefix[t0] == cell.
type restart struct {
	prefix  core.Path
	t0      int
	cell    core.Cell
	heading core.Heading
}

func toRestartInfo(r restart) lns.RestartInfo {
	return lns.RestartInfo{Prefix: r.prefix, T0: r.t0, RestartCell: r.cell, RestartHeading: r.heading}
}
