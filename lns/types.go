package lns

import (
	"math/rand"

	"github.com/katalvlaran/railplan/agentmeta"
	"github.com/katalvlaran/railplan/core"
	"github.com/katalvlaran/railplan/diag"
)

// RestartInfo is the per-agent starting point a repaired suffix extends from.
// It generalizes "start from scratch" (T0=0, empty Prefix, restart at the
// agent's initial cell/heading) and "resume after a malfunction" (T0=t_now,
// Prefix = the committed history, restart at the agent's last recoverable
// state) under one shape.
type RestartInfo struct {
	Prefix         core.Path
	T0             int
	RestartCell    core.Cell
	RestartHeading core.Heading
}

// Request bundles the inputs to Improve.
type Request struct {
	Rail  core.RailView
	Cache *agentmeta.Cache

	// Agents is the full episode agent list, indexed by agent ID.
	Agents []core.Agent
	// Paths is the current plan to improve, indexed by agent ID; every path
	// must already be padded to MaxTimestep.
	Paths []core.Path

	MaxTimestep int
	Iterations  int
	RNG         *rand.Rand

	// Touchable restricts which agents Improve may ever replan. nil means
	// every agent is touchable (the get_path context). A replan call passes
	// the affected-agent set here, so LNS never rewrites a path the
	// replanner's prefix-preservation invariant requires to stay identical.
	Touchable map[int]struct{}

	// Restarts supplies the per-agent RestartInfo described above. An agent
	// absent from this map restarts from scratch: empty prefix, T0=0, its
	// own InitialCell/InitialHeading.
	Restarts map[int]RestartInfo

	Sink *diag.Sink
}
