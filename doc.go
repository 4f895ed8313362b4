// Package railplan is a time-expanded multi-agent path-planning core for a
// grid-based railway simulation: given a fixed rail layout and a set of
// agents with deadlines and discrete speeds, it plans collision-free paths
// and repairs them incrementally as malfunctions and execution failures
// occur during the episode.
//
// The package is organized the way the algorithm itself is staged:
//
//	core/        — Cell, Heading, RailView, Agent, Path: the shared vocabulary
//	reservation/ — the vertex/edge occupancy table single-agent search queries
//	search/      — time-expanded A* and the retry-horizon / prefix-repair helpers
//	agentmeta/   — per-agent deadline, speed and slack extraction, priority order
//	planner/     — the prioritized multi-agent planner (plan_initial)
//	replanner/   — incremental repair after malfunctions and execution failures
//	lns/         — the large-neighborhood-search lateness-improvement loop
//	diag/        — the optional structured diagnostics sink
//
// Episode ties these together behind the two operations the external
// simulator drives: PlanInitial once per episode, then Replan once per
// timestep.
package railplan
