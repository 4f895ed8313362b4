// Package planner implements the prioritized multi-agent planner of §4.4:
// given an episode's agents and rail, it plans each agent's path in
// ascending (slack, Cmax) order against a reservation table shared across
// the whole call, then hands the result to package lns for a bounded
// improvement pass.
//
// A *Planner is an explicit, per-episode object rather than package-level
// state: it owns the agent-metadata cache built by PlanInitial, the episode
// identity, and the diagnostics sink, all of which Replan (package
// replanner) reuses for the rest of the episode: the cache read-only, the
// sink as the ledger its own warnings are added to.
package planner
