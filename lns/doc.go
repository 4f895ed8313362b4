// Package lns implements the large-neighborhood-search improvement loop that
// runs after the prioritized planner (or the replanner) to shrink aggregate
// lateness: it repeatedly destroys a small spatio-temporal neighborhood of
// agents around a randomly chosen late agent, replans only that neighborhood
// against a reservation rebuilt from everyone else, and keeps the result only
// if total lateness strictly improved.
//
// The loop is deterministic given a seed: the same seed, same plan and same
// agent set always produce the same sequence of neighborhoods and the same
// final plan, matching the teacher's own rng-seeding convention in its tsp
// package.
package lns
