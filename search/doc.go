// Package search implements the time-expanded single-agent shortest-path
// search: given a rail view, a reservation table, a start (cell, heading,
// departure floor), a discrete speed Cmax, and a target cell, it finds a path
// that never conflicts with the reservation.
//
// State is (cell, heading, t, dwell_counter): the dwell counter models
// trains whose speed is less than one cell per tick by requiring Cmax
// consecutive ticks on a cell before the agent may cross to the next one.
// This single formulation subsumes unit-speed and fractional-speed agents
// with correct vertex/edge conflict reasoning, per the spec's "why a dwell
// counter" rationale.
//
// Search is a best-first A* (Manhattan distance heuristic, f = g + h, g = t)
// over the state space, implemented with container/heap exactly as the
// teacher's dijkstra package and the corpus's other space-time A* reference
// implementation do. The closed set stores a parent pointer per state rather
// than a full path, so reconstruction is a single O(path length) walk at the
// end instead of O(path length) memory per open-set entry.
//
// If the target is unreachable within the time limit, Search returns the
// single-cell path [start] — the documented "wait forever" fallback — rather
// than an error; the core never raises an error to the caller.
package search
