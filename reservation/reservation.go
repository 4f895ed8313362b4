package reservation

import "github.com/katalvlaran/railplan/core"

// Occupied reports whether moving from `from` to `to`, arriving at time t,
// conflicts with anything already reserved: a vertex conflict ((to,t) ∈ V), or
// an edge conflict (either (from,to,t) or the swap (to,from,t) is in E).
//
// For a Wait successor, call Occupied(cell, cell, t) — from==to collapses the
// edge checks and only the vertex set is consulted, matching the spec's note
// that wait collisions are detected purely through V.
//
// Complexity: O(1) expected.
func (tab *Table) Occupied(from, to core.Cell, t int) bool {
	if _, ok := tab.vertices[vertexKey{cell: packCell(to), t: t}]; ok {
		return true
	}
	if from == to {
		return false
	}
	pf, pt := packCell(from), packCell(to)
	if _, ok := tab.edges[edgeKey{from: pf, to: pt, t: t}]; ok {
		return true
	}
	if _, ok := tab.edges[edgeKey{from: pt, to: pf, t: t}]; ok {
		return true
	}
	return false
}

// Reserve registers path as occupying the reservation table starting at
// absolute timestep t0: path[i] occupies time t0+i, and each non-wait step
// path[i-1]→path[i] reserves the corresponding directed edge at time t0+i.
//
// The wait-self-edge is never added to E (an agent sitting still does not
// produce a directed edge); only the vertex set records a wait.
//
// Complexity: O(len(path)) expected.
func (tab *Table) Reserve(path core.Path, t0 int) {
	for i, cell := range path {
		tab.vertices[vertexKey{cell: packCell(cell), t: t0 + i}] = struct{}{}
		if i == 0 {
			continue
		}
		prev := path[i-1]
		if prev == cell {
			continue // wait: no edge reservation
		}
		tab.edges[edgeKey{from: packCell(prev), to: packCell(cell), t: t0 + i}] = struct{}{}
	}
}

// ReserveAll reserves every path in paths starting at timestep 0. It is a
// convenience for building a from-scratch reservation out of a full path set;
// the planner, replanner and LNS improver do not call it (they reserve each
// path's unpadded portion with Reserve).
func (tab *Table) ReserveAll(paths []core.Path) {
	for _, p := range paths {
		tab.Reserve(p, 0)
	}
}
