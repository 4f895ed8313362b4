// Package reservation implements the shared occupancy table the prioritized
// planner, replanner, and LNS improver compose single-agent plans into.
//
// A Table tracks two sets, as specified by the data model:
//
//	V ⊂ (cell, t)             — "cell is occupied at time t"
//	E ⊂ (from_cell, to_cell, t) — "some agent traverses this edge arriving at time t"
//
// Occupied is O(1) expected and Reserve is O(1) expected per path cell: keys
// are packed into small
// comparable structs (a cell's row/col packed into one int64, paired with the
// timestep) rather than nested maps-of-maps, so lookups stay single hash
// operations regardless of grid size — the "dynamic containers → typed maps"
// design note from the spec.
//
// A Table is created fresh per planning call; it retains no state across
// calls and is not safe for concurrent mutation (the planner itself is
// single-threaded, per the concurrency model).
package reservation

import "github.com/katalvlaran/railplan/core"

// packCell flattens a Cell's two coordinates into one int64 so it can be used
// as (half of) a comparable map key without a nested map-of-maps.
func packCell(c core.Cell) int64 {
	return int64(c.Row)<<32 | int64(uint32(c.Col))
}

// vertexKey identifies a (cell, t) pair.
type vertexKey struct {
	cell int64
	t    int
}

// edgeKey identifies a directed (from, to, t) triple: "arrived at `to` at
// time t, having departed `from` at time t-1".
type edgeKey struct {
	from, to int64
	t        int
}

// Table is the reservation table described by the data model: a vertex set
// and an edge set, both indexed by discrete timestep.
type Table struct {
	vertices map[vertexKey]struct{}
	edges    map[edgeKey]struct{}
}

// New returns an empty reservation table.
func New() *Table {
	return &Table{
		vertices: make(map[vertexKey]struct{}),
		edges:    make(map[edgeKey]struct{}),
	}
}
