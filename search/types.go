package search

import (
	"context"

	"github.com/katalvlaran/railplan/core"
)

// stateKey identifies a single search state for the closed set: a cell, the
// heading the agent currently faces, the search's relative timestep
// (Request.StartTime maps it onto absolute time), and how many
// consecutive ticks it has already dwelled on cell.
type stateKey struct {
	row, col int
	heading  core.Heading
	t        int
	dwell    int
}

// node is a single search-frontier entry. parent is a pointer into the
// closed set rather than a copy of the path so far, keeping memory per node
// O(1); the full path is reconstructed once, on success, by walking parent
// links back to the root.
type node struct {
	key    stateKey
	g      int // cost so far; equals t for this search (each tick costs 1)
	f      int // g + heuristic
	parent *node
}

// openQueue is a min-heap of *node ordered by (f, g, heading) ascending, the
// deterministic tie-break the spec requires: lower f first, then lower g
// (the less-advanced, cheaper-to-reach state), then lower heading index.
type openQueue []*node

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}
	return a.key.heading < b.key.heading
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) {
	*q = append(*q, x.(*node))
}

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// Request bundles the inputs to a single Search call, per the spec's §4.3
// input list: rail, start cell/heading, target, the read-only reservation,
// a departure floor, the agent's discrete speed, and a time limit.
type Request struct {
	Rail        core.RailView
	Reservation Reservation

	Start        core.Cell
	StartHeading core.Heading
	Target       core.Cell

	// StartTime is the absolute timestep Start corresponds to. The search's
	// own clock always runs 0,1,2,... internally (DepartFloor, TMax, and the
	// returned path are all relative to it), but every Reservation.Occupied
	// query is offset by StartTime so it lands on the same absolute timeline
	// the reservation table was built against. Zero for a from-scratch
	// search, where relative and absolute time coincide.
	StartTime int

	// DepartFloor is t_depart: the earliest timestep the agent may leave Start.
	DepartFloor int
	// Cmax is the agent's discrete speed: ticks required on a cell before crossing.
	Cmax int
	// TMax is the time limit for this attempt on the search's relative clock
	// (see StartTime); successors at t+1 > TMax are never emitted.
	TMax int

	// Ctx allows a caller-supplied wall-clock budget to cancel an in-flight
	// search; a nil Ctx behaves as context.Background(). Checked once per
	// expansion, matching the cancellation granularity of the teacher's bfs
	// package.
	Ctx context.Context
}

// Reservation is the read-only view Search needs of the shared reservation
// table. It is satisfied by *reservation.Table; defining it here (rather than
// importing the reservation package's concrete type) keeps search decoupled
// from reservation's mutation API, which Search never calls.
type Reservation interface {
	Occupied(from, to core.Cell, t int) bool
}
