package search

import (
	"container/heap"
	"context"

	"github.com/katalvlaran/railplan/core"
)

// Search runs the time-expanded A* over the state space (cell, heading, t,
// dwell_counter) described by the spec's §4.3. It returns the reconstructed
// path from Start to Target and true on success, or the single-cell path
// [Start] and false if Target was not reached within req.TMax.
//
// Complexity: O(S log S) where S is the number of (cell, heading, t, dwell)
// states expanded before TMax is reached; in practice S is bounded by
// grid size × 4 headings × TMax × Cmax.
func Search(req Request) (core.Path, bool) {
	ctx := req.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	target := req.Target
	heuristic := func(c core.Cell) int { return c.Manhattan(target) }

	start := stateKey{row: req.Start.Row, col: req.Start.Col, heading: req.StartHeading, t: 0, dwell: 0}
	open := &openQueue{{key: start, g: 0, f: heuristic(req.Start)}}
	heap.Init(open)
	closed := make(map[stateKey]bool)

	for open.Len() > 0 {
		select {
		case <-ctx.Done():
			return core.Path{req.Start}, false
		default:
		}

		cur := heap.Pop(open).(*node)
		if closed[cur.key] {
			continue
		}
		closed[cur.key] = true

		curCell := core.Cell{Row: cur.key.row, Col: cur.key.col}
		if curCell == target {
			return reconstruct(cur), true
		}

		t := cur.key.t
		if t+1 > req.TMax {
			continue
		}
		nextT := t + 1
		absNextT := req.StartTime + nextT

		// Successor 1: Wait. Always allowed before DepartFloor as a means of
		// delaying entry; gated only by the reservation table.
		if !req.Reservation.Occupied(curCell, curCell, absNextT) {
			waitKey := stateKey{row: curCell.Row, col: curCell.Col, heading: cur.key.heading, t: nextT, dwell: clampDwell(cur.key.dwell+1, req.Cmax)}
			if !closed[waitKey] {
				heap.Push(open, &node{key: waitKey, g: nextT, f: nextT + heuristic(curCell), parent: cur})
			}
		}

		// Successor 2: Move. Only once the dwell requirement is satisfied and
		// the agent is at or past its departure floor.
		if cur.key.dwell+1 >= req.Cmax && t >= req.DepartFloor {
			mask := req.Rail.Transitions(curCell, cur.key.heading)
			for d := core.Heading(0); d < core.NumHeadings; d++ {
				if !mask[d] {
					continue
				}
				dr, dc := d.Delta()
				next := curCell.Add(dr, dc)
				if req.Reservation.Occupied(curCell, next, absNextT) {
					continue
				}
				moveKey := stateKey{row: next.Row, col: next.Col, heading: d, t: nextT, dwell: 0}
				if closed[moveKey] {
					continue
				}
				heap.Push(open, &node{key: moveKey, g: nextT, f: nextT + heuristic(next), parent: cur})
			}
		}
	}

	return core.Path{req.Start}, false
}

// clampDwell caps the dwell counter at Cmax-1, the top of its valid range
// [0, Cmax).
func clampDwell(c, cmax int) int {
	if c > cmax-1 {
		return cmax - 1
	}
	return c
}

// reconstruct walks n's parent chain back to the root and returns the path in
// forward (timestep-ascending) order. Every transition in this search space
// advances t by exactly one tick, so the path's length equals n's timestep
// plus one and each index can be filled directly from its state's t.
func reconstruct(n *node) core.Path {
	path := make(core.Path, n.key.t+1)
	for cur := n; cur != nil; cur = cur.parent {
		path[cur.key.t] = core.Cell{Row: cur.key.row, Col: cur.key.col}
	}
	return path
}
