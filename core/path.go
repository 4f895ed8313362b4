package core

// Path is an ordered sequence of cells indexed by global timestep, starting at
// timestep 0. A well-formed Path returned from the planner satisfies the four
// invariants of the data model:
//
//  1. Path[0] equals the agent's initial cell.
//  2. Each step is a wait (Path[t+1] == Path[t]) or a rail-allowed transition.
//  3. The target cell appears at some index <= horizon; the agent may idle
//     there afterward.
//  4. len(Path) == maxTimestep, so indexing by timestep is total.
type Path []Cell

// PadTo returns a copy of p extended (or truncated, which should not normally
// happen) to exactly length cells by repeating the last cell. An empty Path
// pads with the zero Cell, which callers should avoid constructing.
func (p Path) PadTo(length int) Path {
	if len(p) >= length {
		out := make(Path, length)
		copy(out, p[:length])
		return out
	}
	out := make(Path, length)
	copy(out, p)
	var last Cell
	if len(p) > 0 {
		last = p[len(p)-1]
	}
	for i := len(p); i < length; i++ {
		out[i] = last
	}
	return out
}

// At returns the cell occupied at timestep t, clamping to the last cell if t
// exceeds the path's length (idle-at-end semantics).
func (p Path) At(t int) Cell {
	if len(p) == 0 {
		return Cell{}
	}
	if t < 0 {
		t = 0
	}
	if t >= len(p) {
		t = len(p) - 1
	}
	return p[t]
}

// FirstIndexOf returns the first timestep at which p occupies target, or
// len(p) if it never does within the path. Callers use this to find where a
// path's "idle at target" tail begins, since indices at or after it need not
// be reserved — per the data model, the simulator removes an agent once it
// reaches its target, so later occupancy of that cell does not conflict.
func (p Path) FirstIndexOf(target Cell) int {
	for t, c := range p {
		if c == target {
			return t
		}
	}
	return len(p)
}

// ClonePaths returns a deep copy of a slice of Paths so that the core never
// retains aliasing references into caller-owned memory, per the data model's
// ownership rule.
func ClonePaths(paths []Path) []Path {
	out := make([]Path, len(paths))
	for i, p := range paths {
		cp := make(Path, len(p))
		copy(cp, p)
		out[i] = cp
	}
	return out
}
