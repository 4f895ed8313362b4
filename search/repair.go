package search

import "github.com/katalvlaran/railplan/core"

// RepairRequest bundles the inputs to RepairFromPrefix: a committed prefix to
// keep untouched, and the parameters of the single-agent search that extends
// it. Prefix may be empty, in which case T0 must be 0 and the search runs
// over the whole episode from the agent's initial state — the call shape the
// LNS improver uses for an agent it replans from scratch.
type RepairRequest struct {
	Rail        core.RailView
	Reservation Reservation

	// Prefix is the committed portion of the path through T0 inclusive:
	// Prefix[T0] is RestartCell, the same cell the new search departs from.
	// Never rewritten: RepairFromPrefix only ever appends beyond it.
	// len(Prefix) == T0+1 whenever Prefix is non-empty.
	Prefix core.Path
	// T0 is the absolute timestep RestartCell occupies, i.e. the last index
	// of Prefix.
	T0 int

	RestartCell    core.Cell
	RestartHeading core.Heading
	Target         core.Cell

	// DepartFloor is the agent's absolute earliest-departure timestep; it is
	// translated into the sub-search's T0-relative time frame internally.
	DepartFloor int
	Cmax        int
	Slack       int
	// Horizon is the absolute episode horizon (max_timestep).
	Horizon int
}

// RepairFromPrefix extends Prefix with a freshly searched suffix from
// RestartCell/RestartHeading to Target, using the retry-horizon policy, and
// splices the two into one absolute-time-indexed path. It is shared by the
// replanner (prefix up to t_now) and the LNS improver (empty prefix or a
// prefix up to t_now, depending on which plan it is repairing); the
// prioritized planner calls WithRetryHorizon directly. Committed history is
// always passed through untouched and only ever extended, never recomputed.
func RepairFromPrefix(req RepairRequest) core.Path {
	relDepartFloor := req.DepartFloor - req.T0
	if relDepartFloor < 0 {
		relDepartFloor = 0
	}
	relHorizon := req.Horizon - req.T0
	if relHorizon < 0 {
		relHorizon = 0
	}

	suffixReq := Request{
		Rail:         req.Rail,
		Reservation:  req.Reservation,
		Start:        req.RestartCell,
		StartHeading: req.RestartHeading,
		Target:       req.Target,
		StartTime:    req.T0,
		DepartFloor:  relDepartFloor,
		Cmax:         req.Cmax,
	}
	suffix := WithRetryHorizon(suffixReq, req.Slack, relHorizon)

	if len(req.Prefix) == 0 {
		return suffix
	}
	// suffix[0] == RestartCell == Prefix[T0], the duplicate seam; drop it so
	// the splice doesn't double-count the restart cell.
	combined := make(core.Path, 0, len(req.Prefix)+len(suffix)-1)
	combined = append(combined, req.Prefix...)
	combined = append(combined, suffix[1:]...)
	return combined
}
