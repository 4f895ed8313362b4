package core

// Agent is an immutable agent descriptor, fixed for the lifetime of an episode.
//
// LatestArrival is optional: nil means the agent has no deadline (agentmeta then
// falls back to the episode horizon). Speed is a discrete rate in (0,1]; zero
// means "unspecified", which agentmeta treats as full speed (Cmax=1).
type Agent struct {
	// ID identifies the agent's index in the episode's agent list.
	ID int

	InitialCell    Cell
	InitialHeading Heading
	TargetCell     Cell

	// EarliestDeparture is the first timestep at which the agent may leave InitialCell.
	EarliestDeparture int

	// LatestArrival is the agent's deadline, or nil if none was assigned.
	LatestArrival *int

	// Speed is a fractional rate in (0,1]; 0 means unspecified (full speed).
	Speed float64
}
