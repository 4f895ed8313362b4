// Package replanner implements §4.5: given a Planner's cached agent
// metadata, the last committed plan, and the set of agents affected by a
// malfunction or an execution failure, it rebuilds only the affected agents'
// suffixes from t_now onward, leaving everyone else's path byte-identical.
//
// Restart state (cell and heading) is inferred from the last recoverable
// move in the existing path, matching the original Flatland controller's
// handling of a train that stopped short of where it was told to be.
package replanner
