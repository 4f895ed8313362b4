// Package agentmeta precomputes, per agent, the deadline, earliest-departure,
// discrete speed (Cmax), and slack used to order agents in the prioritized
// planner and the LNS improver.
//
// A Cache is built once per PlanInitial call and reused, read-only, by every
// subsequent Replan call for the same episode — it is owned by the calling
// planner instance rather than a package-level global, so independent
// episodes never share state.
package agentmeta
