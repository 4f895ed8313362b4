// Package core defines the fundamental types shared by every railplan
// subpackage: grid cells, agent headings, the read-only rail view, the
// immutable agent descriptor, and the padded Path representation.
//
// Nothing in this package mutates shared state and nothing here performs
// search or planning; those concerns live in reservation, search,
// agentmeta, planner, replanner, and lns. core is the vocabulary the rest
// of the module is written in.
package core
