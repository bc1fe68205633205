// Package ids defines the small, dependency-free value types shared across
// the whole topology-design pipeline: graph Node identifiers, directed
// Edge pairs, and source/destination demand pairs (SD).
//
// These types intentionally carry no behavior beyond equality, ordering and
// string rendering: every other package (statematrix, network, topology,
// pathfinder, expander, designer, demand) imports ids rather than redefining
// its own node/edge notion, so that a Node from a Topology and a Node used to
// key a Fiber map are always comparable.
package ids
