// Package pathfinder turns a demand (an SD pair) plus a precomputed
// Topology of route candidates into an AssignmentInstruction: the specific
// fiber/core chain and spectrum slot a demand should occupy.
//
// Four routing policies share the same continuity-respecting depth-first
// fiber/core search (route.go): FF walks route candidates in topology
// order, ff_randomized groups candidates by hop count and shuffles each
// group from the network's own RNG stream, RD and RD_DA both visit
// candidates in ascending edge-cost order. RD_DA runs exactly as RD does:
// every policy requests a slot run of width 1, and no distance-based width
// is computed. A fifth policy, layer_search, is recognized but unavailable:
// see ErrPolicyUnavailable.
package pathfinder
