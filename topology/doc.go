// Package topology turns a node adjacency matrix into a Topology: the set
// of physical edges plus, for every ordered node pair, a bounded pool of
// candidate simple paths a demand between those nodes might be routed
// over.
//
// Candidate enumeration runs one DFS per source/destination pair, capped at
// ShortestK paths and at HopSlug hops past the shortest path found, and
// those per-pair searches run concurrently across a bounded worker pool so
// that building the candidate pool for a topology with many nodes does not
// serialize on a single core.
package topology
