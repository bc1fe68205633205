package topology

import "github.com/optrans/layernet/ids"

// RouteCandidate is one simple path between a route candidate's implicit
// source and destination: the node sequence and the directed edge sequence
// it implies. EdgeRoute always has len(NodeRoute)-1 elements.
type RouteCandidate struct {
	NodeRoute []ids.Node
	EdgeRoute []ids.Edge
}

// Hops returns the number of edges in the candidate.
func (rc RouteCandidate) Hops() int { return len(rc.EdgeRoute) }

// Topology is the physical plant: which directed edges exist, and for every
// ordered node pair, the bounded pool of candidate simple paths a demand
// between those nodes might be routed over, ordered ascending by hop count
// (ties broken by discovery order, which is deterministic given a fixed
// link matrix).
type Topology struct {
	Name       string
	LinkMatrix [][]bool
	Edges      []ids.Edge

	// Candidates maps an SD pair to its route-candidate pool. A pair with
	// no path at all (disconnected nodes) is simply absent.
	Candidates map[ids.SD][]RouteCandidate
}

// NodeCount returns the number of nodes in the topology.
func (t *Topology) NodeCount() int { return len(t.LinkMatrix) }

// RouteCandidatesFor returns the candidate pool for sd, or nil if sd has no
// path in this topology.
func (t *Topology) RouteCandidatesFor(sd ids.SD) []RouteCandidate {
	return t.Candidates[sd]
}

// ShortestHops returns the hop count of the shortest known candidate for sd.
func (t *Topology) ShortestHops(sd ids.SD) (int, bool) {
	cands := t.Candidates[sd]
	if len(cands) == 0 {
		return 0, false
	}
	return cands[0].Hops(), true
}

// AverageShortestHops returns the mean shortest-path hop count across every
// SD pair that has at least one candidate. Used by demand synthesis to
// sanity-check the configured traffic intensity against link capacity.
func (t *Topology) AverageShortestHops() float64 {
	sum, n := 0, 0
	for _, cands := range t.Candidates {
		if len(cands) == 0 {
			continue
		}
		sum += cands[0].Hops()
		n++
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}
