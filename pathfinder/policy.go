package pathfinder

import (
	"fmt"
	"sort"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/topology"
)

// Search dispatches to the routing policy named by policy and returns an
// AssignmentInstruction for sd, or ErrNoRoute if no candidate in topo
// admits a feasible chain, or ErrPolicyUnavailable for layer_search.
func Search(policy config.RoutingPolicy, sd ids.SD, topo *topology.Topology, n *network.Network) (*AssignmentInstruction, error) {
	switch policy {
	case config.PolicyFF:
		return searchFF(sd, topo, n)
	case config.PolicyFFRandomized:
		return searchFFRandomized(sd, topo, n)
	case config.PolicyRD:
		return searchRD(sd, topo, n)
	case config.PolicyRDDA:
		return searchRDDA(sd, topo, n)
	case config.PolicyLayerSearch:
		return nil, ErrPolicyUnavailable
	default:
		return nil, fmt.Errorf("pathfinder: unknown routing policy %q", policy)
	}
}

// tryCandidate attempts one route candidate, producing a full
// AssignmentInstruction (fiber/core chain plus chosen slot) if one exists.
func tryCandidate(n *network.Network, rc topology.RouteCandidate) (*AssignmentInstruction, bool) {
	route, err := findFiberCoreRoute(n, rc.EdgeRoute, nil)
	if err != nil || route == nil {
		return nil, false
	}
	slot, ok := selectSlot(n, route)
	if !ok {
		return nil, false
	}
	return instructionFromRoute(route, slot), true
}

func instructionFromRoute(route []hop, slot int) *AssignmentInstruction {
	ins := &AssignmentInstruction{
		FiberIDs:  make([]network.FiberID, len(route)),
		Cores:     make([]network.CoreIndex, len(route)),
		SlotHeads: make([]int, len(route)),
		Width:     1,
	}
	for i, h := range route {
		ins.FiberIDs[i] = h.Fiber
		ins.Cores[i] = h.Core
		ins.SlotHeads[i] = slot
	}
	return ins
}

// searchFF walks route candidates in the topology's precomputed
// (shortest-first) order.
func searchFF(sd ids.SD, topo *topology.Topology, n *network.Network) (*AssignmentInstruction, error) {
	for _, rc := range topo.RouteCandidatesFor(sd) {
		if ins, ok := tryCandidate(n, rc); ok {
			return ins, nil
		}
	}
	return nil, ErrNoRoute
}

// searchFFRandomized groups route candidates by hop count and, within
// each group (shortest group first), shuffles the order using a draw from
// the network's own RNG stream before trying each in turn.
func searchFFRandomized(sd ids.SD, topo *topology.Topology, n *network.Network) (*AssignmentInstruction, error) {
	cands := topo.RouteCandidatesFor(sd)
	if len(cands) == 0 {
		return nil, ErrNoRoute
	}

	byHops := make(map[int][]topology.RouteCandidate)
	maxHops := 0
	for _, rc := range cands {
		byHops[rc.Hops()] = append(byHops[rc.Hops()], rc)
		if rc.Hops() > maxHops {
			maxHops = rc.Hops()
		}
	}

	for hops := 1; hops <= maxHops; hops++ {
		group := byHops[hops]
		if len(group) == 0 {
			continue
		}
		n.RNG.Shuffle(len(group), func(i, j int) { group[i], group[j] = group[j], group[i] })
		for _, rc := range group {
			if ins, ok := tryCandidate(n, rc); ok {
				return ins, nil
			}
		}
	}
	return nil, ErrNoRoute
}

// searchRD visits route candidates in ascending order of total edge cost
// (Network.CalcEdgeCost summed along the candidate's edges).
func searchRD(sd ids.SD, topo *topology.Topology, n *network.Network) (*AssignmentInstruction, error) {
	cands := topo.RouteCandidatesFor(sd)
	ordered := orderByCost(n, cands)
	for _, rc := range ordered {
		if ins, ok := tryCandidate(n, rc); ok {
			return ins, nil
		}
	}
	return nil, ErrNoRoute
}

// searchRDDA is RD's distance-adaptive-modulation variant. The reference
// implementation's distance-to-width mapping (get_width) is unimplemented
// in the source; per the specification's guidance this reimplementation
// uses the conservative placeholder of width 1, identical to RD, until a
// distance->width mapping is defined.
func searchRDDA(sd ids.SD, topo *topology.Topology, n *network.Network) (*AssignmentInstruction, error) {
	return searchRD(sd, topo, n)
}

func orderByCost(n *network.Network, cands []topology.RouteCandidate) []topology.RouteCandidate {
	type scored struct {
		rc   topology.RouteCandidate
		cost float64
	}
	scoredCands := make([]scored, len(cands))
	for i, rc := range cands {
		var cost float64
		for _, e := range rc.EdgeRoute {
			cost += n.CalcEdgeCost(e)
		}
		scoredCands[i] = scored{rc: rc, cost: cost}
	}
	sort.SliceStable(scoredCands, func(i, j int) bool { return scoredCands[i].cost < scoredCands[j].cost })
	out := make([]topology.RouteCandidate, len(scoredCands))
	for i, s := range scoredCands {
		out[i] = s.rc
	}
	return out
}
