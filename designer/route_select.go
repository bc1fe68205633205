package designer

import (
	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/topology"
)

// selectRoute picks the candidate route a bypass trial should install for
// sd, given the [top-layer, bypass-layer] pair being expanded this round.
// An Sxc bypass can reuse existing fibers on a free core, so among the
// tied-shortest candidates it picks the one needing the fewest new fibers;
// every other bypass kind has no such reuse to optimize for and simply
// takes the fixed or random shortest path per p.Network.FiberUnification.
func selectRoute(p config.Params, n *network.Network, topo *topology.Topology, sd ids.SD, xcTypes [2]network.XCType) (topology.RouteCandidate, error) {
	if xcTypes == [2]network.XCType{network.Wxc, network.Sxc} {
		return minExpandRouteCandidate(n, topo, sd)
	}
	if p.Network.FiberUnification {
		return topo.FixedShortestPath(sd, 0)
	}
	return topo.RandomShortestPath(sd, n.RNG, 0)
}

// minExpandRouteCandidate returns the tied-shortest candidate for sd that
// needs the fewest new Sxc fibers to install (reusing an existing fiber
// with a free core wherever the plant already provides one), breaking
// ties toward the first candidate in topology order.
func minExpandRouteCandidate(n *network.Network, topo *topology.Topology, sd ids.SD) (topology.RouteCandidate, error) {
	cands, err := topo.ShortestPaths(sd, 0)
	if err != nil {
		return topology.RouteCandidate{}, err
	}

	best := cands[0]
	bestMissing := minMissingAcrossCores(n, best.EdgeRoute)
	for _, rc := range cands[1:] {
		missing := minMissingAcrossCores(n, rc.EdgeRoute)
		if missing < bestMissing {
			best, bestMissing = rc, missing
		}
	}
	return best, nil
}

// minMissingAcrossCores returns, over every core 0..CoreFactor-1, the
// fewest positions along edgeRoute lacking a reusable Sxc-chain fiber
// (Wxc-Sxc at the first edge, Sxc-Sxc in the middle, Sxc-Wxc at the last)
// with that core free.
func minMissingAcrossCores(n *network.Network, edgeRoute []ids.Edge) int {
	if len(edgeRoute) == 0 {
		return 0
	}
	best := len(edgeRoute) + 1
	for core := network.CoreIndex(0); int(core) < network.CoreFactor; core++ {
		missing := 0
		for i, edge := range edgeRoute {
			srcType, dstType := sxcEndpointTypesFor(i, len(edgeRoute))
			if !hasReusableSxcFiber(n, edge, srcType, dstType, core) {
				missing++
			}
		}
		if missing < best {
			best = missing
		}
		if best == 0 {
			break
		}
	}
	return best
}

func sxcEndpointTypesFor(idx, length int) (network.XCType, network.XCType) {
	switch {
	case idx == 0:
		return network.Wxc, network.Sxc
	case idx == length-1:
		return network.Sxc, network.Wxc
	default:
		return network.Sxc, network.Sxc
	}
}

// hasReusableSxcFiber reports whether edge already carries a fiber of
// exactly [srcType, dstType] with core free.
func hasReusableSxcFiber(n *network.Network, edge ids.Edge, srcType, dstType network.XCType, core network.CoreIndex) bool {
	for _, id := range n.GetFiberIDsOnEdge(edge) {
		sdType, err := n.GetFiberSDXCType(id)
		if err != nil || sdType != [2]network.XCType{srcType, dstType} {
			continue
		}
		unused, err := n.GetUnusedCores(id)
		if err != nil {
			continue
		}
		for _, c := range unused {
			if c == core {
				return true
			}
		}
	}
	return false
}
