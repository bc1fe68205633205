package designer

import (
	"fmt"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/demand"
	"github.com/optrans/layernet/expander"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/pathfinder"
	"github.com/optrans/layernet/statematrix"
	"github.com/optrans/layernet/topology"
)

// assignAll routes every demand in order, retrying a demand against freshly
// expanded Wxc-Wxc capacity whenever the path finder cannot place it, until
// every demand holds an assignment.
func assignAll(p config.Params, n *network.Network, topo *topology.Topology, demands []demand.Demand) error {
	for i := range demands {
		for {
			ins, err := pathfinder.Search(p.Policy.RoutingPolicy, demands[i].SD, topo, n)
			if err == nil {
				if aerr := n.AssignPath(demands[i].Index, ins.FiberIDs, ins.Cores, ins.SlotHeads[0], ins.Width); aerr != nil {
					return fmt.Errorf("designer: assign demand %d: %w", demands[i].Index, aerr)
				}
				demands[i].FiberIDs = ins.FiberIDs
				demands[i].CoreIndices = ins.Cores
				demands[i].SlotHeads = ins.SlotHeads
				demands[i].SlotWidth = ins.Width
				break
			}

			rc, rerr := topo.RandomShortestPath(demands[i].SD, n.RNG, 0)
			if rerr != nil {
				return fmt.Errorf("%w: %s: %v", ErrNoRouteAtAll, demands[i].SD, rerr)
			}
			expander.ExpandWxc(n, expandEdgesFor(n, rc.EdgeRoute))
		}
	}
	return nil
}

// deleteAllPaths releases every demand's current assignment, resetting each
// Demand so it can be routed fresh against a working copy of the network.
func deleteAllPaths(n *network.Network, demands []demand.Demand) {
	for i := range demands {
		if len(demands[i].FiberIDs) == 0 {
			continue
		}
		n.RemovePath(demands[i].Index, demands[i].FiberIDs)
		demands[i].Reset()
	}
}

// cloneDemands returns an independent copy of demands: the slice header is
// fresh, though an individual Demand's assignment slices are only ever
// replaced wholesale (never mutated in place), so sharing their backing
// arrays with the original is safe.
func cloneDemands(demands []demand.Demand) []demand.Demand {
	return append([]demand.Demand(nil), demands...)
}

// expandEdgesFor picks the spectral slot that would force the fewest new
// Wxc-Wxc fibers across edgeRoute, then returns the subset of edgeRoute
// that has no existing Wxc-Wxc fiber on that directed edge free at that
// slot -- the edges the initial assign-all loop must expand before retrying
// the demand that failed on edgeRoute.
func expandEdgesFor(n *network.Network, edgeRoute []ids.Edge) []ids.Edge {
	wxcWxc := [2]network.XCType{network.Wxc, network.Wxc}
	expandCount := make([]int, statematrix.Slots)

	for _, edge := range edgeRoute {
		flag := statematrix.NewFulfilled()
		for _, fid := range n.GetFiberIDsOnEdgePartial(edge) {
			f, err := n.GetFiberByID(fid)
			if err != nil || f.SDXCType != wxcWxc {
				continue
			}
			flag = flag.And(f.StateMatrixes[0])
		}
		for slot := 0; slot < statematrix.Slots; slot++ {
			if flag[slot] {
				expandCount[slot]++
			}
		}
	}

	targetSlot := 0
	best := expandCount[0]
	for slot, c := range expandCount {
		if c < best {
			best, targetSlot = c, slot
		}
	}

	var out []ids.Edge
	for _, edge := range edgeRoute {
		empty := false
		for _, fid := range n.GetFiberIDsOnEdgePartial(edge) {
			f, err := n.GetFiberByID(fid)
			if err != nil || f.SDXCType != wxcWxc {
				continue
			}
			if !f.StateMatrixes[0][targetSlot] {
				empty = true
				break
			}
		}
		if !empty {
			out = append(out, edge)
		}
	}
	return out
}
