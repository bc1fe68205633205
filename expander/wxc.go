package expander

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

// RemoveFibersByEdges removes the first plain Wxc-Wxc fiber found on each
// edge in target, returning the IDs actually removed (an edge with no
// Wxc-Wxc fiber contributes nothing). Used by the designer to free one
// Wxc-Wxc fiber per edge of a trial's route before installing the bypass
// over it.
func RemoveFibersByEdges(n *network.Network, target []ids.Edge) []network.FiberID {
	var removed []network.FiberID
	for _, edge := range target {
		for _, id := range n.GetFiberIDsOnEdge(edge) {
			sdType, err := n.GetFiberSDXCType(id)
			if err != nil || sdType != [2]network.XCType{network.Wxc, network.Wxc} {
				continue
			}
			_ = n.DeleteFiber(id)
			removed = append(removed, id)
			break
		}
	}
	return removed
}

// ExpandWxc lays one new plain Wxc-Wxc fiber per edge in target: the
// designer's "just add capacity" fallback whenever the path finder cannot
// place a demand.
func ExpandWxc(n *network.Network, target []ids.Edge) []*network.Fiber {
	fibers := make([]*network.Fiber, 0, len(target))
	for _, edge := range target {
		f := network.NewSCF(edge, network.Wxc, network.Wxc)
		fibers = append(fibers, f)
	}
	return n.RegisterFibers(fibers)
}
