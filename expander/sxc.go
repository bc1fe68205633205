package expander

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

// ExpandSxc lays a Wxc -> Sxc -> ... -> Sxc -> Wxc bypass over target,
// reusing an existing fiber (on a free core) at any position the plant
// already provides one, and creating a fresh multi-core fiber only where
// none exists. It searches every core 0..CoreFactor-1 for the combination
// that needs the fewest new fibers, breaking ties toward the lowest core
// index, then lays/reuses along that choice.
func ExpandSxc(n *network.Network, target []ids.Edge) ([]*network.Fiber, error) {
	if len(target) < 2 {
		return nil, ErrTargetTooShort
	}

	bestCore, bestSeq := chooseSxcCore(n, target)

	var created []*network.Fiber
	var prevDst network.PortID

	first, isNew, err := reuseOrCreateMCF(n, bestSeq[0], target[0], network.Wxc, network.Sxc)
	if err != nil {
		return nil, err
	}
	if isNew {
		created = append(created, first)
	}
	prevDst = first.DstPortIDs[bestCore]

	for i, edge := range target[1 : len(target)-1] {
		mid, isNew, err := reuseOrCreateMCF(n, bestSeq[i+1], edge, network.Sxc, network.Sxc)
		if err != nil {
			return nil, err
		}
		if isNew {
			created = append(created, mid)
		}
		xc, err := n.GetXCOnNode(edge.Src, network.Sxc)
		if err != nil {
			return nil, ErrStitchFailed
		}
		if err := xc.ConnectIO(prevDst, mid.SrcPortIDs[bestCore]); err != nil {
			return nil, ErrStitchFailed
		}
		prevDst = mid.DstPortIDs[bestCore]
	}

	lastEdge := target[len(target)-1]
	last, isNew, err := reuseOrCreateMCF(n, bestSeq[len(bestSeq)-1], lastEdge, network.Sxc, network.Wxc)
	if err != nil {
		return nil, err
	}
	if isNew {
		created = append(created, last)
	}
	xc, err := n.GetXCOnNode(lastEdge.Src, network.Sxc)
	if err != nil {
		return nil, ErrStitchFailed
	}
	if err := xc.ConnectIO(prevDst, last.SrcPortIDs[bestCore]); err != nil {
		return nil, ErrStitchFailed
	}

	return created, nil
}

// chooseSxcCore evaluates every core and returns the one that leaves the
// fewest positions without a reusable existing fiber, along with the
// reusable-fiber sequence (nil entry means "must create") for that core.
func chooseSxcCore(n *network.Network, target []ids.Edge) (network.CoreIndex, []*network.FiberID) {
	var bestCore network.CoreIndex
	var bestSeq []*network.FiberID
	bestMissing := len(target) + 1

	for core := network.CoreIndex(0); int(core) < network.CoreFactor; core++ {
		seq := make([]*network.FiberID, len(target))
		missing := 0
		for i, edge := range target {
			srcType, dstType := sxcEndpointTypes(i, len(target))
			id := findReusableFiber(n, edge, srcType, dstType, core)
			seq[i] = id
			if id == nil {
				missing++
			}
		}
		if missing < bestMissing {
			bestMissing, bestCore, bestSeq = missing, core, seq
		}
		if missing == 0 {
			break
		}
	}
	return bestCore, bestSeq
}

func sxcEndpointTypes(idx, length int) (network.XCType, network.XCType) {
	switch {
	case idx == 0:
		return network.Wxc, network.Sxc
	case idx == length-1:
		return network.Sxc, network.Wxc
	default:
		return network.Sxc, network.Sxc
	}
}

// findReusableFiber returns the ID of an existing fiber on edge matching
// [srcType, dstType] that has core free, or nil if none qualifies.
func findReusableFiber(n *network.Network, edge ids.Edge, srcType, dstType network.XCType, core network.CoreIndex) *network.FiberID {
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
				idCopy := id
				return &idCopy
			}
		}
	}
	return nil
}

// reuseOrCreateMCF returns the fiber for existing (if non-nil), otherwise
// registers a fresh multi-core fiber of [srcType, dstType] on edge. The
// bool result reports whether a new fiber was created.
func reuseOrCreateMCF(n *network.Network, existing *network.FiberID, edge ids.Edge, srcType, dstType network.XCType) (*network.Fiber, bool, error) {
	if existing != nil {
		f, err := n.GetFiberByID(*existing)
		if err != nil {
			return nil, false, ErrStitchFailed
		}
		return f, false, nil
	}
	f := n.RegisterFiber(network.NewMCF(edge, srcType, dstType))
	return f, true, nil
}
