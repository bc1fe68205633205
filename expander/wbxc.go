package expander

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/statematrix"
)

// ExpandWbxc lays a Wxc -> Wbxc -> ... -> Wbxc -> Wxc bypass for one
// waveband over target, reusing an existing fiber with that waveband free
// on the relevant port wherever the plant already provides one. It
// chooses the waveband needing the fewest new fibers, ties broken toward
// the lowest waveband index, mirroring ExpandSxc's core choice.
func ExpandWbxc(n *network.Network, target []ids.Edge) ([]*network.Fiber, error) {
	if len(target) < 2 {
		return nil, ErrTargetTooShort
	}

	wb, seq := chooseWaveband(n, target)

	var created []*network.Fiber
	var prevDst network.PortID

	for i, edge := range target {
		srcType, dstType := wbxcEndpointTypes(i, len(target))
		f, isNew, err := reuseOrCreateWbFiber(n, seq[i], edge, srcType, dstType)
		if err != nil {
			return nil, err
		}
		if isNew {
			created = append(created, f)
		}
		if i != 0 {
			xc, err := n.GetXCOnNode(edge.Src, network.Wbxc)
			if err != nil {
				return nil, ErrStitchFailed
			}
			if err := xc.ConnectIOWaveband(prevDst, f.SrcPortIDs[0], wb); err != nil {
				return nil, ErrStitchFailed
			}
		}
		prevDst = f.DstPortIDs[0]
	}

	return created, nil
}

func wbxcEndpointTypes(idx, length int) (network.XCType, network.XCType) {
	switch {
	case idx == 0:
		return network.Wxc, network.Wbxc
	case idx == length-1:
		return network.Wbxc, network.Wxc
	default:
		return network.Wbxc, network.Wbxc
	}
}

func chooseWaveband(n *network.Network, target []ids.Edge) (statematrix.WBIndex, []*network.FiberID) {
	var bestWb statematrix.WBIndex
	var bestSeq []*network.FiberID
	bestMissing := len(target) + 1

	for _, wb := range statematrix.AllWavebands() {
		seq := make([]*network.FiberID, len(target))
		missing := 0
		for i, edge := range target {
			srcType, dstType := wbxcEndpointTypes(i, len(target))
			id := findReusableWbFiber(n, edge, srcType, dstType, wb)
			seq[i] = id
			if id == nil {
				missing++
			}
		}
		if missing < bestMissing {
			bestMissing, bestWb, bestSeq = missing, wb, seq
		}
		if missing == 0 {
			break
		}
	}
	return bestWb, bestSeq
}

// findReusableWbFiber returns an existing fiber on edge of [srcType,
// dstType] whose relevant Wbxc-facing port still has wb free, or nil. A
// Wxc-facing port is never wb-occupied (Wxc switches per-slot, not
// per-waveband), so only the Wbxc end of the fiber is checked.
func findReusableWbFiber(n *network.Network, edge ids.Edge, srcType, dstType network.XCType, wb statematrix.WBIndex) *network.FiberID {
	for _, id := range n.GetFiberIDsOnEdge(edge) {
		f, err := n.GetFiberByID(id)
		if err != nil || f.SDXCType != [2]network.XCType{srcType, dstType} {
			continue
		}
		if srcType == network.Wbxc {
			xc, err := n.XCByPort(f.SrcPortIDs[0])
			if err != nil || xc.IsOutputWBOccupied(f.SrcPortIDs[0], wb) {
				continue
			}
		}
		if dstType == network.Wbxc {
			xc, err := n.XCByPort(f.DstPortIDs[0])
			if err != nil || xc.IsInputWBOccupied(f.DstPortIDs[0], wb) {
				continue
			}
		}
		idCopy := id
		return &idCopy
	}
	return nil
}

func reuseOrCreateWbFiber(n *network.Network, existing *network.FiberID, edge ids.Edge, srcType, dstType network.XCType) (*network.Fiber, bool, error) {
	if existing != nil {
		f, err := n.GetFiberByID(*existing)
		if err != nil {
			return nil, false, ErrStitchFailed
		}
		return f, false, nil
	}
	f := n.RegisterFiber(network.NewSCF(edge, srcType, dstType))
	return f, true, nil
}
