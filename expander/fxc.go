package expander

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

// ExpandFxc lays a fresh Wxc -> Fxc -> ... -> Fxc -> Wxc fiber chain over
// target and stitches every intermediate Fxc's switching table together.
// Unlike the Sxc/Wbxc expanders, it never reuses an existing fiber on the
// edge: an Fxc bypass is opaque end to end, so a second bypass sharing the
// same edges still gets its own dedicated fiber chain.
func ExpandFxc(n *network.Network, target []ids.Edge) ([]*network.Fiber, error) {
	if len(target) < 2 {
		return nil, ErrTargetTooShort
	}

	fibers := make([]*network.Fiber, 0, len(target))

	first := n.RegisterFiber(network.NewSCF(target[0], network.Wxc, network.Fxc))
	fibers = append(fibers, first)
	prevDst := first.DstPortIDs[0]

	for _, edge := range target[1 : len(target)-1] {
		mid := n.RegisterFiber(network.NewSCF(edge, network.Fxc, network.Fxc))
		xc, err := n.GetXCOnNode(edge.Src, network.Fxc)
		if err != nil {
			return nil, ErrStitchFailed
		}
		if err := xc.ConnectIO(prevDst, mid.SrcPortIDs[0]); err != nil {
			return nil, ErrStitchFailed
		}
		prevDst = mid.DstPortIDs[0]
		fibers = append(fibers, mid)
	}

	last := n.RegisterFiber(network.NewSCF(target[len(target)-1], network.Fxc, network.Wxc))
	xc, err := n.GetXCOnNode(target[len(target)-1].Src, network.Fxc)
	if err != nil {
		return nil, ErrStitchFailed
	}
	if err := xc.ConnectIO(prevDst, last.SrcPortIDs[0]); err != nil {
		return nil, ErrStitchFailed
	}
	fibers = append(fibers, last)

	return fibers, nil
}
