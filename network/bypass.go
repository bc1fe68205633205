package network

import "github.com/optrans/layernet/statematrix"

// findFiberBySrcPort scans the registered fibers for the one whose
// SrcPortIDs contains port, returning it along with the core that port
// belongs to. Bypass chains are short (a handful of hops) and walked
// rarely (bypass install/prune, not the per-demand hot path), so a linear
// scan keeps Fiber/XC free of back-pointers rather than adding a second
// reverse index that Clone would also have to keep in sync.
func (n *Network) findFiberBySrcPort(port PortID) (*Fiber, CoreIndex, bool) {
	for _, id := range n.fiberOrder {
		f := n.fibers[id]
		for core, p := range f.SrcPortIDs {
			if p == port {
				return f, CoreIndex(core), true
			}
		}
	}
	return nil, 0, false
}

// GetFiberSequenceCore walks forward from entry (a Wxc/AddedWxc -> Fxc/Sxc
// fiber) through the Fxc/Sxc switching graph on the given core, following
// each hop's destination port to the next fiber via the owning XC's
// routing table, until it reaches a fiber whose destination XCType is
// Wxc/AddedWxc. It returns the full chain, entry fiber included.
func (n *Network) GetFiberSequenceCore(entry FiberID, core CoreIndex) ([]FiberID, error) {
	cur, ok := n.fibers[entry]
	if !ok {
		return nil, ErrFiberNotFound
	}
	seq := []FiberID{entry}
	for !isWxcLike(cur.SDXCType[1]) {
		xc, err := n.XCByPort(cur.DstPortIDs[core])
		if err != nil {
			return nil, err
		}
		out, err := xc.GetRoute(cur.DstPortIDs[core])
		if err != nil {
			return nil, err
		}
		next, _, found := n.findFiberBySrcPort(out)
		if !found {
			return nil, ErrPortNotConnected
		}
		seq = append(seq, next.ID)
		cur = next
	}
	return seq, nil
}

// GetFiberSequenceWb walks forward from entry (a Wxc/AddedWxc -> Wbxc
// fiber) through the Wbxc switching graph for the given waveband, until it
// reaches a fiber whose destination XCType is Wxc/AddedWxc.
func (n *Network) GetFiberSequenceWb(entry FiberID, wb statematrix.WBIndex) ([]FiberID, error) {
	cur, ok := n.fibers[entry]
	if !ok {
		return nil, ErrFiberNotFound
	}
	seq := []FiberID{entry}
	for !isWxcLike(cur.SDXCType[1]) {
		xc, err := n.XCByPort(cur.DstPortIDs[0])
		if err != nil {
			return nil, err
		}
		out, err := xc.GetRouteWaveband(cur.DstPortIDs[0], wb)
		if err != nil {
			return nil, err
		}
		next, _, found := n.findFiberBySrcPort(out)
		if !found {
			return nil, ErrPortNotConnected
		}
		seq = append(seq, next.ID)
		cur = next
	}
	return seq, nil
}

func isWxcLike(t XCType) bool { return t == Wxc || t == AddedWxc }

// ContainsSubsequence reports whether sub appears as a contiguous run
// inside route, in order. Used by the path finder to confirm a candidate
// fiber route actually traverses a discovered waveband bypass end-to-end
// rather than entering and leaving it partway through.
func ContainsSubsequence(route, sub []FiberID) bool {
	if len(sub) == 0 || len(sub) > len(route) {
		return false
	}
	for i := 0; i+len(sub) <= len(route); i++ {
		match := true
		for j, id := range sub {
			if route[i+j] != id {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
