package pathfinder

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/statematrix"
)

// hop is one fiber/core pair chosen along a candidate route.
type hop struct {
	Fiber network.FiberID
	Core  network.CoreIndex
}

func wxcLike(t network.XCType) bool { return t == network.Wxc || t == network.AddedWxc }

// findFiberCoreRoute searches depth-first for one sequence of (fiber,
// core) hops across edges, in the order order leaves the per-edge fiber
// candidates, such that the chain respects per-layer continuity and the
// accumulated occupancy across every hop admits a common width-1 empty
// run. order may be nil (use registration order as-is).
func findFiberCoreRoute(n *network.Network, edges []ids.Edge, order func([]network.FiberID) []network.FiberID) ([]hop, error) {
	fiberIDsOnEdges := make([][]network.FiberID, len(edges))
	for i, e := range edges {
		cands := n.GetFiberIDsOnEdgeEmpty(e)
		if order != nil {
			cands = order(cands)
		}
		fiberIDsOnEdges[i] = cands
	}

	var unsupported error
	route, ok := recurseRoute(n, fiberIDsOnEdges, 0, nil, statematrix.New(), &unsupported)
	if ok {
		return route, nil
	}
	if unsupported != nil {
		return nil, unsupported
	}
	return nil, ErrNoRoute
}

// recurseRoute mirrors the reference implementation's
// get_empty_fiber_core_routes_recursive: at each level it tries every
// candidate fiber on that edge, dispatching on the fiber's endpoint
// XCType pair to decide which cores/wavebands are eligible, and returns
// as soon as one full chain is found (first-fit over route candidates,
// not an exhaustive search of all of them).
func recurseRoute(n *network.Network, fiberIDsOnEdges [][]network.FiberID, level int, route []hop, acc statematrix.StateMatrix, unsupported *error) ([]hop, bool) {
	final := len(fiberIDsOnEdges) - 1

	for _, fid := range fiberIDsOnEdges[level] {
		sdType, err := n.GetFiberSDXCType(fid)
		if err != nil {
			continue
		}
		if level == 0 && !wxcLike(sdType[0]) {
			continue
		}
		if level == final && !wxcLike(sdType[1]) {
			continue
		}

		switch {
		case wxcLike(sdType[0]) && (sdType[1] == network.Fxc || sdType[1] == network.Sxc):
			if r, ok := tryCoreEntry(n, fiberIDsOnEdges, level, final, route, acc, fid, unsupported); ok {
				return r, true
			}
		case isCoreContinuation(sdType):
			if r, ok := tryCoreContinue(n, fiberIDsOnEdges, level, final, route, acc, fid, sdType, unsupported); ok {
				return r, true
			}
		case sdType[0] == network.Wbxc && (sdType[1] == network.Wxc || sdType[1] == network.Wbxc):
			if r, ok := tryWbContinue(n, fiberIDsOnEdges, level, final, route, acc, fid, unsupported); ok {
				return r, true
			}
		case wxcLike(sdType[0]) && sdType[1] == network.Wbxc:
			if r, ok := tryWbEntry(n, fiberIDsOnEdges, level, final, route, acc, fid, unsupported); ok {
				return r, true
			}
		default:
			*unsupported = ErrUnsupportedTypePair
		}
	}
	return nil, false
}

// isCoreContinuation reports whether sdType is a plain Wxc-Wxc hop or a
// continuation/exit within an Fxc/Sxc core-granularity bypass chain.
func isCoreContinuation(sdType [2]network.XCType) bool {
	switch sdType {
	case [2]network.XCType{network.Wxc, network.Wxc},
		[2]network.XCType{network.Sxc, network.Wxc},
		[2]network.XCType{network.Sxc, network.Sxc},
		[2]network.XCType{network.Fxc, network.Wxc},
		[2]network.XCType{network.Fxc, network.Fxc},
		[2]network.XCType{network.AddedWxc, network.AddedWxc},
		[2]network.XCType{network.AddedWxc, network.Wxc},
		[2]network.XCType{network.Wxc, network.AddedWxc}:
		return true
	default:
		return false
	}
}

func cloneRoute(route []hop, h hop) []hop {
	out := make([]hop, len(route)+1)
	copy(out, route)
	out[len(route)] = h
	return out
}

func tryCoreEntry(n *network.Network, edges [][]network.FiberID, level, final int, route []hop, acc statematrix.StateMatrix, fid network.FiberID, unsupported *error) ([]hop, bool) {
	if !checkContinuity(n, route, fid, 0) {
		return nil, false
	}
	f, err := n.GetFiberByID(fid)
	if err != nil {
		return nil, false
	}
	for core := 0; core < f.GetCoreNum(); core++ {
		newAcc := acc.Or(f.StateMatrixes[core])
		if !newAcc.HasEmptyRun(1) {
			continue
		}
		newRoute := cloneRoute(route, hop{Fiber: fid, Core: network.CoreIndex(core)})
		if level == final {
			return newRoute, true
		}
		if r, ok := recurseRoute(n, edges, level+1, newRoute, newAcc, unsupported); ok {
			return r, true
		}
	}
	return nil, false
}

func tryCoreContinue(n *network.Network, edges [][]network.FiberID, level, final int, route []hop, acc statematrix.StateMatrix, fid network.FiberID, sdType [2]network.XCType, unsupported *error) ([]hop, bool) {
	core := network.CoreIndex(0)
	if !wxcLike(sdType[0]) && len(route) > 0 {
		core = route[len(route)-1].Core
	}
	if !checkContinuity(n, route, fid, core) {
		return nil, false
	}
	f, err := n.GetFiberByID(fid)
	if err != nil || int(core) >= f.GetCoreNum() {
		return nil, false
	}
	newAcc := acc.Or(f.StateMatrixes[core])
	if !newAcc.HasEmptyRun(1) {
		return nil, false
	}
	newRoute := cloneRoute(route, hop{Fiber: fid, Core: core})
	if level == final {
		return newRoute, true
	}
	return recurseRoute(n, edges, level+1, newRoute, newAcc, unsupported)
}

func tryWbContinue(n *network.Network, edges [][]network.FiberID, level, final int, route []hop, acc statematrix.StateMatrix, fid network.FiberID, unsupported *error) ([]hop, bool) {
	f, err := n.GetFiberByID(fid)
	if err != nil {
		return nil, false
	}
	for _, wb := range statematrix.AllWavebands() {
		if !checkContinuityWb(n, route, fid, wb) {
			continue
		}
		newAcc := acc.Or(f.StateMatrixes[0]).ApplyWithoutWavebandFilter(wb)
		if !newAcc.HasEmptyRun(1) {
			continue
		}
		core := network.CoreIndex(0)
		if len(route) > 0 {
			core = route[len(route)-1].Core
		}
		newRoute := cloneRoute(route, hop{Fiber: fid, Core: core})
		if level == final {
			return newRoute, true
		}
		if r, ok := recurseRoute(n, edges, level+1, newRoute, newAcc, unsupported); ok {
			return r, true
		}
	}
	return nil, false
}

func tryWbEntry(n *network.Network, edges [][]network.FiberID, level, final int, route []hop, acc statematrix.StateMatrix, fid network.FiberID, unsupported *error) ([]hop, bool) {
	f, err := n.GetFiberByID(fid)
	if err != nil {
		return nil, false
	}
	for _, wb := range statematrix.AllWavebands() {
		if !checkContinuity(n, route, fid, 0) {
			continue
		}
		newAcc := acc.Or(f.StateMatrixes[0]).ApplyWithoutWavebandFilter(wb)
		if !newAcc.HasEmptyRun(1) {
			continue
		}
		newRoute := cloneRoute(route, hop{Fiber: fid, Core: 0})
		if level == final {
			return newRoute, true
		}
		if r, ok := recurseRoute(n, edges, level+1, newRoute, newAcc, unsupported); ok {
			return r, true
		}
	}
	return nil, false
}

// checkContinuity reports whether candidate can follow the last hop of
// route on the given core: the previous hop's destination port and the
// candidate's source port at that core must belong to the same XC, and
// that XC must be able to route between them.
func checkContinuity(n *network.Network, route []hop, candidate network.FiberID, core network.CoreIndex) bool {
	if len(route) == 0 {
		return true
	}
	prev, err := n.GetFiberByID(route[len(route)-1].Fiber)
	if err != nil {
		return false
	}
	cur, err := n.GetFiberByID(candidate)
	if err != nil {
		return false
	}
	if int(core) >= prev.GetCoreNum() || int(core) >= cur.GetCoreNum() {
		return false
	}
	inPort, outPort := prev.DstPortIDs[core], cur.SrcPortIDs[core]
	inXC, err := n.XCByPort(inPort)
	if err != nil {
		return false
	}
	outXC, err := n.XCByPort(outPort)
	if err != nil {
		return false
	}
	if inXC.ID != outXC.ID {
		return false
	}
	ok, err := inXC.CanRoute(inPort, outPort)
	return err == nil && ok
}

// checkContinuityWb is checkContinuity's waveband-routing counterpart, used
// when the candidate's own XC switches per-waveband (Wbxc).
func checkContinuityWb(n *network.Network, route []hop, candidate network.FiberID, wb statematrix.WBIndex) bool {
	if len(route) == 0 {
		return true
	}
	prev, err := n.GetFiberByID(route[len(route)-1].Fiber)
	if err != nil {
		return false
	}
	cur, err := n.GetFiberByID(candidate)
	if err != nil {
		return false
	}
	inPort, outPort := prev.DstPortIDs[0], cur.SrcPortIDs[0]
	inXC, err := n.XCByPort(inPort)
	if err != nil {
		return false
	}
	outXC, err := n.XCByPort(outPort)
	if err != nil {
		return false
	}
	if inXC.ID != outXC.ID {
		return false
	}
	ok, err := inXC.CanRouteWaveband(inPort, outPort, wb)
	return err == nil && ok
}

// selectSlot walks the accumulated per-hop state matrixes for route in
// ascending slot order and returns the first slot that is free on every
// hop and, for every Wxc-Wbxc hop in route, falls within a waveband whose
// routed fiber sequence is fully contained in route (so the chosen slot
// never straddles into a waveband bypass the chain only partially
// traverses).
func selectSlot(n *network.Network, route []hop) (int, bool) {
	fiberIDs := make([]network.FiberID, len(route))
	for i, h := range route {
		fiberIDs[i] = h.Fiber
	}

slotLoop:
	for slot := 0; slot < statematrix.Slots; slot++ {
		for i, h := range route {
			f, err := n.GetFiberByID(h.Fiber)
			if err != nil {
				continue slotLoop
			}
			if f.StateMatrixes[h.Core][slot] {
				continue slotLoop
			}
			if f.SDXCType == [2]network.XCType{network.Wxc, network.Wbxc} {
				wb := statematrix.WavebandOf(slot)
				seq, err := n.GetFiberSequenceWb(fiberIDs[i], wb)
				if err != nil || !network.ContainsSubsequence(fiberIDs, seq) {
					continue slotLoop
				}
			}
		}
		return slot, true
	}
	return 0, false
}
