package network

import (
	"math/rand"
	"sort"

	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/internal/rng"
	"github.com/optrans/layernet/statematrix"
)

type xcKey struct {
	node ids.Node
	t    XCType
}

// Network is the registry of every Fiber and XC in the plant. Lookups such
// as GetFiberByID and GetXCOnNode return pointers into the registry, and
// callers use them to assign slots or install switching entries directly;
// registering and deleting fibers (and so allocating and freeing ports)
// goes only through Network's methods, so that the port->XC reverse index
// and the fiber/xc iteration orders never drift out of sync with the
// underlying maps.
type Network struct {
	fibers     map[FiberID]*Fiber
	fiberOrder []FiberID

	xcs     map[xcKey]*XC
	xcOrder []xcKey

	portToXC map[PortID]XCID
	xcByID   map[XCID]*XC

	// taboo accumulates, per XCType pair, the demand endpoint (SD) of every
	// bypass pruned for being empty. The discovery package consults this
	// so that a pruned bypass is never re-proposed in a later designer
	// round.
	taboo map[[2]XCType][]ids.SD

	// RNG is owned by the Network so that its advancement is coupled to
	// network mutation and therefore reproducible: every routing decision
	// that needs randomness (randomized-FF shuffles, the designer's random
	// shortest-path tie-break) draws from this single stream rather than
	// an ambient global source. Clone gives the clone a stream derived from
	// this one (deriving it takes one draw from the parent), so draws made
	// by a rolled-back trial never advance the parent's stream.
	RNG *rand.Rand
}

// New returns an empty Network seeded from seed (0 falls back to a fixed
// default seed; see internal/rng).
func New(seed int64) *Network {
	return &Network{
		fibers:   make(map[FiberID]*Fiber),
		xcs:      make(map[xcKey]*XC),
		portToXC: make(map[PortID]XCID),
		xcByID:   make(map[XCID]*XC),
		taboo:    make(map[[2]XCType][]ids.SD),
		RNG:      rng.New(seed),
	}
}

// Clone returns a deep, independent copy of n: mutating the clone never
// affects n. The iterative designer snapshots the Network this way before
// trying a candidate round of bypasses, so that a rejected round can be
// thrown away by simply discarding the clone.
func (n *Network) Clone() *Network {
	out := New(0)
	out.RNG = rng.Derive(n.RNG, uint64(len(n.fiberOrder)))
	for _, id := range n.fiberOrder {
		out.fiberOrder = append(out.fiberOrder, id)
		out.fibers[id] = n.fibers[id].clone()
	}
	for _, k := range n.xcOrder {
		out.xcOrder = append(out.xcOrder, k)
		out.xcs[k] = n.xcs[k].clone()
		out.xcByID[out.xcs[k].ID] = out.xcs[k]
	}
	for p, xcID := range n.portToXC {
		out.portToXC[p] = xcID
	}
	for k, sds := range n.taboo {
		out.taboo[k] = append([]ids.SD(nil), sds...)
	}
	return out
}

func (f *Fiber) clone() *Fiber {
	out := *f
	out.StateMatrixes = append([]statematrix.StateMatrix(nil), f.StateMatrixes...)
	out.AssignedDemands = make(map[int]assignment, len(f.AssignedDemands))
	for k, v := range f.AssignedDemands {
		out.AssignedDemands[k] = v
	}
	out.SrcPortIDs = append([]PortID(nil), f.SrcPortIDs...)
	out.DstPortIDs = append([]PortID(nil), f.DstPortIDs...)
	return &out
}

func (xc *XC) clone() *XC {
	out := &XC{
		ID:            xc.ID,
		Node:          xc.Node,
		Type:          xc.Type,
		inputDevices:  make(map[PortID]struct{}, len(xc.inputDevices)),
		outputDevices: make(map[PortID]struct{}, len(xc.outputDevices)),
		routes:        make(map[PortID]PortID, len(xc.routes)),
		wbRoutes:      make(map[wbConn]PortID, len(xc.wbRoutes)),
	}
	for p := range xc.inputDevices {
		out.inputDevices[p] = struct{}{}
	}
	for p := range xc.outputDevices {
		out.outputDevices[p] = struct{}{}
	}
	for k, v := range xc.routes {
		out.routes[k] = v
	}
	for k, v := range xc.wbRoutes {
		out.wbRoutes[k] = v
	}
	return out
}

// XCOnNode returns the XC of the given type at node, creating it (with no
// ports) on first access. Lazy creation keeps empty topology nodes cheap:
// a node that never needs an Fxc never allocates one.
func (n *Network) XCOnNode(node ids.Node, xcType XCType) *XC {
	key := xcKey{node: node, t: xcType}
	if xc, ok := n.xcs[key]; ok {
		return xc
	}
	xc := NewXC(node, xcType)
	n.xcs[key] = xc
	n.xcByID[xc.ID] = xc
	n.xcOrder = append(n.xcOrder, key)
	return xc
}

// GetXCOnNode is the read-only counterpart to XCOnNode: it never creates a
// device that is not already present.
func (n *Network) GetXCOnNode(node ids.Node, xcType XCType) (*XC, error) {
	xc, ok := n.xcs[xcKey{node: node, t: xcType}]
	if !ok {
		return nil, ErrXCNotFound
	}
	return xc, nil
}

// XCByPort returns the XC that owns the given port, regardless of whether
// the port is registered as an input or an output device.
func (n *Network) XCByPort(p PortID) (*XC, error) {
	id, ok := n.portToXC[p]
	if !ok {
		return nil, ErrXCNotFound
	}
	xc, ok := n.xcByID[id]
	if !ok {
		return nil, ErrXCNotFound
	}
	return xc, nil
}

// RegisterFiber brings f into service: it allocates one src/dst port pair
// per core on the two endpoint XCs (creating those XCs lazily if needed),
// fills in f's port slices, and records both the fiber and the new ports in
// the reverse index. f must have been built by NewSCF/NewMCF and not yet
// registered.
func (n *Network) RegisterFiber(f *Fiber) *Fiber {
	srcXC := n.XCOnNode(f.Edge.Src, f.SDXCType[0])
	dstXC := n.XCOnNode(f.Edge.Dst, f.SDXCType[1])
	for core := 0; core < f.GetCoreNum(); core++ {
		srcPort := srcXC.GenerateNewDevice(false)
		dstPort := dstXC.GenerateNewDevice(true)
		f.SrcPortIDs[core] = srcPort
		f.DstPortIDs[core] = dstPort
		n.portToXC[srcPort] = srcXC.ID
		n.portToXC[dstPort] = dstXC.ID
	}
	n.fibers[f.ID] = f
	n.fiberOrder = append(n.fiberOrder, f.ID)
	return f
}

// RegisterFibers registers every fiber in fibers, in order.
func (n *Network) RegisterFibers(fibers []*Fiber) []*Fiber {
	for _, f := range fibers {
		n.RegisterFiber(f)
	}
	return fibers
}

// DeleteFiber removes f and its ports from the network entirely. The ports
// are also removed from their owning XCs' device sets, freeing the XC to
// allocate fresh ports at the same node later.
func (n *Network) DeleteFiber(id FiberID) error {
	f, ok := n.fibers[id]
	if !ok {
		return ErrFiberNotFound
	}
	srcXC := n.XCOnNode(f.Edge.Src, f.SDXCType[0])
	for _, p := range f.SrcPortIDs {
		srcXC.RemoveDevice(p)
		delete(n.portToXC, p)
	}
	dstXC := n.XCOnNode(f.Edge.Dst, f.SDXCType[1])
	for _, p := range f.DstPortIDs {
		dstXC.RemoveDevice(p)
		delete(n.portToXC, p)
	}
	delete(n.fibers, id)
	for i, fid := range n.fiberOrder {
		if fid == id {
			n.fiberOrder = append(n.fiberOrder[:i], n.fiberOrder[i+1:]...)
			break
		}
	}
	return nil
}

// GetFiberByID returns the fiber for id.
func (n *Network) GetFiberByID(id FiberID) (*Fiber, error) {
	f, ok := n.fibers[id]
	if !ok {
		return nil, ErrFiberNotFound
	}
	return f, nil
}

// Fibers returns every fiber in registration order.
func (n *Network) Fibers() []*Fiber {
	out := make([]*Fiber, 0, len(n.fiberOrder))
	for _, id := range n.fiberOrder {
		out = append(out, n.fibers[id])
	}
	return out
}

// XCs returns every cross-connect device in creation order.
func (n *Network) XCs() []*XC {
	out := make([]*XC, 0, len(n.xcOrder))
	for _, k := range n.xcOrder {
		out = append(out, n.xcs[k])
	}
	return out
}

// GetFiberIDsOnEdge returns, in registration order, the IDs of every fiber
// whose Edge equals edge exactly (direction-sensitive).
func (n *Network) GetFiberIDsOnEdge(edge ids.Edge) []FiberID {
	var out []FiberID
	for _, id := range n.fiberOrder {
		if n.fibers[id].Edge == edge {
			out = append(out, id)
		}
	}
	return out
}

// GetFiberIDsOnEdgePartial returns the non-full fibers on edge, but among
// Wxc-Wxc fibers only those that actually broaden the union occupancy: a
// running state matrix starts fulfilled (every slot considered occupied)
// and is ANDed down by each Wxc-Wxc fiber's core-0 state matrix in
// registration order; a fiber is kept only if that AND strictly changes
// the running matrix, and no further Wxc-Wxc fiber is kept once the
// running matrix goes empty (every slot already free on some kept fiber).
// Non-Wxc-Wxc fibers are always kept. This is the fiber set the bypass
// capacity estimate (designer.expandEdgesFor) reasons about for a single
// directed edge; it is never merged with the reverse direction.
func (n *Network) GetFiberIDsOnEdgePartial(edge ids.Edge) []FiberID {
	wxcWxc := [2]XCType{Wxc, Wxc}
	running := statematrix.NewFulfilled()
	exhausted := false

	var out []FiberID
	for _, id := range n.GetFiberIDsOnEdgeEmpty(edge) {
		f := n.fibers[id]
		if f.SDXCType != wxcWxc {
			out = append(out, id)
			continue
		}
		if exhausted {
			continue
		}
		if running.IsEmpty() {
			exhausted = true
			continue
		}
		prev := running
		running = running.And(f.StateMatrixes[0])
		if running != prev {
			out = append(out, id)
		}
	}
	return out
}

// GetFiberIDsOnEdgeEmpty returns the IDs of fibers on edge that have at
// least one free slot on some core (IsFull() == false).
func (n *Network) GetFiberIDsOnEdgeEmpty(edge ids.Edge) []FiberID {
	var out []FiberID
	for _, id := range n.GetFiberIDsOnEdge(edge) {
		if !n.fibers[id].IsFull() {
			out = append(out, id)
		}
	}
	return out
}

// GetFiberSDXCType returns the [source, destination] XCType pair of the
// fiber identified by id.
func (n *Network) GetFiberSDXCType(id FiberID) ([2]XCType, error) {
	f, ok := n.fibers[id]
	if !ok {
		return [2]XCType{}, ErrFiberNotFound
	}
	return f.SDXCType, nil
}

// HasFiberOnEdgeWithXCTypes reports whether edge already carries a fiber of
// exactly the given endpoint XCType pair.
func (n *Network) HasFiberOnEdgeWithXCTypes(edge ids.Edge, xcTypes [2]XCType) bool {
	for _, id := range n.GetFiberIDsOnEdge(edge) {
		if n.fibers[id].SDXCType == xcTypes {
			return true
		}
	}
	return false
}

// AllEdges returns every distinct edge carrying at least one fiber, sorted
// for determinism.
func (n *Network) AllEdges() []ids.Edge {
	seen := make(map[ids.Edge]struct{})
	for _, id := range n.fiberOrder {
		seen[n.fibers[id].Edge] = struct{}{}
	}
	out := make([]ids.Edge, 0, len(seen))
	for e := range seen {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Src != out[j].Src {
			return out[i].Src < out[j].Src
		}
		return out[i].Dst < out[j].Dst
	})
	return out
}

// CalcEdgeCost returns the routing cost of edge: total capacity divided by
// (residual capacity + 0.01), so a nearly-full edge costs far more than a
// mostly-empty one, and a zero-capacity edge never divides by zero.
func (n *Network) CalcEdgeCost(edge ids.Edge) float64 {
	var capacity, used float64
	for _, id := range n.GetFiberIDsOnEdge(edge) {
		f := n.fibers[id]
		capacity += float64(f.TotalSlots())
		used += float64(f.CountUsedSlots())
	}
	residual := capacity - used
	return capacity / (residual + 0.01)
}

// DeleteEmptyFibers removes every non-Initial fiber of the given endpoint
// XCType pair that carries zero assigned demands on every core, across the
// whole network. It is the generic form used for plain Wxc-Wxc/AddedWxc
// fibers, which never need the SD-endpoint taboo bookkeeping a bypass chain
// does (see DeleteEmptyFibersCore/DeleteEmptyFibersWb).
func (n *Network) DeleteEmptyFibers(xcTypes [2]XCType) []ids.Edge {
	var pruned []ids.Edge
	for _, id := range append([]FiberID(nil), n.fiberOrder...) {
		f, ok := n.fibers[id]
		if !ok || f.SDXCType != xcTypes || f.Initial {
			continue
		}
		if f.CountUsedSlots() != 0 {
			continue
		}
		pruned = append(pruned, f.Edge)
		_ = n.DeleteFiber(id)
	}
	return pruned
}

// recordTaboo appends sd to the taboo list for xcTypes.
func (n *Network) recordTaboo(xcTypes [2]XCType, sd ids.SD) {
	n.taboo[xcTypes] = append(n.taboo[xcTypes], sd)
}

// TabooSDs returns the demand endpoints previously pruned for the given
// endpoint XCType pair: the discovery package must never re-propose a
// bypass for an SD in this list with the same type pair.
func (n *Network) TabooSDs(xcTypes [2]XCType) []ids.SD {
	return append([]ids.SD(nil), n.taboo[xcTypes]...)
}

// AssignPath occupies [slotHead, slotHead+width) on the given core of every
// fiber in fiberIDs for demandID. If any hop fails, every hop already
// assigned in this call is rolled back so the network is left unchanged.
func (n *Network) AssignPath(demandID int, fiberIDs []FiberID, cores []CoreIndex, slotHead, width int) error {
	for i, fid := range fiberIDs {
		f, ok := n.fibers[fid]
		if !ok {
			n.rollbackAssign(demandID, fiberIDs[:i])
			return ErrFiberNotFound
		}
		if err := f.Assign(slotHead, width, cores[i], demandID); err != nil {
			n.rollbackAssign(demandID, fiberIDs[:i])
			return err
		}
	}
	return nil
}

func (n *Network) rollbackAssign(demandID int, fiberIDs []FiberID) {
	for _, fid := range fiberIDs {
		if f, ok := n.fibers[fid]; ok {
			_ = f.Delete(demandID)
		}
	}
}

// RemovePath releases demandID's assignment from every fiber in fiberIDs.
// Fibers that never held the demand are skipped rather than erroring: a
// partially-assigned path (from a rolled-back AssignPath) can still be
// cleaned up safely.
func (n *Network) RemovePath(demandID int, fiberIDs []FiberID) {
	for _, fid := range fiberIDs {
		if f, ok := n.fibers[fid]; ok {
			_ = f.Delete(demandID)
		}
	}
}

// GetUnusedCores returns the cores of fiber id that carry no assigned
// demand at all.
func (n *Network) GetUnusedCores(id FiberID) ([]CoreIndex, error) {
	f, ok := n.fibers[id]
	if !ok {
		return nil, ErrFiberNotFound
	}
	return f.UnusedCores(), nil
}

// FiberBreakdown tallies, per endpoint XCType pair, how many fibers of that
// pair exist in the network. Used for the designer's best-mode trial score
// and for reporting.
func (n *Network) FiberBreakdown() map[[2]XCType]int {
	out := make(map[[2]XCType]int)
	for _, id := range n.fiberOrder {
		out[n.fibers[id].SDXCType]++
	}
	return out
}
