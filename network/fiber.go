package network

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/statematrix"
)

// FiberType distinguishes single-core from multi-core fiber.
type FiberType int

const (
	// SCF is a single-core fiber: exactly one StateMatrix, one core.
	SCF FiberType = iota
	// MCF is a multi-core fiber: CoreFactor independent StateMatrixes.
	MCF
)

// Fiber is a single physical span between two cross-connect devices. Its
// constructors only build the value: they do not register it on a Network
// or allocate the ports it references. Use Network.RegisterFiber (which
// allocates ports via the endpoint XCs) to bring a Fiber into service.
type Fiber struct {
	ID   FiberID
	Edge ids.Edge

	// StateMatrixes holds one occupancy bitmap per core: length 1 for SCF,
	// CoreFactor for MCF.
	StateMatrixes []statematrix.StateMatrix

	// AssignedDemands maps a demand index to the (core, slot head, width)
	// it occupies on this fiber, so Delete can validate against what
	// Assign actually recorded.
	AssignedDemands map[int]assignment

	// SrcPortIDs and DstPortIDs are indexed by core: length matches
	// StateMatrixes.
	SrcPortIDs []PortID
	DstPortIDs []PortID

	// SDXCType records the XCType of the two endpoint devices this fiber
	// terminates into, [source, destination].
	SDXCType [2]XCType

	Distance float64
	Type     FiberType

	// Initial marks a fiber as part of the baseline one-fiber-per-edge
	// Wxc-Wxc plant built when the Network was created. DeleteEmptyFibers
	// never removes an Initial fiber even when it carries zero demands:
	// doing so would disconnect the topology the bypass expander still
	// needs to route ordinary (non-bypassed) Wxc-Wxc traffic over.
	Initial bool
}

type assignment struct {
	core  CoreIndex
	start int
	width int
}

// NewSCF constructs a single-core fiber. It does not register ports or
// mutate any Network state.
func NewSCF(edge ids.Edge, srcType, dstType XCType) *Fiber {
	return &Fiber{
		ID:              NewFiberID(),
		Edge:            edge,
		StateMatrixes:   []statematrix.StateMatrix{statematrix.New()},
		AssignedDemands: make(map[int]assignment),
		SrcPortIDs:      make([]PortID, 1),
		DstPortIDs:      make([]PortID, 1),
		SDXCType:        [2]XCType{srcType, dstType},
		Type:            SCF,
	}
}

// NewMCF constructs a multi-core fiber with CoreFactor independent cores.
func NewMCF(edge ids.Edge, srcType, dstType XCType) *Fiber {
	return &Fiber{
		ID:              NewFiberID(),
		Edge:            edge,
		StateMatrixes:   make([]statematrix.StateMatrix, CoreFactor),
		AssignedDemands: make(map[int]assignment),
		SrcPortIDs:      make([]PortID, CoreFactor),
		DstPortIDs:      make([]PortID, CoreFactor),
		SDXCType:        [2]XCType{srcType, dstType},
		Type:            MCF,
	}
}

// GetCoreNum returns the number of cores this fiber carries.
func (f *Fiber) GetCoreNum() int { return len(f.StateMatrixes) }

// CountUsedSlots returns the total number of occupied slots across every
// core of this fiber.
func (f *Fiber) CountUsedSlots() int {
	total := 0
	for _, m := range f.StateMatrixes {
		total += m.CountUsed()
	}
	return total
}

// TotalSlots returns the total slot capacity across every core of this fiber.
func (f *Fiber) TotalSlots() int {
	return len(f.StateMatrixes) * statematrix.Slots
}

// IsFull reports whether every core of this fiber has no contiguous
// single-slot run free.
func (f *Fiber) IsFull() bool {
	for _, m := range f.StateMatrixes {
		if m.HasEmptyRun(1) {
			return false
		}
	}
	return true
}

// Assign occupies [start, start+width) on the given core for demandID. It
// returns ErrDemandAlreadyAssigned if demandID already holds slots on this
// fiber, or ErrSlotOccupied if the requested range is not entirely free.
func (f *Fiber) Assign(start, width int, core CoreIndex, demandID int) error {
	if _, exists := f.AssignedDemands[demandID]; exists {
		return ErrDemandAlreadyAssigned
	}
	m := &f.StateMatrixes[core]
	if !m.AreSlotsEmpty(start, width) {
		return ErrSlotOccupied
	}
	for i := start; i < start+width; i++ {
		m[i] = true
	}
	f.AssignedDemands[demandID] = assignment{core: core, start: start, width: width}
	return nil
}

// Delete releases the slots previously assigned to demandID. It returns
// ErrDemandNotAssigned if demandID holds nothing on this fiber, or
// ErrSlotNotAssigned if the recorded range is not entirely occupied
// (indicating the caller's bookkeeping has drifted from the fiber state).
func (f *Fiber) Delete(demandID int) error {
	a, exists := f.AssignedDemands[demandID]
	if !exists {
		return ErrDemandNotAssigned
	}
	m := &f.StateMatrixes[a.core]
	if !m.AreSlotsFull(a.start, a.width) {
		return ErrSlotNotAssigned
	}
	for i := a.start; i < a.start+a.width; i++ {
		m[i] = false
	}
	delete(f.AssignedDemands, demandID)
	return nil
}

// WavebandEmpty reports whether every slot within wb's range is free on
// the given core.
func (f *Fiber) WavebandEmpty(core CoreIndex, wb statematrix.WBIndex) bool {
	lo, hi := wb.SlotRange()
	return f.StateMatrixes[core].AreSlotsEmpty(lo, hi-lo)
}

// UnusedCores returns the cores on which the fiber has no assigned demand
// at all, used by the spatial-cross-connect expander to pick a core to
// reuse before laying a new fiber.
func (f *Fiber) UnusedCores() []CoreIndex {
	var out []CoreIndex
	for i, m := range f.StateMatrixes {
		if m.IsEmpty() {
			out = append(out, CoreIndex(i))
		}
	}
	return out
}
