package network

import (
	"sort"

	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/statematrix"
)

// wbConn is a (input port, waveband) key into a Wbxc's switching table.
type wbConn struct {
	in PortID
	wb statematrix.WBIndex
}

// XC is a single cross-connect device sitting at one node, at one switching
// granularity. A node may host up to one XC per XCType; Network.XCOnNode
// creates them lazily.
type XC struct {
	ID   XCID
	Node ids.Node
	Type XCType

	inputDevices  map[PortID]struct{}
	outputDevices map[PortID]struct{}

	// routes holds the Fxc/Sxc switching table: input port -> output port.
	// Unused (left empty) for Wxc/AddedWxc (trivially always routable) and
	// for Wbxc (which routes per-waveband via wbRoutes instead).
	routes map[PortID]PortID

	// wbRoutes holds the Wbxc switching table: (input port, waveband) ->
	// output port.
	wbRoutes map[wbConn]PortID
}

// NewXC constructs an XC device of the given type at node. Use
// Network.XCOnNode rather than calling this directly outside the network
// package: Network owns XC registration and the port->XC reverse index.
func NewXC(node ids.Node, xcType XCType) *XC {
	return &XC{
		ID:            NewXCID(),
		Node:          node,
		Type:          xcType,
		inputDevices:  make(map[PortID]struct{}),
		outputDevices: make(map[PortID]struct{}),
		routes:        make(map[PortID]PortID),
		wbRoutes:      make(map[wbConn]PortID),
	}
}

// Size returns the larger of the input and output device counts, the
// conventional "how big is this XC" figure used in reporting.
func (xc *XC) Size() int {
	in, out := len(xc.inputDevices), len(xc.outputDevices)
	if in > out {
		return in
	}
	return out
}

// GenerateNewDevice allocates a fresh port on xc, registers it as an input
// or output device, and returns its PortID. The caller is responsible for
// also registering the PortID->XC reverse index on the owning Network.
func (xc *XC) GenerateNewDevice(isInput bool) PortID {
	p := NewPortID()
	if isInput {
		xc.inputDevices[p] = struct{}{}
	} else {
		xc.outputDevices[p] = struct{}{}
	}
	return p
}

// RemoveDevice drops p from both the input and output device sets.
func (xc *XC) RemoveDevice(p PortID) {
	delete(xc.inputDevices, p)
	delete(xc.outputDevices, p)
}

// HasInputDevice reports whether p is registered as an input device.
func (xc *XC) HasInputDevice(p PortID) bool {
	_, ok := xc.inputDevices[p]
	return ok
}

// HasOutputDevice reports whether p is registered as an output device.
func (xc *XC) HasOutputDevice(p PortID) bool {
	_, ok := xc.outputDevices[p]
	return ok
}

// CanRoute reports whether xc can switch traffic from in to out. Wxc and
// AddedWxc devices can always route (they switch one slot independently of
// any other slot and carry no cross-port blocking). Fxc and Sxc devices
// consult their switching table. Wbxc devices route per-waveband: call
// CanRouteWaveband instead; CanRoute on a Wbxc returns ErrRouteUnsupported.
func (xc *XC) CanRoute(in, out PortID) (bool, error) {
	switch xc.Type {
	case Wxc, AddedWxc:
		return true, nil
	case Fxc, Sxc:
		got, ok := xc.routes[in]
		return ok && got == out, nil
	default:
		return false, ErrRouteUnsupported
	}
}

// CanRouteWaveband reports whether a Wbxc device can switch waveband wb
// from in to out. It is an error to call this on any other XCType.
func (xc *XC) CanRouteWaveband(in, out PortID, wb statematrix.WBIndex) (bool, error) {
	if xc.Type != Wbxc {
		return false, ErrRouteUnsupported
	}
	got, ok := xc.wbRoutes[wbConn{in: in, wb: wb}]
	return ok && got == out, nil
}

// GetRoute returns the output port that in is switched to, for Fxc/Sxc
// devices. It is an error to call this on Wxc/AddedWxc (routing is
// per-slot, not per-device) or on Wbxc (use GetRouteWaveband).
func (xc *XC) GetRoute(in PortID) (PortID, error) {
	switch xc.Type {
	case Fxc, Sxc:
		out, ok := xc.routes[in]
		if !ok {
			return NilPortID, ErrPortNotConnected
		}
		return out, nil
	default:
		return NilPortID, ErrRouteUnsupported
	}
}

// GetRouteWaveband returns the output port that in is switched to for
// waveband wb, for Wbxc devices only.
func (xc *XC) GetRouteWaveband(in PortID, wb statematrix.WBIndex) (PortID, error) {
	if xc.Type != Wbxc {
		return NilPortID, ErrRouteUnsupported
	}
	out, ok := xc.wbRoutes[wbConn{in: in, wb: wb}]
	if !ok {
		return NilPortID, ErrPortNotConnected
	}
	return out, nil
}

// ConnectIO installs an in->out switching entry on an Fxc/Sxc device. Fails
// if either port already participates in an entry, so no two inputs are
// ever routed to the same physical output.
func (xc *XC) ConnectIO(in, out PortID) error {
	if xc.Type != Fxc && xc.Type != Sxc {
		return ErrRouteUnsupported
	}
	if _, exists := xc.routes[in]; exists {
		return ErrPortAlreadyConnected
	}
	for _, v := range xc.routes {
		if v == out {
			return ErrPortAlreadyConnected
		}
	}
	xc.routes[in] = out
	return nil
}

// DisconnectIO removes an in->out switching entry from an Fxc/Sxc device.
func (xc *XC) DisconnectIO(in, out PortID) error {
	if xc.Type != Fxc && xc.Type != Sxc {
		return ErrRouteUnsupported
	}
	got, ok := xc.routes[in]
	if !ok || got != out {
		return ErrPortNotConnected
	}
	delete(xc.routes, in)
	return nil
}

// ConnectIOWaveband installs an in->out switching entry for waveband wb on
// a Wbxc device. Fails if either port already participates in an entry for
// wb, so no two inputs are ever routed to the same physical output.
func (xc *XC) ConnectIOWaveband(in, out PortID, wb statematrix.WBIndex) error {
	if xc.Type != Wbxc {
		return ErrRouteUnsupported
	}
	key := wbConn{in: in, wb: wb}
	if _, exists := xc.wbRoutes[key]; exists {
		return ErrPortAlreadyConnected
	}
	if xc.IsOutputWBOccupied(out, wb) {
		return ErrPortAlreadyConnected
	}
	xc.wbRoutes[key] = out
	return nil
}

// DisconnectIOWaveband removes an in->out switching entry for waveband wb
// from a Wbxc device.
func (xc *XC) DisconnectIOWaveband(in, out PortID, wb statematrix.WBIndex) error {
	if xc.Type != Wbxc {
		return ErrRouteUnsupported
	}
	key := wbConn{in: in, wb: wb}
	got, ok := xc.wbRoutes[key]
	if !ok || got != out {
		return ErrPortNotConnected
	}
	delete(xc.wbRoutes, key)
	return nil
}

// IsInputWBOccupied reports whether in already has a waveband-routing
// entry for wb, used by the waveband-bypass expander to decide whether an
// existing Wbxc-facing port can be reused for a new bypass on the same
// waveband.
func (xc *XC) IsInputWBOccupied(in PortID, wb statematrix.WBIndex) bool {
	_, ok := xc.wbRoutes[wbConn{in: in, wb: wb}]
	return ok
}

// IsOutputWBOccupied reports whether out is already the destination of a
// waveband-routing entry for wb from some input port.
func (xc *XC) IsOutputWBOccupied(out PortID, wb statematrix.WBIndex) bool {
	for k, v := range xc.wbRoutes {
		if v == out && k.wb == wb {
			return true
		}
	}
	return false
}

// InputDevices returns the registered input ports in a deterministic
// (string-sorted) order, for reproducible iteration by callers that must
// not depend on Go's randomized map order.
func (xc *XC) InputDevices() []PortID {
	return sortedPorts(xc.inputDevices)
}

// OutputDevices returns the registered output ports in a deterministic
// (string-sorted) order.
func (xc *XC) OutputDevices() []PortID {
	return sortedPorts(xc.outputDevices)
}

func sortedPorts(set map[PortID]struct{}) []PortID {
	out := make([]PortID, 0, len(set))
	for p := range set {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}
