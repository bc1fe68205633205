package network

import "errors"

// Sentinel errors for the network package. Callers MUST use errors.Is to
// branch on semantics; these are never wrapped with formatted text at the
// definition site.
var (
	// ErrSlotOccupied indicates an Assign targeted slots that are not
	// entirely free on the requested core.
	ErrSlotOccupied = errors.New("network: slot range is occupied")

	// ErrDemandAlreadyAssigned indicates Assign was called twice for the
	// same demand ID on the same fiber without an intervening Delete.
	ErrDemandAlreadyAssigned = errors.New("network: demand already assigned on fiber")

	// ErrDemandNotAssigned indicates Delete targeted a demand ID that was
	// never assigned on this fiber.
	ErrDemandNotAssigned = errors.New("network: demand not assigned on fiber")

	// ErrSlotNotAssigned indicates Delete's slot range does not match what
	// Assign recorded as occupied.
	ErrSlotNotAssigned = errors.New("network: slot range is not fully assigned")

	// ErrFiberNotFound indicates a lookup referenced a FiberID not present
	// in the Network.
	ErrFiberNotFound = errors.New("network: fiber not found")

	// ErrXCNotFound indicates a lookup referenced an XC not present on the
	// requested node/type pair.
	ErrXCNotFound = errors.New("network: xc not found")

	// ErrRouteUnsupported indicates CanRoute/CanRouteWaveband/GetRoute was
	// called against an XCType for which that query is not defined (the
	// Wbxc routing table is per-waveband, not per-port, so CanRoute on a
	// Wbxc device always returns this error; call CanRouteWaveband
	// instead).
	ErrRouteUnsupported = errors.New("network: route query unsupported for this xc type")

	// ErrPortAlreadyConnected indicates ConnectIO/ConnectIOWaveband was
	// called for a port pair that is already present in the connection
	// table.
	ErrPortAlreadyConnected = errors.New("network: ports already connected")

	// ErrPortNotConnected indicates DisconnectIO/DisconnectIOWaveband was
	// called for a port pair absent from the connection table.
	ErrPortNotConnected = errors.New("network: ports not connected")

	// ErrQualityDistanceUndefined indicates QualityDistance was queried for
	// an XCType whose per-port insertion-loss budget has not been
	// characterized (Wbxc, Sxc). Quality distance is carried for future
	// link-budget work but is not consulted by any current routing policy.
	ErrQualityDistanceUndefined = errors.New("network: quality distance undefined for this xc type")
)
