package network

import "github.com/google/uuid"

// FiberID uniquely identifies a Fiber within a Network.
type FiberID uuid.UUID

// NewFiberID mints a fresh, globally unique FiberID.
func NewFiberID() FiberID { return FiberID(uuid.New()) }

func (id FiberID) String() string { return uuid.UUID(id).String() }

// XCID uniquely identifies a cross-connect device within a Network.
type XCID uuid.UUID

// NewXCID mints a fresh, globally unique XCID.
func NewXCID() XCID { return XCID(uuid.New()) }

func (id XCID) String() string { return uuid.UUID(id).String() }

// PortID uniquely identifies a single port of a cross-connect device.
type PortID uuid.UUID

// NewPortID mints a fresh, globally unique PortID.
func NewPortID() PortID { return PortID(uuid.New()) }

// NilPortID is the zero PortID, used as a "no port yet" placeholder while
// stitching a bypass chain together one hop at a time.
var NilPortID = PortID(uuid.Nil)

// IsNil reports whether id is the zero PortID.
func (id PortID) IsNil() bool { return id == NilPortID }

func (id PortID) String() string { return uuid.UUID(id).String() }

// CoreIndex identifies one core of a (possibly multi-core) fiber.
type CoreIndex int

// CoreFactor is the number of cores a multi-core fiber carries.
const CoreFactor = 4

// AllCores enumerates 0..CoreFactor-1.
func AllCores() []CoreIndex {
	out := make([]CoreIndex, CoreFactor)
	for i := range out {
		out[i] = CoreIndex(i)
	}
	return out
}
