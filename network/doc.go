// Package network models the physical plant of the optical layer: fibers,
// the cross-connect (XC) devices that terminate them, and the Network
// registry that owns both and answers the topology-shaped queries the
// pathfinder, expander and designer packages need.
//
// Ownership is flat and ID-based, not a pointer tree: Fiber, XC and port
// values are identified by stable IDs stored in maps owned by Network.
// There are no parent pointers from a Fiber back to the XC it terminates
// into; navigating "which XC does this port belong to" always goes through
// Network's port->XC reverse index. This keeps Fiber and XC values cheap to
// clone (the iterative designer snapshots the whole Network per trial) and
// keeps cycles out of the object graph entirely.
//
// XC granularity follows a strict containment hierarchy: a Wxc (wavelength
// cross-connect) switches one slot at a time; a Wbxc (waveband
// cross-connect) switches a whole waveband; an Fxc (fiber cross-connect)
// switches an entire fiber core; an Sxc (spatial cross-connect) switches
// across cores of a multi-core fiber. AddedWxc is a Wxc-granularity
// kind, equivalent to Wxc for every routing purpose but tracked separately
// for reporting; no expander in this module creates fibers ending in it.
package network
