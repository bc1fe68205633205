// Package expander lays the new fiber plant a bypass decision calls for:
// given a chain of topology edges and the [top-layer, bypass-layer]
// XCType pair the designer decided to install, it builds (or reuses) the
// fibers along that chain and stitches them together through the
// intermediate cross-connects' switching tables.
//
// Wxc -> Fxc and Wxc -> Sxc bypasses are opaque: once installed, the whole
// chain behaves as a single hop from the path finder's point of view.
// Wxc -> Wbxc bypasses are narrower: only the chosen waveband is switched
// through, so the same physical fibers can carry other wavebands routed
// elsewhere. Wxc -> Wxc is the degenerate "just add capacity" case used by
// the designer's growth fallback (the initial per-edge fiber plant is built
// directly with network.NewSCF).
package expander
