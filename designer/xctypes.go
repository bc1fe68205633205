package designer

import (
	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/network"
)

// xcTypesFor returns the [top-layer, bypass-layer] XCType pair a given
// node configuration expands into. The top layer is always Wxc: every
// bypass kind the expander supports stitches a span of plain Wxc-Wxc
// fibers into a single lower-granularity device chain.
func xcTypesFor(nc config.NodeConfiguration) [2]network.XCType {
	switch nc {
	case config.NodeSXC:
		return [2]network.XCType{network.Wxc, network.Sxc}
	case config.NodeWBXC:
		return [2]network.XCType{network.Wxc, network.Wbxc}
	default:
		return [2]network.XCType{network.Wxc, network.Fxc}
	}
}
