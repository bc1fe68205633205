package expander

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

// ExpandFibersWithXCTypes lays the fiber plant for a bypass of the given
// [top-layer, bypass-layer] XCType pair over target, dispatching to the
// matching expander. It is the authoritative set of supported
// combinations: anything else returns ErrUnsupportedExpansion rather than
// silently doing nothing.
func ExpandFibersWithXCTypes(n *network.Network, target []ids.Edge, xcTypes [2]network.XCType) ([]*network.Fiber, error) {
	switch xcTypes {
	case [2]network.XCType{network.Wxc, network.Fxc}:
		return ExpandFxc(n, target)
	case [2]network.XCType{network.Wxc, network.Sxc}:
		return ExpandSxc(n, target)
	case [2]network.XCType{network.Wxc, network.Wbxc}:
		return ExpandWbxc(n, target)
	case [2]network.XCType{network.Wxc, network.Wxc}:
		return ExpandWxc(n, target), nil
	default:
		return nil, ErrUnsupportedExpansion
	}
}
