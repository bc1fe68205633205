package network

import (
	"fmt"
	"strings"

	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/statematrix"
)

// EdgeRouteClass categorizes a bypass chain by the granularity it bypasses.
type EdgeRouteClass int

const (
	// RouteClassFiberBypass is a Wxc/AddedWxc -> Fxc opaque bypass: the
	// whole chain is counted once regardless of core.
	RouteClassFiberBypass EdgeRouteClass = iota
	// RouteClassWavebandBypass is a Wxc/AddedWxc -> Wbxc bypass: counted
	// once per waveband the Wbxc table actually routes.
	RouteClassWavebandBypass
	// RouteClassCoreBypass is a Wxc/AddedWxc -> Sxc bypass: counted once
	// per core on which the chain closes back at Wxc/AddedWxc.
	RouteClassCoreBypass
)

func (c EdgeRouteClass) String() string {
	switch c {
	case RouteClassFiberBypass:
		return "fiber"
	case RouteClassWavebandBypass:
		return "waveband"
	case RouteClassCoreBypass:
		return "core"
	default:
		return "unknown"
	}
}

// RouteBreakdown is one (class, edge sequence) -> count entry of an Export
// walk: the edge sequence is the sequence of topology edges (not fiber IDs)
// the bypass chain traverses, so repeated runs of the same design produce
// identical breakdowns even though fiber IDs are freshly minted each time.
type RouteBreakdown struct {
	Class EdgeRouteClass
	Edges []ids.Edge
	Count int
}

// Export tallies every live bypass chain in the network into a breakdown of
// (EdgeRouteClass, edge sequence) -> count, in first-seen order. It is the
// basis for the fiber_breakdown.txt reporting artifact and for determinism
// testing: two runs with identical seed and config must produce the same
// breakdown.
func (n *Network) Export() []RouteBreakdown {
	counts := make(map[string]*RouteBreakdown)
	var order []string

	add := func(class EdgeRouteClass, edges []ids.Edge) {
		key := routeKey(class, edges)
		rb, ok := counts[key]
		if !ok {
			rb = &RouteBreakdown{Class: class, Edges: edges}
			counts[key] = rb
			order = append(order, key)
		}
		rb.Count++
	}

	for _, id := range n.fiberOrder {
		f, ok := n.fibers[id]
		if !ok || !isWxcLike(f.SDXCType[0]) {
			continue
		}
		switch f.SDXCType[1] {
		case Fxc:
			if chain, err := n.GetFiberSequenceCore(id, 0); err == nil {
				add(RouteClassFiberBypass, n.chainEdges(chain))
			}
		case Sxc:
			for _, core := range AllCores() {
				if int(core) >= f.GetCoreNum() {
					continue
				}
				if chain, err := n.GetFiberSequenceCore(id, core); err == nil {
					add(RouteClassCoreBypass, n.chainEdges(chain))
				}
			}
		case Wbxc:
			for _, wb := range statematrix.AllWavebands() {
				if chain, err := n.GetFiberSequenceWb(id, wb); err == nil {
					add(RouteClassWavebandBypass, n.chainEdges(chain))
				}
			}
		}
	}

	out := make([]RouteBreakdown, 0, len(order))
	for _, k := range order {
		out = append(out, *counts[k])
	}
	return out
}

func (n *Network) chainEdges(chain []FiberID) []ids.Edge {
	out := make([]ids.Edge, len(chain))
	for i, id := range chain {
		out[i] = n.fibers[id].Edge
	}
	return out
}

func routeKey(class EdgeRouteClass, edges []ids.Edge) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d:", class)
	for _, e := range edges {
		fmt.Fprintf(&b, "%d-%d,", e.Src, e.Dst)
	}
	return b.String()
}
