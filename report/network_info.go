package report

import (
	"fmt"
	"io"

	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/topology"
)

// WriteNetworkInfo renders a short summary of the plant's final shape:
// node/edge counts, total fiber count, and a breakdown of fiber count by
// XCType pair -- the headline numbers a reader checks first.
func WriteNetworkInfo(w io.Writer, n *network.Network, topo *topology.Topology) error {
	if _, err := fmt.Fprintf(w, "nodes\t%d\n", topo.NodeCount()); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "edges\t%d\n", len(topo.Edges)); err != nil {
		return err
	}
	fibers := n.Fibers()
	if _, err := fmt.Fprintf(w, "fibers\t%d\n", len(fibers)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "xcs\t%d\n", len(n.XCs())); err != nil {
		return err
	}

	breakdown := n.FiberBreakdown()
	for _, pair := range fiberTypePairOrder(breakdown) {
		if _, err := fmt.Fprintf(w, "fiber_type\t%s-%s\t%d\n", pair[0], pair[1], breakdown[pair]); err != nil {
			return err
		}
	}
	return nil
}

// fiberTypePairOrder returns the keys of breakdown in a stable order
// (AllXCTypes() x AllXCTypes(), skipping absent pairs) so two runs over the
// same network produce byte-identical output regardless of map iteration.
func fiberTypePairOrder(breakdown map[[2]network.XCType]int) [][2]network.XCType {
	var out [][2]network.XCType
	for _, a := range network.AllXCTypes() {
		for _, b := range network.AllXCTypes() {
			pair := [2]network.XCType{a, b}
			if _, ok := breakdown[pair]; ok {
				out = append(out, pair)
			}
		}
	}
	return out
}
