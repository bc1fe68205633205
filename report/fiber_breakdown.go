package report

import (
	"fmt"
	"io"

	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

// WriteFiberBreakdown renders n.Export()'s (class, edge sequence) -> count
// table, one bypass chain shape per line, in the order Export discovered
// them (first-seen, which is deterministic given a fixed seed and config).
func WriteFiberBreakdown(w io.Writer, n *network.Network) error {
	for _, rb := range n.Export() {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%d\n", rb.Class, edgesString(rb.Edges), rb.Count); err != nil {
			return err
		}
	}
	return nil
}

// WriteFiberBreakdownOnEachLink renders, for every edge that carries at
// least one fiber (in n.AllEdges order), the count of fibers registered on
// that edge broken down by XCType pair.
func WriteFiberBreakdownOnEachLink(w io.Writer, n *network.Network) error {
	for _, edge := range n.AllEdges() {
		counts := make(map[[2]network.XCType]int)
		var order [][2]network.XCType
		for _, id := range n.GetFiberIDsOnEdge(edge) {
			f, err := n.GetFiberByID(id)
			if err != nil {
				continue
			}
			if _, ok := counts[f.SDXCType]; !ok {
				order = append(order, f.SDXCType)
			}
			counts[f.SDXCType]++
		}
		if _, err := fmt.Fprintf(w, "%s:", edge); err != nil {
			return err
		}
		for _, pair := range order {
			if _, err := fmt.Fprintf(w, " %s-%s=%d", pair[0], pair[1], counts[pair]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func edgesString(edges []ids.Edge) string {
	out := ""
	for i, e := range edges {
		if i > 0 {
			out += ","
		}
		out += e.String()
	}
	return out
}
