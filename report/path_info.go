package report

import (
	"fmt"
	"io"

	"github.com/optrans/layernet/demand"
	"github.com/optrans/layernet/network"
)

// WritePathInfo renders, per demand in index order, the assigned fiber
// sequence, slot head/width and core indices -- a full account of every
// lightpath the design produced.
func WritePathInfo(w io.Writer, demands []demand.Demand, n *network.Network) error {
	for _, d := range demands {
		if len(d.FiberIDs) == 0 {
			if _, err := fmt.Fprintf(w, "demand=%d\tsd=%s\tunassigned\n", d.Index, d.SD); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "demand=%d\tsd=%s\tslot=%d\twidth=%d\tfibers=", d.Index, d.SD, d.SlotHeads[0], d.SlotWidth); err != nil {
			return err
		}
		for i, fid := range d.FiberIDs {
			if i > 0 {
				if _, err := fmt.Fprint(w, ","); err != nil {
					return err
				}
			}
			edge := "?"
			if f, err := n.GetFiberByID(fid); err == nil {
				edge = f.Edge.String()
			}
			core := network.CoreIndex(0)
			if i < len(d.CoreIndices) {
				core = d.CoreIndices[i]
			}
			if _, err := fmt.Fprintf(w, "%s(core=%d)", edge, core); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
