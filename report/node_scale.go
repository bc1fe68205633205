package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/optrans/layernet/network"
)

// WriteNodeScale renders, per node, the XC.Size() of every cross-connect
// device registered there, plus the plant-wide maximum Wxc/AddedWxc size --
// the single number (calc_max_wxc_size in the reference implementation)
// that upper-bounds how large a wavelength switch the design requires any
// node to host.
func WriteNodeScale(w io.Writer, n *network.Network) error {
	xcs := n.XCs()
	sort.SliceStable(xcs, func(i, j int) bool {
		if xcs[i].Node != xcs[j].Node {
			return xcs[i].Node < xcs[j].Node
		}
		return xcs[i].Type < xcs[j].Type
	})

	maxWxcSize := 0
	for _, xc := range xcs {
		if _, err := fmt.Fprintf(w, "node=%d\tkind=%s\tsize=%d\n", xc.Node, xc.Type, xc.Size()); err != nil {
			return err
		}
		if (xc.Type == network.Wxc || xc.Type == network.AddedWxc) && xc.Size() > maxWxcSize {
			maxWxcSize = xc.Size()
		}
	}
	_, err := fmt.Fprintf(w, "max_wxc_size\t%d\n", maxWxcSize)
	return err
}
