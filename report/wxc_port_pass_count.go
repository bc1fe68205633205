package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/optrans/layernet/network"
)

// WriteWxcPortPassCount renders, per node, the number of input and output
// ports allocated on that node's Wxc/AddedWxc device: the count of
// wavelength-granular cross-connections the design actually needed there.
// This is the quantity the whole bypass-discovery engine exists to shrink.
func WriteWxcPortPassCount(w io.Writer, n *network.Network) error {
	xcs := n.XCs()
	sort.SliceStable(xcs, func(i, j int) bool { return xcs[i].Node < xcs[j].Node })

	for _, xc := range xcs {
		if xc.Type != network.Wxc && xc.Type != network.AddedWxc {
			continue
		}
		in, out := len(xc.InputDevices()), len(xc.OutputDevices())
		if _, err := fmt.Fprintf(w, "node=%d\tkind=%s\tin=%d\tout=%d\ttotal=%d\n", xc.Node, xc.Type, in, out, in+out); err != nil {
			return err
		}
	}
	return nil
}
