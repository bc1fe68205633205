package report

import (
	"fmt"
	"io"

	"github.com/optrans/layernet/network"
)

// WriteMCFStats renders, for every multi-core fiber in the plant, its core
// count alongside the number of cores with at least one assigned demand --
// the quantity an Sxc bypass is meant to shrink (several logical bypasses
// sharing the cores of one physical fiber rather than each claiming its own).
func WriteMCFStats(w io.Writer, n *network.Network) error {
	for _, f := range n.Fibers() {
		if f.Type != network.MCF {
			continue
		}
		used := f.GetCoreNum() - len(f.UnusedCores())
		if _, err := fmt.Fprintf(w, "fiber=%s\tedge=%s\tcores=%d\tused=%d\n", f.ID, f.Edge, f.GetCoreNum(), used); err != nil {
			return err
		}
	}
	return nil
}
