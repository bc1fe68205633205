package report

import (
	"fmt"
	"io"

	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/topology"
)

// WriteEdgesAdvanced renders two groups of edge sequences: first every
// plain topology edge (the Wxc-Wxc baseline plant), then every bypass
// chain's edge sequence from n.Export(), one sequence per line -- the
// doubled view (plain edges vs. bypass-collapsed edges) the reference
// implementation's get_edges_advanced_double produces.
func WriteEdgesAdvanced(w io.Writer, n *network.Network, topo *topology.Topology) error {
	for _, e := range topo.Edges {
		if _, err := fmt.Fprintf(w, "wxc\t%s\n", e); err != nil {
			return err
		}
	}
	for _, rb := range n.Export() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", rb.Class, edgesString(rb.Edges)); err != nil {
			return err
		}
	}
	return nil
}
