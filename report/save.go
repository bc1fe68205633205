package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/optrans/layernet/demand"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/topology"
)

// artifact pairs a filename with the writer that fills it.
type artifact struct {
	name  string
	write func(f *os.File) error
}

// SaveAll writes every artifact named in the external interface contract
// into dir, creating dir if needed. It is the sole place this module
// touches the filesystem directly: resolving dir from configuration,
// timestamping it, or invoking a plotting script over its contents remain
// external collaborators (see doc.go).
func SaveAll(dir string, n *network.Network, topo *topology.Topology, demands []demand.Demand) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("report: creating output dir %q: %w", dir, err)
	}

	artifacts := []artifact{
		{"fiber_breakdown.txt", func(f *os.File) error { return WriteFiberBreakdown(f, n) }},
		{"fiber_breakdown_on_each_link.txt", func(f *os.File) error { return WriteFiberBreakdownOnEachLink(f, n) }},
		{"wxc_port_pass_count.txt", func(f *os.File) error { return WriteWxcPortPassCount(f, n) }},
		{"network_info.txt", func(f *os.File) error { return WriteNetworkInfo(f, n, topo) }},
		{"mcf_stats.txt", func(f *os.File) error { return WriteMCFStats(f, n) }},
		{"path_info.txt", func(f *os.File) error { return WritePathInfo(f, demands, n) }},
		{"node_scale.txt", func(f *os.File) error { return WriteNodeScale(f, n) }},
		{"_edges_advanced.txt", func(f *os.File) error { return WriteEdgesAdvanced(f, n, topo) }},
	}

	for _, a := range artifacts {
		if err := writeArtifact(dir, a); err != nil {
			return err
		}
	}
	return nil
}

func writeArtifact(dir string, a artifact) error {
	path := filepath.Join(dir, a.name)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("report: creating %q: %w", path, err)
	}
	defer f.Close()

	if err := a.write(f); err != nil {
		return fmt.Errorf("report: writing %q: %w", path, err)
	}
	return nil
}
