package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/designer"
	"github.com/optrans/layernet/report"
	"github.com/optrans/layernet/topology"
)

func lineTopology(t *testing.T, n int) *topology.Topology {
	t.Helper()
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	for i := 0; i < n-1; i++ {
		m[i][i+1] = true
		m[i+1][i] = true
	}
	topo, err := topology.New("line", m)
	require.NoError(t, err)
	return topo
}

func runDesigner(t *testing.T, n int) *designer.Result {
	t.Helper()
	topo := lineTopology(t, n)
	p := config.Default()
	p.Network.Topology = topo.Name
	result, err := designer.Run(p, topo)
	require.NoError(t, err)
	return result
}

func TestWriteFiberBreakdownProducesOneLinePerChain(t *testing.T) {
	result := runDesigner(t, 3)
	var buf bytes.Buffer
	require.NoError(t, report.WriteFiberBreakdown(&buf, result.Network))
	// Either no bypass formed (empty output) or every line has 3 fields.
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		require.Len(t, fields, 3)
	}
}

func TestWriteNetworkInfoReportsNodeAndEdgeCounts(t *testing.T) {
	topo := lineTopology(t, 3)
	p := config.Default()
	p.Network.Topology = topo.Name
	result, err := designer.Run(p, topo)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteNetworkInfo(&buf, result.Network, topo))
	out := buf.String()
	require.Contains(t, out, "nodes\t3")
	require.Contains(t, out, "edges\t4")
}

func TestWriteWxcPortPassCountOnlyListsWxcDevices(t *testing.T) {
	result := runDesigner(t, 3)
	var buf bytes.Buffer
	require.NoError(t, report.WriteWxcPortPassCount(&buf, result.Network))
	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		if line == "" {
			continue
		}
		require.True(t, strings.Contains(line, "kind=Wxc") || strings.Contains(line, "kind=AddedWxc"))
	}
}

func TestWritePathInfoCoversEveryDemand(t *testing.T) {
	result := runDesigner(t, 3)
	var buf bytes.Buffer
	require.NoError(t, report.WritePathInfo(&buf, result.Demands, result.Network))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(result.Demands))
}

func TestWriteNodeScaleReportsMaxWxcSize(t *testing.T) {
	result := runDesigner(t, 3)
	var buf bytes.Buffer
	require.NoError(t, report.WriteNodeScale(&buf, result.Network))
	require.Contains(t, buf.String(), "max_wxc_size\t")
}

// TestExportIsDeterministic re-runs the same design twice with identical
// seed and config and requires the resulting bypass breakdowns to be
// structurally identical, per the determinism scenario in the
// specification's testable properties.
func TestExportIsDeterministic(t *testing.T) {
	topoA := lineTopology(t, 4)
	topoB := lineTopology(t, 4)
	p := config.Default()
	p.Network.Topology = topoA.Name

	resultA, err := designer.Run(p, topoA)
	require.NoError(t, err)
	resultB, err := designer.Run(p, topoB)
	require.NoError(t, err)

	breakdownA := resultA.Network.Export()
	breakdownB := resultB.Network.Export()
	if diff := cmp.Diff(breakdownA, breakdownB); diff != "" {
		t.Fatalf("two runs with identical seed/config diverged (-runA +runB):\n%s", diff)
	}
}

func TestSaveAllWritesEveryArtifact(t *testing.T) {
	result := runDesigner(t, 3)
	topo := lineTopology(t, 3)
	dir := t.TempDir()
	require.NoError(t, report.SaveAll(dir, result.Network, topo, result.Demands))

	for _, name := range []string{
		"fiber_breakdown.txt",
		"fiber_breakdown_on_each_link.txt",
		"wxc_port_pass_count.txt",
		"network_info.txt",
		"mcf_stats.txt",
		"path_info.txt",
		"node_scale.txt",
		"_edges_advanced.txt",
	} {
		require.FileExists(t, dir+"/"+name)
	}
}
