package designer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/designer"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/topology"
)

func lineMatrix(n int) [][]bool {
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	for i := 0; i < n-1; i++ {
		m[i][i+1] = true
		m[i+1][i] = true
	}
	return m
}

func ringMatrix(n int) [][]bool {
	m := lineMatrix(n)
	m[0][n-1] = true
	m[n-1][0] = true
	return m
}

func baseParams(topoName string) config.Params {
	p := config.Default()
	p.Network.Topology = topoName
	p.Simulation.TrafficIntensity = 1.0
	return p
}

func TestRunTwoNodeBaselineOnly(t *testing.T) {
	topo, err := topology.New("pair", lineMatrix(2))
	require.NoError(t, err)

	p := baseParams("pair")
	result, err := designer.Run(p, topo)
	require.NoError(t, err)
	require.NotNil(t, result)

	breakdown := result.Network.FiberBreakdown()
	require.Equal(t, 1, len(breakdown))
	require.Contains(t, breakdown, [2]network.XCType{network.Wxc, network.Wxc})
}

func TestRunThreeNodeLineFxcAssignsEveryDemand(t *testing.T) {
	topo, err := topology.New("line3", lineMatrix(3))
	require.NoError(t, err)

	p := baseParams("line3")
	p.Network.NodeConfiguration = config.NodeFXC
	p.Network.FiberIncreaseRateLimit = 10

	result, err := designer.Run(p, topo)
	require.NoError(t, err)
	require.NotNil(t, result)
	for _, d := range result.Demands {
		require.NotEmpty(t, d.FiberIDs)
	}
}

func TestRunWbxcConfigurationAssignsEveryDemand(t *testing.T) {
	topo, err := topology.New("line3wb", lineMatrix(3))
	require.NoError(t, err)

	p := baseParams("line3wb")
	p.Network.NodeConfiguration = config.NodeWBXC
	p.Network.FiberIncreaseRateLimit = 10

	result, err := designer.Run(p, topo)
	require.NoError(t, err)
	for _, d := range result.Demands {
		require.NotEmpty(t, d.FiberIDs)
	}
}

func TestRunRejectsZeroToleranceWithoutCrashing(t *testing.T) {
	topo, err := topology.New("ring4", ringMatrix(4))
	require.NoError(t, err)

	p := baseParams("ring4")
	p.Network.NodeConfiguration = config.NodeFXC
	p.Network.FiberIncreaseRateLimit = 0

	result, err := designer.Run(p, topo)
	require.NoError(t, err)
	require.NotNil(t, result)
}

func TestRunIsDeterministicForIdenticalSeeds(t *testing.T) {
	topo, err := topology.New("ring4b", ringMatrix(4))
	require.NoError(t, err)

	p := baseParams("ring4b")
	p.Network.NodeConfiguration = config.NodeFXC
	p.Network.FiberIncreaseRateLimit = 1
	p.Simulation.RandomSeed = 42

	first, err := designer.Run(p, topo)
	require.NoError(t, err)
	second, err := designer.Run(p, topo)
	require.NoError(t, err)

	require.Equal(t, first.Network.FiberBreakdown(), second.Network.FiberBreakdown())
	require.Equal(t, len(first.Demands), len(second.Demands))
}

func TestRunBestModeReturnsResult(t *testing.T) {
	topo, err := topology.New("ring4c", ringMatrix(4))
	require.NoError(t, err)

	p := baseParams("ring4c")
	p.Network.NodeConfiguration = config.NodeFXC
	p.Network.FiberIncreaseRateLimit = 1
	p.Network.DesignMode = config.ModeBest
	p.Network.MeanTrials = 4

	result, err := designer.Run(p, topo)
	require.NoError(t, err)
	require.NotNil(t, result)
}
