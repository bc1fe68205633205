package demand_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/demand"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/topology"
)

func lineTopology(t *testing.T) *topology.Topology {
	t.Helper()
	matrix := [][]bool{
		{false, true, false},
		{false, false, true},
		{false, false, false},
	}
	topo, err := topology.New("line", matrix)
	require.NoError(t, err)
	return topo
}

func TestSynthesizeIsDeterministic(t *testing.T) {
	topo := lineTopology(t)
	p := config.Default()
	p.Simulation.TrafficIntensity = 1.0
	p.Simulation.RandomSeed = 7

	a, err := demand.Synthesize(p, topo)
	require.NoError(t, err)
	b, err := demand.Synthesize(p, topo)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSynthesizeProducesExpectedCount(t *testing.T) {
	topo := lineTopology(t)
	p := config.Default()
	p.Simulation.TrafficIntensity = 2.0
	p.Simulation.RandomSeed = 1

	demands, err := demand.Synthesize(p, topo)
	require.NoError(t, err)
	require.Len(t, demands, int(2.0*3*2))
}

func TestSynthesizeNeverPairsANodeWithItself(t *testing.T) {
	topo := lineTopology(t)
	p := config.Default()
	p.Simulation.TrafficIntensity = 1.0
	p.Simulation.RandomSeed = 3

	demands, err := demand.Synthesize(p, topo)
	require.NoError(t, err)
	for _, d := range demands {
		require.NotEqual(t, d.SD.Src, d.SD.Dst)
	}
}

func TestSynthesizeMissingDistributionFileErrors(t *testing.T) {
	topo := lineTopology(t)
	p := config.Default()
	p.Traffic.DistributionPath = "/nonexistent/traffic.csv"

	_, err := demand.Synthesize(p, topo)
	require.Error(t, err)
}

func TestNewDemandComputesEndTime(t *testing.T) {
	d := demand.New(ids.NewSD(0, 1), 5, 100, 50)
	require.Equal(t, 150, d.EndTime)
	require.Equal(t, 5, d.Index)
}

func TestResetClearsAssignment(t *testing.T) {
	d := demand.New(ids.NewSD(0, 1), 0, 0, 10)
	d.SlotWidth = 4
	d.SlotHeads = []int{1, 2}
	d.Reset()
	require.Nil(t, d.FiberIDs)
	require.Nil(t, d.SlotHeads)
	require.Zero(t, d.SlotWidth)
}
