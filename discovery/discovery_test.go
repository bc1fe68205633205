package discovery_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/demand"
	"github.com/optrans/layernet/discovery"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

// lineNetwork builds a 0-1-2 Wxc-Wxc baseline, matching expander_test's
// helper topology.
func lineNetwork() *network.Network {
	n := network.New(0)
	for _, e := range []ids.Edge{ids.NewEdge(0, 1), ids.NewEdge(1, 2)} {
		f := network.NewSCF(e, network.Wxc, network.Wxc)
		f.Initial = true
		n.RegisterFiber(f)
	}
	return n
}

func TestFindEmergentSDsFindsRecurringSpan(t *testing.T) {
	n := lineNetwork()
	f01 := n.GetFiberIDsOnEdge(ids.NewEdge(0, 1))[0]
	f12 := n.GetFiberIDsOnEdge(ids.NewEdge(1, 2))[0]

	demands := []demand.Demand{
		{SD: ids.NewSD(0, 2), FiberIDs: []network.FiberID{f01, f12}},
		{SD: ids.NewSD(0, 2), FiberIDs: []network.FiberID{f01, f12}},
	}

	sds := discovery.FindEmergentSDs(n, demands, nil, [2]network.XCType{network.Wxc, network.Fxc}, 2)
	require.Equal(t, []ids.SD{ids.NewSD(0, 2)}, sds)
}

func TestFindEmergentSDsFiltersTaboo(t *testing.T) {
	n := lineNetwork()
	f01 := n.GetFiberIDsOnEdge(ids.NewEdge(0, 1))[0]
	f12 := n.GetFiberIDsOnEdge(ids.NewEdge(1, 2))[0]

	demands := []demand.Demand{
		{SD: ids.NewSD(0, 2), FiberIDs: []network.FiberID{f01, f12}},
	}

	sds := discovery.FindEmergentSDs(n, demands, []ids.SD{ids.NewSD(0, 2)}, [2]network.XCType{network.Wxc, network.Fxc}, 2)
	require.Empty(t, sds)
}

func TestFindEmergentSDsSkipsSingleFiberSpans(t *testing.T) {
	n := lineNetwork()
	f01 := n.GetFiberIDsOnEdge(ids.NewEdge(0, 1))[0]

	demands := []demand.Demand{
		{SD: ids.NewSD(0, 1), FiberIDs: []network.FiberID{f01}},
	}

	sds := discovery.FindEmergentSDs(n, demands, nil, [2]network.XCType{network.Wxc, network.Fxc}, 2)
	require.Empty(t, sds)
}

func TestFindEmergentSDsSkipsAlreadyBypassedSpan(t *testing.T) {
	n := lineNetwork()
	f01 := n.RegisterFiber(network.NewSCF(ids.NewEdge(0, 1), network.Wxc, network.Fxc))
	f12 := n.RegisterFiber(network.NewSCF(ids.NewEdge(1, 2), network.Fxc, network.Wxc))
	xc, err := n.GetXCOnNode(1, network.Fxc)
	require.NoError(t, err)
	require.NoError(t, xc.ConnectIO(f01.DstPortIDs[0], f12.SrcPortIDs[0]))

	demands := []demand.Demand{
		{SD: ids.NewSD(0, 2), FiberIDs: []network.FiberID{f01.ID, f12.ID}},
	}

	sds := discovery.FindEmergentSDs(n, demands, nil, [2]network.XCType{network.Wxc, network.Fxc}, 2)
	require.Empty(t, sds)
}

func TestFindMostFrequentSDPicksHighestCount(t *testing.T) {
	n := lineNetwork()
	f01 := n.GetFiberIDsOnEdge(ids.NewEdge(0, 1))[0]
	f12 := n.GetFiberIDsOnEdge(ids.NewEdge(1, 2))[0]

	demands := []demand.Demand{
		{SD: ids.NewSD(0, 2), FiberIDs: []network.FiberID{f01, f12}},
		{SD: ids.NewSD(0, 2), FiberIDs: []network.FiberID{f01, f12}},
		{SD: ids.NewSD(0, 2), FiberIDs: []network.FiberID{f01, f12}},
	}

	sd, ok := discovery.FindMostFrequentSD(n, demands, nil, [2]network.XCType{network.Wxc, network.Fxc})
	require.True(t, ok)
	require.Equal(t, ids.NewSD(0, 2), sd)
}

func TestFindMostFrequentSDNoneWhenAllTaboo(t *testing.T) {
	n := lineNetwork()
	f01 := n.GetFiberIDsOnEdge(ids.NewEdge(0, 1))[0]
	f12 := n.GetFiberIDsOnEdge(ids.NewEdge(1, 2))[0]

	demands := []demand.Demand{
		{SD: ids.NewSD(0, 2), FiberIDs: []network.FiberID{f01, f12}},
	}

	_, ok := discovery.FindMostFrequentSD(n, demands, []ids.SD{ids.NewSD(0, 2)}, [2]network.XCType{network.Wxc, network.Fxc})
	require.False(t, ok)
}
