package pathfinder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/pathfinder"
	"github.com/optrans/layernet/topology"
)

func lineNetwork() *network.Network {
	n := network.New(1)
	for _, e := range []ids.Edge{ids.NewEdge(0, 1), ids.NewEdge(1, 2)} {
		f := network.NewSCF(e, network.Wxc, network.Wxc)
		f.Initial = true
		n.RegisterFiber(f)
	}
	return n
}

func lineTopology(t *testing.T) *topology.Topology {
	topo, err := topology.New("line", [][]bool{
		{false, true, false},
		{true, false, true},
		{false, true, false},
	})
	require.NoError(t, err)
	return topo
}

func TestSearchFFFindsDirectRoute(t *testing.T) {
	n := lineNetwork()
	topo := lineTopology(t)

	ins, err := pathfinder.Search(config.PolicyFF, ids.NewSD(0, 2), topo, n)
	require.NoError(t, err)
	require.Len(t, ins.FiberIDs, 2)
	require.Equal(t, 1, ins.Width)
	require.Equal(t, []int{0, 0}, ins.SlotHeads)
}

func TestSearchFFSkipsFullFiberOnFirstHop(t *testing.T) {
	n := lineNetwork()
	topo := lineTopology(t)

	fibers := n.GetFiberIDsOnEdge(ids.NewEdge(0, 1))
	require.Len(t, fibers, 1)
	f, err := n.GetFiberByID(fibers[0])
	require.NoError(t, err)
	for slot := 0; slot < f.TotalSlots(); slot++ {
		require.NoError(t, f.Assign(slot, 1, 0, slot+1))
	}

	_, err = pathfinder.Search(config.PolicyFF, ids.NewSD(0, 2), topo, n)
	require.ErrorIs(t, err, pathfinder.ErrNoRoute)
}

func TestSearchRejectsLayerSearch(t *testing.T) {
	n := lineNetwork()
	topo := lineTopology(t)

	_, err := pathfinder.Search(config.PolicyLayerSearch, ids.NewSD(0, 2), topo, n)
	require.ErrorIs(t, err, pathfinder.ErrPolicyUnavailable)
}
