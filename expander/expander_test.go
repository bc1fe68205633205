package expander_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/expander"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

func baselineNetwork() *network.Network {
	n := network.New(0)
	for _, e := range []ids.Edge{ids.NewEdge(0, 1), ids.NewEdge(1, 2)} {
		f := network.NewSCF(e, network.Wxc, network.Wxc)
		f.Initial = true
		n.RegisterFiber(f)
	}
	return n
}

func TestExpandFxcStitchesChain(t *testing.T) {
	n := baselineNetwork()
	target := []ids.Edge{ids.NewEdge(0, 1), ids.NewEdge(1, 2)}

	fibers, err := expander.ExpandFxc(n, target)
	require.NoError(t, err)
	require.Len(t, fibers, 2)
	require.Equal(t, [2]network.XCType{network.Wxc, network.Fxc}, fibers[0].SDXCType)
	require.Equal(t, [2]network.XCType{network.Fxc, network.Wxc}, fibers[1].SDXCType)

	midXC, err := n.GetXCOnNode(1, network.Fxc)
	require.NoError(t, err)
	out, err := midXC.GetRoute(fibers[0].DstPortIDs[0])
	require.NoError(t, err)
	require.Equal(t, fibers[1].SrcPortIDs[0], out)
}

func TestExpandFxcRejectsShortTarget(t *testing.T) {
	n := baselineNetwork()
	_, err := expander.ExpandFxc(n, []ids.Edge{ids.NewEdge(0, 1)})
	require.ErrorIs(t, err, expander.ErrTargetTooShort)
}

func TestExpandSxcLaysMultiCoreFibers(t *testing.T) {
	n := baselineNetwork()
	target := []ids.Edge{ids.NewEdge(0, 1), ids.NewEdge(1, 2)}

	fibers, err := expander.ExpandSxc(n, target)
	require.NoError(t, err)
	require.Len(t, fibers, 2)
	for _, f := range fibers {
		require.Equal(t, network.CoreFactor, f.GetCoreNum())
	}
}

func TestExpandWbxcPicksAWaveband(t *testing.T) {
	n := baselineNetwork()
	target := []ids.Edge{ids.NewEdge(0, 1), ids.NewEdge(1, 2)}

	fibers, err := expander.ExpandWbxc(n, target)
	require.NoError(t, err)
	require.Len(t, fibers, 2)
	require.Equal(t, [2]network.XCType{network.Wxc, network.Wbxc}, fibers[0].SDXCType)
	require.Equal(t, [2]network.XCType{network.Wbxc, network.Wxc}, fibers[1].SDXCType)
}

func TestRemoveFibersByEdgesRemovesOnlyPlainWxc(t *testing.T) {
	n := baselineNetwork()
	removed := expander.RemoveFibersByEdges(n, []ids.Edge{ids.NewEdge(0, 1)})
	require.Len(t, removed, 1)
	require.Empty(t, n.GetFiberIDsOnEdge(ids.NewEdge(0, 1)))
}

func TestExpandFibersWithXCTypesRejectsUnsupported(t *testing.T) {
	n := baselineNetwork()
	_, err := expander.ExpandFibersWithXCTypes(n, []ids.Edge{ids.NewEdge(0, 1), ids.NewEdge(1, 2)}, [2]network.XCType{network.Wbxc, network.Fxc})
	require.ErrorIs(t, err, expander.ErrUnsupportedExpansion)
}
