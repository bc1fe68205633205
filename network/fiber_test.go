package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

func TestFiberAssignDeleteRoundTrip(t *testing.T) {
	f := network.NewSCF(ids.NewEdge(0, 1), network.Wxc, network.Wxc)

	require.NoError(t, f.Assign(10, 4, 0, 1))
	require.ErrorIs(t, f.Assign(10, 4, 0, 1), network.ErrDemandAlreadyAssigned)
	require.ErrorIs(t, f.Assign(12, 4, 0, 2), network.ErrSlotOccupied)

	require.NoError(t, f.Delete(1))
	require.ErrorIs(t, f.Delete(1), network.ErrDemandNotAssigned)
}

func TestMCFHasIndependentCores(t *testing.T) {
	f := network.NewMCF(ids.NewEdge(0, 1), network.Wxc, network.Sxc)
	require.Equal(t, network.CoreFactor, f.GetCoreNum())

	require.NoError(t, f.Assign(0, 96, 1, 1))
	require.True(t, f.StateMatrixes[1].AreSlotsFull(0, 96))
	require.True(t, f.StateMatrixes[0].IsEmpty())

	unused := f.UnusedCores()
	require.Len(t, unused, network.CoreFactor-1)
}

func TestIsFull(t *testing.T) {
	f := network.NewSCF(ids.NewEdge(0, 1), network.Wxc, network.Wxc)
	require.False(t, f.IsFull())
	require.NoError(t, f.Assign(0, 96, 0, 1))
	require.True(t, f.IsFull())
}
