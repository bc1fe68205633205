package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

func TestRegisterFiberAllocatesPortsAndIndex(t *testing.T) {
	n := network.New(0)
	edge := ids.NewEdge(0, 1)
	f := network.NewSCF(edge, network.Wxc, network.Wxc)
	n.RegisterFiber(f)

	require.False(t, f.SrcPortIDs[0].IsNil())
	require.False(t, f.DstPortIDs[0].IsNil())

	srcXC, err := n.GetXCOnNode(0, network.Wxc)
	require.NoError(t, err)
	require.True(t, srcXC.HasOutputDevice(f.SrcPortIDs[0]))

	got, err := n.XCByPort(f.SrcPortIDs[0])
	require.NoError(t, err)
	require.Equal(t, srcXC.ID, got.ID)
}

func TestAssignAndRemovePath(t *testing.T) {
	n := network.New(0)
	edge := ids.NewEdge(0, 1)
	f := network.NewSCF(edge, network.Wxc, network.Wxc)
	n.RegisterFiber(f)

	err := n.AssignPath(1, []network.FiberID{f.ID}, []network.CoreIndex{0}, 0, 4)
	require.NoError(t, err)
	require.Equal(t, 4, f.CountUsedSlots())

	n.RemovePath(1, []network.FiberID{f.ID})
	require.Equal(t, 0, f.CountUsedSlots())
}

func TestAssignPathRollsBackOnFailure(t *testing.T) {
	n := network.New(0)
	e1 := ids.NewEdge(0, 1)
	e2 := ids.NewEdge(1, 2)
	f1 := network.NewSCF(e1, network.Wxc, network.Wxc)
	f2 := network.NewSCF(e2, network.Wxc, network.Wxc)
	n.RegisterFiber(f1)
	n.RegisterFiber(f2)

	// Pre-occupy f2 so the second hop of the path fails.
	require.NoError(t, f2.Assign(0, 96, 0, 99))

	err := n.AssignPath(1, []network.FiberID{f1.ID, f2.ID}, []network.CoreIndex{0, 0}, 0, 10)
	require.Error(t, err)
	require.Equal(t, 0, f1.CountUsedSlots())
}

func TestDeleteEmptyFibersSkipsInitial(t *testing.T) {
	n := network.New(0)
	edge := ids.NewEdge(0, 1)
	f := network.NewSCF(edge, network.Wxc, network.Wxc)
	f.Initial = true
	n.RegisterFiber(f)

	pruned := n.DeleteEmptyFibers([2]network.XCType{network.Wxc, network.Wxc})
	require.Empty(t, pruned)
	_, err := n.GetFiberByID(f.ID)
	require.NoError(t, err)
}

func TestDeleteEmptyFibersCorePrunesWholeChainAndRecordsTaboo(t *testing.T) {
	n := network.New(0)
	e1 := ids.NewEdge(0, 1)
	e2 := ids.NewEdge(1, 2)
	entry := network.NewSCF(e1, network.Wxc, network.Fxc)
	exit := network.NewSCF(e2, network.Fxc, network.Wxc)
	n.RegisterFiber(entry)
	n.RegisterFiber(exit)

	midXC, err := n.GetXCOnNode(1, network.Fxc)
	require.NoError(t, err)
	require.NoError(t, midXC.ConnectIO(entry.DstPortIDs[0], exit.SrcPortIDs[0]))

	sds := n.DeleteEmptyFibersCore(network.Wxc)
	require.Equal(t, []ids.SD{ids.NewSD(0, 2)}, sds)
	require.Contains(t, n.TabooSDs([2]network.XCType{network.Wxc, network.Fxc}), ids.NewSD(0, 2))

	_, err = n.GetFiberByID(entry.ID)
	require.ErrorIs(t, err, network.ErrFiberNotFound)
	_, err = n.GetFiberByID(exit.ID)
	require.ErrorIs(t, err, network.ErrFiberNotFound)
}

func TestGetFiberIDsOnEdgePartialSkipsFibersThatDontBroadenOccupancy(t *testing.T) {
	n := network.New(0)
	edge := ids.NewEdge(0, 1)
	f1 := network.NewSCF(edge, network.Wxc, network.Wxc)
	f2 := network.NewSCF(edge, network.Wxc, network.Wxc)
	n.RegisterFiber(f1)
	n.RegisterFiber(f2)

	// f1 occupies slots [0, 48): f2's free capacity there already shows up
	// through f1 being fulfilled-but-narrowed, so f1 is kept.
	require.NoError(t, f1.Assign(0, 48, 0, 1))

	// f2 occupies the exact complementary half: together f1 and f2 leave no
	// slot unaccounted for, so f2 is also kept (it strictly narrows the
	// running matrix further).
	require.NoError(t, f2.Assign(48, 48, 0, 2))

	got := n.GetFiberIDsOnEdgePartial(edge)
	require.Equal(t, []network.FiberID{f1.ID, f2.ID}, got)

	// A third fiber whose occupancy is already fully covered by f1+f2
	// contributes nothing new and is dropped.
	f3 := network.NewSCF(edge, network.Wxc, network.Wxc)
	n.RegisterFiber(f3)
	require.NoError(t, f3.Assign(0, 48, 0, 3))

	got = n.GetFiberIDsOnEdgePartial(edge)
	require.Equal(t, []network.FiberID{f1.ID, f2.ID}, got)
}

func TestGetFiberIDsOnEdgePartialIgnoresReverseDirection(t *testing.T) {
	n := network.New(0)
	fwd := ids.NewEdge(0, 1)
	rev := fwd.Reversed()
	f := network.NewSCF(fwd, network.Wxc, network.Wxc)
	r := network.NewSCF(rev, network.Wxc, network.Wxc)
	n.RegisterFiber(f)
	n.RegisterFiber(r)

	require.NoError(t, r.Assign(0, 96, 0, 1))

	got := n.GetFiberIDsOnEdgePartial(fwd)
	require.Equal(t, []network.FiberID{f.ID}, got)
}

func TestCloneIsIndependent(t *testing.T) {
	n := network.New(0)
	edge := ids.NewEdge(0, 1)
	f := network.NewSCF(edge, network.Wxc, network.Wxc)
	n.RegisterFiber(f)

	clone := n.Clone()
	require.NoError(t, clone.AssignPath(1, []network.FiberID{f.ID}, []network.CoreIndex{0}, 0, 4))

	original, err := n.GetFiberByID(f.ID)
	require.NoError(t, err)
	require.Equal(t, 0, original.CountUsedSlots())
}
