package statematrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/statematrix"
)

func TestFindEmptyRun_EmptyMatrix(t *testing.T) {
	m := statematrix.New()
	start, ok := m.FindEmptyRun(4)
	require.True(t, ok)
	require.Equal(t, 0, start)
}

func TestFindEmptyRun_FullMatrix(t *testing.T) {
	m := statematrix.NewFulfilled()
	_, ok := m.FindEmptyRun(1)
	require.False(t, ok)
}

func TestFindEmptyRun_FirstFitSkipsOccupiedPrefix(t *testing.T) {
	m := statematrix.New()
	m[0] = true
	m[1] = true
	start, ok := m.FindEmptyRun(3)
	require.True(t, ok)
	require.Equal(t, 2, start)
}

func TestFindEmptyRun_NoRunWideEnough(t *testing.T) {
	m := statematrix.NewFulfilled()
	m[10] = false
	m[11] = false
	_, ok := m.FindEmptyRun(3)
	require.False(t, ok)

	start, ok := m.FindEmptyRun(2)
	require.True(t, ok)
	require.Equal(t, 10, start)
}

func TestAndOr(t *testing.T) {
	a := statematrix.New()
	a[5] = true
	b := statematrix.New()
	b[6] = true

	and := a.And(b)
	require.True(t, and.IsEmpty())

	or := a.Or(b)
	require.True(t, or[5])
	require.True(t, or[6])
	require.Equal(t, 2, or.CountUsed())
}

func TestApplyWithoutWavebandFilter(t *testing.T) {
	m := statematrix.New()
	masked := m.ApplyWithoutWavebandFilter(statematrix.WBIndex(0))
	lo, hi := statematrix.WBIndex(0).SlotRange()
	require.True(t, masked.AreSlotsEmpty(lo, hi-lo))
	require.True(t, masked.AreSlotsFull(hi, statematrix.Slots-hi))
}

func TestWavebandOfRoundTrip(t *testing.T) {
	for slot := 0; slot < statematrix.Slots; slot++ {
		wb := statematrix.WavebandOf(slot)
		require.True(t, wb.Includes(slot))
	}
}
