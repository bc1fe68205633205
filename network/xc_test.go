package network_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/statematrix"
)

func TestXCWxcAlwaysRoutes(t *testing.T) {
	xc := network.NewXC(0, network.Wxc)
	ok, err := xc.CanRoute(network.NewPortID(), network.NewPortID())
	require.NoError(t, err)
	require.True(t, ok)
}

func TestXCFxcRequiresConnectIO(t *testing.T) {
	xc := network.NewXC(0, network.Fxc)
	in := xc.GenerateNewDevice(true)
	out := xc.GenerateNewDevice(false)

	ok, err := xc.CanRoute(in, out)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, xc.ConnectIO(in, out))
	ok, err = xc.CanRoute(in, out)
	require.NoError(t, err)
	require.True(t, ok)

	require.ErrorIs(t, xc.ConnectIO(in, out), network.ErrPortAlreadyConnected)

	got, err := xc.GetRoute(in)
	require.NoError(t, err)
	require.Equal(t, out, got)
}

func TestXCFxcConnectIORejectsSharedOutputPort(t *testing.T) {
	xc := network.NewXC(0, network.Fxc)
	inA := xc.GenerateNewDevice(true)
	inB := xc.GenerateNewDevice(true)
	out := xc.GenerateNewDevice(false)

	require.NoError(t, xc.ConnectIO(inA, out))
	require.ErrorIs(t, xc.ConnectIO(inB, out), network.ErrPortAlreadyConnected)

	got, err := xc.GetRoute(inB)
	require.ErrorIs(t, err, network.ErrPortNotConnected)
	require.Equal(t, network.NilPortID, got)
}

func TestXCWbxcConnectIOWavebandRejectsSharedOutputPort(t *testing.T) {
	xc := network.NewXC(0, network.Wbxc)
	inA := xc.GenerateNewDevice(true)
	inB := xc.GenerateNewDevice(true)
	out := xc.GenerateNewDevice(false)
	wb := statematrix.WBIndex(1)

	require.NoError(t, xc.ConnectIOWaveband(inA, out, wb))
	require.ErrorIs(t, xc.ConnectIOWaveband(inB, out, wb), network.ErrPortAlreadyConnected)

	// A different waveband on the same output port is unaffected.
	require.NoError(t, xc.ConnectIOWaveband(inB, out, statematrix.WBIndex(2)))
}

func TestXCWbxcRoutesPerWaveband(t *testing.T) {
	xc := network.NewXC(0, network.Wbxc)
	in := xc.GenerateNewDevice(true)
	out := xc.GenerateNewDevice(false)
	wb := statematrix.WBIndex(1)

	ok, err := xc.CanRouteWaveband(in, out, wb)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, xc.ConnectIOWaveband(in, out, wb))
	ok, err = xc.CanRouteWaveband(in, out, wb)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = xc.CanRoute(in, out)
	require.ErrorIs(t, err, network.ErrRouteUnsupported)
}
