package topology_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/topology"
)

func TestLoadLinkMatrixParsesSquareCSV(t *testing.T) {
	m, err := topology.LoadLinkMatrix(strings.NewReader("0,1,0\n1,0,1\n0,1,0\n"))
	require.NoError(t, err)
	require.Equal(t, [][]bool{
		{false, true, false},
		{true, false, true},
		{false, true, false},
	}, m)
}

func TestLoadLinkMatrixRejectsNonSquare(t *testing.T) {
	_, err := topology.LoadLinkMatrix(strings.NewReader("0,1\n1,0,1\n"))
	require.Error(t, err)
}

func TestNewTwoNodeOneEdge(t *testing.T) {
	m, err := topology.LoadLinkMatrix(strings.NewReader("0,1\n1,0\n"))
	require.NoError(t, err)

	tp, err := topology.New("two-node", m)
	require.NoError(t, err)
	require.Len(t, tp.Edges, 2)

	sd := ids.NewSD(0, 1)
	cands := tp.RouteCandidatesFor(sd)
	require.Len(t, cands, 1)
	require.Equal(t, 1, cands[0].Hops())
}

func TestNewThreeNodeLineShortestPathIsTwoHops(t *testing.T) {
	m, err := topology.LoadLinkMatrix(strings.NewReader("0,1,0\n1,0,1\n0,1,0\n"))
	require.NoError(t, err)

	tp, err := topology.New("line", m)
	require.NoError(t, err)

	sd := ids.NewSD(0, 2)
	hops, ok := tp.ShortestHops(sd)
	require.True(t, ok)
	require.Equal(t, 2, hops)

	paths, err := tp.ShortestPaths(sd, 0)
	require.NoError(t, err)
	require.Len(t, paths, 1)
	require.Equal(t, []ids.Node{0, 1, 2}, paths[0].NodeRoute)
}

func TestShortestPathsErrorsForDisconnectedPair(t *testing.T) {
	m, err := topology.LoadLinkMatrix(strings.NewReader("0,1,0\n1,0,0\n0,0,0\n"))
	require.NoError(t, err)

	tp, err := topology.New("disconnected", m)
	require.NoError(t, err)

	_, err = tp.ShortestPaths(ids.NewSD(0, 2), 0)
	require.Error(t, err)
	var notFound topology.ErrNoCandidate
	require.ErrorAs(t, err, &notFound)
}
