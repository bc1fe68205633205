package topology

import (
	"fmt"
	"math/rand"

	"github.com/optrans/layernet/ids"
)

// ErrNoCandidate indicates sd has no route-candidate pool at all: the nodes
// are not connected in this topology.
type ErrNoCandidate struct{ SD ids.SD }

func (e ErrNoCandidate) Error() string {
	return fmt.Sprintf("topology: no route candidate for %s", e.SD)
}

// ShortestPaths returns every candidate for sd whose hop count equals the
// shortest hop count found for sd (or minLen if that is larger). It never
// returns an empty, non-nil slice: if the filter would produce none, that
// indicates a topology/candidate-pool inconsistency and panics, mirroring
// the reference implementation's hard invariant that a shortest length
// always has at least one candidate at that length.
func (t *Topology) ShortestPaths(sd ids.SD, minLen int) ([]RouteCandidate, error) {
	cands := t.Candidates[sd]
	if len(cands) == 0 {
		return nil, ErrNoCandidate{SD: sd}
	}
	want := cands[0].Hops()
	if minLen > want {
		want = minLen
	}
	var out []RouteCandidate
	for _, rc := range cands {
		if rc.Hops() == want {
			out = append(out, rc)
		}
	}
	if len(out) == 0 {
		panic(fmt.Sprintf("topology: candidate pool for %s has no entry at its own shortest length %d", sd, want))
	}
	return out, nil
}

// FixedShortestPath returns the first (deterministic, topology-order)
// shortest-hop candidate for sd.
func (t *Topology) FixedShortestPath(sd ids.SD, minLen int) (RouteCandidate, error) {
	paths, err := t.ShortestPaths(sd, minLen)
	if err != nil {
		return RouteCandidate{}, err
	}
	return paths[0], nil
}

// RandomShortestPath returns one of sd's shortest-hop candidates chosen
// uniformly at random via r, used by the designer (the assign-all
// expansion fallback and bypass route selection) where it wants a
// reproducible-but-varied tie-break among
// equally-short routes rather than always the same one.
func (t *Topology) RandomShortestPath(sd ids.SD, r *rand.Rand, minLen int) (RouteCandidate, error) {
	paths, err := t.ShortestPaths(sd, minLen)
	if err != nil {
		return RouteCandidate{}, err
	}
	return paths[r.Intn(len(paths))], nil
}
