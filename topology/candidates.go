package topology

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/optrans/layernet/ids"
)

// ShortestK caps the number of route candidates kept per SD pair before the
// hop-slack truncation is applied.
const ShortestK = 100

// HopSlug bounds how many hops longer than the shortest found path a
// candidate may be and still be kept in the pool.
const HopSlug = 2

// maxEnumeratedPerSD is a practical ceiling on how many simple paths are
// generated per SD pair before ShortestK/HopSlug truncation, so that a dense
// topology with many nodes cannot make candidate enumeration blow up
// combinatorially. It is not part of the original design; it exists because
// this reimplementation targets topologies large enough that exhaustive
// simple-path enumeration is otherwise unbounded.
const maxEnumeratedPerSD = 2000

// New builds a Topology from a link matrix: it derives the edge list and
// computes the route-candidate pool for every ordered node pair, running
// the per-pair searches concurrently across a bounded worker pool (mirrors
// the reference implementation's thread-pool-backed candidate build; the
// pool size is the fixed limit workerLimit returns).
func New(name string, linkMatrix [][]bool) (*Topology, error) {
	edges := edgesFromMatrix(linkMatrix)
	t := &Topology{
		Name:       name,
		LinkMatrix: linkMatrix,
		Edges:      edges,
		Candidates: make(map[ids.SD][]RouteCandidate),
	}

	n := len(linkMatrix)
	adj := adjacency(linkMatrix)

	type pairResult struct {
		sd    ids.SD
		cands []RouteCandidate
	}
	results := make(chan pairResult, n*n)

	g, _ := errgroup.WithContext(context.Background())
	g.SetLimit(workerLimit())

	for s := 0; s < n; s++ {
		for d := 0; d < n; d++ {
			if s == d {
				continue
			}
			src, dst := ids.Node(s), ids.Node(d)
			g.Go(func() error {
				cands := candidatesForPair(adj, src, dst)
				results <- pairResult{sd: ids.NewSD(src, dst), cands: cands}
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	close(results)
	for r := range results {
		if len(r.cands) > 0 {
			t.Candidates[r.sd] = r.cands
		}
	}
	return t, nil
}

func workerLimit() int {
	// A conservative fixed pool: candidate generation is CPU-bound and
	// short-lived per pair, so oversubscribing a little is harmless and
	// keeps behavior stable across machines rather than reading
	// runtime.NumCPU() into the result (determinism of wall-clock timing
	// doesn't matter here, only determinism of the resulting Candidates
	// map, which this function preserves regardless of worker count since
	// each pair's result is computed independently).
	return 16
}

func adjacency(linkMatrix [][]bool) [][]int {
	n := len(linkMatrix)
	adj := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if linkMatrix[i][j] {
				adj[i] = append(adj[i], j)
			}
		}
	}
	return adj
}

func edgesFromMatrix(linkMatrix [][]bool) []ids.Edge {
	var out []ids.Edge
	for i, row := range linkMatrix {
		for j, v := range row {
			if v {
				out = append(out, ids.NewEdge(ids.Node(i), ids.Node(j)))
			}
		}
	}
	return out
}

// candidatesForPair enumerates simple paths from src to dst by increasing
// hop count: it searches length 1, 2, 3, ... until the first length with at
// least one path (the shortest), then continues up to shortest+HopSlug
// hops, capping total enumeration at maxEnumeratedPerSD. The result is then
// truncated to ShortestK entries and further truncated at the first entry
// exceeding shortest+HopSlug hops, mirroring the reference implementation's
// two-stage truncation.
func candidatesForPair(adj [][]int, src, dst ids.Node) []RouteCandidate {
	n := len(adj)
	var all []RouteCandidate
	shortestLen := -1

	for length := 1; length <= n; length++ {
		if shortestLen >= 0 && length > shortestLen+HopSlug {
			break
		}
		found := simplePathsOfLength(adj, src, dst, length, maxEnumeratedPerSD-len(all))
		if len(found) > 0 && shortestLen < 0 {
			shortestLen = length
		}
		all = append(all, found...)
		if len(all) >= maxEnumeratedPerSD {
			break
		}
	}

	if len(all) == 0 {
		return nil
	}
	if len(all) > ShortestK {
		all = all[:ShortestK]
	}
	shortest := all[0].Hops()
	cut := len(all)
	for i, rc := range all {
		if rc.Hops() > shortest+HopSlug {
			cut = i
			break
		}
	}
	return all[:cut]
}

// simplePathsOfLength returns every simple path src->dst with exactly
// `length` edges, via DFS, stopping early once `limit` paths have been
// found. Enumeration order is deterministic: neighbors are visited in
// ascending node-index order at every step.
func simplePathsOfLength(adj [][]int, src, dst ids.Node, length, limit int) []RouteCandidate {
	if limit <= 0 {
		return nil
	}
	var out []RouteCandidate
	visited := make([]bool, len(adj))
	path := []ids.Node{src}
	visited[int(src)] = true

	var dfs func(cur ids.Node, remaining int)
	dfs = func(cur ids.Node, remaining int) {
		if len(out) >= limit {
			return
		}
		if remaining == 0 {
			if cur == dst {
				out = append(out, newRouteCandidate(path))
			}
			return
		}
		if cur == dst {
			return
		}
		for _, next := range adj[int(cur)] {
			if visited[next] {
				continue
			}
			visited[next] = true
			path = append(path, ids.Node(next))
			dfs(ids.Node(next), remaining-1)
			path = path[:len(path)-1]
			visited[next] = false
			if len(out) >= limit {
				return
			}
		}
	}
	dfs(src, length)
	return out
}

func newRouteCandidate(nodeRoute []ids.Node) RouteCandidate {
	nr := append([]ids.Node(nil), nodeRoute...)
	edges := make([]ids.Edge, 0, len(nr)-1)
	for i := 0; i+1 < len(nr); i++ {
		edges = append(edges, ids.NewEdge(nr[i], nr[i+1]))
	}
	return RouteCandidate{NodeRoute: nr, EdgeRoute: edges}
}
