package designer

import (
	"math"

	"github.com/optrans/layernet/config"
	"github.com/optrans/layernet/demand"
	"github.com/optrans/layernet/discovery"
	"github.com/optrans/layernet/expander"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/internal/rng"
	"github.com/optrans/layernet/network"
	"github.com/optrans/layernet/topology"
)

// Result is the outcome of a Run: the final network and the demand set as
// it ended up routed over it.
type Result struct {
	Network *network.Network
	Demands []demand.Demand
}

// Run builds the baseline all-Wxc-Wxc plant implied by topo, synthesizes
// demand traffic from p, and hands off to the single- or best-mode control
// loop according to p.Network.DesignMode. p must already have passed
// Validate.
func Run(p config.Params, topo *topology.Topology) (*Result, error) {
	n := network.New(p.Simulation.RandomSeed)
	for _, e := range topo.Edges {
		f := network.NewSCF(e, network.Wxc, network.Wxc)
		f.Initial = true
		n.RegisterFiber(f)
	}

	demands, err := demand.Synthesize(p, topo)
	if err != nil {
		return nil, err
	}

	if p.Network.DesignMode == config.ModeBest {
		return runBest(p, topo, n, demands)
	}
	return runSingle(p, topo, n, demands)
}

// runSingle runs the outer bypass-length control loop once to completion
// and returns its result.
func runSingle(p config.Params, topo *topology.Topology, n *network.Network, demands []demand.Demand) (*Result, error) {
	if err := assignAll(p, n, topo, demands); err != nil {
		return nil, err
	}

	xcTypes := xcTypesFor(p.Network.NodeConfiguration)
	baseline := equivalentFiberCount(n)

	var taboo []ids.SD
	for bypassLen := discovery.MinBypassLen; bypassLen <= discovery.MaxBypassLen; bypassLen++ {
		n, demands, taboo = runBypassRound(p, topo, n, demands, xcTypes, baseline, bypassLen, taboo)
	}

	return &Result{Network: n, Demands: demands}, nil
}

// runBypassRound discovers SD candidates recurring at exactly bypassLen
// fibers, and repeatedly tries collapsing the highest-ranked remaining
// candidate into a bypass over a fresh clone of n, accepting the clone (and
// starting the next candidate list from scratch) the moment the resulting
// plant's fiber-count ratio against baseline falls within tolerance, or
// giving up on that candidate (popping it off the list) and retrying with
// the next otherwise.
func runBypassRound(p config.Params, topo *topology.Topology, n *network.Network, demands []demand.Demand, xcTypes [2]network.XCType, baseline, bypassLen int, taboo []ids.SD) (*network.Network, []demand.Demand, []ids.SD) {
	candidates := discovery.FindEmergentSDs(n, demands, taboo, xcTypes, bypassLen)

	for len(candidates) > 0 {
		sd := candidates[0]

		working := n.Clone()
		workingDemands := cloneDemands(demands)
		deleteAllPaths(working, workingDemands)

		route, err := selectRoute(p, working, topo, sd, xcTypes)
		if err != nil {
			candidates = candidates[1:]
			continue
		}
		if route.Hops() <= 1 {
			taboo = append(taboo, sd)
			candidates = candidates[1:]
			continue
		}

		expander.RemoveFibersByEdges(working, route.EdgeRoute)
		if _, err := expander.ExpandFibersWithXCTypes(working, route.EdgeRoute, xcTypes); err != nil {
			candidates = candidates[1:]
			continue
		}

		if err := assignAll(p, working, topo, workingDemands); err != nil {
			candidates = candidates[1:]
			continue
		}

		var pruned []ids.SD
		if xcTypes[1] == network.Wbxc {
			pruned = working.DeleteEmptyFibersWb(xcTypes[0])
		} else {
			pruned = working.DeleteEmptyFibersCore(xcTypes[0])
		}
		taboo = append(taboo, pruned...)

		if fiberCountRatio(working, baseline) <= 1+p.Network.FiberIncreaseRateLimit {
			n, demands = working, workingDemands
			candidates = discovery.FindEmergentSDs(n, demands, taboo, xcTypes, bypassLen)
			continue
		}

		candidates = candidates[1:]
	}

	return n, demands, taboo
}

// runBest runs p.Network.MeanTrials independent single-mode trials, each
// seeded from a distinct stream derived off n's own RNG so the sequence of
// trials is reproducible given p.Simulation.RandomSeed, and keeps the
// trial with the highest fiber-reduction score: the fraction of the final
// plant's fibers that are not plain Wxc-Wxc capacity.
func runBest(p config.Params, topo *topology.Topology, n *network.Network, demands []demand.Demand) (*Result, error) {
	singleMode := p
	singleMode.Network.DesignMode = config.ModeSingle

	var best *Result
	bestScore := math.Inf(-1)

	trials := p.Network.MeanTrials
	if trials <= 0 {
		trials = 1
	}

	for trial := 0; trial < trials; trial++ {
		trialNet := n.Clone()
		trialNet.RNG = rng.Derive(n.RNG, uint64(trial))
		trialDemands := cloneDemands(demands)

		result, err := runSingle(singleMode, topo, trialNet, trialDemands)
		if err != nil {
			return nil, err
		}

		score := fiberReductionScore(result.Network)
		if score > bestScore {
			best, bestScore = result, score
		}
	}

	return best, nil
}

// fiberReductionScore is (total fibers - Wxc-Wxc fibers) / total fibers:
// higher means a larger share of the plant ended up as a bypass rather
// than plain point-to-point capacity.
func fiberReductionScore(n *network.Network) float64 {
	breakdown := n.FiberBreakdown()
	total := 0
	for _, count := range breakdown {
		total += count
	}
	if total == 0 {
		return 0
	}
	wxcWxc := breakdown[[2]network.XCType{network.Wxc, network.Wxc}]
	return float64(total-wxcWxc) / float64(total)
}
