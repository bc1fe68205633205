package discovery

import (
	"sort"

	"github.com/optrans/layernet/demand"
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

// FindEmergentSDs ranks every SD whose demands' realized routes repeatedly
// traverse a contiguous span of exactly bypassLen fibers starting and
// ending at xcTypes[0] (the network's top switching layer), descending by
// how often that span recurs, ties broken by SD ascending (Src then Dst).
// SDs already in taboo are filtered out entirely.
func FindEmergentSDs(n *network.Network, demands []demand.Demand, taboo []ids.SD, xcTypes [2]network.XCType, bypassLen int) []ids.SD {
	return rankedSDs(n, demands, taboo, xcTypes, bypassLen, bypassLen)
}

// FindMostFrequentSD returns the single most frequently recurring SD across
// bypass lengths [MinBypassLen, MaxBypassLen], or false if every candidate
// is taboo (or none exist).
func FindMostFrequentSD(n *network.Network, demands []demand.Demand, taboo []ids.SD, xcTypes [2]network.XCType) (ids.SD, bool) {
	ranked := rankedSDs(n, demands, taboo, xcTypes, MinBypassLen, MaxBypassLen)
	if len(ranked) == 0 {
		return ids.SD{}, false
	}
	return ranked[0], true
}

func rankedSDs(n *network.Network, demands []demand.Demand, taboo []ids.SD, xcTypes [2]network.XCType, minLen, maxLen int) []ids.SD {
	topLayer := xcTypes[0]
	counter := make(map[ids.SD]int)

	for _, d := range demands {
		if len(d.FiberIDs) == 0 {
			continue
		}
		for _, sub := range enumerateSubsequences(d.FiberIDs, minLen, maxLen) {
			sd, ok := candidateSD(n, sub, topLayer)
			if !ok {
				continue
			}
			counter[sd]++
		}
	}

	type entry struct {
		sd    ids.SD
		count int
	}
	entries := make([]entry, 0, len(counter))
	for sd, count := range counter {
		entries = append(entries, entry{sd: sd, count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].sd.Src != entries[j].sd.Src {
			return entries[i].sd.Src < entries[j].sd.Src
		}
		return entries[i].sd.Dst < entries[j].sd.Dst
	})
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].count > entries[j].count })

	tabooSet := make(map[ids.SD]struct{}, len(taboo))
	for _, sd := range taboo {
		tabooSet[sd] = struct{}{}
	}

	out := make([]ids.SD, 0, len(entries))
	for _, e := range entries {
		if _, skip := tabooSet[e.sd]; skip {
			continue
		}
		out = append(out, e.sd)
	}
	return out
}

// candidateSD checks whether sub qualifies as a bypass candidate: it must
// start and end at topLayer, and must not already be, end to end, a single
// clean bypass. On success it returns the SD the bypass would cover.
func candidateSD(n *network.Network, sub []network.FiberID, topLayer network.XCType) (ids.SD, bool) {
	firstType, err := n.GetFiberSDXCType(sub[0])
	if err != nil || firstType[0] != topLayer {
		return ids.SD{}, false
	}
	lastType, err := n.GetFiberSDXCType(sub[len(sub)-1])
	if err != nil || lastType[1] != topLayer {
		return ids.SD{}, false
	}

	count := 1
	for _, fid := range sub {
		sdType, err := n.GetFiberSDXCType(fid)
		if err != nil {
			continue
		}
		if sdType[1] == topLayer {
			count++
			if count > 2 {
				break
			}
		}
	}
	if count == 2 {
		return ids.SD{}, false
	}

	first, err := n.GetFiberByID(sub[0])
	if err != nil {
		return ids.SD{}, false
	}
	last, err := n.GetFiberByID(sub[len(sub)-1])
	if err != nil {
		return ids.SD{}, false
	}
	return ids.NewSD(first.Edge.Src, last.Edge.Dst), true
}
