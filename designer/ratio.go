package designer

import "github.com/optrans/layernet/network"

// equivalentFiberCount totals n's fiber plant in core units: a plain fiber
// contributes its full core count, but a fiber with exactly one Sxc
// endpoint and one Wxc endpoint (the entry/exit hop of an Sxc bypass chain)
// contributes only its occupied core count, since the other cores on that
// physical fiber remain free for unrelated Sxc chains to reuse and should
// not be charged against this trial's growth.
func equivalentFiberCount(n *network.Network) int {
	total := 0
	for _, f := range n.Fibers() {
		if isSxcMixedEndpoint(f.SDXCType) {
			unused, err := n.GetUnusedCores(f.ID)
			if err != nil {
				total += f.GetCoreNum()
				continue
			}
			total += f.GetCoreNum() - len(unused)
			continue
		}
		total += f.GetCoreNum()
	}
	return total
}

func isSxcMixedEndpoint(sdXCType [2]network.XCType) bool {
	return (sdXCType[0] == network.Sxc) != (sdXCType[1] == network.Sxc)
}

// fiberCountRatio compares n's equivalent fiber count against the baseline
// B captured before the outer loop began trying bypasses: a ratio above
// 1+FiberIncreaseRateLimit means this trial grew the plant too much and
// must be rolled back.
func fiberCountRatio(n *network.Network, baseline int) float64 {
	if baseline == 0 {
		return 0
	}
	return float64(equivalentFiberCount(n)) / float64(baseline)
}
