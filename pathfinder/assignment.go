package pathfinder

import "github.com/optrans/layernet/network"

// AssignmentInstruction is the result of a successful route search: the
// fiber chain a demand should be routed over, the core each hop uses, and
// the spectrum run it should occupy. SlotHeads holds one entry per hop and
// is constant along the whole chain for a single contiguous assignment;
// it is carried per-hop (rather than as a single int) because the network
// package's AssignPath is hop-indexed and a caller should never need to
// special-case "a chain has one slot head."
type AssignmentInstruction struct {
	FiberIDs  []network.FiberID
	Cores     []network.CoreIndex
	SlotHeads []int
	Width     int
}
