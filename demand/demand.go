package demand

import (
	"github.com/optrans/layernet/ids"
	"github.com/optrans/layernet/network"
)

// Demand is one optical path request: a source/destination pair that
// arrives at StartTime, lasts Duration ticks, and (once routed by the
// pathfinder) carries the fiber/core/slot chain it was assigned.
type Demand struct {
	SD ids.SD

	// FiberIDs, CoreIndices and SlotHeads are all nil until the pathfinder
	// assigns this demand a route; Reset clears them back to nil so the
	// same Demand can be retried against a fresh trial network.
	FiberIDs    []network.FiberID
	CoreIndices []network.CoreIndex
	SlotHeads   []int
	SlotWidth   int

	Index     int
	StartTime int
	EndTime   int
	Duration  int
}

// New builds a Demand with no assignment yet.
func New(sd ids.SD, index, start, duration int) Demand {
	return Demand{
		SD:        sd,
		Index:     index,
		StartTime: start,
		EndTime:   start + duration,
		Duration:  duration,
	}
}

// Reset clears the routing assignment, leaving SD/Index/timing untouched.
func (d *Demand) Reset() {
	d.FiberIDs = nil
	d.CoreIndices = nil
	d.SlotHeads = nil
	d.SlotWidth = 0
}
