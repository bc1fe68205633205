// Package discovery finds demand endpoint pairs (SD) whose realized fiber
// routes repeatedly traverse the same contiguous span of edges, so the
// designer can propose collapsing that span into a single lower-granularity
// bypass.
//
// Every demand's FiberIDs sequence is scanned for contiguous sub-sequences
// of a bounded length; a sub-sequence only counts if it starts and ends at
// the network's top switching layer (Wxc) and is not already itself a
// clean, single bypass end to end. The surviving sub-sequences are tallied
// by their implied SD and ranked by frequency.
package discovery
