// Package statematrix implements the fixed-width spectral occupancy bitmap
// shared by every fiber core in the network, plus the waveband partitioning
// of that bitmap.
//
// A StateMatrix is a flat [Slots]bool: true means the slot is occupied,
// false means it is free. The pathfinder OR-s the matrices of every hop of
// a candidate route, so a slot left free in the result is free on every
// hop. AND-ing matrices together, starting from a fulfilled one, leaves
// free every slot that is free on at least one of them; the designer's
// capacity estimate uses that form.
//
// FindEmptyRun is the one piece of logic every routing policy ultimately
// bottoms out on: it locates the lowest-indexed contiguous run of free
// slots of a given width via repeated right-shift-and-OR rather than a
// linear scan-with-counter, so the result is bit-identical across policies
// and platforms regardless of how the caller got here.
package statematrix
