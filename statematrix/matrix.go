package statematrix

import "strings"

// Slots is the number of spectral slots tracked per fiber core. It mirrors
// the fixed grid width of the optical line system this designer targets.
const Slots = 96

// StateMatrix is a bitmap of slot occupancy for a single fiber core.
// Index i == true means slot i is occupied; false means it is free.
type StateMatrix [Slots]bool

// New returns an all-free StateMatrix.
func New() StateMatrix {
	return StateMatrix{}
}

// NewFulfilled returns an all-occupied StateMatrix, used as the identity
// element when accumulating occupancy across a route with And.
func NewFulfilled() StateMatrix {
	var m StateMatrix
	for i := range m {
		m[i] = true
	}
	return m
}

// And returns the bitwise AND of m and other.
func (m StateMatrix) And(other StateMatrix) StateMatrix {
	var out StateMatrix
	for i := range m {
		out[i] = m[i] && other[i]
	}
	return out
}

// Or returns the bitwise OR of m and other.
func (m StateMatrix) Or(other StateMatrix) StateMatrix {
	var out StateMatrix
	for i := range m {
		out[i] = m[i] || other[i]
	}
	return out
}

// IsEmpty reports whether every slot is free.
func (m StateMatrix) IsEmpty() bool {
	for _, occupied := range m {
		if occupied {
			return false
		}
	}
	return true
}

// AreSlotsEmpty reports whether every slot in [start, start+width) is free.
func (m StateMatrix) AreSlotsEmpty(start, width int) bool {
	for i := start; i < start+width; i++ {
		if m[i] {
			return false
		}
	}
	return true
}

// AreSlotsFull reports whether every slot in [start, start+width) is occupied.
func (m StateMatrix) AreSlotsFull(start, width int) bool {
	for i := start; i < start+width; i++ {
		if !m[i] {
			return false
		}
	}
	return true
}

// CountUsed returns the number of occupied slots.
func (m StateMatrix) CountUsed() int {
	count := 0
	for _, occupied := range m {
		if occupied {
			count++
		}
	}
	return count
}

// rShift shifts every slot up by one position, filling slot 0 with occupied
// (true). Shifting in "occupied" rather than "free" keeps accumulated
// window checks near the left edge from reporting a false positive for a
// run that would actually run off the start of the matrix.
func (m StateMatrix) rShift() StateMatrix {
	var out StateMatrix
	prev := true
	for i := 0; i < Slots; i++ {
		out[i] = prev
		prev = m[i]
	}
	return out
}

// FindEmptyRun locates the lowest-indexed contiguous run of `width` free
// slots and returns its starting index. It accumulates occupancy across the
// window by OR-ing width-1 progressively right-shifted copies of m onto
// itself, then scans for the first slot where the accumulated bit is still
// free: at that point the window ending there is free for its full width.
//
// This is first-fit by construction: the scan is ascending, so the first
// qualifying end index always yields the smallest possible start index.
func (m StateMatrix) FindEmptyRun(width int) (start int, ok bool) {
	if width <= 0 {
		width = 1
	}
	acc := m
	shifted := m
	for i := 1; i < width; i++ {
		shifted = shifted.rShift()
		acc = acc.Or(shifted)
	}
	for i := 0; i < Slots; i++ {
		if !acc[i] {
			return i - (width - 1), true
		}
	}
	return 0, false
}

// HasEmptyRun reports whether a contiguous run of `width` free slots exists.
func (m StateMatrix) HasEmptyRun(width int) bool {
	_, ok := m.FindEmptyRun(width)
	return ok
}

// ApplyWithoutWavebandFilter returns a copy of m with every slot outside wb
// forced to occupied, so that FindEmptyRun restricted to the returned value
// only ever reports a run within that waveband.
func (m StateMatrix) ApplyWithoutWavebandFilter(wb WBIndex) StateMatrix {
	out := m
	lo, hi := wb.SlotRange()
	for i := 0; i < Slots; i++ {
		if i < lo || i >= hi {
			out[i] = true
		}
	}
	return out
}

// String renders the matrix as a row of block glyphs, one per slot:
// a full block for occupied, a thin bar for free.
func (m StateMatrix) String() string {
	var sb strings.Builder
	for _, occupied := range m {
		if occupied {
			sb.WriteRune('█')
		} else {
			sb.WriteRune('▏')
		}
	}
	return sb.String()
}
