package discovery

import "github.com/optrans/layernet/network"

// MinBypassLen and MaxBypassLen bound the contiguous fiber-chain lengths the
// designer's outer loop considers, one bypass_len value at a time.
const (
	MinBypassLen = 2
	MaxBypassLen = 4
)

// enumerateSubsequences returns every contiguous run of arr whose length is
// in [minLen, maxLen], ordered by ascending start index then ascending
// length (mirroring the reference's nested-loop enumeration order; the
// order only matters for determinism of ties in the caller's count map,
// which breaks ties by SD anyway).
func enumerateSubsequences(arr []network.FiberID, minLen, maxLen int) [][]network.FiberID {
	var out [][]network.FiberID
	n := len(arr)
	for start := 0; start < n; start++ {
		for end := start + minLen; end <= n; end++ {
			if end-start > maxLen {
				break
			}
			sub := make([]network.FiberID, end-start)
			copy(sub, arr[start:end])
			out = append(out, sub)
		}
	}
	return out
}
