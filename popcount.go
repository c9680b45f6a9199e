package qptrie

import "github.com/hideo55/go-popcount"

// popcount64 counts the set bits of a branch bitmap. go-popcount picks
// the hardware POPCNT instruction when available and falls back to a
// portable SWAR implementation otherwise, which is exactly the
// popcount primitive the trie's branch accessors are specified to use.
func popcount64(w uint64) int {
	return popcount.Count(w)
}
