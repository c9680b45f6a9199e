package qptrie

// Chunk decomposition for the qp-5 variant: every key is viewed as a
// sequence of 5-bit symbols, read most-significant-bit first out of the
// key's byte string, plus a reserved end-of-key symbol emitted once the
// chunk index runs past the end of the key.
//
// Symbol values run 0..32: 0 is the reserved end-of-key symbol (so that
// a key which is a strict prefix of another sorts before it), and a
// real 5-bit nibble value v (0..31) is carried as symbol v+1. This is
// the one deliberate departure from the teacher's own embedding scheme
// (which reserves the *top* bit for "key ended"); see DESIGN.md.
const (
	symbolWidth    = 5
	endOfKeySymbol = 0
	realSymbolBase = 1
	maxSymbol      = realSymbolBase + (1<<symbolWidth - 1) // 32
	bitmapWidth    = maxSymbol + 1                         // 33: one bit per symbol 0..32
)

// symbolAt returns the chunk-index-th 5-bit symbol of key, or
// endOfKeySymbol once the chunk index runs past the key's last byte.
//
// Symbols are extracted by reading the two bytes straddling the chunk's
// bit offset as a big-endian 16-bit word and shifting right by
// 16 - 5 - (bitOffset % 8); the low-order byte is treated as zero once
// it falls past the end of the key.
func symbolAt(key string, chunkIdx uint64) uint32 {
	bitOffset := chunkIdx * symbolWidth
	byteIdx := bitOffset / 8

	if byteIdx >= uint64(len(key)) {
		return endOfKeySymbol
	}

	var (
		shift = uint(bitOffset % 8)
		word  = uint16(key[byteIdx]) << 8
	)

	if next := byteIdx + 1; next < uint64(len(key)) {
		word |= uint16(key[next])
	}

	nibble := (word >> (16 - symbolWidth - shift)) & (1<<symbolWidth - 1)

	return uint32(nibble) + realSymbolBase
}

// bitFor returns the single bit of a branch's bitmap corresponding to
// the given symbol.
func bitFor(sym uint32) uint64 {
	return uint64(1) << sym
}

// divergence returns the index of the first chunk at which a and b
// differ, and whether the two keys are in fact identical.
func divergence(a, b string) (chunkIdx uint64, equal bool) {
	for n := uint64(0); ; n++ {
		sa, sb := symbolAt(a, n), symbolAt(b, n)
		if sa != sb {
			return n, false
		}
		if sa == endOfKeySymbol {
			// both keys ended at the same chunk having matched so far
			return n, true
		}
	}
}

// compareKeys reports whether a sorts before (-1), equal to (0), or
// after (+1) b, in the trie's chunk-lexicographic order (which agrees
// with plain byte-lexicographic order, end-of-key sorting first).
func compareKeys(a, b string) int {
	n, equal := divergence(a, b)
	if equal {
		return 0
	}

	sa, sb := symbolAt(a, n), symbolAt(b, n)
	if sa < sb {
		return -1
	}

	return 1
}
