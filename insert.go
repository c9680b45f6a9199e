package qptrie

import "unsafe"

// Set assigns val to key, replacing any value already stored there. A
// nil val deletes key instead, mirroring the spec's convention that a
// zero value requests removal (see DESIGN.md, open question #1, for
// why no InvalidArgument case survives the move to an any-valued
// store).
func (t *Trie) Set(key string, val any) {
	if val == nil {
		t.Delete(key)
		return
	}

	if t.root == nil {
		leaf := newLeafCell(key, val)
		t.root = &leaf
		t.size++

		return
	}

	// Pass 1: walk to the most similar existing leaf. At each branch we
	// follow key's own symbol when present, or twig 0 otherwise - every
	// twig below a branch shares the same chunks tested above it
	// (invariant 3), so any of them is a valid comparison point.
	near := t.root
	for !near.isLeaf() {
		var (
			sym = symbolAt(key, near.chunkIndex())
			bm  = near.bitmap()
			bit = bitFor(sym)
			idx = 0
		)

		if bm&bit != 0 {
			idx = twigOffset(bm, bit)
		}

		twigs := near.twigs()
		near = &twigs[idx]
	}

	nearKey := near.leaf().key

	div, equal := divergence(key, nearKey)
	if equal {
		near.leaf().val = val
		return
	}

	// Pass 2: walk again, installing the new leaf at the chunk where the
	// two keys diverge.
	cur := t.root
	for {
		if cur.isLeaf() || div < cur.chunkIndex() {
			installBranch(cur, div, key, val, nearKey)
			t.size++

			return
		}

		if div == cur.chunkIndex() {
			growBranch(cur, key, val)
			t.size++

			return
		}

		// div > cur.chunkIndex(): this branch doesn't discriminate the
		// new key from the old one yet, so keep descending along key's
		// own existing path.
		var (
			sym = symbolAt(key, cur.chunkIndex())
			bit = bitFor(sym)
			bm  = cur.bitmap()
		)

		twigs := cur.twigs()
		cur = &twigs[twigOffset(bm, bit)]
	}
}

// installBranch replaces *cur (whose entire subtree, or whose single
// leaf, agrees with nearKey up to chunk div) with a new two-twig branch
// discriminating at chunk div between that subtree and a fresh leaf for
// key.
func installBranch(cur *cell, div uint64, key string, val any, nearKey string) {
	var (
		old       = *cur // capture the subtree/leaf being displaced
		symNew    = symbolAt(key, div)
		symOld    = symbolAt(nearKey, div)
		newLeaf   = newLeafCell(key, val)
		newBranch = newBranchCell(div, newLeaf, symNew, old, symOld)
	)

	*cur = newBranch
}

// growBranch adds a new leaf twig to an existing branch that already
// discriminates on chunk div but doesn't yet carry key's symbol there.
func growBranch(cur *cell, key string, val any) {
	var (
		ci  = cur.chunkIndex()
		sym = symbolAt(key, ci)
		bit = bitFor(sym)
		bm  = cur.bitmap()
		n   = cur.twigCount()
		idx = twigOffset(bm, bit)
		old = cur.twigs()
	)

	grown := make([]cell, n+1)
	copy(grown[:idx], old[:idx])
	grown[idx] = newLeafCell(key, val)
	copy(grown[idx+1:], old[idx:])

	cur.bitpack = branchBitpack(ci, bm|bit)
	cur.pointer = unsafe.Pointer(&grown[0])
}
