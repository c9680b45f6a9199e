package qptrie

import (
	"fmt"
	"strings"
)

// KV is a key-value pair, used to seed a new Trie.
type KV struct {
	Key string
	Val any
}

// Trie is a qp-trie mapping string keys to arbitrary values. The zero
// value is an empty, ready-to-use trie. A Trie is not safe for
// concurrent use without external synchronization.
type Trie struct {
	root *cell
	size int
}

// New returns a Trie, optionally pre-populated with the given pairs.
func New(init ...KV) *Trie {
	t := &Trie{}

	for _, kv := range init {
		t.Set(kv.Key, kv.Val)
	}

	return t
}

// Len reports the number of keys currently stored in the trie.
func (t *Trie) Len() int {
	return t.size
}

// String dumps a compact, human-readable summary of the trie's root
// cell, for test failure output and interactive debugging. It does not
// walk the whole trie.
func (t *Trie) String() string {
	if t.root == nil {
		return "<qptrie|empty>"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "<qptrie|len:%d|", t.size)

	if t.root.isLeaf() {
		fmt.Fprintf(&b, "leaf:%#v>", t.root.leaf().key)
	} else {
		fmt.Fprintf(&b, "branch|chunk:%d|bitmap:%#033b>", t.root.chunkIndex(), t.root.bitmap())
	}

	return b.String()
}
