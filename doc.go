// Package qptrie implements an in-memory associative array keyed by
// arbitrary byte strings, using a popcount-indexed qp-trie (quadbit
// popcount patricia trie, generalized here to 5-bit symbols).
//
// A trie is a chain of Cells. Each Cell is two machine words:
//
//   - bitpack - a packed word carrying the leaf/branch tag plus,
//     for a branch, the chunk index it discriminates on and the
//     bitmap of which of its 33 possible children are present;
//   - pointer - an unsafe.Pointer to either a leaf's key/value pair
//     or a branch's packed twig array.
//
// Keys are split into a sequence of 5-bit symbols (plus one reserved
// "end of key" symbol that sorts below every real symbol, so that a
// key which is a prefix of another sorts before it). Branch cells
// store only the symbols that are actually present among their
// children, indexed through a bitmap and a population count, which is
// what keeps a trie with mostly-two-way branches no larger than an
// equivalent crit-bit tree while collapsing to far fewer levels when
// keys share longer common runs.
//
// The trie is not safe for concurrent use; callers needing concurrent
// access must supply their own locking.
package qptrie
