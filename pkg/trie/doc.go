// ## Overview
// Package trie implements a generic trie (prefix tree) keyed by composite values.
// A Trie is built with two functions: split decomposes a key into an ordered
// sequence of sub-keys, and concat recomposes such a sequence into a key.
// Every sub-key position on an inserted key's path is a Node; the node where a
// key's sequence ends is marked terminal.
//
// Lookups return a Cursor. A failed lookup returns the End() cursor, which every
// other failed lookup compares equal to. FindParent moves a cursor to its direct
// parent only when the parent is itself an inserted key.
//
// ## Example usage:
//
//	digits := func(n int) []int { ... }      // 124 -> [1 2 4]
//	number := func(d []int) int { ... }      // [1 2 4] -> 124
//
//	t := trie.New(digits, number)
//	t.Insert(482)
//	t.Insert(48)
//
//	it := t.Find(482)
//	fmt.Println(it.Value())                  // Output: 482
//
//	parent := t.FindParent(it)
//	fmt.Println(parent.Value())              // Output: 48
//
//	fmt.Println(t.Find(4).Equal(t.End()))    // Output: true
//
// A Trie is not safe for concurrent use; guard it with a lock if it is shared.
// Cursors capture the path of their node when they are created and become stale
// after the trie is modified.
package trie
