package trie

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Cursor references a matched node together with the sub-keys leading to it.
// The sub-keys are captured when the cursor is created; inserting into the
// trie afterwards may leave the cursor stale.
//
// The zero Cursor is the End() sentinel.
type Cursor[T constraints.Ordered] struct {
	node    *Node[T]
	subkeys []T
	concat  ConcatFunc[T]
}

func newCursor[T constraints.Ordered](node *Node[T], concat ConcatFunc[T]) Cursor[T] {
	return Cursor[T]{
		node:    node,
		subkeys: node.Subkeys(),
		concat:  concat,
	}
}

// IsEnd reports whether the cursor is the "no result" sentinel.
func (c Cursor[T]) IsEnd() bool {
	return c.node == nil
}

// Equal compares node identities; cursors on equal-valued nodes of two
// different tries are not equal.
func (c Cursor[T]) Equal(other Cursor[T]) bool {
	return c.node == other.node
}

// Value rebuilds the key the cursor points at.
// Dereferencing End() is a bug and panics.
func (c Cursor[T]) Value() T {
	if c.IsEnd() {
		panic("[BUG] Value: cannot dereference the End cursor, compare with End() first")
	}
	return c.concat(c.subkeys)
}

// Subkeys returns a copy of the captured root-to-node path.
func (c Cursor[T]) Subkeys() []T {
	subkeys := make([]T, len(c.subkeys))
	copy(subkeys, c.subkeys)
	return subkeys
}

// Depth returns the number of sub-keys of the referenced key.
func (c Cursor[T]) Depth() int {
	return len(c.subkeys)
}

func (c Cursor[T]) String() string {
	if c.IsEnd() {
		return "end"
	}
	return fmt.Sprint(c.Value())
}
