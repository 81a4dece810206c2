package trie

import (
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/exp/constraints"
)

// SplitFunc decomposes a key into its ordered sub-keys. It must be total and deterministic.
type SplitFunc[T constraints.Ordered] func(key T) []T

// ConcatFunc recomposes a key from its sub-keys; concat(split(k)) should give back k.
type ConcatFunc[T constraints.Ordered] func(subkeys []T) T

// Trie owns a tree of nodes and the split/concat pair used to walk it.
type Trie[T constraints.Ordered] struct {
	root   *Node[T]
	split  SplitFunc[T]
	concat ConcatFunc[T]
	logger *slog.Logger
}

// New creates an empty trie using split and concat for every key.
func New[T constraints.Ordered](split SplitFunc[T], concat ConcatFunc[T], opts ...Option[T]) *Trie[T] {
	t := DefaultOptions[T]()
	t.split = split
	t.concat = concat
	for _, opt := range opts {
		t = opt(t)
	}
	return t
}

// Insert adds key to the trie. Inserting an existing key is a no-op.
func (t *Trie[T]) Insert(key T) {
	current := t.root
	for _, subkey := range t.split(key) {
		if current.HasChild(subkey) {
			current = current.GetChild(subkey)
			continue
		}
		current = current.AddChild(subkey, false)
		t.logger.Debug("trie: node added", "subkey", subkey, "depth", current.depth)
	}
	current.SetTerminal(true)
}

// Find returns a cursor on key, or End() if key was never inserted.
// A key that only exists as a prefix of longer inserted keys is not found.
func (t *Trie[T]) Find(key T) Cursor[T] {
	node := t.walk(t.split(key))
	if node == nil || !node.IsTerminal() {
		t.logger.Debug("trie: key not found", "key", key)
		return t.End()
	}
	return newCursor(node, t.concat)
}

// walk follows existing children only, returning nil on the first missing sub-key.
func (t *Trie[T]) walk(subkeys []T) *Node[T] {
	current := t.root
	for _, subkey := range subkeys {
		if !current.HasChild(subkey) {
			return nil
		}
		current = current.GetChild(subkey)
	}
	return current
}

// FindParent returns a cursor on the direct parent of it when that parent
// is itself an inserted key. A parent that is the root or only a path node
// gives End(), so FindParent never yields a cursor Find could not return.
func (t *Trie[T]) FindParent(it Cursor[T]) Cursor[T] {
	if it.IsEnd() || it.node.IsRoot() {
		return t.End()
	}
	parent := it.node.Parent()
	if parent.IsRoot() || !parent.IsTerminal() {
		return t.End()
	}
	return newCursor(parent, t.concat)
}

// End returns the sentinel cursor every failed lookup is equal to.
func (t *Trie[T]) End() Cursor[T] {
	return Cursor[T]{}
}

// Lookup returns the stored form of key and whether it was found.
func (t *Trie[T]) Lookup(key T) (T, bool) {
	it := t.Find(key)
	if it.IsEnd() {
		var zero T
		return zero, false
	}
	return it.Value(), true
}

// Contains reports whether key was inserted.
func (t *Trie[T]) Contains(key T) bool {
	return !t.Find(key).IsEnd()
}

// Len returns the number of inserted keys.
func (t *Trie[T]) Len() int {
	count := 0
	if t.root.IsTerminal() {
		count++
	}
	t.root.ForEachStepDown(func(node *Node[T]) {
		if node.IsTerminal() {
			count++
		}
	}, nil)
	return count
}

// Keys returns every inserted key, ordered by sub-keys depth first.
func (t *Trie[T]) Keys() []T {
	keys := []T{}
	if t.root.IsTerminal() {
		keys = append(keys, t.concat(t.root.Subkeys()))
	}
	t.root.ForEachStepDown(func(node *Node[T]) {
		if node.IsTerminal() {
			keys = append(keys, t.concat(node.Subkeys()))
		}
	}, nil)
	return keys
}

// String dumps the tree one node per line, indented by one space per level,
// with siblings in ascending order:
//
//	0
//	 1
//	  2
func (t *Trie[T]) String() string {
	var sb strings.Builder
	writeNode(&sb, t.root, "")
	return sb.String()
}

func writeNode[T constraints.Ordered](sb *strings.Builder, n *Node[T], indent string) {
	fmt.Fprintf(sb, "%s%v\n", indent, n.Value())
	n.ForEachChild(func(child *Node[T]) {
		writeNode(sb, child, indent+" ")
	})
}

// Clone returns a deep copy of the trie sharing no node with t.
func (t *Trie[T]) Clone() *Trie[T] {
	return &Trie[T]{
		root:   t.root.Clone(),
		split:  t.split,
		concat: t.concat,
		logger: t.logger,
	}
}

// CopyFrom drops the content of t and replaces it with a deep copy of other,
// including its split and concat functions.
func (t *Trie[T]) CopyFrom(other *Trie[T]) *Trie[T] {
	if t == other {
		return t
	}
	t.root = other.root.Clone()
	t.split = other.split
	t.concat = other.concat
	t.logger = other.logger
	return t
}
