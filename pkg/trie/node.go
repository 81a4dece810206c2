package trie

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Node is one sub-key position on the path of some inserted key.
type Node[T constraints.Ordered] struct {
	parent   *Node[T]       // back-reference to the owning node, nil for a root
	children map[T]*Node[T] // owned children, one per distinct next sub-key
	value    T              // the sub-key this node stands for (zero value on the root)
	terminal bool           // true if an inserted key ends at this node
	depth    int            // number of sub-keys from the root to this node
}

// NewNode creates a detached root node with no children.
func NewNode[T constraints.Ordered]() *Node[T] {
	return &Node[T]{
		children: map[T]*Node[T]{},
	}
}

func newChildNode[T constraints.Ordered](parent *Node[T], value T, terminal bool) *Node[T] {
	return &Node[T]{
		parent:   parent,
		children: map[T]*Node[T]{},
		value:    value,
		terminal: terminal,
		depth:    parent.depth + 1,
	}
}

// Value returns the sub-key represented by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// IsTerminal reports whether an inserted key ends at this node.
func (n *Node[T]) IsTerminal() bool {
	return n.terminal
}

// SetTerminal marks or unmarks the node as the end of an inserted key.
func (n *Node[T]) SetTerminal(terminal bool) {
	n.terminal = terminal
}

// Parent returns the owning node, or nil for a root.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// IsRoot checks if the node has no parent.
func (n *Node[T]) IsRoot() bool {
	return n.parent == nil
}

// Depth returns the length of the sub-key sequence identifying the node.
func (n *Node[T]) Depth() int {
	return n.depth
}

// Len returns the number of direct children.
func (n *Node[T]) Len() int {
	return len(n.children)
}

// HasChild reports whether a direct child exists for key.
func (n *Node[T]) HasChild(key T) bool {
	_, ok := n.children[key]
	return ok
}

// GetChild returns the child stored for key.
// Callers must check HasChild first; a missing child is a bug and panics.
func (n *Node[T]) GetChild(key T) *Node[T] {
	child, ok := n.children[key]
	if !ok {
		panic(fmt.Sprintf("[BUG] GetChild: no child for key %v, check HasChild before calling GetChild", key))
	}
	return child
}

// AddChild creates a child for key, stores it and returns it.
// An existing child for the same key is replaced together with its subtree.
func (n *Node[T]) AddChild(key T, terminal bool) *Node[T] {
	child := newChildNode(n, key, terminal)
	n.children[key] = child
	return child
}

// Children returns the direct children in ascending order of value.
func (n *Node[T]) Children() []*Node[T] {
	keys := maps.Keys(n.children)
	slices.Sort(keys)

	children := make([]*Node[T], 0, len(keys))
	for _, key := range keys {
		children = append(children, n.children[key])
	}
	return children
}

// applies f to each direct child in ascending order of value.
// will return the original node n
func (n *Node[T]) ForEachChild(f func(child *Node[T])) *Node[T] {
	for _, child := range n.Children() {
		f(child)
	}
	return n
}

// recursively applies f to each descendant, depth first and in ascending order,
// descending below a node only while the (while) condition holds for it.
// pass nil as while to visit the whole subtree
// will return the original node n
func (n *Node[T]) ForEachStepDown(f func(node *Node[T]), while func(node *Node[T]) bool) *Node[T] {
	n.ForEachChild(func(child *Node[T]) {
		f(child)
		if while == nil || while(child) {
			child.ForEachStepDown(f, while)
		}
	})
	return n
}

// applies f to the node and each of its ancestors, moving towards the root.
// the root itself is not visited
// will return the original node n
func (n *Node[T]) ForEachStepUp(f func(node *Node[T]), while func(node *Node[T]) bool) *Node[T] {
	current := n
	for current.parent != nil && (while == nil || while(current)) {
		f(current)
		current = current.parent
	}
	return n
}

// Subkeys returns the sub-keys on the path from the root down to the node.
// A root yields an empty slice.
func (n *Node[T]) Subkeys() []T {
	subkeys := make([]T, n.depth)
	i := n.depth
	n.ForEachStepUp(func(node *Node[T]) {
		i--
		subkeys[i] = node.value
	}, nil)
	return subkeys
}

// Clone returns a deep copy of the subtree rooted at n.
// The copy is detached: its top node has no parent, and every descendant
// points at its new owner, never into the source tree.
func (n *Node[T]) Clone() *Node[T] {
	clone := cloneSubtree(n)
	clone.parent = nil
	clone.depth = 0
	rewireDepth(clone)
	return clone
}

// CopyFrom replaces the value, terminal flag and subtree of n with a deep copy
// of src. The existing children of n are released first; n keeps its parent.
func (n *Node[T]) CopyFrom(src *Node[T]) *Node[T] {
	if n == src {
		return n
	}
	copied := cloneSubtree(src)

	maps.Clear(n.children)
	n.value = copied.value
	n.terminal = copied.terminal
	for key, child := range copied.children {
		child.parent = n
		n.children[key] = child
	}
	rewireDepth(n)
	return n
}

// cloneSubtree builds the copy bottom-up: the children are copied first, then
// their new owner is allocated and the parent references are wired to it.
func cloneSubtree[T constraints.Ordered](src *Node[T]) *Node[T] {
	children := make(map[T]*Node[T], len(src.children))
	for key, child := range src.children {
		children[key] = cloneSubtree(child)
	}

	dst := &Node[T]{
		children: children,
		value:    src.value,
		terminal: src.terminal,
		depth:    src.depth,
	}
	for _, child := range children {
		child.parent = dst
	}
	return dst
}

// rewireDepth recomputes depths below n after n was moved to a new position.
func rewireDepth[T constraints.Ordered](n *Node[T]) {
	for _, child := range n.children {
		child.depth = n.depth + 1
		rewireDepth(child)
	}
}

// Compare orders nodes by value only: -1 if n < other, 0 if equal, +1 otherwise.
func (n *Node[T]) Compare(other *Node[T]) int {
	switch {
	case n.value < other.value:
		return -1
	case n.value > other.value:
		return 1
	default:
		return 0
	}
}

// Equal compares node values. It does not compare identities or subtrees.
func (n *Node[T]) Equal(other *Node[T]) bool {
	return n.Compare(other) == 0
}

func (n *Node[T]) Less(other *Node[T]) bool {
	return n.Compare(other) < 0
}

func (n *Node[T]) Greater(other *Node[T]) bool {
	return n.Compare(other) > 0
}

func (n *Node[T]) LessEqual(other *Node[T]) bool {
	return n.Compare(other) <= 0
}

func (n *Node[T]) GreaterEqual(other *Node[T]) bool {
	return n.Compare(other) >= 0
}

// String renders the node with the identities of its parent and children,
// e.g. (parent: 0xc000010000, value: 2, terminal: true, children: [0xc000010030])
func (n *Node[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "(parent: %p, value: %v, terminal: %t, children: [", n.parent, n.value, n.terminal)
	for i, child := range n.Children() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%p", child)
	}
	sb.WriteString("])")
	return sb.String()
}
