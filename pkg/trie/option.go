package trie

import (
	"log/slog"

	"golang.org/x/exp/constraints"
)

type Option[T constraints.Ordered] func(*Trie[T]) *Trie[T]

// DefaultOptions returns a trie with an empty root and the default logger.
// split and concat are left unset.
func DefaultOptions[T constraints.Ordered]() *Trie[T] {
	return &Trie[T]{
		root:   NewNode[T](),
		logger: slog.Default(),
	}
}

// WithLogger sets the logger used for Debug traces of insertions and misses.
func WithLogger[T constraints.Ordered](logger *slog.Logger) Option[T] {
	return func(t *Trie[T]) *Trie[T] {
		if logger != nil {
			t.logger = logger
		}
		return t
	}
}
