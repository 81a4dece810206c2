// Package keys provides split/concat pairs for common key shapes, ready to
// be passed to trie.New.
package keys

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/khalid-nowaf/keytrie/pkg/trie"
)

// Codec bundles everything needed to use one key shape with a trie:
// the split/concat pair and a text form for reading and printing keys.
type Codec[T constraints.Ordered] struct {
	Name   string
	Parse  func(raw string) (T, error)
	Format func(key T) string
	Split  trie.SplitFunc[T]
	Concat trie.ConcatFunc[T]
}

// NewTrie creates an empty trie using the codec's split and concat.
func (c Codec[T]) NewTrie(opts ...trie.Option[T]) *trie.Trie[T] {
	return trie.New(c.Split, c.Concat, opts...)
}

// Digits handles integers split into decimal digits, most significant first.
//
//	124 -> [1 2 4]
//	0   -> []
//	-12 -> [-1 -2]
func Digits() Codec[int] {
	return Codec[int]{
		Name: "int",
		Parse: func(raw string) (int, error) {
			n, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return 0, fmt.Errorf("invalid integer key %q: %w", raw, err)
			}
			return n, nil
		},
		Format: strconv.Itoa,
		Split:  SplitDigits,
		Concat: ConcatDigits,
	}
}

// SplitDigits returns the decimal digits of n. The sign is carried by every digit.
func SplitDigits(n int) []int {
	count := 0
	for rest := n; rest != 0; rest /= 10 {
		count++
	}
	digits := make([]int, count)
	for i := count - 1; i >= 0; i-- {
		digits[i] = n % 10
		n /= 10
	}
	return digits
}

// ConcatDigits rebuilds a number from its digits by place value.
func ConcatDigits(digits []int) int {
	n := 0
	for _, digit := range digits {
		n = n*10 + digit
	}
	return n
}

// Dotted handles strings split on sep, "." when sep is empty.
//
//	"foo.bar" -> ["foo" "bar"]
func Dotted(sep string) Codec[string] {
	if sep == "" {
		sep = "."
	}
	return Codec[string]{
		Name: "dotted",
		Parse: func(raw string) (string, error) {
			return raw, nil
		},
		Format: func(key string) string {
			return key
		},
		Split: func(key string) []string {
			return strings.Split(key, sep)
		},
		Concat: func(parts []string) string {
			return strings.Join(parts, sep)
		},
	}
}
