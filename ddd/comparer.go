package ddd

import (
	"hash/maphash"
	"strings"
	"unicode"
)

// Comparer compares and hashes a single equality component of a value object.
// Implementations must be consistent: components reported equal must produce
// the same hash.
type Comparer interface {
	// Equal reports whether two components are equal.
	Equal(a, b any) bool
	// Hash returns the component's hash code.
	Hash(v any) uint64
}

// DefaultComparer returns the uniform comparer used when no override is
// configured: components are compared with == and hashed by value.
// Components must therefore hold comparable dynamic types.
func DefaultComparer() Comparer {
	return defaultComparer{}
}

type defaultComparer struct{}

func (defaultComparer) Equal(a, b any) bool {
	return a == b
}

func (defaultComparer) Hash(v any) uint64 {
	if v == nil {
		return 0
	}
	return maphash.Comparable(hashSeed, v)
}

// StringFoldComparer returns a comparer that treats string components as
// equal under Unicode simple case folding, matching strings.EqualFold, and
// hashes them case-insensitively. Non-string components fall back to the
// default comparer's behavior.
func StringFoldComparer() Comparer {
	return stringFoldComparer{}
}

type stringFoldComparer struct{}

func (stringFoldComparer) Equal(a, b any) bool {
	sa, okA := a.(string)
	sb, okB := b.(string)
	if okA && okB {
		return strings.EqualFold(sa, sb)
	}
	return defaultComparer{}.Equal(a, b)
}

func (stringFoldComparer) Hash(v any) uint64 {
	if s, ok := v.(string); ok {
		return maphash.Comparable(hashSeed, foldCanonical(s))
	}
	return defaultComparer{}.Hash(v)
}

// foldCanonical maps every rune to the smallest rune in its simple case-fold
// orbit, yielding a form that is identical for any two strings
// strings.EqualFold reports equal. Hashing this form keeps the comparer's
// equal-implies-equal-hash contract over the full folding set, where
// strings.ToLower would not (e.g. 'ſ' folds to 's' but lowers to itself).
func foldCanonical(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		c := r
		for f := unicode.SimpleFold(r); f != r; f = unicode.SimpleFold(f) {
			if f < c {
				c = f
			}
		}
		b.WriteRune(c)
	}
	return b.String()
}
