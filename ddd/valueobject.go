package ddd

import (
	"slices"
	"sync/atomic"

	"github.com/alkbt/domainkit/rules"
)

// ComponentProvider is the equality-components contract for value objects.
// The returned sequence must be a pure, deterministic function of immutable
// instance state: same instance, same components, in the same caller-declared
// order, on every call.
type ComponentProvider interface {
	// EqualityComponents yields the ordered comparison fields of the value
	// object. With the default comparer, every component must hold a
	// comparable dynamic type.
	EqualityComponents() []any
}

// componentCache is the per-instance publish-once cell for materialized
// equality components. It lives behind a pointer so the embedding ValueObject
// stays copyable during construction while racing readers share one cell.
type componentCache struct {
	components atomic.Pointer[[]any]
}

// ValueObject is the attribute-bearing domain object base. Equality and
// hashing are structural, over an ordered, immutable sequence of equality
// components supplied once by the concrete type through ComponentProvider.
//
// On first access the component sequence is fully materialized and published
// with an atomic compare-and-set. Two racing readers may both materialize;
// the loser discards its own slice and reads the winner's, which is safe
// because materialization is pure, so the cache is lock-free without
// sacrificing correctness. Once published, the cached sequence never changes
// for the instance's lifetime. Subsequent equality and hash checks are O(1)
// in materialization cost, which matters because value objects are compared
// in hot paths such as collections and deduplication.
//
// Usage:
//
//	type Money struct {
//	    ddd.ValueObject[*Money]
//	    amount   int64
//	    currency string
//	}
//
//	func (m *Money) EqualityComponents() []any {
//	    return []any{m.amount, m.currency}
//	}
type ValueObject[T any] struct {
	Validatable[T]

	provider func() []any
	cache    *componentCache
	uniform  Comparer
	perIndex []Comparer
}

// ValueObjectOption configures comparer overrides for a value object base.
type ValueObjectOption func(*valueObjectConfig)

type valueObjectConfig struct {
	uniform  Comparer
	perIndex []Comparer
}

// WithComparer overrides the uniform component comparer.
func WithComparer(c Comparer) ValueObjectOption {
	return func(cfg *valueObjectConfig) {
		cfg.uniform = c
	}
}

// WithComponentComparers supplies one comparer per equality component, by
// index. A nil entry falls back to the uniform comparer for that index. If
// the number of comparers does not match the number of components, the whole
// list is ignored and the uniform comparer applies to every component.
func WithComponentComparers(comparers ...Comparer) ValueObjectOption {
	return func(cfg *valueObjectConfig) {
		cfg.perIndex = slices.Clone(comparers)
	}
}

// NewValueObject creates a value object base bound to the concrete instance,
// validating the fixed invariant rule set immediately; on violation the
// construction fails with a *rules.ViolationError.
//
// The instance's component-relevant fields must be assigned before this call,
// and must never change afterwards.
func NewValueObject[T ComponentProvider](
	self T, invariants []rules.Rule[T], opts ...ValueObjectOption,
) (ValueObject[T], error) {
	cfg := valueObjectConfig{uniform: DefaultComparer()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.uniform == nil {
		cfg.uniform = DefaultComparer()
	}

	base, err := NewValidatable(self, invariants...)
	if err != nil {
		return ValueObject[T]{}, err
	}

	return ValueObject[T]{
		Validatable: base,
		provider:    self.EqualityComponents,
		cache:       &componentCache{},
		uniform:     cfg.uniform,
		perIndex:    cfg.perIndex,
	}, nil
}

// Components returns a copy of the cached equality components, materializing
// them on first access.
func (v *ValueObject[T]) Components() []any {
	return slices.Clone(v.cached())
}

// cached returns the published component sequence, materializing and
// publishing it on first access. A losing racer's computation is discarded
// and the winner's published slice is read back, so all callers observe the
// same fully materialized sequence.
func (v *ValueObject[T]) cached() []any {
	if v.cache == nil {
		// Zero-value base, not created via NewValueObject; nothing to cache.
		return nil
	}
	if published := v.cache.components.Load(); published != nil {
		return *published
	}

	materialized := slices.Clone(v.provider())
	if v.cache.components.CompareAndSwap(nil, &materialized) {
		return materialized
	}
	return *v.cache.components.Load()
}

// IsEqual reports structural equality with another value object of the same
// concrete type: false for nil, true for the same instance, otherwise
// element-wise comparison of the cached component sequences.
//
// A component-count mismatch returns false. It is defensive only: it cannot
// occur for a correct, deterministic EqualityComponents implementation and
// indicates a programming-contract violation, not a recoverable condition.
func (v *ValueObject[T]) IsEqual(other *ValueObject[T]) bool {
	if other == nil {
		return false
	}
	if v == other {
		return true
	}

	a, b := v.cached(), other.cached()
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !v.comparerAt(i, len(a)).Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// HashCode accumulates a combined hash over all components in order, each
// hashed by its effective comparer. The accumulator is order-sensitive so a
// permuted component sequence does not collide with the original by
// construction.
func (v *ValueObject[T]) HashCode() uint64 {
	components := v.cached()

	acc := hashOffset
	for i, component := range components {
		acc = combineHash(acc, v.comparerAt(i, len(components)).Hash(component))
	}
	return acc
}

// comparerAt resolves the effective comparer for a component index: the
// per-index comparer when the override list matches the component count
// (nil entries fall back to the uniform comparer), the uniform comparer
// otherwise.
func (v *ValueObject[T]) comparerAt(i, componentCount int) Comparer {
	if len(v.perIndex) == componentCount {
		if c := v.perIndex[i]; c != nil {
			return c
		}
	}
	return v.uniform
}
