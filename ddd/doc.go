// Package ddd provides the generic building blocks for domain objects
// following Domain-Driven Design principles: construction-time invariant
// enforcement, identity-based equality for entities, and structural equality
// with cached components for value objects.
//
// The package includes:
//   - Validatable: wires a fixed rule set to a concrete context type and
//     validates it at construction, so a successfully constructed object is
//     invariant-valid at birth
//   - Entity: identity-bearing base with transient-aware equality and hashing
//   - ValueObject: attribute-bearing base with lock-free lazily cached
//     equality components and pluggable component comparers
//   - AggregateRoot: entity base extended with a pending-event buffer and a
//     version counter
//   - Auditable: created/updated audit metadata mixin
//
// The bases are self-bounded generics: a concrete type embeds the base
// instantiated with its own pointer type, and the constructor receives the
// concrete instance so invariants and equality components are evaluated
// against it.
//
//	type Money struct {
//	    ddd.ValueObject[*Money]
//	    amount   int64
//	    currency string
//	}
//
// All shared mutable state in this package is confined to per-instance
// equality-component caches, published at most once with an atomic
// compare-and-swap. The library introduces no goroutines and no locks.
package ddd
