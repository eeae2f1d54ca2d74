package ddd

import (
	"errors"
	"slices"

	"github.com/alkbt/domainkit/rules"
)

// ErrNotConstructed is the default error returned by Validatable.Guard when a
// nil error is passed, ensuring the guard always fails with a meaningful
// message for zero-value instances.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// Validatable wires a fixed set of invariant rules to a concrete context type.
// The rule set is supplied once at construction and never re-derived; the
// constructor validates it immediately, so construction fails synchronously
// if any invariant is violated and no partially-constructed state is ever
// observable.
//
// Validatable is embedded by Entity and ValueObject and may also be embedded
// directly by domain types that need invariants without identity or
// structural equality.
type Validatable[T any] struct {
	self        T
	invariants  []rules.Rule[T]
	constructed bool
}

// NewValidatable binds the rule set to the concrete instance and validates it.
// If the rule set is non-empty and any rule is violated, construction fails
// with a *rules.ViolationError and the zero Validatable is returned.
//
// The self parameter is the concrete domain object under construction; its
// rule-relevant fields must be assigned before this call.
func NewValidatable[T any](self T, invariants ...rules.Rule[T]) (Validatable[T], error) {
	v := Validatable[T]{
		self:        self,
		invariants:  slices.Clone(invariants),
		constructed: true,
	}

	if len(v.invariants) > 0 {
		if err := rules.ValidateAll(self, v.invariants...); err != nil {
			return Validatable[T]{}, err
		}
	}

	return v, nil
}

// EvaluateInvariants re-evaluates the fixed rule set against the instance and
// returns the aggregated result without failing. Useful before a
// state-changing operation.
func (v *Validatable[T]) EvaluateInvariants() rules.Result[T] {
	return rules.EvaluateAll(v.self, v.invariants...)
}

// ValidateInvariants re-validates the fixed rule set against the instance,
// returning a *rules.ViolationError if any rule is violated.
func (v *Validatable[T]) ValidateInvariants() error {
	return rules.ValidateAll(v.self, v.invariants...)
}

// Guard reports whether the instance was created through its constructor.
// A zero-value (directly initialized) instance fails with onUnconstructed,
// or ErrNotConstructed if onUnconstructed is nil. Domain types expose this
// through their own Validate methods:
//
//	var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder")
//
//	func (o *Order) Validate() error {
//	    return o.Guard(ErrOrderIsNotConstructed)
//	}
func (v *Validatable[T]) Guard(onUnconstructed error) error {
	if !v.constructed {
		if onUnconstructed == nil {
			return ErrNotConstructed
		}
		return onUnconstructed
	}
	return nil
}
