// Package specification implements composable predicates over domain objects.
// Specifications are pure, in-memory predicates combinable with And, Or, and
// Not, and can be bridged into the rules engine with AsRule. Translation of
// specifications into external query languages is out of scope.
package specification

import "github.com/alkbt/domainkit/rules"

// Specification is a predicate over candidate values. Implementations must
// be pure and side-effect free so combined specifications stay referentially
// transparent.
type Specification[T any] interface {
	// IsSatisfiedBy reports whether the candidate satisfies the predicate.
	IsSatisfiedBy(candidate T) bool
}

// Func adapts a plain predicate function into a Specification.
type Func[T any] func(T) bool

// IsSatisfiedBy reports the function's verdict for the candidate.
func (f Func[T]) IsSatisfiedBy(candidate T) bool {
	return f(candidate)
}

// And combines specifications conjunctively: the result is satisfied iff
// every given specification is. With no arguments it is always satisfied.
func And[T any](specs ...Specification[T]) Specification[T] {
	return andSpecification[T]{specs: specs}
}

type andSpecification[T any] struct {
	specs []Specification[T]
}

func (s andSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if !spec.IsSatisfiedBy(candidate) {
			return false
		}
	}
	return true
}

// Or combines specifications disjunctively: the result is satisfied iff at
// least one given specification is. With no arguments it is never satisfied.
func Or[T any](specs ...Specification[T]) Specification[T] {
	return orSpecification[T]{specs: specs}
}

type orSpecification[T any] struct {
	specs []Specification[T]
}

func (s orSpecification[T]) IsSatisfiedBy(candidate T) bool {
	for _, spec := range s.specs {
		if spec.IsSatisfiedBy(candidate) {
			return true
		}
	}
	return false
}

// Not negates a specification.
func Not[T any](spec Specification[T]) Specification[T] {
	return notSpecification[T]{spec: spec}
}

type notSpecification[T any] struct {
	spec Specification[T]
}

func (s notSpecification[T]) IsSatisfiedBy(candidate T) bool {
	return !s.spec.IsSatisfiedBy(candidate)
}

// AsRule bridges a specification into the rules engine: the resulting rule is
// violated by any context that does not satisfy the specification, and
// describes itself with the given description.
func AsRule[T any](spec Specification[T], description string) rules.Rule[T] {
	return rules.NewFuncRule(description, func(ctx T) bool {
		return !spec.IsSatisfiedBy(ctx)
	})
}
