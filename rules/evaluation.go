package rules

import "slices"

// Evaluation is an immutable record pairing a rule with its verdict for one
// context. Evaluations are created by the engine and never mutated.
type Evaluation[T any] struct {
	rule     Rule[T]
	violated bool
}

// NewEvaluation evaluates the rule against the context and records the verdict.
func NewEvaluation[T any](rule Rule[T], ctx T) Evaluation[T] {
	return Evaluation[T]{rule: rule, violated: rule.IsViolatedBy(ctx)}
}

// Rule returns the evaluated rule.
func (e Evaluation[T]) Rule() Rule[T] {
	return e.rule
}

// IsViolated reports whether the rule was violated by the context.
func (e Evaluation[T]) IsViolated() bool {
	return e.violated
}

// Result is an immutable aggregate of rule evaluations: the ordered sequence
// of all evaluations, the order-preserving violated subset, and a validity
// flag that is true iff the violated subset is empty.
//
// The zero Result is the canonical valid result: no evaluations, no
// violations, IsValid() == true. The engine returns it for empty rule lists
// without allocating.
type Result[T any] struct {
	evaluations []Evaluation[T]
	violated    []Evaluation[T]
}

// ValidResult returns the canonical valid result for the context type.
func ValidResult[T any]() Result[T] {
	return Result[T]{}
}

// NewResult aggregates a batch of evaluations into a Result.
// The violated subset is the sub-sequence of evaluations whose IsViolated()
// is true, in original order.
func NewResult[T any](evaluations []Evaluation[T]) Result[T] {
	if len(evaluations) == 0 {
		return Result[T]{}
	}

	evals := slices.Clone(evaluations)
	var violated []Evaluation[T]
	for _, ev := range evals {
		if ev.IsViolated() {
			violated = append(violated, ev)
		}
	}

	return Result[T]{evaluations: evals, violated: violated}
}

// IsValid reports whether no evaluated rule was violated.
func (r Result[T]) IsValid() bool {
	return len(r.violated) == 0
}

// Evaluations returns a copy of all evaluations in input order.
func (r Result[T]) Evaluations() []Evaluation[T] {
	return slices.Clone(r.evaluations)
}

// Violated returns a copy of the violated evaluations, preserving the
// original evaluation order.
func (r Result[T]) Violated() []Evaluation[T] {
	return slices.Clone(r.violated)
}
