package rules

import (
	"strings"

	"github.com/alkbt/domainkit/errs"
)

// noViolationsMessage is used if a ViolationError is constructed with a valid
// result, which does not occur via the engine's normal flow.
const noViolationsMessage = "no rules were violated"

// ViolationError reports that one or more rules were violated during a
// Validate call. It carries the offending context value and the full
// evaluation result - every evaluation, not just the first violation.
//
// The message is computed eagerly at construction as the comma-separated join
// of all violated rules' descriptions. ViolationError unwraps to
// errs.ErrRuleViolation so callers can classify it without knowing the
// concrete context type:
//
//	if errors.Is(err, errs.ErrRuleViolation) { ... }
//
//	var violation *rules.ViolationError[*Money]
//	if errors.As(err, &violation) {
//	    for _, ev := range violation.Result.Violated() { ... }
//	}
type ViolationError[T any] struct {
	// Context is the value the rules were evaluated against.
	Context T
	// Result is the full evaluation result, including satisfied rules.
	Result Result[T]

	message string
}

// NewViolationError creates a ViolationError for the context and result,
// eagerly rendering the violation message.
func NewViolationError[T any](ctx T, result Result[T]) *ViolationError[T] {
	violated := result.Violated()
	if len(violated) == 0 {
		return &ViolationError[T]{Context: ctx, Result: result, message: noViolationsMessage}
	}

	descriptions := make([]string, 0, len(violated))
	for _, ev := range violated {
		descriptions = append(descriptions, ev.Rule().Describe(ctx))
	}

	return &ViolationError[T]{
		Context: ctx,
		Result:  result,
		message: strings.Join(descriptions, ", "),
	}
}

// Error returns the precomputed join of all violated rules' descriptions.
func (e *ViolationError[T]) Error() string {
	return e.message
}

// Unwrap returns errs.ErrRuleViolation for errors.Is classification.
func (e *ViolationError[T]) Unwrap() error {
	return errs.ErrRuleViolation
}
