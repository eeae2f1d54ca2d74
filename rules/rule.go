package rules

// Rule is a single domain invariant checkable against a context value.
//
// Implementations must be pure and stateless: neither method may mutate the
// context or the rule, and both must return the same answer for the same
// context. Rule instances may be freely shared and reused across contexts
// and goroutines.
//
// Example:
//
//	type nonEmptyNameRule struct{}
//
//	func (nonEmptyNameRule) Describe(c *Customer) string {
//	    return "customer name must not be empty"
//	}
//
//	func (nonEmptyNameRule) IsViolatedBy(c *Customer) bool {
//	    return c.Name() == ""
//	}
type Rule[T any] interface {
	// Describe returns a human-readable description of the invariant,
	// suitable for inclusion in a violation message. The context is
	// available so descriptions can reference the offending values.
	Describe(ctx T) string

	// IsViolatedBy reports whether the context violates the invariant.
	IsViolatedBy(ctx T) bool
}

// FuncRule adapts a description and a predicate function into a Rule.
// It is the lightweight way to declare invariants inline without a
// dedicated rule type.
//
// Example:
//
//	positiveAmount := rules.NewFuncRule("amount must be positive",
//	    func(m *Money) bool { return m.Amount() <= 0 })
type FuncRule[T any] struct {
	description string
	violated    func(T) bool
}

// NewFuncRule creates a FuncRule with the given description and violation
// predicate. The predicate must be pure and side-effect free.
func NewFuncRule[T any](description string, violated func(T) bool) FuncRule[T] {
	return FuncRule[T]{description: description, violated: violated}
}

// Describe returns the rule's static description.
func (r FuncRule[T]) Describe(T) string {
	return r.description
}

// IsViolatedBy reports the predicate's verdict for the context.
// A FuncRule constructed without a predicate is never violated.
func (r FuncRule[T]) IsViolatedBy(ctx T) bool {
	if r.violated == nil {
		return false
	}
	return r.violated(ctx)
}
