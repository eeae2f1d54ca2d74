package rules

// Evaluate runs a single rule against the context and wraps its verdict.
// It never fails: a satisfied rule yields the canonical valid result.
func Evaluate[T any](ctx T, rule Rule[T]) Result[T] {
	ev := NewEvaluation(rule, ctx)
	if !ev.IsViolated() {
		return Result[T]{}
	}
	return Result[T]{
		evaluations: []Evaluation[T]{ev},
		violated:    []Evaluation[T]{ev},
	}
}

// EvaluateAll runs every rule against the context in input order and
// aggregates the verdicts. The scan is exhaustive - no short-circuit on the
// first violation - so the result reports all simultaneously violated
// invariants and violation messages stay deterministic and reproducible.
//
// An empty rule list returns the canonical valid result without allocation.
func EvaluateAll[T any](ctx T, ruleSet ...Rule[T]) Result[T] {
	if len(ruleSet) == 0 {
		return Result[T]{}
	}

	evaluations := make([]Evaluation[T], 0, len(ruleSet))
	for _, rule := range ruleSet {
		evaluations = append(evaluations, NewEvaluation(rule, ctx))
	}

	var violated []Evaluation[T]
	for _, ev := range evaluations {
		if ev.IsViolated() {
			violated = append(violated, ev)
		}
	}

	return Result[T]{evaluations: evaluations, violated: violated}
}

// Validate runs a single rule against the context and returns a
// *ViolationError carrying the context and the full result if the rule is
// violated. Returns nil otherwise.
func Validate[T any](ctx T, rule Rule[T]) error {
	if result := Evaluate(ctx, rule); !result.IsValid() {
		return NewViolationError(ctx, result)
	}
	return nil
}

// ValidateAll runs every rule against the context in input order and returns
// a *ViolationError carrying the context and the full result if any rule is
// violated. Returns nil otherwise; an empty rule list never fails.
func ValidateAll[T any](ctx T, ruleSet ...Rule[T]) error {
	if result := EvaluateAll(ctx, ruleSet...); !result.IsValid() {
		return NewViolationError(ctx, result)
	}
	return nil
}
