// Package rules implements declarative invariant enforcement for domain objects.
//
// A Rule is a stateless capability: given a context value it can state whether
// the context violates it and describe why. Rules are evaluated by the
// package-level engine functions, which come in two flavors per call site:
//
//   - Evaluate / EvaluateAll never fail; they return a Result aggregating every
//     verdict so callers can inspect all simultaneously violated invariants.
//   - Validate / ValidateAll return a *ViolationError carrying the full Result
//     when any rule is violated.
//
// Evaluation is a full scan in input order with no short-circuiting, so a
// single violation message reports every violated invariant and is
// deterministic across runs for a deterministic rule list.
//
// The zero Result is the canonical valid result; evaluating an empty rule list
// returns it without allocation.
package rules
