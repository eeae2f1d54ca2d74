package enum

import (
	"slices"
	"strings"
	"sync/atomic"

	"github.com/alkbt/domainkit/errs"
)

// Valued is satisfied by any concrete enumeration type embedding Member.
type Valued interface {
	// Value returns the member's integer value.
	Value() int
	// Name returns the member's declared name.
	Name() string
}

// Set is the per-type registry of a concrete enumeration's declared
// instances. The declaration function is invoked at most once, lazily, on
// first lookup; its result is published with an atomic compare-and-set and
// cached for the process lifetime. Declaration order is preserved, and the
// declared set is assumed exhaustive once cached - no instances may be added
// afterwards.
//
// Duplicate declared values or names are tolerated, not rejected: lookups
// resolve to the first-declared instance, shadowing the rest.
type Set[T Valued] struct {
	declare func() []T
	members atomic.Pointer[[]T]
}

// NewSet creates the registry for a concrete enumeration type. The declare
// function must return every declared instance in declaration order and must
// be pure; it typically just lists the type's package-level variables. A nil
// declare function yields an empty set.
func NewSet[T Valued](declare func() []T) *Set[T] {
	return &Set[T]{declare: declare}
}

// Members returns a copy of the full cached declaration list, materializing
// it on first access.
func (s *Set[T]) Members() []T {
	return slices.Clone(s.materialize())
}

// Len returns the number of declared instances.
func (s *Set[T]) Len() int {
	return len(s.materialize())
}

// TryFromValue scans the declared instances for the first member with the
// given value, reporting whether one was found.
func (s *Set[T]) TryFromValue(value int) (T, bool) {
	for _, member := range s.materialize() {
		if member.Value() == value {
			return member, true
		}
	}
	var zero T
	return zero, false
}

// FromValue returns the first declared member with the given value, or an
// *errs.ObjectNotFoundError if none is declared.
func (s *Set[T]) FromValue(value int) (T, error) {
	member, ok := s.TryFromValue(value)
	if !ok {
		var zero T
		return zero, errs.NewObjectNotFoundError("value", value)
	}
	return member, nil
}

// TryFromName scans the declared instances for the first member with the
// given name, reporting whether one was found. The comparison is exact, or
// case-insensitive when ignoreCase is set.
func (s *Set[T]) TryFromName(name string, ignoreCase bool) (T, bool) {
	for _, member := range s.materialize() {
		if namesEqual(member.Name(), name, ignoreCase) {
			return member, true
		}
	}
	var zero T
	return zero, false
}

// FromName returns the first declared member with the given name, or an
// *errs.ObjectNotFoundError if none is declared.
func (s *Set[T]) FromName(name string, ignoreCase bool) (T, error) {
	member, ok := s.TryFromName(name, ignoreCase)
	if !ok {
		var zero T
		return zero, errs.NewObjectNotFoundError("name", name)
	}
	return member, nil
}

// IsDefinedValue reports whether any declared member has the given value.
func (s *Set[T]) IsDefinedValue(value int) bool {
	_, ok := s.TryFromValue(value)
	return ok
}

// IsDefinedName reports whether any declared member has the given name.
func (s *Set[T]) IsDefinedName(name string, ignoreCase bool) bool {
	_, ok := s.TryFromName(name, ignoreCase)
	return ok
}

// materialize returns the published declaration list, running the declare
// function and publishing its result on first access. Concurrent first
// callers may both declare; the loser discards its list and reads the
// winner's, which is harmless because declaration is pure and yields
// identical content.
func (s *Set[T]) materialize() []T {
	if published := s.members.Load(); published != nil {
		return *published
	}

	var declared []T
	if s.declare != nil {
		declared = slices.Clone(s.declare())
	}
	if declared == nil {
		declared = []T{}
	}

	if s.members.CompareAndSwap(nil, &declared) {
		return declared
	}
	return *s.members.Load()
}

func namesEqual(a, b string, ignoreCase bool) bool {
	if ignoreCase {
		return strings.EqualFold(a, b)
	}
	return a == b
}
