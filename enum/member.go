// Package enum implements reflective-free, type-safe smart enumerations:
// named constant singletons with value-based ordering and per-type cached
// declaration lists.
//
// A concrete enumeration type embeds Member and declares its instances as
// package variables, then registers them once through a Set:
//
//	type Status struct{ enum.Member }
//
//	var (
//	    StatusPending = Status{enum.NewMember(1, "Pending")}
//	    StatusShipped = Status{enum.NewMember(2, "Shipped")}
//	)
//
//	var Statuses = enum.NewSet(func() []Status {
//	    return []Status{StatusPending, StatusShipped}
//	})
//
// The declaration function replaces runtime reflection over static members:
// it is the type's explicit, compile-time-checked registration step. The Set
// materializes it at most once, on first lookup, publishing the list with an
// atomic compare-and-set; concurrent first callers may both run the pure
// declaration function, and the loser's result is discarded.
//
// Because concrete enumeration types are plain comparable structs, instances
// compare with == and equality requires the same concrete type, enforced at
// compile time.
package enum

import "cmp"

// Member is an immutable (value, name) pair belonging to a concrete
// enumeration type. Concrete types embed it and gain comparability, ordering,
// and text marshaling.
type Member struct {
	value int
	name  string
}

// NewMember creates a member with the given value and name.
func NewMember(value int, name string) Member {
	return Member{value: value, name: name}
}

// Value returns the member's integer value.
func (m Member) Value() int {
	return m.value
}

// Name returns the member's declared name.
func (m Member) Name() string {
	return m.name
}

// String implements fmt.Stringer, returning the member's name.
func (m Member) String() string {
	return m.name
}

// Compare orders members numerically by value: negative when m is smaller,
// zero when equal, positive when greater. A nil other is treated as absent
// and m compares greater.
func (m Member) Compare(other *Member) int {
	if other == nil {
		return 1
	}
	return cmp.Compare(m.value, other.value)
}

// MarshalText encodes the member as its name, so enumeration-embedding types
// serialize readably in JSON and other text formats. Decoding goes through
// the type's Set lookups, which know the declared instances.
func (m Member) MarshalText() ([]byte, error) {
	return []byte(m.name), nil
}
