package ddd

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/alkbt/domainkit/errs"
	"github.com/alkbt/domainkit/rules"
)

// Entity is the identity-bearing domain object base. Equality and hashing are
// identity-based: two entities are equal iff they are of the same concrete
// type, both have an assigned (non-transient) identifier, and the identifier
// values are equal. Mutation of other attributes never affects identity
// equality.
//
// The self type parameter T is the concrete entity type; instantiating the
// base with it makes cross-type identity comparison a compile error, which is
// this package's rendition of the "identical unproxied runtime type" check.
// TID is the identifier type; its zero value is the type's default, and an
// entity whose identifier equals the default is transient (not yet assigned a
// durable identity).
//
// Usage:
//
//	type Customer struct {
//	    ddd.Entity[*Customer, CustomerID]
//	    name string
//	}
//
//	func NewCustomer(id CustomerID, name string) (*Customer, error) {
//	    c := &Customer{name: name}
//	    base, err := ddd.NewEntity(c, id, customerInvariants()...)
//	    if err != nil {
//	        return nil, err
//	    }
//	    c.Entity = base
//	    return c, nil
//	}
type Entity[T any, TID comparable] struct {
	Validatable[T]

	id TID

	// tag is a random per-instance value used as the hash of a transient
	// entity, keeping hashing consistent with the rule that two transient
	// entities are never equal.
	tag uint64

	typeSalt uint64
}

// NewEntity creates an entity base bound to the concrete instance with an
// assigned identifier and the fixed invariant rule set.
//
// A zero (default) identifier fails fast with *errs.ValueIsRequiredError
// before any invariant is evaluated; use NewTransientEntity for entities that
// have not yet been assigned a durable identifier. Invariants are validated
// immediately; on violation the construction fails with a
// *rules.ViolationError.
func NewEntity[T any, TID comparable](self T, id TID, invariants ...rules.Rule[T]) (Entity[T, TID], error) {
	var zero TID
	if id == zero {
		return Entity[T, TID]{}, errs.NewValueIsRequiredError("id")
	}

	return newEntity(self, id, invariants)
}

// NewTransientEntity creates an entity base whose identifier is the type's
// default value. The entity is transient: it is never identity-equal to any
// other entity, including another transient one with a bitwise-equal default
// identifier, and it hashes uniquely per instance. Invariants are validated
// exactly as in NewEntity.
func NewTransientEntity[T any, TID comparable](self T, invariants ...rules.Rule[T]) (Entity[T, TID], error) {
	var zero TID
	return newEntity(self, zero, invariants)
}

func newEntity[T any, TID comparable](self T, id TID, invariants []rules.Rule[T]) (Entity[T, TID], error) {
	base, err := NewValidatable(self, invariants...)
	if err != nil {
		return Entity[T, TID]{}, err
	}

	return Entity[T, TID]{
		Validatable: base,
		id:          id,
		tag:         rand.Uint64(),
		typeSalt:    typeHash[T](),
	}, nil
}

// ID returns the entity's identifier value. For a transient entity this is
// the identifier type's default value.
func (e *Entity[T, TID]) ID() TID {
	return e.id
}

// IsTransient reports whether the entity has not yet been assigned a durable
// identifier, i.e. the identifier equals its type's default value.
func (e *Entity[T, TID]) IsTransient() bool {
	var zero TID
	return e.id == zero
}

// AssignID assigns a durable identifier to a transient entity.
// It fails with *errs.ValueIsRequiredError for a default identifier and with
// *errs.ValueIsInvalidError if the entity already has an identifier; an
// assigned identifier is immutable thereafter.
func (e *Entity[T, TID]) AssignID(id TID) error {
	var zero TID
	if id == zero {
		return errs.NewValueIsRequiredError("id")
	}
	if !e.IsTransient() {
		return errs.NewValueIsInvalidError("id is already assigned")
	}

	e.id = id
	return nil
}

// IsEqual reports identity equality with another entity of the same concrete
// type: false for nil, true for the same instance, false if either side is
// transient, otherwise identifier equality. Two transient entities are never
// equal, even with bitwise-equal default identifiers, because identity has
// not been assigned yet.
func (e *Entity[T, TID]) IsEqual(other *Entity[T, TID]) bool {
	if other == nil {
		return false
	}
	if e == other {
		return true
	}
	if e.IsTransient() || other.IsTransient() {
		return false
	}
	return e.id == other.id
}

// HashCode returns the entity's identity hash. A transient entity hashes to
// its per-instance tag, so each transient instance hashes uniquely; a
// persisted entity combines the concrete type and the identifier value.
// Hash codes are stable within a process run only.
func (e *Entity[T, TID]) HashCode() uint64 {
	if e.IsTransient() {
		return e.tag
	}
	return combineHash(e.typeSalt, maphash.Comparable(hashSeed, e.id))
}
