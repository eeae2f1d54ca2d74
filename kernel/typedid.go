package kernel

import (
	"database/sql/driver"
)

// TypedID is a UUID discriminated by a marker type, so identifiers of
// unrelated entity types are distinct Go types and cannot be mixed by
// accident. The marker carries no data; declare one per entity and alias the
// instantiation:
//
//	type customerIDMark struct{}
//	type CustomerID = kernel.TypedID[customerIDMark]
//
// TypedID is comparable; its zero value is the identifier default that marks
// an entity transient.
type TypedID[D any] struct {
	id UUID
}

// NewTypedID generates a new random identifier for the marker type.
func NewTypedID[D any]() TypedID[D] {
	return TypedID[D]{id: NewUUID()}
}

// TypedIDFrom wraps an existing UUID into the marker's identifier type.
func TypedIDFrom[D any](id UUID) TypedID[D] {
	return TypedID[D]{id: id}
}

// TypedIDFromString parses a typed identifier from the canonical UUID string.
func TypedIDFromString[D any](s string) (TypedID[D], error) {
	id, err := UUIDFromString(s)
	if err != nil {
		return TypedID[D]{}, err
	}
	return TypedID[D]{id: id}, nil
}

// UUID returns the undiscriminated identifier value.
func (t TypedID[D]) UUID() UUID {
	return t.id
}

// String returns the canonical string form of the underlying UUID.
func (t TypedID[D]) String() string {
	return t.id.String()
}

// IsZero reports whether the identifier is the type's default value.
func (t TypedID[D]) IsZero() bool {
	return t.id.IsZero()
}

// IsEqual reports whether two identifiers of the same marker type are equal.
func (t TypedID[D]) IsEqual(other TypedID[D]) bool {
	return t.id.IsEqual(other.id)
}

// Validate returns ErrUUIDIsNotConstructed for the zero value, nil otherwise.
func (t TypedID[D]) Validate() error {
	return t.id.Validate()
}

// MarshalText implements encoding.TextMarshaler.
func (t TypedID[D]) MarshalText() ([]byte, error) {
	return t.id.MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TypedID[D]) UnmarshalText(text []byte) error {
	return t.id.UnmarshalText(text)
}

// Value implements driver.Valuer; the zero value converts to NULL.
func (t TypedID[D]) Value() (driver.Value, error) {
	return t.id.Value()
}

// Scan implements sql.Scanner.
func (t *TypedID[D]) Scan(src any) error {
	return t.id.Scan(src)
}
