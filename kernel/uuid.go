package kernel

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"

	"github.com/alkbt/domainkit/errs"
)

// ErrUUIDIsNotConstructed indicates a zero-value UUID was used where an
// assigned identifier is required.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is an immutable value object representing a universally unique
// identifier. It wraps github.com/google/uuid to provide domain-specific
// validation and keep the third-party type out of domain signatures.
//
// The zero value is invalid as an identifier; construct instances with
// NewUUID, UUIDFromString, or UUIDFromBytes. Entities treat the zero value
// as the identifier type's default, i.e. the transient marker.
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a new random (version 4) identifier.
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses a UUID from its string representation, accepting the
// standard formats understood by github.com/google/uuid.
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes creates a UUID from a 16-byte slice.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}
	return newID, nil
}

// String returns the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" form.
func (u UUID) String() string {
	return u.id.String()
}

// Raw returns the underlying uuid.UUID for integration with external
// libraries. Prefer the domain-level methods elsewhere.
func (u UUID) Raw() uuid.UUID {
	return u.id
}

// IsEqual reports whether two UUIDs represent the same value.
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// IsZero reports whether the UUID is the zero (nil) value.
func (u UUID) IsZero() bool {
	return u.id == uuid.Nil
}

// Validate returns ErrUUIDIsNotConstructed for the zero value, nil otherwise.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler, emitting the canonical
// string form. JSON marshaling follows from this.
func (u UUID) MarshalText() ([]byte, error) {
	return []byte(u.id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (u *UUID) UnmarshalText(text []byte) error {
	parsed, err := UUIDFromString(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Value implements driver.Valuer, storing the UUID as its canonical string.
// The zero value converts to NULL.
func (u UUID) Value() (driver.Value, error) {
	if u.IsZero() {
		return nil, nil
	}
	return u.id.String(), nil
}

// Scan implements sql.Scanner, accepting NULL, string, and []byte sources.
func (u *UUID) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*u = UUID{}
		return nil
	case string:
		parsed, err := UUIDFromString(v)
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	case []byte:
		parsed, err := UUIDFromString(string(v))
		if err != nil {
			return err
		}
		*u = parsed
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("uuid",
			fmt.Errorf("cannot scan %T into UUID", src))
	}
}
