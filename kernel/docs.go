// Package kernel provides strongly-typed identifier primitives for domain
// entities.
//
// UUID is an immutable value object wrapping github.com/google/uuid with
// validation and the converter surfaces outer layers need: text and JSON
// marshaling plus database/sql driver conversion. Its zero value is invalid
// as an identifier and doubles as the "default value" that marks an entity
// transient.
//
// TypedID adds a compile-time discriminator on top of UUID so identifiers of
// unrelated entity types cannot be mixed accidentally:
//
//	type orderIDMark struct{}
//	type OrderID = kernel.TypedID[orderIDMark]
//
// Both types are comparable and suitable as the TID parameter of ddd.Entity.
package kernel
