package ddd

import "time"

// Clock supplies the current time. Tests inject a fixed clock; a nil clock
// means time.Now.
type Clock func() time.Time

// Auditable is a metadata mixin recording who created and last updated a
// domain object and when. It carries no invariants of its own.
type Auditable struct {
	createdAt time.Time
	createdBy string
	updatedAt time.Time
	updatedBy string
	clock     Clock
}

// NewAuditable creates an audit mixin using the given clock, or time.Now if
// the clock is nil.
func NewAuditable(clock Clock) Auditable {
	if clock == nil {
		clock = time.Now
	}
	return Auditable{clock: clock}
}

// MarkCreated stamps the creation metadata and initializes the update
// metadata to match.
func (a *Auditable) MarkCreated(by string) {
	now := a.now()
	a.createdAt = now
	a.createdBy = by
	a.updatedAt = now
	a.updatedBy = by
}

// MarkUpdated stamps the update metadata.
func (a *Auditable) MarkUpdated(by string) {
	a.updatedAt = a.now()
	a.updatedBy = by
}

// CreatedAt returns when the object was created.
func (a *Auditable) CreatedAt() time.Time {
	return a.createdAt
}

// CreatedBy returns who created the object.
func (a *Auditable) CreatedBy() string {
	return a.createdBy
}

// UpdatedAt returns when the object was last updated.
func (a *Auditable) UpdatedAt() time.Time {
	return a.updatedAt
}

// UpdatedBy returns who last updated the object.
func (a *Auditable) UpdatedBy() string {
	return a.updatedBy
}

func (a *Auditable) now() time.Time {
	if a.clock == nil {
		return time.Now()
	}
	return a.clock()
}
