package ddd_test

import (
	"testing"
	"time"

	"github.com/alkbt/domainkit/ddd"

	"github.com/stretchr/testify/assert"
)

func TestAuditable(t *testing.T) {
	t.Run("mark created stamps both created and updated", func(t *testing.T) {
		now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		audit := ddd.NewAuditable(func() time.Time { return now })

		audit.MarkCreated("alice")

		assert.Equal(t, now, audit.CreatedAt())
		assert.Equal(t, "alice", audit.CreatedBy())
		assert.Equal(t, now, audit.UpdatedAt())
		assert.Equal(t, "alice", audit.UpdatedBy())
	})

	t.Run("mark updated leaves creation metadata untouched", func(t *testing.T) {
		created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		updated := created.Add(time.Hour)
		current := created
		audit := ddd.NewAuditable(func() time.Time { return current })

		audit.MarkCreated("alice")
		current = updated
		audit.MarkUpdated("bob")

		assert.Equal(t, created, audit.CreatedAt())
		assert.Equal(t, "alice", audit.CreatedBy())
		assert.Equal(t, updated, audit.UpdatedAt())
		assert.Equal(t, "bob", audit.UpdatedBy())
	})

	t.Run("nil clock falls back to wall time", func(t *testing.T) {
		audit := ddd.NewAuditable(nil)

		before := time.Now()
		audit.MarkCreated("alice")
		after := time.Now()

		assert.False(t, audit.CreatedAt().Before(before))
		assert.False(t, audit.CreatedAt().After(after))
	})

	t.Run("zero value is usable and stamps wall time", func(t *testing.T) {
		var audit ddd.Auditable
		audit.MarkUpdated("carol")
		assert.Equal(t, "carol", audit.UpdatedBy())
		assert.False(t, audit.UpdatedAt().IsZero())
	})
}
