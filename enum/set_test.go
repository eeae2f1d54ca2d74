package enum_test

import (
	"sync/atomic"
	"testing"

	"github.com/alkbt/domainkit/enum"
	"github.com/alkbt/domainkit/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// priority is the package's enumeration fixture.
type priority struct{ enum.Member }

var (
	priorityLow    = priority{enum.NewMember(1, "Low")}
	priorityMedium = priority{enum.NewMember(2, "Medium")}
	priorityHigh   = priority{enum.NewMember(3, "High")}
)

func newPrioritySet() *enum.Set[priority] {
	return enum.NewSet(func() []priority {
		return []priority{priorityLow, priorityMedium, priorityHigh}
	})
}

func TestMember(t *testing.T) {
	t.Run("accessors expose the declared pair", func(t *testing.T) {
		assert.Equal(t, 2, priorityMedium.Value())
		assert.Equal(t, "Medium", priorityMedium.Name())
		assert.Equal(t, "Medium", priorityMedium.String())
	})

	t.Run("concrete instances compare with ==", func(t *testing.T) {
		again := priority{enum.NewMember(2, "Medium")}
		assert.Equal(t, priorityMedium, again)
		assert.NotEqual(t, priorityMedium, priorityHigh)
	})

	t.Run("compare orders numerically by value", func(t *testing.T) {
		assert.Negative(t, priorityLow.Compare(&priorityHigh.Member))
		assert.Positive(t, priorityHigh.Compare(&priorityLow.Member))
		assert.Zero(t, priorityMedium.Compare(&priorityMedium.Member))
	})

	t.Run("comparing to absent treats this instance as greater", func(t *testing.T) {
		assert.Positive(t, priorityLow.Compare(nil))
	})

	t.Run("marshals as its name", func(t *testing.T) {
		text, err := priorityHigh.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, "High", string(text))
	})
}

func TestSet_Lookups(t *testing.T) {
	set := newPrioritySet()

	t.Run("round-trip by value and name for every declared member", func(t *testing.T) {
		for _, member := range set.Members() {
			byValue, err := set.FromValue(member.Value())
			require.NoError(t, err)
			assert.Equal(t, member, byValue)

			byName, err := set.FromName(member.Name(), false)
			require.NoError(t, err)
			assert.Equal(t, member, byName)
		}
	})

	t.Run("try variants report not-found without failing", func(t *testing.T) {
		_, ok := set.TryFromValue(99)
		assert.False(t, ok)

		_, ok = set.TryFromName("Urgent", false)
		assert.False(t, ok)
	})

	t.Run("from variants fail with object-not-found", func(t *testing.T) {
		_, err := set.FromValue(99)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)

		_, err = set.FromName("Urgent", true)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("name lookup is exact by default", func(t *testing.T) {
		_, ok := set.TryFromName("medium", false)
		assert.False(t, ok)
	})

	t.Run("case-insensitive name lookup", func(t *testing.T) {
		member, ok := set.TryFromName("medium", true)
		require.True(t, ok)
		assert.Equal(t, priorityMedium, member)
	})

	t.Run("is-defined checks", func(t *testing.T) {
		assert.True(t, set.IsDefinedValue(1))
		assert.False(t, set.IsDefinedValue(99))
		assert.True(t, set.IsDefinedName("High", false))
		assert.True(t, set.IsDefinedName("high", true))
		assert.False(t, set.IsDefinedName("high", false))
	})
}

func TestSet_Declarations(t *testing.T) {
	t.Run("members preserves declaration order", func(t *testing.T) {
		set := newPrioritySet()

		members := set.Members()
		require.Len(t, members, 3)
		assert.Equal(t, []priority{priorityLow, priorityMedium, priorityHigh}, members)
		assert.Equal(t, 3, set.Len())
	})

	t.Run("members returns a copy", func(t *testing.T) {
		set := newPrioritySet()

		members := set.Members()
		members[0] = priorityHigh

		assert.Equal(t, priorityLow, set.Members()[0])
	})

	t.Run("duplicate values resolve to the first declared", func(t *testing.T) {
		shadowLow := priority{enum.NewMember(1, "ShadowLow")}
		set := enum.NewSet(func() []priority {
			return []priority{priorityLow, shadowLow}
		})

		member, err := set.FromValue(1)
		require.NoError(t, err)
		assert.Equal(t, priorityLow, member)

		// The shadowed member is still reachable by name.
		byName, err := set.FromName("ShadowLow", false)
		require.NoError(t, err)
		assert.Equal(t, shadowLow, byName)
	})

	t.Run("nil declaration function yields an empty set", func(t *testing.T) {
		set := enum.NewSet[priority](nil)
		assert.Empty(t, set.Members())
		assert.Zero(t, set.Len())
	})

	t.Run("declaration runs lazily and at most once after publication", func(t *testing.T) {
		var calls atomic.Int64
		set := enum.NewSet(func() []priority {
			calls.Add(1)
			return []priority{priorityLow}
		})

		assert.Zero(t, calls.Load())

		_ = set.Members()
		settled := calls.Load()
		require.GreaterOrEqual(t, settled, int64(1))

		_, _ = set.TryFromValue(1)
		_ = set.Members()
		assert.Equal(t, settled, calls.Load())
	})
}

func TestSet_ConcurrentFirstAccess(t *testing.T) {
	set := newPrioritySet()

	const readers = 16
	results := make([][]priority, readers)

	var g errgroup.Group
	for i := range readers {
		g.Go(func() error {
			results[i] = set.Members()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	for i := range readers {
		assert.Equal(t, []priority{priorityLow, priorityMedium, priorityHigh}, results[i])
	}
}
