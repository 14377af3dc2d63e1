package identity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zetool/idcontainer/errors"
	"github.com/zetool/idcontainer/identity"
)

type node struct {
	id int
}

func (n *node) ID() int { return n.id }

func TestID(t *testing.T) {
	t.Parallel()

	id := identity.ID(7)

	assert.Equal(t, 7, id.ID())
	assert.True(t, id.Equals(7))
	assert.Equal(t, id, id.Clone())
}

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("valid identity", func(t *testing.T) {
		t.Parallel()

		id, err := identity.Check(&node{id: 3})
		require.NoError(t, err)
		assert.Equal(t, 3, id)
	})

	t.Run("typed nil pointer", func(t *testing.T) {
		t.Parallel()

		var n *node

		_, err := identity.Check(n)
		require.ErrorIs(t, err, errors.ErrNilIdentity)
	})

	t.Run("nil interface", func(t *testing.T) {
		t.Parallel()

		var n identity.Identifiable

		_, err := identity.Check(n)
		require.ErrorIs(t, err, errors.ErrNilIdentity)
	})

	t.Run("negative id", func(t *testing.T) {
		t.Parallel()

		_, err := identity.Check(identity.ID(-2))
		require.ErrorIs(t, err, errors.ErrNegativeID)
	})
}

func TestMaxID(t *testing.T) {
	t.Parallel()

	t.Run("empty sequence", func(t *testing.T) {
		t.Parallel()

		maxID, err := identity.MaxID(identity.IDs())
		require.NoError(t, err)
		assert.Equal(t, -1, maxID)

		size, err := identity.DomainSize(identity.IDs())
		require.NoError(t, err)
		assert.Equal(t, 0, size)
	})

	t.Run("non contiguous ids", func(t *testing.T) {
		t.Parallel()

		maxID, err := identity.MaxID(identity.IDs(4, 0, 11, 2))
		require.NoError(t, err)
		assert.Equal(t, 11, maxID)

		size, err := identity.DomainSize(identity.IDs(4, 0, 11, 2))
		require.NoError(t, err)
		assert.Equal(t, 12, size)
	})

	t.Run("reports every invalid identity", func(t *testing.T) {
		t.Parallel()

		_, err := identity.MaxID(identity.All(&node{id: 1}, nil, &node{id: -5}))
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrNilIdentity)
		assert.ErrorIs(t, err, errors.ErrNegativeID)
		assert.Contains(t, err.Error(), "element 1")
		assert.Contains(t, err.Error(), "element 2")
	})
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var n *node

	assert.True(t, identity.IsNil(nil))
	assert.True(t, identity.IsNil(n))
	assert.False(t, identity.IsNil(&node{}))
	assert.False(t, identity.IsNil(identity.ID(0)))
}

func TestSequencesStopEarly(t *testing.T) {
	t.Parallel()

	var seen []int

	for id := range identity.IDs(1, 2, 3) {
		seen = append(seen, id.ID())
		if id == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, seen)
}
