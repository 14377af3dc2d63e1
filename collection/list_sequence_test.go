package collection_test

import (
	"fmt"
	"hash"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zetool/idcontainer/collection"
	"github.com/zetool/idcontainer/errors"
	"github.com/zetool/idcontainer/hashing"
	"github.com/zetool/idcontainer/identity"
)

// vertex is a mutable element whose equality looks at both ID and label.
type vertex struct {
	id    int
	label string
}

func (v *vertex) ID() int { return v.id }

func (v *vertex) Equals(other *vertex) bool {
	return other != nil && v.id == other.id && v.label == other.label
}

func (v *vertex) Clone() *vertex {
	c := *v

	return &c
}

func (v *vertex) String() string { return v.label }

func (v *vertex) UpdateHash(h hash.Hash) error {
	if err := hashing.WriteInt(h, v.id); err != nil {
		return err
	}

	_, err := h.Write([]byte(v.label))

	return err
}

func abc() (*vertex, *vertex, *vertex) {
	return &vertex{id: 0, label: "A"}, &vertex{id: 1, label: "B"}, &vertex{id: 2, label: "C"}
}

func TestListSequence_Navigation(t *testing.T) {
	t.Parallel()

	a, b, c := abc()
	seq := collection.NewListSequenceFrom([]*vertex{a, b, c})

	assert.Same(t, b, seq.Predecessor(c).GetOrPanic())
	assert.Same(t, b, seq.Successor(a).GetOrPanic())
	assert.True(t, seq.Predecessor(a).Empty())
	assert.True(t, seq.Successor(c).Empty())
	assert.True(t, seq.Predecessor(&vertex{id: 9, label: "Z"}).Empty())
	assert.True(t, seq.Successor(&vertex{id: 9, label: "Z"}).Empty())

	removed, err := seq.RemoveFirst()
	require.NoError(t, err)
	assert.Same(t, a, removed)
	assert.Same(t, b, seq.First().GetOrPanic())
	assert.Same(t, c, seq.Last().GetOrPanic())
	assert.Equal(t, 2, seq.Size())
}

func TestListSequence_OrderIsInsertionOrder(t *testing.T) {
	t.Parallel()

	seq := collection.NewListSequence[identity.ID]()
	seq.Add(5)
	seq.Add(1)
	seq.Add(3)
	seq.AddFirst(9)

	assert.Equal(t, []identity.ID{9, 5, 1, 3}, seq.Slice())

	var backward []identity.ID
	for id := range seq.Backward() {
		backward = append(backward, id)
	}

	assert.Equal(t, []identity.ID{3, 1, 5, 9}, backward)
}

func TestListSequence_Empty(t *testing.T) {
	t.Parallel()

	seq := collection.NewListSequence[*vertex]()

	assert.True(t, seq.IsEmpty())
	assert.True(t, seq.First().Empty())
	assert.True(t, seq.Last().Empty())

	_, err := seq.RemoveFirst()
	require.ErrorIs(t, err, errors.ErrEmptyCollection)

	_, err = seq.RemoveLast()
	require.ErrorIs(t, err, errors.ErrEmptyCollection)

	_, err = seq.PeekFirst()
	require.ErrorIs(t, err, errors.ErrEmptyCollection)

	_, err = seq.PeekLast()
	require.ErrorIs(t, err, errors.ErrEmptyCollection)

	assert.False(t, seq.Remove(&vertex{}))
	assert.Equal(t, "[]", seq.String())
}

func TestListSequence_ZeroValueIsUsable(t *testing.T) {
	t.Parallel()

	var seq collection.ListSequence[identity.ID]

	assert.True(t, seq.IsEmpty())
	assert.False(t, seq.Contains(1))
	assert.Empty(t, seq.Slice())

	seq.Add(1)
	seq.Add(2)

	last, err := seq.RemoveLast()
	require.NoError(t, err)
	assert.Equal(t, identity.ID(2), last)
	assert.Equal(t, 1, seq.Size())
}

func TestListSequence_RemoveUsesEquality(t *testing.T) {
	t.Parallel()

	a, b, c := abc()
	seq := collection.NewListSequenceFrom([]*vertex{a, b, c, b.Clone()})

	// An equal but distinct value removes the first match.
	assert.True(t, seq.Remove(&vertex{id: 1, label: "B"}))
	assert.Equal(t, 3, seq.Size())
	assert.Equal(t, 2, seq.IndexOf(b))
	assert.Equal(t, "[A, C, B]", seq.String())

	// Same ID, different label: not equal.
	assert.False(t, seq.Remove(&vertex{id: 0, label: "other"}))
	assert.False(t, seq.Contains(&vertex{id: 0, label: "other"}))
	assert.True(t, seq.Contains(&vertex{id: 0, label: "A"}))
}

func TestListSequence_FindByIDAndAtPosition(t *testing.T) {
	t.Parallel()

	seq := collection.NewListSequenceFrom([]*vertex{
		{id: 7, label: "first"},
		{id: 3, label: "second"},
		{id: 7, label: "third"},
		{id: 0, label: "fourth"},
	})

	assert.Equal(t, "first", seq.FindByID(7).GetOrPanic().label)
	assert.Equal(t, "second", seq.FindByID(3).GetOrPanic().label)
	assert.True(t, seq.FindByID(1).Empty())

	// Position and ID are unrelated.
	assert.Equal(t, "second", seq.AtPosition(1).GetOrPanic().label)
	assert.Equal(t, "third", seq.AtPosition(2).GetOrPanic().label)
	assert.Equal(t, "fourth", seq.AtPosition(3).GetOrPanic().label)
	assert.Equal(t, "first", seq.AtPosition(0).GetOrPanic().label)
	assert.True(t, seq.AtPosition(4).Empty())
	assert.True(t, seq.AtPosition(-1).Empty())
}

func TestListSequence_BulkOperations(t *testing.T) {
	t.Parallel()

	seq := collection.NewListSequence[identity.ID]()

	assert.False(t, seq.AddAll(identity.IDs()))
	assert.True(t, seq.AddAll(identity.IDs(1, 2, 3, 4)))
	assert.True(t, seq.ContainsAll(1, 3))
	assert.False(t, seq.ContainsAll(1, 5))

	assert.True(t, seq.RemoveAll(2, 4, 8))
	assert.False(t, seq.RemoveAll(8))
	assert.Equal(t, []identity.ID{1, 3}, seq.Slice())

	first, err := seq.PeekFirst()
	require.NoError(t, err)
	assert.Equal(t, identity.ID(1), first)

	last, err := seq.PeekLast()
	require.NoError(t, err)
	assert.Equal(t, identity.ID(3), last)
	assert.Equal(t, 2, seq.Size())

	seq.Clear()
	assert.True(t, seq.IsEmpty())
	assert.True(t, seq.First().Empty())
}

func TestListSequence_SizeTracksAddsAndRemoves(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewPCG(1, 2)) //nolint:gosec
	seq := collection.NewListSequence[identity.ID]()
	expected := 0

	for range 2000 {
		id := identity.ID(rng.IntN(20))

		switch rng.IntN(4) {
		case 0, 1:
			if seq.Add(id) {
				expected++
			}
		case 2:
			if seq.Remove(id) {
				expected--
			}
		case 3:
			if _, err := seq.RemoveLast(); err == nil {
				expected--
			}
		}

		require.Equal(t, expected, seq.Size())
		require.Equal(t, expected, len(seq.Slice()))
	}
}

func TestListSequence_Clone(t *testing.T) {
	t.Parallel()

	a, b, c := abc()
	original := collection.NewListSequenceFrom([]*vertex{a, b, c})

	clone := collection.Clone(original)
	require.True(t, clone.Equals(original))
	require.True(t, original.Equals(clone))

	// Mutating the clone's elements leaves the original untouched.
	clone.First().GetOrPanic().label = "changed"
	assert.Equal(t, "A", a.label)
	assert.False(t, clone.Equals(original))

	// Structural changes are independent too.
	clone.Add(&vertex{id: 3, label: "D"})
	assert.Equal(t, 3, original.Size())

	// Re-cloning after mutating the original reflects the new state.
	b.label = "B2"
	again := collection.Clone(original)
	assert.Equal(t, "B2", again.AtPosition(1).GetOrPanic().label)
	assert.NotSame(t, b, again.AtPosition(1).GetOrPanic())
}

func TestListSequence_CloneWith(t *testing.T) {
	t.Parallel()

	a, b, _ := abc()
	original := collection.NewListSequenceFrom([]*vertex{a, b})

	copies := 0
	clone := original.CloneWith(func(v *vertex) *vertex {
		copies++

		return &vertex{id: v.id, label: v.label}
	})

	assert.Equal(t, 2, copies)
	assert.True(t, clone.Equals(original))
}

func TestListSequence_Equals(t *testing.T) {
	t.Parallel()

	one := collection.NewListSequenceFrom([]identity.ID{1, 2, 3})

	assert.True(t, one.Equals(collection.NewListSequenceFrom([]identity.ID{1, 2, 3})))
	assert.False(t, one.Equals(collection.NewListSequenceFrom([]identity.ID{3, 2, 1})))
	assert.False(t, one.Equals(collection.NewListSequenceFrom([]identity.ID{1, 2})))
	assert.False(t, one.Equals(nil))
	assert.True(t, collection.NewListSequence[identity.ID]().Equals(&collection.ListSequence[identity.ID]{}))
}

func TestListSequence_HashCode(t *testing.T) {
	t.Parallel()

	hashOf := func(s *collection.ListSequence[*vertex]) uint64 {
		h, err := s.HashCode()
		require.NoError(t, err)

		return h
	}

	a, b, c := abc()
	forward := collection.NewListSequenceFrom([]*vertex{a, b, c})
	reversed := collection.NewListSequenceFrom([]*vertex{c, b, a})

	assert.Equal(t, hashOf(forward), hashOf(collection.Clone(forward)))
	assert.NotEqual(t, hashOf(forward), hashOf(reversed))

	// Elements without their own hash input fall back to the ID.
	ids := collection.NewListSequenceFrom([]identity.ID{1, 2})
	h1, err := ids.HashCode()
	require.NoError(t, err)

	h2, err := collection.NewListSequenceFrom([]identity.ID{2, 1}).HashCode()
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestListSequence_HashCodeWith(t *testing.T) {
	t.Parallel()

	seq := collection.NewListSequenceFrom([]identity.ID{1, 2})

	xxh3Sum, err := seq.HashCodeWith(hashing.Xxh3)
	require.NoError(t, err)

	defaultSum, err := seq.HashCode()
	require.NoError(t, err)
	assert.Equal(t, defaultSum, xxh3Sum)

	xxh64Sum, err := seq.HashCodeWith(hashing.XxHash64)
	require.NoError(t, err)

	direct, err := hashing.XxHash64(seq)
	require.NoError(t, err)
	assert.Equal(t, direct, xxh64Sum)
	assert.NotEqual(t, xxh3Sum, xxh64Sum)
}

func TestListSequence_Seq(t *testing.T) {
	t.Parallel()

	seq := collection.NewListSequenceFrom([]identity.ID{4, 5, 6})

	var got []string
	for id := range seq.Seq() {
		got = append(got, fmt.Sprint(id.ID()))
		if id == 5 {
			break
		}
	}

	assert.Equal(t, []string{"4", "5"}, got)
}
