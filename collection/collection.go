package collection

import (
	"iter"

	"github.com/zetool/idcontainer/identity"
	"github.com/zetool/idcontainer/optional"
)

// Collection stores identity-bearing elements. The order used by First,
// Last, Predecessor, Successor and Seq is defined by the implementation.
//
//nolint:interfacebloat
type Collection[E identity.Element[E]] interface {
	// Add inserts the element. Returns whether the collection changed.
	Add(element E) bool

	// Remove deletes the first element equal to the given one.
	// Returns whether an element was removed.
	Remove(element E) bool

	// RemoveFirst removes and returns the first element.
	// Fails with errors.ErrEmptyCollection if there is none.
	RemoveFirst() (E, error)

	// RemoveLast removes and returns the last element.
	// Fails with errors.ErrEmptyCollection if there is none.
	RemoveLast() (E, error)

	// Contains reports whether an equal element is stored.
	Contains(element E) bool

	// IsEmpty reports whether the collection holds no elements.
	IsEmpty() bool

	// Size returns the number of stored elements.
	Size() int

	// FindByID returns a stored element whose ID equals id, or None.
	FindByID(id int) optional.Value[E]

	// First returns the first element, or None when empty.
	First() optional.Value[E]

	// Last returns the last element, or None when empty.
	Last() optional.Value[E]

	// Predecessor returns the element before the given one, or None if the
	// element is first or not contained.
	Predecessor(element E) optional.Value[E]

	// Successor returns the element after the given one, or None if the
	// element is last or not contained.
	Successor(element E) optional.Value[E]

	// Seq returns a single-pass iterator over the elements in order.
	Seq() iter.Seq[E]
}
