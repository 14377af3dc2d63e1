// Package errors holds the sentinel errors shared by the container packages,
// plus a small accumulator for reporting several failures at once.
package errors

import "errors"

var (
	// ErrOutOfRange is returned when an ID falls outside a mapping's domain
	// [0, DomainSize) on a read, or when a position is outside a sequence.
	ErrOutOfRange = errors.New("id out of range")

	// ErrNilIdentity is returned when a nil identity is handed to a container.
	ErrNilIdentity = errors.New("nil identity")

	// ErrNegativeID is returned when an identity reports an ID below zero.
	ErrNegativeID = errors.New("negative id")

	// ErrNegativeSize is returned when a domain is resized below zero.
	ErrNegativeSize = errors.New("negative domain size")

	// ErrOverflow is returned when integer arithmetic on a stored value would wrap.
	ErrOverflow = errors.New("integer overflow")

	// ErrEmptyCollection is returned when removing from or peeking into an empty collection.
	ErrEmptyCollection = errors.New("collection is empty")

	// ErrEmptyDomain is returned by aggregates that have no defined result on an empty domain.
	ErrEmptyDomain = errors.New("mapping domain is empty")

	// ErrIllegalCursorState is returned when a cursor removal isn't preceded by a Next call.
	ErrIllegalCursorState = errors.New("cursor has no current element")
)

// Is is errors.Is, re-exported so callers importing this package under the
// name "errors" don't also need the standard library package.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Collection is a thread-unsafe utility for accumulating multiple errors.
// Domain scans use it to report every invalid identity in a sequence
// instead of stopping at the first one.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return len(c.errors) > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	return len(c.errors)
}

// GetError returns the collected errors as a single error: nil when empty,
// the error itself when there is exactly one, errors.Join otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
