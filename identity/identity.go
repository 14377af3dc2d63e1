// Package identity defines the capability every element of the containers in
// this module must have: a stable, non-negative integer ID that the
// containers use directly as an array index.
//
// IDs don't need to be contiguous, but the mappings allocate one slot for
// every ID between 0 and the largest ID in use, so memory and the cost of
// full scans grow with the largest ID rather than with the number of
// entities.
package identity

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/zetool/idcontainer/errors"
)

// Identifiable is anything that can report a stable integer ID. The ID must
// not change while the value participates in a container.
type Identifiable interface {
	ID() int
}

// Element is an Identifiable that can compare itself for equality.
// Collections use Equals, not the ID, to decide membership.
type Element[E any] interface {
	Identifiable
	Equals(other E) bool
}

// Cloneable is an Element that can produce an independent copy of itself.
// It is only required when a collection is deep-copied with Clone.
type Cloneable[E any] interface {
	Element[E]
	Clone() E
}

// ID is a bare integer identity, for callers that only have raw indices.
type ID int

// ID returns the integer itself.
func (i ID) ID() int {
	return int(i)
}

// Equals compares two IDs.
func (i ID) Equals(other ID) bool {
	return i == other
}

// Clone returns the ID; IDs are values.
func (i ID) Clone() ID {
	return i
}

// IDs returns a sequence of ID values for the given integers.
func IDs(ids ...int) iter.Seq[ID] {
	return func(yield func(ID) bool) {
		for _, id := range ids {
			if !yield(ID(id)) {
				return
			}
		}
	}
}

// All turns a list of identities into a sequence.
func All[D any](xs ...D) iter.Seq[D] {
	return func(yield func(D) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

// IsNil reports whether x is a nil interface or a typed nil
// (pointer, map, slice, func, chan, interface).
func IsNil(x any) bool {
	if x == nil {
		return true
	}

	val := reflect.ValueOf(x)

	switch val.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer,
		reflect.UnsafePointer, reflect.Interface, reflect.Slice:
		return val.IsNil()
	}

	return false
}

// Check validates an identity and returns its ID. It fails with
// errors.ErrNilIdentity for nil identities and errors.ErrNegativeID for
// IDs below zero.
func Check[D Identifiable](x D) (int, error) {
	if IsNil(x) {
		return 0, errors.ErrNilIdentity
	}

	id := x.ID()
	if id < 0 {
		return 0, fmt.Errorf("%w: %d", errors.ErrNegativeID, id)
	}

	return id, nil
}

// MaxID returns the largest ID found in the sequence, or -1 if the sequence
// is empty. Every element is validated; all invalid identities are reported
// together in the returned error.
func MaxID[D Identifiable](domain iter.Seq[D]) (int, error) {
	maxID := -1

	var errs errors.Collection

	pos := 0

	for x := range domain {
		id, err := Check(x)
		if err != nil {
			errs.Add(fmt.Errorf("element %d: %w", pos, err))
		} else if id > maxID {
			maxID = id
		}

		pos++
	}

	if errs.HasError() {
		return -1, errs.GetError()
	}

	return maxID, nil
}

// DomainSize returns the domain size needed to hold every identity in the
// sequence: the largest ID plus one, or 0 for an empty sequence.
func DomainSize[D Identifiable](domain iter.Seq[D]) (int, error) {
	maxID, err := MaxID(domain)
	if err != nil {
		return 0, err
	}

	return maxID + 1, nil
}
