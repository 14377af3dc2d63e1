// Package optional provides Value, a result that may or may not be present.
// Navigation and lookup operations on collections return it instead of a nil
// sentinel, so "absent" can't be confused with a stored zero value.
package optional

import (
	"fmt"
	"iter"
)

// Value holds either a single T or nothing.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// All yields the value if present, or nothing if empty.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) {
	return o.value, o.isSet
}

// GetOrPanic returns the value if present, or panics if empty.
func (o Value[T]) GetOrPanic() T {
	if !o.isSet {
		panic("called GetOrPanic on None")
	}

	return o.value
}

// String returns "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}
