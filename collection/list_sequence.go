package collection

import (
	"fmt"
	"hash"
	"iter"
	"strings"

	"github.com/zetool/idcontainer/errors"
	"github.com/zetool/idcontainer/hashing"
	"github.com/zetool/idcontainer/identity"
	"github.com/zetool/idcontainer/optional"
)

// node is a link in the list. The list's root is a sentinel: root.next is
// the first element and root.prev the last.
type node[E any] struct {
	value      E
	prev, next *node[E]
}

// ListSequence is an insertion-ordered Collection backed by a doubly linked
// list. Adding and removing at either end is O(1); Remove, Contains,
// Predecessor, Successor, FindByID and AtPosition scan and are O(n).
//
// The zero value is an empty sequence ready to use. A ListSequence must not
// be copied after first use.
type ListSequence[E identity.Element[E]] struct {
	root node[E]
	size int
}

var _ Collection[identity.ID] = (*ListSequence[identity.ID])(nil)

// NewListSequence creates an empty sequence.
func NewListSequence[E identity.Element[E]]() *ListSequence[E] {
	return new(ListSequence[E]).init()
}

// NewListSequenceFrom creates a sequence holding the given elements in order.
// The elements themselves are shared with the caller, not copied.
func NewListSequenceFrom[E identity.Element[E]](elements []E) *ListSequence[E] {
	s := NewListSequence[E]()

	for _, e := range elements {
		s.Add(e)
	}

	return s
}

func (s *ListSequence[E]) init() *ListSequence[E] {
	s.root.next = &s.root
	s.root.prev = &s.root
	s.size = 0

	return s
}

func (s *ListSequence[E]) lazyInit() {
	if s.root.next == nil {
		s.init()
	}
}

func (s *ListSequence[E]) insertAfter(value E, at *node[E]) {
	n := &node[E]{value: value, prev: at, next: at.next}
	at.next.prev = n
	at.next = n
	s.size++
}

func (s *ListSequence[E]) unlink(n *node[E]) {
	n.prev.next = n.next
	n.next.prev = n.prev
	n.prev = nil
	n.next = nil
	s.size--
}

func (s *ListSequence[E]) front() *node[E] {
	if s.size == 0 {
		return nil
	}

	return s.root.next
}

func (s *ListSequence[E]) back() *node[E] {
	if s.size == 0 {
		return nil
	}

	return s.root.prev
}

// find returns the first node equal to element and its position.
func (s *ListSequence[E]) find(element E) (*node[E], int) {
	if s.size == 0 {
		return nil, -1
	}

	pos := 0

	for n := s.root.next; n != &s.root; n = n.next {
		if n.value.Equals(element) {
			return n, pos
		}

		pos++
	}

	return nil, -1
}

// Add appends the element at the tail. It always returns true.
func (s *ListSequence[E]) Add(element E) bool {
	s.lazyInit()
	s.insertAfter(element, s.root.prev)

	return true
}

// AddFirst inserts the element at the head.
func (s *ListSequence[E]) AddFirst(element E) {
	s.lazyInit()
	s.insertAfter(element, &s.root)
}

// AddAll appends every element of the sequence. Returns whether anything was added.
func (s *ListSequence[E]) AddAll(elements iter.Seq[E]) bool {
	changed := false

	for e := range elements {
		changed = s.Add(e) || changed
	}

	return changed
}

// Remove deletes the first element equal to the given one.
func (s *ListSequence[E]) Remove(element E) bool {
	n, _ := s.find(element)
	if n == nil {
		return false
	}

	s.unlink(n)

	return true
}

// RemoveAll removes the first occurrence of each given element. Returns
// whether any removal happened.
func (s *ListSequence[E]) RemoveAll(elements ...E) bool {
	changed := false

	for _, e := range elements {
		changed = s.Remove(e) || changed
	}

	return changed
}

// RemoveFirst removes and returns the head element.
func (s *ListSequence[E]) RemoveFirst() (E, error) {
	n := s.front()
	if n == nil {
		var zero E

		return zero, errors.ErrEmptyCollection
	}

	s.unlink(n)

	return n.value, nil
}

// RemoveLast removes and returns the tail element.
func (s *ListSequence[E]) RemoveLast() (E, error) {
	n := s.back()
	if n == nil {
		var zero E

		return zero, errors.ErrEmptyCollection
	}

	s.unlink(n)

	return n.value, nil
}

// PeekFirst returns the head element without removing it.
// Fails with errors.ErrEmptyCollection on an empty sequence.
func (s *ListSequence[E]) PeekFirst() (E, error) {
	n := s.front()
	if n == nil {
		var zero E

		return zero, errors.ErrEmptyCollection
	}

	return n.value, nil
}

// PeekLast returns the tail element without removing it.
// Fails with errors.ErrEmptyCollection on an empty sequence.
func (s *ListSequence[E]) PeekLast() (E, error) {
	n := s.back()
	if n == nil {
		var zero E

		return zero, errors.ErrEmptyCollection
	}

	return n.value, nil
}

// Clear removes every element.
func (s *ListSequence[E]) Clear() {
	s.init()
}

// Contains reports whether an equal element is stored.
func (s *ListSequence[E]) Contains(element E) bool {
	n, _ := s.find(element)

	return n != nil
}

// ContainsAll reports whether every given element is stored.
func (s *ListSequence[E]) ContainsAll(elements ...E) bool {
	for _, e := range elements {
		if !s.Contains(e) {
			return false
		}
	}

	return true
}

// IndexOf returns the position of the first element equal to the given
// one, or -1 if there is none.
func (s *ListSequence[E]) IndexOf(element E) int {
	_, pos := s.find(element)

	return pos
}

// IsEmpty reports whether the sequence holds no elements.
func (s *ListSequence[E]) IsEmpty() bool {
	return s.size == 0
}

// Size returns the number of elements.
func (s *ListSequence[E]) Size() int {
	return s.size
}

// FindByID returns the first element in sequence order whose ID equals id.
func (s *ListSequence[E]) FindByID(id int) optional.Value[E] {
	for e := range s.Seq() {
		if e.ID() == id {
			return optional.Some(e)
		}
	}

	return optional.None[E]()
}

// AtPosition returns the element at the zero-based position, or None when
// the position is outside [0, Size).
func (s *ListSequence[E]) AtPosition(position int) optional.Value[E] {
	if position < 0 || position >= s.size {
		return optional.None[E]()
	}

	// Walk from whichever end is closer.
	if position < s.size/2 {
		n := s.root.next
		for range position {
			n = n.next
		}

		return optional.Some(n.value)
	}

	n := s.root.prev
	for range s.size - 1 - position {
		n = n.prev
	}

	return optional.Some(n.value)
}

// First returns the head element, or None when empty.
func (s *ListSequence[E]) First() optional.Value[E] {
	n := s.front()
	if n == nil {
		return optional.None[E]()
	}

	return optional.Some(n.value)
}

// Last returns the tail element, or None when empty.
func (s *ListSequence[E]) Last() optional.Value[E] {
	n := s.back()
	if n == nil {
		return optional.None[E]()
	}

	return optional.Some(n.value)
}

// Predecessor returns the element before the first occurrence of the given one.
func (s *ListSequence[E]) Predecessor(element E) optional.Value[E] {
	n, pos := s.find(element)
	if n == nil || pos == 0 {
		return optional.None[E]()
	}

	return optional.Some(n.prev.value)
}

// Successor returns the element after the first occurrence of the given one.
func (s *ListSequence[E]) Successor(element E) optional.Value[E] {
	n, _ := s.find(element)
	if n == nil || n.next == &s.root {
		return optional.None[E]()
	}

	return optional.Some(n.next.value)
}

// Seq returns an iterator over the elements from head to tail. The sequence
// must not be modified during iteration; use Cursor to remove while iterating.
func (s *ListSequence[E]) Seq() iter.Seq[E] {
	return func(yield func(E) bool) {
		if s.size == 0 {
			return
		}

		for n := s.root.next; n != &s.root; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements from tail to head.
func (s *ListSequence[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if s.size == 0 {
			return
		}

		for n := s.root.prev; n != &s.root; n = n.prev {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Slice returns the elements in order as a freshly allocated slice.
func (s *ListSequence[E]) Slice() []E {
	out := make([]E, 0, s.size)

	for e := range s.Seq() {
		out = append(out, e)
	}

	return out
}

// CloneWith returns a new sequence holding copy(e) for every element e, in
// order. The copy function must return values that share no mutable state
// with their source for the clone to be independent.
func (s *ListSequence[E]) CloneWith(copyElement func(E) E) *ListSequence[E] {
	clone := NewListSequence[E]()

	for e := range s.Seq() {
		clone.Add(copyElement(e))
	}

	return clone
}

// Clone deep-copies a sequence whose elements know how to clone themselves.
func Clone[E identity.Cloneable[E]](s *ListSequence[E]) *ListSequence[E] {
	return s.CloneWith(func(e E) E {
		return e.Clone()
	})
}

// Equals reports whether both sequences have the same size and pairwise
// equal elements in order.
func (s *ListSequence[E]) Equals(other *ListSequence[E]) bool {
	if other == nil || s.size != other.size {
		return false
	}

	if s.size == 0 {
		return true
	}

	for a, b := s.root.next, other.root.next; a != &s.root; a, b = a.next, b.next {
		if !a.value.Equals(b.value) {
			return false
		}
	}

	return true
}

// UpdateHash feeds the sequence into h in order. Elements that implement
// hashing.Hashable contribute their own hash input; others contribute their
// ID. Elements whose Equals looks beyond the ID should implement Hashable so
// that equal sequences hash alike.
func (s *ListSequence[E]) UpdateHash(h hash.Hash) error {
	if err := hashing.WriteInt(h, s.size); err != nil {
		return err
	}

	for e := range s.Seq() {
		if err := updateElementHash(h, e); err != nil {
			return err
		}
	}

	return nil
}

func updateElementHash[E identity.Identifiable](h hash.Hash, e E) error {
	if identity.IsNil(e) {
		return hashing.WriteInt(h, -1)
	}

	if hashable, ok := any(e).(hashing.Hashable); ok {
		return hashable.UpdateHash(h)
	}

	return hashing.WriteInt(h, e.ID())
}

// HashCode returns an order-sensitive XXH3 digest of the sequence.
func (s *ListSequence[E]) HashCode() (uint64, error) {
	return s.HashCodeWith(hashing.Xxh3)
}

// HashCodeWith digests the sequence with fn, e.g. hashing.XxHash64.
func (s *ListSequence[E]) HashCodeWith(fn hashing.HashFunc) (uint64, error) {
	return fn(s)
}

// String formats the sequence as [e1, e2, ...] for debugging.
func (s *ListSequence[E]) String() string {
	var sb strings.Builder

	sb.WriteByte('[')

	first := true

	for e := range s.Seq() {
		if !first {
			sb.WriteString(", ")
		}

		first = false

		fmt.Fprintf(&sb, "%v", e)
	}

	sb.WriteByte(']')

	return sb.String()
}
