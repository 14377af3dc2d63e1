package collection

import "github.com/zetool/idcontainer/errors"

// Cursor walks a ListSequence from head to tail and can remove the element
// it is positioned on without disturbing the walk.
//
//	for c := seq.Cursor(); c.Next(); {
//	    if c.Value().ID() == stale {
//	        _ = c.Remove()
//	    }
//	}
//
// Modifying the sequence other than through the cursor while it is in use
// leaves the cursor in an undefined position.
type Cursor[E any] struct {
	remove  func(*node[E])
	root    *node[E]
	next    *node[E]
	current *node[E]
}

// Cursor returns a cursor positioned before the first element.
func (s *ListSequence[E]) Cursor() *Cursor[E] {
	s.lazyInit()

	return &Cursor[E]{
		remove: s.unlink,
		root:   &s.root,
		next:   s.root.next,
	}
}

// Next advances to the following element. It returns false once the
// sequence is exhausted.
func (c *Cursor[E]) Next() bool {
	if c.next == c.root {
		c.current = nil

		return false
	}

	c.current = c.next
	c.next = c.next.next

	return true
}

// Value returns the element the cursor is positioned on. It returns the
// zero value before the first Next, after a Remove, or once exhausted.
func (c *Cursor[E]) Value() E {
	if c.current == nil {
		var zero E

		return zero
	}

	return c.current.value
}

// Remove deletes the element the cursor is positioned on. It fails with
// errors.ErrIllegalCursorState if Next hasn't been called, returned false,
// or the element was already removed.
func (c *Cursor[E]) Remove() error {
	if c.current == nil {
		return errors.ErrIllegalCursorState
	}

	c.remove(c.current)
	c.current = nil

	return nil
}
