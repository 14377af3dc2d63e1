package mapping

import (
	"fmt"
	"hash"
	"iter"
	"math"
	"strconv"

	"github.com/zetool/idcontainer/errors"
	"github.com/zetool/idcontainer/hashing"
	"github.com/zetool/idcontainer/identity"
)

// IntMapping maps identities to int values. The zero value is an empty
// mapping with default options.
type IntMapping[D identity.Identifiable] struct {
	d dense[int]
}

// NewIntMapping creates a mapping with domain [0, domainSize), all values zero.
func NewIntMapping[D identity.Identifiable](domainSize int, opts ...Option) (*IntMapping[D], error) {
	d, err := newDense[int](domainSize, newOptions(opts))
	if err != nil {
		return nil, err
	}

	return &IntMapping[D]{d: d}, nil
}

// NewIntMappingFromDomain creates a mapping whose domain covers every
// identity in the sequence: the largest ID plus one. All values are zero.
func NewIntMappingFromDomain[D identity.Identifiable](domain iter.Seq[D], opts ...Option) (*IntMapping[D], error) {
	size, err := identity.DomainSize(domain)
	if err != nil {
		return nil, err
	}

	return NewIntMapping[D](size, opts...)
}

// Get returns the value for x. It fails with errors.ErrOutOfRange when x's
// ID is outside the domain.
func (m *IntMapping[D]) Get(x D) (int, error) {
	id, err := readID(&m.d, x)
	if err != nil {
		return 0, err
	}

	return m.d.values[id], nil
}

// Set associates value with x, growing the domain if needed.
func (m *IntMapping[D]) Set(x D, value int) error {
	id, err := writeID(&m.d, x)
	if err != nil {
		return err
	}

	m.d.values[id] = value

	return nil
}

// Add associates value with x, growing the domain if needed. It behaves
// exactly like Set; how far the domain grows is the growth policy's call.
func (m *IntMapping[D]) Add(x D, value int) error {
	return m.Set(x, value)
}

// Increase adds amount to the value for x, growing the domain if needed.
// It fails with errors.ErrOverflow if the result doesn't fit in an int; the
// mapping, including its domain size, is then left unchanged.
func (m *IntMapping[D]) Increase(x D, amount int) error {
	return m.update(x, amount, '+', addExact)
}

// Decrease subtracts amount from the value for x, growing the domain if
// needed. It fails with errors.ErrOverflow, changing nothing, if the result
// doesn't fit.
func (m *IntMapping[D]) Decrease(x D, amount int) error {
	return m.update(x, amount, '-', subExact)
}

// update applies op to the current value of x, which is 0 beyond the
// domain, and grows the domain only once the result is known to fit.
func (m *IntMapping[D]) update(x D, amount int, sign byte, op func(a, b int) (int, bool)) error {
	id, err := identity.Check(x)
	if err != nil {
		return err
	}

	current := 0
	if id < len(m.d.values) {
		current = m.d.values[id]
	}

	result, ok := op(current, amount)
	if !ok {
		return fmt.Errorf("%w: %d %c %d at id %d", errors.ErrOverflow, current, sign, amount, id)
	}

	if err := m.d.grow(id); err != nil {
		return err
	}

	m.d.values[id] = result

	return nil
}

// Minimum returns the smallest value among the given identities. For an
// empty sequence it returns math.MaxInt.
func (m *IntMapping[D]) Minimum(xs iter.Seq[D]) (int, error) {
	minimum := math.MaxInt

	for x := range xs {
		v, err := m.Get(x)
		if err != nil {
			return 0, err
		}

		minimum = min(minimum, v)
	}

	return minimum, nil
}

// Sum returns the sum of the values of the given identities, 0 for an
// empty sequence. It fails with errors.ErrOverflow instead of wrapping.
func (m *IntMapping[D]) Sum(xs iter.Seq[D]) (int, error) {
	sum := 0

	for x := range xs {
		v, err := m.Get(x)
		if err != nil {
			return 0, err
		}

		next, ok := addExact(sum, v)
		if !ok {
			return 0, fmt.Errorf("%w: sum exceeds int range", errors.ErrOverflow)
		}

		sum = next
	}

	return sum, nil
}

// Maximum returns the largest value over the whole domain. It fails with
// errors.ErrEmptyDomain when the domain size is 0.
func (m *IntMapping[D]) Maximum() (int, error) {
	return m.d.maximum(math.MinInt)
}

// InitializeWith overwrites every slot with value.
func (m *IntMapping[D]) InitializeWith(value int) {
	m.d.fill(value)
}

// DomainSize returns the number of slots; valid IDs are [0, DomainSize).
func (m *IntMapping[D]) DomainSize() int {
	return m.d.size()
}

// SetDomainSize resizes the domain. Shrinking discards values at IDs >= n;
// growing zero-fills. It fails with errors.ErrNegativeSize for n < 0.
func (m *IntMapping[D]) SetDomainSize(n int) error {
	return m.d.resize(n)
}

// IsDefinedFor reports whether x's ID lies inside the domain.
func (m *IntMapping[D]) IsDefinedFor(x D) bool {
	return definedFor(&m.d, x)
}

// Clone returns a copy that shares no storage with m.
func (m *IntMapping[D]) Clone() *IntMapping[D] {
	c, _ := m.CloneWithSize(m.d.size())

	return c
}

// CloneWithSize returns a copy with domain size n, widened with zeros or
// truncated as needed.
func (m *IntMapping[D]) CloneWithSize(n int) (*IntMapping[D], error) {
	d, err := m.d.cloneWithSize(n)
	if err != nil {
		return nil, err
	}

	return &IntMapping[D]{d: d}, nil
}

// Equals reports whether both mappings have the same domain size and equal values.
func (m *IntMapping[D]) Equals(other *IntMapping[D]) bool {
	if other == nil {
		return false
	}

	return m.d.equal(&other.d, func(a, b int) bool { return a == b })
}

// All yields (id, value) pairs in ID order.
func (m *IntMapping[D]) All() iter.Seq2[int, int] {
	return m.d.all()
}

// Values yields the values in ID order.
func (m *IntMapping[D]) Values() iter.Seq[int] {
	return m.d.valueSeq()
}

// UpdateHash feeds the domain size and all values into h.
func (m *IntMapping[D]) UpdateHash(h hash.Hash) error {
	return m.d.updateHash(h, hashing.WriteInt)
}

// HashCode returns the digest of the mapping, XXH3 unless WithHashFunc
// chose another.
func (m *IntMapping[D]) HashCode() uint64 {
	return m.d.hashCode(m)
}

// String renders the mapping for debugging. math.MaxInt prints as MAX.
func (m *IntMapping[D]) String() string {
	return m.d.format(func(v int) string {
		if v == math.MaxInt {
			return "MAX"
		}

		return strconv.Itoa(v)
	})
}

func addExact(a, b int) (int, bool) {
	c := a + b
	if (c > a) != (b > 0) {
		return c, false
	}

	return c, true
}

func subExact(a, b int) (int, bool) {
	c := a - b
	if (c < a) != (b > 0) {
		return c, false
	}

	return c, true
}
