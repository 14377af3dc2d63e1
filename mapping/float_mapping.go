package mapping

import (
	"hash"
	"iter"
	"math"
	"strconv"

	"github.com/zetool/idcontainer/hashing"
	"github.com/zetool/idcontainer/identity"
)

// FloatMapping maps identities to float64 values. The zero value is an
// empty mapping with default options.
type FloatMapping[D identity.Identifiable] struct {
	d dense[float64]
}

// NewFloatMapping creates a mapping with domain [0, domainSize), all values zero.
func NewFloatMapping[D identity.Identifiable](domainSize int, opts ...Option) (*FloatMapping[D], error) {
	d, err := newDense[float64](domainSize, newOptions(opts))
	if err != nil {
		return nil, err
	}

	return &FloatMapping[D]{d: d}, nil
}

// NewFloatMappingFromDomain creates a mapping whose domain covers every
// identity in the sequence: the largest ID plus one. All values are zero.
func NewFloatMappingFromDomain[D identity.Identifiable](
	domain iter.Seq[D],
	opts ...Option,
) (*FloatMapping[D], error) {
	size, err := identity.DomainSize(domain)
	if err != nil {
		return nil, err
	}

	return NewFloatMapping[D](size, opts...)
}

// Get returns the value for x. It fails with errors.ErrOutOfRange when x's
// ID is outside the domain.
func (m *FloatMapping[D]) Get(x D) (float64, error) {
	id, err := readID(&m.d, x)
	if err != nil {
		return 0, err
	}

	return m.d.values[id], nil
}

// Set associates value with x, growing the domain if needed.
func (m *FloatMapping[D]) Set(x D, value float64) error {
	id, err := writeID(&m.d, x)
	if err != nil {
		return err
	}

	m.d.values[id] = value

	return nil
}

// Add associates value with x, growing the domain if needed. It behaves
// exactly like Set.
func (m *FloatMapping[D]) Add(x D, value float64) error {
	return m.Set(x, value)
}

// Increase adds amount to the value for x, growing the domain if needed.
func (m *FloatMapping[D]) Increase(x D, amount float64) error {
	id, err := writeID(&m.d, x)
	if err != nil {
		return err
	}

	m.d.values[id] += amount

	return nil
}

// Decrease subtracts amount from the value for x, growing the domain if needed.
func (m *FloatMapping[D]) Decrease(x D, amount float64) error {
	id, err := writeID(&m.d, x)
	if err != nil {
		return err
	}

	m.d.values[id] -= amount

	return nil
}

// Divide divides the value for x by amount in place, with IEEE 754
// semantics for division by zero. The slot must exist: x's ID outside the
// domain fails with errors.ErrOutOfRange.
func (m *FloatMapping[D]) Divide(x D, amount float64) error {
	id, err := readID(&m.d, x)
	if err != nil {
		return err
	}

	m.d.values[id] /= amount

	return nil
}

// Minimum returns the smallest value among the given identities. For an
// empty sequence it returns +Inf.
func (m *FloatMapping[D]) Minimum(xs iter.Seq[D]) (float64, error) {
	minimum := math.Inf(1)

	for x := range xs {
		v, err := m.Get(x)
		if err != nil {
			return 0, err
		}

		if v < minimum {
			minimum = v
		}
	}

	return minimum, nil
}

// Sum returns the sum of the values of the given identities, 0 for an
// empty sequence.
func (m *FloatMapping[D]) Sum(xs iter.Seq[D]) (float64, error) {
	sum := 0.0

	for x := range xs {
		v, err := m.Get(x)
		if err != nil {
			return 0, err
		}

		sum += v
	}

	return sum, nil
}

// Maximum returns the largest value over the whole domain. It fails with
// errors.ErrEmptyDomain when the domain size is 0.
func (m *FloatMapping[D]) Maximum() (float64, error) {
	return m.d.maximum(math.Inf(-1))
}

// InitializeWith overwrites every slot with value.
func (m *FloatMapping[D]) InitializeWith(value float64) {
	m.d.fill(value)
}

// DomainSize returns the number of slots; valid IDs are [0, DomainSize).
func (m *FloatMapping[D]) DomainSize() int {
	return m.d.size()
}

// SetDomainSize resizes the domain. Shrinking discards values at IDs >= n;
// growing zero-fills. It fails with errors.ErrNegativeSize for n < 0.
func (m *FloatMapping[D]) SetDomainSize(n int) error {
	return m.d.resize(n)
}

// IsDefinedFor reports whether x's ID lies inside the domain.
func (m *FloatMapping[D]) IsDefinedFor(x D) bool {
	return definedFor(&m.d, x)
}

// Clone returns a copy that shares no storage with m.
func (m *FloatMapping[D]) Clone() *FloatMapping[D] {
	c, _ := m.CloneWithSize(m.d.size())

	return c
}

// CloneWithSize returns a copy with domain size n, widened with zeros or
// truncated as needed.
func (m *FloatMapping[D]) CloneWithSize(n int) (*FloatMapping[D], error) {
	d, err := m.d.cloneWithSize(n)
	if err != nil {
		return nil, err
	}

	return &FloatMapping[D]{d: d}, nil
}

// Extend returns a copy with one more slot, at ID DomainSize(), holding value.
func (m *FloatMapping[D]) Extend(value float64) *FloatMapping[D] {
	n := m.d.size()

	c, _ := m.CloneWithSize(n + 1)
	c.d.values[n] = value

	return c
}

// Equals reports whether both mappings have the same domain size and
// bitwise identical values. There is no tolerance: 0 and -0 differ, and a
// NaN equals a NaN with the same bit pattern.
func (m *FloatMapping[D]) Equals(other *FloatMapping[D]) bool {
	if other == nil {
		return false
	}

	return m.d.equal(&other.d, func(a, b float64) bool {
		return math.Float64bits(a) == math.Float64bits(b)
	})
}

// All yields (id, value) pairs in ID order.
func (m *FloatMapping[D]) All() iter.Seq2[int, float64] {
	return m.d.all()
}

// Values yields the values in ID order.
func (m *FloatMapping[D]) Values() iter.Seq[float64] {
	return m.d.valueSeq()
}

// UpdateHash feeds the domain size and the bits of all values into h.
func (m *FloatMapping[D]) UpdateHash(h hash.Hash) error {
	return m.d.updateHash(h, hashing.WriteFloat64)
}

// HashCode returns the digest of the mapping, XXH3 unless WithHashFunc
// chose another.
func (m *FloatMapping[D]) HashCode() uint64 {
	return m.d.hashCode(m)
}

// String renders the mapping for debugging. +Inf prints as MAX.
func (m *FloatMapping[D]) String() string {
	return m.d.format(func(v float64) string {
		if math.IsInf(v, 1) {
			return "MAX"
		}

		return strconv.FormatFloat(v, 'g', -1, 64)
	})
}
