package mapping

import (
	"fmt"
	"hash"
	"iter"
	"log/slog"
	"math"
	"strings"

	"github.com/zetool/idcontainer/errors"
	"github.com/zetool/idcontainer/hashing"
	"github.com/zetool/idcontainer/identity"
)

const (
	kindInt   = "int"
	kindFloat = "float"

	// entriesPerLine is how many "id = value" pairs String puts on a line.
	entriesPerLine = 10
)

type scalar interface {
	~int | ~float64
}

// dense is the slice-backed storage shared by IntMapping and FloatMapping.
// The zero value is an empty domain with default options.
type dense[V scalar] struct {
	values []V
	opts   options
}

func newDense[V scalar](size int, opts options) (dense[V], error) {
	if size < 0 {
		return dense[V]{}, fmt.Errorf("%w: %d", errors.ErrNegativeSize, size)
	}

	return dense[V]{
		values: make([]V, size),
		opts:   opts,
	}, nil
}

// options returns the mapping's options, filling in defaults for a zero value.
func (d *dense[V]) options() *options {
	if d.opts.logger == nil {
		d.opts = newOptions(nil)
	}

	return &d.opts
}

func (d *dense[V]) kind() string {
	var zero V
	if _, ok := any(zero).(float64); ok {
		return kindFloat
	}

	return kindInt
}

func (d *dense[V]) size() int {
	return len(d.values)
}

// resize reallocates the backing slice to n slots. Values below
// min(n, size) are kept; new slots are zero.
func (d *dense[V]) resize(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", errors.ErrNegativeSize, n)
	}

	from := len(d.values)
	if n == from {
		return nil
	}

	values := make([]V, n)
	copy(values, d.values)
	d.values = values

	o := d.options()
	o.logger.LogAttrs(o.ctx, slog.LevelDebug, "mapping domain resized",
		slog.String("mapping", o.name),
		slog.String("kind", d.kind()),
		slog.Int("from", from),
		slog.Int("to", n),
		slog.String("policy", o.growth.String()))

	recordGrowth(o, d.kind(), from, n)

	return nil
}

// grow makes id writable, growing the domain per the growth policy.
func (d *dense[V]) grow(id int) error {
	if id < len(d.values) {
		return nil
	}

	if id == math.MaxInt {
		return fmt.Errorf("%w: id %d needs a domain size beyond the int range", errors.ErrOverflow, id)
	}

	return d.resize(d.options().growth.target(len(d.values), id))
}

// writeID validates x and grows the domain so that its ID is writable.
func writeID[V scalar, D identity.Identifiable](d *dense[V], x D) (int, error) {
	id, err := identity.Check(x)
	if err != nil {
		return 0, err
	}

	if err := d.grow(id); err != nil {
		return 0, err
	}

	return id, nil
}

// readID validates x and checks that its ID lies inside the domain.
func readID[V scalar, D identity.Identifiable](d *dense[V], x D) (int, error) {
	id, err := identity.Check(x)
	if err != nil {
		if errors.Is(err, errors.ErrNegativeID) {
			return 0, fmt.Errorf("%w: %w", errors.ErrOutOfRange, err)
		}

		return 0, err
	}

	if id >= len(d.values) {
		return 0, fmt.Errorf("%w: id %d, domain size %d", errors.ErrOutOfRange, id, len(d.values))
	}

	return id, nil
}

func definedFor[V scalar, D identity.Identifiable](d *dense[V], x D) bool {
	id, err := identity.Check(x)

	return err == nil && id < len(d.values)
}

func (d *dense[V]) fill(v V) {
	for i := range d.values {
		d.values[i] = v
	}
}

func (d *dense[V]) cloneWithSize(n int) (dense[V], error) {
	c, err := newDense[V](n, d.opts)
	if err != nil {
		return c, err
	}

	copy(c.values, d.values)

	return c, nil
}

func (d *dense[V]) equal(other *dense[V], eq func(a, b V) bool) bool {
	if len(d.values) != len(other.values) {
		return false
	}

	for i, v := range d.values {
		if !eq(v, other.values[i]) {
			return false
		}
	}

	return true
}

// maximum folds over the whole domain starting from floor.
func (d *dense[V]) maximum(floor V) (V, error) {
	if len(d.values) == 0 {
		return floor, errors.ErrEmptyDomain
	}

	result := floor

	for _, v := range d.values {
		if v > result {
			result = v
		}
	}

	return result, nil
}

func (d *dense[V]) all() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for i, v := range d.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

func (d *dense[V]) valueSeq() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range d.values {
			if !yield(v) {
				return
			}
		}
	}
}

func (d *dense[V]) updateHash(h hash.Hash, write func(hash.Hash, V) error) error {
	if err := hashing.WriteInt(h, len(d.values)); err != nil {
		return err
	}

	for _, v := range d.values {
		if err := write(h, v); err != nil {
			return err
		}
	}

	return nil
}

// hashCode digests h, normally the mapping wrapping d, with the configured HashFunc.
func (d *dense[V]) hashCode(h hashing.Hashable) uint64 {
	sum, _ := d.options().hashFunc(h) //nolint:errcheck // scalar writes don't fail

	return sum
}

// format renders "[0 = a, 1 = b, ...]" with entriesPerLine pairs per line.
func (d *dense[V]) format(formatValue func(V) string) string {
	var sb strings.Builder

	sb.WriteByte('[')

	for i, v := range d.values {
		if i > 0 {
			sb.WriteByte(',')

			if i%entriesPerLine == 0 {
				sb.WriteByte('\n')
			} else {
				sb.WriteByte(' ')
			}
		}

		fmt.Fprintf(&sb, "%d = %s", i, formatValue(v))
	}

	sb.WriteByte(']')

	return sb.String()
}
