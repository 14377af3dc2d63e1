package mapping

import (
	"context"
	"log/slog"
	"math"

	"github.com/zetool/idcontainer/hashing"
	"github.com/zetool/idcontainer/logger"
)

// GrowthPolicy decides how far a mapping's domain grows when a write lands
// beyond it.
type GrowthPolicy int

const (
	// GrowExact grows the domain to exactly id+1.
	GrowExact GrowthPolicy = iota

	// GrowDoubling grows the domain to the larger of id+1 and twice the
	// current size.
	GrowDoubling
)

func (p GrowthPolicy) String() string {
	switch p {
	case GrowExact:
		return "exact"
	case GrowDoubling:
		return "doubling"
	default:
		return "unknown"
	}
}

// target returns the domain size needed to make id writable. id must be
// below math.MaxInt.
func (p GrowthPolicy) target(current, id int) int {
	if p == GrowDoubling && current <= math.MaxInt/2 {
		return max(id+1, 2*current)
	}

	return id + 1
}

const defaultName = "default"

// Option configures a mapping.
type Option func(*options)

type options struct {
	name     string
	growth   GrowthPolicy
	ctx      context.Context //nolint:containedctx
	logger   *slog.Logger
	metrics  bool
	hashFunc hashing.HashFunc
}

// WithName labels the mapping in logs and metrics.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithGrowthPolicy sets how the domain grows on out-of-domain writes.
func WithGrowthPolicy(policy GrowthPolicy) Option {
	return func(o *options) {
		o.growth = policy
	}
}

// WithLogger sets the logger that receives domain resize events at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithContext sets the context resize events are logged with. Unless
// WithLogger is also given, the mapping's logger comes from logger.Get(ctx),
// so values attached with logger.With, logger.WithSubsystem and
// logger.WithMuted apply to it.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		o.ctx = ctx
	}
}

// WithHashFunc sets the digest HashCode uses. The default is hashing.Xxh3.
func WithHashFunc(fn hashing.HashFunc) Option {
	return func(o *options) {
		o.hashFunc = fn
	}
}

// WithMetrics turns the growth counters on or off. They are on by default.
func WithMetrics(enabled bool) Option {
	return func(o *options) {
		o.metrics = enabled
	}
}

func newOptions(opts []Option) options {
	o := options{
		name:    defaultName,
		growth:  GrowExact,
		metrics: true,
	}

	for _, opt := range opts {
		opt(&o)
	}

	if o.name == "" {
		o.name = defaultName
	}

	if o.ctx == nil {
		o.ctx = context.Background()
	}

	if o.logger == nil {
		o.logger = logger.Get(o.ctx)
	}

	if o.hashFunc == nil {
		o.hashFunc = hashing.Xxh3
	}

	return o
}
