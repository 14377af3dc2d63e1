package mapping

import (
	"math"

	"github.com/zetool/idcontainer/identity"
)

// Round returns an integer mapping with the same domain holding every value
// rounded half away from zero (2.5 becomes 3, -2.5 becomes -3).
// Values beyond the int range saturate and NaN becomes 0.
func (m *FloatMapping[D]) Round() *IntMapping[D] {
	return convertFloat[D](m, func(v float64) int {
		return saturate(math.Round(v))
	})
}

// TruncateFloatMapping returns an integer mapping with the same domain
// holding every value truncated toward zero (2.9 becomes 2, -2.9 becomes
// -2). Values beyond the int range saturate and NaN becomes 0.
func TruncateFloatMapping[D identity.Identifiable](m *FloatMapping[D]) *IntMapping[D] {
	return convertFloat[D](m, func(v float64) int {
		return saturate(math.Trunc(v))
	})
}

// Float returns a float mapping with the same domain holding every value
// converted to float64. Magnitudes above 2^53 may lose precision.
func (m *IntMapping[D]) Float() *FloatMapping[D] {
	out := &FloatMapping[D]{d: dense[float64]{
		values: make([]float64, len(m.d.values)),
		opts:   m.d.opts,
	}}

	for i, v := range m.d.values {
		out.d.values[i] = float64(v)
	}

	return out
}

func convertFloat[D identity.Identifiable](m *FloatMapping[D], conv func(float64) int) *IntMapping[D] {
	out := &IntMapping[D]{d: dense[int]{
		values: make([]int, len(m.d.values)),
		opts:   m.d.opts,
	}}

	for i, v := range m.d.values {
		out.d.values[i] = conv(v)
	}

	return out
}

// saturate converts an integral float to int, clamping to the int range.
func saturate(v float64) int {
	switch {
	case math.IsNaN(v):
		return 0
	case v >= float64(math.MaxInt):
		return math.MaxInt
	case v <= float64(math.MinInt):
		return math.MinInt
	default:
		return int(v)
	}
}
