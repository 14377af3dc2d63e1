package mapping

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	growthTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "idcontainer_mapping_growth_total",
		Help: "The total number of times a mapping domain was grown",
	}, []string{"mapping", "kind"})

	growthSlots = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
		Name: "idcontainer_mapping_growth_slots_total",
		Help: "The total number of slots added to mapping domains",
	}, []string{"mapping", "kind"})
)

func recordGrowth(o *options, kind string, from, to int) {
	if !o.metrics || to <= from {
		return
	}

	growthTotal.WithLabelValues(o.name, kind).Inc()
	growthSlots.WithLabelValues(o.name, kind).Add(float64(to - from))
}
