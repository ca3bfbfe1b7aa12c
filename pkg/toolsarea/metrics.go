package toolsarea

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Recompute triggers, used as the "trigger" label.
const (
	triggerStructural = "structural"
	triggerDebounced  = "debounced"
)

type metrics struct {
	recomputes  *prometheus.CounterVec
	absorbed    prometheus.Counter
	transitions prometheus.Counter
	windows     prometheus.Gauge
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		recomputes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "toolsarea",
			Name:      "recompute_passes_total",
			Help:      "Evaluator and aggregator passes, by trigger.",
		}, []string{"trigger"}),
		absorbed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "toolsarea",
			Name:      "geometry_invalidations_absorbed_total",
			Help:      "Geometry invalidations coalesced into an already armed debounce timer.",
		}),
		transitions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "toolsarea",
			Name:      "animation_transitions_total",
			Help:      "Active-state color transitions started or reversed.",
		}),
		windows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "toolsarea",
			Name:      "windows",
			Help:      "Windows currently tracked.",
		}),
	}
	if reg != nil {
		m.recomputes = register(reg, m.recomputes)
		m.absorbed = register(reg, m.absorbed)
		m.transitions = register(reg, m.transitions)
		m.windows = register(reg, m.windows)
	}
	return m
}

// register adds c to reg, reusing the existing collector when several
// managers share one registry.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
	}
	return c
}
