package translate

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Label values for the reason label.
const (
	reasonUnknownLanguage = "unknown_language"
	reasonMissingKey      = "missing_key"
	reasonNotFound        = "not_found"
	reasonFormat          = "format"
	reasonRebuild         = "rebuild"
)

type metrics struct {
	fallbacks *prometheus.CounterVec
	failures  *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		fallbacks: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "translate_fallbacks_total",
				Help: "Total number of lookups served from the default language",
			},
			[]string{"reason"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "translate_failures_total",
				Help: "Total number of translations that returned the fallback string",
			},
			[]string{"reason"},
		),
	}
	if reg == nil {
		return m, nil
	}

	var err error
	if m.fallbacks, err = register(reg, m.fallbacks); err != nil {
		return nil, err
	}
	if m.failures, err = register(reg, m.failures); err != nil {
		return nil, err
	}
	return m, nil
}

// register reuses an already registered collector so that several
// translators can share one registry.
func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return c, nil
}

func (m *metrics) fallback(reason string) {
	m.fallbacks.WithLabelValues(reason).Inc()
}

func (m *metrics) failure(reason string) {
	m.failures.WithLabelValues(reason).Inc()
}
