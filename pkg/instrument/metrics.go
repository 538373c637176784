package instrument

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "glstack"

type metrics struct {
	calls        *prometheus.CounterVec
	objects      *prometheus.GaugeVec
	createErrors *prometheus.CounterVec
	driverErrors *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	return &metrics{
		calls: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gl_calls_total",
			Help:      "Number of rendering context calls.",
		}, []string{"op"})),
		objects: register(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "gl_objects",
			Help:      "Number of live GL objects.",
		}, []string{"kind"})),
		createErrors: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gl_create_errors_total",
			Help:      "Number of failed object creations.",
		}, []string{"kind"})),
		driverErrors: register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gl_driver_errors_total",
			Help:      "Number of errors reported by glGetError after a call.",
		}, []string{"op", "code"})),
	}
}

// register returns the already registered collector when a context
// is wrapped more than once with the same registry.
func register[T prometheus.Collector](reg prometheus.Registerer, c T) T {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing
			}
		}
		panic(err)
	}
	return c
}
