package observability

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	registerOnce sync.Once

	codecEncodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bitreg",
			Subsystem: "codec",
			Name:      "encodes_total",
			Help:      "Encode calls by register and outcome.",
		},
		[]string{"register", "outcome"},
	)
	codecDecodes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bitreg",
			Subsystem: "codec",
			Name:      "decodes_total",
			Help:      "Decode calls by register and outcome.",
		},
		[]string{"register", "outcome"},
	)
	codecDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bitreg",
			Subsystem: "codec",
			Name:      "op_duration_seconds",
			Help:      "Encode/decode duration in seconds.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 8),
		},
		[]string{"register", "op"},
	)
	registrySchemas = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "bitreg",
			Subsystem: "registry",
			Name:      "schemas",
			Help:      "Schemas currently registered.",
		},
	)
)

func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(codecEncodes, codecDecodes, codecDuration, registrySchemas)
	})
}

func RecordEncode(register, outcome string, duration time.Duration) {
	RegisterMetrics()
	codecEncodes.WithLabelValues(register, outcome).Inc()
	codecDuration.WithLabelValues(register, "encode").Observe(duration.Seconds())
}

func RecordDecode(register, outcome string, duration time.Duration) {
	RegisterMetrics()
	codecDecodes.WithLabelValues(register, outcome).Inc()
	codecDuration.WithLabelValues(register, "decode").Observe(duration.Seconds())
}

func SetRegistrySize(n int) {
	RegisterMetrics()
	registrySchemas.Set(float64(n))
}
