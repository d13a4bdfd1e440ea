package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records quotation traffic.
type QuoteMetrics struct {
	generated          *prometheus.CounterVec
	validationFailures prometheus.Counter
	computeDuration    prometheus.Histogram
}

// NewQuoteMetrics registers the quotation metrics on the provided registerer.
// A nil registerer yields a no-op recorder, which keeps handler tests free of
// a shared registry.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	generated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quotes_generated_total",
		Help: "Quotes successfully generated, by insurance type.",
	}, []string{"insurance_type"})
	validationFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quote_validation_failures_total",
		Help: "Quote requests rejected by validation.",
	})
	computeDuration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "quote_generation_duration_seconds",
		Help:    "End-to-end duration of quote generation requests.",
		Buckets: prometheus.DefBuckets,
	})
	reg.MustRegister(generated, validationFailures, computeDuration)
	return &QuoteMetrics{
		generated:          generated,
		validationFailures: validationFailures,
		computeDuration:    computeDuration,
	}
}

// IncGenerated counts a successfully generated quote for the given type.
func (m *QuoteMetrics) IncGenerated(insuranceType string) {
	if m == nil || m.generated == nil {
		return
	}
	m.generated.WithLabelValues(normalizeLabel(insuranceType)).Inc()
}

// IncValidationFailure counts a request rejected by validation.
func (m *QuoteMetrics) IncValidationFailure() {
	if m == nil || m.validationFailures == nil {
		return
	}
	m.validationFailures.Inc()
}

// ObserveGeneration records how long a generation request took.
func (m *QuoteMetrics) ObserveGeneration(duration time.Duration) {
	if m == nil || m.computeDuration == nil {
		return
	}
	m.computeDuration.Observe(duration.Seconds())
}

func normalizeLabel(value string) string {
	value = strings.TrimSpace(strings.ToLower(value))
	if value == "" {
		return "unknown"
	}
	return value
}
