package metrics

import (
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestQuoteMetricsExportsCountersAndHistogram(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewQuoteMetrics(reg)

	metrics.IncGenerated("auto")
	metrics.IncGenerated("auto")
	metrics.IncGenerated(" HOME ")
	metrics.IncValidationFailure()
	metrics.ObserveGeneration(35 * time.Millisecond)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "quotes_generated_total", "insurance_type", "auto"); err != nil {
		t.Fatalf("fetch auto counter: %v", err)
	} else if got != 2 {
		t.Fatalf("expected auto=2, got %f", got)
	}

	// Labels are normalized before recording.
	if got, err := fetchCounterValue(mfs, "quotes_generated_total", "insurance_type", "home"); err != nil {
		t.Fatalf("fetch home counter: %v", err)
	} else if got != 1 {
		t.Fatalf("expected home=1, got %f", got)
	}

	if got := fetchUnlabeledCounter(t, mfs, "quote_validation_failures_total"); got != 1 {
		t.Fatalf("expected failures=1, got %f", got)
	}

	if got := fetchHistogramSum(t, mfs, "quote_generation_duration_seconds"); got <= 0 {
		t.Fatalf("expected duration sum > 0, got %f", got)
	}
}

func TestQuoteMetricsNoOpWithoutRegisterer(t *testing.T) {
	var metrics *QuoteMetrics

	// Neither a nil receiver nor an unregistered recorder may panic.
	metrics.IncGenerated("auto")
	metrics.IncValidationFailure()
	metrics.ObserveGeneration(time.Millisecond)

	metrics = NewQuoteMetrics(nil)
	metrics.IncGenerated("auto")
	metrics.IncValidationFailure()
	metrics.ObserveGeneration(time.Millisecond)
}

func fetchCounterValue(mfs []*dto.MetricFamily, name, label, value string) (float64, error) {
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		return 0, fmt.Errorf("metric %q not found", name)
	}
	for _, metric := range mf.GetMetric() {
		if matchesLabel(metric.GetLabel(), label, value) {
			return metric.GetCounter().GetValue(), nil
		}
	}
	return 0, fmt.Errorf("metric %q missing label %s=%s", name, label, value)
}

func fetchUnlabeledCounter(t *testing.T, mfs []*dto.MetricFamily, name string) float64 {
	t.Helper()
	mf := findMetricFamily(mfs, name)
	if mf == nil || len(mf.GetMetric()) == 0 {
		t.Fatalf("metric %q not found", name)
	}
	return mf.GetMetric()[0].GetCounter().GetValue()
}

func fetchHistogramSum(t *testing.T, mfs []*dto.MetricFamily, name string) float64 {
	t.Helper()
	mf := findMetricFamily(mfs, name)
	if mf == nil || len(mf.GetMetric()) == 0 {
		t.Fatalf("metric %q not found", name)
	}
	return mf.GetMetric()[0].GetHistogram().GetSampleSum()
}

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, lp := range labels {
		if lp.GetName() == name && lp.GetValue() == value {
			return true
		}
	}
	return false
}
