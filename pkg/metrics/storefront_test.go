package metrics

import (
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func TestStorefrontMetricsExportsCountersAndGauge(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewStorefrontMetrics(reg)

	metrics.IncCartMutation("add")
	metrics.IncCartMutation("add")
	metrics.IncCartMutation("remove")
	metrics.IncOrderSubmitted()
	metrics.IncCheckoutDenied()
	metrics.SetActiveSessions(3)

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather metrics: %v", err)
	}

	if got, err := fetchCounterValue(mfs, "cart_mutations_total", "op", "add"); err != nil {
		t.Fatalf("fetch add mutations: %v", err)
	} else if got != 2 {
		t.Fatalf("expected add=2, got %f", got)
	}

	if got, err := fetchCounterValue(mfs, "cart_mutations_total", "op", "remove"); err != nil {
		t.Fatalf("fetch remove mutations: %v", err)
	} else if got != 1 {
		t.Fatalf("expected remove=1, got %f", got)
	}

	if got := fetchPlainCounter(t, mfs, "orders_submitted_total"); got != 1 {
		t.Fatalf("expected orders_submitted_total=1, got %f", got)
	}
	if got := fetchPlainCounter(t, mfs, "checkout_denied_total"); got != 1 {
		t.Fatalf("expected checkout_denied_total=1, got %f", got)
	}

	gauge := findMetricFamily(mfs, "active_sessions")
	if gauge == nil {
		t.Fatal("active_sessions gauge not found")
	}
	if got := gauge.GetMetric()[0].GetGauge().GetValue(); got != 3 {
		t.Fatalf("expected active_sessions=3, got %f", got)
	}
}

func TestStorefrontMetricsNilSafe(t *testing.T) {
	var metrics *StorefrontMetrics
	metrics.IncCartMutation("add")
	metrics.IncOrderSubmitted()
	metrics.IncCheckoutDenied()
	metrics.SetActiveSessions(1)

	empty := NewStorefrontMetrics(nil)
	empty.IncCartMutation("")
	empty.SetActiveSessions(0)
}

func fetchPlainCounter(t *testing.T, mfs []*dto.MetricFamily, name string) float64 {
	t.Helper()
	mf := findMetricFamily(mfs, name)
	if mf == nil {
		t.Fatalf("metric %q not found", name)
	}
	return mf.GetMetric()[0].GetCounter().GetValue()
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

func findMetricFamily(mfs []*dto.MetricFamily, name string) *dto.MetricFamily {
	for _, mf := range mfs {
		if mf.GetName() == name {
			return mf
		}
	}
	return nil
}

func matchesLabel(labels []*dto.LabelPair, name, value string) bool {
	for _, label := range labels {
		if label.GetName() == name && label.GetValue() == value {
			return true
		}
	}
	return false
}
