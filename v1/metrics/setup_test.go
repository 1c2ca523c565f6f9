package metrics

import (
	"testing"
	"time"
)

func findMetric(t *testing.T, m *Metrics, name string) bool {
	t.Helper()
	families, err := m.Registry.Gather()
	if err != nil {
		t.Fatalf("gathering metrics: %v", err)
	}
	for _, family := range families {
		if family.GetName() == name {
			return true
		}
	}
	return false
}

func TestMetricsRegistration(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})

	m.IncrementRequests("success")
	m.RecordRequestDuration(time.Now(), "/embeddings")
	m.IncrementBatches("text")
	m.IncrementOOMFallbacks()
	m.IncrementItemsDropped(2)
	m.IncrementReclaims()

	for _, name := range []string{
		"requests_total",
		"request_duration_seconds",
		"batches_total",
		"oom_fallbacks_total",
		"items_dropped_total",
		"memory_reclaims_total",
	} {
		if !findMetric(t, m, name) {
			t.Errorf("metric %s not registered", name)
		}
	}
}

func TestCreateCounterRegisters(t *testing.T) {
	m := NewMetrics(Config{Address: ":0", ServiceName: "test"})

	counter := m.CreateCounter("custom_events_total", "Custom events", []string{"kind"})
	counter.WithLabelValues("probe").Inc()

	if !findMetric(t, m, "custom_events_total") {
		t.Error("custom counter not registered")
	}
}
