package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatherValue(t *testing.T, registry *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := registry.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		m := mf.GetMetric()[0]
		if c := m.GetCounter(); c != nil {
			return c.GetValue()
		}
		if g := m.GetGauge(); g != nil {
			return g.GetValue()
		}
		if h := m.GetHistogram(); h != nil {
			return h.GetSampleSum()
		}
	}
	t.Fatalf("metric %q not gathered", name)
	return 0
}

func TestIncCounter(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := New(registry)

	c.IncCounter("test_counter_total", 1)
	c.IncCounter("test_counter_total", 4)

	if got := gatherValue(t, registry, "test_counter_total"); got != 5 {
		t.Errorf("counter = %v, want 5", got)
	}
}

func TestSetGauge(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := New(registry)

	c.SetGauge("test_gauge", 17)
	c.SetGauge("test_gauge", 3)

	if got := gatherValue(t, registry, "test_gauge"); got != 3 {
		t.Errorf("gauge = %v, want 3", got)
	}
}

func TestObserveHistogram(t *testing.T) {
	registry := prometheus.NewRegistry()
	c := New(registry)

	c.ObserveHistogram("test_histogram", 0.25)
	c.ObserveHistogram("test_histogram", 0.5)

	if got := gatherValue(t, registry, "test_histogram"); got != 0.75 {
		t.Errorf("histogram sample sum = %v, want 0.75", got)
	}
}

func TestCollidingRegistrationReusesMetric(t *testing.T) {
	registry := prometheus.NewRegistry()
	a := New(registry)
	b := New(registry)

	a.IncCounter("shared_total", 2)
	b.IncCounter("shared_total", 3)

	if got := gatherValue(t, registry, "shared_total"); got != 5 {
		t.Errorf("counter = %v, want 5", got)
	}
}

func TestNilRegistryUsesDefault(t *testing.T) {
	c := New(nil)
	if c.registry != prometheus.DefaultRegisterer {
		t.Error("nil registry did not fall back to the default registerer")
	}
}
