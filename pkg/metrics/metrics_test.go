package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("counter Write() error: %v", err)
	}
	if m.Counter == nil {
		t.Fatal("expected counter metric to have Counter field")
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("gauge Write() error: %v", err)
	}
	if m.Gauge == nil {
		t.Fatal("expected gauge metric to have Gauge field")
	}
	return m.GetGauge().GetValue()
}

func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m dto.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("histogram Write() error: %v", err)
	}
	if m.Histogram == nil {
		t.Fatal("expected histogram metric to have Histogram field")
	}
	return m.GetHistogram().GetSampleCount()
}

func TestNewRegistersAndRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(WithRegistry(reg))

	m.RenderCycles.Inc()
	m.RenderCycles.Inc()
	m.RenderDuration.Observe(0.005)
	m.PatchesTotal.WithLabelValues("SetAttr").Add(3)
	m.FlushSize.Observe(4)
	m.MissingTargets.Inc()
	m.InternedStrings.Set(12)

	if got := counterValue(t, m.RenderCycles); got != 2 {
		t.Errorf("RenderCycles = %v, want 2", got)
	}
	if got := histogramCount(t, m.RenderDuration); got != 1 {
		t.Errorf("RenderDuration samples = %v, want 1", got)
	}
	if got := counterValue(t, m.PatchesTotal.WithLabelValues("SetAttr")); got != 3 {
		t.Errorf("PatchesTotal{op=SetAttr} = %v, want 3", got)
	}
	if got := histogramCount(t, m.FlushSize); got != 1 {
		t.Errorf("FlushSize samples = %v, want 1", got)
	}
	if got := counterValue(t, m.MissingTargets); got != 1 {
		t.Errorf("MissingTargets = %v, want 1", got)
	}
	if got := gaugeValue(t, m.InternedStrings); got != 12 {
		t.Errorf("InternedStrings = %v, want 12", got)
	}
}

func TestNewHonorsNamespaceAndLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(
		WithRegistry(reg),
		WithNamespace("custom"),
		WithSubsystem("engine"),
		WithConstLabels(prometheus.Labels{"app": "test"}),
		WithBuckets([]float64{0.1, 1}),
	)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather error: %v", err)
	}
	found := false
	for _, f := range families {
		if f.GetName() == "custom_engine_render_cycles_total" {
			found = true
		}
	}
	if !found {
		var names []string
		for _, f := range families {
			names = append(names, f.GetName())
		}
		t.Errorf("metric custom_engine_render_cycles_total not registered; got %v", names)
	}
}

func TestSeparateRegistriesDoNotCollide(t *testing.T) {
	// Same metric names on distinct registries must both register.
	m1 := New(WithRegistry(prometheus.NewRegistry()))
	m2 := New(WithRegistry(prometheus.NewRegistry()))
	m1.RenderCycles.Inc()
	if got := counterValue(t, m2.RenderCycles); got != 0 {
		t.Errorf("second instance RenderCycles = %v, want 0", got)
	}
}
