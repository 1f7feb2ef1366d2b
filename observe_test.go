package solrkit

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
	metric:
		for _, m := range mf.GetMetric() {
			got := map[string]string{}
			for _, lp := range m.GetLabel() {
				got[lp.GetName()] = lp.GetValue()
			}
			for k, v := range labels {
				if got[k] != v {
					continue metric
				}
			}
			return m.GetCounter().GetValue()
		}
	}
	return 0
}

func TestObserverCountsOperations(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := newObserver(slog.Default(), reg)
	if err != nil {
		t.Fatalf("new observer: %v", err)
	}

	obs.observe("query", time.Now(), nil)
	obs.observe("query", time.Now(), nil)
	obs.observe("add", time.Now(), errors.New("boom"))

	if got := counterValue(t, reg, "solrkit_client_operations_total",
		map[string]string{"operation": "query", "status": "ok"}); got != 2 {
		t.Errorf("query ok count = %v, want 2", got)
	}
	if got := counterValue(t, reg, "solrkit_client_operations_total",
		map[string]string{"operation": "add", "status": "error"}); got != 1 {
		t.Errorf("add error count = %v, want 1", got)
	}
}

func TestObserverReusesRegisteredMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := newObserver(nil, reg); err != nil {
		t.Fatalf("first observer: %v", err)
	}
	obs, err := newObserver(nil, reg)
	if err != nil {
		t.Fatalf("second observer on the same registry: %v", err)
	}
	obs.observe("commit", time.Now(), nil)

	if got := counterValue(t, reg, "solrkit_client_operations_total",
		map[string]string{"operation": "commit", "status": "ok"}); got != 1 {
		t.Errorf("commit count = %v, want 1", got)
	}
}

func TestObserverNilSafety(t *testing.T) {
	var obs *observer
	obs.observe("query", time.Now(), nil) // must not panic

	obs, err := newObserver(nil, nil)
	if err != nil {
		t.Fatalf("new observer: %v", err)
	}
	obs.observe("query", time.Now(), errors.New("boom")) // no logger, no metrics
}
