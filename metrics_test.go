package goSession

import (
	"testing"
	"time"
)

func TestMetricsIncAndSnapshot(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true})

	m.Inc(MetricLoad)
	m.Inc(MetricLoad)
	m.Inc(MetricSave)

	if got := m.Value(MetricLoad); got != 2 {
		t.Fatalf("expected 2 loads, got %d", got)
	}

	snap := m.Snapshot()
	if snap.Counters[MetricLoad] != 2 || snap.Counters[MetricSave] != 1 {
		t.Fatalf("unexpected snapshot: %v", snap.Counters)
	}
	if snap.Counters[MetricDestroy] != 0 {
		t.Fatalf("untouched counters must be zero, got %d", snap.Counters[MetricDestroy])
	}
}

func TestMetricsDisabledIsNoop(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricLoad)
	m.Observe(MetricStoreLatency, 10*time.Millisecond)

	if got := m.Value(MetricLoad); got != 0 {
		t.Fatalf("disabled metrics must not record, got %d", got)
	}
	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled snapshot must be empty, got %v", snap)
	}
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics

	m.Inc(MetricSave)
	m.Observe(MetricStoreLatency, time.Millisecond)
	if m.Enabled() {
		t.Fatal("nil metrics must report disabled")
	}
	if got := m.Value(MetricSave); got != 0 {
		t.Fatalf("nil metrics value must be 0, got %d", got)
	}
}

func TestMetricsLatencyHistogram(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricStoreLatency, 3*time.Millisecond)   // bucket 0
	m.Observe(MetricStoreLatency, 40*time.Millisecond)  // bucket 3
	m.Observe(MetricStoreLatency, 900*time.Millisecond) // overflow bucket

	snap := m.Snapshot()
	buckets, ok := snap.Histograms[MetricStoreLatency]
	if !ok || len(buckets) != histBucketCount {
		t.Fatalf("expected %d buckets, got %v", histBucketCount, buckets)
	}
	if buckets[0] != 1 || buckets[3] != 1 || buckets[7] != 1 {
		t.Fatalf("unexpected bucket distribution: %v", buckets)
	}
}
