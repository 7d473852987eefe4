package prometheus

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	goSession "github.com/MrEthical07/goSession"
)

type fakeSource struct {
	snapshot goSession.MetricsSnapshot
}

func (f *fakeSource) MetricsSnapshot() goSession.MetricsSnapshot {
	return f.snapshot
}

func testSnapshot() goSession.MetricsSnapshot {
	return goSession.MetricsSnapshot{
		Counters: map[goSession.MetricID]uint64{
			goSession.MetricLoad: 7,
			goSession.MetricSave: 3,
		},
		Histograms: map[goSession.MetricID][]uint64{
			goSession.MetricStoreLatency: {2, 0, 1, 0, 0, 0, 0, 0},
		},
	}
}

func TestRenderCounters(t *testing.T) {
	exp := NewPrometheusExporterFromSource(&fakeSource{snapshot: testSnapshot()})

	out := exp.Render()
	for _, want := range []string{
		"# TYPE gosession_loads_total counter",
		"gosession_loads_total 7",
		"gosession_saves_total 3",
		"gosession_destroys_total 0",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderHistogramCumulative(t *testing.T) {
	exp := NewPrometheusExporterFromSource(&fakeSource{snapshot: testSnapshot()})

	out := exp.Render()
	for _, want := range []string{
		"# TYPE gosession_store_latency_seconds histogram",
		`gosession_store_latency_seconds_bucket{le="0.005"} 2`,
		`gosession_store_latency_seconds_bucket{le="0.025"} 3`,
		`gosession_store_latency_seconds_bucket{le="+Inf"} 3`,
		"gosession_store_latency_seconds_count 3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderEmptySnapshot(t *testing.T) {
	exp := NewPrometheusExporterFromSource(&fakeSource{snapshot: goSession.MetricsSnapshot{
		Counters:   map[goSession.MetricID]uint64{},
		Histograms: map[goSession.MetricID][]uint64{},
	}})

	if out := exp.Render(); out != "" {
		t.Fatalf("expected empty render, got:\n%s", out)
	}
}

func TestHandlerServesTextFormat(t *testing.T) {
	exp := NewPrometheusExporterFromSource(&fakeSource{snapshot: testSnapshot()})

	w := httptest.NewRecorder()
	exp.Handler().ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	res := w.Result()
	if ct := res.Header.Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "gosession_loads_total 7") {
		t.Fatalf("unexpected body:\n%s", body)
	}
}
