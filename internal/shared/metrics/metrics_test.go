package metrics

import (
	"strings"
	"testing"
)

func TestRenderExposesParseCounters(t *testing.T) {
	IncParseStarted()
	IncParseCompleted()
	ObserveParseDurationMs(42)

	out := Render()
	for _, name := range []string{
		"parse_started_total",
		"parse_completed_total",
		"parse_failed_total",
		"report_built_total",
		"parse_duration_ms_bucket",
		"parse_duration_ms_count",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in render output:\n%s", name, out)
		}
	}
}

func TestHistogramBucketsAreCumulative(t *testing.T) {
	h := newHistogram([]float64{10, 100})
	h.Observe(5)
	h.Observe(50)
	h.Observe(500)

	snap := h.Snapshot()
	if snap.count != 3 {
		t.Fatalf("expected count 3, got %d", snap.count)
	}
	if snap.counts[0] != 1 || snap.counts[1] != 1 {
		t.Fatalf("unexpected bucket counts %v", snap.counts)
	}
	if snap.sum != 555 {
		t.Fatalf("unexpected sum %v", snap.sum)
	}
}
