package internaldefs

import (
	goSession "github.com/MrEthical07/goSession"
)

// CounterDef defines a public type used by goSession APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goSession.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goSession APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goSession.MetricID
	Name string
	Help string
}

// CounterDefs is the exported counter catalog shared by the exporters.
var CounterDefs = []CounterDef{
	{ID: goSession.MetricLoad, Name: "gosession_loads_total", Help: "Session record loads, including empty-session loads."},
	{ID: goSession.MetricSave, Name: "gosession_saves_total", Help: "Full-mapping session writes (each refreshes the idle TTL)."},
	{ID: goSession.MetricDestroy, Name: "gosession_destroys_total", Help: "Explicit session record deletions."},
	{ID: goSession.MetricIdentifierMinted, Name: "gosession_identifiers_minted_total", Help: "Freshly minted session identifiers."},
	{ID: goSession.MetricCorruptSession, Name: "gosession_corrupt_sessions_total", Help: "Session records that failed to decode."},
	{ID: goSession.MetricStoreUnavailable, Name: "gosession_store_unavailable_total", Help: "Store calls that failed at the transport level."},
}

// HistogramDefs is the exported histogram catalog shared by the exporters.
var HistogramDefs = []HistogramDef{
	{ID: goSession.MetricStoreLatency, Name: "gosession_store_latency_seconds", Help: "Store round-trip latency."},
}

// HistogramBounds is the Prometheus le label set for the fixed buckets.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
