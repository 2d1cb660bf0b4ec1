package metrics

// MetricsCollector is the metric-creation contract the binding packages
// depend on. It covers counters, histograms, gauges and summaries without
// exposing any Prometheus type, so consumers can swap in test doubles.
//
// Every metric created through this interface lands on the application
// registry and is served by the application endpoint (default :9091).
//
// The interface is implemented by the concrete *Metrics type.
type MetricsCollector interface {
	// CreateCounter registers a new counter vector on the application
	// registry.
	//
	// Counters only increase; use them for totals.
	//
	// Example:
	//   decodes := m.CreateCounter("element_decode_total", "Total element decodes", []string{"datatype", "status"})
	//   decodes.WithLabelValues("SEQUENCE", "success").Inc()
	CreateCounter(name, help string, labels []string) Counter

	// CreateHistogram registers a new histogram vector on the application
	// registry, bucketed by the supplied boundaries.
	//
	// Histograms capture distributions, typically latencies and sizes.
	//
	// Example:
	//   durations := m.CreateHistogram("element_decode_duration_seconds", "Decode latency", []string{"datatype"}, []float64{.0005, .001, .005, .01, .05})
	//   durations.WithLabelValues("SEQUENCE").Observe(0.0004)
	CreateHistogram(name, help string, labels []string, buckets []float64) Histogram

	// CreateGauge registers a new gauge vector on the application
	// registry.
	//
	// Gauges move both ways; use them for current state.
	//
	// Example:
	//   live := m.CreateGauge("lifetime_live_references", "Live managed references", nil)
	//   live.Set(42)
	CreateGauge(name, help string, labels []string) Gauge

	// CreateSummary registers a new summary vector on the application
	// registry. Objectives map quantile ranks to their allowed error
	// (e.g. 0.5 for the median, 0.99 for the 99th percentile).
	//
	// Example:
	//   latency := m.CreateSummary("event_dispatch_latency_seconds", "Dispatch latency", []string{"event_type"}, map[float64]float64{0.5: 0.05, 0.99: 0.001})
	//   latency.WithLabelValues("SUBSCRIPTION_DATA").Observe(0.002)
	CreateSummary(name, help string, labels []string, objectives map[float64]float64) Summary
}
