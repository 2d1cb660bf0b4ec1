package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// CreateCounter registers a new counter vector on the application registry
// and returns it behind the Counter interface.
//
// Counters only go up; use them for totals such as decoded elements or
// lifetime operations.
//
// Example:
//
//	decodes := m.CreateCounter(
//	    "element_decode_total",
//	    "Total element decode operations",
//	    []string{"datatype", "status"},
//	)
//	decodes.WithLabelValues("SEQUENCE", "success").Inc()
func (m *Metrics) CreateCounter(name, help string, labels []string) Counter {
	promCounter := createCounterVec(name, help, labels)
	m.wrappedApplicationRegisterer.MustRegister(promCounter)
	return &counterAdapter{cv: promCounter}
}

// CreateHistogram registers a new histogram vector on the application
// registry and returns it behind the Histogram interface.
//
// Histograms capture value distributions, typically latencies and sizes,
// bucketed by the supplied boundaries.
//
// Example:
//
//	durations := m.CreateHistogram(
//	    "element_decode_duration_seconds",
//	    "Element decode latency in seconds",
//	    []string{"datatype"},
//	    []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05},
//	)
//	durations.WithLabelValues("SEQUENCE").Observe(0.0004)
func (m *Metrics) CreateHistogram(name, help string, labels []string, buckets []float64) Histogram {
	promHistogram := createHistogramVec(name, help, labels, buckets)
	m.wrappedApplicationRegisterer.MustRegister(promHistogram)
	return &histogramAdapter{hv: promHistogram}
}

// CreateGauge registers a new gauge vector on the application registry and
// returns it behind the Gauge interface.
//
// Gauges move in both directions; use them for current state such as the
// number of live managed references.
//
// Example:
//
//	live := m.CreateGauge("lifetime_live_references", "Live managed references", nil)
//	live.Set(42)
//	live.Inc()
//	live.Dec()
func (m *Metrics) CreateGauge(name, help string, labels []string) Gauge {
	promGauge := createGaugeVec(name, help, labels)
	m.wrappedApplicationRegisterer.MustRegister(promGauge)
	return &gaugeAdapter{gv: promGauge}
}

// CreateSummary registers a new summary vector on the application registry
// and returns it behind the Summary interface.
//
// Summaries compute quantiles client-side; the objectives map quantile
// ranks to their allowed error.
//
// Example:
//
//	latency := m.CreateSummary(
//	    "event_dispatch_latency_seconds",
//	    "Event dispatch latency in seconds",
//	    []string{"event_type"},
//	    map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
//	)
//	latency.WithLabelValues("SUBSCRIPTION_DATA").Observe(0.002)
func (m *Metrics) CreateSummary(name, help string, labels []string, objectives map[float64]float64) Summary {
	promSummary := createSummaryVec(name, help, labels, objectives)
	m.wrappedApplicationRegisterer.MustRegister(promSummary)
	return &summaryAdapter{sv: promSummary}
}

// createCounterVec builds a CounterVec with standard options.
func createCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createHistogramVec builds a HistogramVec with the given buckets.
func createHistogramVec(name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    name,
			Help:    help,
			Buckets: buckets,
		},
		labels,
	)
}

// createGaugeVec builds a GaugeVec with standard options.
func createGaugeVec(name, help string, labels []string) *prometheus.GaugeVec {
	return prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: name,
			Help: help,
		},
		labels,
	)
}

// createSummaryVec builds a SummaryVec with the given objectives.
func createSummaryVec(name, help string, labels []string, objectives map[float64]float64) *prometheus.SummaryVec {
	return prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       name,
			Help:       help,
			Objectives: objectives,
		},
		labels,
	)
}
