package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter is a cumulative metric that only increases, for totals such as
// decode operations or bytes processed.
//
// The interface hides the underlying Prometheus CounterVec.
type Counter interface {
	// WithLabelValues returns the Counter for the given label values. The
	// number of values must match the labels declared at creation.
	WithLabelValues(lvs ...string) Counter

	// Inc increments the counter by 1.
	Inc()

	// Add adds the given value to the counter. The value must be >= 0.
	Add(val float64)
}

// Gauge is a metric that moves in both directions, for current state such
// as live managed references or queue depth.
//
// The interface hides the underlying Prometheus GaugeVec.
type Gauge interface {
	// WithLabelValues returns the Gauge for the given label values. The
	// number of values must match the labels declared at creation.
	WithLabelValues(lvs ...string) Gauge

	// Set sets the gauge to an arbitrary value.
	Set(val float64)

	// Inc increments the gauge by 1.
	Inc()

	// Dec decrements the gauge by 1.
	Dec()

	// Add adds the given value to the gauge. The value can be negative.
	Add(val float64)

	// Sub subtracts the given value from the gauge. The value can be negative.
	Sub(val float64)

	// SetToCurrentTime sets the gauge to the current Unix timestamp in seconds.
	SetToCurrentTime()
}

// Histogram records the distribution of observed values, bucketed
// server-side, typically latencies or payload sizes.
//
// The interface hides the underlying Prometheus HistogramVec.
type Histogram interface {
	// WithLabelValues returns the Observer for the given label values. The
	// number of values must match the labels declared at creation.
	WithLabelValues(lvs ...string) Observer

	// Observe adds a single observation to the histogram.
	Observe(val float64)
}

// Summary computes streaming quantiles of observed values client-side.
// Unlike histograms, summaries cannot be aggregated across instances.
//
// The interface hides the underlying Prometheus SummaryVec.
type Summary interface {
	// WithLabelValues returns the Observer for the given label values. The
	// number of values must match the labels declared at creation.
	WithLabelValues(lvs ...string) Observer

	// Observe adds a single observation to the summary.
	Observe(val float64)
}

// Observer is the common surface of value-observing metrics (Histogram and
// Summary).
type Observer interface {
	// Observe adds a single observation to the metric.
	Observe(val float64)
}

// counterAdapter wraps a labeled prometheus.CounterVec behind Counter.
type counterAdapter struct {
	cv *prometheus.CounterVec
}

func (a *counterAdapter) WithLabelValues(lvs ...string) Counter {
	return &boundCounter{c: a.cv.WithLabelValues(lvs...)}
}

func (a *counterAdapter) Inc()            { a.cv.WithLabelValues().Inc() }
func (a *counterAdapter) Add(val float64) { a.cv.WithLabelValues().Add(val) }

// boundCounter is a counter whose label values are already fixed.
type boundCounter struct {
	c prometheus.Counter
}

func (b *boundCounter) WithLabelValues(lvs ...string) Counter {
	// already labeled; returning self keeps the interface total
	return b
}

func (b *boundCounter) Inc()            { b.c.Inc() }
func (b *boundCounter) Add(val float64) { b.c.Add(val) }

// gaugeAdapter wraps a labeled prometheus.GaugeVec behind Gauge.
type gaugeAdapter struct {
	gv *prometheus.GaugeVec
}

func (a *gaugeAdapter) WithLabelValues(lvs ...string) Gauge {
	return &boundGauge{g: a.gv.WithLabelValues(lvs...)}
}

func (a *gaugeAdapter) Set(val float64)   { a.gv.WithLabelValues().Set(val) }
func (a *gaugeAdapter) Inc()              { a.gv.WithLabelValues().Inc() }
func (a *gaugeAdapter) Dec()              { a.gv.WithLabelValues().Dec() }
func (a *gaugeAdapter) Add(val float64)   { a.gv.WithLabelValues().Add(val) }
func (a *gaugeAdapter) Sub(val float64)   { a.gv.WithLabelValues().Sub(val) }
func (a *gaugeAdapter) SetToCurrentTime() { a.gv.WithLabelValues().SetToCurrentTime() }

// boundGauge is a gauge whose label values are already fixed.
type boundGauge struct {
	g prometheus.Gauge
}

func (b *boundGauge) WithLabelValues(lvs ...string) Gauge {
	// already labeled; returning self keeps the interface total
	return b
}

func (b *boundGauge) Set(val float64)   { b.g.Set(val) }
func (b *boundGauge) Inc()              { b.g.Inc() }
func (b *boundGauge) Dec()              { b.g.Dec() }
func (b *boundGauge) Add(val float64)   { b.g.Add(val) }
func (b *boundGauge) Sub(val float64)   { b.g.Sub(val) }
func (b *boundGauge) SetToCurrentTime() { b.g.SetToCurrentTime() }

// histogramAdapter wraps a labeled prometheus.HistogramVec behind Histogram.
type histogramAdapter struct {
	hv *prometheus.HistogramVec
}

func (a *histogramAdapter) WithLabelValues(lvs ...string) Observer {
	return &boundObserver{o: a.hv.WithLabelValues(lvs...)}
}

func (a *histogramAdapter) Observe(val float64) { a.hv.WithLabelValues().Observe(val) }

// summaryAdapter wraps a labeled prometheus.SummaryVec behind Summary.
type summaryAdapter struct {
	sv *prometheus.SummaryVec
}

func (a *summaryAdapter) WithLabelValues(lvs ...string) Observer {
	return &boundObserver{o: a.sv.WithLabelValues(lvs...)}
}

func (a *summaryAdapter) Observe(val float64) { a.sv.WithLabelValues().Observe(val) }

// boundObserver is a histogram or summary whose label values are already
// fixed.
type boundObserver struct {
	o prometheus.Observer
}

func (b *boundObserver) Observe(val float64) { b.o.Observe(val) }
