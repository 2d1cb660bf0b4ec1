package metricsobs

import (
	"github.com/aalemi-dev/mdbridge/metrics"
	"github.com/aalemi-dev/mdbridge/observability"
)

// MetricsObserver translates binding operation events into Prometheus
// metrics. It implements the observability.Observer interface.
//
// All underlying Prometheus collectors are safe for concurrent use, so a
// single MetricsObserver can be shared by the decoder and the registry
// across goroutines.
type MetricsObserver struct {
	decodeTotal    metrics.Counter
	decodeDuration metrics.Histogram
	decodeNodes    metrics.Histogram
	lifetimeOps    metrics.Counter
	liveReferences metrics.Gauge
}

// NewMetricsObserver creates a MetricsObserver and registers its collectors
// with the given metrics instance.
//
// Parameters:
//   - m: The metrics collector the observer registers its metrics with
//
// Returns:
//   - *MetricsObserver: An observer ready to be attached to the decoder and
//     registry via their WithObserver methods
func NewMetricsObserver(m metrics.MetricsCollector) *MetricsObserver {
	return &MetricsObserver{
		decodeTotal: m.CreateCounter(
			"element_decode_total",
			"Total number of decoded elements",
			[]string{"datatype", "status"},
		),
		decodeDuration: m.CreateHistogram(
			"element_decode_duration_seconds",
			"Element decode duration in seconds",
			[]string{"datatype"},
			[]float64{.000001, .00001, .0001, .001, .01, .1, 1},
		),
		decodeNodes: m.CreateHistogram(
			"element_decode_nodes",
			"Number of native values produced per decoded element",
			[]string{"datatype"},
			[]float64{1, 4, 16, 64, 256, 1024, 4096},
		),
		lifetimeOps: m.CreateCounter(
			"lifetime_operations_total",
			"Total number of managed-reference operations",
			[]string{"operation", "status"},
		),
		liveReferences: m.CreateGauge(
			"lifetime_live_references",
			"Number of live managed references",
			nil,
		),
	}
}

// ObserveOperation records the metrics for a completed binding operation.
// Events from unknown components are ignored.
func (o *MetricsObserver) ObserveOperation(op observability.OperationContext) {
	switch op.Component {
	case "element":
		o.observeDecode(op)
	case "lifetime":
		o.observeLifetime(op)
	}
}

func (o *MetricsObserver) observeDecode(op observability.OperationContext) {
	dt := op.Datatype
	if dt == "" {
		dt = "unknown"
	}

	o.decodeTotal.WithLabelValues(dt, statusLabel(op.Error)).Inc()
	o.decodeDuration.WithLabelValues(dt).Observe(op.Duration.Seconds())
	if op.Error == nil {
		o.decodeNodes.WithLabelValues(dt).Observe(float64(op.Items))
	}
}

func (o *MetricsObserver) observeLifetime(op observability.OperationContext) {
	o.lifetimeOps.WithLabelValues(op.Operation, statusLabel(op.Error)).Inc()
	if op.Error == nil {
		// Items carries the live reference count after the operation.
		o.liveReferences.Set(float64(op.Items))
	}
}

func statusLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
