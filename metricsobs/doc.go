// Package metricsobs implements the observability.Observer interface on top
// of the metrics package, turning binding operation events into Prometheus
// metrics.
//
// # Overview
//
// The element and lifetime packages emit an observability.OperationContext
// for every completed operation. This package translates those events into
// a small, bounded set of application metrics:
//
//   - element_decode_total (counter): decoded elements by datatype and status
//   - element_decode_duration_seconds (histogram): decode latency by datatype
//   - element_decode_nodes (histogram): native values produced per decode
//   - lifetime_operations_total (counter): pin/copy/destroy calls by status
//   - lifetime_live_references (gauge): live managed references
//
// Label cardinality is bounded: datatypes are a fixed schema enum, operations
// and statuses are small closed sets. Handles and correlation IDs are never
// used as labels.
//
// # Usage
//
//	m := metrics.NewMetrics(metricsCfg)
//	obs := metricsobs.NewMetricsObserver(m)
//
//	dec := element.NewDecoder(element.Config{ServiceName: "ticker-feed"}).
//		WithObserver(obs)
//	reg := lifetime.NewRegistry(lifetime.Config{ServiceName: "ticker-feed"}).
//		WithObserver(obs)
//
// With Fx, include FXModule and the observer is provided as
// observability.Observer automatically.
package metricsobs
