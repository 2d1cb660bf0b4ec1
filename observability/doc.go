// Package observability defines the shared observer contract used by the
// mdbridge binding packages.
//
// The element decoder and the lifetime registry both accept an optional
// Observer. After every completed operation they emit one OperationContext
// describing what happened: which component ran, which operation, the
// declared datatype (for decodes), how long it took, how many items it
// touched, and the error if the operation failed.
//
// The package deliberately contains no metrics or tracing code of its own.
// Concrete sinks live next to their backends:
//
//   - metricsobs feeds OperationContexts into Prometheus
//   - traceobs turns them into OpenTelemetry spans
//
// Applications can also implement Observer directly, for example to sample
// decode latencies into their own telemetry pipeline.
//
// # Usage
//
//	obs := metricsobs.NewMetricsObserver(m) // or any other Observer implementation
//
//	dec := element.NewDecoder(element.Config{ServiceName: "ticker-feed"})
//	dec.WithObserver(obs)
//
// Observers must be safe for concurrent use: the lifetime registry invokes
// its observer from whatever thread the external engine happens to be
// running on.
package observability
