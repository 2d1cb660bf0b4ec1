// Package metrics exposes Prometheus instrumentation for the market-data
// bridge.
//
// It runs two independent /metrics endpoints, one for runtime and process
// metrics and one for application metrics defined by the bridge itself, and
// wires into the fx dependency injection framework alongside the logger and
// tracer packages.
//
// # Architecture
//
// The package follows the "accept interfaces, return structs" design pattern:
//   - MetricsCollector interface: the contract consumers depend on
//   - Metrics struct: the concrete implementation holding both registries
//   - NewMetrics constructor: returns *Metrics (concrete type)
//   - FXModule: provides both *Metrics and the MetricsCollector interface
//
// # Dual Endpoint Design
//
// Two separate Prometheus endpoints are served:
//
// 1. System endpoint (default :9090)
//   - Go runtime collectors (goroutines, heap, GC)
//   - Process collectors (CPU, file descriptors, RSS)
//   - Build info
//   - Registered automatically
//
// 2. Application endpoint (default :9091)
//   - Only metrics created through CreateCounter, CreateGauge,
//     CreateHistogram, and CreateSummary
//   - No default collectors, so the page stays readable
//
// Keeping them apart lets operators scrape them at different intervals and
// restrict access to the system endpoint without touching the application
// one. Every metric on both endpoints carries a "service" label taken from
// Config.ServiceName.
//
// # Direct Usage (Without FX)
//
// For tools and tests, construct the servers directly:
//
//	import "github.com/aalemi-dev/mdbridge/metrics"
//
//	cfg := metrics.Config{
//		SystemMetricsAddress:      ":9090",
//		ApplicationMetricsAddress: ":9091",
//		ServiceName:               "ticker-feed",
//	}
//
//	m := metrics.NewMetrics(cfg)
//
//	go m.SystemServer.ListenAndServe()
//	go m.ApplicationServer.ListenAndServe()
//
//	decodeCounter := m.CreateCounter(
//		"element_decode_total",
//		"Total decoded elements",
//		[]string{"datatype", "status"},
//	)
//	decodeCounter.WithLabelValues("SEQUENCE", "success").Inc()
//
// Setting either address to the empty string disables that endpoint. A nil
// address pointer falls back to the package default.
//
// # FX Module Integration
//
// Services assemble metrics through fx. FXModule provides the collector and
// RegisterMetricsLifecycle starts and stops the HTTP servers with the app:
//
//	import (
//		"go.uber.org/fx"
//		"github.com/aalemi-dev/mdbridge/metrics"
//		"github.com/aalemi-dev/mdbridge/logger"
//	)
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		fx.Provide(func() metrics.Config {
//			return metrics.Config{
//				SystemMetricsAddress:      ":9090",
//				ApplicationMetricsAddress: ":9091",
//				ServiceName:               "ticker-feed",
//			}
//		}),
//		fx.Invoke(func(m metrics.MetricsCollector) {
//			counter := m.CreateCounter(
//				"events_processed",
//				"Total processed events",
//				[]string{"status"},
//			)
//			counter.WithLabelValues("success").Inc()
//		}),
//	)
//	app.Run()
//
// # Choosing a Metric Type
//
// Counters track totals that only grow, such as decoded elements or decode
// errors:
//
//	decodeCounter := m.CreateCounter(
//		"element_decode_total",
//		"Total number of decoded elements",
//		[]string{"datatype", "status"},
//	)
//	decodeCounter.WithLabelValues("FLOAT64", "success").Inc()
//
// Gauges track current state, such as the number of live references held by
// the lifetime registry:
//
//	liveRefs := m.CreateGauge(
//		"lifetime_live_references",
//		"Number of live engine object references",
//		[]string{"registry"},
//	)
//	liveRefs.WithLabelValues("default").Set(25)
//	liveRefs.WithLabelValues("default").Dec()
//
// Histograms track distributions. Decode latency sits well under a
// millisecond, so the buckets start at a microsecond:
//
//	decodeDuration := m.CreateHistogram(
//		"element_decode_duration_seconds",
//		"Element decode duration in seconds",
//		[]string{"datatype"},
//		[]float64{.000001, .00001, .0001, .001, .01, .1, 1},
//	)
//	decodeDuration.WithLabelValues("SEQUENCE").Observe(time.Since(start).Seconds())
//
// Summaries compute quantiles on the client. They cannot be aggregated
// across instances, so prefer histograms unless per-instance precision
// matters:
//
//	dispatchLatency := m.CreateSummary(
//		"event_dispatch_latency_seconds",
//		"Event dispatch latency in seconds",
//		[]string{"event_type"},
//		map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
//	)
//	dispatchLatency.WithLabelValues("SUBSCRIPTION_DATA").Observe(elapsed)
//
// # Instrumenting the Decoder
//
// A session typically bundles its metrics into a struct created once at
// startup and updates them on the hot path:
//
//	type DecodeMetrics struct {
//		DecodedTotal   metrics.Counter
//		DecodeDuration metrics.Histogram
//	}
//
//	func NewDecodeMetrics(m metrics.MetricsCollector) *DecodeMetrics {
//		return &DecodeMetrics{
//			DecodedTotal: m.CreateCounter(
//				"element_decode_total",
//				"Total number of decoded elements",
//				[]string{"datatype", "status"},
//			),
//			DecodeDuration: m.CreateHistogram(
//				"element_decode_duration_seconds",
//				"Element decode duration in seconds",
//				[]string{"datatype"},
//				[]float64{.000001, .00001, .0001, .001, .01, .1, 1},
//			),
//		}
//	}
//
//	func (s *Session) handleMessage(el element.Element) error {
//		start := time.Now()
//		value, err := s.decoder.Decode(s.ctx, el)
//
//		dt := el.Datatype().String()
//		s.metrics.DecodeDuration.WithLabelValues(dt).Observe(time.Since(start).Seconds())
//		if err != nil {
//			s.metrics.DecodedTotal.WithLabelValues(dt, "error").Inc()
//			return err
//		}
//		s.metrics.DecodedTotal.WithLabelValues(dt, "success").Inc()
//		return s.publish(value)
//	}
//
// Keep label values bounded. Datatype names and status strings make good
// labels; correlation IDs and engine handles do not, since every live
// reference would mint a new series.
//
// # Testing
//
// Tests create a Metrics instance without starting the servers and assert
// through prometheus/testutil:
//
//	cfg := metrics.Config{
//		SystemMetricsAddress:      "",
//		ApplicationMetricsAddress: "",
//		ServiceName:               "test",
//	}
//	m := metrics.NewMetrics(cfg)
//	counter := m.CreateCounter("decode_total", "Decoded elements", []string{"datatype"})
//	counter.WithLabelValues("INT32").Inc()
//
// # Thread Safety
//
// All methods on Metrics and all returned collectors are safe for concurrent
// use by multiple goroutines.
package metrics
