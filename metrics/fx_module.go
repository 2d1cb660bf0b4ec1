package metrics

import (
	"context"
	"net/http"

	"go.uber.org/fx"

	"github.com/aalemi-dev/mdbridge/logger"
)

// FXModule wires both Prometheus endpoints into an Fx application: it
// provides the Metrics factory and registers start/stop hooks for the two
// HTTP servers.
//
// The module provides:
// 1. *Metrics (concrete type) for direct use
// 2. MetricsCollector interface for dependency injection
// 3. Lifecycle management for the system and application metrics servers
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "ticker-feed"}
//	    }),
//	    fx.Invoke(func(m metrics.MetricsCollector) {
//	        decodes := m.CreateCounter("element_decode_total", "Total element decodes", []string{"datatype", "status"})
//	        decodes.WithLabelValues("SEQUENCE", "success").Inc()
//	    }),
//	)
//
// The surrounding application must supply a metrics.Config and a
// *logger.LoggerClient to the container.
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics, // Provides *Metrics
		// Also provide the MetricsCollector interface
		fx.Annotate(
			func(m *Metrics) MetricsCollector { return m },
			fx.As(new(MetricsCollector)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// RegisterMetricsLifecycle runs both metrics HTTP servers for the lifetime
// of the application. OnStart launches each configured server in its own
// goroutine; OnStop shuts them down gracefully within the stop context.
//
// Parameters:
//   - lc: The Fx lifecycle controller
//   - m: The Metrics instance holding the HTTP servers
//   - log: The logger used for startup and shutdown entries
//
// A server whose endpoint was disabled in the configuration is simply
// skipped.
//
// FXModule invokes this automatically; application code does not call it.
func RegisterMetricsLifecycle(lc fx.Lifecycle, m *Metrics, log *logger.LoggerClient) {
	endpoints := []struct {
		name string
		srv  *http.Server
	}{
		{"system", m.SystemServer},
		{"application", m.ApplicationServer},
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			for _, ep := range endpoints {
				if ep.srv == nil {
					continue
				}
				ep := ep
				go func() {
					log.Info("starting metrics server", nil, map[string]interface{}{
						"endpoint": ep.name,
						"address":  ep.srv.Addr,
					})
					if err := ep.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
						log.Error("metrics server failed", err, map[string]interface{}{
							"endpoint": ep.name,
						})
					}
				}()
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			for _, ep := range endpoints {
				if ep.srv == nil {
					continue
				}
				log.Info("shutting down metrics server", nil, map[string]interface{}{
					"endpoint": ep.name,
				})
				if err := ep.srv.Shutdown(ctx); err != nil {
					log.Error("metrics server shutdown failed", err, map[string]interface{}{
						"endpoint": ep.name,
					})
				}
			}
			return nil
		},
	})
}
