package metricsobs

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/mdbridge/observability"
)

// FXModule defines the Fx module for the metrics observer.
// It provides both the concrete *MetricsObserver and the
// observability.Observer interface, which the element and lifetime
// modules consume as an optional dependency.
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    metricsobs.FXModule,
//	    element.FXModule,
//	    lifetime.FXModule,
//	    // config providers...
//	)
//
// Dependencies required by this module:
// - metrics.MetricsCollector (provided by metrics.FXModule)
var FXModule = fx.Module("metricsobs",
	fx.Provide(
		NewMetricsObserver, // Provides *MetricsObserver
		// Also provide the Observer interface
		fx.Annotate(
			func(o *MetricsObserver) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
)
