package lifetime

import (
	"context"

	"go.uber.org/fx"

	"github.com/aalemi-dev/mdbridge/logger"
	"github.com/aalemi-dev/mdbridge/observability"
)

// FXModule defines the Fx module for the managed-reference registry.
// This module integrates the registry into an Fx-based application by
// providing the registry factory with optional observability wiring and a
// shutdown hook that reports references the engine never released.
//
// The module provides:
// 1. *Registry (concrete type) for direct use
// 2. ReferenceManager interface for dependency injection
//
// Usage:
//
//	app := fx.New(
//	    lifetime.FXModule,
//	    fx.Provide(func() lifetime.Config {
//	        return lifetime.Config{ServiceName: "ticker-feed"}
//	    }),
//	)
//
// Dependencies required by this module:
// - A lifetime.Config instance must be available in the dependency injection container
// - A *logger.LoggerClient and an observability.Observer are optional
var FXModule = fx.Module("lifetime",
	fx.Provide(
		NewRegistryWithDI, // Provides *Registry
		// Also provide the ReferenceManager interface
		fx.Annotate(
			func(r *Registry) ReferenceManager { return r },
			fx.As(new(ReferenceManager)),
		),
	),
	fx.Invoke(RegisterRegistryLifecycle),
)

// RegistryParams collects the registry's injected dependencies. Logger and
// Observer are optional so applications can run the registry bare.
type RegistryParams struct {
	fx.In

	Config   Config
	Logger   *logger.LoggerClient   `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewRegistryWithDI constructs the registry from injected dependencies.
func NewRegistryWithDI(params RegistryParams) *Registry {
	r := NewRegistry(params.Config)
	if params.Logger != nil {
		r.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		r.WithObserver(params.Observer)
	}
	return r
}

// RegisterRegistryLifecycle logs leaked references at shutdown. References
// the engine still holds when the application stops usually mean a session
// was torn down without retiring its correlation identifiers.
//
// Note: This function is automatically invoked by the FXModule and does not
// need to be called directly in application code.
func RegisterRegistryLifecycle(lc fx.Lifecycle, r *Registry, log *logger.LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if live := r.LiveReferences(); live > 0 && log != nil {
				log.Warn("engine-held references outstanding at shutdown", nil, map[string]interface{}{
					"live_references": live,
				})
			}
			return nil
		},
	})
}
