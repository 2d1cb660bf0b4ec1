package element

import (
	"go.uber.org/fx"

	"github.com/aalemi-dev/mdbridge/logger"
	"github.com/aalemi-dev/mdbridge/observability"
)

// FXModule defines the Fx module for the element decoder.
// This module integrates the decoder into an Fx-based application by
// providing the decoder factory with optional observability wiring.
//
// The module provides:
// 1. *Decoder (concrete type) for direct use
// 2. ElementDecoder interface for dependency injection
//
// Usage:
//
//	app := fx.New(
//	    element.FXModule,
//	    fx.Provide(func() element.Config {
//	        return element.Config{ServiceName: "ticker-feed"}
//	    }),
//	    fx.Invoke(func(dec element.ElementDecoder) {
//	        // decode engine messages
//	    }),
//	)
//
// Dependencies required by this module:
// - An element.Config instance must be available in the dependency injection container
// - A *logger.LoggerClient and an observability.Observer are optional
var FXModule = fx.Module("element",
	fx.Provide(
		NewDecoderWithDI, // Provides *Decoder
		// Also provide the ElementDecoder interface
		fx.Annotate(
			func(d *Decoder) ElementDecoder { return d },
			fx.As(new(ElementDecoder)),
		),
	),
)

// DecoderParams collects the decoder's injected dependencies. Logger and
// Observer are optional so applications can run the decoder bare.
type DecoderParams struct {
	fx.In

	Config   Config
	Logger   *logger.LoggerClient   `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewDecoderWithDI constructs the decoder from injected dependencies.
func NewDecoderWithDI(params DecoderParams) *Decoder {
	d := NewDecoder(params.Config)
	if params.Logger != nil {
		d.WithLogger(params.Logger)
	}
	if params.Observer != nil {
		d.WithObserver(params.Observer)
	}
	return d
}
