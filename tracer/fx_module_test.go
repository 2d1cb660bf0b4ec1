package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

// fxTestConfig is the export-free configuration the fx tests run with.
func fxTestConfig() Config {
	return Config{ServiceName: "ticker-feed", AppEnv: "test", EnableExport: false}
}

func TestFXModuleProvidesConcreteAndInterface(t *testing.T) {
	t.Parallel()
	var (
		client *TracerClient
		tr     Tracer
	)

	app := fxtest.New(t,
		FXModule,
		fx.Provide(fxTestConfig),
		fx.Populate(&client),
		fx.Populate(&tr),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, client)
	assert.NotNil(t, tr)
}

func TestRegisterTracerLifecycle(t *testing.T) {
	t.Parallel()

	runLifecycle := func(t *testing.T, client *TracerClient) {
		app := fxtest.New(t,
			fx.Provide(func() *TracerClient { return client }),
			fx.Invoke(RegisterTracerLifecycle),
		)
		app.RequireStart()
		assert.NotPanics(t, func() { app.RequireStop() })
	}

	t.Run("shutdown flushes the provider", func(t *testing.T) {
		t.Parallel()
		client, err := NewClient(fxTestConfig())
		require.NoError(t, err)
		runLifecycle(t, client)
	})

	t.Run("nil provider is skipped", func(t *testing.T) {
		t.Parallel()
		runLifecycle(t, &TracerClient{tracer: nil})
	})
}
