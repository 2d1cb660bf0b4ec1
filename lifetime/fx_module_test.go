package lifetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/aalemi-dev/mdbridge/logger"
)

func fxTestProviders() fx.Option {
	return fx.Provide(
		func() *logger.LoggerClient {
			return logger.NewLoggerClient(logger.Config{Level: logger.Error})
		},
		func() Config {
			return Config{ServiceName: "fx-test"}
		},
	)
}

func TestFXModule_ProvidesRegistry(t *testing.T) {
	t.Parallel()
	var reg *Registry

	app := fxtest.New(t,
		FXModule,
		fxTestProviders(),
		fx.Populate(&reg),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, reg)
	assert.NotZero(t, reg.Tag())
}

func TestFXModule_ProvidesReferenceManagerInterface(t *testing.T) {
	t.Parallel()
	var rm ReferenceManager

	app := fxtest.New(t,
		FXModule,
		fxTestProviders(),
		fx.Populate(&rm),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.NotNil(t, rm)
}

func TestRegisterRegistryLifecycle_Shutdown(t *testing.T) {
	t.Parallel()
	app := fxtest.New(t,
		FXModule,
		fxTestProviders(),
		fx.Invoke(func(r *Registry) {
			// Leave a reference outstanding; shutdown logs it and succeeds.
			r.Pin("leaked", nil)
		}),
	)

	app.RequireStart()
	assert.NotPanics(t, func() { app.RequireStop() })
}
