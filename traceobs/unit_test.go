package traceobs_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalemi-dev/mdbridge/observability"
	"github.com/aalemi-dev/mdbridge/traceobs"
	"github.com/aalemi-dev/mdbridge/tracer"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type recordedSpan struct {
	name  string
	start time.Time
	end   time.Time
	attrs map[string]interface{}
	err   error
	ended bool
}

func (s *recordedSpan) End()                { s.ended = true }
func (s *recordedSpan) EndAt(at time.Time)  { s.ended = true; s.end = at }
func (s *recordedSpan) RecordError(e error) { s.err = e }

func (s *recordedSpan) SetAttributes(attrs map[string]interface{}) {
	s.attrs = attrs
}

type fakeTracer struct {
	spans []*recordedSpan
}

func (f *fakeTracer) StartSpan(ctx context.Context, name string) (context.Context, tracer.Span) {
	return f.StartSpanAt(ctx, name, time.Now())
}

func (f *fakeTracer) StartSpanAt(ctx context.Context, name string, at time.Time) (context.Context, tracer.Span) {
	span := &recordedSpan{name: name, start: at}
	f.spans = append(f.spans, span)
	return ctx, span
}

func (f *fakeTracer) GetCarrier(ctx context.Context) map[string]string {
	return nil
}

func (f *fakeTracer) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	return ctx
}

// ── tests ─────────────────────────────────────────────────────────────────────

func TestObserveOperation_RecordsSpan(t *testing.T) {
	t.Parallel()
	ft := &fakeTracer{}
	obs := traceobs.NewTraceObserver(ft)

	obs.ObserveOperation(observability.OperationContext{
		Context:   context.Background(),
		Component: "element",
		Operation: "decode",
		Datatype:  "SEQUENCE",
		Duration:  2 * time.Millisecond,
		Items:     9,
		Metadata:  map[string]interface{}{"handle": "42"},
	})

	require.Len(t, ft.spans, 1)
	span := ft.spans[0]

	assert.Equal(t, "element.decode", span.name)
	assert.True(t, span.ended)
	assert.Equal(t, 2*time.Millisecond, span.end.Sub(span.start))

	assert.Equal(t, "element", span.attrs["component"])
	assert.Equal(t, "decode", span.attrs["operation"])
	assert.Equal(t, "SEQUENCE", span.attrs["datatype"])
	assert.Equal(t, int64(9), span.attrs["items"])
	assert.Equal(t, "42", span.attrs["handle"])
	assert.NoError(t, span.err)
}

func TestObserveOperation_RecordsError(t *testing.T) {
	t.Parallel()
	ft := &fakeTracer{}
	obs := traceobs.NewTraceObserver(ft)

	decodeErr := errors.New("unsupported datatype")
	obs.ObserveOperation(observability.OperationContext{
		Component: "element",
		Operation: "decode",
		Duration:  time.Millisecond,
		Error:     decodeErr,
	})

	require.Len(t, ft.spans, 1)
	assert.ErrorIs(t, ft.spans[0].err, decodeErr)
}

func TestObserveOperation_NilContext(t *testing.T) {
	t.Parallel()
	ft := &fakeTracer{}
	obs := traceobs.NewTraceObserver(ft)

	assert.NotPanics(t, func() {
		obs.ObserveOperation(observability.OperationContext{
			Component: "lifetime",
			Operation: "destroy",
		})
	})
	require.Len(t, ft.spans, 1)
	assert.Equal(t, "lifetime.destroy", ft.spans[0].name)
}

func TestObserveOperation_OmitsAbsentAttributes(t *testing.T) {
	t.Parallel()
	ft := &fakeTracer{}
	obs := traceobs.NewTraceObserver(ft)

	obs.ObserveOperation(observability.OperationContext{
		Component: "lifetime",
		Operation: "pin",
		Duration:  time.Microsecond,
	})

	require.Len(t, ft.spans, 1)
	assert.NotContains(t, ft.spans[0].attrs, "datatype")
	assert.NotContains(t, ft.spans[0].attrs, "items")
}

func TestTraceObserver_ImplementsObserver(t *testing.T) {
	t.Parallel()
	var _ observability.Observer = traceobs.NewTraceObserver(&fakeTracer{})
}
