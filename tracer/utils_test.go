package tracer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func newTestClient(t *testing.T) *TracerClient {
	t.Helper()
	client, err := NewClient(Config{ServiceName: "ticker-feed", AppEnv: "test", EnableExport: false})
	require.NoError(t, err)
	return client
}

func spanTraceID(ctx context.Context) trace.TraceID {
	return trace.SpanFromContext(ctx).SpanContext().TraceID()
}

func TestStartSpan(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	t.Run("returns a recording span", func(t *testing.T) {
		t.Parallel()
		ctx, span := client.StartSpan(context.Background(), "element.decode")
		defer span.End()

		require.NotNil(t, span)
		assert.True(t, trace.SpanFromContext(ctx).IsRecording())
	})

	t.Run("child shares the parent trace", func(t *testing.T) {
		t.Parallel()
		parentCtx, parentSpan := client.StartSpan(context.Background(), "session.handleMessage")
		defer parentSpan.End()

		childCtx, childSpan := client.StartSpan(parentCtx, "element.decode")
		defer childSpan.End()

		assert.Equal(t, spanTraceID(parentCtx), spanTraceID(childCtx))
	})

	t.Run("End is safe to call", func(t *testing.T) {
		t.Parallel()
		_, span := client.StartSpan(context.Background(), "element.decode")
		assert.NotPanics(t, span.End)
	})
}

func TestStartSpanAt(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	t.Run("accepts explicit timestamps", func(t *testing.T) {
		t.Parallel()
		start := time.Now().Add(-50 * time.Millisecond)
		ctx, span := client.StartSpanAt(context.Background(), "element.decode", start)

		assert.True(t, trace.SpanFromContext(ctx).IsRecording())
		assert.NotPanics(t, func() { span.EndAt(start.Add(50 * time.Millisecond)) })
	})

	t.Run("child shares the parent trace", func(t *testing.T) {
		t.Parallel()
		parentCtx, parentSpan := client.StartSpan(context.Background(), "session.handleMessage")
		defer parentSpan.End()

		start := time.Now()
		childCtx, childSpan := client.StartSpanAt(parentCtx, "element.decode", start)
		defer childSpan.EndAt(start.Add(time.Millisecond))

		assert.Equal(t, spanTraceID(parentCtx), spanTraceID(childCtx))
	})
}

func TestSpanAnnotations(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	t.Run("attributes of every supported type", func(t *testing.T) {
		t.Parallel()
		_, span := client.StartSpan(context.Background(), "element.decode")
		defer span.End()

		assert.NotPanics(t, func() {
			span.SetAttributes(map[string]interface{}{
				"datatype": "SEQUENCE",
				"items":    42,
				"nodes":    int64(100),
				"px":       3.14,
				"partial":  false,
				"fields":   []string{"BID", "ASK"}, // fallback to fmt.Sprint
			})
		})
	})

	t.Run("empty attribute map", func(t *testing.T) {
		t.Parallel()
		_, span := client.StartSpan(context.Background(), "element.decode")
		defer span.End()

		assert.NotPanics(t, func() { span.SetAttributes(map[string]interface{}{}) })
	})

	t.Run("record error", func(t *testing.T) {
		t.Parallel()
		_, span := client.StartSpan(context.Background(), "element.decode")
		defer span.End()

		assert.NotPanics(t, func() { span.RecordError(errors.New("engine: session terminated")) })
	})
}

func TestCarrierPropagation(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	t.Run("no active span yields an empty carrier", func(t *testing.T) {
		t.Parallel()
		carrier := client.GetCarrier(context.Background())
		assert.NotNil(t, carrier)
		assert.NotContains(t, carrier, "traceparent")
	})

	t.Run("active span populates traceparent", func(t *testing.T) {
		t.Parallel()
		ctx, span := client.StartSpan(context.Background(), "refdata.request")
		defer span.End()

		carrier := client.GetCarrier(ctx)
		assert.Contains(t, carrier, "traceparent")
	})

	t.Run("empty carrier leaves the context usable", func(t *testing.T) {
		t.Parallel()
		newCtx := client.SetCarrierOnContext(context.Background(), map[string]string{})
		assert.NotNil(t, newCtx)
	})

	t.Run("round trip preserves the trace", func(t *testing.T) {
		t.Parallel()
		ctx, span := client.StartSpan(context.Background(), "refdata.request")
		defer span.End()

		carrier := client.GetCarrier(ctx)
		restoredCtx := client.SetCarrierOnContext(context.Background(), carrier)

		restored := trace.SpanFromContext(restoredCtx).SpanContext()
		assert.Equal(t, spanTraceID(ctx), restored.TraceID())
		assert.True(t, restored.IsValid())
	})
}
