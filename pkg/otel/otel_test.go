package otel_test

import (
	"context"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"bestbuy/pkg/otel"
)

func TestAddSpanWithoutTracer(t *testing.T) {
	ctx := context.Background()

	got, span := otel.AddSpan(ctx, "noop")
	if got != ctx {
		t.Fatal("context should be unchanged without an injected tracer")
	}
	span.End() // no-op span must be safe to end
}

func TestAddSpanWithTracer(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	ctx := otel.InjectTracing(context.Background(), tp.Tracer("test"))
	ctx, span := otel.AddSpan(ctx, "store.order")
	defer span.End()

	if !span.SpanContext().IsValid() {
		t.Fatal("expected a recording span")
	}
	if otel.GetTraceID(ctx) == "" {
		t.Fatal("expected a trace id in context")
	}
}

func TestGetTraceIDEmpty(t *testing.T) {
	if id := otel.GetTraceID(context.Background()); id != "" {
		t.Fatalf("expected empty trace id, got %q", id)
	}
}
