package telemetry

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// TracerName is the instrumentation scope of search spans.
const TracerName = "github.com/Psrit/TilegameAI/telemetry"

// Tracer starts and finishes search spans.
type Tracer struct {
	tracer trace.Tracer
}

// NewTracer returns a Tracer backed by tp, or by the global provider when
// tp is nil.
func NewTracer(tp trace.TracerProvider) *Tracer {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return &Tracer{tracer: tp.Tracer(TracerName)}
}

// NewWriterTracerProvider returns a provider that exports every ended span
// to w as indented JSON, synchronously. Callers own Shutdown.
func NewWriterTracerProvider(w io.Writer) (*sdktrace.TracerProvider, error) {
	exporter, err := stdouttrace.New(stdouttrace.WithWriter(w), stdouttrace.WithPrettyPrint())
	if err != nil {
		return nil, fmt.Errorf("telemetry: create span exporter: %w", err)
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithSyncer(exporter),
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
	), nil
}

// Start opens a search span.
func (t *Tracer) Start(ctx context.Context, domain string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append([]attribute.KeyValue{attribute.String("search.domain", domain)}, attrs...)
	return t.tracer.Start(ctx, "astar.Search", trace.WithAttributes(attrs...))
}

// Finish records o on span and ends it.
func (t *Tracer) Finish(span trace.Span, o Outcome) {
	span.SetAttributes(
		attribute.String("search.result", o.Result()),
		attribute.Bool("search.found", o.Found),
		attribute.Int("search.expanded", o.Expanded),
		attribute.Int("search.reopened", o.Reopened),
	)
	if o.Found {
		span.AddEvent("goal_reached", trace.WithAttributes(
			attribute.Int("search.path_length", o.PathLength),
			attribute.Float64("search.cost", o.Cost),
		))
	}
	if o.Err != nil {
		span.RecordError(o.Err)
		span.SetStatus(codes.Error, o.Err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
