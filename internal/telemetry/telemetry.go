// Package telemetry wires OpenTelemetry tracing around the ingestion
// pipeline stages and agent turns. Grounded on the pack's otlptracehttp/
// sdktrace wiring (itsneelabh-gomind/telemetry/otel.go), scaled down to
// tracing only since nothing in this repo exports metrics yet.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
)

// Provider owns the process-wide tracer provider and its OTLP/HTTP
// exporter. One is created at startup and shut down on process exit.
type Provider struct {
	tp     *sdktrace.TracerProvider
	tracer trace.Tracer
}

// NewProvider creates an OTLP/HTTP trace exporter against endpoint (a
// host:port, typically the collector's gRPC-free 4318 port) and installs
// it as the global tracer provider. An empty endpoint leaves the exporter
// on OTEL_EXPORTER_OTLP_ENDPOINT, or on the collector's usual local
// address (localhost:4318) when that is unset.
func NewProvider(ctx context.Context, serviceName, endpoint string) (*Provider, error) {
	opts := []otlptracehttp.Option{otlptracehttp.WithInsecure()}
	if endpoint != "" {
		opts = append(opts, otlptracehttp.WithEndpoint(endpoint))
	}

	exporter, err := otlptracehttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("telemetry: creating trace exporter: %w", err)
	}

	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return &Provider{tp: tp, tracer: tp.Tracer(serviceName)}, nil
}

// Shutdown flushes pending spans and stops the exporter. Call with a
// bounded context on process exit.
func (p *Provider) Shutdown(ctx context.Context) error {
	return p.tp.Shutdown(ctx)
}

// Tracer returns the process tracer, for components that want to start
// their own spans directly.
func (p *Provider) Tracer() trace.Tracer {
	return p.tracer
}

// StageTracer wraps span creation for one named pipeline ("ingest",
// "agent") with an optional human-readable console trace, matching the
// teacher's dual-mode verbose/regular texture (internal/tools/pipeline.go's
// BaggagePipeline.Execute banners).
type StageTracer struct {
	tracer   trace.Tracer
	pipeline string
	verbose  bool
}

// NewStageTracer builds a StageTracer. tracer may be nil (e.g. when no
// Provider was configured); spans become no-ops via otel's global noop
// tracer in that case.
func NewStageTracer(tracer trace.Tracer, pipeline string, verbose bool) *StageTracer {
	if tracer == nil {
		tracer = otel.Tracer(pipeline)
	}
	return &StageTracer{tracer: tracer, pipeline: pipeline, verbose: verbose}
}

// Stage runs fn inside a span named pipeline.stage, attaching attrs, and
// records fn's error on the span. When verbose is set it also prints a
// short banner to stdout before and after the stage runs.
func (s *StageTracer) Stage(ctx context.Context, stage string, attrs []attribute.KeyValue, fn func(context.Context) error) error {
	ctx, span := s.tracer.Start(ctx, s.pipeline+"."+stage, trace.WithAttributes(attrs...))
	defer span.End()

	if s.verbose {
		fmt.Printf("-> [%s] %s\n", s.pipeline, stage)
	}
	start := time.Now()
	err := fn(ctx)
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		if s.verbose {
			fmt.Printf("<- [%s] %s failed after %v: %v\n", s.pipeline, stage, elapsed, err)
		}
		return err
	}
	if s.verbose {
		fmt.Printf("<- [%s] %s completed in %v\n", s.pipeline, stage, elapsed)
	}
	return nil
}
