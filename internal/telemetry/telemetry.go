// Package telemetry wires OpenTelemetry tracing. Without an OTLP endpoint
// the global no-op provider stays in place.
package telemetry

import (
	"context"
	"fmt"
	"strings"

	"github.com/osa911/astrobooking/internal/version"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"google.golang.org/grpc"
)

// ServiceName identifies this service in traces
const ServiceName = "astrobooking"

// ShutdownFunc flushes and stops the tracer provider
type ShutdownFunc func(context.Context) error

// Setup installs a batching OTLP/gRPC tracer provider when endpoint is set.
// endpoint is either host:port or a URL; an http:// URL disables TLS.
func Setup(ctx context.Context, endpoint string) (ShutdownFunc, error) {
	if endpoint == "" {
		return func(context.Context) error { return nil }, nil
	}

	exporter, err := otlptracegrpc.New(ctx, exporterOptions(endpoint)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP exporter: %w", err)
	}

	res := resource.NewSchemaless(
		attribute.String("service.name", ServiceName),
		attribute.String("service.version", version.Version),
	)

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)
	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return provider.Shutdown, nil
}

func exporterOptions(endpoint string) []otlptracegrpc.Option {
	opts := []otlptracegrpc.Option{
		otlptracegrpc.WithDialOption(grpc.WithUserAgent(ServiceName + "/" + version.Version)),
	}
	if strings.Contains(endpoint, "://") {
		return append(opts, otlptracegrpc.WithEndpointURL(endpoint))
	}
	return append(opts, otlptracegrpc.WithEndpoint(endpoint), otlptracegrpc.WithInsecure())
}
