package tracing

import (
	"context"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// NewProvider returns a tracer provider exporting to endpoint. The special
// endpoints "stdout" and "" select the pretty printing and the discarding
// exporter.
func NewProvider(ctx context.Context, endpoint, name string) (*trace.TracerProvider, func(), error) {
	exp, err := exporterFor(endpoint)(ctx, endpoint)
	if err != nil {
		return nil, nil, errors.Wrap(err, "creating trace exporter")
	}

	tp := trace.NewTracerProvider(
		trace.WithBatcher(exp),
		trace.WithResource(newResource(name)),
	)

	shutdown := func() {
		tp.Shutdown(context.Background())
	}

	return tp, shutdown, nil
}

func newResource(name string) *resource.Resource {
	return resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(name),
	)
}
