package graphqlapi

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var graphqlTracer = otel.Tracer("league-graphql/internal/interfaces/graphqlapi")

func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}
	return graphqlTracer.Start(ctx, name)
}
