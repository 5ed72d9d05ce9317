package httpapi

import (
	"context"
	"strings"

	"github.com/graphql-go/graphql"
	"github.com/riskibarqy/league-graphql/internal/interfaces/graphqlapi"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("league-graphql/internal/interfaces/httpapi")

// Only handlers and body decoding get their own spans; middleware and
// response helpers run inside the otelhttp server span.
var spannedPrefixes = []string{
	"httpapi.Handler.",
	"httpapi.readGraphQLBody",
}

const (
	attrOperationName = attribute.Key("graphql.operation.name")
	attrOperationType = attribute.Key("graphql.operation.type")
	attrErrorCount    = attribute.Key("graphql.error_count")
)

func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	// No parent means a filtered route such as /healthz.
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, trace.SpanFromContext(context.Background())
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	for _, prefix := range spannedPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// annotateOperation tags the active span with the operation being executed.
// The document is only parsed when the span is recording.
func annotateOperation(ctx context.Context, req graphqlapi.Request) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := make([]attribute.KeyValue, 0, 2)
	if opType := operationType(req.Query, req.OperationName); opType != "" {
		attrs = append(attrs, attrOperationType.String(opType))
	}
	if req.OperationName != "" {
		attrs = append(attrs, attrOperationName.String(req.OperationName))
	}
	span.SetAttributes(attrs...)
}

func recordResultErrors(ctx context.Context, result *graphql.Result) {
	if !result.HasErrors() {
		return
	}
	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attrErrorCount.Int(len(result.Errors)))
	span.SetStatus(codes.Error, result.Errors[0].Message)
}
