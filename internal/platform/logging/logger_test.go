package logging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_KeyValueFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	logger.With("component", "test").Info("player added", "player_id", int64(9), "error", errors.New("boom"), "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "test", fields["component"])
	assert.Equal(t, int64(9), fields["player_id"])
	assert.Equal(t, "boom", fields["error"])
	assert.Contains(t, fields, "dangling")
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	}))

	logger.InfoContext(ctx, "http request")
	logger.DebugContext(ctx, "filtered out")

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "0102030405060708090a0b0c0d0e0f10", fields["trace_id"])
	assert.Equal(t, "0102030405060708", fields["span_id"])
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	logger.Info("no panic")
	assert.NotNil(t, logger.With("k", "v"))
	assert.NoError(t, logger.Sync())
}

func TestLogger_MirrorReceivesEnabledEntries(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, _ ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("below level")
	logger.Warn("slow resolver")

	assert.Equal(t, []string{"warn:slow resolver"}, got)
}

func TestLogger_MirrorReceivesBoundArgs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := FromZap(zap.New(core))

	var got []any
	SetMirror(func(_ context.Context, _ Level, _ string, args ...any) {
		got = args
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger := base.With("service", "league-graphql-api", "dangling").Named("api").With("env", "dev")
	logger.Info("player added", "player_id", int64(9))

	assert.Equal(t, []any{
		"service", "league-graphql-api",
		"dangling", nil,
		"env", "dev",
		"player_id", int64(9),
	}, got)

	require.Len(t, logs.All(), 1)
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "league-graphql-api", fields["service"])
	assert.Equal(t, int64(9), fields["player_id"])

	got = nil
	base.Info("unbound", "k", "v")
	assert.Equal(t, []any{"k", "v"}, got)
}
