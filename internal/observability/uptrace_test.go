package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/league-graphql/internal/config"
	"github.com/riskibarqy/league-graphql/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "league-graphql-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSN(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: true,
		ServiceName:    "league-graphql-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "disabled", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev/1"}, want: "UPTRACE_ENABLED=false"},
		{name: "blank dsn", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "  "}, want: "UPTRACE_DSN empty"},
		{name: "enabled", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev/1"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uptraceDisabledReason(tt.cfg); got != tt.want {
				t.Fatalf("uptraceDisabledReason()=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestUptraceOptions(t *testing.T) {
	opts := uptraceOptions(config.Config{
		UptraceEnabled:     true,
		UptraceDSN:         "https://token@api.uptrace.dev/1",
		ServiceName:        "league-graphql-api",
		ServiceVersion:     "dev",
		AppEnv:             config.EnvDev,
		HTTPAddr:           ":5000",
		UptraceLogsEnabled: true,
	})
	if len(opts) != 6 {
		t.Fatalf("expected 6 uptrace options, got %d", len(opts))
	}
	for i, opt := range opts {
		if opt == nil {
			t.Fatalf("option %d is nil", i)
		}
	}
}
