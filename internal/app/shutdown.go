package app

import (
	"context"
	"fmt"

	"github.com/riskibarqy/league-graphql/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// ShutdownHook releases one resource during process shutdown.
type ShutdownHook struct {
	Name string
	Fn   func(context.Context) error
}

// Shutdown runs every hook concurrently under ctx and waits for all of them.
// A failing hook does not cancel the others; the returned error joins every
// failure.
func Shutdown(ctx context.Context, logger *logging.Logger, hooks ...ShutdownHook) error {
	if logger == nil {
		logger = logging.Default()
	}

	p := pool.New().WithErrors().WithContext(ctx)
	for _, hook := range hooks {
		if hook.Fn == nil {
			continue
		}
		p.Go(func(ctx context.Context) error {
			if err := hook.Fn(ctx); err != nil {
				logger.ErrorContext(ctx, "shutdown hook failed", "hook", hook.Name, "error", err)
				return fmt.Errorf("%s: %w", hook.Name, err)
			}
			logger.InfoContext(ctx, "shutdown hook completed", "hook", hook.Name)
			return nil
		})
	}

	return p.Wait()
}
