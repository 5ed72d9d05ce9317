package app

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShutdown_RunsEveryHook(t *testing.T) {
	var calls atomic.Int32
	hook := func(context.Context) error {
		calls.Add(1)
		return nil
	}

	err := Shutdown(context.Background(), nil,
		ShutdownHook{Name: "http", Fn: hook},
		ShutdownHook{Name: "pprof", Fn: hook},
		ShutdownHook{Name: "noop"},
		ShutdownHook{Name: "uptrace", Fn: hook},
	)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestShutdown_JoinsFailures(t *testing.T) {
	errFlush := errors.New("flush failed")
	var ran atomic.Bool

	err := Shutdown(context.Background(), nil,
		ShutdownHook{Name: "uptrace", Fn: func(context.Context) error { return errFlush }},
		ShutdownHook{Name: "http", Fn: func(context.Context) error {
			ran.Store(true)
			return nil
		}},
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errFlush)
	assert.Contains(t, err.Error(), "uptrace")
	assert.True(t, ran.Load())
}
