package logger_test

import (
	"context"
	"log/slog"
	"ontrack/pkg/logger"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		level       string
		wantErr     bool
		wantDebug   bool
	}{
		{
			name:        "development defaults to debug",
			environment: logger.DevelopmentEnvironment,
			wantDebug:   true,
		},
		{
			name:        "production defaults to info",
			environment: logger.ProductionEnvironment,
		},
		{
			name:        "explicit level overrides environment",
			environment: logger.DevelopmentEnvironment,
			level:       "warn",
		},
		{
			name:        "invalid level",
			environment: logger.ProductionEnvironment,
			level:       "loud",
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logger.Setup(tt.environment, tt.level)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)

			ctx := context.Background()
			require.NotNil(t, logger.Get(ctx))
			require.Equal(t, tt.wantDebug, logger.IsDebug(ctx))
		})
	}
}

func TestGet(t *testing.T) {
	require.NoError(t, logger.Setup(logger.DevelopmentEnvironment, ""))

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "Should return default logger when context has no logger")

	customLogger, _ := zap.NewDevelopment()
	require.Equal(t, customLogger, logger.Get(logger.WithLogger(ctx, customLogger)))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"))
	logger.Info(ctx, "hello")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "hello", entry.Message)
	require.Equal(t, "abc", entry.ContextMap()["request_id"])
}

func TestLevels(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	require.Equal(t, 3, logs.Len())
	require.Equal(t, 0, logs.FilterMessage("dropped").Len())
	require.False(t, logger.IsDebug(ctx))
}

func TestSlog(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Slog(ctx).Info("from slog", slog.String("lib", "goose"))

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "goose", logs.All()[0].ContextMap()["lib"])
}
