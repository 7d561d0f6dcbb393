package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	switch strings.ToLower(os.Getenv("MINTMATE_ENV")) {
	case "dev":
		logger, err = zap.NewDevelopment(opts...)
	case "test":
		return zap.NewNop().Sugar()
	default:
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "MINTMATE_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("MINTMATE_ENV"),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

type contextKey string

const ContextKey contextKey = "LOGGER"

// WithLogger returns a copy of ctx carrying log.
func WithLogger(ctx context.Context, log *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, log)
}

// FromContext falls back to the global logger when ctx has none, so
// background jobs and tests never get a nil logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if ctx != nil {
		if log, ok := ctx.Value(ContextKey).(*zap.SugaredLogger); ok && log != nil {
			return log
		}
	}
	return zap.S()
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
