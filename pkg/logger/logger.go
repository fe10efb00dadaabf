// Package logger provides the application's structured logger built on
// log/slog.
//
// Handlers log through the request-scoped logger so every line carries the
// request id:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("item added to cart", "user_id", userID)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/dinein/config"
)

var L *slog.Logger

func init() {
	L = slog.New(newConsoleHandler(config.AppEnv()))
	slog.SetDefault(L)
}

func newConsoleHandler(env string) slog.Handler {
	switch env {
	case "production", "prod":
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// Tee replaces the base logger with one that also writes to h. The returned
// func restores the console-only logger.
func Tee(h slog.Handler) (restore func()) {
	prev := L
	L = slog.New(NewMultiHandler(prev.Handler(), h))
	slog.SetDefault(L)
	return func() {
		L = prev
		slog.SetDefault(prev)
	}
}

type ctxKey struct{}

// WithCtx returns the request logger stored by the Logger middleware, or the
// base logger when there is none.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores log in ctx for WithCtx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }
func Info(msg string, args ...any)  { L.Info(msg, args...) }
func Warn(msg string, args ...any)  { L.Warn(msg, args...) }
func Error(msg string, args ...any) { L.Error(msg, args...) }

// LevelFor picks the log level for an HTTP response status.
func LevelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
