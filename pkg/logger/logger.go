// Package logger is DineHub's structured logger, built on log/slog.
//
// WithCtx returns the per-request logger installed by middleware.Logger, so
// lines written from handlers and services carry the request_id:
//
//	logger.WithCtx(r.Context()).Info("restaurant created", "id", id)
package logger

import (
	"context"
	"log/slog"
	"os"

	"github.com/shashiranjanraj/dinehub/config"
)

var L *slog.Logger

// activeMongo is the optional database sink installed by EnableMongo.
var activeMongo *MongoHandler

func init() {
	L = slog.New(consoleHandler())
	slog.SetDefault(L)
}

func consoleHandler() slog.Handler {
	switch config.AppEnv() {
	case "production", "prod":
		return slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	case "test":
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn})
	default:
		return slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// EnableMongo tees every log record into LOG_MONGO_URI. It is a no-op when
// the URI is unset.
func EnableMongo() error {
	uri := config.LogMongoURI()
	if uri == "" {
		return nil
	}
	h, err := NewMongoHandler(uri, config.LogMongoDB(), config.LogMongoCollection())
	if err != nil {
		return err
	}
	activeMongo = h
	L = slog.New(NewMultiHandler(consoleHandler(), h))
	slog.SetDefault(L)
	return nil
}

// Close flushes the Mongo sink, if one is attached.
func Close() {
	if activeMongo != nil {
		activeMongo.Close()
		activeMongo = nil
	}
}

type ctxKey struct{}

// WithCtx returns the logger stored by InjectLogger, or the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped logger in ctx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
