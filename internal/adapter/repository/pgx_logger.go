package repository

import (
	"context"

	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// pgxLogger передаёт трассировку pgx в zap
type pgxLogger struct {
	logger *zap.Logger
}

func newPgxLogger(logger *zap.Logger) *pgxLogger {
	return &pgxLogger{logger: logger.With(zap.String("component", "pgx"))}
}

// Log реализует tracelog.Logger
func (l *pgxLogger) Log(_ context.Context, level tracelog.LogLevel, msg string, data map[string]any) {
	var (
		lvl    zapcore.Level
		fields = make([]zap.Field, 0, len(data)+1)
	)
	switch level {
	case tracelog.LogLevelNone:
		return
	case tracelog.LogLevelTrace, tracelog.LogLevelDebug:
		lvl = zapcore.DebugLevel
	case tracelog.LogLevelInfo:
		lvl = zapcore.InfoLevel
	case tracelog.LogLevelWarn:
		lvl = zapcore.WarnLevel
	case tracelog.LogLevelError:
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
		fields = append(fields, zap.String("pgx_log_level", level.String()))
	}

	ce := l.logger.Check(lvl, msg)
	if ce == nil {
		return
	}

	for k, v := range data {
		fields = append(fields, zap.Any(k, v))
	}
	ce.Write(fields...)
}
