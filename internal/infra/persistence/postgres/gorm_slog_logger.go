package postgres

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"clinic/internal/errors"
)

const slowQueryThreshold = 200 * time.Millisecond

// gormSlogLogger adapts slog to gorm's logger interface.
type gormSlogLogger struct {
	logger *slog.Logger
	debug  bool
}

func newGormSlogLogger(logger *slog.Logger, debug bool) gormlogger.Interface {
	return &gormSlogLogger{logger: logger, debug: debug}
}

// LogMode implements gormlogger.Interface. Level is controlled by slog, so
// the receiver is returned unchanged.
func (l *gormSlogLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logger.InfoContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logger.WarnContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logger.ErrorContext(ctx, msg, slog.Any("args", args))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logger.ErrorContext(ctx, "query failed",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
			slog.Any("error", err),
		)
	case elapsed > slowQueryThreshold:
		l.logger.WarnContext(ctx, "slow query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	case l.debug:
		l.logger.DebugContext(ctx, "query",
			slog.String("sql", sql),
			slog.Int64("rows", rows),
			slog.Duration("elapsed", elapsed),
		)
	}
}
