package logger

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// gormZap sends gorm's SQL logging to zap.
type gormZap struct {
	log           *zap.Logger
	level         gormLogger.LogLevel
	slowThreshold time.Duration
}

// NewGorm returns a gorm logger writing through log at the given level.
func NewGorm(log *zap.Logger, level gormLogger.LogLevel) gormLogger.Interface {
	return &gormZap{
		log:           log.Named("sql").WithOptions(zap.AddCallerSkip(3)),
		level:         level,
		slowThreshold: defaultSlowThreshold,
	}
}

func (l *gormZap) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

func (l *gormZap) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormLogger.Info {
		l.log.Sugar().Infof(msg, data...)
	}
}

func (l *gormZap) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormLogger.Warn {
		l.log.Sugar().Warnf(msg, data...)
	}
}

func (l *gormZap) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormLogger.Error {
		l.log.Sugar().Errorf(msg, data...)
	}
}

func (l *gormZap) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormLogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormLogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.log.Error("query failed",
			zap.Error(err),
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed))
	case elapsed > l.slowThreshold && l.level >= gormLogger.Warn:
		sql, rows := fc()
		l.log.Warn("slow query",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed))
	case l.level >= gormLogger.Info:
		sql, rows := fc()
		l.log.Debug("query",
			zap.String("sql", sql),
			zap.Int64("rows", rows),
			zap.Duration("elapsed", elapsed))
	}
}
