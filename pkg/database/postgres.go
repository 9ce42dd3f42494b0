package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/naseer617/ta-member-service/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// RetryPolicy controls the startup readiness gate: a fixed number of
// attempts with a fixed sleep between them.
type RetryPolicy struct {
	MaxAttempts int
	Interval    time.Duration
}

// Open opens a Gorm PostgreSQL connection, retrying per the policy.
// Each attempt runs connect, ping, and setup (schema creation), so a
// database that accepts connections but is not yet ready to run DDL
// still counts as a failed attempt. The service must not serve traffic
// if every attempt fails. logLevel controls gorm's query logging; the
// zero value means silent.
func Open(ctx context.Context, dsn string, p RetryPolicy, logLevel gormlogger.LogLevel, setup func(*gorm.DB) error) (*gorm.DB, error) {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}
	if logLevel == 0 {
		logLevel = gormlogger.Silent
	}

	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		db, err := tryOpen(ctx, dsn, logLevel, setup)
		if err == nil {
			return db, nil
		}
		lastErr = err
		logger.L().Warn("database not ready",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", p.MaxAttempts),
			zap.Error(err),
		)
		if attempt == p.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("open postgres canceled: %w", ctx.Err())
		case <-time.After(p.Interval):
		}
	}
	return nil, fmt.Errorf("open postgres failed after %d attempts: %w", p.MaxAttempts, lastErr)
}

func tryOpen(ctx context.Context, dsn string, logLevel gormlogger.LogLevel, setup func(*gorm.DB) error) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: zapGormLogger{zap: logger.L(), level: logLevel},
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("db db() error: %w", err)
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctxPing); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if setup != nil {
		if err := setup(db); err != nil {
			_ = sqlDB.Close()
			return nil, fmt.Errorf("database setup failed: %w", err)
		}
	}
	return db, nil
}

type zapGormLogger struct {
	zap   *zap.Logger
	level gormlogger.LogLevel
}

func (l zapGormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	l.level = level
	return l
}

func (l zapGormLogger) Info(ctx context.Context, s string, args ...interface{}) {
	if l.level <= gormlogger.Info {
		l.zap.Sugar().Infof(s, args...)
	}
}

func (l zapGormLogger) Warn(ctx context.Context, s string, args ...interface{}) {
	if l.level <= gormlogger.Warn {
		l.zap.Sugar().Warnf(s, args...)
	}
}

func (l zapGormLogger) Error(ctx context.Context, s string, args ...interface{}) {
	if l.level <= gormlogger.Error {
		l.zap.Sugar().Errorf(s, args...)
	}
}

func (l zapGormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == gormlogger.Silent {
		return
	}
	sql, rows := fc()
	dur := time.Since(begin)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		l.zap.Error("gorm query error", zap.Duration("duration", dur), zap.Int64("rows", rows), zap.String("sql", sql), zap.Error(err))
		return
	}
	l.zap.Debug("gorm query", zap.Duration("duration", dur), zap.Int64("rows", rows), zap.String("sql", sql))
}
