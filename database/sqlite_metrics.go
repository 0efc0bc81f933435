package database

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteStats counts contention errors seen by the gorm logger.
type SQLiteStats struct {
	busy   atomic.Uint64
	locked atomic.Uint64
}

// Stats is the process-wide SQLite error counter.
var Stats = &SQLiteStats{}

func (s *SQLiteStats) record(err error) {
	busy, locked := classifySQLiteError(err)
	if busy {
		s.busy.Add(1)
	}
	if locked {
		s.locked.Add(1)
	}
}

// BusyErrors returns the number of SQLITE_BUSY failures.
func (s *SQLiteStats) BusyErrors() uint64 {
	return s.busy.Load()
}

// LockedErrors returns the number of SQLITE_LOCKED failures.
func (s *SQLiteStats) LockedErrors() uint64 {
	return s.locked.Load()
}

func classifySQLiteError(err error) (busy bool, locked bool) {
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return false, false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false, false
	}

	msg := strings.ToLower(err.Error())
	busy = strings.Contains(msg, "sqlite_busy") || strings.Contains(msg, "database is locked") || strings.Contains(msg, "busy timeout")
	locked = strings.Contains(msg, "sqlite_locked") || strings.Contains(msg, "database table is locked")
	return busy, locked
}

// countingLogger forwards to a gorm logger and feeds Trace errors into SQLiteStats.
type countingLogger struct {
	inner logger.Interface
	stats *SQLiteStats
}

func (l countingLogger) LogMode(level logger.LogLevel) logger.Interface {
	return countingLogger{inner: l.inner.LogMode(level), stats: l.stats}
}

func (l countingLogger) Info(ctx context.Context, s string, args ...interface{}) {
	l.inner.Info(ctx, s, args...)
}

func (l countingLogger) Warn(ctx context.Context, s string, args ...interface{}) {
	l.inner.Warn(ctx, s, args...)
}

func (l countingLogger) Error(ctx context.Context, s string, args ...interface{}) {
	l.inner.Error(ctx, s, args...)
}

func (l countingLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil {
		l.stats.record(err)
	}
	l.inner.Trace(ctx, begin, fc, err)
}

// SQLiteUp pings the database, bounding the ping to 200ms when ctx has no deadline.
func SQLiteUp(ctx context.Context, db *gorm.DB) bool {
	if db == nil {
		return false
	}

	sqlDB, err := db.DB()
	if err != nil {
		return false
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 200*time.Millisecond)
		defer cancel()
	}

	return sqlDB.PingContext(ctx) == nil
}
