package core

import (
	"coinwidget/models"
	"fmt"
	"log"
	"runtime"
	"sync"
	"time"
)

// ErrorLogger keeps the most recent storage failures in memory so they can
// be inspected over the API. The widget store never surfaces these to its
// callers.
type ErrorLogger struct {
	logs      []*models.ErrorLog
	mu        sync.RWMutex
	maxLogs   int
	idCounter int
}

// NewErrorLogger creates a logger holding at most maxLogs entries.
func NewErrorLogger(maxLogs int) *ErrorLogger {
	if maxLogs <= 0 {
		maxLogs = 100
	}
	return &ErrorLogger{
		logs:    make([]*models.ErrorLog, 0, maxLogs),
		maxLogs: maxLogs,
	}
}

// RecordStoreError has the shape of prefs.ErrorHandler. Undecodable
// records are warnings since reads fall back to defaults; failed I/O is an error.
func (e *ErrorLogger) RecordStoreError(widgetID int, op string, err error) {
	level := "ERROR"
	if op == "decode" {
		level = "WARN"
	}
	log.Printf("[%s] widget %d: %s failed: %v", level, widgetID, op, err)
	e.add(&models.ErrorLog{
		Level:    level,
		Source:   "prefs",
		WidgetID: widgetID,
		Op:       op,
		Message:  err.Error(),
		Stack:    stackTrace(3),
	})
}

func (e *ErrorLogger) add(entry *models.ErrorLog) {
	e.mu.Lock()
	defer e.mu.Unlock()

	// Drop the oldest entry once full
	if len(e.logs) >= e.maxLogs {
		e.logs = e.logs[1:]
	}

	e.idCounter++
	entry.ID = e.idCounter
	entry.Timestamp = time.Now()
	e.logs = append(e.logs, entry)
}

// Recent returns the stored entries, newest first.
func (e *ErrorLogger) Recent() []*models.ErrorLog {
	e.mu.RLock()
	defer e.mu.RUnlock()

	total := len(e.logs)
	result := make([]*models.ErrorLog, total)
	for i := 0; i < total; i++ {
		result[i] = e.logs[total-1-i]
	}
	return result
}

// Len returns the number of stored entries.
func (e *ErrorLogger) Len() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.logs)
}

// Clear removes all entries. IDs keep increasing.
func (e *ErrorLogger) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.logs = make([]*models.ErrorLog, 0, e.maxLogs)
}

func stackTrace(skip int) string {
	const maxDepth = 8
	var stack string

	for i := skip; i < skip+maxDepth; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		funcName := "unknown"
		if fn := runtime.FuncForPC(pc); fn != nil {
			funcName = fn.Name()
		}
		stack += fmt.Sprintf("%s:%d %s\n", file, line, funcName)
	}
	return stack
}
