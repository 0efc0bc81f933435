package database

import (
	"coinwidget/config"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"
)

// sqliteOptions is the SQLite part of the runtime config, with bounds applied.
type sqliteOptions struct {
	pragmas       bool
	busyTimeoutMS int
	journalMode   string
	synchronous   string
	foreignKeys   bool
	maxOpenConns  int
	maxIdleConns  int
	maxIdle       time.Duration
	maxLifetime   time.Duration
}

func sqliteOptionsFrom(settings *config.Config) sqliteOptions {
	opts := sqliteOptions{
		pragmas:       settings.SQLitePragmasEnabled,
		busyTimeoutMS: settings.SQLiteBusyTimeoutMS,
		journalMode:   normalizeJournalMode(settings.SQLiteJournalMode),
		synchronous:   normalizeSynchronous(settings.SQLiteSynchronous),
		foreignKeys:   settings.SQLiteForeignKeys,
		maxOpenConns:  settings.SQLiteMaxOpenConns,
		maxIdleConns:  settings.SQLiteMaxIdleConns,
		maxIdle:       time.Duration(settings.SQLiteConnMaxIdleSec) * time.Second,
		maxLifetime:   time.Duration(settings.SQLiteConnMaxLifeSec) * time.Second,
	}

	// A widget record write is a single-row upsert; one writer connection
	// avoids SQLITE_BUSY between pooled connections.
	if opts.maxOpenConns < 1 {
		opts.maxOpenConns = 1
	}
	if opts.maxIdleConns < 0 {
		opts.maxIdleConns = 0
	}
	if opts.maxIdleConns > opts.maxOpenConns {
		opts.maxIdleConns = opts.maxOpenConns
	}
	if opts.maxIdle < 0 {
		opts.maxIdle = 0
	}
	if opts.maxLifetime < 0 {
		opts.maxLifetime = 0
	}
	return opts
}

// dsn appends _pragma query parameters to path, keeping any query it already has.
func (o sqliteOptions) dsn(path string) string {
	base, rawQuery, _ := strings.Cut(path, "?")
	query, _ := url.ParseQuery(rawQuery)

	for _, p := range o.pragmaList() {
		query.Add("_pragma", fmt.Sprintf("%s(%s)", p.name, p.value))
	}

	if len(query) == 0 {
		return base
	}
	return base + "?" + query.Encode()
}

type pragma struct {
	name  string
	value string
}

func (o sqliteOptions) pragmaList() []pragma {
	if !o.pragmas {
		return nil
	}

	var list []pragma
	if o.busyTimeoutMS > 0 {
		list = append(list, pragma{"busy_timeout", fmt.Sprint(o.busyTimeoutMS)})
	}
	if o.journalMode != "" {
		list = append(list, pragma{"journal_mode", o.journalMode})
	}
	if o.synchronous != "" {
		list = append(list, pragma{"synchronous", o.synchronous})
	}
	if o.foreignKeys {
		list = append(list, pragma{"foreign_keys", "1"})
	} else {
		list = append(list, pragma{"foreign_keys", "0"})
	}
	return list
}

func (o sqliteOptions) applyPool(sqlDB *sql.DB) {
	sqlDB.SetMaxOpenConns(o.maxOpenConns)
	sqlDB.SetMaxIdleConns(o.maxIdleConns)
	sqlDB.SetConnMaxIdleTime(o.maxIdle)
	sqlDB.SetConnMaxLifetime(o.maxLifetime)
}

// normalizeJournalMode returns an accepted uppercase journal mode or "".
func normalizeJournalMode(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY", "OFF":
		return value
	default:
		return ""
	}
}

// normalizeSynchronous returns an accepted synchronous level or "".
func normalizeSynchronous(value string) string {
	value = strings.ToUpper(strings.TrimSpace(value))
	switch value {
	case "OFF", "NORMAL", "FULL", "EXTRA", "0", "1", "2", "3":
		return value
	default:
		return ""
	}
}
