package main

import (
	"coinwidget/config"
	"coinwidget/database"
	"coinwidget/prefs"
	"context"
	"fmt"
	"log"
	"strings"
)

// storeBackend is the opened persistence layer behind the settings store
type storeBackend struct {
	backend prefs.Backend
	probe   func(ctx context.Context) bool
	close   func() error
}

// openBackend opens the backend named by settings.StoreBackend
func openBackend(settings *config.Config) (*storeBackend, error) {
	switch strings.ToLower(settings.StoreBackend) {
	case "", "sqlite":
		if err := database.InitDB(); err != nil {
			return nil, err
		}
		return &storeBackend{
			backend: database.NewRecordStore(database.DB),
			probe: func(ctx context.Context) bool {
				return database.SQLiteUp(ctx, database.DB)
			},
			close: database.CloseDB,
		}, nil
	case "bolt", "bbolt":
		bolt, err := database.OpenBoltStore(settings.BoltPath)
		if err != nil {
			return nil, err
		}
		log.Printf("Bolt store opened at %s", settings.BoltPath)
		return &storeBackend{backend: bolt, close: bolt.Close}, nil
	case "memory":
		log.Println("WARNING: memory store selected, settings will not survive a restart")
		return &storeBackend{backend: prefs.NewMemoryBackend(), close: func() error { return nil }}, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q (want sqlite, bolt or memory)", settings.StoreBackend)
	}
}
