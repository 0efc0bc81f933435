package main

import (
	"coinwidget/config"
	"coinwidget/prefs"
	"path/filepath"
	"testing"
)

func TestOpenBackend(t *testing.T) {
	mem, err := openBackend(&config.Config{StoreBackend: "memory"})
	if err != nil {
		t.Fatalf("memory: %v", err)
	}
	if _, ok := mem.backend.(*prefs.MemoryBackend); !ok {
		t.Fatalf("memory backend has type %T", mem.backend)
	}

	bolt, err := openBackend(&config.Config{StoreBackend: "bolt", BoltPath: filepath.Join(t.TempDir(), "w.bbolt")})
	if err != nil {
		t.Fatalf("bolt: %v", err)
	}
	store := prefs.NewStore(bolt.backend)
	if err := store.Widget(1).SetLastValue("42000"); err != nil {
		t.Fatalf("SetLastValue: %v", err)
	}
	if got := store.Widget(1).LastValue(); got != "42000" {
		t.Fatalf("LastValue = %q", got)
	}
	if err := bolt.close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	if _, err := openBackend(&config.Config{StoreBackend: "redis"}); err == nil {
		t.Fatalf("unknown backend should fail")
	}
}
