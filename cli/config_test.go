package cli

import (
	"path/filepath"
	"testing"
)

func TestLoadConfig_CreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.DefaultServer != "local" || cfg.DefaultURL() != defaultServerURL {
		t.Fatalf("unexpected default config: %+v", cfg)
	}

	if err := cfg.AddServer("phone", "http://10.0.0.5:7790", "test device"); err != nil {
		t.Fatalf("AddServer: %v", err)
	}
	if err := cfg.SetDefault("phone"); err != nil {
		t.Fatalf("SetDefault: %v", err)
	}

	reloaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := reloaded.DefaultURL(); got != "http://10.0.0.5:7790" {
		t.Fatalf("DefaultURL = %q", got)
	}
	if names := reloaded.ServerNames(); len(names) != 2 || names[0] != "local" || names[1] != "phone" {
		t.Fatalf("ServerNames = %v", names)
	}
	if err := reloaded.SetDefault("missing"); err == nil {
		t.Fatalf("expected error for unknown server")
	}
}
