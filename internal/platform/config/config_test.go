package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"courtside/internal/platform/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != filepath.Join("data", "courtside.db") {
		t.Fatalf("default db path = %q", cfg.DBPath)
	}
}

func TestLoadYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /tmp/custom.db\nuser: alice\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/custom.db" || cfg.User != "alice" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("db_path: /tmp/from-file.db\nuser: alice\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("COURTSIDE_DB", "/tmp/from-env.db")
	t.Setenv("COURTSIDE_USER", "bob")

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath != "/tmp/from-env.db" {
		t.Fatalf("db path = %q, env should win", cfg.DBPath)
	}
	if cfg.User != "bob" {
		t.Fatalf("user = %q, env should win", cfg.User)
	}
}

func TestLoadMissingFileIsOptional(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.DBPath == "" {
		t.Fatal("defaults not applied")
	}
}
