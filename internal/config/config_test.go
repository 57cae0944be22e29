package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/TropoEU/concierge/internal/config"
)

const baseConfig = `
shutdown_timeout = "45s"
version = "1.2.3"

[server]
host = "127.0.0.1"
port = 9000
read_timeout = "20s"
write_timeout = "40s"

[database]
host = "localhost"
port = 5432
name = "concierge"
user = "concierge"
password = "concierge"
ssl_mode = "disable"

[api]
base_path = "/api"

[api.cors]
enabled = false

[api.pagination]
default_page_size = 25
max_page_size = 50
`

const overlayConfig = `
[server]
port = 9090

[database]
host = "prodhost"
`

func writeConfig(t *testing.T, dir, filename, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", filename, err)
	}
}

func TestLoad(t *testing.T) {
	t.Run("base config", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, config.BaseConfigFile, baseConfig)
		t.Chdir(dir)

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if cfg.Server.Addr() != "127.0.0.1:9000" {
			t.Errorf("Addr() = %q", cfg.Server.Addr())
		}
		if cfg.ShutdownTimeoutDuration() != 45*time.Second {
			t.Errorf("ShutdownTimeoutDuration() = %v", cfg.ShutdownTimeoutDuration())
		}
		if cfg.Version != "1.2.3" {
			t.Errorf("Version = %q", cfg.Version)
		}
		if cfg.API.Pagination.DefaultPageSize != 25 {
			t.Errorf("DefaultPageSize = %d", cfg.API.Pagination.DefaultPageSize)
		}
	})

	t.Run("missing file uses defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("CONCIERGE_DB_NAME", "concierge")
		t.Setenv("CONCIERGE_DB_USER", "concierge")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if cfg.Server.Port != 8080 {
			t.Errorf("default port = %d, want 8080", cfg.Server.Port)
		}
		if cfg.ShutdownTimeout != "30s" {
			t.Errorf("default shutdown_timeout = %q", cfg.ShutdownTimeout)
		}
		if cfg.API.BasePath != "/api" {
			t.Errorf("default base_path = %q", cfg.API.BasePath)
		}
	})

	t.Run("environment overlay", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, config.BaseConfigFile, baseConfig)
		writeConfig(t, dir, "config.production.toml", overlayConfig)
		t.Chdir(dir)
		t.Setenv(config.EnvConciergeEnv, "production")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if cfg.Server.Port != 9090 {
			t.Errorf("overlay port = %d, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Host != "127.0.0.1" {
			t.Errorf("host = %q, base value should survive the overlay", cfg.Server.Host)
		}
		if cfg.Database.Host != "prodhost" {
			t.Errorf("database host = %q, want prodhost", cfg.Database.Host)
		}
	})

	t.Run("env var overrides file", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, config.BaseConfigFile, baseConfig)
		t.Chdir(dir)
		t.Setenv("CONCIERGE_SERVER_PORT", "7777")
		t.Setenv(config.EnvConciergeShutdownTimeout, "5s")

		cfg, err := config.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}

		if cfg.Server.Port != 7777 {
			t.Errorf("port = %d, want env override 7777", cfg.Server.Port)
		}
		if cfg.ShutdownTimeoutDuration() != 5*time.Second {
			t.Errorf("shutdown timeout = %v, want 5s", cfg.ShutdownTimeoutDuration())
		}
	})

	t.Run("invalid duration fails", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, config.BaseConfigFile, `shutdown_timeout = "soon"`)
		t.Chdir(dir)

		if _, err := config.Load(); err == nil {
			t.Error("expected validation error for invalid shutdown_timeout")
		}
	})
}
