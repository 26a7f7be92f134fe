package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// validEnv sets the minimum required env vars for a valid config.
func validEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/testdb")
}

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
server:
  host: "127.0.0.1"
  port: 9090
  read_timeout: "5s"
  write_timeout: "15s"
  idle_timeout: "30s"
  shutdown_timeout: "5s"

database:
  dsn: "postgres://u:p@localhost:5432/testdb"
  max_conns: 10
  min_conns: 2
  auto_migrate: false

api:
  path_prefix: "/v1/"
  max_body_bytes: 2048

cors:
  allowed_origins: "http://localhost:5173"

log:
  level: "debug"
  format: "text"
`

func TestLoad_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Server
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "127.0.0.1")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.ReadTimeout != 5*time.Second {
		t.Errorf("server.read_timeout = %v, want %v", cfg.Server.ReadTimeout, 5*time.Second)
	}
	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("server addr = %q", cfg.Server.Addr())
	}

	// Database
	if cfg.Database.DSN != "postgres://u:p@localhost:5432/testdb" {
		t.Errorf("database.dsn = %q", cfg.Database.DSN)
	}
	if cfg.Database.MinConns != 2 {
		t.Errorf("database.min_conns = %d, want 2", cfg.Database.MinConns)
	}
	if cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should be false")
	}

	// API
	if cfg.API.PathPrefix != "/v1" {
		t.Errorf("api.path_prefix = %q, want %q (trailing slash trimmed)", cfg.API.PathPrefix, "/v1")
	}
	if cfg.API.MaxBodyBytes != 2048 {
		t.Errorf("api.max_body_bytes = %d, want 2048", cfg.API.MaxBodyBytes)
	}

	// CORS
	if cfg.CORS.AllowedOrigins != "http://localhost:5173" {
		t.Errorf("cors.allowed_origins = %q", cfg.CORS.AllowedOrigins)
	}

	// Log
	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "text")
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, validYAML)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SERVER_PORT", "3000")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("server.port = %d, want 3000 (ENV override)", cfg.Server.Port)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_NoFile_ENVOnly(t *testing.T) {
	validEnv(t)
	t.Setenv("CONFIG_PATH", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8787 {
		t.Errorf("server.port = %d, want 8787 (default)", cfg.Server.Port)
	}
	if cfg.API.PathPrefix != "/api" {
		t.Errorf("api.path_prefix = %q, want /api (default)", cfg.API.PathPrefix)
	}
	if cfg.API.MaxBodyBytes != 1<<20 {
		t.Errorf("api.max_body_bytes = %d, want 1MiB (default)", cfg.API.MaxBodyBytes)
	}
	if cfg.CORS.AllowedOrigins != "*" {
		t.Errorf("cors.allowed_origins = %q, want * (default)", cfg.CORS.AllowedOrigins)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("database.auto_migrate should default to true")
	}
}

func TestLoad_NoFile_MissingDSN(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "")

	origDir, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origDir) })
	_ = os.Chdir(t.TempDir())

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing database dsn")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/nonexistent/config.yaml")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := writeYAML(t, dir, `{{{invalid yaml`)
	t.Setenv("CONFIG_PATH", path)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_DSNBlank(t *testing.T) {
	cfg := validConfig()
	cfg.Database.DSN = "   "

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for blank dsn")
	}
}

func TestValidate_MinConnsExceedMax(t *testing.T) {
	cfg := validConfig()
	cfg.Database.MinConns = 20

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for min_conns > max_conns")
	}
}

func TestValidate_PortOutOfRange(t *testing.T) {
	for _, port := range []int{0, -1, 65536} {
		cfg := validConfig()
		cfg.Server.Port = port

		if err := cfg.Validate(); err == nil {
			t.Errorf("port %d: expected error", port)
		}
	}
}

func TestValidate_ShutdownTimeoutZero(t *testing.T) {
	cfg := validConfig()
	cfg.Server.ShutdownTimeout = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero shutdown timeout")
	}
}

func TestValidate_PathPrefixWithoutSlash(t *testing.T) {
	cfg := validConfig()
	cfg.API.PathPrefix = "api"

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for path prefix without leading slash")
	}
}

func TestValidate_EmptyPathPrefixAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.API.PathPrefix = ""

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_MaxBodyBytesZero(t *testing.T) {
	cfg := validConfig()
	cfg.API.MaxBodyBytes = 0

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero max body bytes")
	}
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8787,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			DSN:      "postgres://u:p@localhost:5432/testdb",
			MaxConns: 10,
			MinConns: 1,
		},
		API: APIConfig{
			PathPrefix:   "/api",
			MaxBodyBytes: 1 << 20,
		},
	}
}
