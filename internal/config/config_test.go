package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

const validConfig = `
server:
  host: 127.0.0.1
  port: 8080
database:
  host: localhost
  port: 5432
  name: stridecoach
  user: coach
  password: secret
auth:
  api_key: test-key
`

// TestLoadValid verifies a complete config file parses and validates.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Name != "stridecoach" {
		t.Errorf("database.name = %q", cfg.Database.Name)
	}
	if cfg.Auth.APIKey != "test-key" {
		t.Errorf("auth.api_key = %q", cfg.Auth.APIKey)
	}
}

// TestLoadEnvOverrides verifies environment variables win over file values.
func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("STRIDECOACH_SERVER_PORT", "9090")
	t.Setenv("STRIDECOACH_DB_PASSWORD", "env-secret")
	t.Setenv("STRIDECOACH_DB_MAX_CONNS", "16")

	cfg, err := Load(writeConfig(t, validConfig))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("server.port = %d, want env override 9090", cfg.Server.Port)
	}
	if cfg.Database.Password != "env-secret" {
		t.Errorf("database.password = %q, want env override", cfg.Database.Password)
	}
	if cfg.Database.MaxConns != 16 {
		t.Errorf("database.max_conns = %d, want env override 16", cfg.Database.MaxConns)
	}
}

// TestLoadMissingRequired verifies validation failures for incomplete
// configs.
func TestLoadMissingRequired(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"no server port", `
database: {host: localhost, port: 5432, name: db, user: u}
auth: {api_key: k}
`},
		{"no api key", `
server: {port: 8080}
database: {host: localhost, port: 5432, name: db, user: u}
`},
		{"tailscale without hostname", `
server: {port: 8080}
database: {host: localhost, port: 5432, name: db, user: u}
auth: {api_key: k}
tailscale: {enabled: true}
`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.content)); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

// TestLoadMissingFile verifies a useful error for a missing config path.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

// TestDSN verifies the connection string shape and the sslmode default.
func TestDSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, Name: "sc", User: "u", Password: "p"}
	want := "postgres://u:p@db:5432/sc?sslmode=disable"
	if got := d.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}

	d.SSLMode = "require"
	if got := d.DSN(); got != "postgres://u:p@db:5432/sc?sslmode=require" {
		t.Errorf("DSN() with sslmode = %q", got)
	}
}
