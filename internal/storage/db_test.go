package storage

import (
	"strings"
	"testing"
)

// TestOptionsPoolConfig verifies DSN parsing and the MaxConns override,
// including the keep-default zero value.
func TestOptionsPoolConfig(t *testing.T) {
	dsn := "postgres://coach:pw@localhost:5432/stridecoach?sslmode=disable"

	cfg, err := Options{DSN: dsn, MaxConns: 12}.poolConfig()
	if err != nil {
		t.Fatalf("poolConfig: %v", err)
	}
	if cfg.MaxConns != 12 {
		t.Errorf("MaxConns = %d, want 12", cfg.MaxConns)
	}
	if cfg.ConnConfig.Database != "stridecoach" {
		t.Errorf("database = %q, want stridecoach", cfg.ConnConfig.Database)
	}

	cfg, err = Options{DSN: dsn}.poolConfig()
	if err != nil {
		t.Fatalf("poolConfig: %v", err)
	}
	if cfg.MaxConns <= 0 {
		t.Errorf("MaxConns = %d, want pgx default > 0", cfg.MaxConns)
	}
}

// TestOptionsPoolConfigBadDSN verifies an unparseable DSN is rejected.
func TestOptionsPoolConfigBadDSN(t *testing.T) {
	_, err := Options{DSN: "://not-a-dsn"}.poolConfig()
	if err == nil {
		t.Fatal("expected error for invalid DSN")
	}
	if !strings.Contains(err.Error(), "parsing DSN") {
		t.Errorf("error = %v, want parsing DSN context", err)
	}
}
