package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "READ_TIMEOUT", "WRITE_TIMEOUT", "CATALOG_DB_PATH", "LOG_LEVEL", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "3003" || cfg.Environment != "development" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReadTimeout != 10 || cfg.WriteTimeout != 10 {
		t.Errorf("unexpected timeouts: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 0 {
		t.Errorf("expected no CORS origins, got %v", cfg.CORSOrigins)
	}
	if cfg.CatalogDBPath != "data/db/catalog.db" {
		t.Errorf("unexpected db path %q", cfg.CatalogDBPath)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("READ_TIMEOUT", "30")
	t.Setenv("WRITE_TIMEOUT", "not-a-number")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://planner.example.com,")

	cfg := Load()
	if cfg.Port != "8080" || cfg.LogLevel != "debug" {
		t.Errorf("env not applied: %+v", cfg)
	}
	if cfg.ReadTimeout != 30 {
		t.Errorf("read timeout = %d, want 30", cfg.ReadTimeout)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://planner.example.com" {
		t.Errorf("unexpected CORS origins %v", cfg.CORSOrigins)
	}
	if cfg.WriteTimeout != 10 {
		t.Errorf("bad value should fall back to default, got %d", cfg.WriteTimeout)
	}
}
