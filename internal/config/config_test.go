package config

import "testing"

func TestLoad(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/kirayadoor")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("CORS_ORIGINS", "https://app.kirayadoor.app,http://localhost:3000")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("Expected 2 CORS origins, got %d", len(cfg.CORSOrigins))
	}
	if cfg.SMTP.Port != "587" {
		t.Errorf("Expected default SMTP port 587, got %s", cfg.SMTP.Port)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Error("Expected an error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost:5432/kirayadoor")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected an error without JWT_SECRET")
	}
}
