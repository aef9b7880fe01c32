package config

import (
	"strings"
	"testing"
)

const testSecret = "Abcdef123456!@#$Abcdef123456!@#$"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORTFOLIO_SESSION_SECRET", testSecret)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DBPath != "./data/portfolio.db" {
		t.Errorf("DBPath = %q, want default", cfg.DBPath)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort = %d, want 8080", cfg.ServerPort)
	}
	if !cfg.IsDevelopment() {
		t.Error("expected development mode by default")
	}
	if cfg.ServerAddr() != "localhost:8080" {
		t.Errorf("ServerAddr = %q", cfg.ServerAddr())
	}
	if cfg.MailEnabled() {
		t.Error("mail should be disabled without SMTP host")
	}
	if cfg.UseRedisCache() {
		t.Error("redis cache should be disabled without URL")
	}
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("PORTFOLIO_SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing session secret")
	}
}

func TestLoad_ShortSecret(t *testing.T) {
	t.Setenv("PORTFOLIO_SESSION_SECRET", "tooshort")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for short session secret")
	}
	if !strings.Contains(err.Error(), "at least") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_WeakSecret(t *testing.T) {
	t.Setenv("PORTFOLIO_SESSION_SECRET", "change-me-to-32-byte-secret-key!")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for known weak secret")
	}
}

func TestLoad_MailEnabled(t *testing.T) {
	t.Setenv("PORTFOLIO_SESSION_SECRET", testSecret)
	t.Setenv("PORTFOLIO_SMTP_HOST", "smtp.example.com")
	t.Setenv("PORTFOLIO_SMTP_FROM", "site@example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.MailEnabled() {
		t.Error("expected mail to be enabled")
	}
}
