// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"testing"
	"time"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := ParseFlags([]string{
		"-p", "9000",
		"-d", "postgres://localhost/agora",
		"-jwt-secret", "s3cret",
		"-token-ttl", "2h",
	})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://localhost/agora" {
		t.Errorf("Unexpected database URL: %s", cfg.DatabaseURL)
	}
	if cfg.JWTSecret != "s3cret" {
		t.Errorf("Unexpected JWT secret: %s", cfg.JWTSecret)
	}
	if cfg.TokenTTL != 2*time.Hour {
		t.Errorf("Expected 2h TTL, got %v", cfg.TokenTTL)
	}
}

func TestParseFlags_EnvFallback(t *testing.T) {
	t.Setenv("PORT", "7777")
	t.Setenv("DATABASE_URL", "postgres://env/agora")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("TOKEN_TTL", "30m")

	cfg, err := ParseFlags(nil)
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 7777 {
		t.Errorf("Expected port 7777, got %d", cfg.Port)
	}
	if cfg.DatabaseURL != "postgres://env/agora" {
		t.Errorf("Unexpected database URL: %s", cfg.DatabaseURL)
	}
	if cfg.TokenTTL != 30*time.Minute {
		t.Errorf("Expected 30m TTL, got %v", cfg.TokenTTL)
	}
}

func TestParseFlags_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TTL", "")

	cfg, err := ParseFlags([]string{"-d", "postgres://x", "-jwt-secret", "s"})
	if err != nil {
		t.Fatalf("ParseFlags failed: %v", err)
	}

	if cfg.Port != 8843 {
		t.Errorf("Expected default port 8843, got %d", cfg.Port)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Errorf("Expected default 24h TTL, got %v", cfg.TokenTTL)
	}
}

func TestParseFlags_MissingRequired(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := ParseFlags(nil); err == nil {
		t.Error("Expected error for missing database URL")
	}

	if _, err := ParseFlags([]string{"-d", "postgres://x"}); err == nil {
		t.Error("Expected error for missing JWT secret")
	}
}

func TestParseFlags_InvalidTTL(t *testing.T) {
	args := []string{"-d", "postgres://x", "-jwt-secret", "s", "-token-ttl", "soon"}
	if _, err := ParseFlags(args); err == nil {
		t.Error("Expected error for invalid TOKEN_TTL")
	}

	args = []string{"-d", "postgres://x", "-jwt-secret", "s", "-token-ttl", "-1h"}
	if _, err := ParseFlags(args); err == nil {
		t.Error("Expected error for negative TOKEN_TTL")
	}
}
