// Copyright (c) 2025 the agora authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"testing"
	"time"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("Hash should not equal the plaintext")
	}

	if err := CheckPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("Expected match, got error: %v", err)
	}

	if err := CheckPassword(hash, "wrong password"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("Expected ErrWrongPassword, got: %v", err)
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	h1, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	h2, err := HashPassword("same input")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if h1 == h2 {
		t.Error("Two hashes of the same password should differ (random salt)")
	}
}

func TestGenerateAndVerifyToken(t *testing.T) {
	token, err := GenerateToken(42, "user@example.com", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := VerifyToken(token, "secret")
	if err != nil {
		t.Fatalf("VerifyToken failed: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("Expected UserID 42, got %d", claims.UserID)
	}
	if claims.Email != "user@example.com" {
		t.Errorf("Expected email user@example.com, got %s", claims.Email)
	}

	// Expiry is relative to issue time
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("Expected 1h TTL, got %v", ttl)
	}
}

func TestVerifyToken_Invalid(t *testing.T) {
	valid, err := GenerateToken(1, "a@b.c", "secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	expired, err := GenerateToken(1, "a@b.c", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"garbage", "not-a-token", "secret"},
		{"empty", "", "secret"},
		{"wrong secret", valid, "other-secret"},
		{"expired", expired, "secret"},
		{"tampered", valid + "x", "secret"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := VerifyToken(tc.token, tc.secret); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Expected ErrInvalidToken, got: %v", err)
			}
		})
	}
}
