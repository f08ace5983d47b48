package utils

import (
	"testing"
	"time"

	"github.com/phealthcare/healthcare-api/models"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("doctor@example.com", models.RoleDoctor, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := VerifyToken(token, "test-secret")
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}

	email, role, err := ClaimsIdentity(claims)
	if err != nil {
		t.Fatalf("failed to extract identity: %v", err)
	}
	if email != "doctor@example.com" {
		t.Errorf("email = %q, want doctor@example.com", email)
	}
	if role != models.RoleDoctor {
		t.Errorf("role = %q, want %q", role, models.RoleDoctor)
	}
}

func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := GenerateToken("admin@example.com", models.RoleAdmin, "secret-a", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := VerifyToken(token, "secret-b"); err == nil {
		t.Error("expected verification failure with wrong secret")
	}
}

func TestVerifyTokenExpired(t *testing.T) {
	token, err := GenerateToken("admin@example.com", models.RoleAdmin, "test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	if _, err := VerifyToken(token, "test-secret"); err == nil {
		t.Error("expected verification failure for expired token")
	}
}

func TestClaimsIdentityMissingFields(t *testing.T) {
	token, err := GenerateToken("", models.RolePatient, "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}
	claims, err := VerifyToken(token, "test-secret")
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if _, _, err := ClaimsIdentity(claims); err == nil {
		t.Error("expected error for empty email claim")
	}
}
