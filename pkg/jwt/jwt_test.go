package jwt

import (
	"testing"

	"github.com/google/uuid"
)

func TestTokenRoundTrip(t *testing.T) {
	userID := uuid.New()
	privileges := []string{"grn:view", "grn:inspect"}

	token, err := GenerateToken(userID, "inspector@example.com", "QC Inspector", "QC_INSPECTOR", privileges, "v1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "inspector@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.RoleCode != "QC_INSPECTOR" {
		t.Errorf("RoleCode = %q", claims.RoleCode)
	}
	if claims.TokenVersion != "v1" {
		t.Errorf("TokenVersion = %q", claims.TokenVersion)
	}
	if len(claims.Privileges) != 2 || claims.Privileges[0] != "grn:view" {
		t.Errorf("Privileges = %v", claims.Privileges)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

// A token signed under one secret must not validate after the configured
// secret changes.
func TestSetSecretChangesSigningKey(t *testing.T) {
	SetSecret("first-secret")
	defer SetSecret("")

	token, err := GenerateToken(uuid.New(), "a@b.c", "A", "ADMIN", nil, "v1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ValidateToken(token); err != nil {
		t.Fatalf("ValidateToken under same secret: %v", err)
	}

	SetSecret("second-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Fatal("expected error for token signed under previous secret")
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(uuid.New(), "a@b.c", "A", "ADMIN", nil, "v1")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	last := token[len(token)-1]
	flip := "A"
	if last == 'A' {
		flip = "B"
	}
	tampered := token[:len(token)-1] + flip
	if _, err := ValidateToken(tampered); err == nil {
		t.Fatal("expected error for tampered signature")
	}
}
