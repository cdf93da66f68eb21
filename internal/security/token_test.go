package security

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	token, err := GenerateAccessToken("test-secret", "u1", "resident", "active", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := ParseAccessToken(token, "test-secret")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.UserID != "u1" {
		t.Errorf("uid = %q, want u1", claims.UserID)
	}
	if claims.Role != "resident" {
		t.Errorf("role = %q, want resident", claims.Role)
	}
	if claims.ResidentStatus != "active" {
		t.Errorf("residentStatus = %q, want active", claims.ResidentStatus)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken("test-secret", "u1", "resident", "active", time.Hour)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseAccessToken(token, "other-secret"); err == nil {
		t.Fatal("expected error for wrong secret")
	}
}

func TestAccessTokenExpired(t *testing.T) {
	token, err := GenerateAccessToken("test-secret", "u1", "resident", "active", -time.Minute)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := ParseAccessToken(token, "test-secret"); err == nil {
		t.Fatal("expected error for expired token")
	}
}

func TestPasswordHashVerify(t *testing.T) {
	hash, err := HashPassword("s3cret-password!")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}

	ok, err := VerifyPassword("s3cret-password!", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if !ok {
		t.Fatal("expected verification to succeed")
	}

	ok, err = VerifyPassword("wrong-password", hash)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if ok {
		t.Fatal("expected verification to fail for wrong password")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("anything", []byte("not-a-hash")); err == nil {
		t.Fatal("expected error for malformed hash")
	}
}

func TestResetTokenHash(t *testing.T) {
	token, hash, err := GenerateResetToken(32)
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty token")
	}
	if string(HashResetToken(token)) != string(hash) {
		t.Fatal("hash mismatch for same token")
	}
}
