package auth

import (
	"testing"
)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	// 32 random bytes hex encoded
	if len(token) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(token))
	}

	second, err := GenerateToken()
	if err != nil {
		t.Fatalf("Failed to generate second token: %v", err)
	}

	if token == second {
		t.Error("Two generated tokens should not be equal")
	}
}

func TestHashToken(t *testing.T) {
	token := "0123456789abcdef"

	hash := HashToken(token)
	if hash == token {
		t.Error("Hash should differ from the token")
	}

	// SHA-256 hex digest
	if len(hash) != 64 {
		t.Errorf("Expected 64 hex characters, got %d", len(hash))
	}

	if HashToken(token) != hash {
		t.Error("Hashing should be deterministic")
	}

	if HashToken("another-token") == hash {
		t.Error("Different tokens should not collide")
	}
}

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("admin123")
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	if !CheckPassword(hash, "admin123") {
		t.Error("Correct password should verify")
	}

	if CheckPassword(hash, "wrong-password") {
		t.Error("Wrong password should not verify")
	}
}
