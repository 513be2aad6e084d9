package security

import (
	"strings"
	"testing"

	"github.com/carewell-health/carewell-backend/pkg/config"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := HashPassword("correct-horse", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$v=19$") {
		t.Fatalf("unexpected format: %s", hash)
	}

	ok, err := VerifyPassword("correct-horse", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected match")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch")
	}
}

func TestHashesAreSalted(t *testing.T) {
	first, err := HashPassword("correct-horse", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := HashPassword("correct-horse", config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatalf("hashes must differ per salt")
	}
}

func TestHashEmptyPassword(t *testing.T) {
	if _, err := HashPassword("", config.PasswordConfig{}); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("anything", "not-a-hash"); err == nil {
		t.Fatalf("expected error for malformed hash")
	}
}
