package security

import (
	"strings"
	"testing"

	"github.com/grocerly/appcore/pkg/config"
)

func testPasswordConfig() config.PasswordConfig {
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     16,
		ArgonKeyLen:      32,
	}
}

func TestHashPassword_RejectsEmpty(t *testing.T) {
	if _, err := HashPassword("", testPasswordConfig()); err == nil {
		t.Fatalf("expected error for empty password")
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	encoded, err := HashPassword("s3cret-pass", testPasswordConfig())
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash format: %s", encoded)
	}

	ok, err := VerifyPassword("s3cret-pass", encoded)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if !ok {
		t.Fatalf("expected matching password to verify")
	}

	ok, err = VerifyPassword("wrong-pass", encoded)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestVerifyPassword_MalformedHash(t *testing.T) {
	if _, err := VerifyPassword("anything", "not-a-hash"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}
