package crypto

import (
	"fmt"
	"strings"
	"testing"
)

func TestHashPasswordPHCFormat(t *testing.T) {
	hash, err := HashPassword("correct-horse-battery-staple")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	parts := strings.Split(hash, "$")
	if len(parts) != 6 {
		t.Fatalf("expected 6 PHC segments, got %d: %q", len(parts), hash)
	}
	if parts[1] != "argon2id" {
		t.Errorf("algorithm = %q, want argon2id", parts[1])
	}

	wantParams := fmt.Sprintf("m=%d,t=%d,p=%d", hashMemory, hashIterations, hashParallelism)
	if parts[3] != wantParams {
		t.Errorf("params = %q, want %q", parts[3], wantParams)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("my-secure-password")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	tests := []struct {
		name     string
		password string
		want     bool
	}{
		{"correct password", "my-secure-password", true},
		{"wrong password", "not-my-password", false},
		{"empty password", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := VerifyPassword(tt.password, hash)
			if err != nil {
				t.Fatalf("VerifyPassword() error: %v", err)
			}
			if match != tt.want {
				t.Errorf("VerifyPassword() = %v, want %v", match, tt.want)
			}
		})
	}
}

func TestHashPasswordSaltsDiffer(t *testing.T) {
	first, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}
	second, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword() error: %v", err)
	}

	if first == second {
		t.Error("two hashes of the same password should carry different salts")
	}
}

func TestVerifyPasswordMalformedHash(t *testing.T) {
	malformed := []string{
		"",
		"not-a-hash",
		"$argon2id$v=19$m=65536,t=3,p=2",
		"$md5$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=banana,t=3,p=2$c2FsdA$aGFzaA",
	}

	for _, hash := range malformed {
		if _, err := VerifyPassword("password", hash); err == nil {
			t.Errorf("VerifyPassword(%q) expected error", hash)
		}
	}
}
