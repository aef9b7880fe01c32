package auth

import (
	"strings"
	"testing"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "" {
		t.Fatal("HashPassword returned empty hash")
	}
	parts := strings.Split(hash, ".")
	if len(parts) != 2 {
		t.Fatalf("stored form = %q, want <keyHex>.<saltHex>", hash)
	}
	if len(parts[0]) != Argon2KeyLen*2 {
		t.Errorf("key hex length = %d, want %d", len(parts[0]), Argon2KeyLen*2)
	}
	if len(parts[1]) != Argon2SaltLen*2 {
		t.Errorf("salt hex length = %d, want %d", len(parts[1]), Argon2SaltLen*2)
	}
}

func TestHashPassword_UniqueSalt(t *testing.T) {
	h1, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("two hashes of the same password should differ (random salt)")
	}
}

func TestCheckPassword_Correct(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	valid, err := CheckPassword("changeme", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if !valid {
		t.Fatal("correct password was rejected")
	}
}

func TestCheckPassword_Wrong(t *testing.T) {
	hash, err := HashPassword("changeme")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}

	valid, err := CheckPassword("wrongpassword", hash)
	if err != nil {
		t.Fatalf("CheckPassword error: %v", err)
	}
	if valid {
		t.Fatal("wrong password was accepted")
	}
}

func TestCheckPassword_Malformed(t *testing.T) {
	// A malformed stored form must fail loudly, not masquerade as a
	// wrong password.
	for _, stored := range []string{"", "nodot", "zz.zz", "deadbeef.", ".deadbeef"} {
		if _, err := CheckPassword("changeme", stored); err == nil {
			t.Errorf("CheckPassword(%q) expected error, got nil", stored)
		}
	}
}
