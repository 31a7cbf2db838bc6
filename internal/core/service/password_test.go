package service

import "testing"

func TestCheckPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "secret1" {
		t.Fatalf("expected password to be hashed")
	}
	if !CheckPassword("secret1", hash) {
		t.Fatalf("expected matching password to verify")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("secret1")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if CheckPassword("secret2", hash) {
		t.Fatalf("expected mismatched password to fail")
	}
}

func TestCheckPassword_MalformedDigest(t *testing.T) {
	if CheckPassword("secret1", "not-a-bcrypt-digest") {
		t.Fatalf("expected malformed digest to fail verification")
	}
	if CheckPassword("secret1", "") {
		t.Fatalf("expected empty digest to fail verification")
	}
}
