package service

import "testing"

func TestHashPassword(t *testing.T) {
	password := "s3cret-admin"

	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword: %v", err)
	}
	if hash == password {
		t.Fatal("hash must not equal the plain password")
	}

	t.Run("matching password verifies", func(t *testing.T) {
		if !checkPasswordHash(password, hash) {
			t.Fatal("expected password to verify against its own hash")
		}
	})

	t.Run("wrong password rejected", func(t *testing.T) {
		if checkPasswordHash("not-the-password", hash) {
			t.Fatal("expected wrong password to be rejected")
		}
	})

	t.Run("hashes are salted", func(t *testing.T) {
		other, err := hashPassword(password)
		if err != nil {
			t.Fatalf("hashPassword: %v", err)
		}
		if other == hash {
			t.Fatal("two hashes of the same password should differ")
		}
	})
}
