package crypto

import (
	"strings"
	"testing"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func TestKeyFromHex(t *testing.T) {
	tests := []struct {
		name    string
		hexKey  string
		wantErr bool
	}{
		{"valid 64-char hex", testKeyHex, false},
		{"too short", "abcdef", true},
		{"not hex", strings.Repeat("zz", 32), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := KeyFromHex(tt.hexKey)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(key) != 32 {
				t.Errorf("key length = %d, want 32", len(key))
			}
		})
	}
}

func TestEncryptDecrypt(t *testing.T) {
	key, err := KeyFromHex(testKeyHex)
	if err != nil {
		t.Fatalf("KeyFromHex: %v", err)
	}

	plaintext := "POL-99812-X"

	encrypted, err := Encrypt(key, plaintext)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if encrypted == plaintext {
		t.Error("ciphertext equals plaintext")
	}

	decrypted, err := Decrypt(key, encrypted)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if decrypted != plaintext {
		t.Errorf("Decrypt = %q, want %q", decrypted, plaintext)
	}
}

func TestEncryptNonDeterministic(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	a, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	b, err := Encrypt(key, "same input")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	if a == b {
		t.Error("two encryptions of the same plaintext produced identical ciphertexts")
	}
}

func TestDecryptErrors(t *testing.T) {
	key, _ := KeyFromHex(testKeyHex)

	t.Run("invalid base64", func(t *testing.T) {
		if _, err := Decrypt(key, "!!!not-base64!!!"); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("short ciphertext", func(t *testing.T) {
		if _, err := Decrypt(key, "YWJj"); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("wrong key", func(t *testing.T) {
		encrypted, _ := Encrypt(key, "secret")
		otherKey, _ := KeyFromHex("ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
		if _, err := Decrypt(otherKey, encrypted); err == nil {
			t.Error("expected error, got nil")
		}
	})

	t.Run("bad key size", func(t *testing.T) {
		if _, err := Decrypt([]byte("short"), "YWJj"); err == nil {
			t.Error("expected error, got nil")
		}
	})
}

func TestHash(t *testing.T) {
	a := Hash("token-1")
	b := Hash("token-1")
	c := Hash("token-2")

	if a != b {
		t.Error("Hash is not deterministic")
	}
	if a == c {
		t.Error("different inputs produced the same hash")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64", len(a))
	}
}
