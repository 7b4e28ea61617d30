package encrypter_test

import (
	"errors"
	"testing"

	"telegram-bot-framework/pkg/encrypter"
)

func TestEncrypter(t *testing.T) {
	enc, err := encrypter.New([]byte("super-secret"), "purpose-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Round trip", func(t *testing.T) {
		ct, err := enc.Encrypt([]byte("42:abc"))
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		pt, err := enc.Decrypt(ct)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if string(pt) != "42:abc" {
			t.Errorf("expected 42:abc, got %q", pt)
		}
	})

	t.Run("Nonce makes output differ", func(t *testing.T) {
		a, _ := enc.Encrypt([]byte("same"))
		b, _ := enc.Encrypt([]byte("same"))
		if a == b {
			t.Errorf("expected distinct ciphertexts")
		}
	})

	t.Run("Different purpose cannot decrypt", func(t *testing.T) {
		other, _ := encrypter.New([]byte("super-secret"), "purpose-b")
		ct, _ := enc.Encrypt([]byte("data"))
		if _, err := other.Decrypt(ct); !errors.Is(err, encrypter.ErrAuthFailed) {
			t.Errorf("expected ErrAuthFailed, got %v", err)
		}
	})

	t.Run("Different secret cannot decrypt", func(t *testing.T) {
		other, _ := encrypter.New([]byte("another-secret"), "purpose-a")
		ct, _ := enc.Encrypt([]byte("data"))
		if _, err := other.Decrypt(ct); err == nil {
			t.Errorf("expected error")
		}
	})

	t.Run("Truncated", func(t *testing.T) {
		ct, _ := enc.Encrypt([]byte("data"))
		if _, err := enc.Decrypt(ct[:len(ct)-4]); err == nil {
			t.Errorf("expected error for truncated ciphertext")
		}
		if _, err := enc.Decrypt("abc"); !errors.Is(err, encrypter.ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})

	t.Run("Not base64", func(t *testing.T) {
		if _, err := enc.Decrypt("!!!!"); !errors.Is(err, encrypter.ErrMalformed) {
			t.Errorf("expected ErrMalformed, got %v", err)
		}
	})
}

func TestNewValidation(t *testing.T) {
	if _, err := encrypter.New(nil, "p"); !errors.Is(err, encrypter.ErrEmptySecret) {
		t.Errorf("expected ErrEmptySecret, got %v", err)
	}
	if _, err := encrypter.New([]byte("s"), ""); !errors.Is(err, encrypter.ErrEmptyPurpose) {
		t.Errorf("expected ErrEmptyPurpose, got %v", err)
	}
}

func TestGenerateSecret(t *testing.T) {
	s, err := encrypter.GenerateSecret(32)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 32 {
		t.Errorf("expected 32 bytes, got %d", len(s))
	}
}
