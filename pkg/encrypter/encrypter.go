package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keySize = 32

var (
	ErrEmptySecret  = errors.New("encrypter: secret is empty")
	ErrEmptyPurpose = errors.New("encrypter: purpose is empty")
	ErrMalformed    = errors.New("encrypter: malformed ciphertext")
	ErrAuthFailed   = errors.New("encrypter: message authentication failed")
)

var encoding = base64.RawURLEncoding.Strict()

// Encrypter seals and opens payloads with authenticated encryption.
// Output of Encrypt is URL safe.
type Encrypter interface {
	Encrypt(plaintext []byte) (string, error)
	Decrypt(ciphertext string) ([]byte, error)
}

type aesGCM struct {
	aead cipher.AEAD
	rand io.Reader
}

// New returns an AES-256-GCM Encrypter whose key is derived from secret
// with HKDF-SHA256 using purpose as the info string. Two encrypters built
// from the same secret but different purposes cannot open each other's output.
func New(secret []byte, purpose string) (Encrypter, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	if purpose == "" {
		return nil, ErrEmptyPurpose
	}

	key := make([]byte, keySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, []byte(purpose)), key); err != nil {
		return nil, fmt.Errorf("encrypter: derive key: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("encrypter: new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("encrypter: new gcm: %w", err)
	}

	return &aesGCM{aead: aead, rand: rand.Reader}, nil
}

// GenerateSecret returns n random bytes suitable as an Encrypter secret.
func GenerateSecret(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (e *aesGCM) Encrypt(plaintext []byte) (string, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(e.rand, nonce); err != nil {
		return "", fmt.Errorf("encrypter: nonce: %w", err)
	}

	sealed := e.aead.Seal(nonce, nonce, plaintext, nil)
	return encoding.EncodeToString(sealed), nil
}

func (e *aesGCM) Decrypt(ciphertext string) ([]byte, error) {
	raw, err := encoding.DecodeString(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	ns := e.aead.NonceSize()
	if len(raw) < ns+e.aead.Overhead() {
		return nil, ErrMalformed
	}

	plain, err := e.aead.Open(nil, raw[:ns], raw[ns:], nil)
	if err != nil {
		return nil, ErrAuthFailed
	}
	return plain, nil
}
