package types

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/zoobzio/schematype"
)

// Encryption failures.
var (
	ErrInvalidKeySize   = errors.New("invalid key size")
	ErrCiphertextShort  = errors.New("ciphertext too short")
	ErrDecryptionFailed = errors.New("decryption failed")
)

// SealedSpec carries the AES key, 16, 24 or 32 bytes long, and optional
// associated data bound into the ciphertext.
type SealedSpec struct {
	Key            []byte
	AssociatedData []byte
}

// Sealed encrypts text with AES-GCM on wrap and decrypts it on unwrap. The
// wire form is the nonce followed by the sealed bytes.
type Sealed struct {
	*schematype.Contract[string, []byte, SealedSpec]
}

// NewSealed returns a Sealed named "sealed".
func NewSealed() *Sealed {
	return &Sealed{
		Contract: schematype.New[string, []byte, SealedSpec]("sealed", sealedHooks{}),
	}
}

type sealedHooks struct{}

func (sealedHooks) Validate(value string, spec SealedSpec) error {
	if _, err := gcm(spec.Key); err != nil {
		return err
	}
	return schematype.Assert(utf8.ValidString(value), "expected valid UTF-8 text", schematype.Properties{
		Actual:   value,
		Expected: "utf-8",
		Operator: schematype.OpTypeOf,
	})
}

func (sealedHooks) Cast(value string, spec SealedSpec) ([]byte, error) {
	aead, err := gcm(spec.Key)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return aead.Seal(nonce, nonce, []byte(value), spec.AssociatedData), nil
}

func (sealedHooks) Extract(wire []byte, spec SealedSpec) (string, error) {
	aead, err := gcm(spec.Key)
	if err != nil {
		return "", err
	}
	n := aead.NonceSize()
	if len(wire) < n {
		return "", ErrCiphertextShort
	}
	plaintext, err := aead.Open(nil, wire[:n], wire[n:], spec.AssociatedData)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}
	return string(plaintext), nil
}

func gcm(key []byte) (cipher.AEAD, error) {
	switch len(key) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: must be 16, 24, or 32 bytes, got %d", ErrInvalidKeySize, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
