package types

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/zoobzio/schematype"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// Algorithm names a password hashing scheme.
type Algorithm string

// Supported algorithms. The empty Algorithm is AlgoBcrypt.
const (
	AlgoBcrypt Algorithm = "bcrypt"
	AlgoArgon2 Algorithm = "argon2"
)

const (
	defaultMinLength = 8
	bcryptMaxBytes   = 72
	argon2Prefix     = "$argon2id$"
)

// Argon2Params configures Argon2id hashing.
type Argon2Params struct {
	Time    uint32 // Number of iterations
	Memory  uint32 // Memory usage in KiB
	Threads uint8  // Parallelism factor
	KeyLen  uint32 // Output key length
	SaltLen uint32 // Salt length
}

// DefaultArgon2Params returns the OWASP baseline for Argon2id.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
		KeyLen:  32,
		SaltLen: 16,
	}
}

// PasswordSpec configures Password. A zero MinLength means 8.
type PasswordSpec struct {
	Algorithm Algorithm
	MinLength int
	Cost      int           // bcrypt cost, 0 for bcrypt.DefaultCost
	Argon2    *Argon2Params // nil for DefaultArgon2Params
}

// Password hashes plaintext on wrap. Hashes cannot be reversed, so Extract
// is left unimplemented and Unwrap always fails with ErrNotImplemented.
type Password struct {
	schematype.Contract[string, string, PasswordSpec]
	schematype.Unimplemented[string, string, PasswordSpec]
}

var _ schematype.Schema[string, string, PasswordSpec] = (*Password)(nil)

// NewPassword returns a Password named "password".
func NewPassword() *Password {
	p := &Password{}
	p.Contract = schematype.Mixin[string, string, PasswordSpec]("password", p)
	return p
}

// Validate checks length and that the algorithm and its settings are usable.
func (p *Password) Validate(value string, spec PasswordSpec) error {
	minLen := spec.MinLength
	if minLen <= 0 {
		minLen = defaultMinLength
	}
	if err := p.Assert(len(value) >= minLen, fmt.Sprintf("expected at least %d bytes but got %d", minLen, len(value)), schematype.Properties{
		Actual:   len(value),
		Expected: minLen,
		Operator: schematype.OpGreaterEqual,
	}); err != nil {
		return err
	}

	switch spec.Algorithm {
	case "", AlgoBcrypt:
		if spec.Cost != 0 && (spec.Cost < bcrypt.MinCost || spec.Cost > bcrypt.MaxCost) {
			return fmt.Errorf("%w: bcrypt cost %d", ErrInvalidSpec, spec.Cost)
		}
		return p.Assert(len(value) <= bcryptMaxBytes, fmt.Sprintf("expected at most %d bytes but got %d", bcryptMaxBytes, len(value)), schematype.Properties{
			Actual:   len(value),
			Expected: bcryptMaxBytes,
			Operator: schematype.OpLessEqual,
		})
	case AlgoArgon2:
		return nil
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalidSpec, spec.Algorithm)
	}
}

// Cast hashes value with the spec algorithm.
func (p *Password) Cast(value string, spec PasswordSpec) (string, error) {
	switch spec.Algorithm {
	case "", AlgoBcrypt:
		cost := spec.Cost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(value), cost)
		if err != nil {
			return "", fmt.Errorf("bcrypt hash failed: %w", err)
		}
		return string(hash), nil
	case AlgoArgon2:
		params := DefaultArgon2Params()
		if spec.Argon2 != nil {
			params = *spec.Argon2
		}
		return hashArgon2([]byte(value), params)
	default:
		return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidSpec, spec.Algorithm)
	}
}

// Matches reports whether plaintext hashes to hash. The scheme is read from
// the hash itself.
func (p *Password) Matches(hash, plaintext string) (bool, error) {
	if strings.HasPrefix(hash, argon2Prefix) {
		return matchArgon2(hash, []byte(plaintext))
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("bcrypt compare failed: %w", err)
	}
	return true, nil
}

// hashArgon2 encodes as $argon2id$v=19$m=65536,t=1,p=4$<salt>$<hash>.
func hashArgon2(plaintext []byte, params Argon2Params) (string, error) {
	salt := make([]byte, params.SaltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("failed to generate salt: %w", err)
	}

	key := argon2.IDKey(plaintext, salt, params.Time, params.Memory, params.Threads, params.KeyLen)

	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.Memory,
		params.Time,
		params.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func matchArgon2(encoded string, plaintext []byte) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 {
		return false, fmt.Errorf("%w: malformed argon2 hash", ErrInvalidSpec)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: argon2 version: %v", ErrInvalidSpec, err)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: argon2 version %d", ErrInvalidSpec, version)
	}

	var params Argon2Params
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.Memory, &params.Time, &params.Threads); err != nil {
		return false, fmt.Errorf("%w: argon2 params: %v", ErrInvalidSpec, err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: argon2 salt: %v", ErrInvalidSpec, err)
	}
	want, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: argon2 key: %v", ErrInvalidSpec, err)
	}

	//nolint:gosec // key length is bounded by the encoded hash
	got := argon2.IDKey(plaintext, salt, params.Time, params.Memory, params.Threads, uint32(len(want)))
	return subtle.ConstantTimeCompare(got, want) == 1, nil
}
