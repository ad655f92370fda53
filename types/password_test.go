package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/zoobzio/schematype"
	"golang.org/x/crypto/bcrypt"
)

var fastArgon2 = &Argon2Params{Time: 1, Memory: 8 * 1024, Threads: 1, KeyLen: 32, SaltLen: 16}

func TestPassword_Bcrypt(t *testing.T) {
	p := NewPassword()
	spec := PasswordSpec{Cost: bcrypt.MinCost}

	hash, err := p.Wrap("correct horse", spec)
	if err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	if !strings.HasPrefix(hash, "$2a$") {
		t.Errorf("hash %q is not bcrypt", hash)
	}

	ok, err := p.Matches(hash, "correct horse")
	if err != nil || !ok {
		t.Errorf("Matches(correct) = %v, %v", ok, err)
	}
	ok, err = p.Matches(hash, "battery staple")
	if err != nil || ok {
		t.Errorf("Matches(wrong) = %v, %v", ok, err)
	}
}

func TestPassword_Argon2(t *testing.T) {
	p := NewPassword()
	spec := PasswordSpec{Algorithm: AlgoArgon2, Argon2: fastArgon2}

	first, err := p.Wrap("correct horse", spec)
	if err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	second, err := p.Wrap("correct horse", spec)
	if err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	if !strings.HasPrefix(first, "$argon2id$v=19$m=8192,t=1,p=1$") {
		t.Errorf("unexpected encoding %q", first)
	}
	if first == second {
		t.Error("hashes should differ by salt")
	}

	ok, err := p.Matches(first, "correct horse")
	if err != nil || !ok {
		t.Errorf("Matches(correct) = %v, %v", ok, err)
	}
	ok, err = p.Matches(second, "wrong horse")
	if err != nil || ok {
		t.Errorf("Matches(wrong) = %v, %v", ok, err)
	}

	if _, err := p.Matches("$argon2id$broken", "x"); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("Matches(malformed) = %v, want ErrInvalidSpec", err)
	}
}

func TestPassword_Rejected(t *testing.T) {
	p := NewPassword()

	tests := []struct {
		name  string
		value string
		spec  PasswordSpec
	}{
		{"default minimum", "short", PasswordSpec{}},
		{"custom minimum", "twelve chars", PasswordSpec{MinLength: 13}},
		{"bcrypt limit", strings.Repeat("a", 73), PasswordSpec{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Rejected(tt.value, tt.spec); !errors.Is(err, schematype.ErrAssertion) {
				t.Errorf("Rejected() = %v, want assertion failure", err)
			}
		})
	}

	if !p.Valid(strings.Repeat("a", 73), PasswordSpec{Algorithm: AlgoArgon2}) {
		t.Error("argon2 has no input limit")
	}
	if err := p.Rejected("long enough", PasswordSpec{Cost: 99}); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("bad cost: %v, want ErrInvalidSpec", err)
	}
	if err := p.Rejected("long enough", PasswordSpec{Algorithm: "md5"}); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("bad algorithm: %v, want ErrInvalidSpec", err)
	}
}

func TestPassword_UnwrapNotImplemented(t *testing.T) {
	p := NewPassword()

	_, err := p.Unwrap("$2a$04$whatever", PasswordSpec{})
	if !errors.Is(err, schematype.ErrNotImplemented) {
		t.Fatalf("Unwrap() = %v, want ErrNotImplemented", err)
	}
	var he *schematype.HookError
	if !errors.As(err, &he) || he.Hook != schematype.HookExtract || he.Contract != "password" {
		t.Errorf("Unwrap() = %#v, want extract HookError from password", err)
	}
	if !strings.HasPrefix(err.Error(), "password: extract") {
		t.Errorf("Error() = %q, want it to name the type", err.Error())
	}
}
