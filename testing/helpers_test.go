package testing

import (
	"errors"
	"testing"
)

func TestNewCustom(t *testing.T) {
	c := NewCustom()
	if c.Name() != "custom" {
		t.Errorf("Name() = %q, want %q", c.Name(), "custom")
	}
	if err := c.Rejected("hello universe", CaseSpec{}); err != nil {
		t.Errorf("Rejected(string) = %v, want nil", err)
	}
	if err := c.Rejected(42, CaseSpec{}); err == nil {
		t.Error("Rejected(42) should fail")
	}
}

func TestCustom_Counters(t *testing.T) {
	c := NewCustom()

	if _, err := c.Wrap("a", Upper()); err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	if _, err := c.Unwrap("A", Upper()); err != nil {
		t.Fatalf("Unwrap() error: %v", err)
	}

	if c.Casts() != 1 {
		t.Errorf("Casts() = %d, want 1", c.Casts())
	}
	if c.Extracts() != 1 {
		t.Errorf("Extracts() = %d, want 1", c.Extracts())
	}
}

func TestDelegatedCustom(t *testing.T) {
	c := NewDelegatedCustom()

	got, err := c.Wrap("hello universe", Upper())
	if err != nil {
		t.Fatalf("Wrap() error: %v", err)
	}
	if got != "HELLO UNIVERSE" {
		t.Errorf("Wrap() = %q, want %q", got, "HELLO UNIVERSE")
	}

	_, err = c.Wrap(42, Upper())
	ae := RequireAssertion(t, err)
	if ae.Topic != 42 {
		t.Errorf("Topic = %v, want 42", ae.Topic)
	}
}

func TestRequireAssertion(t *testing.T) {
	c := NewCustom()
	ae := RequireAssertion(t, c.Rejected(1.5, CaseSpec{}))
	if ae.Expected != "string" {
		t.Errorf("Expected = %v, want string", ae.Expected)
	}
	if errors.Is(ae, ErrTypeMismatch) {
		t.Error("assertion failure should not match ErrTypeMismatch")
	}
}
