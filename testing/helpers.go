// Package testing provides test utilities for schematype.
package testing

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/zoobzio/schematype"
)

// ErrTypeMismatch is returned by Custom.Cast when handed a non-string.
var ErrTypeMismatch = errors.New("type mismatch")

// CaseUpper selects uppercasing on wrap and lowercasing on unwrap.
const CaseUpper = "upper"

// CaseSpec is the spec understood by Custom.
type CaseSpec struct {
	Case string
}

// Upper returns the spec selecting CaseUpper.
func Upper() CaseSpec { return CaseSpec{Case: CaseUpper} }

// Custom is the reference consumer type, acquired by mixin. It accepts only
// strings; Wrap uppercases and Unwrap lowercases when the spec asks for it.
type Custom struct {
	schematype.Contract[any, string, CaseSpec]

	casts    atomic.Int64
	extracts atomic.Int64
}

var _ schematype.Schema[any, string, CaseSpec] = (*Custom)(nil)

// NewCustom returns a Custom named "custom".
func NewCustom() *Custom {
	c := &Custom{}
	c.Contract = schematype.Mixin[any, string, CaseSpec]("custom", c)
	return c
}

// Validate asserts value is a string.
func (c *Custom) Validate(value any, _ CaseSpec) error {
	_, ok := value.(string)
	return c.Assert(ok, fmt.Sprintf("expected type of string but got %T", value), schematype.Properties{
		Actual:   fmt.Sprintf("%T", value),
		Expected: "string",
		Operator: schematype.OpTypeOf,
	})
}

// Cast uppercases value under CaseUpper and returns it unchanged otherwise.
func (c *Custom) Cast(value any, spec CaseSpec) (string, error) {
	c.casts.Add(1)
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("cast %T: %w", value, ErrTypeMismatch)
	}
	if spec.Case == CaseUpper {
		return strings.ToUpper(s), nil
	}
	return s, nil
}

// Extract lowercases wire under CaseUpper and returns it unchanged otherwise.
func (c *Custom) Extract(wire string, spec CaseSpec) (any, error) {
	c.extracts.Add(1)
	if spec.Case == CaseUpper {
		return strings.ToLower(wire), nil
	}
	return wire, nil
}

// Casts returns how many times the Cast hook ran.
func (c *Custom) Casts() int {
	return int(c.casts.Load())
}

// Extracts returns how many times the Extract hook ran.
func (c *Custom) Extracts() int {
	return int(c.extracts.Load())
}

// customHooks carries the Custom rules for the delegation form.
type customHooks struct{}

func (customHooks) Validate(value any, _ CaseSpec) error {
	_, ok := value.(string)
	return schematype.Assert(ok, fmt.Sprintf("expected type of string but got %T", value), schematype.Properties{
		Actual:   fmt.Sprintf("%T", value),
		Expected: "string",
		Operator: schematype.OpTypeOf,
	})
}

func (customHooks) Cast(value any, spec CaseSpec) (string, error) {
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("cast %T: %w", value, ErrTypeMismatch)
	}
	if spec.Case == CaseUpper {
		return strings.ToUpper(s), nil
	}
	return s, nil
}

func (customHooks) Extract(wire string, spec CaseSpec) (any, error) {
	if spec.Case == CaseUpper {
		return strings.ToLower(wire), nil
	}
	return wire, nil
}

// DelegatedCustom applies the Custom rules by holding a *Contract.
type DelegatedCustom struct {
	*schematype.Contract[any, string, CaseSpec]
}

// NewDelegatedCustom returns a DelegatedCustom named "custom".
func NewDelegatedCustom() *DelegatedCustom {
	return &DelegatedCustom{
		Contract: schematype.New[any, string, CaseSpec]("custom", customHooks{}),
	}
}

// RequireAssertion fails the test unless err is an *AssertionError and
// returns it.
func RequireAssertion(tb testing.TB, err error) *schematype.AssertionError {
	tb.Helper()
	var ae *schematype.AssertionError
	if !errors.As(err, &ae) {
		tb.Fatalf("expected *AssertionError, got %T: %v", err, err)
	}
	return ae
}
