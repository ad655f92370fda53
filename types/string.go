// Package types provides ready-made consumers of the schematype contract.
//
// String, Point, Password and Masked acquire the contract by mixin. Number,
// Enum, Sealed and Record hold a *Contract and delegate to it.
package types

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/zoobzio/schematype"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Case selects the casing String applies on wrap.
type Case string

// Supported casings.
const (
	CaseNone  Case = ""
	CaseUpper Case = "upper"
	CaseLower Case = "lower"
	CaseTitle Case = "title"
)

// StringSpec configures String.
type StringSpec struct {
	Case      Case
	Language  language.Tag // casing rules; zero means language.Und
	MinLength int          // in runes
	MaxLength int          // in runes, 0 for unbounded
	Pattern   string
	Trim      bool
}

// String validates and normalises text. Casing is lossy, so Unwrap hands the
// wire value back unchanged.
type String struct {
	schematype.Contract[string, string, StringSpec]
}

var _ schematype.Schema[string, string, StringSpec] = (*String)(nil)

// NewString returns a String named "string".
func NewString() *String {
	s := &String{}
	s.Contract = schematype.Mixin[string, string, StringSpec]("string", s)
	return s
}

// Validate checks length and pattern against the value as it will be cast.
func (s *String) Validate(value string, spec StringSpec) error {
	if spec.Trim {
		value = strings.TrimSpace(value)
	}

	if _, err := caser(spec); err != nil {
		return err
	}

	n := utf8.RuneCountInString(value)
	if err := s.Assert(n >= spec.MinLength, fmt.Sprintf("expected at least %d characters but got %d", spec.MinLength, n), schematype.Properties{
		Actual:   n,
		Expected: spec.MinLength,
		Operator: schematype.OpGreaterEqual,
	}); err != nil {
		return err
	}

	if spec.MaxLength > 0 {
		if err := s.Assert(n <= spec.MaxLength, fmt.Sprintf("expected at most %d characters but got %d", spec.MaxLength, n), schematype.Properties{
			Actual:   n,
			Expected: spec.MaxLength,
			Operator: schematype.OpLessEqual,
		}); err != nil {
			return err
		}
	}

	if spec.Pattern != "" {
		re, err := regexp.Compile(spec.Pattern)
		if err != nil {
			return fmt.Errorf("%w: pattern %q: %v", ErrInvalidSpec, spec.Pattern, err)
		}
		return s.Assert(re.MatchString(value), fmt.Sprintf("expected %q to match %s", value, spec.Pattern), schematype.Properties{
			Actual:   value,
			Expected: spec.Pattern,
			Operator: schematype.OpMatch,
		})
	}
	return nil
}

// Cast trims and re-cases value.
func (s *String) Cast(value string, spec StringSpec) (string, error) {
	if spec.Trim {
		value = strings.TrimSpace(value)
	}
	c, err := caser(spec)
	if err != nil {
		return "", err
	}
	if c == nil {
		return value, nil
	}
	return c.String(value), nil
}

// Extract returns wire as is.
func (s *String) Extract(wire string, _ StringSpec) (string, error) {
	return wire, nil
}

func caser(spec StringSpec) (*cases.Caser, error) {
	var c cases.Caser
	switch spec.Case {
	case CaseNone:
		return nil, nil
	case CaseUpper:
		c = cases.Upper(spec.Language)
	case CaseLower:
		c = cases.Lower(spec.Language)
	case CaseTitle:
		c = cases.Title(spec.Language)
	default:
		return nil, fmt.Errorf("%w: unknown case %q", ErrInvalidSpec, spec.Case)
	}
	return &c, nil
}
