package types

import (
	"fmt"
	"slices"

	"github.com/zoobzio/schematype"
)

// EnumSpec lists the allowed values in wire order.
type EnumSpec struct {
	Values []string
}

// Enum carries one of a fixed set of strings as its index.
type Enum struct {
	*schematype.Contract[string, int, EnumSpec]
}

// NewEnum returns an Enum named "enum".
func NewEnum() *Enum {
	return &Enum{
		Contract: schematype.New[string, int, EnumSpec]("enum", enumHooks{}),
	}
}

type enumHooks struct{}

func (enumHooks) Validate(value string, spec EnumSpec) error {
	if len(spec.Values) == 0 {
		return fmt.Errorf("%w: enum has no values", ErrInvalidSpec)
	}
	return schematype.Assert(slices.Contains(spec.Values, value), fmt.Sprintf("expected %q to be one of %v", value, spec.Values), schematype.Properties{
		Actual:   value,
		Expected: spec.Values,
		Operator: schematype.OpIn,
	})
}

func (enumHooks) Cast(value string, spec EnumSpec) (int, error) {
	i := slices.Index(spec.Values, value)
	if i < 0 {
		return 0, fmt.Errorf("%w: %q is not an enum value", ErrOutOfRange, value)
	}
	return i, nil
}

func (enumHooks) Extract(wire int, spec EnumSpec) (string, error) {
	if wire < 0 || wire >= len(spec.Values) {
		return "", fmt.Errorf("%w: index %d of %d values", ErrOutOfRange, wire, len(spec.Values))
	}
	return spec.Values[wire], nil
}
