package types

import (
	"fmt"
	"math"

	"github.com/zoobzio/schematype"
)

// NumberSpec configures Number. Nil bounds are open.
type NumberSpec struct {
	Min       *float64
	Max       *float64
	Integer   bool
	Precision *int // decimal places kept on wrap
}

// Bound returns a pointer to v, for use in NumberSpec.
func Bound(v float64) *float64 { return &v }

// Places returns a pointer to n, for use in NumberSpec.Precision.
func Places(n int) *int { return &n }

// Number validates finite floats and rounds them on wrap.
type Number struct {
	*schematype.Contract[float64, float64, NumberSpec]
}

// NewNumber returns a Number named "number".
func NewNumber() *Number {
	return &Number{
		Contract: schematype.New[float64, float64, NumberSpec]("number", numberHooks{}),
	}
}

type numberHooks struct{}

func (numberHooks) Validate(value float64, spec NumberSpec) error {
	if err := schematype.Assert(isFinite(value), fmt.Sprintf("expected a finite number but got %v", value), schematype.Properties{
		Actual:   value,
		Expected: "finite",
		Operator: schematype.OpTypeOf,
	}); err != nil {
		return err
	}

	if spec.Min != nil {
		if err := schematype.Assert(value >= *spec.Min, fmt.Sprintf("expected %v to be at least %v", value, *spec.Min), schematype.Properties{
			Actual:   value,
			Expected: *spec.Min,
			Operator: schematype.OpGreaterEqual,
		}); err != nil {
			return err
		}
	}

	if spec.Max != nil {
		if err := schematype.Assert(value <= *spec.Max, fmt.Sprintf("expected %v to be at most %v", value, *spec.Max), schematype.Properties{
			Actual:   value,
			Expected: *spec.Max,
			Operator: schematype.OpLessEqual,
		}); err != nil {
			return err
		}
	}

	if spec.Integer {
		return schematype.Assert(value == math.Trunc(value), fmt.Sprintf("expected an integer but got %v", value), schematype.Properties{
			Actual:   value,
			Expected: math.Trunc(value),
			Operator: schematype.OpEqual,
		})
	}
	return nil
}

func (numberHooks) Cast(value float64, spec NumberSpec) (float64, error) {
	if spec.Precision == nil {
		return value, nil
	}
	if *spec.Precision < 0 {
		return 0, fmt.Errorf("%w: negative precision %d", ErrInvalidSpec, *spec.Precision)
	}
	p := math.Pow10(*spec.Precision)
	scaled := value * p
	if !isFinite(scaled) {
		// More places than a float64 carries for this magnitude; nothing to round.
		return value, nil
	}
	return math.Round(scaled) / p, nil
}

func (numberHooks) Extract(wire float64, _ NumberSpec) (float64, error) {
	return wire, nil
}
