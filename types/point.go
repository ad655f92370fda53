package types

import (
	"fmt"
	"math"

	"github.com/zoobzio/schematype"
)

// Point is a planar coordinate.
type Point struct {
	X float64
	Y float64
}

// Order selects the component order of the wire pair.
type Order string

// Supported orders. The empty Order is OrderXY.
const (
	OrderXY Order = "xy"
	OrderYX Order = "yx"
)

// Rect is an inclusive bounding box.
type Rect struct {
	Min Point
	Max Point
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// PointSpec configures PointType.
type PointSpec struct {
	Order  Order
	Bounds *Rect
}

// PointType carries a Point as a [2]float64 pair. Unwrap is the exact
// inverse of Wrap for the same spec.
type PointType struct {
	schematype.Contract[Point, [2]float64, PointSpec]
}

var _ schematype.Schema[Point, [2]float64, PointSpec] = (*PointType)(nil)

// NewPoint returns a PointType named "point".
func NewPoint() *PointType {
	p := &PointType{}
	p.Contract = schematype.Mixin[Point, [2]float64, PointSpec]("point", p)
	return p
}

// Validate checks the order and that both coordinates are finite and in bounds.
func (p *PointType) Validate(value Point, spec PointSpec) error {
	if _, err := order(spec); err != nil {
		return err
	}

	finite := isFinite(value.X) && isFinite(value.Y)
	if err := p.Assert(finite, fmt.Sprintf("expected finite coordinates but got %v", value), schematype.Properties{
		Actual:   value,
		Expected: "finite",
		Operator: schematype.OpTypeOf,
	}); err != nil {
		return err
	}

	if spec.Bounds != nil {
		return p.Assert(spec.Bounds.Contains(value), fmt.Sprintf("expected %v to lie within %v", value, *spec.Bounds), schematype.Properties{
			Actual:   value,
			Expected: *spec.Bounds,
			Operator: schematype.OpIn,
		})
	}
	return nil
}

// Cast lays value out as a pair in spec order.
func (p *PointType) Cast(value Point, spec PointSpec) ([2]float64, error) {
	o, err := order(spec)
	if err != nil {
		return [2]float64{}, err
	}
	if o == OrderYX {
		return [2]float64{value.Y, value.X}, nil
	}
	return [2]float64{value.X, value.Y}, nil
}

// Extract reads a pair in spec order back into a Point.
func (p *PointType) Extract(wire [2]float64, spec PointSpec) (Point, error) {
	o, err := order(spec)
	if err != nil {
		return Point{}, err
	}
	if o == OrderYX {
		return Point{X: wire[1], Y: wire[0]}, nil
	}
	return Point{X: wire[0], Y: wire[1]}, nil
}

func order(spec PointSpec) (Order, error) {
	switch spec.Order {
	case "", OrderXY:
		return OrderXY, nil
	case OrderYX:
		return OrderYX, nil
	default:
		return "", fmt.Errorf("%w: unknown order %q", ErrInvalidSpec, spec.Order)
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
