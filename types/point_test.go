package types

import (
	"errors"
	"math"
	"testing"

	"github.com/zoobzio/schematype"
)

func TestPoint_Order(t *testing.T) {
	p := NewPoint()
	v := Point{X: 1.5, Y: -2}

	tests := []struct {
		order Order
		want  [2]float64
	}{
		{"", [2]float64{1.5, -2}},
		{OrderXY, [2]float64{1.5, -2}},
		{OrderYX, [2]float64{-2, 1.5}},
	}
	for _, tt := range tests {
		t.Run(string(tt.order), func(t *testing.T) {
			spec := PointSpec{Order: tt.order}
			wire, err := p.Wrap(v, spec)
			if err != nil {
				t.Fatalf("Wrap() error: %v", err)
			}
			if wire != tt.want {
				t.Errorf("Wrap() = %v, want %v", wire, tt.want)
			}
			back, err := p.Unwrap(wire, spec)
			if err != nil {
				t.Fatalf("Unwrap() error: %v", err)
			}
			if back != v {
				t.Errorf("Unwrap() = %v, want %v", back, v)
			}
		})
	}
}

func TestPoint_Bounds(t *testing.T) {
	p := NewPoint()
	spec := PointSpec{Bounds: &Rect{Min: Point{0, 0}, Max: Point{10, 10}}}

	if !p.Valid(Point{10, 0}, spec) {
		t.Error("edge point should be inside inclusive bounds")
	}

	err := p.Rejected(Point{11, 5}, spec)
	var ae *schematype.AssertionError
	if !errors.As(err, &ae) {
		t.Fatalf("Rejected() = %v, want *AssertionError", err)
	}
	if ae.Operator != schematype.OpIn {
		t.Errorf("Operator = %q, want in", ae.Operator)
	}
	if ae.Topic != (Point{11, 5}) {
		t.Errorf("Topic = %v", ae.Topic)
	}
}

func TestPoint_Invalid(t *testing.T) {
	p := NewPoint()

	if p.Valid(Point{math.NaN(), 0}, PointSpec{}) {
		t.Error("NaN coordinate should be rejected")
	}
	if err := p.Rejected(Point{}, PointSpec{Order: "zx"}); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("bad order: %v, want ErrInvalidSpec", err)
	}
	if _, err := p.Unwrap([2]float64{}, PointSpec{Order: "zx"}); !errors.Is(err, ErrInvalidSpec) {
		t.Errorf("Unwrap with bad order: %v, want ErrInvalidSpec", err)
	}
}
