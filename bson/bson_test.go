package bson

import (
	"reflect"
	"testing"
)

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/bson" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/bson")
	}
}

func TestMarshalUnmarshal_Document(t *testing.T) {
	c := New()

	type TestStruct struct {
		Name  string `bson:"name"`
		Value int    `bson:"value"`
	}

	original := TestStruct{Name: "test", Value: 42}

	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored TestStruct
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalUnmarshal_Map(t *testing.T) {
	c := New()

	data, err := c.Marshal(map[string]any{"name": "test"})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored map[string]any
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored["name"] != "test" {
		t.Errorf("round-trip failed: got %+v", restored)
	}
}

func TestMarshalUnmarshal_Envelope(t *testing.T) {
	c := New()

	t.Run("string", func(t *testing.T) {
		data, err := c.Marshal("HELLO UNIVERSE")
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}
		var restored string
		if err := c.Unmarshal(data, &restored); err != nil {
			t.Fatalf("Unmarshal() error: %v", err)
		}
		if restored != "HELLO UNIVERSE" {
			t.Errorf("round-trip failed: got %q", restored)
		}
	})

	t.Run("float", func(t *testing.T) {
		data, err := c.Marshal(2.5)
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}
		var restored float64
		if err := c.Unmarshal(data, &restored); err != nil {
			t.Fatalf("Unmarshal() error: %v", err)
		}
		if restored != 2.5 {
			t.Errorf("round-trip failed: got %v", restored)
		}
	})

	t.Run("slice", func(t *testing.T) {
		data, err := c.Marshal([]float64{1, 2})
		if err != nil {
			t.Fatalf("Marshal() error: %v", err)
		}
		var restored []float64
		if err := c.Unmarshal(data, &restored); err != nil {
			t.Fatalf("Unmarshal() error: %v", err)
		}
		if len(restored) != 2 || restored[0] != 1 || restored[1] != 2 {
			t.Errorf("round-trip failed: got %v", restored)
		}
	})
}

func TestIsDocument(t *testing.T) {
	type doc struct{}

	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"struct", doc{}, true},
		{"struct pointer", &doc{}, true},
		{"string map", map[string]int{}, true},
		{"int map", map[int]string{}, false},
		{"string", "x", false},
		{"slice", []int{1}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := isDocument(reflect.TypeOf(tt.value))
			if got != tt.want {
				t.Errorf("isDocument(%T) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestUnmarshalInvalid(t *testing.T) {
	c := New()

	var v struct{}
	if err := c.Unmarshal([]byte("invalid bson"), &v); err == nil {
		t.Error("Unmarshal(invalid) should return error")
	}

	var s string
	if err := c.Unmarshal([]byte("invalid bson"), &s); err == nil {
		t.Error("Unmarshal(invalid) into scalar should return error")
	}
}
