package xml

import (
	"strings"
	"testing"
)

type wirePoint struct {
	X float64 `xml:"x"`
	Y float64 `xml:"y"`
}

func TestContentType(t *testing.T) {
	c := New()
	if c.ContentType() != "application/xml" {
		t.Errorf("ContentType() = %q, want %q", c.ContentType(), "application/xml")
	}
}

func TestMarshalUnmarshal_String(t *testing.T) {
	c := New()

	data, err := c.Marshal("HELLO UNIVERSE")
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != "<string>HELLO UNIVERSE</string>" {
		t.Errorf("Marshal() = %s", data)
	}

	var restored string
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != "HELLO UNIVERSE" {
		t.Errorf("round-trip failed: got %q", restored)
	}
}

func TestMarshalUnmarshal_Struct(t *testing.T) {
	c := New()

	original := wirePoint{X: 1.5, Y: -2}
	data, err := c.Marshal(original)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var restored wirePoint
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored != original {
		t.Errorf("round-trip failed: got %+v, want %+v", restored, original)
	}
}

func TestMarshalNil(t *testing.T) {
	c := New(WithHeader())

	data, err := c.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal(nil) error: %v", err)
	}

	// No element, so no declaration either.
	if len(data) != 0 {
		t.Errorf("Marshal(nil) = %q, want empty", data)
	}
}

func TestWithHeader(t *testing.T) {
	c := New(WithHeader())

	data, err := c.Marshal(wirePoint{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.HasPrefix(string(data), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("Marshal() missing declaration: %s", data)
	}

	var restored wirePoint
	if err := c.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if restored.X != 1 || restored.Y != 2 {
		t.Errorf("round-trip failed: got %+v", restored)
	}
}

func TestWithIndent(t *testing.T) {
	c := New(WithIndent("  "))

	data, err := c.Marshal(wirePoint{X: 1, Y: 2})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := "<wirePoint>\n  <x>1</x>\n  <y>2</y>\n</wirePoint>"
	if string(data) != want {
		t.Errorf("Marshal() = %q, want %q", data, want)
	}
}

func TestUnmarshal_Malformed(t *testing.T) {
	c := New()

	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unclosed tag", "<wirePoint><x>1</wirePoint>"},
		{"mismatched tags", "<wirePoint></wrong>"},
		{"type mismatch", "<wirePoint><x>not_a_number</x></wirePoint>"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var v wirePoint
			if err := c.Unmarshal([]byte(tc.input), &v); err == nil {
				t.Errorf("Unmarshal(%q) should return error", tc.input)
			}
		})
	}
}

func TestMarshal_SpecialCharacters(t *testing.T) {
	c := New()

	for _, input := range []string{"rock & roll", "a < b", `say "hello"`, "日本語"} {
		data, err := c.Marshal(input)
		if err != nil {
			t.Fatalf("Marshal(%q) error: %v", input, err)
		}
		var restored string
		if err := c.Unmarshal(data, &restored); err != nil {
			t.Fatalf("Unmarshal() error: %v", err)
		}
		if restored != input {
			t.Errorf("round-trip failed for %q: got %q", input, restored)
		}
	}
}
