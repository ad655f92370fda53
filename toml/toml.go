// Package toml provides a TOML codec for wire values.
//
// A TOML document is a table. Struct and string-keyed map values are encoded
// as the document itself; any other wire value is stored under the key "v".
package toml

import (
	"bytes"
	"errors"
	"reflect"

	"github.com/BurntSushi/toml"
	"github.com/zoobzio/schematype"
)

const valueKey = "v"

// ErrMissingValue is returned when a non-table value has no "v" key.
var ErrMissingValue = errors.New("toml: missing value key")

// tomlCodec implements schematype.Codec for TOML.
type tomlCodec struct{}

// New returns a TOML codec.
func New() schematype.Codec {
	return &tomlCodec{}
}

// ContentType returns the MIME type for TOML.
func (c *tomlCodec) ContentType() string {
	return "application/toml"
}

// Marshal encodes v as TOML.
func (c *tomlCodec) Marshal(v any) ([]byte, error) {
	if !isTable(reflect.TypeOf(v)) {
		v = map[string]any{valueKey: v}
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes TOML data into v.
func (c *tomlCodec) Unmarshal(data []byte, v any) error {
	rt := reflect.TypeOf(v)
	if rt != nil && rt.Kind() == reflect.Pointer && isTable(rt.Elem()) {
		return toml.Unmarshal(data, v)
	}

	var env map[string]toml.Primitive
	md, err := toml.Decode(string(data), &env)
	if err != nil {
		return err
	}
	prim, ok := env[valueKey]
	if !ok {
		return ErrMissingValue
	}
	return md.PrimitiveDecode(prim, v)
}

func isTable(rt reflect.Type) bool {
	if rt == nil {
		return false
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	switch rt.Kind() {
	case reflect.Struct:
		return true
	case reflect.Map:
		return rt.Key().Kind() == reflect.String
	default:
		return false
	}
}
