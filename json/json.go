// Package json provides a JSON codec for wire values.
package json

import (
	"bytes"
	"encoding/json"

	"github.com/zoobzio/schematype"
)

// Option configures the JSON codec.
type Option func(*jsonCodec)

// Strict rejects objects carrying fields the target does not declare.
func Strict() Option {
	return func(c *jsonCodec) { c.strict = true }
}

// jsonCodec implements schematype.Codec for JSON.
type jsonCodec struct {
	strict bool
}

// New returns a JSON codec.
func New(opts ...Option) schematype.Codec {
	c := &jsonCodec{}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	return "application/json"
}

// Marshal encodes v as JSON.
func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Unmarshal decodes JSON data into v.
func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	if !c.strict {
		return json.Unmarshal(data, v)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
