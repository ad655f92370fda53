// Package yaml provides a YAML codec for wire values.
package yaml

import (
	"bytes"
	"errors"
	"io"

	"github.com/zoobzio/schematype"
	"gopkg.in/yaml.v3"
)

const defaultIndent = 2

// Option configures the YAML codec.
type Option func(*yamlCodec)

// WithIndent sets the number of spaces per nesting level.
func WithIndent(spaces int) Option {
	return func(c *yamlCodec) {
		if spaces > 0 {
			c.indent = spaces
		}
	}
}

// KnownFields rejects mappings carrying keys the target struct does not declare.
func KnownFields() Option {
	return func(c *yamlCodec) { c.knownFields = true }
}

// yamlCodec implements schematype.Codec for YAML.
type yamlCodec struct {
	indent      int
	knownFields bool
}

// New returns a YAML codec.
func New(opts ...Option) schematype.Codec {
	c := &yamlCodec{indent: defaultIndent}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// ContentType returns the MIME type for YAML.
func (c *yamlCodec) ContentType() string {
	return "application/yaml"
}

// Marshal encodes v as YAML.
func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(c.indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes YAML data into v. Empty input leaves v untouched.
func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(c.knownFields)
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
