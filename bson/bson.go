// Package bson provides a BSON codec for wire values.
//
// BSON documents must be objects at the top level. Struct and map values are
// encoded directly; any other wire value (string, number, array) is carried
// in a single-field envelope document {"v": value} and unpacked on decode.
package bson

import (
	"reflect"

	"github.com/zoobzio/schematype"
	"go.mongodb.org/mongo-driver/bson"
)

type envelope struct {
	Value any `bson:"v"`
}

type rawEnvelope struct {
	Value bson.RawValue `bson:"v"`
}

// bsonCodec implements schematype.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() schematype.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes v as BSON.
func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	if isDocument(reflect.TypeOf(v)) {
		return bson.Marshal(v)
	}
	return bson.Marshal(envelope{Value: v})
}

// Unmarshal decodes BSON data into v.
func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	rt := reflect.TypeOf(v)
	if rt != nil && rt.Kind() == reflect.Pointer && isDocument(rt.Elem()) {
		return bson.Unmarshal(data, v)
	}
	var env rawEnvelope
	if err := bson.Unmarshal(data, &env); err != nil {
		return err
	}
	return env.Value.Unmarshal(v)
}

// isDocument reports whether values of rt encode as a top-level BSON document.
func isDocument(rt reflect.Type) bool {
	if rt == nil {
		return false
	}
	for rt.Kind() == reflect.Pointer {
		rt = rt.Elem()
	}
	switch rt {
	case reflect.TypeOf(bson.D{}), reflect.TypeOf(bson.Raw{}):
		return true
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
