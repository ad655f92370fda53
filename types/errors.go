package types

import "errors"

// Failures raised by the built-in types outside of validation.
var (
	ErrInvalidSpec = errors.New("invalid spec")
	ErrOutOfRange  = errors.New("out of range")
	ErrFieldType   = errors.New("field type mismatch")
	ErrNotStruct   = errors.New("record type must be a struct")
)
