package schematype

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrAssertion indicates a value failed a validation assertion.
	ErrAssertion = errors.New("assertion failed")

	// ErrNotImplemented indicates a concrete type did not supply a required hook.
	ErrNotImplemented = errors.New("hook not implemented")

	// ErrPanic indicates a validate hook panicked with a non-error value.
	ErrPanic = errors.New("hook panicked")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// Hook names used in HookError and emitted signals.
const (
	HookValidate = "validate"
	HookCast     = "cast"
	HookExtract  = "extract"
)

// HookError represents a failure raised on behalf of an implementor hook.
// It wraps a sentinel error with the contract and hook that produced it.
type HookError struct {
	Err      error  // Underlying sentinel error (ErrNotImplemented, ErrPanic)
	Contract string // Name of the contract the hook belongs to
	Hook     string // Hook that failed (validate, cast, extract)
	Cause    any    // Recovered panic value, if any
}

func (e *HookError) Error() string {
	prefix := e.Hook
	if e.Contract != "" {
		prefix = fmt.Sprintf("%s: %s", e.Contract, e.Hook)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", prefix, e.Err.Error(), e.Cause)
	}
	return fmt.Sprintf("%s %s", prefix, e.Err.Error())
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newHookError creates a HookError for a missing or panicking hook.
func newHookError(sentinel error, contract, hook string, cause any) error {
	return &HookError{
		Err:      sentinel,
		Contract: contract,
		Hook:     hook,
		Cause:    cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
