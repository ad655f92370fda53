package schematype

var _ Hooks[any, any, any] = Unimplemented[any, any, any]{}

// Unimplemented provides fail-fast hook bodies.
//
// Embed it in a concrete type that intentionally leaves a hook out, for
// example a one-way transform with no Extract. Every method returns a
// *HookError wrapping ErrNotImplemented; none of them is a silent no-op.
type Unimplemented[V, W, S any] struct{}

// Validate always fails with ErrNotImplemented.
func (Unimplemented[V, W, S]) Validate(V, S) error {
	return newHookError(ErrNotImplemented, "", HookValidate, nil)
}

// Cast always fails with ErrNotImplemented.
func (Unimplemented[V, W, S]) Cast(V, S) (W, error) {
	var zero W
	return zero, newHookError(ErrNotImplemented, "", HookCast, nil)
}

// Extract always fails with ErrNotImplemented.
func (Unimplemented[V, W, S]) Extract(W, S) (V, error) {
	var zero V
	return zero, newHookError(ErrNotImplemented, "", HookExtract, nil)
}
