package schematype

import "context"

// Binding holds the spec and value a Bound contract governs.
type Binding[V, S any] struct {
	Spec  S
	Value V
}

// Bound is a contract tied to one value and its spec, stored at construction.
type Bound[V, W, S any] struct {
	contract *Contract[V, W, S]
	binding  Binding[V, S]
}

// NewBound creates a contract bound to b.
//
//	name := schematype.NewBound[string, string, StringSpec]("string", hooks,
//	    schematype.Binding[string, StringSpec]{Spec: StringSpec{Case: "upper"}, Value: "hello"})
//	wire, err := name.Wrap()
func NewBound[V, W, S any](name string, hooks Hooks[V, W, S], b Binding[V, S]) *Bound[V, W, S] {
	c := newContract(name, hooks)
	emitContractCreated(context.Background(), name, modeBound)
	return &Bound[V, W, S]{contract: &c, binding: b}
}

// Name returns the identifying label of the type.
func (b *Bound[V, W, S]) Name() string {
	return b.contract.Name()
}

// Contract returns the underlying contract for calls with other values.
func (b *Bound[V, W, S]) Contract() *Contract[V, W, S] {
	return b.contract
}

// Spec returns the bound spec.
func (b *Bound[V, W, S]) Spec() S {
	return b.binding.Spec
}

// Value returns the bound value.
func (b *Bound[V, W, S]) Value() V {
	return b.binding.Value
}

// Rejected validates the bound value against the bound spec.
func (b *Bound[V, W, S]) Rejected() error {
	return b.contract.Rejected(b.binding.Value, b.binding.Spec)
}

// Valid reports whether the bound value passes validation.
func (b *Bound[V, W, S]) Valid() bool {
	return b.Rejected() == nil
}

// Wrap runs the forward transform on the bound value.
func (b *Bound[V, W, S]) Wrap(opts ...WrapOption) (W, error) {
	return b.contract.Wrap(b.binding.Value, b.binding.Spec, opts...)
}

// Unwrap runs the backward transform under the bound spec.
func (b *Bound[V, W, S]) Unwrap(wire W) (V, error) {
	return b.contract.Unwrap(wire, b.binding.Spec)
}

// Assert returns nil when test holds, otherwise an *AssertionError whose
// topic is the bound value.
func (b *Bound[V, W, S]) Assert(test bool, message string, props Properties) error {
	return assertTopic(test, message, props, b.binding.Value)
}
