package schematype

import (
	"context"
	"errors"
	"reflect"
	"time"
)

// Hooks is the capability set a concrete type supplies.
//
// Validate inspects a value against a spec and returns nil when it is
// acceptable. Cast produces the forward (wire) representation and Extract
// reverses it. Hooks are named apart from the public operations so a
// concrete type can embed a Contract and define its hooks on the same
// receiver.
type Hooks[V, W, S any] interface {
	// Validate returns nil when value is acceptable under spec.
	// Failures should be built with Assert.
	Validate(value V, spec S) error

	// Cast produces the wire representation of value.
	// When called through Wrap without SkipValidation, value has already
	// passed Validate.
	Cast(value V, spec S) (W, error)

	// Extract produces the logical value from its wire representation.
	Extract(wire W, spec S) (V, error)
}

// Schema is the public operation set every contract-bound type exposes.
type Schema[V, W, S any] interface {
	// Name returns the identifying label of the type.
	Name() string

	// Rejected runs validation and returns nil or the failure.
	Rejected(value V, spec S) error

	// Valid reports whether Rejected returns nil.
	Valid(value V, spec S) bool

	// Wrap validates value (unless SkipValidation is given) and casts it.
	Wrap(value V, spec S, opts ...WrapOption) (W, error)

	// Unwrap extracts the logical value from wire without validating.
	Unwrap(wire W, spec S) (V, error)

	// Assert returns a normalized failure when test is false.
	Assert(test bool, message string, props Properties) error
}

var _ Schema[any, any, any] = (*Contract[any, any, any])(nil)

// Contract implements the validate/transform protocol around a set of hooks.
//
// A Contract is immutable after construction and safe for concurrent use as
// long as its hooks are.
type Contract[V, W, S any] struct {
	name  string
	hooks Hooks[V, W, S]
}

// New creates a Contract for use by delegation or standalone.
//
//	type Enum struct {
//	    *schematype.Contract[string, int, EnumSpec]
//	}
//
//	func NewEnum() *Enum {
//	    e := &Enum{}
//	    e.Contract = schematype.New[string, int, EnumSpec]("enum", enumHooks{})
//	    return e
//	}
//
// A nil hooks value is replaced by Unimplemented, so every operation fails
// with ErrNotImplemented.
func New[V, W, S any](name string, hooks Hooks[V, W, S]) *Contract[V, W, S] {
	c := newContract(name, hooks)
	emitContractCreated(context.Background(), name, modeBase)
	return &c
}

// Mixin returns an independent Contract value meant to be embedded by value.
// The embedding type gains every public operation through method promotion
// and usually passes itself as hooks:
//
//	type Custom struct {
//	    schematype.Contract[any, string, CaseSpec]
//	}
//
//	func NewCustom() *Custom {
//	    c := &Custom{}
//	    c.Contract = schematype.Mixin[any, string, CaseSpec]("custom", c)
//	    return c
//	}
//
// Each call yields a separate copy; mixed-in types share nothing.
func Mixin[V, W, S any](name string, hooks Hooks[V, W, S]) Contract[V, W, S] {
	c := newContract(name, hooks)
	emitContractCreated(context.Background(), name, modeMixin)
	return c
}

func newContract[V, W, S any](name string, hooks Hooks[V, W, S]) Contract[V, W, S] {
	if hooks == nil {
		hooks = Unimplemented[V, W, S]{}
	}
	return Contract[V, W, S]{name: name, hooks: hooks}
}

// Name returns the identifying label set at construction.
func (c *Contract[V, W, S]) Name() string {
	return c.name
}

// Rejected invokes the Validate hook and returns nil on success or the
// failure it produced. The failure is returned unchanged. A fresh failure
// built by Assert without a topic gets the value under test attached; failure
// values the hook owns are never modified. A typed nil error counts as
// success. A panicking hook is recovered, so Rejected never panics.
func (c *Contract[V, W, S]) Rejected(value V, spec S) (err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = recovered(c.name, HookValidate, r)
		} else {
			err = settle(err, c.name)
		}
		attachTopic(err, value)
		emitValidateComplete(context.Background(), c.name, time.Since(start), err)
	}()
	return c.hooksOrDefault().Validate(value, spec)
}

// Valid reports whether value passes validation under spec.
func (c *Contract[V, W, S]) Valid(value V, spec S) bool {
	return c.Rejected(value, spec) == nil
}

// Wrap runs the forward transform. Validation runs first unless
// SkipValidation is given; an invalid value returns the same failure
// Rejected would and the Cast hook is not called. Cast failures are
// returned unchanged.
func (c *Contract[V, W, S]) Wrap(value V, spec S, opts ...WrapOption) (W, error) {
	o := applyWrapOptions(opts)
	if o.validate {
		if err := c.Rejected(value, spec); err != nil {
			var zero W
			return zero, err
		}
	}
	return c.cast(value, spec)
}

// Unwrap runs the backward transform. It never validates.
func (c *Contract[V, W, S]) Unwrap(wire W, spec S) (value V, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			emitUnwrapComplete(context.Background(), c.name, time.Since(start), recovered(c.name, HookExtract, r))
			panic(r)
		}
		err = settle(err, c.name)
		emitUnwrapComplete(context.Background(), c.name, time.Since(start), err)
	}()
	return c.hooksOrDefault().Extract(wire, spec)
}

// Assert returns nil when test holds, otherwise an *AssertionError. Inside a
// Validate hook called through Rejected the failure's topic is filled with
// the value under test.
func (c *Contract[V, W, S]) Assert(test bool, message string, props Properties) error {
	return Assert(test, message, props)
}

func (c *Contract[V, W, S]) cast(value V, spec S) (wire W, err error) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			emitWrapComplete(context.Background(), c.name, time.Since(start), recovered(c.name, HookCast, r))
			panic(r)
		}
		err = settle(err, c.name)
		emitWrapComplete(context.Background(), c.name, time.Since(start), err)
	}()
	return c.hooksOrDefault().Cast(value, spec)
}

// hooksOrDefault guards the zero Contract, which has no hooks.
func (c *Contract[V, W, S]) hooksOrDefault() Hooks[V, W, S] {
	if c.hooks == nil {
		return Unimplemented[V, W, S]{}
	}
	return c.hooks
}

// recovered converts a recovered panic value into an error.
func recovered(contract, hook string, r any) error {
	if err, ok := r.(error); ok && !isNilError(err) {
		return err
	}
	return newHookError(ErrPanic, contract, hook, r)
}

// settle maps a typed nil hook result to nil and names a HookError raised
// without a contract, as Unimplemented does.
func settle(err error, contract string) error {
	if isNilError(err) {
		return nil
	}
	var he *HookError
	if errors.As(err, &he) && he != nil && he.Contract == "" {
		he.Contract = contract
	}
	return err
}

func isNilError(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// attachTopic records value as the topic of a fresh Assert failure.
// The mark is consumed, so a failure is stamped at most once.
func attachTopic(err error, value any) {
	var ae *AssertionError
	if errors.As(err, &ae) && ae != nil && ae.fresh {
		ae.fresh = false
		ae.Topic = value
	}
}

// WrapOption configures a single Wrap call.
type WrapOption func(*wrapOptions)

type wrapOptions struct {
	validate bool
}

// SkipValidation disables the validation that Wrap runs before Cast.
// The Cast hook then sees the raw value and any failure is its own.
func SkipValidation() WrapOption {
	return func(o *wrapOptions) { o.validate = false }
}

func applyWrapOptions(opts []WrapOption) wrapOptions {
	o := wrapOptions{validate: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
