// Package schematype defines the contract shared by typed schema values:
// validation plus a bidirectional transform between a logical value and its
// wire representation.
//
// Concrete types (strings, numbers, points, enumerations) supply three hooks
// and gain the public operations from the contract.
//
// # Hooks
//
//	Validate(value V, spec S) error     - accept or reject a value
//	Cast(value V, spec S) (W, error)    - logical -> wire
//	Extract(wire W, spec S) (V, error)  - wire -> logical
//
// # Operations
//
//	Rejected(value, spec)        - nil or the validation failure, never panics
//	Valid(value, spec)           - Rejected(value, spec) == nil
//	Wrap(value, spec, opts...)   - validate, then Cast
//	Unwrap(wire, spec)           - Extract, no validation
//	Assert(test, msg, props)     - build a normalized *AssertionError
//
// Wrap validates by default. Skipping it is an explicit caller choice:
//
//	wire, err := t.Wrap(value, spec, schematype.SkipValidation())
//
// # Acquiring the Contract
//
// By delegation, holding a *Contract built with New:
//
//	type Enum struct {
//	    *schematype.Contract[string, int, EnumSpec]
//	}
//
// By mixin, embedding the value returned by Mixin and passing the type
// itself as hooks:
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
// Or bound to a single value and spec with NewBound.
//
// # Failures
//
// Validation failures are *AssertionError values carrying Message, Actual,
// Expected, Operator and Topic. Rejected and Valid never let a failure
// escape as a panic; Wrap and Unwrap always return hook failures unchanged.
// Missing hooks fail with ErrNotImplemented.
//
//	var ae *schematype.AssertionError
//	if errors.As(err, &ae) {
//	    fmt.Println(ae.Name(), ae.Expected, ae.Operator, ae.Topic)
//	}
//
// # Observability
//
// Every hook invocation emits a capitan signal (SignalValidateComplete,
// SignalWrapComplete, SignalUnwrapComplete). Emission never changes results.
//
// # Codec Providers
//
// Processor pairs a Schema with a Codec to move values across a byte
// boundary. The following codec implementations are available:
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson), scalars wrapped as {v: value}
//   - toml - TOML encoding (application/toml), scalars stored under key v
//
// Ready-made consumer types live in the types subpackage: String, Number,
// Point, Enum, UUID, Password, Masked, Sealed and Record.
package schematype
