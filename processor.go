package schematype

import (
	"context"
	"time"
)

// Processor moves values of a schema across a codec boundary.
// Encode wraps then marshals; Decode unmarshals then unwraps.
//
// A Processor holds no mutable state and is safe for concurrent use when
// its schema and codec are.
type Processor[V, W, S any] struct {
	schema Schema[V, W, S]
	codec  Codec

	validateOnEncode bool
	validateOnDecode bool
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*processorOptions)

type processorOptions struct {
	skipValidation   bool
	validateOnDecode bool
}

// WithSkipValidation makes Encode cast without validating first.
func WithSkipValidation() ProcessorOption {
	return func(o *processorOptions) { o.skipValidation = true }
}

// WithValidateOnDecode makes Decode validate the unwrapped value.
// Unwrap itself never validates; this is an explicit opt-in.
func WithValidateOnDecode() ProcessorOption {
	return func(o *processorOptions) { o.validateOnDecode = true }
}

// NewProcessor creates a Processor for schema using codec.
func NewProcessor[V, W, S any](schema Schema[V, W, S], codec Codec, opts ...ProcessorOption) *Processor[V, W, S] {
	var o processorOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return &Processor[V, W, S]{
		schema:           schema,
		codec:            codec,
		validateOnEncode: !o.skipValidation,
		validateOnDecode: o.validateOnDecode,
	}
}

// ContentType returns the MIME type of the underlying codec.
func (p *Processor[V, W, S]) ContentType() string {
	return p.codec.ContentType()
}

// Encode wraps value under spec and marshals the wire representation.
// Validation failures and Cast errors are returned unchanged; marshal
// failures are returned as *CodecError.
func (p *Processor[V, W, S]) Encode(ctx context.Context, value V, spec S) ([]byte, error) {
	start := time.Now()
	emitEncodeStart(ctx, p.codec.ContentType(), p.schema.Name())

	var retErr error
	var retData []byte
	defer func() {
		emitEncodeComplete(ctx, p.codec.ContentType(), p.schema.Name(),
			len(retData), time.Since(start), retErr)
	}()

	var wrapOpts []WrapOption
	if !p.validateOnEncode {
		wrapOpts = append(wrapOpts, SkipValidation())
	}

	wire, err := p.schema.Wrap(value, spec, wrapOpts...)
	if err != nil {
		retErr = err
		return nil, retErr
	}

	data, err := p.codec.Marshal(wire)
	if err != nil {
		retErr = newCodecError(ErrMarshal, err)
		return nil, retErr
	}

	retData = data
	return retData, nil
}

// Decode unmarshals data into the wire representation and unwraps it under
// spec. Unmarshal failures are returned as *CodecError.
func (p *Processor[V, W, S]) Decode(ctx context.Context, data []byte, spec S) (V, error) {
	start := time.Now()
	emitDecodeStart(ctx, p.codec.ContentType(), p.schema.Name(), len(data))

	var retErr error
	defer func() {
		emitDecodeComplete(ctx, p.codec.ContentType(), p.schema.Name(),
			time.Since(start), retErr)
	}()

	var zero V
	var wire W
	if err := p.codec.Unmarshal(data, &wire); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return zero, retErr
	}

	value, err := p.schema.Unwrap(wire, spec)
	if err != nil {
		retErr = err
		return zero, retErr
	}

	if p.validateOnDecode {
		if err := p.schema.Rejected(value, spec); err != nil {
			retErr = err
			return zero, retErr
		}
	}

	return value, nil
}
