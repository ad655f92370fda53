package schematype

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for contract and processor events.
var (
	SignalContractCreated  = capitan.NewSignal("schematype.contract.created", "Contract acquired by a type")
	SignalValidateComplete = capitan.NewSignal("schematype.validate.complete", "Validate hook finished")
	SignalWrapComplete     = capitan.NewSignal("schematype.wrap.complete", "Forward transform finished")
	SignalUnwrapComplete   = capitan.NewSignal("schematype.unwrap.complete", "Backward transform finished")
	SignalEncodeStart      = capitan.NewSignal("schematype.encode.start", "Encode operation beginning")
	SignalEncodeComplete   = capitan.NewSignal("schematype.encode.complete", "Encode operation finished")
	SignalDecodeStart      = capitan.NewSignal("schematype.decode.start", "Decode operation beginning")
	SignalDecodeComplete   = capitan.NewSignal("schematype.decode.complete", "Decode operation finished")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeyMode        = capitan.NewStringKey("mode")
	KeyHook        = capitan.NewStringKey("hook")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// Acquisition modes reported with SignalContractCreated.
const (
	modeBase  = "base"
	modeMixin = "mixin"
	modeBound = "bound"
)

// emitContractCreated emits an event when a type acquires the contract.
func emitContractCreated(ctx context.Context, typeName, mode string) {
	capitan.Emit(ctx, SignalContractCreated,
		KeyTypeName.Field(typeName),
		KeyMode.Field(mode),
	)
}

// hookFields builds the shared fields for a hook completion event.
func hookFields(typeName, hook string, duration time.Duration, err error) []capitan.Field {
	fields := []capitan.Field{
		KeyTypeName.Field(typeName),
		KeyHook.Field(hook),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
	}
	return fields
}

// emitValidateComplete emits an event when the validate hook finishes.
func emitValidateComplete(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := hookFields(typeName, HookValidate, duration, err)
	if err != nil {
		capitan.Error(ctx, SignalValidateComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalValidateComplete, fields...)
	}
}

// emitWrapComplete emits an event when the forward transform finishes.
func emitWrapComplete(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := hookFields(typeName, HookCast, duration, err)
	if err != nil {
		capitan.Error(ctx, SignalWrapComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalWrapComplete, fields...)
	}
}

// emitUnwrapComplete emits an event when the backward transform finishes.
func emitUnwrapComplete(ctx context.Context, typeName string, duration time.Duration, err error) {
	fields := hookFields(typeName, HookExtract, duration, err)
	if err != nil {
		capitan.Error(ctx, SignalUnwrapComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalUnwrapComplete, fields...)
	}
}

// emitEncodeStart emits an event when encode begins.
func emitEncodeStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalEncodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitEncodeComplete emits an event when encode finishes.
func emitEncodeComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalEncodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalEncodeComplete, fields...)
	}
}

// emitDecodeStart emits an event when decode begins.
func emitDecodeStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalDecodeStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitDecodeComplete emits an event when decode finishes.
func emitDecodeComplete(ctx context.Context, contentType, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalDecodeComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalDecodeComplete, fields...)
	}
}
