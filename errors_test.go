package schematype

import (
	"errors"
	"testing"
)

func TestHookError_Is(t *testing.T) {
	err := newHookError(ErrNotImplemented, "point", HookCast, nil)

	if !errors.Is(err, ErrNotImplemented) {
		t.Error("HookError should unwrap to ErrNotImplemented")
	}

	if errors.Is(err, ErrPanic) {
		t.Error("HookError should not match ErrPanic")
	}
}

func TestHookError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "full context",
			err:  newHookError(ErrNotImplemented, "point", HookExtract, nil),
			want: "point: extract hook not implemented",
		},
		{
			name: "hook only",
			err:  newHookError(ErrNotImplemented, "", HookValidate, nil),
			want: "validate hook not implemented",
		},
		{
			name: "with cause",
			err:  newHookError(ErrPanic, "enum", HookValidate, "boom"),
			want: "enum: validate hook panicked: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodecError_Is(t *testing.T) {
	err := newCodecError(ErrUnmarshal, errors.New("invalid json"))

	if !errors.Is(err, ErrUnmarshal) {
		t.Error("CodecError should unwrap to ErrUnmarshal")
	}

	if errors.Is(err, ErrMarshal) {
		t.Error("CodecError should not match ErrMarshal")
	}
}

func TestCodecError_Message(t *testing.T) {
	withCause := newCodecError(ErrMarshal, errors.New("unsupported type"))
	if got := withCause.Error(); got != "marshal failed: unsupported type" {
		t.Errorf("Error() = %q", got)
	}

	bare := &CodecError{Err: ErrUnmarshal}
	if got := bare.Error(); got != "unmarshal failed" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorsAs(t *testing.T) {
	var he *HookError
	if !errors.As(newHookError(ErrPanic, "x", HookValidate, 1), &he) {
		t.Fatal("errors.As should find *HookError")
	}
	if he.Contract != "x" || he.Hook != HookValidate || he.Cause != 1 {
		t.Errorf("unexpected HookError fields: %+v", he)
	}

	var ce *CodecError
	if !errors.As(newCodecError(ErrMarshal, nil), &ce) {
		t.Fatal("errors.As should find *CodecError")
	}
}
