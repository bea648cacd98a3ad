package spindle_test

import (
	"errors"
	"testing"

	"github.com/danpasecinic/spindle"
)

func TestErrorFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *spindle.Error
		want string
	}{
		{
			name: "bare",
			err:  &spindle.Error{Code: spindle.ErrCodeUnknown, Message: "boom"},
			want: "[UNKNOWN] boom",
		},
		{
			name: "with key",
			err:  &spindle.Error{Code: spindle.ErrCodeProviderNotReady, Message: "not ready", Key: "pkg.Service"},
			want: `[PROVIDER_NOT_READY] key="pkg.Service": not ready`,
		},
		{
			name: "with cause",
			err:  &spindle.Error{Code: spindle.ErrCodeNilDelegate, Message: "bad delegate", Cause: errors.New("inner")},
			want: "[NIL_DELEGATE] bad delegate: inner",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorCodeString(t *testing.T) {
	t.Parallel()

	if got := spindle.ErrCodeProviderNotReady.String(); got != "PROVIDER_NOT_READY" {
		t.Errorf("String() = %q", got)
	}
	if got := spindle.ErrCodeDelegateAlreadySet.String(); got != "DELEGATE_ALREADY_SET" {
		t.Errorf("String() = %q", got)
	}
	if got := spindle.ErrorCode(99).String(); got != "UNKNOWN(99)" {
		t.Errorf("String() = %q", got)
	}
}

func TestErrorIsMatchesByCode(t *testing.T) {
	t.Parallel()

	_, provider := recordLookup(t)
	_, err := provider.Get()

	if !errors.Is(err, &spindle.Error{Code: spindle.ErrCodeProviderNotReady}) {
		t.Errorf("err = %v, want it to match by code", err)
	}
	if errors.Is(err, &spindle.Error{Code: spindle.ErrCodeNilDelegate}) {
		t.Errorf("err = %v, want no match for a different code", err)
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("inner failure")
	err := &spindle.Error{Code: spindle.ErrCodeUnknown, Message: "wrapper", Cause: cause}

	if !errors.Is(err, cause) {
		t.Errorf("expected the cause to be reachable through Unwrap")
	}
}

func TestErrorWithKey(t *testing.T) {
	t.Parallel()

	err := (&spindle.Error{Code: spindle.ErrCodeUnknown, Message: "boom"}).WithKey("pkg.Service")

	if err.Key != "pkg.Service" {
		t.Errorf("Key = %q", err.Key)
	}
}

func TestPredicatesRejectForeignErrors(t *testing.T) {
	t.Parallel()

	plain := errors.New("not a spindle error")

	if spindle.IsProviderNotReady(plain) {
		t.Error("IsProviderNotReady matched a foreign error")
	}
	if spindle.IsDelegateAlreadySet(plain) {
		t.Error("IsDelegateAlreadySet matched a foreign error")
	}
	if spindle.IsNilDelegate(nil) {
		t.Error("IsNilDelegate matched nil")
	}
}
