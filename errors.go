package spindle

import (
	"errors"
	"fmt"
	"strings"
)

type ErrorCode uint16

const (
	ErrCodeUnknown ErrorCode = iota
	ErrCodeProviderNotReady
	ErrCodeDelegateAlreadySet
	ErrCodeNilDelegate
)

var codeNames = map[ErrorCode]string{
	ErrCodeUnknown:            "UNKNOWN",
	ErrCodeProviderNotReady:   "PROVIDER_NOT_READY",
	ErrCodeDelegateAlreadySet: "DELEGATE_ALREADY_SET",
	ErrCodeNilDelegate:        "NIL_DELEGATE",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", c)
}

type Error struct {
	Code    ErrorCode
	Message string
	Key     string
	Cause   error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("[%s]", e.Code))

	if e.Key != "" {
		b.WriteString(fmt.Sprintf(" key=%q:", e.Key))
	}

	b.WriteString(" ")
	b.WriteString(e.Message)

	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func (e *Error) Is(target error) bool {
	var t *Error
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

func (e *Error) WithKey(key string) *Error {
	e.Key = key
	return e
}

func newError(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

func errProviderNotReady(key Key) *Error {
	return newError(
		ErrCodeProviderNotReady,
		"provider cannot be used until the object graph has been created",
		nil,
	).WithKey(key.String())
}

func errDelegateAlreadySet(key Key) *Error {
	return newError(
		ErrCodeDelegateAlreadySet,
		"provider delegate is already initialized",
		nil,
	).WithKey(key.String())
}

func errNilDelegate(key Key) *Error {
	return newError(
		ErrCodeNilDelegate,
		"provider delegate must not be nil",
		nil,
	).WithKey(key.String())
}

func IsProviderNotReady(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeProviderNotReady
}

func IsDelegateAlreadySet(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeDelegateAlreadySet
}

func IsNilDelegate(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == ErrCodeNilDelegate
}
