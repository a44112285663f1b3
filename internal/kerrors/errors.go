// Package kerrors defines the three failure classes surfaced by the
// transaction layer: bad builder input, malformed wire bytes and rejected
// signatures. Every error returned by the core packages matches exactly one
// of ErrValidation, ErrDecode or ErrSignature under errors.Is.
package kerrors

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation error")
	// ErrDecode is matched by every *DecodeError.
	ErrDecode = errors.New("decode error")
	// ErrSignature is matched by every *SignatureError.
	ErrSignature = errors.New("signature error")
)

// ValidationError reports input rejected before any value was constructed.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// DecodeError reports malformed wire or textual encodings.
type DecodeError struct {
	Msg string
	Err error
}

func (e *DecodeError) Error() string {
	if e.Err != nil && e.Msg != "" {
		return e.Msg + ": " + e.Err.Error()
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// SignatureError reports a signature that failed verification.
type SignatureError struct {
	Msg string
}

func (e *SignatureError) Error() string { return e.Msg }

func (e *SignatureError) Is(target error) bool { return target == ErrSignature }

// Validation builds a ValidationError for field with a formatted message.
func Validation(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}

// Invalid is shorthand for the common "<field> is invalid" message.
func Invalid(field string) error {
	return &ValidationError{Field: field, Msg: field + " is invalid"}
}

// WrapValidation re-labels err as a validation failure of field, keeping
// err reachable through errors.Unwrap.
func WrapValidation(field string, err error) error {
	if err == nil {
		return nil
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return err
	}
	return &ValidationError{Field: field, Msg: err.Error(), Err: err}
}

// Decode builds a DecodeError wrapping err.
func Decode(err error, format string, args ...any) error {
	return &DecodeError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// Signature builds a SignatureError.
func Signature(msg string) error {
	return &SignatureError{Msg: msg}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsDecode reports whether err is a decode failure.
func IsDecode(err error) bool { return errors.Is(err, ErrDecode) }

// IsSignature reports whether err is a signature failure.
func IsSignature(err error) bool { return errors.Is(err, ErrSignature) }
