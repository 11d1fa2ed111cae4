// Package errors provides typed errors for catspeak.
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrBaseOutOfRange       ErrorCode = "BASE_OUT_OF_RANGE"
	ErrInvalidCharacter     ErrorCode = "INVALID_CHARACTER"
	ErrUnknownToken         ErrorCode = "UNKNOWN_TOKEN"
	ErrMalformedGroupLength ErrorCode = "MALFORMED_GROUP_LENGTH"
	ErrWidthOverflow        ErrorCode = "WIDTH_OVERFLOW"
	ErrValueOutOfRange      ErrorCode = "VALUE_OUT_OF_RANGE"
	ErrAlphabetInvalid      ErrorCode = "ALPHABET_INVALID"
	ErrInvalidMode          ErrorCode = "INVALID_MODE"
	ErrConfigNotFound       ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid        ErrorCode = "CONFIG_INVALID"
)

// CatspeakError represents a typed error with a user-friendly hint.
type CatspeakError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *CatspeakError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CatspeakError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a CatspeakError with the same code, so
// callers can match on kind with errors.Is(err, &CatspeakError{Code: ...}).
func (e *CatspeakError) Is(target error) bool {
	t, ok := target.(*CatspeakError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// New creates a new CatspeakError.
func New(code ErrorCode, message, hint string) *CatspeakError {
	return &CatspeakError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new CatspeakError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *CatspeakError {
	return &CatspeakError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// CodeOf returns the code of the first CatspeakError in err's chain, or ""
// if there is none.
func CodeOf(err error) ErrorCode {
	var ce *CatspeakError
	if stderrors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// HasCode reports whether err carries the given code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

// HintOf returns the hint of the first CatspeakError in err's chain.
func HintOf(err error) string {
	var ce *CatspeakError
	if stderrors.As(err, &ce) {
		return ce.Hint
	}
	return ""
}

// BaseOutOfRange returns an error for a base the alphabet cannot support.
func BaseOutOfRange(base, maxBase int) *CatspeakError {
	return &CatspeakError{
		Code:    ErrBaseOutOfRange,
		Message: fmt.Sprintf("base %d is out of range (2-%d)", base, maxBase),
		Hint:    fmt.Sprintf("Pick a base between 2 and %d with --base", maxBase),
	}
}

// InvalidCharacter returns an error for text input outside a-z.
func InvalidCharacter(r rune, pos int) *CatspeakError {
	return &CatspeakError{
		Code:    ErrInvalidCharacter,
		Message: fmt.Sprintf("invalid character %q at position %d", r, pos),
		Hint:    "Text mode only handles the letters a-z and spaces; use --bytes for anything else",
	}
}

// UnknownToken returns an error for a token missing from the active alphabet.
func UnknownToken(token string, base int) *CatspeakError {
	return &CatspeakError{
		Code:    ErrUnknownToken,
		Message: fmt.Sprintf("unknown token %q for base %d", token, base),
		Hint:    "Decode with the same base the stream was encoded with",
	}
}

// MalformedGroupLength returns an error for a token group of the wrong size.
func MalformedGroupLength(got, width int) *CatspeakError {
	return &CatspeakError{
		Code:    ErrMalformedGroupLength,
		Message: fmt.Sprintf("token group has %d tokens, want %d", got, width),
		Hint:    "Decode with the same base and width the stream was encoded with",
	}
}

// MalformedStreamLength returns an error for a token stream that does not
// split evenly into groups.
func MalformedStreamLength(got, width int) *CatspeakError {
	return &CatspeakError{
		Code:    ErrMalformedGroupLength,
		Message: fmt.Sprintf("got %d tokens, want a multiple of %d", got, width),
		Hint:    "Decode with the same base and width the stream was encoded with",
	}
}

// InvalidWidth returns an error for a group width below 1.
func InvalidWidth(width int) *CatspeakError {
	return &CatspeakError{
		Code:    ErrMalformedGroupLength,
		Message: fmt.Sprintf("width %d is invalid, must be between 1 and 32", width),
		Hint:    "Omit --width to use the minimum width for the base",
	}
}

// WidthOverflow returns an error when no bounded width can represent maxValue.
func WidthOverflow(base, maxValue uint32) *CatspeakError {
	return &CatspeakError{
		Code:    ErrWidthOverflow,
		Message: fmt.Sprintf("no width can represent %d in base %d", maxValue, base),
		Hint:    "Use a base of at least 2",
	}
}

// ValueOutOfRange returns an error for a value outside [lo, hi].
func ValueOutOfRange(value, lo, hi uint64) *CatspeakError {
	return &CatspeakError{
		Code:    ErrValueOutOfRange,
		Message: fmt.Sprintf("value %d is outside %d-%d", value, lo, hi),
		Hint:    "Check that the width and mode match the stream",
	}
}

// AlphabetInvalid returns an error for a malformed token alphabet.
func AlphabetInvalid(reason string) *CatspeakError {
	return &CatspeakError{
		Code:    ErrAlphabetInvalid,
		Message: fmt.Sprintf("invalid alphabet: %s", reason),
		Hint:    "Alphabets need at least 2 distinct, non-empty tokens without spaces or semicolons",
	}
}

// InvalidMode returns an error for an unknown encoding mode.
func InvalidMode(mode string) *CatspeakError {
	return &CatspeakError{
		Code:    ErrInvalidMode,
		Message: fmt.Sprintf("invalid mode: %q", mode),
		Hint:    "Use mode \"text\" or \"bytes\"",
	}
}

// ConfigNotFound returns an error for missing config file.
func ConfigNotFound(path string) *CatspeakError {
	return &CatspeakError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Run `catspeak config init` to create a configuration",
	}
}

// ConfigInvalid returns an error for invalid config.
func ConfigInvalid(reason string) *CatspeakError {
	return &CatspeakError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/catspeak/config.yaml",
	}
}
