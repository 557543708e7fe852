package paillier

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode classifies the failure modes of this package, following the
// taxonomy of the crypto core this package is a rewrite of: every exported
// operation that can fail returns one of these through an *Error, except
// GenerateConcurrentPrime, whose errors are plain error values.
type ErrorCode int

const (
	// OK is never actually returned by an error-producing function; it
	// exists so a Context can report "no error" with the same type used
	// for failures.
	OK ErrorCode = iota
	// ParamError means a required input is absent, a keysize or key type
	// is outside the accepted set, or an argument combination is invalid.
	ParamError
	// MemError means allocation of a big integer or supporting structure
	// failed.
	MemError
	// CryptoError means an underlying cryptographic primitive failed:
	// prime generation, an undefined modular inverse, an unseeded RNG, or
	// a generator-synthesis loop exhausting its retry budget.
	CryptoError
	// DataError means a serialized input was malformed or tagged with an
	// unrecognized key type.
	DataError
	// OverflowError means a decrypted plaintext does not fit in 64 bits.
	OverflowError
	// OsError means a platform RNG source could not be opened.
	OsError
)

func (c ErrorCode) String() string {
	switch c {
	case OK:
		return "OK"
	case ParamError:
		return "ParamError"
	case MemError:
		return "MemError"
	case CryptoError:
		return "CryptoError"
	case DataError:
		return "DataError"
	case OverflowError:
		return "OverflowError"
	case OsError:
		return "OsError"
	default:
		return "UnknownError"
	}
}

// Error is the concrete error type returned by every fallible operation in
// this package. It never carries big-integer values in its message: only
// variable names and the wrapped cause, if any.
type Error struct {
	Code  ErrorCode
	msg   string
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.msg, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.msg)
}

// Unwrap allows errors.Is / errors.As to see through to the wrapped cause.
func (e *Error) Unwrap() error {
	return e.cause
}

func newError(code ErrorCode, msg string) *Error {
	return &Error{Code: code, msg: msg}
}

func wrapError(code ErrorCode, msg string, cause error) *Error {
	if cause == nil {
		return newError(code, msg)
	}
	return &Error{Code: code, msg: msg, cause: errors.WithStack(cause)}
}

// CodeOf extracts the ErrorCode carried by err, returning OK if err is nil
// and CryptoError if err is not one produced by this package (defensive
// default for errors surfaced by dependencies we call into directly).
func CodeOf(err error) ErrorCode {
	if err == nil {
		return OK
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Code
	}
	return CryptoError
}
