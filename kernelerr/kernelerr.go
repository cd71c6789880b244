// Package kernelerr defines the typed error taxonomy shared by every
// package in numerickernel: InvalidSize, NumericPrecondition,
// DomainExhausted, and Overflow. All of them are fatal to the operation
// that raised them and safe to retry with corrected inputs.
package kernelerr

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind classifies why an operation failed.
type Kind int

const (
	// InvalidSize is returned for things like a radix-2 FFT invoked with a
	// non-power-of-two length, or a non-positive signal length.
	InvalidSize Kind = iota
	// NumericPrecondition is returned when a modular-arithmetic precondition
	// doesn't hold: N not a power of two, p not prime, p not congruent to 1
	// mod N, or g not a primitive root of p.
	NumericPrecondition
	// DomainExhausted is returned by CRT with mismatched remainder/modulus
	// vectors, or by a modular inverse of non-coprime arguments.
	DomainExhausted
	// Overflow is returned when a search (e.g. find_prime_in_ap) would need
	// to leave the representable range of its integer type.
	Overflow
)

func (k Kind) String() string {
	switch k {
	case InvalidSize:
		return "invalid size"
	case NumericPrecondition:
		return "numeric precondition"
	case DomainExhausted:
		return "domain exhausted"
	case Overflow:
		return "overflow"
	default:
		return "unknown error kind"
	}
}

// Error is the concrete error type returned by every operation in this
// module that fails. Op names the failing operation, Kind classifies the
// failure, and the wrapped cause (if any) carries additional context and a
// stack trace via github.com/pkg/errors.
type Error struct {
	Op   string
	Kind Kind
	Msg  string
	err  error
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Unwrap exposes the wrapped cause so errors.Is/errors.As work transparently.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is a *Error with the same Kind, so callers can
// write errors.Is(err, kernelerr.New("", kernelerr.InvalidSize, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New constructs an *Error with a stack trace attached at the call site.
func New(op string, kind Kind, msg string) *Error {
	return &Error{Op: op, Kind: kind, Msg: msg, err: errors.New(msg)}
}

// Newf is New with fmt.Sprintf-style formatting of msg.
func Newf(op string, kind Kind, format string, args ...interface{}) *Error {
	msg := fmt.Sprintf(format, args...)
	return &Error{Op: op, Kind: kind, Msg: msg, err: errors.New(msg)}
}

// Wrap attaches Op/Kind context to an existing cause, preserving it via
// github.com/pkg/errors.Wrap so %+v printing still yields the original
// stack trace.
func Wrap(op string, kind Kind, cause error, msg string) *Error {
	return &Error{Op: op, Kind: kind, Msg: msg, err: errors.Wrap(cause, msg)}
}
