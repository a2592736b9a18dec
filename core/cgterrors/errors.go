// Package cgterrors classifies the errors of the cgt engine boundaries:
// position construction, value-notation parsing, and CLI input handling.
// The engine core itself is total and never fails.
//
// Every error carries a Kind usable as an errors.Is target:
//
//	if errors.Is(err, cgterrors.InvalidInput) { ... }
package cgterrors

import (
	"fmt"
	"strings"
)

// Kind classifies an error. A Kind is itself an error, so it can serve as
// a sentinel for errors.Is without unwrapping by hand.
type Kind string

const (
	// InvalidInput marks malformed positions or CLI arguments, e.g. a
	// vertex color list whose length differs from the graph order.
	InvalidInput Kind = "invalid input"

	// InputRead marks failures reading a position file.
	InputRead Kind = "input read"

	// Parse marks malformed game-value notation.
	Parse Kind = "parse"

	// SchemaValidation marks position files rejected by the JSON schema.
	SchemaValidation Kind = "schema validation"
)

// Error implements the error interface for a bare Kind.
func (k Kind) Error() string { return string(k) }

// Error is a classified engine error with optional cause and context.
type Error struct {
	kind Kind
	msg  string
	err  error
	ctx  []field
}

type field struct {
	key   string
	value interface{}
}

// New returns a classified error with a formatted message.
func New(kind Kind, format string, args ...interface{}) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies an underlying error. The cause is reachable through
// errors.Unwrap.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{kind: kind, msg: msg, err: err}
}

// With attaches a context field. Fields keep insertion order and are
// rendered into the message.
func (e *Error) With(key string, value interface{}) *Error {
	e.ctx = append(e.ctx, field{key: key, value: value})
	return e
}

// Error renders "kind: message [k=v ...]: cause".
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(string(e.kind))
	sb.WriteString(": ")
	sb.WriteString(e.msg)
	if len(e.ctx) > 0 {
		sb.WriteString(" [")
		for i, f := range e.ctx {
			if i > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%s=%v", f.key, f.value)
		}
		sb.WriteByte(']')
	}
	if e.err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.err.Error())
	}
	return sb.String()
}

// Unwrap exposes the wrapped cause.
func (e *Error) Unwrap() error { return e.err }

// Is matches the error's Kind, so errors.Is(err, cgterrors.Parse) holds
// for any parse error regardless of its cause chain.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.kind
}

// Context returns the value of a context field.
func (e *Error) Context(key string) (interface{}, bool) {
	for _, f := range e.ctx {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// KindOf returns the Kind of err, or "" if err carries none.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ""
		}
		err = u.Unwrap()
	}
	return ""
}
