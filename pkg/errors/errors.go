// Package errors provides structured error reporting for the toolkit.
//
// Most failures in the style layer are recoverable by design: a lookup
// that finds the wrong component kind falls back to the descriptor's
// default. Report gives those soft failures a place to surface so that
// applications can log or collect them.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindLookup indicates a style lookup that could not find a
	// required component.
	KindLookup
	// KindConversion indicates a failed conversion between a component
	// and a typed value.
	KindConversion
	// KindConfig indicates a theme or scheme configuration error.
	KindConfig
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindLookup:
		return "lookup"
	case KindConversion:
		return "conversion"
	case KindConfig:
		return "config"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// StyleError represents a structured error in the style system.
type StyleError struct {
	// Op is the operation that failed (e.g., "styles.Get").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// Component is the qualified component name involved, if any.
	Component string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *StyleError) Error() string {
	if e.Component != "" {
		return fmt.Sprintf("%s [%s] component=%s: %v", e.Op, e.Kind, e.Component, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *StyleError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked.
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// ErrorHandler receives errors reported by the toolkit.
type ErrorHandler interface {
	// HandleError is called when an error occurs.
	HandleError(err *StyleError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
