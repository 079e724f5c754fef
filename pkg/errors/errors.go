// Package errors provides the error and warning types used across sparsegen.
// It wraps github.com/cockroachdb/errors so every constructor carries a stack
// trace, and exposes a small warning channel for observers.
package errors

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler func(w error)
)

// SetWarningHandler installs an observer for warnings passed to Warn. A nil
// handler removes it. Components log their own warnings, so the handler is
// only needed to collect or count them.
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// Warn hands w to the installed warning handler, if any. The handler runs
// without the lock held and may call Warn itself.
func Warn(w error) {
	warningMutex.Lock()
	handler := warningHandler
	warningMutex.Unlock()

	if handler != nil {
		handler(w)
	}
}

// ===========================================================================
//
//	Warnings
//
// ===========================================================================

// SparsityWarning reports a sparsity fraction that rounds to zero active
// entries, so the generated matrix or coefficient vector is entirely zero.
type SparsityWarning struct {
	Param    string
	Fraction float64
	Size     int
}

func (w *SparsityWarning) Error() string {
	return fmt.Sprintf("%s=%g over %d entries leaves no nonzero entries; generated values will be all zero",
		w.Param, w.Fraction, w.Size)
}

// MarshalZerologObject adds the warning fields to a zerolog event.
func (w *SparsityWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("param", w.Param).
		Float64("fraction", w.Fraction).
		Int("size", w.Size).
		Str("type", "SparsityWarning")
}

// NewSparsityWarning creates a SparsityWarning.
func NewSparsityWarning(param string, fraction float64, size int) *SparsityWarning {
	return &SparsityWarning{Param: param, Fraction: fraction, Size: size}
}

// ===========================================================================
//
//	Structured errors
//
// ===========================================================================

// ErrInvalidArgument marks every ValidationError so callers can match the
// whole class with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")

// ValidationError reports a parameter that failed validation.
type ValidationError struct {
	ParamName string
	Reason    string
	Value     interface{}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("sparsegen: validation failed for parameter '%s': %s (got: %v)", e.ParamName, e.Reason, e.Value)
}

// MarshalZerologObject adds the error fields to a zerolog event.
func (e *ValidationError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("param_name", e.ParamName).
		Str("reason", e.Reason).
		Interface("value", e.Value).
		Str("type", "ValidationError")
}

// NewValidationError creates a ValidationError marked with ErrInvalidArgument
// and annotated with a stack trace.
func NewValidationError(param, reason string, value interface{}) error {
	err := &ValidationError{ParamName: param, Reason: reason, Value: value}
	return errors.WithStack(errors.Mark(err, ErrInvalidArgument))
}

// NumericalInstabilityError reports NaN or Inf values in generated output.
type NumericalInstabilityError struct {
	Operation string
	Values    []float64
	Index     int
}

func (e *NumericalInstabilityError) Error() string {
	valStr := ""
	for i, v := range e.Values {
		if i > 0 {
			valStr += ", "
		}
		if i >= 5 {
			valStr += "..."
			break
		}
		valStr += fmt.Sprintf("%.6g", v)
	}
	return fmt.Sprintf("sparsegen: numerical instability detected in %s at index %d. Values: [%s]",
		e.Operation, e.Index, valStr)
}

// NewNumericalInstabilityError creates a NumericalInstabilityError with a stack trace.
func NewNumericalInstabilityError(operation string, values []float64, index int) error {
	err := &NumericalInstabilityError{
		Operation: operation,
		Values:    values,
		Index:     index,
	}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap annotates err with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf annotates err with a formatted message.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates an error with a stack trace.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a formatted error with a stack trace.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates err with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}
