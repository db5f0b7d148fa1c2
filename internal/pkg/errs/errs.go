package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification with errors.Is. Each concrete error type
// in this package unwraps to one of these.
var (
	// ErrValueIsRequired indicates a required value is missing or empty.
	ErrValueIsRequired = errors.New("value is required")
	// ErrValueIsInvalid indicates a value does not satisfy a domain rule.
	ErrValueIsInvalid = errors.New("value is invalid")
	// ErrValueIsOutOfRange indicates a value lies outside its allowed bounds.
	ErrValueIsOutOfRange = errors.New("value is out of range")
	// ErrInvalidStateTransition indicates an operation is not legal from the
	// current lifecycle state.
	ErrInvalidStateTransition = errors.New("invalid state transition")
	// ErrValidationFailed indicates boundary input failed validation. The
	// concrete ValidationError carries the per-field violations.
	ErrValidationFailed = errors.New("validation failed")
)

// sanitize makes a value safe for single-line error messages by collapsing
// newlines into spaces.
func sanitize(value any) string {
	return strings.NewReplacer("\n", " ", "\r", " ").Replace(fmt.Sprintf("%v", value))
}

// ValueIsRequiredError is returned when a required value is missing.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the given parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping an
// underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is required: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("value is required: %s", sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError is returned when a value violates a domain rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the given parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping an
// underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("value is invalid: %s (cause: %s)", sanitize(e.ParamName), sanitize(e.Cause))
	}
	return fmt.Sprintf("value is invalid: %s", sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError is returned when a value lies outside its allowed
// bounds.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError for the given
// parameter and bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError wrapping
// an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	msg := fmt.Sprintf("value is out of range: %s is %s, min value is %s, max value is %s",
		sanitize(e.Value), sanitize(e.ParamName), sanitize(e.Min), sanitize(e.Max))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// InvalidStateTransitionError is returned when a lifecycle operation is not
// legal from the current state.
type InvalidStateTransitionError struct {
	Operation string
	From      string
	Cause     error
}

// NewInvalidStateTransitionError creates an InvalidStateTransitionError for
// the given operation and current state.
func NewInvalidStateTransitionError(operation, from string) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, From: from}
}

// NewInvalidStateTransitionErrorWithCause creates an
// InvalidStateTransitionError wrapping an underlying cause.
func NewInvalidStateTransitionErrorWithCause(operation, from string, cause error) *InvalidStateTransitionError {
	return &InvalidStateTransitionError{Operation: operation, From: from, Cause: cause}
}

func (e *InvalidStateTransitionError) Error() string {
	msg := fmt.Sprintf("invalid state transition: cannot %s from status %s",
		sanitize(e.Operation), sanitize(e.From))
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %s)", msg, sanitize(e.Cause))
	}
	return msg
}

func (e *InvalidStateTransitionError) Unwrap() error {
	return ErrInvalidStateTransition
}

// FieldViolation describes a single field-level validation failure. Field is
// the path of the offending field in the input (nested paths are dotted,
// list entries indexed, e.g. "order_lines[1].quantity").
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates field-level violations found while validating
// boundary input. Unlike the fail-fast domain errors, a single ValidationError
// reports every violated field so callers can surface form-style error
// reports.
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError creates an empty ValidationError ready to collect
// violations.
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add records a violation for the given field.
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// AddNested re-parents the violations of a nested ValidationError under the
// given field prefix. Nested fields become "prefix.field"; non-validation
// errors are recorded as a single violation on the prefix itself. A nil err
// is a no-op.
func (e *ValidationError) AddNested(prefix string, err error) {
	if err == nil {
		return
	}
	var nested *ValidationError
	if errors.As(err, &nested) {
		for _, violation := range nested.Violations {
			e.Violations = append(e.Violations, FieldViolation{
				Field:   prefix + "." + violation.Field,
				Message: violation.Message,
			})
		}
		return
	}
	e.Add(prefix, err.Error())
}

// HasViolations reports whether any violation was recorded.
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// ErrOrNil returns the ValidationError when violations were recorded and a
// plain nil otherwise, so callers never receive a non-nil error interface
// holding an empty validation result.
func (e *ValidationError) ErrOrNil() error {
	if e.HasViolations() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, violation := range e.Violations {
		parts = append(parts, fmt.Sprintf("%s: %s", sanitize(violation.Field), sanitize(violation.Message)))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}
