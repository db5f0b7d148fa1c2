package order

import (
	"fmt"
	"strings"

	"fulfillment/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure orders
// follow the correct fulfillment workflow.
//
// State transitions:
//
//	New ──┬──> Processing ──> Completed
//	      │         │
//	      └─────────┼──────> Failed
//	      │         │
//	      └──> Completed
//
// Failed and Completed are terminal for the guarded operations; only the
// unguarded failure transition may leave them (see Order.MarkAsFailed).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// New is the initial status when an order enters the system.
	// Order lines may only be added or removed in this status.
	New

	// Processing indicates the order has been handed to fulfillment.
	Processing

	// Completed indicates the order was fulfilled successfully.
	// This is a terminal state.
	Completed

	// Failed indicates the order could not be fulfilled.
	// This is a terminal state.
	Failed
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		New:        "NEW",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Failed:     "FAILED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		New:        "NEW",
		Processing: "PROCESSING",
		Completed:  "COMPLETED",
		Failed:     "FAILED",
	}
}

// StatusFromString parses a status from its string representation,
// case-insensitively. This is used when reconstructing orders from external
// input.
//
// Returns:
//   - the matching Status and nil for a known representation
//   - Unknown and an error otherwise
func StatusFromString(s string) (Status, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for status, str := range getValidStatusStrings() {
		if str == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: New, Processing, Completed, Failed.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the upper-case name of the status.
//
// Returns "NEW", "PROCESSING", "COMPLETED", or "FAILED" for valid statuses
// and "UNKNOWN" for invalid values. This method implements the fmt.Stringer
// interface and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether the status is a terminal state of the
// lifecycle.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// Process transitions the status to Processing.
//
// Valid transitions:
//   - New -> Processing
//
// Returns:
//   - (Processing, nil) on valid transition
//   - (0, error) if processing is not allowed from the current status
func (s Status) Process() (Status, error) {
	if s != New {
		return 0, errs.NewInvalidStateTransitionError("process", s.String())
	}

	return Processing, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - New -> Completed (direct completion without processing)
//   - Processing -> Completed
//
// Returns:
//   - (Completed, nil) on valid transition
//   - (0, error) if completion is not allowed from the current status
func (s Status) Complete() (Status, error) {
	if s != New && s != Processing {
		return 0, errs.NewInvalidStateTransitionError("complete", s.String())
	}

	return Completed, nil
}

// Fail transitions the status to Failed. Failing is unconditionally legal
// from every status, including the terminal ones; the permissiveness
// matches the observable behavior callers rely on.
func (s Status) Fail() Status {
	return Failed
}

// ValidateModifyLines checks whether order lines may be added or removed in
// the current status without performing any transition. Line modification is
// only allowed while the order is New.
func (s Status) ValidateModifyLines() error {
	if s != New {
		return errs.NewInvalidStateTransitionError("modify order lines", s.String())
	}
	return nil
}

// ValidateUpdateShippingAddress checks whether the shipping address may be
// replaced in the current status. Address updates are allowed while the
// order is New or Processing.
func (s Status) ValidateUpdateShippingAddress() error {
	if s != New && s != Processing {
		return errs.NewInvalidStateTransitionError("update shipping address", s.String())
	}
	return nil
}
