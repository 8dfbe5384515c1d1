package invoice

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrInvalidStateTransition is returned when a lifecycle operation is
// attempted from a status that does not allow it. The invoice is left
// unchanged.
var ErrInvalidStateTransition = errors.New("invalid invoice state transition")

// Status represents the lifecycle state of an invoice.
// It implements a one-directional state machine:
//
//	Draft ──> Reviewed ──> Finalized
//
// Finalizing directly from Draft is not allowed; an invoice must be reviewed
// first. There is no path back from Finalized, and finalized invoices reject
// every mutating operation.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status assigned by invoice generation.
	// Draft invoices accept recalculation and metadata edits.
	Draft

	// Reviewed indicates a dispatcher has checked the invoice.
	// Reviewed invoices still accept recalculation and metadata edits.
	Reviewed

	// Finalized is the terminal status. Finalized invoices are immutable and
	// considered export-ready.
	Finalized
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "draft",
		Reviewed:  "reviewed",
		Finalized: "finalized",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "draft",
		Reviewed:  "reviewed",
		Finalized: "finalized",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Draft, Reviewed and Finalized; Unknown (0) and any other
// values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lifecycle name of the status: "draft", "reviewed" or
// "finalized". Invalid values return "Unknown". Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether the status is Finalized.
func (s Status) IsFinal() bool {
	return s == Finalized
}

// Review transitions the status to Reviewed.
//
// Valid transitions:
//   - Draft -> Reviewed
//
// Any other starting status fails with ErrInvalidStateTransition: an already
// reviewed or finalized invoice cannot be reviewed again.
func (s Status) Review() (Status, error) {
	if s != Draft {
		return 0, fmt.Errorf("%w: cannot review a %s invoice", ErrInvalidStateTransition, s)
	}

	return Reviewed, nil
}

// Finalize transitions the status to Finalized.
//
// Valid transitions:
//   - Reviewed -> Finalized
//
// Finalizing a Draft invoice fails with ErrInvalidStateTransition: review
// must happen first. Finalized is terminal.
func (s Status) Finalize() (Status, error) {
	if s != Reviewed {
		return 0, fmt.Errorf("%w: cannot finalize a %s invoice", ErrInvalidStateTransition, s)
	}

	return Finalized, nil
}
