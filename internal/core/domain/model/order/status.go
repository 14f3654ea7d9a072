package order

import (
	"fmt"

	"ordertracking/internal/pkg/errs"
)

// Status represents a discrete order status observation.
//
// Unlike a state machine, statuses carry no transition rules: any status may
// follow any other, including re-entering a prior status. The current status
// of an order is purely a function of its most recent status event, so the
// projection layer never needs to validate transitions, only derivation.
//
// Status is persisted as its lowercase string value. The absence of any
// status (an order with no events) is represented by Unset, which is stored
// as SQL NULL rather than a string.
type Status string

const (
	// Unset indicates the order has no status events.
	// It is never a valid event status, only a projected value.
	Unset Status = ""

	// Pending indicates the order is awaiting completion.
	Pending Status = "pending"

	// Complete indicates the order has been fulfilled.
	Complete Status = "complete"

	// Canceled indicates the order has been canceled.
	Canceled Status = "canceled"
)

// AllStatuses returns every status a status event may carry.
// Unset is deliberately excluded: it only exists as a projected value.
func AllStatuses() []Status {
	return []Status{Pending, Complete, Canceled}
}

// StatusFromString parses a status from its persisted string form.
// Returns an error for anything other than the three event statuses.
func StatusFromString(s string) (Status, error) {
	status := Status(s)
	if err := status.Validate(); err != nil {
		return Unset, err
	}
	return status, nil
}

// Validate checks that the status is one of the three event statuses.
// Unset is invalid here: events must always carry a concrete status.
func (s Status) Validate() error {
	switch s {
	case Pending, Complete, Canceled:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", string(s)))
	}
}

// ValidateProjected checks that the status is valid as a projected
// latest_status value, which additionally allows Unset.
func (s Status) ValidateProjected() error {
	if s == Unset {
		return nil
	}
	return s.Validate()
}

// IsUnset reports whether the status represents the absence of any event.
func (s Status) IsUnset() bool {
	return s == Unset
}

// String returns the human-readable name of the status.
// Unset renders as "unset" so logs never contain an empty status field.
func (s Status) String() string {
	if s == Unset {
		return "unset"
	}
	return string(s)
}
