package order

import (
	"fmt"

	"feedo/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with defined transitions so orders always follow the delivery
// workflow described in the package documentation.
//
// Status is a value object; transition methods return the new status and
// never mutate the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status for a freshly created order,
	// waiting for a courier to be assigned.
	Pending

	// Assigned indicates the dispatch engine bound a courier to the order.
	Assigned

	// InDelivery indicates the courier is carrying the order to the client.
	InDelivery

	// Delivered indicates the order reached the client. Terminal.
	Delivered

	// Cancelled indicates the order was refused or cancelled. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Assigned:   "Assigned",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Assigned:   "Assigned",
		InDelivery: "InDelivery",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status name as received from external callers.
// Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions the status to Assigned.
// Only the dispatch engine moves orders into Assigned, and only from Pending.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}
	return Assigned, nil
}

// StartDelivery transitions the status to InDelivery.
//
// Valid from Pending (a courier accepts an offered order directly) and from
// Assigned (the engine-assigned courier picks the order up).
func (s Status) StartDelivery() (Status, error) {
	if s != Pending && s != Assigned {
		return 0, errs.NewInvalidTransitionError(s.String(), InDelivery.String())
	}
	return InDelivery, nil
}

// Complete transitions the status to Delivered. Valid only from InDelivery.
func (s Status) Complete() (Status, error) {
	if s != InDelivery {
		return 0, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}
	return Delivered, nil
}

// CancelByCourier transitions the status to Cancelled on courier refusal.
// Valid from Assigned and InDelivery, the states where a courier holds the order.
func (s Status) CancelByCourier() (Status, error) {
	if s != Assigned && s != InDelivery {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// CancelByClient transitions the status to Cancelled on client request.
// Clients may only cancel orders that are not underway: Pending or Delivered.
func (s Status) CancelByClient() (Status, error) {
	if s != Pending && s != Delivered {
		return 0, errs.NewInvalidTransitionError(s.String(), Cancelled.String())
	}
	return Cancelled, nil
}

// ValidateCanHaveCourier checks consistency between status and courier binding
// when restoring an order from persistence. Pending orders must be unbound;
// Assigned, InDelivery, and Delivered orders must be bound. Cancelled orders
// may be either, depending on where in the lifecycle the cancellation happened.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if !courier && (s == Assigned || s == InDelivery || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order must have a courier", s.String()),
		)
	}

	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s order must not have a courier", s.String()),
		)
	}

	return nil
}
