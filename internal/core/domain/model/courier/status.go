package courier

import (
	"fmt"

	"feedo/internal/pkg/errs"
)

// Status represents the courier's shift state.
//
// Offline and Available are under the courier's own control via the shift
// toggle. Busy is system-owned: the dispatch engine sets it when binding an
// order, and the order lifecycle clears it when the courier's last active
// delivery finishes.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Offline means the courier is off shift and invisible to dispatch.
	Offline

	// Available means the courier is on shift and eligible for dispatch.
	Available

	// Busy means the courier is carrying at least one active delivery.
	Busy
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Offline:   "Offline",
		Available: "Available",
		Busy:      "Busy",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Offline:   "Offline",
		Available: "Available",
		Busy:      "Busy",
	}
}

// StatusFromString parses a status name as received from external callers
// or storage. Unknown names are rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid courier status", s),
	)
}

// Validate checks that the Status is one of the defined shift states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid courier status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
