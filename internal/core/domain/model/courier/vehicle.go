package courier

import (
	"fmt"

	"feedo/internal/pkg/errs"
)

// VehicleType identifies what the courier rides or drives.
// It has no dispatch semantics today; it is carried for courier-facing views
// and future routing policies.
type VehicleType string

const (
	VehicleBike    VehicleType = "Bike"
	VehicleScooter VehicleType = "Scooter"
	VehicleCar     VehicleType = "Car"
)

// VehicleTypeFromString parses a vehicle type name as received from external callers.
func VehicleTypeFromString(s string) (VehicleType, error) {
	v := VehicleType(s)
	if err := v.Validate(); err != nil {
		return "", err
	}
	return v, nil
}

// Validate checks that the vehicle type is one of the supported kinds.
func (v VehicleType) Validate() error {
	switch v {
	case VehicleBike, VehicleScooter, VehicleCar:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle type",
			fmt.Errorf("%q is not a valid vehicle type", string(v)),
		)
	}
}

// String returns the vehicle type name.
func (v VehicleType) String() string {
	return string(v)
}
