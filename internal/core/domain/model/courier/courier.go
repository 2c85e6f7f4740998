package courier

import (
	"errors"
	"time"

	"feedo/internal/core/domain/model/kernel"
	"feedo/internal/pkg/errs"
	"feedo/internal/pkg/guard"
)

const (
	// ratingMin and ratingMax bound the courier rating scale.
	ratingMin = 0
	ratingMax = 5
)

// Domain errors for courier operations.
var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")

	// ErrCourierIsBusy is returned when a manual shift toggle is attempted
	// while the courier carries an active delivery. Busy is system-owned.
	ErrCourierIsBusy = errors.New("courier is busy and cannot toggle shift status")

	// ErrCourierIsNotAvailable is returned when dispatch tries to occupy a
	// courier who is not Available.
	ErrCourierIsNotAvailable = errors.New("courier is not available for dispatch")

	// ErrCourierIsNotBusy is returned when a delivery completion or release
	// is recorded for a courier who holds no active delivery.
	ErrCourierIsNotBusy = errors.New("courier has no active delivery")
)

// Courier is the aggregate root for a delivery-performing actor.
//
// Business rules:
//   - The shift status is the single source of truth for dispatch
//     eligibility: only Available, non-deleted couriers receive orders
//   - Busy is entered only through MarkBusy (dispatch/lifecycle code) and
//     left only through CompleteDelivery or ReleaseFromDelivery
//   - The manual shift toggle moves between Offline and Available only
//   - Rating stays within [0, 5]; delivery stats only ever grow
type Courier struct {
	id              kernel.UUID
	contact         kernel.Contact
	vehicleType     VehicleType
	status          Status
	rating          float64
	totalDeliveries int
	lastDeliveryAt  *time.Time
	deleted         bool

	guard guard.ConstructorGuard
}

// NewCourier creates a courier starting off shift (Offline) with zero
// deliveries. Contact, vehicle type, and rating are validated.
func NewCourier(id kernel.UUID, contact kernel.Contact, vehicleType VehicleType, rating float64) (*Courier, error) {
	courier := &Courier{
		status: Offline,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setContact(contact),
		courier.setVehicleType(vehicleType),
		courier.setRating(rating),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// RestoreCourier reconstructs a courier aggregate from persistent storage,
// preserving shift status, stats, and the soft-delete flag.
func RestoreCourier(
	id kernel.UUID,
	contact kernel.Contact,
	vehicleType VehicleType,
	status Status,
	rating float64,
	totalDeliveries int,
	lastDeliveryAt *time.Time,
	deleted bool,
) (*Courier, error) {
	courier := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setContact(contact),
		courier.setVehicleType(vehicleType),
		courier.setStatus(status),
		courier.setRating(rating),
		courier.setTotalDeliveries(totalDeliveries),
	); err != nil {
		return nil, err
	}

	courier.lastDeliveryAt = lastDeliveryAt
	courier.deleted = deleted
	return courier, nil
}

// Validate checks that the Courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by their unique identifiers.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Contact returns the courier's name and contact fields.
func (c *Courier) Contact() kernel.Contact {
	return c.contact
}

// VehicleType returns what the courier rides or drives.
func (c *Courier) VehicleType() VehicleType {
	return c.vehicleType
}

// Status returns the current shift status.
func (c *Courier) Status() Status {
	return c.status
}

// Rating returns the courier's rating on the [0, 5] scale.
func (c *Courier) Rating() float64 {
	return c.rating
}

// TotalDeliveries returns the number of completed deliveries.
func (c *Courier) TotalDeliveries() int {
	return c.totalDeliveries
}

// LastDeliveryAt returns when the courier last completed a delivery, or nil.
func (c *Courier) LastDeliveryAt() *time.Time {
	return c.lastDeliveryAt
}

// IsDeleted reports whether the courier is soft-deleted.
func (c *Courier) IsDeleted() bool {
	return c.deleted
}

// IsEligibleForDispatch reports whether the dispatch engine may bind orders
// to this courier: on shift, idle, and not soft-deleted.
func (c *Courier) IsEligibleForDispatch() bool {
	return c.status == Available && !c.deleted
}

// GoOnShift moves the courier from Offline to Available.
// Idempotent when already Available; rejected while Busy.
func (c *Courier) GoOnShift() error {
	if c.status == Busy {
		return ErrCourierIsBusy
	}
	c.status = Available
	return nil
}

// GoOffShift moves the courier from Available to Offline.
// Idempotent when already Offline; rejected while Busy.
func (c *Courier) GoOffShift() error {
	if c.status == Busy {
		return ErrCourierIsBusy
	}
	c.status = Offline
	return nil
}

// MarkBusy occupies the courier for a delivery. Dispatch/lifecycle use only.
// Fails unless the courier is currently Available.
func (c *Courier) MarkBusy() error {
	if c.status != Available {
		return ErrCourierIsNotAvailable
	}
	c.status = Busy
	return nil
}

// CompleteDelivery records a finished delivery: bumps the delivery counter,
// stamps the delivery time, and frees the courier back to Available unless
// other deliveries are still underway.
func (c *Courier) CompleteDelivery(at time.Time, hasOtherActiveDeliveries bool) error {
	if c.status != Busy {
		return ErrCourierIsNotBusy
	}

	c.totalDeliveries++
	c.lastDeliveryAt = &at
	if !hasOtherActiveDeliveries {
		c.status = Available
	}
	return nil
}

// ReleaseFromDelivery frees the courier after a refused or cancelled order
// without touching delivery stats. The courier stays Busy while other
// deliveries are underway.
func (c *Courier) ReleaseFromDelivery(hasOtherActiveDeliveries bool) error {
	if c.status != Busy {
		return ErrCourierIsNotBusy
	}

	if !hasOtherActiveDeliveries {
		c.status = Available
	}
	return nil
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setContact(contact kernel.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	c.contact = contact
	return nil
}

func (c *Courier) setVehicleType(vehicleType VehicleType) error {
	if err := vehicleType.Validate(); err != nil {
		return err
	}
	c.vehicleType = vehicleType
	return nil
}

func (c *Courier) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}

func (c *Courier) setRating(rating float64) error {
	if rating < ratingMin || rating > ratingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, ratingMin, ratingMax)
	}
	c.rating = rating
	return nil
}

func (c *Courier) setTotalDeliveries(totalDeliveries int) error {
	if totalDeliveries < 0 {
		return errs.NewValueIsInvalidError("total deliveries")
	}
	c.totalDeliveries = totalDeliveries
	return nil
}
