package services

import (
	"errors"
	"time"

	"feedo/internal/core/domain/model/courier"
	"feedo/internal/core/domain/model/order"
)

// ErrNoEligibleCourier is returned when no courier from the candidate set can
// take the order. This occurs when no couriers are provided or none of them
// is on shift and idle. Callers treat it as a benign outcome: the order stays
// Pending and a later dispatch pass retries.
var ErrNoEligibleCourier = errors.New("no eligible courier")

// OrderDispatcher is a domain service responsible for picking the best
// courier for a pending order and binding the two aggregates together.
//
// Business rules:
//   - The order must be Pending and unbound
//   - Only Available, non-deleted couriers are considered
//   - Candidates are ranked by rating, highest first
//   - Ties are broken by total completed deliveries, fewest first
//   - Remaining ties keep the earlier candidate in the slice
type OrderDispatcher struct{}

// NewOrderDispatcher creates a new OrderDispatcher instance.
func NewOrderDispatcher() OrderDispatcher {
	return OrderDispatcher{}
}

// Dispatch picks the best courier for the order and executes the assignment:
// the order moves to Assigned with the courier bound, the courier becomes Busy.
//
// Returns ErrNoEligibleCourier when the candidate set holds no courier that
// can take the order.
func (d OrderDispatcher) Dispatch(o *order.Order, couriers []*courier.Courier, at time.Time) (*courier.Courier, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	// Checked before MarkBusy so a failed assignment never strands a courier in Busy.
	if o.CourierID() != nil {
		return nil, order.ErrCourierAlreadyAssigned
	}

	best, err := d.findBestCourier(couriers)
	if err != nil {
		return nil, err
	}

	if err := best.MarkBusy(); err != nil {
		return nil, err
	}

	if err := o.Assign(best.ID(), at); err != nil {
		return nil, err
	}

	return best, nil
}

// findBestCourier ranks the candidates by rating descending, then by total
// deliveries ascending, skipping couriers that are off shift, busy or deleted.
func (d OrderDispatcher) findBestCourier(couriers []*courier.Courier) (*courier.Courier, error) {
	var best *courier.Courier

	for _, c := range couriers {
		if err := c.Validate(); err != nil {
			return nil, err
		}

		if !c.IsEligibleForDispatch() {
			continue
		}

		if best == nil || d.ranksHigher(c, best) {
			best = c
		}
	}

	if best == nil {
		return nil, ErrNoEligibleCourier
	}
	return best, nil
}

func (d OrderDispatcher) ranksHigher(candidate, current *courier.Courier) bool {
	if candidate.Rating() != current.Rating() {
		return candidate.Rating() > current.Rating()
	}
	return candidate.TotalDeliveries() < current.TotalDeliveries()
}
