// Package courier contains the Courier aggregate: a delivery-performing
// actor with a shift status, a vehicle, and performance stats.
//
// The shift status is the single source of truth for dispatch eligibility.
// Couriers toggle themselves between Offline and Available; Busy is set
// exclusively by the dispatch engine and the order lifecycle, never by a
// manual toggle.
package courier
