// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is created from a cart snapshot and owns an immutable set of
// priced item lines. The status state machine governs which lifecycle
// transitions are legal:
//
//	Pending ──> Assigned ──> InDelivery ──> Delivered
//	   │    \_______________↗    │
//	   │            │            │
//	   └────────────┴────────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. Assigned is entered only by the
// dispatch engine; a courier accepting an offered order moves it straight
// to InDelivery. Client-initiated cancellation is allowed from Pending and
// Delivered only, and always sets the soft-delete flag.
package order
