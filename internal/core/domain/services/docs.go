// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the dispatch core. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - OrderDispatcher: A domain service for ranking couriers and binding one to an order
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
