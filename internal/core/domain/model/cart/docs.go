// Package cart implements the in-memory shopping cart that feeds order
// creation. A cart is ephemeral state owned by a single checkout session:
// it is never persisted, never shared between concurrent writers, and all
// of its operations are total functions with no error cases.
//
// The cart maintains one invariant: no two lines share the same
// (product id, display name) pair. The display name includes rendered
// extras, so the same product with different extras forms distinct lines.
package cart
