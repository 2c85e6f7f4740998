// Package kernel provides core domain primitives for the dispatch core.
// It implements fundamental building blocks following Domain-Driven Design
// principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a value object carrying amounts in minor currency units
//   - Contact: a value object for name and contact fields shared by person records
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are immutable and thread-safe.
package kernel
