// Package guard implements the constructor guard pattern used by domain
// objects to ensure they are only created through their designated
// constructor functions, never as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// supplied, so validation always fails with a meaningful message.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard detects whether the embedding struct was properly
// initialized through its constructor or created as a zero value.
// Embed one in a command, query, or aggregate and set it with
// NewConstructorGuard inside the constructor; Validate then distinguishes
// constructed instances from accidental zero values.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the owning object as properly
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the owning object was built through its
// constructor, or validationError otherwise. A nil validationError falls
// back to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
