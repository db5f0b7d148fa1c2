// Package guard provides the constructor-guard pattern used by domain
// value objects and entities to detect zero-value instances that bypassed
// their constructor functions.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil error is
// passed as the validation error, so validation always fails with a
// meaningful message for unconstructed objects.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures domain objects are only created through their
// designated constructor functions. Embedding a ConstructorGuard in a struct
// makes the zero value of that struct detectably invalid: the guard's
// internal flag is only set by NewConstructorGuard, which constructors call.
//
// Example:
//
//	var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress")
//
//	type Address struct {
//	    street string
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewAddress(street string) (Address, error) {
//	    if street == "" {
//	        return Address{}, errors.New("street is required")
//	    }
//	    return Address{street: street, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (a Address) Validate() error {
//	    return a.guard.Validate(ErrAddressIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks an object as properly
// constructed. Call it in every constructor of a guarded domain object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate checks whether the guarded object was created through its
// constructor. It returns nil for constructed objects and validationError
// (or ErrDefaultConstructorGuard when validationError is nil) for zero
// values.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
