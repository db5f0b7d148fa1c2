// Package order contains the Order aggregate of the fulfillment domain:
// the Order root, its owned OrderLine and ShippingInfo entities, and the
// Status state machine.
//
// The aggregate enforces its invariants through controlled mutator methods
// on otherwise encapsulated structs; there are no public setters. Every
// operation runs all guards before applying any change, so no partial
// mutation is ever observable. Lifecycle events are reported through an
// optional Observer callback instead of process-global logging.
package order
