// Package kernel contains the shared value objects of the fulfillment
// domain: Money, Address, and identifier generation. The types in this
// package are immutable, enforce their invariants at construction time, and
// carry a constructor guard so zero values are detectably invalid.
package kernel
