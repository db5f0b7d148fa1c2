// Package dtos contains the boundary layer of the fulfillment application:
// one validating data transfer object per domain type. DTOs accept
// loosely-typed external input, enforce format and range rules, apply
// defaulting and normalization, and map bidirectionally to the trusted
// domain model.
//
// Each DTO follows the same contract:
//   - exported fields with snake_case JSON tags carry the raw input
//   - Validate trims, checks, defaults, and normalizes the fields in place,
//     collecting every field-level violation into a single
//     errs.ValidationError instead of failing fast; cross-field rules run
//     only after the single-field pass is clean
//   - ToDomain validates and then produces the corresponding domain object
//   - a ...FromDomain constructor projects a domain object back into a DTO
//
// Violations of nested DTOs are re-parented with dotted and indexed paths,
// e.g. "shipping_info.address.country" or "order_lines[1].quantity".
package dtos
