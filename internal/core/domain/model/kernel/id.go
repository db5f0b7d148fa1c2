package kernel

import "github.com/google/uuid"

// NewID generates a new random identifier for entities whose ids are not
// supplied by the caller. Identifiers in this domain are opaque non-empty
// strings: externally supplied ids (ERP references, marketplace order
// numbers) are accepted as-is, and generated ones are random UUID strings.
func NewID() string {
	return uuid.NewString()
}
