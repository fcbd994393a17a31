package pos

import (
	"strings"

	"github.com/google/uuid"
)

// newID returns an opaque identifier for a new product or customer record.
func newID() string { return uuid.NewString() }

// shortSuffix returns a short random fragment for receipt identifiers.
func shortSuffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:4]
}
