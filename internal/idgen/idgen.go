// Package idgen produces issue identifiers unique with overwhelming
// probability within a local store. Generation never blocks and never fails.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

const prefix = "CIV-"

// Generate returns a new issue identifier.
func Generate() string {
	return prefix + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}
