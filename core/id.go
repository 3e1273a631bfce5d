package core

import (
	"crypto/rand"
	"regexp"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"agentdock/utils"
)

// NewID generates a new ULID with the given prefix.
// The format is: prefix_ULID
// Example: core.NewID("turn") returns "turn_01G0EZ1XTM37C5X11SQTDNCTM1"
func NewID(prefix string) string {
	utils.AssertInvariant(prefix != "" && strings.TrimSpace(prefix) != "", "prefix cannot be empty")

	entropy := ulid.Monotonic(rand.Reader, 0)
	id := ulid.MustNew(ulid.Timestamp(time.Now()), entropy)

	return strings.ToLower(strings.TrimSpace(prefix)) + "_" + id.String()
}

var prefixedULIDRegex = regexp.MustCompile(`^[a-z0-9]+_[0-9A-HJKMNP-TV-Z]{26}$`)

// IsValidULID checks if the given string is a prefixed ULID as produced by NewID
func IsValidULID(id string) bool {
	if !prefixedULIDRegex.MatchString(id) {
		return false
	}

	parts := strings.SplitN(id, "_", 2)
	_, err := ulid.Parse(parts[1])
	return err == nil
}
