package testutils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateTestToken returns a unique credential-shaped string so repeated
// test runs never collide
func GenerateTestToken(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String())
}
