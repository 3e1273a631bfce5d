package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	assert.True(t, IsNotFoundError(ErrNotFound))
	assert.True(t, IsNotFoundError(fmt.Errorf("failed to get row: %w", ErrNotFound)))
	assert.False(t, IsNotFoundError(errors.New("connection reset")))
	assert.False(t, IsNotFoundError(nil))
}
