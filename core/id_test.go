package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID("turn")

	assert.True(t, strings.HasPrefix(id, "turn_"))
	assert.True(t, IsValidULID(id))
}

func TestNewID_Unique(t *testing.T) {
	first := NewID("tc")
	second := NewID("tc")

	require.NotEqual(t, first, second)
}

func TestNewID_PanicsOnEmptyPrefix(t *testing.T) {
	assert.Panics(t, func() { NewID("") })
	assert.Panics(t, func() { NewID("   ") })
}

func TestIsValidULID(t *testing.T) {
	assert.True(t, IsValidULID(NewID("ghi")))
	assert.False(t, IsValidULID("no-underscore"))
	assert.False(t, IsValidULID("ghi_notaulid"))
	assert.False(t, IsValidULID(""))
}
