package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceTo(t *testing.T) {
	var s State

	delta, col := s.AdvanceTo(3, 7)
	assert.Equal(t, 3, delta)
	assert.Equal(t, 7, col)
	assert.Equal(t, 3, s.Row)
	assert.Equal(t, 7, s.Col)

	// Negative delta means move up; the column is always absolute.
	delta, col = s.AdvanceTo(1, 0)
	assert.Equal(t, -2, delta)
	assert.Equal(t, 0, col)

	delta, _ = s.AdvanceTo(1, 5)
	assert.Equal(t, 0, delta)
	assert.Equal(t, 5, s.Col)
}

func TestMarkPromptEmittedIdempotent(t *testing.T) {
	var s State
	assert.False(t, s.PromptEmitted)
	s.MarkPromptEmitted()
	assert.True(t, s.PromptEmitted)
	s.MarkPromptEmitted()
	assert.True(t, s.PromptEmitted)
}

func TestIndependentSessions(t *testing.T) {
	var a, b State
	a.AdvanceTo(5, 2)
	assert.Equal(t, 0, b.Row)
	assert.Equal(t, 0, b.Col)
}
