package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplaceReportsDisplacement(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Replace(1, "token-a"), "first login displaces nothing")
	assert.True(t, s.Replace(1, "token-b"), "second login displaces the first")

	tok, ok := s.Token(1)
	assert.True(t, ok)
	assert.Equal(t, "token-b", tok, "only the newest token is kept")
}

func TestTokenUnknownCustomer(t *testing.T) {
	s := NewStore()

	_, ok := s.Token(99)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	s := NewStore()
	s.Replace(1, "token-a")
	s.Clear(1)

	_, ok := s.Token(1)
	assert.False(t, ok)
	assert.False(t, s.Replace(1, "token-b"), "cleared session counts as absent")
}
