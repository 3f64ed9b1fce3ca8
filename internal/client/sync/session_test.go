package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSession_Budget(t *testing.T) {
	sess := NewSession(2, 0)

	assert.NotEmpty(t, sess.ID)
	assert.Equal(t, 2, sess.Remaining())

	assert.True(t, sess.Take())
	assert.True(t, sess.Take())
	// Бюджет исчерпан
	assert.False(t, sess.Take())
	assert.False(t, sess.Take())

	assert.Equal(t, 2, sess.Used())
	assert.Equal(t, 0, sess.Remaining())
}

func TestSession_UniqueIDs(t *testing.T) {
	first := NewSession(1, 0)
	second := NewSession(1, 0)

	assert.NotEqual(t, first.ID, second.ID)
}
