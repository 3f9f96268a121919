package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllowWithinLimit(t *testing.T) {
	l := New(3, time.Minute)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.Equal(t, 0, l.Remaining("10.0.0.1"))
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(1, time.Minute)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"))
}

func TestWindowExpiry(t *testing.T) {
	l := New(2, time.Minute)
	current := time.Now()
	l.now = func() time.Time { return current }

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	current = current.Add(2 * time.Minute)
	assert.True(t, l.Allow("10.0.0.1"))
	assert.Equal(t, 1, l.Remaining("10.0.0.1"))
}
