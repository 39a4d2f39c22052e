package jitter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinBounds(t *testing.T) {
	base := time.Second
	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultFactor)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestBackoff_GrowsAndCaps(t *testing.T) {
	base := time.Second
	max := 10 * time.Second

	// без джиттера нулевой коэффициент даёт чистую экспоненту
	assert.Equal(t, time.Second, Backoff(base, max, 0, 0))
	assert.Equal(t, 2*time.Second, Backoff(base, max, 1, 0))
	assert.Equal(t, 4*time.Second, Backoff(base, max, 2, 0))
	assert.Equal(t, max, Backoff(base, max, 10, 0))
}
