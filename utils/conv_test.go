package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDurationS(t *testing.T) {
	assert.Equal(t, 120*time.Second, DurationS(120))
	assert.Equal(t, 1500*time.Millisecond, DurationS(1.5))
	assert.Equal(t, time.Duration(0), DurationS(0))
}

func TestSizes(t *testing.T) {
	assert.EqualValues(t, 8192, KiB(8))
	assert.EqualValues(t, 512, KiB(0.5))
	assert.EqualValues(t, 500*1024*1024, MiB(500))
	assert.EqualValues(t, 0, MiB(0))
}
