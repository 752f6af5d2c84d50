package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorize(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	assert.Equal(t, "\x1b[90mtext\x1b[0m", Colorize("text", ColorDarkGray, true))
	assert.Equal(t, "text", Colorize("text", ColorDarkGray, false))
	assert.Equal(t, "text", Colorize("text", 0, true))

	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, "text", Colorize("text", ColorDarkGray, true))
}
