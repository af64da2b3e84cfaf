package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisableColor(t *testing.T) {
	DisableColor()

	assert.Equal(t, "City", HeaderStyle.Render("City"))
	assert.Equal(t, "row", ActiveRowStyle.Render("row"))
}

func TestTerminalWidth(t *testing.T) {
	assert.Positive(t, TerminalWidth())
}
