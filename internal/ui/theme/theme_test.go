package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWinRateColor(t *testing.T) {
	assert.Equal(t, Green, WinRateColor(71))
	assert.Equal(t, Green, WinRateColor(65))
	assert.Equal(t, Amber, WinRateColor(58))
	assert.Equal(t, Amber, WinRateColor(55))
	assert.Equal(t, TextDim, WinRateColor(54))
}

func TestBiasAndDifficultyColors(t *testing.T) {
	assert.Equal(t, Cyan, BiasColor("Bullish"))
	assert.Equal(t, Red, BiasColor("Bearish"))
	assert.Equal(t, Amber, BiasColor("Neutral"))

	assert.Equal(t, Green, DifficultyColor("Easy"))
	assert.Equal(t, Amber, DifficultyColor("Medium"))
	assert.Equal(t, Red, DifficultyColor("Advanced"))
}
