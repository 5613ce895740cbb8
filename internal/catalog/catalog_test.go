package catalog

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalLessons = `lessons:
  - id: vwap-basics
    title: Understanding VWAP
    duration: 5 min
    content:
      - VWAP resets daily.
`

func setupYAML(id string, winRate string, pattern string) string {
	return `setups:
  - id: ` + id + `
    name: Test Setup
    win_rate: ` + winRate + `
    avg_return: "+1%"
    timeframe: "5 min"
    difficulty: Easy
    bias: Neutral
    description: test
    how_to_spot: [a]
    entry_rules: [b]
    exit_rules: [c]
    best_time: "10:00 AM"
    risk_reward: "1:2"
    pattern: ` + pattern + `
`
}

func TestDefaultCatalog(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	require.Len(t, c.Setups, 6)
	require.Len(t, c.Lessons, 6)
	assert.Equal(t, "vwap-bounce", c.Setups[0].ID)
	assert.Equal(t, 68, c.Setups[0].WinRate)
	assert.Equal(t, Bullish, c.Setups[0].Bias)
	assert.Equal(t, "1:2.5", c.Setups[0].RiskReward)

	for _, s := range c.Setups {
		assert.NotEmpty(t, s.HowToSpot, s.ID)
		assert.NotEmpty(t, s.EntryRules, s.ID)
		assert.NotEmpty(t, s.ExitRules, s.ID)
	}
	assert.Empty(t, Validate(c), "shipped catalog must be consistent")
}

func TestLoadRejectsSchemaViolation(t *testing.T) {
	fsys := fstest.MapFS{
		setupsFile:  {Data: []byte(setupYAML("bad-rate", "150", "vwap-bounce"))},
		lessonsFile: {Data: []byte(minimalLessons)},
	}
	_, err := Load(fsys)
	require.Error(t, err)

	var invalid *ErrInvalidCatalog
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, setupsFile, invalid.Path)
}

func TestLoadMissingFile(t *testing.T) {
	fsys := fstest.MapFS{
		setupsFile: {Data: []byte(setupYAML("ok", "60", "vwap-bounce"))},
	}
	_, err := Load(fsys)
	require.Error(t, err)
	assert.Contains(t, err.Error(), lessonsFile)
}

func TestValidateReportsUnknownPattern(t *testing.T) {
	fsys := fstest.MapFS{
		setupsFile:  {Data: []byte(setupYAML("mystery", "60", "head-and-shoulders"))},
		lessonsFile: {Data: []byte(minimalLessons)},
	}
	c, err := Load(fsys)
	require.NoError(t, err, "unknown patterns load; the resolver falls back")

	issues := Validate(c)
	require.Len(t, issues, 1)
	assert.Equal(t, "mystery", issues[0].ID)
	assert.Contains(t, issues[0].Message, "head-and-shoulders")
}

func TestValidateDuplicates(t *testing.T) {
	c := &Catalog{
		Setups:  []Setup{{ID: "a", Pattern: "gap-fill"}, {ID: "a", Pattern: "gap-fill"}},
		Lessons: []Lesson{{ID: "x"}, {ID: "x"}},
	}
	issues := Validate(c)
	require.Len(t, issues, 2)
	assert.Equal(t, "setup", issues[0].Kind)
	assert.Equal(t, "lesson", issues[1].Kind)
}

func TestSelection(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)
	sel := NewSelection(c)

	_, ok := sel.Selected()
	assert.False(t, ok)

	assert.True(t, sel.Select("vwap-bounce"))
	assert.True(t, sel.Select("opening-range-breakout"))
	s, ok := sel.Selected()
	require.True(t, ok)
	assert.Equal(t, "opening-range-breakout", s.ID, "selection replaces atomically")

	assert.False(t, sel.Select("does-not-exist"))
	assert.Equal(t, "opening-range-breakout", sel.ID())

	sel.Clear()
	assert.Equal(t, "", sel.ID())
	_, ok = sel.Selected()
	assert.False(t, ok)
}
