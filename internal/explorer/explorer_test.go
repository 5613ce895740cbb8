package explorer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/edgefinder/internal/catalog"
	"github.com/abhisek/edgefinder/internal/modal"
	"github.com/abhisek/edgefinder/internal/pattern"
)

func twoSetups() *catalog.Catalog {
	return &catalog.Catalog{Setups: []catalog.Setup{
		{
			ID:         "vwap-bounce",
			Pattern:    pattern.VWAPBounce,
			HowToSpot:  []string{"trend above vwap", "pullback on low volume"},
			EntryRules: []string{"close above vwap"},
			ExitRules:  []string{"target prior high", "stop below vwap", "trail 8 ema"},
		},
		{
			ID:         "opening-range-breakout",
			Pattern:    pattern.OpeningRange,
			HowToSpot:  []string{"mark the range"},
			EntryRules: []string{"break with volume"},
			ExitRules:  []string{"measured move"},
		},
	}}
}

func TestScenarioSelectSwitchTabReselect(t *testing.T) {
	e := New(twoSetups(), true)

	_, ok := e.Select("vwap-bounce")
	require.True(t, ok)
	assert.Equal(t, modal.Open, e.Phase())
	assert.Equal(t, Spot, e.Section())
	assert.Equal(t, "How to Spot", e.Section().Label())

	e.SelectTab(Exit)
	assert.Equal(t, []string{"target prior high", "stop below vwap", "trail 8 ema"}, e.Rules())

	_, ok = e.Select("opening-range-breakout")
	require.True(t, ok)
	assert.Equal(t, modal.Open, e.Phase(), "no close in between")
	assert.Equal(t, Spot, e.Section())
	assert.Equal(t, []string{"mark the range"}, e.Rules())
	assert.Equal(t, pattern.OpeningRange, e.Chart().Scene().PatternID)
}

func TestSwitchRestartsDiagramFromHidden(t *testing.T) {
	e := New(twoSetups(), false)
	reqs, _ := e.Select("vwap-bounce")
	req := reqs.Frame
	for i := 0; i < 15; i++ {
		req, _ = e.Frame(req.Token)
	}
	require.Greater(t, e.Chart().Elapsed(), time.Duration(0))

	next, _ := e.Select("opening-range-breakout")
	assert.Equal(t, time.Duration(0), e.Chart().Elapsed())
	assert.True(t, next.Frame.Valid())

	_, ok := e.Frame(req.Token)
	assert.False(t, ok, "old diagram frames are stale")
}

func TestCloseThenReopenKeepsSelection(t *testing.T) {
	e := New(twoSetups(), true)
	e.Select("vwap-bounce")

	teardown, ok := e.Close()
	require.True(t, ok)
	assert.Equal(t, modal.TeardownDelay, teardown.After)
	assert.False(t, e.Visible())
	assert.Equal(t, modal.Closing, e.Phase())

	reqs, ok := e.Select("vwap-bounce")
	require.True(t, ok)
	assert.Equal(t, modal.Open, e.Phase())
	assert.False(t, reqs.Changed, "same setup is not reloaded")

	assert.False(t, e.Teardown(teardown.Token), "cancelled teardown must not fire")
	s, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, "vwap-bounce", s.ID)
}

func TestSelectReportsChangedContent(t *testing.T) {
	e := New(twoSetups(), true)

	reqs, _ := e.Select("vwap-bounce")
	assert.True(t, reqs.Changed)
	reqs, _ = e.Select("vwap-bounce")
	assert.False(t, reqs.Changed)
	reqs, _ = e.Select("opening-range-breakout")
	assert.True(t, reqs.Changed)
}

func TestCloseThenSelectOtherDuringTeardown(t *testing.T) {
	e := New(twoSetups(), true)
	e.Select("vwap-bounce")
	teardown, _ := e.Close()

	e.Select("opening-range-breakout")
	assert.False(t, e.Teardown(teardown.Token))

	s, ok := e.Current()
	require.True(t, ok)
	assert.Equal(t, "opening-range-breakout", s.ID)
	assert.Equal(t, modal.Open, e.Phase())
}

func TestTeardownClearsSelection(t *testing.T) {
	e := New(twoSetups(), true)
	e.Select("vwap-bounce")
	e.SelectTab(Entry)
	teardown, _ := e.Close()

	_, ok := e.Current()
	assert.True(t, ok, "selection holds through the exit transition")
	assert.True(t, e.ScrollLocked())

	require.True(t, e.Teardown(teardown.Token))
	assert.Equal(t, modal.Closed, e.Phase())
	assert.False(t, e.ScrollLocked())
	_, ok = e.Current()
	assert.False(t, ok)
	assert.False(t, e.Chart().Loaded())
	assert.Equal(t, Spot, e.Section())
	assert.Nil(t, e.Rules())
}

func TestDisposeSuppressesPendingTimers(t *testing.T) {
	e := New(twoSetups(), false)
	reqs, _ := e.Select("vwap-bounce")
	teardown, _ := e.Close()

	e.Dispose()
	assert.False(t, e.Teardown(teardown.Token))
	_, ok := e.Frame(reqs.Frame.Token)
	assert.False(t, ok)
	_, ok = e.Reveal(reqs.Reveal.Token)
	assert.False(t, ok)
	assert.False(t, e.Live())
}

func TestUnknownSetupIgnored(t *testing.T) {
	e := New(twoSetups(), true)
	_, ok := e.Select("nope")
	assert.False(t, ok)
	assert.Equal(t, modal.Closed, e.Phase())
}

func TestRuleStagger(t *testing.T) {
	e := New(twoSetups(), false)
	reqs, _ := e.Select("vwap-bounce")
	assert.Empty(t, e.VisibleRules())

	req, ok := e.Reveal(reqs.Reveal.Token)
	require.True(t, ok)
	assert.Equal(t, RuleStagger, req.After)
	assert.Equal(t, []string{"trend above vwap"}, e.VisibleRules())

	req, ok = e.Reveal(req.Token)
	require.True(t, ok)
	assert.False(t, req.Valid(), "all items shown")
	assert.Len(t, e.VisibleRules(), 2)

	restart := e.NextTab()
	assert.Equal(t, Entry, e.Section())
	assert.Empty(t, e.VisibleRules())
	_, ok = e.Reveal(restart.Token)
	assert.True(t, ok)
	assert.Equal(t, []string{"close above vwap"}, e.VisibleRules())
}

func TestTabWrapAndUnknownPanics(t *testing.T) {
	e := New(twoSetups(), true)
	e.Select("vwap-bounce")
	e.PrevTab()
	assert.Equal(t, Exit, e.Section())
	e.NextTab()
	assert.Equal(t, Spot, e.Section())

	assert.Panics(t, func() { e.SelectTab(Section("risk")) })
}
