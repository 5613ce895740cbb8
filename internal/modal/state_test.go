package modal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextTable(t *testing.T) {
	tests := []struct {
		from  Phase
		event Event
		want  Phase
	}{
		{Closed, EventOpen, Opening},
		{Opening, EventMounted, Open},
		{Open, EventClose, Closing},
		{Closing, EventTeardown, Closed},
		{Opening, EventClose, Closing},
		{Closing, EventOpen, Open},
		{Open, EventOpen, Open},
		{Opening, EventOpen, Opening},
		{Closed, EventClose, Closed},
		{Closed, EventTeardown, Closed},
		{Open, EventTeardown, Open},
		{Open, EventMounted, Open},
		{Closing, EventClose, Closing},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+eventName(tt.event), func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.from, tt.event))
		})
	}
}

func TestOpenMountsAndLocksScroll(t *testing.T) {
	var m Machine
	assert.False(t, m.ScrollLocked())

	mounted := m.Open()
	assert.True(t, mounted)
	assert.Equal(t, Opening, m.Phase())
	assert.True(t, m.Visible())
	assert.True(t, m.ScrollLocked())

	m.Mounted()
	assert.Equal(t, Open, m.Phase())
	assert.True(t, m.ScrollLocked())
}

func TestOpenWhileOpenIsRefresh(t *testing.T) {
	var m Machine
	m.Open()
	m.Mounted()

	assert.False(t, m.Open(), "no second instance")
	assert.Equal(t, Open, m.Phase())
}

func TestCloseHidesThenTearsDown(t *testing.T) {
	var m Machine
	m.Open()
	m.Mounted()

	req, ok := m.Close()
	require.True(t, ok)
	assert.Equal(t, TeardownDelay, req.After)
	assert.Equal(t, Closing, m.Phase())
	assert.False(t, m.Visible())
	assert.True(t, m.ScrollLocked(), "scroll stays locked during the exit transition")
	assert.True(t, m.TeardownPending())

	assert.True(t, m.Teardown(req.Token))
	assert.Equal(t, Closed, m.Phase())
	assert.False(t, m.ScrollLocked())
}

func TestDoubleCloseSchedulesOnce(t *testing.T) {
	var m Machine
	m.Open()
	m.Mounted()

	first, ok := m.Close()
	require.True(t, ok)
	_, ok = m.Close()
	assert.False(t, ok)

	assert.True(t, m.Teardown(first.Token))
}

func TestReopenCancelsPendingTeardown(t *testing.T) {
	var m Machine
	m.Open()
	m.Mounted()
	req, _ := m.Close()

	mounted := m.Open()
	assert.False(t, mounted)
	assert.Equal(t, Open, m.Phase())
	assert.True(t, m.Visible())
	assert.False(t, m.TeardownPending())

	// The old timer fires late and must be ignored.
	assert.False(t, m.Teardown(req.Token))
	assert.Equal(t, Open, m.Phase())
}

func TestStaleTeardownAfterSecondClose(t *testing.T) {
	var m Machine
	m.Open()
	m.Mounted()
	first, _ := m.Close()
	m.Open()
	second, ok := m.Close()
	require.True(t, ok)

	assert.False(t, m.Teardown(first.Token))
	assert.Equal(t, Closing, m.Phase())
	assert.True(t, m.Teardown(second.Token))
	assert.Equal(t, Closed, m.Phase())
}

func TestDisposeSuppressesTeardown(t *testing.T) {
	var m Machine
	m.Open()
	m.Mounted()
	req, _ := m.Close()

	m.Dispose()
	assert.Equal(t, Closed, m.Phase())
	assert.False(t, m.Teardown(req.Token))
}

func TestCloseWhenClosedIsNoop(t *testing.T) {
	var m Machine
	_, ok := m.Close()
	assert.False(t, ok)
	assert.Equal(t, Closed, m.Phase())
}

func TestMotionSettlesOnTarget(t *testing.T) {
	for _, level := range []string{"full", "reduced", "off"} {
		t.Run(level, func(t *testing.T) {
			m := NewMotion(level)
			settled := false
			for i := 0; i < 600 && !settled; i++ {
				settled = m.Step(1)
			}
			require.True(t, settled)
			assert.Equal(t, 1.0, m.Position())
			assert.True(t, m.Settled(1))

			for i := 0; i < 600 && !m.Step(0); i++ {
			}
			assert.Equal(t, 0.0, m.Position())
		})
	}
}

func TestReducedMotionTrailsFull(t *testing.T) {
	full, reduced := NewMotion("full"), NewMotion("reduced")
	for i := 0; i < 6; i++ {
		full.Step(1)
		reduced.Step(1)
	}
	assert.Greater(t, reduced.Position(), 0.0)
	assert.Less(t, reduced.Position(), full.Position())
}

func eventName(e Event) string {
	switch e {
	case EventOpen:
		return "open"
	case EventMounted:
		return "mounted"
	case EventClose:
		return "close"
	case EventTeardown:
		return "teardown"
	}
	return "?"
}
