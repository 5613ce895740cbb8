package timer

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
)

func TestSlotFireArmedToken(t *testing.T) {
	var s Slot
	req := s.Arm(200 * time.Millisecond)

	assert.True(t, req.Valid())
	assert.Equal(t, 200*time.Millisecond, req.After)
	assert.True(t, s.Pending())
	assert.True(t, s.Fire(req.Token))
	assert.False(t, s.Pending())
}

func TestSlotFireTwiceOnlyActsOnce(t *testing.T) {
	var s Slot
	req := s.Arm(time.Second)

	assert.True(t, s.Fire(req.Token))
	assert.False(t, s.Fire(req.Token))
}

func TestSlotCancelSuppressesCallback(t *testing.T) {
	var s Slot
	req := s.Arm(time.Second)
	s.Cancel()

	assert.False(t, s.Pending())
	assert.False(t, s.Fire(req.Token))
}

func TestSlotRearmSupersedesOlderToken(t *testing.T) {
	var s Slot
	first := s.Arm(time.Second)
	second := s.Arm(time.Second)

	assert.NotEqual(t, first.Token, second.Token)
	assert.False(t, s.Fire(first.Token), "stale token must not fire")
	assert.True(t, s.Fire(second.Token))
}

func TestSlotZeroTokenNeverFires(t *testing.T) {
	var s Slot
	assert.False(t, s.Fire(0))
	assert.False(t, Request{}.Valid())
}

func TestCmdNilForInvalidRequest(t *testing.T) {
	assert.Nil(t, Cmd(Request{}, func(Token) tea.Msg { return nil }))
}
