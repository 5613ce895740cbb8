package tabs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type section string

const (
	spot  section = "spot"
	entry section = "entry"
	exit  section = "exit"
)

func TestDefaultIsFirst(t *testing.T) {
	n := New(spot, entry, exit)
	assert.Equal(t, spot, n.Active())
	assert.Equal(t, 0, n.Index())
}

func TestSelectReplacesActive(t *testing.T) {
	n := New(spot, entry, exit)
	n.Select(exit)
	assert.Equal(t, exit, n.Active())

	// Reselecting is harmless.
	n.Select(exit)
	assert.Equal(t, exit, n.Active())
}

func TestSelectUnknownPanics(t *testing.T) {
	n := New(spot, entry, exit)
	assert.Panics(t, func() { n.Select(section("risk")) })
	assert.Equal(t, spot, n.Active(), "failed select must not move the tab")
}

func TestNextPrevWrap(t *testing.T) {
	n := New(spot, entry, exit)
	n.Prev()
	assert.Equal(t, exit, n.Active())
	n.Next()
	assert.Equal(t, spot, n.Active())
	n.Next()
	assert.Equal(t, entry, n.Active())
}

func TestReset(t *testing.T) {
	n := New(spot, entry, exit)
	n.Select(entry)
	n.Reset()
	assert.Equal(t, spot, n.Active())
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New(spot, entry, exit)
	b := New(spot, entry, exit)
	a.Select(exit)
	assert.Equal(t, spot, b.Active())
}

func TestNewRejectsBadSets(t *testing.T) {
	assert.Panics(t, func() { New[section]() })
	assert.Panics(t, func() { New(spot, spot) })
}

func TestHasAndIDs(t *testing.T) {
	n := New(1, 2, 3)
	assert.True(t, n.Has(2))
	assert.False(t, n.Has(4))

	ids := n.IDs()
	ids[0] = 99
	assert.Equal(t, []int{1, 2, 3}, n.IDs(), "IDs returns a copy")
}
