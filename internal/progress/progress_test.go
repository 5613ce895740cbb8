package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var sixLessons = []string{"vwap-basics", "opening-range", "gaps", "trend-days", "volume-analysis", "risk-management"}

func TestToggleIsInvolution(t *testing.T) {
	tests := []struct {
		name  string
		start []string
		id    string
	}{
		{"empty set", nil, "gaps"},
		{"absent id", []string{"vwap-basics"}, "gaps"},
		{"present id", []string{"vwap-basics", "gaps"}, "gaps"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Restore(tt.start)
			twice := s.Toggle(tt.id).Toggle(tt.id)
			assert.True(t, s.Equal(twice))
		})
	}
}

func TestToggleDoesNotMutateReceiver(t *testing.T) {
	s := Restore([]string{"gaps"})
	_ = s.Toggle("gaps")
	assert.True(t, s.Has("gaps"))
}

func TestPercentage(t *testing.T) {
	tests := []struct {
		completed []string
		want      int
	}{
		{nil, 0},
		{sixLessons[:1], 17},
		{sixLessons[:2], 33},
		{sixLessons[:3], 50},
		{sixLessons[:4], 67},
		{sixLessons, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Restore(tt.completed).Percentage(len(sixLessons)))
	}
	assert.Equal(t, 0, Restore(sixLessons).Percentage(0))
}

func TestThreeThenUndoOne(t *testing.T) {
	s := Restore(nil)
	for _, id := range sixLessons[:3] {
		s = s.Toggle(id)
	}
	assert.Equal(t, 50, s.Percentage(6))

	s = s.Toggle(sixLessons[1])
	assert.Equal(t, 33, s.Percentage(6))
}

func TestRestoreCollapsesDuplicates(t *testing.T) {
	s := Restore([]string{"gaps", "gaps", "trend-days"})
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, []string{"gaps", "trend-days"}, s.IDs())
}

func TestExpansionCollapseOnReselect(t *testing.T) {
	var e Expansion
	e = e.Toggle("gaps").Toggle("gaps")
	_, ok := e.Expanded()
	assert.False(t, ok)
}

func TestExpansionSingleExpanded(t *testing.T) {
	var e Expansion
	e = e.Toggle("gaps").Toggle("trend-days")

	id, ok := e.Expanded()
	assert.True(t, ok)
	assert.Equal(t, "trend-days", id)
	assert.False(t, e.Is("gaps"))
	assert.True(t, e.Is("trend-days"))
}

func TestCompletionAndExpansionIndependent(t *testing.T) {
	var e Expansion
	s := Restore(nil)

	e = e.Toggle("gaps")
	s = s.Toggle("gaps").Toggle("trend-days")
	assert.True(t, e.Is("gaps"))

	e = e.Toggle("gaps")
	assert.Equal(t, 2, s.Len())
}
