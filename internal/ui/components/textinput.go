package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/edgefinder/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as a "/" search field.
type FilterInput struct {
	Model textinput.Model
}

// NewFilterInput creates an unfocused filter input.
func NewFilterInput(placeholder string, maxWidth int) FilterInput {
	ti := textinput.New()
	ti.Prompt = "/ "
	ti.Placeholder = placeholder
	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}
	return FilterInput{Model: ti}
}

// Focus starts capturing keys.
func (f *FilterInput) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur stops capturing keys and keeps the query.
func (f *FilterInput) Blur() {
	f.Model.Blur()
}

// Reset clears the query and blurs.
func (f *FilterInput) Reset() {
	f.Model.SetValue("")
	f.Model.Blur()
}

// Focused reports whether the input captures keys.
func (f FilterInput) Focused() bool {
	return f.Model.Focused()
}

// Update handles messages.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// View renders the input.
func (f FilterInput) View() string {
	return lipgloss.NewStyle().Foreground(theme.Cyan).Render(f.Model.View())
}

// Query returns the normalized query.
func (f FilterInput) Query() string {
	return strings.ToLower(strings.TrimSpace(f.Model.Value()))
}

// Matches reports whether text contains the query, case-insensitively.
// An empty query matches everything.
func (f FilterInput) Matches(text string) bool {
	q := f.Query()
	return q == "" || strings.Contains(strings.ToLower(text), q)
}
