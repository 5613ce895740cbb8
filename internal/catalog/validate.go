package catalog

import (
	"fmt"

	"github.com/abhisek/edgefinder/internal/pattern"
)

// Issue is a consistency problem the schema cannot express.
type Issue struct {
	Kind    string
	ID      string
	Message string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s %s: %s", i.Kind, i.ID, i.Message)
}

// Validate cross-checks a loaded catalog. Unknown pattern identifiers
// still render (the resolver falls back), so they are reported rather
// than rejected at load time.
func Validate(c *Catalog) []Issue {
	var issues []Issue

	seen := make(map[string]bool, len(c.Setups))
	for _, s := range c.Setups {
		if seen[s.ID] {
			issues = append(issues, Issue{Kind: "setup", ID: s.ID, Message: "duplicate id"})
		}
		seen[s.ID] = true

		if !pattern.Known(s.Pattern) {
			issues = append(issues, Issue{
				Kind:    "setup",
				ID:      s.ID,
				Message: fmt.Sprintf("unknown pattern %q, falls back to %s", s.Pattern, pattern.DefaultID),
			})
		}
		if s.WinRate < 0 || s.WinRate > 100 {
			issues = append(issues, Issue{Kind: "setup", ID: s.ID, Message: fmt.Sprintf("win rate %d out of range", s.WinRate)})
		}
	}

	seen = make(map[string]bool, len(c.Lessons))
	for _, l := range c.Lessons {
		if seen[l.ID] {
			issues = append(issues, Issue{Kind: "lesson", ID: l.ID, Message: "duplicate id"})
		}
		seen[l.ID] = true
	}
	return issues
}
