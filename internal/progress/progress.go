// Package progress tracks which lessons are complete and which lesson is
// expanded. Both are immutable values: transitions return a new value, so
// the two state machines compose without touching each other.
package progress

import (
	"math"
	"sort"
)

// Set is a set of completed lesson identifiers.
type Set struct {
	ids map[string]struct{}
}

// Restore builds a set from persisted identifiers. Duplicates collapse.
func Restore(ids []string) Set {
	s := Set{ids: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return s
}

// Has reports whether id is completed.
func (s Set) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of completed lessons.
func (s Set) Len() int {
	return len(s.ids)
}

// Toggle returns a copy of s with id's membership flipped.
func (s Set) Toggle(id string) Set {
	next := Set{ids: make(map[string]struct{}, len(s.ids)+1)}
	for k := range s.ids {
		next.ids[k] = struct{}{}
	}
	if _, ok := next.ids[id]; ok {
		delete(next.ids, id)
	} else {
		next.ids[id] = struct{}{}
	}
	return next
}

// IDs returns the completed identifiers, sorted.
func (s Set) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Equal reports whether both sets hold the same identifiers.
func (s Set) Equal(o Set) bool {
	if len(s.ids) != len(o.ids) {
		return false
	}
	for id := range s.ids {
		if !o.Has(id) {
			return false
		}
	}
	return true
}

// Percentage returns round(100 × completed / total). A zero total yields 0.
func (s Set) Percentage(total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(len(s.ids)) / float64(total)))
}

// Expansion holds at most one expanded lesson identifier.
type Expansion struct {
	id string
}

// Expanded returns the expanded identifier and whether one is expanded.
func (e Expansion) Expanded() (string, bool) {
	return e.id, e.id != ""
}

// Is reports whether id is the expanded lesson.
func (e Expansion) Is(id string) bool {
	return id != "" && e.id == id
}

// Toggle collapses id if it is expanded, otherwise expands it in place of
// any previously expanded lesson.
func (e Expansion) Toggle(id string) Expansion {
	if e.id == id {
		return Expansion{}
	}
	return Expansion{id: id}
}
