// Package tabs provides single-select tab state over a fixed set of ids.
package tabs

import "fmt"

// Navigator holds exactly one active id out of a fixed, ordered set.
// The zero value is not usable; construct with New.
type Navigator[T comparable] struct {
	ids    []T
	active int
}

// New creates a navigator over ids. The first id is the default.
// It panics when ids is empty or contains duplicates.
func New[T comparable](ids ...T) Navigator[T] {
	if len(ids) == 0 {
		panic("tabs: navigator needs at least one id")
	}
	seen := make(map[T]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			panic(fmt.Sprintf("tabs: duplicate id %v", id))
		}
		seen[id] = true
	}
	return Navigator[T]{ids: append([]T(nil), ids...)}
}

// Active returns the active id.
func (n Navigator[T]) Active() T {
	return n.ids[n.active]
}

// Index returns the position of the active id.
func (n Navigator[T]) Index() int {
	return n.active
}

// IDs returns the ids in order.
func (n Navigator[T]) IDs() []T {
	return append([]T(nil), n.ids...)
}

// Has reports whether id belongs to the set.
func (n Navigator[T]) Has(id T) bool {
	return n.indexOf(id) >= 0
}

// Select makes id active. Selecting the active id is a no-op.
// Selecting an id outside the set is a programming error and panics.
func (n *Navigator[T]) Select(id T) {
	i := n.indexOf(id)
	if i < 0 {
		panic(fmt.Sprintf("tabs: unknown id %v", id))
	}
	n.active = i
}

// Next activates the following id, wrapping at the end.
func (n *Navigator[T]) Next() {
	n.active = (n.active + 1) % len(n.ids)
}

// Prev activates the preceding id, wrapping at the start.
func (n *Navigator[T]) Prev() {
	n.active = (n.active - 1 + len(n.ids)) % len(n.ids)
}

// Reset returns to the default (first) id.
func (n *Navigator[T]) Reset() {
	n.active = 0
}

func (n Navigator[T]) indexOf(id T) int {
	for i, v := range n.ids {
		if v == id {
			return i
		}
	}
	return -1
}
