package automaton

import (
	"sort"
	"strings"
)

// State is an item set, assigned a unique integer id the first time it
// is inserted into a Collection (spec.md §3, "Item set / state"). State
// equality is defined over the set of items, not the id.
type State struct {
	ID    int
	items map[string]Item
	order []string
}

// newState builds a State from a slice of items, deduplicating by key
// (spec.md §3 invariant: "No production appears twice inside the same
// item set").
func newState(items []Item) *State {
	s := &State{items: make(map[string]Item)}
	for _, it := range items {
		s.add(it)
	}
	return s
}

func (s *State) add(it Item) bool {
	k := it.key()
	if _, ok := s.items[k]; ok {
		return false
	}
	s.items[k] = it
	s.order = append(s.order, k)
	return true
}

// Items returns the state's items in insertion order.
func (s *State) Items() []Item {
	out := make([]Item, len(s.order))
	for i, k := range s.order {
		out[i] = s.items[k]
	}
	return out
}

// Len returns the number of items in the state.
func (s *State) Len() int { return len(s.order) }

// coreKey is a canonical string identity for the state's item set, used
// to detect when Goto produces a set already present in the collection.
func (s *State) coreKey() string {
	keys := make([]string, 0, len(s.order))
	// order is insertion order, not sorted; build a stable key by
	// collecting into a set-independent representation.
	seen := make(map[string]bool, len(s.order))
	for _, k := range s.order {
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return strings.Join(keys, "\x00")
}
