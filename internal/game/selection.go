package game

import "github.com/appengine-ltd/immune-defense/internal/catalog"

// Add appends id to the selection. It is a no-op when id is unknown, already
// selected or its status is anything but pending; the return value reports
// whether the selection changed.
func (s *Session) Add(cat *catalog.Catalog, id catalog.ItemID) bool {
	if !cat.Has(id) || containsID(s.Selection, id) {
		return false
	}
	if ResolveStatus(cat, s, id) != StatusPending {
		return false
	}
	s.Selection = append(s.Selection, id)
	return true
}

// Remove drops the first occurrence of id, keeping the order of the rest.
func (s *Session) Remove(id catalog.ItemID) bool {
	for i, candidate := range s.Selection {
		if candidate != id {
			continue
		}
		next := make([]catalog.ItemID, 0, len(s.Selection)-1)
		next = append(next, s.Selection[:i]...)
		next = append(next, s.Selection[i+1:]...)
		s.Selection = next
		return true
	}
	return false
}
