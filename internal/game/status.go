package game

import "github.com/appengine-ltd/immune-defense/internal/catalog"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCorrect   Status = "correct"
	StatusIncorrect Status = "incorrect"
	StatusDisabled  Status = "disabled"
)

// ResolveStatus derives the selectability of an item from session state.
// The checks run in a fixed order and the first match wins:
//
//  1. a recorded correct/incorrect verdict
//  2. membership of the current selection (pending)
//  3. an unmet prerequisite, i.e. one neither validated nor selected (disabled)
//  4. pending
//
// Unknown ids resolve to pending. ResolveStatus never mutates the session.
func ResolveStatus(cat *catalog.Catalog, s *Session, id catalog.ItemID) Status {
	if recorded, ok := s.Status[id]; ok && (recorded == StatusCorrect || recorded == StatusIncorrect) {
		return recorded
	}
	if containsID(s.Selection, id) {
		return StatusPending
	}
	if cat != nil {
		if item, ok := cat.Item(id); ok {
			for _, req := range item.Requires {
				if !containsID(s.Accumulated, req) && !containsID(s.Selection, req) {
					return StatusDisabled
				}
			}
		}
	}
	return StatusPending
}

func containsID(ids []catalog.ItemID, id catalog.ItemID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
