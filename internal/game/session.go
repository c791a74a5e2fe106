package game

import (
	"time"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
)

// Feedback is one validated pick.
type Feedback struct {
	ItemID  catalog.ItemID `json:"item_id"`
	Correct bool           `json:"correct"`
	Message string         `json:"message"`
	At      time.Time      `json:"at"`
}

// Session is the mutable state of one player's game. It is owned by a single
// Controller and is not safe for concurrent use.
type Session struct {
	ID            string
	Phase         Phase
	ScenarioIndex int
	Score         int
	Selection     []catalog.ItemID
	Accumulated   []catalog.ItemID
	Status        map[catalog.ItemID]Status
	History       []Feedback
	Cleared       []string
}

func newSession(id string) *Session {
	return &Session{
		ID:     id,
		Phase:  PhaseMenu,
		Status: map[catalog.ItemID]Status{},
	}
}

// reset reinitialises the session in place for a fresh game.
func (s *Session) reset() {
	s.ScenarioIndex = 0
	s.Score = 0
	s.Cleared = nil
	s.resetScenario()
}

// resetScenario clears the per-scenario collections; score and cleared
// targets carry over.
func (s *Session) resetScenario() {
	s.Selection = nil
	s.Accumulated = nil
	s.Status = map[catalog.ItemID]Status{}
	s.History = nil
}

func (s *Session) markCleared(targetID string) {
	for _, id := range s.Cleared {
		if id == targetID {
			return
		}
	}
	s.Cleared = append(s.Cleared, targetID)
}

// HasCleared reports whether the target with the given id has been defeated.
func (s *Session) HasCleared(targetID string) bool {
	for _, id := range s.Cleared {
		if id == targetID {
			return true
		}
	}
	return false
}
