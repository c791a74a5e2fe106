package game

import "github.com/appengine-ltd/immune-defense/internal/catalog"

// Snapshot is a read-only copy of everything a front-end renders.
type Snapshot struct {
	SessionID     string
	Phase         Phase
	ScenarioIndex int
	ScenarioCount int
	Scenario      catalog.Scenario
	Score         int
	Selection     []catalog.ItemID
	Accumulated   []catalog.ItemID
	Statuses      map[catalog.ItemID]Status
	History       []Feedback
	Cleared       []string
}

// LastFeedback returns the newest history entry, which drives the success
// and failure cues.
func (s Snapshot) LastFeedback() (Feedback, bool) {
	if len(s.History) == 0 {
		return Feedback{}, false
	}
	return s.History[len(s.History)-1], true
}

// NextExpected is the item the scenario expects next, or "" when the
// sequence is complete.
func (s Snapshot) NextExpected() catalog.ItemID {
	if len(s.Accumulated) >= len(s.Scenario.Sequence) {
		return ""
	}
	return s.Scenario.Sequence[len(s.Accumulated)]
}

// Blocked reports whether the next expected item has already been marked
// incorrect, which leaves the scenario unwinnable until a restart.
func (s Snapshot) Blocked() bool {
	if s.Phase != PhaseActive {
		return false
	}
	next := s.NextExpected()
	return next != "" && s.Statuses[next] == StatusIncorrect
}
