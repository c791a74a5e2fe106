package game

import (
	"fmt"
	"time"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
)

const (
	PointsPerStep   = 10
	CompletionBonus = 50
)

type Outcome int

const (
	OutcomeIgnored Outcome = iota
	OutcomeCorrect
	OutcomeIncorrect
	OutcomeCompleted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCorrect:
		return "correct"
	case OutcomeIncorrect:
		return "incorrect"
	case OutcomeCompleted:
		return "completed"
	default:
		return "ignored"
	}
}

type SubmitResult struct {
	Outcome  Outcome
	Feedback Feedback
	// Discarded holds the picks that were cleared without being evaluated.
	Discarded []catalog.ItemID
	Points    int
}

// Engine checks submitted picks against a scenario's correct sequence.
type Engine struct {
	catalog *catalog.Catalog
	now     func() time.Time
}

func NewEngine(cat *catalog.Catalog, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{catalog: cat, now: now}
}

// Submit evaluates only the most recently added pick against the next
// expected step of sc. Earlier picks in the selection are cleared along with
// it. An empty selection leaves the session untouched.
func (e *Engine) Submit(s *Session, sc catalog.Scenario) SubmitResult {
	if len(s.Selection) == 0 {
		return SubmitResult{Outcome: OutcomeIgnored}
	}

	last := s.Selection[len(s.Selection)-1]
	discarded := append([]catalog.ItemID(nil), s.Selection[:len(s.Selection)-1]...)
	name := e.displayName(last)

	var expected catalog.ItemID
	if len(s.Accumulated) < len(sc.Sequence) {
		expected = sc.Sequence[len(s.Accumulated)]
	}

	s.Selection = nil
	if expected == "" || last != expected {
		s.Status[last] = StatusIncorrect
		fb := e.record(s, last, false, fmt.Sprintf("%s is not the right choice at this stage. Try a different immune response.", name))
		return SubmitResult{Outcome: OutcomeIncorrect, Feedback: fb, Discarded: discarded}
	}

	s.Status[last] = StatusCorrect
	s.Accumulated = append(s.Accumulated, last)
	points := PointsPerStep
	fb := e.record(s, last, true, fmt.Sprintf("Good choice! %s is effective here.", name))

	outcome := OutcomeCorrect
	if len(s.Accumulated) == len(sc.Sequence) {
		points += CompletionBonus
		s.markCleared(sc.Target.ID)
		outcome = OutcomeCompleted
	}
	s.Score += points
	return SubmitResult{Outcome: outcome, Feedback: fb, Discarded: discarded, Points: points}
}

func (e *Engine) record(s *Session, id catalog.ItemID, correct bool, message string) Feedback {
	fb := Feedback{ItemID: id, Correct: correct, Message: message, At: e.now()}
	s.History = append(s.History, fb)
	return fb
}

func (e *Engine) displayName(id catalog.ItemID) string {
	if item, ok := e.catalog.Item(id); ok && item.Name != "" {
		return item.Name
	}
	return string(id)
}
