package game

import "github.com/appengine-ltd/immune-defense/internal/catalog"

type EventKind int

const (
	EventStarted EventKind = iota
	EventAdded
	EventRemoved
	EventFeedback
	EventScenarioComplete
	EventAdvanced
	EventEnded
	// EventTrigger asks collaborators for a visual or audio cue; it carries
	// no state change.
	EventTrigger
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventFeedback:
		return "feedback"
	case EventScenarioComplete:
		return "scenario_complete"
	case EventAdvanced:
		return "advanced"
	case EventEnded:
		return "ended"
	case EventTrigger:
		return "trigger"
	default:
		return "unknown"
	}
}

// Event describes a change that has already been applied to the session.
type Event struct {
	Kind          EventKind
	SessionID     string
	Phase         Phase
	ScenarioIndex int
	Score         int
	ItemID        catalog.ItemID
	Feedback      *Feedback
	Restart       bool
}

// Observer is notified synchronously after each mutation. Implementations
// must not call back into the controller's mutators.
type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) {
	f(e)
}
