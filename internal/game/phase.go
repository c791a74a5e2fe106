package game

// Phase is the top-level lifecycle state of a session.
type Phase string

const (
	PhaseMenu     Phase = "menu"
	PhaseReady    Phase = "ready"
	PhaseActive   Phase = "active"
	PhaseComplete Phase = "scenario_complete"
	PhaseEnded    Phase = "ended"
)

func (p Phase) String() string {
	return string(p)
}

// Idle reports whether the phase is an entry state waiting for a start.
func (p Phase) Idle() bool {
	return p == PhaseMenu || p == PhaseReady
}

// start/restart may be invoked from any phase, so every phase can reach
// active.
var phaseTransitions = map[Phase][]Phase{
	PhaseMenu:     {PhaseActive},
	PhaseReady:    {PhaseActive},
	PhaseActive:   {PhaseActive, PhaseComplete},
	PhaseComplete: {PhaseActive, PhaseEnded},
	PhaseEnded:    {PhaseActive},
}

// CanTransitionTo checks whether moving from p to target is defined.
func (p Phase) CanTransitionTo(target Phase) bool {
	for _, allowed := range phaseTransitions[p] {
		if allowed == target {
			return true
		}
	}
	return false
}
