package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/immune-defense/internal/game"
)

// CuePlayer turns controller events into short sound cues. Until
// Initialize succeeds every cue is dropped, so the game runs without an
// audio device.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	logger      zerolog.Logger

	// played records cues for callers that want to inspect them.
	played func(Cue)
}

func NewCuePlayer(logger zerolog.Logger) *CuePlayer {
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer.
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops all sounds. beep has no speaker close, so clearing the
// mixer is enough to silence output.
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

func (p *CuePlayer) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.played != nil {
		p.played(c)
	}
	if !p.initialized {
		return
	}
	streamer := cueStreamer(c)
	if streamer == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// Observe implements game.Observer.
func (p *CuePlayer) Observe(e game.Event) {
	c := CueFor(e)
	if c == CueNone {
		return
	}
	p.logger.Debug().Str("cue", c.String()).Str("event", e.Kind.String()).Msg("play cue")
	p.Play(c)
}

// CueFor maps an event to the cue it should play.
func CueFor(e game.Event) Cue {
	switch e.Kind {
	case game.EventFeedback:
		if e.Feedback == nil {
			return CueNone
		}
		if e.Feedback.Correct {
			return CueSuccess
		}
		return CueFailure
	case game.EventScenarioComplete, game.EventEnded:
		return CueComplete
	case game.EventTrigger:
		return CueTrigger
	default:
		return CueNone
	}
}
