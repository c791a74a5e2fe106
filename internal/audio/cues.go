package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

const (
	sampleRate = beep.SampleRate(48000)
)

type Cue int

const (
	CueNone Cue = iota
	CueSuccess
	CueFailure
	CueComplete
	CueTrigger
)

func (c Cue) String() string {
	switch c {
	case CueSuccess:
		return "success"
	case CueFailure:
		return "failure"
	case CueComplete:
		return "complete"
	case CueTrigger:
		return "trigger"
	default:
		return "none"
	}
}

// cueDuration is how long each cue plays.
func cueDuration(c Cue) time.Duration {
	switch c {
	case CueSuccess:
		return 220 * time.Millisecond
	case CueFailure:
		return 180 * time.Millisecond
	case CueComplete:
		return 720 * time.Millisecond
	case CueTrigger:
		return 90 * time.Millisecond
	default:
		return 0
	}
}

// cueStreamer returns a finite streamer for c, or nil for CueNone.
func cueStreamer(c Cue) beep.Streamer {
	n := sampleRate.N(cueDuration(c))
	switch c {
	case CueSuccess:
		return beep.Take(n, NewChimeGenerator(sampleRate, []float64{660, 880}, cueDuration(c)))
	case CueFailure:
		return beep.Take(n, NewBuzzGenerator(sampleRate, 120))
	case CueComplete:
		return beep.Take(n, NewChimeGenerator(sampleRate, []float64{523.25, 659.25, 783.99, 1046.5}, cueDuration(c)))
	case CueTrigger:
		return beep.Take(n, NewBlipGenerator(sampleRate, 1200))
	default:
		return nil
	}
}

// ChimeGenerator plays notes in equal slices of the cue, each with a short
// attack and exponential decay.
type ChimeGenerator struct {
	sr      beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
}

func NewChimeGenerator(sr beep.SampleRate, notes []float64, total time.Duration) *ChimeGenerator {
	noteLen := sr.N(total)
	if len(notes) > 0 {
		noteLen /= len(notes)
	}
	if noteLen < 1 {
		noteLen = 1
	}
	return &ChimeGenerator{sr: sr, notes: notes, noteLen: noteLen}
}

func (g *ChimeGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		sample := 0.0
		if len(g.notes) > 0 {
			idx := min(g.pos/g.noteLen, len(g.notes)-1)
			local := float64(g.pos-idx*g.noteLen) / float64(g.sr)
			attack := math.Min(local/0.005, 1.0)
			envelope := attack * math.Exp(-local*9)
			freq := g.notes[idx]
			sample = 0.25 * envelope * (math.Sin(2*math.Pi*freq*local) + 0.3*math.Sin(2*math.Pi*freq*2*local))
		}
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ChimeGenerator) Err() error {
	return nil
}

// BuzzGenerator generates a low-pitch buzz sound
type BuzzGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBuzzGenerator(sr beep.SampleRate, freq float64) *BuzzGenerator {
	return &BuzzGenerator{sr: sr, freq: freq}
}

func (g *BuzzGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)

		sample := 0.0
		sample += 0.3 * math.Sin(2*math.Pi*g.freq*t)
		sample += 0.15 * math.Sin(2*math.Pi*g.freq*2*t)
		sample += 0.075 * math.Sin(2*math.Pi*g.freq*3*t)

		envelope := math.Min(t/0.02, 1.0)
		sample *= envelope * 0.2

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BuzzGenerator) Err() error {
	return nil
}

// BlipGenerator is a short falling sine used when a cell is deployed.
type BlipGenerator struct {
	sr   beep.SampleRate
	freq float64
	pos  int
}

func NewBlipGenerator(sr beep.SampleRate, freq float64) *BlipGenerator {
	return &BlipGenerator{sr: sr, freq: freq}
}

func (g *BlipGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.sr)
		freq := g.freq * (1 - 0.4*math.Min(t/0.09, 1.0))
		sample := 0.2 * math.Exp(-t*30) * math.Sin(2*math.Pi*freq*t)
		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *BlipGenerator) Err() error {
	return nil
}
