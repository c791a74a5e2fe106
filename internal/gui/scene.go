package gui

import (
	"math"
	"time"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
	"github.com/appengine-ltd/immune-defense/internal/game"
)

const maxOrbiters = 24

// orbiter is a deployed immune cell circling the pathogen.
type orbiter struct {
	ItemID catalog.ItemID
	Radius float64
	Speed  float64 // radians per second
	Angle  float64
	Tilt   float64
}

// scene is the renderer-independent state of the 3D view. It follows the
// controller through game.Observer.
type scene struct {
	cat      *catalog.Catalog
	target   catalog.Target
	orbiters []orbiter
	// pulse flashes the pathogen after a verdict; >0 correct, <0 incorrect.
	pulse   float64
	spawned int
}

func newScene(cat *catalog.Catalog) *scene {
	s := &scene{cat: cat}
	if sc, ok := cat.Scenario(0); ok {
		s.target = sc.Target
	}
	return s
}

func (s *scene) Observe(e game.Event) {
	switch e.Kind {
	case game.EventStarted, game.EventAdvanced:
		s.orbiters = nil
		s.pulse = 0
		if sc, ok := s.cat.Scenario(e.ScenarioIndex); ok {
			s.target = sc.Target
		}
	case game.EventTrigger:
		item, ok := s.cat.Item(e.ItemID)
		if !ok || item.Kind != catalog.KindCell {
			return
		}
		s.spawn(item.ID)
	case game.EventFeedback:
		if e.Feedback == nil {
			return
		}
		s.pulse = -1
		if e.Feedback.Correct {
			s.pulse = 1
		}
	case game.EventScenarioComplete:
		s.pulse = 1
	}
}

func (s *scene) spawn(id catalog.ItemID) {
	n := float64(s.spawned)
	s.spawned++
	s.orbiters = append(s.orbiters, orbiter{
		ItemID: id,
		Radius: 1.6 + 0.25*math.Mod(n, 4),
		Speed:  0.8 + 0.15*math.Mod(n, 3),
		Angle:  n * 2.4,
		Tilt:   0.35 * math.Sin(n),
	})
	if len(s.orbiters) > maxOrbiters {
		s.orbiters = append([]orbiter(nil), s.orbiters[len(s.orbiters)-maxOrbiters:]...)
	}
}

func (s *scene) update(delta time.Duration) {
	dt := delta.Seconds()
	for i := range s.orbiters {
		s.orbiters[i].Angle = math.Mod(s.orbiters[i].Angle+s.orbiters[i].Speed*dt, 2*math.Pi)
	}
	decay := dt * 1.5
	switch {
	case s.pulse > 0:
		s.pulse = math.Max(0, s.pulse-decay)
	case s.pulse < 0:
		s.pulse = math.Min(0, s.pulse+decay)
	}
}

// position is where o currently is, relative to the target position.
func (s *scene) position(o orbiter) catalog.Vec3 {
	c := s.target.Position
	return catalog.Vec3{
		X: c.X + float32(o.Radius*math.Cos(o.Angle)),
		Y: c.Y + float32(o.Radius*o.Tilt*math.Sin(o.Angle)),
		Z: c.Z + float32(o.Radius*math.Sin(o.Angle)),
	}
}

// targetRadius grows with difficulty so harder pathogens look bigger.
func (s *scene) targetRadius() float32 {
	return 0.6 + 0.1*float32(s.target.Difficulty)
}
