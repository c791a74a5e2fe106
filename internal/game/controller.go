package game

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
)

// Controller owns one Session and is the only way to mutate it. Run one
// controller per player; controllers share nothing but the immutable
// catalog. A Controller is not safe for concurrent use.
type Controller struct {
	catalog   *catalog.Catalog
	engine    *Engine
	session   *Session
	logger    zerolog.Logger
	observers []Observer
}

type Option func(*controllerOptions)

type controllerOptions struct {
	logger    zerolog.Logger
	now       func() time.Time
	observers []Observer
	sessionID string
}

func WithLogger(l zerolog.Logger) Option {
	return func(o *controllerOptions) { o.logger = l }
}

// WithClock overrides the clock used to timestamp feedback.
func WithClock(now func() time.Time) Option {
	return func(o *controllerOptions) { o.now = now }
}

func WithObserver(obs Observer) Option {
	return func(o *controllerOptions) {
		if obs != nil {
			o.observers = append(o.observers, obs)
		}
	}
}

func WithSessionID(id string) Option {
	return func(o *controllerOptions) { o.sessionID = id }
}

func NewController(cat *catalog.Catalog, opts ...Option) *Controller {
	o := controllerOptions{logger: zerolog.Nop(), now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.sessionID == "" {
		o.sessionID = uuid.NewString()
	}
	return &Controller{
		catalog:   cat,
		engine:    NewEngine(cat, o.now),
		session:   newSession(o.sessionID),
		logger:    o.logger.With().Str("session", o.sessionID).Logger(),
		observers: o.observers,
	}
}

// Observe registers an additional observer.
func (c *Controller) Observe(obs Observer) {
	if obs != nil {
		c.observers = append(c.observers, obs)
	}
}

func (c *Controller) Catalog() *catalog.Catalog {
	return c.catalog
}

func (c *Controller) Phase() Phase {
	return c.session.Phase
}

// Scenario returns the scenario the session is currently on.
func (c *Controller) Scenario() (catalog.Scenario, bool) {
	return c.catalog.Scenario(c.session.ScenarioIndex)
}

// Start reinitialises the session and begins the first scenario. It is
// valid from every phase.
func (c *Controller) Start() {
	c.begin(false)
}

// Restart has the same effect as Start.
func (c *Controller) Restart() {
	c.begin(true)
}

func (c *Controller) begin(restart bool) {
	c.session.reset()
	c.session.Phase = PhaseActive
	ev := c.logger.Info().Int("scenario", c.session.ScenarioIndex)
	if restart {
		ev.Msg("game restarted")
	} else {
		ev.Msg("game started")
	}
	c.emit(Event{Kind: EventStarted, Restart: restart})
}

// Advance moves from a completed scenario to the next one, or ends the game
// when none is left. It reports whether anything changed.
func (c *Controller) Advance() bool {
	if !c.definedIn(PhaseComplete, "advance") {
		return false
	}
	next := c.session.ScenarioIndex + 1
	if _, ok := c.catalog.Scenario(next); !ok {
		c.session.Phase = PhaseEnded
		c.logger.Info().Int("score", c.session.Score).Msg("game completed")
		c.emit(Event{Kind: EventEnded})
		return true
	}
	c.session.ScenarioIndex = next
	c.session.resetScenario()
	c.session.Phase = PhaseActive
	c.logger.Info().Int("scenario", next).Msg("advanced to next scenario")
	c.emit(Event{Kind: EventAdvanced})
	return true
}

func (c *Controller) Add(id catalog.ItemID) bool {
	if !c.definedIn(PhaseActive, "add") {
		return false
	}
	if !c.session.Add(c.catalog, id) {
		c.logger.Debug().Str("item", string(id)).Str("status", string(c.Status(id))).Msg("add ignored")
		return false
	}
	c.logger.Debug().Str("item", string(id)).Msg("added response")
	c.emit(Event{Kind: EventAdded, ItemID: id})
	return true
}

func (c *Controller) Remove(id catalog.ItemID) bool {
	if !c.definedIn(PhaseActive, "remove") {
		return false
	}
	if !c.session.Remove(id) {
		return false
	}
	c.logger.Debug().Str("item", string(id)).Msg("removed response")
	c.emit(Event{Kind: EventRemoved, ItemID: id})
	return true
}

// Submit validates the latest pick. On the final correct step the session
// moves to scenario_complete.
func (c *Controller) Submit() SubmitResult {
	if !c.definedIn(PhaseActive, "submit") {
		return SubmitResult{Outcome: OutcomeIgnored}
	}
	sc, ok := c.Scenario()
	if !ok {
		return SubmitResult{Outcome: OutcomeIgnored}
	}
	res := c.engine.Submit(c.session, sc)
	if res.Outcome == OutcomeIgnored {
		return res
	}

	if len(res.Discarded) > 0 {
		ids := make([]string, len(res.Discarded))
		for i, id := range res.Discarded {
			ids[i] = string(id)
		}
		c.logger.Debug().Strs("discarded", ids).Msg("earlier picks cleared without evaluation")
	}
	c.logger.Info().
		Str("item", string(res.Feedback.ItemID)).
		Str("outcome", res.Outcome.String()).
		Int("score", c.session.Score).
		Msg("validation result")

	fb := res.Feedback
	c.emit(Event{Kind: EventFeedback, ItemID: fb.ItemID, Feedback: &fb})

	if res.Outcome == OutcomeCompleted && c.session.Phase.CanTransitionTo(PhaseComplete) {
		c.session.Phase = PhaseComplete
		c.logger.Info().Str("target", sc.Target.ID).Msg("scenario completed")
		c.emit(Event{Kind: EventScenarioComplete, ItemID: fb.ItemID})
	}
	return res
}

// Status is the derived status of id in the current session.
func (c *Controller) Status(id catalog.ItemID) Status {
	return ResolveStatus(c.catalog, c.session, id)
}

// Trigger forwards a cue request for id to observers. It never changes the
// session.
func (c *Controller) Trigger(id catalog.ItemID) {
	c.logger.Debug().Str("item", string(id)).Msg("activated immune response")
	c.emit(Event{Kind: EventTrigger, ItemID: id})
}

func (c *Controller) Snapshot() Snapshot {
	s := c.session
	snap := Snapshot{
		SessionID:     s.ID,
		Phase:         s.Phase,
		ScenarioIndex: s.ScenarioIndex,
		ScenarioCount: c.catalog.ScenarioCount(),
		Score:         s.Score,
		Selection:     append([]catalog.ItemID(nil), s.Selection...),
		Accumulated:   append([]catalog.ItemID(nil), s.Accumulated...),
		History:       append([]Feedback(nil), s.History...),
		Cleared:       append([]string(nil), s.Cleared...),
	}
	snap.Scenario, _ = c.catalog.Scenario(s.ScenarioIndex)
	items := c.catalog.Items()
	snap.Statuses = make(map[catalog.ItemID]Status, len(items))
	for _, item := range items {
		snap.Statuses[item.ID] = ResolveStatus(c.catalog, s, item.ID)
	}
	return snap
}

// definedIn reports whether op is defined in the current phase.
func (c *Controller) definedIn(required Phase, op string) bool {
	if c.session.Phase == required {
		return true
	}
	c.logger.Debug().Str("op", op).Str("phase", string(c.session.Phase)).Msg("operation not defined in phase")
	return false
}

func (c *Controller) emit(e Event) {
	e.SessionID = c.session.ID
	e.Phase = c.session.Phase
	e.ScenarioIndex = c.session.ScenarioIndex
	e.Score = c.session.Score
	for _, obs := range c.observers {
		obs.Observe(e)
	}
}
