package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func builtinCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.Builtin()
	require.NoError(t, err)
	return cat
}

func newTestController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	opts = append([]Option{
		WithClock(func() time.Time { return fixedNow }),
		WithSessionID("test-session"),
	}, opts...)
	return NewController(builtinCatalog(t), opts...)
}

func startedController(t *testing.T, opts ...Option) *Controller {
	t.Helper()
	c := newTestController(t, opts...)
	c.Start()
	require.Equal(t, PhaseActive, c.Phase())
	return c
}

// pick adds id and submits it as a single step.
func pick(t *testing.T, c *Controller, id catalog.ItemID) SubmitResult {
	t.Helper()
	require.True(t, c.Add(id), "add %s", id)
	return c.Submit()
}

func completeCurrent(t *testing.T, c *Controller) {
	t.Helper()
	sc, ok := c.Scenario()
	require.True(t, ok)
	for _, id := range sc.Sequence {
		pick(t, c, id)
	}
	require.Equal(t, PhaseComplete, c.Phase())
}

type recorder struct {
	events []Event
}

func (r *recorder) Observe(e Event) {
	r.events = append(r.events, e)
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, e := range r.events {
		out[i] = e.Kind
	}
	return out
}
