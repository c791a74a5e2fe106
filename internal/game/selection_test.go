package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
)

func TestSessionAdd(t *testing.T) {
	cat := builtinCatalog(t)

	tests := []struct {
		name    string
		session Session
		id      catalog.ItemID
		added   bool
		want    []catalog.ItemID
	}{
		{
			name:  "appends pending item",
			id:    "neutrophil",
			added: true,
			want:  []catalog.ItemID{"neutrophil"},
		},
		{
			name:    "keeps insertion order",
			session: Session{Selection: []catalog.ItemID{"nk"}},
			id:      "interferons",
			added:   true,
			want:    []catalog.ItemID{"nk", "interferons"},
		},
		{
			name:    "ignores duplicate",
			session: Session{Selection: []catalog.ItemID{"nk"}},
			id:      "nk",
			want:    []catalog.ItemID{"nk"},
		},
		{
			name: "ignores disabled",
			id:   "memory_cells",
		},
		{
			name:    "ignores recorded correct",
			session: Session{Status: map[catalog.ItemID]Status{"nk": StatusCorrect}},
			id:      "nk",
		},
		{
			name:    "ignores recorded incorrect",
			session: Session{Status: map[catalog.ItemID]Status{"nk": StatusIncorrect}},
			id:      "nk",
		},
		{
			name: "ignores unknown id",
			id:   "histamine",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tc.session
			assert.Equal(t, tc.added, s.Add(cat, tc.id))
			assert.Equal(t, tc.want, s.Selection)
		})
	}
}

func TestSessionRemove(t *testing.T) {
	s := Session{Selection: []catalog.ItemID{"dendritic", "tcell_helper", "bcell"}}

	assert.False(t, s.Remove("nk"))
	assert.Equal(t, []catalog.ItemID{"dendritic", "tcell_helper", "bcell"}, s.Selection)

	assert.True(t, s.Remove("tcell_helper"))
	assert.Equal(t, []catalog.ItemID{"dendritic", "bcell"}, s.Selection)

	assert.True(t, s.Remove("dendritic"))
	assert.True(t, s.Remove("bcell"))
	assert.Empty(t, s.Selection)
	assert.False(t, s.Remove("bcell"))
}

func TestMarkClearedIsASet(t *testing.T) {
	s := newSession("x")
	s.markCleared("staph")
	s.markCleared("staph")
	s.markCleared("ebv")

	assert.Equal(t, []string{"staph", "ebv"}, s.Cleared)
	assert.True(t, s.HasCleared("ebv"))
	assert.False(t, s.HasCleared("mtb"))
}

func TestPhaseTransitions(t *testing.T) {
	for _, p := range []Phase{PhaseMenu, PhaseReady, PhaseActive, PhaseComplete, PhaseEnded} {
		assert.True(t, p.CanTransitionTo(PhaseActive), "%s must reach active via restart", p)
	}
	assert.True(t, PhaseActive.CanTransitionTo(PhaseComplete))
	assert.True(t, PhaseComplete.CanTransitionTo(PhaseEnded))
	assert.False(t, PhaseMenu.CanTransitionTo(PhaseComplete))
	assert.False(t, PhaseActive.CanTransitionTo(PhaseEnded))
	assert.False(t, PhaseEnded.CanTransitionTo(PhaseComplete))
	assert.True(t, PhaseReady.Idle())
	assert.False(t, PhaseActive.Idle())
}
