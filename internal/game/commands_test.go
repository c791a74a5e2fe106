package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecuteCommandUnknown(t *testing.T) {
	c := newTestController(t)
	assert.False(t, c.ExecuteCommand("").Handled)
	assert.False(t, c.ExecuteCommand("dance").Handled)
}

func TestExecuteCommandPlaysFirstScenario(t *testing.T) {
	c := newTestController(t)

	res := c.ExecuteCommand("start")
	require.True(t, res.Handled)
	assert.Contains(t, res.Message, "Scenario 1/5: First Line of Defense")

	res = c.ExecuteCommand("add neutrophil")
	assert.Contains(t, res.Message, "Selected Neutrophil")

	res = c.ExecuteCommand("submit")
	require.NotNil(t, res.Submit)
	assert.Equal(t, OutcomeCorrect, res.Submit.Outcome)
	assert.Equal(t, "Good choice! Neutrophil is effective here.", res.Message)

	c.ExecuteCommand("add Macrophage")
	c.ExecuteCommand("check")
	c.ExecuteCommand("add complement system")
	res = c.ExecuteCommand("submit")
	assert.Equal(t, OutcomeCompleted, res.Submit.Outcome)
	assert.Contains(t, res.Message, "Staphylococcus aureus defeated! +60 points.")

	res = c.ExecuteCommand("next")
	assert.Contains(t, res.Message, "Scenario 2/5: Viral Invasion")
}

func TestExecuteCommandResolvesSpacedIDs(t *testing.T) {
	c := startedController(t)
	c.Add("dendritic")

	res := c.ExecuteCommand("add tcell helper")
	assert.Contains(t, res.Message, "Selected Helper T Cell")

	res = c.ExecuteCommand("remove helper t cell")
	assert.Contains(t, res.Message, "Removed Helper T Cell")
}

func TestExecuteCommandExplainsRejectedAdd(t *testing.T) {
	c := startedController(t)

	res := c.ExecuteCommand("add memory cells")
	assert.Equal(t, "Memory Cells needs B Cell, Helper T Cell first.", res.Message)

	c.ExecuteCommand("add neutrophil")
	res = c.ExecuteCommand("add neutrophil")
	assert.Equal(t, "Neutrophil is already selected.", res.Message)

	c.ExecuteCommand("submit")
	res = c.ExecuteCommand("add neutrophil")
	assert.Equal(t, "Neutrophil is already part of your defence.", res.Message)

	res = c.ExecuteCommand("add histamine")
	assert.Equal(t, "Unknown response: histamine", res.Message)
}

func TestExecuteCommandOutsidePlay(t *testing.T) {
	c := newTestController(t)

	assert.Equal(t, "Responses can only be selected during play.", c.ExecuteCommand("add neutrophil").Message)
	assert.Equal(t, "Nothing to check right now.", c.ExecuteCommand("submit").Message)
	assert.Equal(t, "Finish the current scenario before moving on.", c.ExecuteCommand("next").Message)
	assert.Equal(t, "Start a game first.", c.ExecuteCommand("hint").Message)
}

func TestExecuteCommandEmptySubmit(t *testing.T) {
	c := startedController(t)
	res := c.ExecuteCommand("submit")
	assert.Equal(t, "Select a response before checking.", res.Message)
	assert.Empty(t, c.Snapshot().History)
}

func TestExecuteCommandStatusAndInfo(t *testing.T) {
	c := startedController(t)
	c.ExecuteCommand("add macrophage")
	c.ExecuteCommand("submit")

	assert.Equal(t, "Macrophage: incorrect", c.ExecuteCommand("status macrophage").Message)
	assert.Equal(t, "B Cell: disabled", c.ExecuteCommand("status b cell").Message)

	all := c.ExecuteCommand("status").Message
	assert.Contains(t, all, "incorrect: macrophage")
	assert.Contains(t, all, "disabled: bcell, tcell_helper")

	info := c.ExecuteCommand("info cytotoxic t cell").Message
	assert.True(t, strings.HasPrefix(info, "Cytotoxic T Cell (cell, adaptive):"), info)
	assert.Contains(t, info, "Requires: dendritic, tcell_helper.")
}

func TestExecuteCommandHintEffectiveScore(t *testing.T) {
	c := startedController(t)

	assert.Contains(t, c.ExecuteCommand("hint").Message, "fast-responding cells")
	assert.Equal(t, "Effective against bacteria: Neutrophil, Macrophage, Antibodies, Complement System.", c.ExecuteCommand("effective").Message)
	assert.Equal(t, "Score: 0. Cleared: none.", c.ExecuteCommand("score").Message)
}

func TestExecuteCommandCatalogListsByCategory(t *testing.T) {
	c := startedController(t)
	msg := c.ExecuteCommand("catalog").Message

	assert.True(t, strings.HasPrefix(msg, "innate: dendritic [pending], inflammation [pending], macrophage [pending]"), msg)
	assert.Contains(t, msg, "adaptive: bcell [disabled]")
	assert.Contains(t, msg, "molecules: antibody [disabled]")
}

func TestExecuteCommandEndOfGame(t *testing.T) {
	c := startedController(t)
	for i := 0; i < c.Catalog().ScenarioCount()-1; i++ {
		completeCurrent(t, c)
		c.Advance()
	}
	completeCurrent(t, c)

	res := c.ExecuteCommand("next")
	assert.Equal(t, "All scenarios cleared! Final score: 450. Type restart to play again.", res.Message)
	assert.Equal(t, PhaseEnded, c.Phase())

	res = c.ExecuteCommand("restart")
	assert.True(t, strings.HasPrefix(res.Message, "Game restarted. Scenario 1/5"))
}

func TestVocabularyListsIDsNamesAndSelection(t *testing.T) {
	c := startedController(t)
	require.True(t, c.Add("neutrophil"))

	items, selected := c.Vocabulary()
	assert.Contains(t, items, "tcell_helper")
	assert.Contains(t, items, "Helper T Cell")
	assert.Len(t, items, 26)
	assert.Equal(t, []string{"neutrophil"}, selected)
}
