package game

import (
	"fmt"
	"sort"
	"strings"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
)

// CommandResult is the outcome of a text command.
type CommandResult struct {
	Handled bool
	Message string
	Submit  *SubmitResult
}

const helpText = "Commands: start, restart, next, add <response>, remove <response>, submit, status [response], selection, hint, info <response>, catalog, effective, score, help."

// ExecuteCommand runs a canonical text command (as produced by the parser)
// against the controller.
func (c *Controller) ExecuteCommand(raw string) CommandResult {
	fields := strings.Fields(strings.ToLower(strings.TrimSpace(raw)))
	if len(fields) == 0 {
		return CommandResult{Handled: false}
	}

	switch fields[0] {
	case "help", "commands":
		return CommandResult{Handled: true, Message: helpText}
	case "start":
		c.Start()
		return CommandResult{Handled: true, Message: c.scenarioBriefing()}
	case "restart":
		c.Restart()
		return CommandResult{Handled: true, Message: "Game restarted. " + c.scenarioBriefing()}
	case "next", "advance":
		return c.executeNextCommand()
	case "add", "select":
		return c.executeAddCommand(fields[1:])
	case "remove", "deselect":
		return c.executeRemoveCommand(fields[1:])
	case "submit", "check", "validate":
		return c.executeSubmitCommand()
	case "status":
		return c.executeStatusCommand(fields[1:])
	case "selection":
		return CommandResult{Handled: true, Message: c.describeSelection()}
	case "hint":
		sc, ok := c.Scenario()
		if !ok || c.Phase().Idle() {
			return CommandResult{Handled: true, Message: "Start a game first."}
		}
		return CommandResult{Handled: true, Message: "Hint: " + sc.Hint}
	case "info":
		return c.executeInfoCommand(fields[1:])
	case "catalog", "list":
		return CommandResult{Handled: true, Message: c.describeCatalog()}
	case "effective":
		return c.executeEffectiveCommand()
	case "score":
		snap := c.Snapshot()
		return CommandResult{Handled: true, Message: fmt.Sprintf("Score: %d. Cleared: %s.", snap.Score, joinOrNone(snap.Cleared))}
	default:
		return CommandResult{Handled: false}
	}
}

// ResolveItem maps a free-form reference (id, id with spaces, or display
// name) to a catalog item.
func (c *Controller) ResolveItem(args []string) (catalog.Item, bool) {
	ref := strings.ToLower(strings.Join(args, " "))
	if ref == "" {
		return catalog.Item{}, false
	}
	for _, item := range c.catalog.Items() {
		id := strings.ToLower(string(item.ID))
		if ref == id || ref == strings.ReplaceAll(id, "_", " ") || ref == strings.ToLower(item.Name) {
			return item, true
		}
	}
	return catalog.Item{}, false
}

func (c *Controller) executeNextCommand() CommandResult {
	if c.Phase() != PhaseComplete {
		return CommandResult{Handled: true, Message: "Finish the current scenario before moving on."}
	}
	c.Advance()
	if c.Phase() == PhaseEnded {
		return CommandResult{Handled: true, Message: fmt.Sprintf("All scenarios cleared! Final score: %d. Type restart to play again.", c.session.Score)}
	}
	return CommandResult{Handled: true, Message: c.scenarioBriefing()}
}

func (c *Controller) executeAddCommand(args []string) CommandResult {
	if len(args) == 0 {
		return CommandResult{Handled: true, Message: "Usage: add <response>"}
	}
	item, ok := c.ResolveItem(args)
	if !ok {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown response: %s", strings.Join(args, " "))}
	}
	if c.Phase() != PhaseActive {
		return CommandResult{Handled: true, Message: "Responses can only be selected during play."}
	}
	if c.Add(item.ID) {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Selected %s. %s", item.Name, c.describeSelection())}
	}

	switch c.Status(item.ID) {
	case StatusDisabled:
		return CommandResult{Handled: true, Message: fmt.Sprintf("%s needs %s first.", item.Name, c.missingPrerequisites(item))}
	case StatusCorrect:
		return CommandResult{Handled: true, Message: fmt.Sprintf("%s is already part of your defence.", item.Name)}
	case StatusIncorrect:
		return CommandResult{Handled: true, Message: fmt.Sprintf("%s was already ruled out for this scenario.", item.Name)}
	default:
		return CommandResult{Handled: true, Message: fmt.Sprintf("%s is already selected.", item.Name)}
	}
}

func (c *Controller) executeRemoveCommand(args []string) CommandResult {
	if len(args) == 0 {
		return CommandResult{Handled: true, Message: "Usage: remove <response>"}
	}
	item, ok := c.ResolveItem(args)
	if !ok {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown response: %s", strings.Join(args, " "))}
	}
	if !c.Remove(item.ID) {
		return CommandResult{Handled: true, Message: fmt.Sprintf("%s is not selected.", item.Name)}
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("Removed %s. %s", item.Name, c.describeSelection())}
}

func (c *Controller) executeSubmitCommand() CommandResult {
	if c.Phase() != PhaseActive {
		return CommandResult{Handled: true, Message: "Nothing to check right now."}
	}
	res := c.Submit()
	switch res.Outcome {
	case OutcomeIgnored:
		return CommandResult{Handled: true, Message: "Select a response before checking.", Submit: &res}
	case OutcomeCompleted:
		sc, _ := c.Scenario()
		msg := fmt.Sprintf("%s %s defeated! +%d points. %s Type next to continue.", res.Feedback.Message, sc.Target.Name, res.Points, sc.Outcome)
		return CommandResult{Handled: true, Message: msg, Submit: &res}
	default:
		return CommandResult{Handled: true, Message: res.Feedback.Message, Submit: &res}
	}
}

func (c *Controller) executeStatusCommand(args []string) CommandResult {
	if len(args) > 0 {
		item, ok := c.ResolveItem(args)
		if !ok {
			return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown response: %s", strings.Join(args, " "))}
		}
		return CommandResult{Handled: true, Message: fmt.Sprintf("%s: %s", item.Name, c.Status(item.ID))}
	}

	snap := c.Snapshot()
	byStatus := map[Status][]string{}
	for _, item := range c.catalog.Items() {
		st := snap.Statuses[item.ID]
		byStatus[st] = append(byStatus[st], string(item.ID))
	}
	parts := make([]string, 0, 4)
	for _, st := range []Status{StatusCorrect, StatusIncorrect, StatusPending, StatusDisabled} {
		if len(byStatus[st]) == 0 {
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", st, strings.Join(byStatus[st], ", ")))
	}
	msg := fmt.Sprintf("Phase %s, score %d. %s.", snap.Phase, snap.Score, strings.Join(parts, "; "))
	if snap.Blocked() {
		msg += " The next step was ruled out; restart to try again."
	}
	return CommandResult{Handled: true, Message: msg}
}

func (c *Controller) executeInfoCommand(args []string) CommandResult {
	if len(args) == 0 {
		return CommandResult{Handled: true, Message: "Usage: info <response>"}
	}
	item, ok := c.ResolveItem(args)
	if !ok {
		return CommandResult{Handled: true, Message: fmt.Sprintf("Unknown response: %s", strings.Join(args, " "))}
	}
	msg := fmt.Sprintf("%s (%s, %s): %s", item.Name, item.Kind, item.Category, item.Description)
	if len(item.Requires) > 0 {
		reqs := make([]string, len(item.Requires))
		for i, r := range item.Requires {
			reqs[i] = string(r)
		}
		msg += " Requires: " + strings.Join(reqs, ", ") + "."
	}
	return CommandResult{Handled: true, Message: msg}
}

func (c *Controller) executeEffectiveCommand() CommandResult {
	sc, ok := c.Scenario()
	if !ok {
		return CommandResult{Handled: true, Message: "No scenario loaded."}
	}
	items := c.catalog.EffectiveAgainst(sc.Target.Type)
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return CommandResult{Handled: true, Message: fmt.Sprintf("Effective against %s: %s.", sc.Target.Type, joinOrNone(names))}
}

func (c *Controller) scenarioBriefing() string {
	sc, ok := c.Scenario()
	if !ok {
		return "No scenario loaded."
	}
	return fmt.Sprintf("Scenario %d/%d: %s. %s Target: %s (%s).", c.session.ScenarioIndex+1, c.catalog.ScenarioCount(), sc.Name, sc.Objective, sc.Target.Name, sc.Target.Type)
}

func (c *Controller) describeSelection() string {
	if len(c.session.Selection) == 0 {
		return "Selection is empty."
	}
	ids := make([]string, len(c.session.Selection))
	for i, id := range c.session.Selection {
		ids[i] = string(id)
	}
	return "Selection: " + strings.Join(ids, ", ") + "."
}

func (c *Controller) describeCatalog() string {
	var b strings.Builder
	for i, cat := range []catalog.Category{catalog.CategoryInnate, catalog.CategoryAdaptive, catalog.CategoryMolecules} {
		items := c.catalog.ItemsByCategory(cat)
		sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s:", cat)
		for j, item := range items {
			if j > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, " %s [%s]", item.ID, c.Status(item.ID))
		}
		b.WriteString(".")
	}
	return b.String()
}

func (c *Controller) missingPrerequisites(item catalog.Item) string {
	var missing []string
	for _, req := range item.Requires {
		if containsID(c.session.Accumulated, req) || containsID(c.session.Selection, req) {
			continue
		}
		name := string(req)
		if reqItem, ok := c.catalog.Item(req); ok {
			name = reqItem.Name
		}
		missing = append(missing, name)
	}
	return joinOrNone(missing)
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}

// Vocabulary lists what a player may type to name a response (ids and
// display names) and the ids currently selected.
func (c *Controller) Vocabulary() (items []string, selected []string) {
	for _, item := range c.catalog.Items() {
		items = append(items, string(item.ID), item.Name)
	}
	for _, id := range c.session.Selection {
		selected = append(selected, string(id))
	}
	return items, selected
}
