package ui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
	"github.com/appengine-ltd/immune-defense/internal/game"
)

type AppConfig struct {
	Version     string
	FeedbackTTL time.Duration
}

type App struct {
	cfg  AppConfig
	ctrl *game.Controller
}

func NewApp(cfg AppConfig, ctrl *game.Controller) *App {
	return &App{cfg: cfg, ctrl: ctrl}
}

func (a *App) Run() error {
	m := newModel(a.cfg, a.ctrl)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// --- Styles (retro green) ---
var (
	green       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	brightGreen = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimGreen    = lipgloss.NewStyle().Foreground(lipgloss.Color("22"))
	border      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	red         = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	amber       = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	successBanner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("10")).Padding(0, 1)
	failureBanner = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("9")).Padding(0, 1)
)

const (
	maxMessages = 200
	shownLog    = 8
	maxInput    = 160
	rule        = "------------------------------------------------------------"
)

type model struct {
	cfg    AppConfig
	ctrl   *game.Controller
	interp *Interpreter

	input    string
	messages []string

	feedback    string
	feedbackOK  bool
	feedbackSeq int
}

// hideFeedbackMsg clears the banner unless a newer one replaced it.
type hideFeedbackMsg struct {
	seq int
}

func newModel(cfg AppConfig, ctrl *game.Controller) model {
	if cfg.FeedbackTTL <= 0 {
		cfg.FeedbackTTL = 3 * time.Second
	}
	m := model{cfg: cfg, ctrl: ctrl, interp: NewInterpreter(ctrl)}
	m.appendMessage("Welcome to Immune Defense. Type start to begin or help for commands.")
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submitInput()
		case tea.KeyBackspace:
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		case tea.KeySpace:
			m.appendInput(" ")
			return m, nil
		case tea.KeyRunes:
			m.appendInput(string(msg.Runes))
			return m, nil
		}
	case hideFeedbackMsg:
		if msg.seq == m.feedbackSeq {
			m.feedback = ""
		}
		return m, nil
	}
	return m, nil
}

func (m *model) appendInput(s string) {
	if len(m.input)+len(s) > maxInput {
		return
	}
	m.input += s
}

func (m model) submitInput() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input)
	m.input = ""
	if line == "" {
		return m, nil
	}
	m.appendMessage("> " + line)

	reply := m.interp.Handle(line)
	m.appendMessage(reply.Message)
	if reply.Quit {
		return m, tea.Quit
	}
	if reply.Submit == nil || reply.Submit.Outcome == game.OutcomeIgnored {
		return m, nil
	}

	m.feedback = reply.Submit.Feedback.Message
	m.feedbackOK = reply.Submit.Feedback.Correct
	m.feedbackSeq++
	seq := m.feedbackSeq
	return m, tea.Tick(m.cfg.FeedbackTTL, func(time.Time) tea.Msg {
		return hideFeedbackMsg{seq: seq}
	})
}

func (m *model) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	m.messages = append(m.messages, line)
	if len(m.messages) > maxMessages {
		m.messages = append([]string(nil), m.messages[len(m.messages)-maxMessages:]...)
	}
}

func (m model) View() string {
	snap := m.ctrl.Snapshot()

	var b strings.Builder
	title := brightGreen.Render("IMMUNE DEFENSE")
	if m.cfg.Version != "" {
		title += dimGreen.Render("  v" + m.cfg.Version)
	}
	b.WriteString(title + "\n")
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(m.scenarioText(snap))
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(m.catalogText(snap))
	b.WriteString(border.Render(rule) + "\n")
	b.WriteString(selectionText(snap))

	if m.feedback != "" {
		style := failureBanner
		if m.feedbackOK {
			style = successBanner
		}
		b.WriteString("\n" + style.Render(m.feedback) + "\n")
	}

	b.WriteString("\n" + dimGreen.Render("Message History") + "\n")
	start := max(0, len(m.messages)-shownLog)
	for _, line := range m.messages[start:] {
		b.WriteString(green.Render(line) + "\n")
	}
	b.WriteString("\n" + brightGreen.Render("> "+m.input+"_") + "\n")
	b.WriteString(dimGreen.Render("Enter to send, Esc to quit") + "\n")
	return b.String()
}

func (m model) scenarioText(snap game.Snapshot) string {
	if snap.Phase.Idle() {
		return green.Render("No game running. Type start.") + "\n"
	}
	sc := snap.Scenario
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", brightGreen.Render(fmt.Sprintf("Scenario %d/%d:", snap.ScenarioIndex+1, snap.ScenarioCount)), brightGreen.Render(sc.Name))
	b.WriteString(green.Render(sc.Objective) + "\n")
	b.WriteString(dimGreen.Render(fmt.Sprintf("Target: %s (%s), difficulty %d", sc.Target.Name, sc.Target.Type, sc.Target.Difficulty)) + "\n")
	b.WriteString(dimGreen.Render(fmt.Sprintf("Progress: %d/%d  Phase: %s", len(snap.Accumulated), len(sc.Sequence), snap.Phase)) + "\n")
	switch snap.Phase {
	case game.PhaseComplete:
		b.WriteString(brightGreen.Render(sc.Outcome) + "\n")
	case game.PhaseEnded:
		b.WriteString(brightGreen.Render(fmt.Sprintf("All scenarios cleared. Final score %d.", snap.Score)) + "\n")
	}
	if snap.Blocked() {
		b.WriteString(amber.Render("The next step was ruled out. Type restart to try again.") + "\n")
	}
	return b.String()
}

func (m model) catalogText(snap game.Snapshot) string {
	cat := m.ctrl.Catalog()
	var b strings.Builder
	for _, category := range []catalog.Category{catalog.CategoryInnate, catalog.CategoryAdaptive, catalog.CategoryMolecules} {
		items := cat.ItemsByCategory(category)
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		parts := make([]string, 0, len(items))
		for _, item := range items {
			parts = append(parts, statusStyle(snap.Statuses[item.ID]).Render(statusMark(snap.Statuses[item.ID])+" "+item.Name))
		}
		fmt.Fprintf(&b, "%s %s\n", dimGreen.Render(fmt.Sprintf("%-10s", category)), strings.Join(parts, "  "))
	}
	return b.String()
}

func selectionText(snap game.Snapshot) string {
	selected := "none"
	if len(snap.Selection) > 0 {
		ids := make([]string, len(snap.Selection))
		for i, id := range snap.Selection {
			ids[i] = string(id)
		}
		selected = strings.Join(ids, ", ")
	}
	cleared := "none"
	if len(snap.Cleared) > 0 {
		cleared = strings.Join(snap.Cleared, ", ")
	}
	return green.Render(fmt.Sprintf("Selected: %s", selected)) + "\n" +
		green.Render(fmt.Sprintf("Score: %d  Cleared: %s", snap.Score, cleared)) + "\n"
}

func statusStyle(st game.Status) lipgloss.Style {
	switch st {
	case game.StatusCorrect:
		return brightGreen
	case game.StatusIncorrect:
		return red
	case game.StatusDisabled:
		return dimGreen
	default:
		return green
	}
}

func statusMark(st game.Status) string {
	switch st {
	case game.StatusCorrect:
		return "+"
	case game.StatusIncorrect:
		return "x"
	case game.StatusDisabled:
		return "-"
	default:
		return "o"
	}
}
