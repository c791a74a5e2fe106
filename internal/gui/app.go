//go:build cgo

package gui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
	"github.com/appengine-ltd/immune-defense/internal/game"
	"github.com/appengine-ltd/immune-defense/internal/ui"
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
	g := newGameUI(a.cfg, a.ctrl)
	return g.Run()
}

// catalogRow is one clickable response in the side panel.
type catalogRow struct {
	Item catalog.Item
	Rect rl.Rectangle
}

type gameUI struct {
	cfg    AppConfig
	ctrl   *game.Controller
	interp *ui.Interpreter
	queue  *intentQueue
	scene  *scene

	width  int32
	height int32
	camera rl.Camera3D

	input    string
	messages []string
	rows     []catalogRow

	feedback      string
	feedbackOK    bool
	feedbackUntil time.Time

	lastTick time.Time
	quit     bool
}

func newGameUI(cfg AppConfig, ctrl *game.Controller) *gameUI {
	if cfg.FeedbackTTL <= 0 {
		cfg.FeedbackTTL = 3 * time.Second
	}
	g := &gameUI{
		cfg:    cfg,
		ctrl:   ctrl,
		interp: ui.NewInterpreter(ctrl),
		queue:  newIntentQueue(32),
		scene:  newScene(ctrl.Catalog()),
		width:  1366,
		height: 768,
		camera: rl.Camera3D{
			Position:   rl.NewVector3(0, 4, 7),
			Target:     rl.NewVector3(0, 1, 0),
			Up:         rl.NewVector3(0, 1, 0),
			Fovy:       45,
			Projection: rl.CameraPerspective,
		},
	}
	ctrl.Observe(g.scene)
	g.appendMessage("Welcome to Immune Defense. Type start, or press Ctrl+R.")
	g.lastTick = time.Now()
	return g
}

func (g *gameUI) Run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(g.width, g.height, "immune-defense")
	rl.SetExitKey(0)
	rl.SetTargetFPS(60)
	defaultFont := rl.GetFontDefault()
	rl.SetTextureFilter(defaultFont.Texture, rl.FilterBilinear)

	for !g.quit && !rl.WindowShouldClose() {
		now := time.Now()
		delta := now.Sub(g.lastTick)
		if delta < 0 {
			delta = 0
		}
		g.lastTick = now

		g.width = int32(rl.GetScreenWidth())
		g.height = int32(rl.GetScreenHeight())

		g.update(delta, now)

		rl.BeginDrawing()
		rl.ClearBackground(colorBG)
		g.draw(now)
		rl.EndDrawing()
	}

	rl.CloseWindow()
	return nil
}

func (g *gameUI) update(delta time.Duration, now time.Time) {
	if rl.IsKeyPressed(rl.KeyEscape) {
		g.quit = true
		return
	}
	switch {
	case CtrlPressedKey(rl.KeyR):
		g.runLine("restart", now)
	case CtrlPressedKey(rl.KeyN):
		g.runLine("next", now)
	}

	captureTextInput(&g.input, 120)
	if rl.IsKeyPressed(rl.KeyEnter) {
		line := strings.TrimSpace(g.input)
		g.input = ""
		if line == "" {
			g.queue.EnqueueIntent(submitIntent())
		} else {
			g.appendMessage("> " + line)
			g.queue.EnqueueIntent(g.interp.Parse(line))
		}
	}

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		mouse := rl.GetMousePosition()
		snap := g.ctrl.Snapshot()
		for _, row := range g.rows {
			if rl.CheckCollisionPointRec(mouse, row.Rect) {
				g.queue.EnqueueIntent(toggleIntent(string(row.Item.ID), containsItem(snap.Selection, row.Item.ID)))
				break
			}
		}
	}

	for intent, ok := g.queue.Dequeue(); ok; intent, ok = g.queue.Dequeue() {
		g.apply(g.interp.Execute(intent), now)
	}
	g.scene.update(delta)
}

func (g *gameUI) runLine(line string, now time.Time) {
	g.appendMessage("> " + line)
	g.apply(g.interp.Handle(line), now)
}

func (g *gameUI) apply(reply ui.Reply, now time.Time) {
	g.appendMessage(reply.Message)
	if reply.Quit {
		g.quit = true
	}
	if reply.Submit != nil && reply.Submit.Outcome != game.OutcomeIgnored {
		g.feedback = reply.Submit.Feedback.Message
		g.feedbackOK = reply.Submit.Feedback.Correct
		g.feedbackUntil = now.Add(g.cfg.FeedbackTTL)
	}
}

func (g *gameUI) draw(now time.Time) {
	snap := g.ctrl.Snapshot()
	panelW := float32(360)
	if float32(g.width) < 900 {
		panelW = float32(g.width) * 0.4
	}

	g.drawScene()
	g.drawHeader(snap)
	g.drawCatalog(snap, rl.NewRectangle(float32(g.width)-panelW-16, 16, panelW, float32(g.height)-32-150))
	g.drawConsole(rl.NewRectangle(16, float32(g.height)-150, float32(g.width)-32, 134))

	if g.feedback != "" && now.Before(g.feedbackUntil) {
		clr := colorIncorrect
		if g.feedbackOK {
			clr = colorCorrect
		}
		w := float32(rl.MeasureText(g.feedback, 20)) + 32
		rect := rl.NewRectangle((float32(g.width)-panelW-w)/2, float32(g.height)-200, w, 38)
		rl.DrawRectangleRounded(rect, 0.3, 8, rl.Fade(clr, 0.9))
		rl.DrawText(g.feedback, int32(rect.X)+16, int32(rect.Y)+9, 20, colorText)
	}
}

func (g *gameUI) drawScene() {
	s := g.scene
	center := rl.NewVector3(s.target.Position.X, s.target.Position.Y, s.target.Position.Z)

	rl.BeginMode3D(g.camera)
	rl.DrawGrid(16, 0.5)
	radius := s.targetRadius()
	body := targetColor(s.target.Type)
	switch {
	case s.pulse > 0:
		body = lerpColor(body, colorCorrect, float32(s.pulse))
	case s.pulse < 0:
		body = lerpColor(body, colorIncorrect, float32(-s.pulse))
	}
	rl.DrawSphere(center, radius, body)
	rl.DrawSphereWires(center, radius*1.05, 10, 14, rl.Fade(colorText, 0.25))
	for _, o := range s.orbiters {
		p := s.position(o)
		pos := rl.NewVector3(p.X, p.Y, p.Z)
		rl.DrawLine3D(center, pos, rl.Fade(colorMuted, 0.3))
		rl.DrawSphere(pos, 0.18, cellColor(o.ItemID))
	}
	rl.EndMode3D()
}

func (g *gameUI) drawHeader(snap game.Snapshot) {
	x, y := int32(24), int32(20)
	title := "IMMUNE DEFENSE"
	if g.cfg.Version != "" {
		title += "  v" + g.cfg.Version
	}
	rl.DrawText(title, x, y, 26, colorAccent)
	y += 36
	if snap.Phase.Idle() {
		rl.DrawText("Type start and press Enter.", x, y, 20, colorText)
		return
	}
	sc := snap.Scenario
	rl.DrawText(fmt.Sprintf("Scenario %d/%d: %s", snap.ScenarioIndex+1, snap.ScenarioCount, sc.Name), x, y, 22, colorText)
	y += 28
	rl.DrawText(sc.Objective, x, y, 18, colorMuted)
	y += 24
	rl.DrawText(fmt.Sprintf("Target: %s (%s)  Difficulty %d", sc.Target.Name, sc.Target.Type, sc.Target.Difficulty), x, y, 18, targetColor(sc.Target.Type))
	y += 24
	rl.DrawText(fmt.Sprintf("Score %d   Progress %d/%d", snap.Score, len(snap.Accumulated), len(sc.Sequence)), x, y, 18, colorText)
	y += 24
	switch {
	case snap.Phase == game.PhaseComplete:
		rl.DrawText("Cleared! Ctrl+N for the next scenario.", x, y, 18, colorCorrect)
	case snap.Phase == game.PhaseEnded:
		rl.DrawText(fmt.Sprintf("All scenarios cleared. Final score %d. Ctrl+R to play again.", snap.Score), x, y, 18, colorCorrect)
	case snap.Blocked():
		rl.DrawText("The next step was ruled out. Ctrl+R to restart.", x, y, 18, colorWarning)
	}
}

func (g *gameUI) drawCatalog(snap game.Snapshot, rect rl.Rectangle) {
	drawPanel(rect, "Immune responses")
	g.rows = g.rows[:0]
	y := rect.Y + 40
	rowH := float32(24)
	for _, category := range []catalog.Category{catalog.CategoryInnate, catalog.CategoryAdaptive, catalog.CategoryMolecules} {
		rl.DrawText(strings.ToUpper(string(category)), int32(rect.X)+12, int32(y), 14, colorMuted)
		y += 20
		items := g.ctrl.Catalog().ItemsByCategory(category)
		sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
		for _, item := range items {
			row := rl.NewRectangle(rect.X+8, y, rect.Width-16, rowH-2)
			st := snap.Statuses[item.ID]
			if containsItem(snap.Selection, item.ID) {
				rl.DrawRectangleRounded(row, 0.3, 6, colorRaised)
				rl.DrawRectangleRoundedLinesEx(row, 0.3, 6, 1, colorAccent)
			}
			rl.DrawText(item.Name, int32(row.X)+8, int32(row.Y)+3, 18, statusColor(st))
			label := string(st)
			rl.DrawText(label, int32(row.X+row.Width)-rl.MeasureText(label, 14)-8, int32(row.Y)+5, 14, statusColor(st))
			g.rows = append(g.rows, catalogRow{Item: item, Rect: row})
			y += rowH
		}
		y += 8
	}
	rl.DrawText("Click to select, Enter to submit.", int32(rect.X)+12, int32(rect.Y+rect.Height)-24, 14, colorMuted)
}

func (g *gameUI) drawConsole(rect rl.Rectangle) {
	drawPanel(rect, "Field log")
	lines := g.messages
	if len(lines) > 4 {
		lines = lines[len(lines)-4:]
	}
	for i, line := range lines {
		rl.DrawText(line, int32(rect.X)+14, int32(rect.Y)+34+int32(i)*20, 16, colorText)
	}
	rl.DrawText("> "+g.input+"_", int32(rect.X)+14, int32(rect.Y+rect.Height)-24, 18, colorAccent)
}

func (g *gameUI) appendMessage(message string) {
	line := strings.TrimSpace(message)
	if line == "" {
		return
	}
	g.messages = append(g.messages, line)
	if len(g.messages) > 260 {
		g.messages = append([]string(nil), g.messages[len(g.messages)-260:]...)
	}
}

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, rl.Fade(colorPanel, 0.92))
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, colorBorder)
	rl.DrawText(title, int32(rect.X)+12, int32(rect.Y)+8, 20, colorAccent)
}

func captureTextInput(target *string, maxLen int) {
	for ch := rl.GetCharPressed(); ch > 0; ch = rl.GetCharPressed() {
		if ch >= 32 && ch <= 126 && len(*target) < maxLen {
			*target += string(rune(ch))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) && len(*target) > 0 {
		*target = (*target)[:len(*target)-1]
	}
}

func containsItem(ids []catalog.ItemID, id catalog.ItemID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
