package ui

import (
	"strings"
	"testing"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
	"github.com/appengine-ltd/immune-defense/internal/game"
)

func testController(t *testing.T, opts ...game.Option) *game.Controller {
	t.Helper()
	cat, err := catalog.Builtin()
	if err != nil {
		t.Fatalf("builtin catalog: %v", err)
	}
	return game.NewController(cat, append([]game.Option{game.WithSessionID("ui-test")}, opts...)...)
}

func TestInterpreterPlaysFirstScenarioFromFreeText(t *testing.T) {
	ctrl := testController(t)
	in := NewInterpreter(ctrl)

	if reply := in.Handle("start"); !strings.Contains(reply.Message, "First Line of Defense") {
		t.Fatalf("expected briefing, got %q", reply.Message)
	}
	steps := []string{"add neutrophill", "submit", "select the macrophage", "check", "add complement system", "go"}
	var last Reply
	for _, line := range steps {
		last = in.Handle(line)
		if last.Clarify != nil {
			t.Fatalf("unexpected clarify for %q: %s", line, last.Message)
		}
	}
	if last.Submit == nil || last.Submit.Outcome != game.OutcomeCompleted {
		t.Fatalf("expected completed submit, got %+v", last.Submit)
	}
	if got := ctrl.Snapshot().Score; got != 80 {
		t.Fatalf("expected score 80, got %d", got)
	}
}

func TestInterpreterClarifyNumericChoice(t *testing.T) {
	ctrl := testController(t)
	in := NewInterpreter(ctrl)
	in.Handle("start")

	reply := in.Handle("add")
	if reply.Clarify == nil || len(reply.Clarify.Options) == 0 {
		t.Fatalf("expected clarify options, got %q", reply.Message)
	}
	if !strings.Contains(reply.Message, "1) add") {
		t.Fatalf("expected numbered options, got %q", reply.Message)
	}
	want := reply.Clarify.Options[0].Args[0]

	reply = in.Handle("1")
	if reply.Clarify != nil {
		t.Fatalf("expected choice to execute, got %q", reply.Message)
	}
	sel := ctrl.Snapshot().Selection
	if len(sel) != 1 || strings.ReplaceAll(string(sel[0]), "_", " ") != want {
		t.Fatalf("expected %q selected, got %v", want, sel)
	}
}

func TestInterpreterRemoveItUsesLastEntity(t *testing.T) {
	ctrl := testController(t)
	in := NewInterpreter(ctrl)
	in.Handle("start")
	in.Handle("add macrophage")

	reply := in.Handle("remove it")
	if !strings.Contains(reply.Message, "Removed Macrophage") {
		t.Fatalf("expected macrophage removed, got %q", reply.Message)
	}
	if len(ctrl.Snapshot().Selection) != 0 {
		t.Fatalf("expected empty selection")
	}
}

func TestInterpreterTriggersOnSuccessfulAdd(t *testing.T) {
	var triggered []catalog.ItemID
	ctrl := testController(t, game.WithObserver(game.ObserverFunc(func(e game.Event) {
		if e.Kind == game.EventTrigger {
			triggered = append(triggered, e.ItemID)
		}
	})))
	in := NewInterpreter(ctrl)
	in.Handle("start")
	in.Handle("add macrophage")
	in.Handle("add macrophage")
	in.Handle("add memory cells")

	if len(triggered) != 1 || triggered[0] != "macrophage" {
		t.Fatalf("expected one macrophage trigger, got %v", triggered)
	}
}

func TestInterpreterQuitAndUnknown(t *testing.T) {
	in := NewInterpreter(testController(t))
	if reply := in.Handle("quit"); !reply.Quit {
		t.Fatalf("expected quit reply")
	}
	if reply := in.Handle("xyzzy plugh"); reply.Quit || reply.Message == "" {
		t.Fatalf("expected guidance for gibberish, got %+v", reply)
	}
}
