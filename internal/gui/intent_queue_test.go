package gui

import (
	"testing"

	"github.com/appengine-ltd/immune-defense/internal/parser"
)

func TestIntentQueueFIFOAndEmpty(t *testing.T) {
	q := newIntentQueue(4)
	q.EnqueueIntent(parser.Intent{Verb: "add"})
	q.EnqueueIntent(parser.Intent{Verb: "submit"})

	for _, want := range []string{"add", "submit"} {
		got, ok := q.Dequeue()
		if !ok || got.Verb != want {
			t.Fatalf("expected %q, got %q ok=%v", want, got.Verb, ok)
		}
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected empty queue")
	}
}

func TestIntentQueueDropsWhenSaturated(t *testing.T) {
	q := newIntentQueue(1)
	q.EnqueueIntent(parser.Intent{Verb: "add"})
	q.EnqueueIntent(parser.Intent{Verb: "remove"})

	got, _ := q.Dequeue()
	if got.Verb != "add" {
		t.Fatalf("expected first intent kept, got %q", got.Verb)
	}
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected second intent dropped")
	}
}

func TestNilIntentQueueIsSafe(t *testing.T) {
	var q *intentQueue
	q.EnqueueIntent(parser.Intent{Verb: "add"})
	if _, ok := q.Dequeue(); ok {
		t.Fatalf("expected nil queue to be empty")
	}
}

func TestToggleIntent(t *testing.T) {
	if got := parser.IntentToCommandString(toggleIntent("tcell_helper", false)); got != "add tcell helper" {
		t.Fatalf("unexpected add intent %q", got)
	}
	if got := toggleIntent("nk", true); got.Verb != "remove" {
		t.Fatalf("expected remove for selected response, got %q", got.Verb)
	}
}
