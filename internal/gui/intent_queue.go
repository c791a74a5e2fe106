package gui

import "github.com/appengine-ltd/immune-defense/internal/parser"

type CommandSink interface {
	EnqueueIntent(parser.Intent)
}

// intentQueue carries parsed input and panel clicks to the frame loop,
// which applies them to the controller one at a time.
type intentQueue struct {
	ch chan parser.Intent
}

func newIntentQueue(size int) *intentQueue {
	if size < 1 {
		size = 16
	}
	return &intentQueue{ch: make(chan parser.Intent, size)}
}

func (q *intentQueue) EnqueueIntent(intent parser.Intent) {
	if q == nil {
		return
	}
	select {
	case q.ch <- intent:
	default:
		// Dropped when saturated; the player can click again.
	}
}

func (q *intentQueue) Dequeue() (parser.Intent, bool) {
	if q == nil {
		return parser.Intent{}, false
	}
	select {
	case intent := <-q.ch:
		return intent, true
	default:
		return parser.Intent{}, false
	}
}

// toggleIntent selects an unselected response and deselects a selected one.
func toggleIntent(id string, selected bool) parser.Intent {
	verb := "add"
	if selected {
		verb = "remove"
	}
	return parser.Intent{Raw: verb + " " + id, Normalised: verb + " " + id, Kind: parser.Command, Verb: verb, Args: []string{id}, Confidence: 1}
}

func submitIntent() parser.Intent {
	return parser.Intent{Raw: "submit", Normalised: "submit", Kind: parser.Command, Verb: "submit", Confidence: 1}
}
