package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/appengine-ltd/immune-defense/internal/game"
	"github.com/appengine-ltd/immune-defense/internal/parser"
)

// Reply is what a front-end shows after one line of input.
type Reply struct {
	Message string
	Clarify *parser.ClarifyQuestion
	Submit  *game.SubmitResult
	Quit    bool
}

// Interpreter turns free text into controller commands. It remembers the
// last response mentioned (for "remove it") and an open clarify question
// so a numeric answer picks one of its options.
type Interpreter struct {
	parser     *parser.Parser
	ctrl       *game.Controller
	pending    *parser.ClarifyQuestion
	lastEntity string
}

func NewInterpreter(ctrl *game.Controller) *Interpreter {
	return &Interpreter{parser: parser.New(), ctrl: ctrl}
}

func (in *Interpreter) Controller() *game.Controller {
	return in.ctrl
}

// Parse resolves one line to an intent without executing it.
func (in *Interpreter) Parse(line string) parser.Intent {
	if in.pending != nil {
		if n, err := strconv.Atoi(strings.TrimSpace(line)); err == nil && n >= 1 && n <= len(in.pending.Options) {
			choice := in.pending.Options[n-1]
			in.pending = nil
			return choice
		}
		in.pending = nil
	}
	items, selected := in.ctrl.Vocabulary()
	return in.parser.Parse(parser.ParseContext{
		Items:      items,
		Selected:   selected,
		LastEntity: in.lastEntity,
	}, line)
}

// Execute applies a parsed intent to the controller.
func (in *Interpreter) Execute(intent parser.Intent) Reply {
	if intent.Clarify != nil {
		if len(intent.Clarify.Options) > 0 {
			in.pending = intent.Clarify
		}
		return Reply{Message: formatClarify(intent.Clarify), Clarify: intent.Clarify}
	}
	if intent.Verb == "quit" {
		return Reply{Message: "Goodbye.", Quit: true}
	}

	command := parser.IntentToCommandString(intent)
	if command == "" {
		return Reply{Message: "Unknown command. Type help for the command list."}
	}
	before := len(in.ctrl.Snapshot().Selection)
	res := in.ctrl.ExecuteCommand(command)
	if !res.Handled {
		return Reply{Message: "Unknown command. Type help for the command list."}
	}

	if item, ok := in.ctrl.ResolveItem(intent.Args); ok {
		in.lastEntity = string(item.ID)
		if intent.Verb == "add" && len(in.ctrl.Snapshot().Selection) > before {
			in.ctrl.Trigger(item.ID)
		}
	}
	return Reply{Message: res.Message, Submit: res.Submit}
}

// Handle parses and executes one line.
func (in *Interpreter) Handle(line string) Reply {
	return in.Execute(in.Parse(line))
}

func formatClarify(q *parser.ClarifyQuestion) string {
	if len(q.Options) == 0 {
		return q.Prompt
	}
	var b strings.Builder
	b.WriteString(q.Prompt)
	for i, opt := range q.Options {
		fmt.Fprintf(&b, " %d) %s", i+1, parser.IntentToCommandString(opt))
	}
	return b.String()
}
