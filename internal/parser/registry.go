package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type commandPhrase struct {
	canonical string
	alias     string
	tokens    []string
}

type Registry struct {
	commands map[string]CommandDef
	phrases  []commandPhrase
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]CommandDef)}
}

func (r *Registry) RegisterCommand(c CommandDef) {
	c.Canonical = normaliseInput(c.Canonical)
	if c.Canonical == "" {
		return
	}
	if c.HandlerKey == "" {
		c.HandlerKey = c.Canonical
	}
	r.commands[c.Canonical] = c

	for _, alias := range append([]string{c.Canonical}, c.Aliases...) {
		n := normaliseInput(alias)
		if n == "" {
			continue
		}
		r.phrases = append(r.phrases, commandPhrase{canonical: c.Canonical, alias: n, tokens: tokenise(n)})
	}
}

func (r *Registry) command(canonical string) (CommandDef, bool) {
	cmd, ok := r.commands[normaliseInput(canonical)]
	return cmd, ok
}

type commandCandidate struct {
	Canonical string
	Consumed  int
	Score     float64
}

// scorePhrase rates how well the leading tokens match one alias: exact
// (1.0, or 0.97 through an alias), single-word prefix (0.9), then a
// levenshtein fallback that decays with distance.
func scorePhrase(tokens []string, phrase commandPhrase) (commandCandidate, bool) {
	consumed := min(len(tokens), len(phrase.tokens))
	prefix := strings.Join(tokens[:consumed], " ")
	cand := commandCandidate{Canonical: phrase.canonical, Consumed: consumed}

	switch {
	case consumed == len(phrase.tokens) && prefix == phrase.alias:
		cand.Score = 1.0
		if phrase.alias != phrase.canonical {
			cand.Score = 0.97
		}
		return cand, true
	case len(phrase.tokens) == 1 && len(tokens[0]) >= 2 && strings.HasPrefix(phrase.alias, tokens[0]):
		cand.Consumed = 1
		cand.Score = 0.9
		return cand, true
	}

	if len(prefix) < 3 {
		return commandCandidate{}, false
	}
	dist := levenshtein.ComputeDistance(prefix, phrase.alias)
	if dist > levenshteinLimit(len(phrase.alias)) {
		return commandCandidate{}, false
	}
	cand.Score = 0.72 - (0.08 * float64(dist))
	if phrase.alias != phrase.canonical {
		cand.Score += 0.03
	}
	return cand, true
}

func (r *Registry) matchCommand(tokens []string) (commandCandidate, []commandCandidate) {
	if len(tokens) == 0 {
		return commandCandidate{}, nil
	}
	cands := make([]commandCandidate, 0, len(r.phrases))
	for _, phrase := range r.phrases {
		if len(phrase.tokens) == 0 {
			continue
		}
		if cand, ok := scorePhrase(tokens, phrase); ok {
			cands = append(cands, cand)
		}
	}
	if len(cands) == 0 {
		return commandCandidate{}, nil
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Score == cands[j].Score {
			if cands[i].Consumed == cands[j].Consumed {
				return cands[i].Canonical < cands[j].Canonical
			}
			return cands[i].Consumed > cands[j].Consumed
		}
		return cands[i].Score > cands[j].Score
	})

	best := cands[0]
	alts := make([]commandCandidate, 0, 4)
	seen := map[string]bool{best.Canonical: true}
	for _, c := range cands[1:] {
		if seen[c.Canonical] {
			continue
		}
		seen[c.Canonical] = true
		alts = append(alts, c)
		if len(alts) >= 4 {
			break
		}
	}
	return best, alts
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	commands := []CommandDef{
		{Canonical: "help", Aliases: []string{"h", "commands", "?"}, HandlerKey: "help"},
		{Canonical: "start", Aliases: []string{"play", "begin", "new game"}, HandlerKey: "start"},
		{Canonical: "restart", Aliases: []string{"reset", "start over", "play again"}, HandlerKey: "restart"},
		{Canonical: "next", Aliases: []string{"advance", "continue", "next level"}, HandlerKey: "next"},
		{Canonical: "add", Aliases: []string{"select", "pick", "choose", "send", "deploy"}, MinArgs: 1, MaxArgs: 4, HandlerKey: "add", Entity: true},
		{Canonical: "remove", Aliases: []string{"deselect", "unselect", "drop", "rm"}, MinArgs: 1, MaxArgs: 4, HandlerKey: "remove", Entity: true},
		{Canonical: "submit", Aliases: []string{"check", "validate", "confirm", "go"}, HandlerKey: "submit"},
		{Canonical: "status", Aliases: []string{"state"}, MaxArgs: 4, HandlerKey: "status", Entity: true},
		{Canonical: "selection", Aliases: []string{"selected", "picks"}, HandlerKey: "selection"},
		{Canonical: "hint", Aliases: []string{"clue", "tip"}, HandlerKey: "hint"},
		{Canonical: "info", Aliases: []string{"describe", "about", "what is", "explain"}, MinArgs: 1, MaxArgs: 4, HandlerKey: "info", Entity: true},
		{Canonical: "catalog", Aliases: []string{"list", "responses", "catalogue"}, HandlerKey: "catalog"},
		{Canonical: "effective", Aliases: []string{"what works", "counters"}, HandlerKey: "effective"},
		{Canonical: "score", Aliases: []string{"points"}, HandlerKey: "score"},
		{Canonical: "quit", Aliases: []string{"exit", "q"}, HandlerKey: "quit"},
	}
	for _, cmd := range commands {
		r.RegisterCommand(cmd)
	}
	return r
}
