package parser

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type Parser struct {
	registry *Registry
}

func New() *Parser {
	return &Parser{registry: DefaultRegistry()}
}

func (p *Parser) RegisterCommand(c CommandDef) {
	p.registry.RegisterCommand(c)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	intent := Intent{
		Raw:        raw,
		Normalised: normaliseInput(raw),
		Kind:       Unknown,
	}
	if intent.Normalised == "" {
		intent.Clarify = &ClarifyQuestion{Prompt: "Enter a command."}
		return intent
	}

	tokens := tokenise(intent.Normalised)
	cmdMatch, alternates := p.registry.matchCommand(tokens)
	if cmdMatch.Canonical == "" || cmdMatch.Score < 0.5 {
		if inferred := inferFreeTextIntent(ctx, intent.Raw, intent.Normalised); inferred != nil {
			return *inferred
		}
		intent.Clarify = &ClarifyQuestion{
			Prompt: "I couldn't map that to a command. Try add, remove, submit, status, hint, info, catalog or help.",
		}
		return intent
	}

	if len(alternates) > 0 && (cmdMatch.Score-alternates[0].Score) < 0.05 && alternates[0].Score > 0.65 {
		intent.Clarify = &ClarifyQuestion{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Normalised: cmdMatch.Canonical, Kind: commandKind(cmdMatch.Canonical), Verb: cmdMatch.Canonical, Confidence: cmdMatch.Score},
				{Raw: raw, Normalised: alternates[0].Canonical, Kind: commandKind(alternates[0].Canonical), Verb: alternates[0].Canonical, Confidence: alternates[0].Score},
			},
		}
		return intent
	}

	intent.Verb = cmdMatch.Canonical
	intent.Kind = commandKind(intent.Verb)
	intent.Confidence = clampScore(cmdMatch.Score)

	argsTokens := tokens
	if cmdMatch.Consumed > 0 && len(tokens) >= cmdMatch.Consumed {
		argsTokens = tokens[cmdMatch.Consumed:]
	}

	def, _ := p.registry.command(intent.Verb)
	args, clarify, argScore := p.resolveArgs(ctx, def, argsTokens)
	if clarify != nil {
		intent.Clarify = clarify
		intent.Confidence = 0.45
		return intent
	}
	intent.Args = args
	if len(args) > 0 {
		intent.Confidence = clampScore((intent.Confidence * 0.75) + (argScore * 0.25))
	}

	if len(intent.Args) < def.MinArgs {
		if def.Entity {
			if options := buildEntityOptions(ctx, def.Canonical, 5); len(options) > 0 {
				intent.Clarify = &ClarifyQuestion{
					Prompt:  fmt.Sprintf("Which response should I %s?", def.Canonical),
					Options: options,
				}
				intent.Confidence = 0.46
				return intent
			}
		}
		intent.Clarify = &ClarifyQuestion{Prompt: fmt.Sprintf("%s needs at least %d argument(s).", def.Canonical, def.MinArgs)}
		intent.Confidence = 0.42
		return intent
	}

	if intent.Confidence < 0.52 {
		intent.Clarify = &ClarifyQuestion{Prompt: "I have low confidence in that parse. Please rephrase or pick a clearer command."}
	}
	return intent
}

func commandKind(verb string) IntentKind {
	switch verb {
	case "help":
		return Help
	case "status", "selection", "hint", "info", "catalog", "effective", "score":
		return Query
	default:
		return Command
	}
}

// resolveArgs turns the argument tokens into a single catalog reference for
// entity commands. Other commands take no arguments and drop them.
func (p *Parser) resolveArgs(ctx ParseContext, def CommandDef, args []string) ([]string, *ClarifyQuestion, float64) {
	if len(args) == 0 || !def.Entity {
		return nil, nil, 0.9
	}
	args = stripFiller(args)
	if def.MaxArgs > 0 && len(args) > def.MaxArgs {
		args = args[:def.MaxArgs]
	}

	if len(args) == 1 && isPronoun(args[0]) {
		if strings.TrimSpace(ctx.LastEntity) == "" {
			return nil, &ClarifyQuestion{Prompt: "What does that refer to?"}, 0.4
		}
		return []string{normaliseInput(ctx.LastEntity)}, nil, 0.82
	}

	ref := strings.Join(args, " ")
	entity, confidence, tie := resolveEntity(ref, ctx, def.Canonical)
	if tie && len(entity) >= 2 {
		options := make([]Intent, 0, 2)
		for idx := 0; idx < 2; idx++ {
			options = append(options, Intent{
				Kind:       commandKind(def.Canonical),
				Verb:       def.Canonical,
				Args:       []string{entity[idx]},
				Confidence: confidence - float64(idx)*0.01,
			})
		}
		return nil, &ClarifyQuestion{
			Prompt:  fmt.Sprintf("Did you mean %s?", def.Canonical),
			Options: options,
		}, 0.52
	}
	if len(entity) == 1 {
		return entity, nil, confidence
	}
	// Unknown names pass through so the game can report them.
	return []string{ref}, nil, 0.6
}

func resolveEntity(ref string, ctx ParseContext, verb string) ([]string, float64, bool) {
	n := normaliseInput(ref)
	if n == "" {
		return nil, 0, false
	}
	items := mergeUnique(ctx.Items, nil)
	selected := mergeUnique(ctx.Selected, nil)
	var boost []string
	if verb == "remove" {
		boost = selected
	}
	return bestMatches(n, mergeUnique(items, selected), boost)
}

func bestMatches(token string, all []string, boost []string) ([]string, float64, bool) {
	if len(all) == 0 {
		return nil, 0, false
	}
	type scored struct {
		val   string
		score float64
	}
	boostSet := make(map[string]bool, len(boost))
	for _, b := range boost {
		boostSet[b] = true
	}

	results := make([]scored, 0, len(all))
	for _, cand := range all {
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		if boostSet[cand] {
			score += 0.08
		}
		results = append(results, scored{val: cand, score: clampScore(score)})
	}
	if len(results) == 0 {
		return nil, 0, false
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].score == results[j].score {
			return results[i].val < results[j].val
		}
		return results[i].score > results[j].score
	})

	best := results[0]
	tie := len(results) > 1 && (best.score-results[1].score) < 0.05 && results[1].score > 0.6
	if tie {
		return []string{best.val, results[1].val}, best.score, true
	}
	return []string{best.val}, best.score, false
}

func buildEntityOptions(ctx ParseContext, verb string, maxOptions int) []Intent {
	pool := ctx.Items
	if verb == "remove" {
		pool = ctx.Selected
	}
	seen := map[string]bool{}
	options := make([]Intent, 0, maxOptions)
	for _, entity := range pool {
		n := normaliseInput(entity)
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		options = append(options, Intent{
			Kind:       commandKind(verb),
			Verb:       verb,
			Args:       []string{n},
			Confidence: 0.88,
		})
		if len(options) >= maxOptions {
			break
		}
	}
	return options
}

func inferFreeTextIntent(ctx ParseContext, raw string, normalised string) *Intent {
	n := normalised
	makeIntent := func(kind IntentKind, verb string, args []string, confidence float64) *Intent {
		return &Intent{
			Raw:        raw,
			Normalised: normalised,
			Kind:       kind,
			Verb:       verb,
			Args:       args,
			Confidence: clampScore(confidence),
		}
	}

	if containsAnyPhrase(n, "im stuck", "i m stuck", "give me a hint", "need a hint", "no idea") {
		return makeIntent(Query, "hint", nil, 0.84)
	}
	if containsAnyPhrase(n, "am i right", "is that right", "is this right", "check my answer", "lock it in") {
		return makeIntent(Command, "submit", nil, 0.82)
	}
	if containsAnyPhrase(n, "what did i pick", "what have i picked", "my picks") {
		return makeIntent(Query, "selection", nil, 0.86)
	}
	if containsAnyPhrase(n, "what works against", "what kills", "what fights") {
		return makeIntent(Query, "effective", nil, 0.8)
	}

	// "tell me about macrophages", "what does a b cell do"
	for _, lead := range []string{"tell me about", "what does", "what are", "who are"} {
		if !containsPhrase(n, lead) {
			continue
		}
		rest := strings.TrimSpace(n[strings.Index(" "+n+" ", " "+lead+" ")+len(lead):])
		rest = strings.TrimSuffix(strings.TrimSuffix(rest, " do"), " for")
		rest = strings.Join(stripFiller(tokenise(rest)), " ")
		if rest == "" {
			continue
		}
		if m, confidence, tie := resolveEntity(rest, ctx, "info"); len(m) >= 1 && !tie {
			return makeIntent(Query, "info", []string{m[0]}, confidence*0.95)
		}
		if singular := strings.TrimSuffix(rest, "s"); singular != rest {
			if m, confidence, tie := resolveEntity(singular, ctx, "info"); len(m) >= 1 && !tie {
				return makeIntent(Query, "info", []string{m[0]}, confidence*0.9)
			}
		}
	}

	return nil
}

func containsAnyPhrase(value string, phrases ...string) bool {
	for _, phrase := range phrases {
		if containsPhrase(value, phrase) {
			return true
		}
	}
	return false
}

func containsPhrase(value, phrase string) bool {
	p := normaliseInput(phrase)
	if p == "" {
		return false
	}
	return strings.Contains(" "+value+" ", " "+p+" ")
}

func mergeUnique(a, b []string) []string {
	seen := map[string]bool{}
	out := make([]string, 0, len(a)+len(b))
	add := func(list []string) {
		for _, v := range list {
			n := normaliseInput(v)
			if n == "" || seen[n] {
				continue
			}
			seen[n] = true
			out = append(out, n)
		}
	}
	add(a)
	add(b)
	return out
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// IntentToCommandString renders an intent in the canonical form accepted by
// the game's ExecuteCommand.
func IntentToCommandString(intent Intent) string {
	verb := normaliseInput(intent.Verb)
	if verb == "" {
		return ""
	}
	args := make([]string, 0, len(intent.Args))
	for _, arg := range intent.Args {
		if n := normaliseInput(arg); n != "" {
			args = append(args, n)
		}
	}
	if len(args) == 0 {
		return verb
	}
	return verb + " " + strings.Join(args, " ")
}
