package parser

import "testing"

func responseContext() ParseContext {
	return ParseContext{
		Items: []string{
			"neutrophil", "Neutrophil",
			"macrophage", "Macrophage",
			"dendritic", "Dendritic Cell",
			"nk", "Natural Killer Cell",
			"bcell", "B Cell",
			"tcell_helper", "Helper T Cell",
			"tcell_cytotoxic", "Cytotoxic T Cell",
			"complement", "Complement System",
			"interferons", "Interferons",
		},
	}
}

func TestNormalisationTable(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "  MACROPHAGE  ", want: "macrophage"},
		{in: "add tcell_helper", want: "add tcell helper"},
		{in: "What's   up?!", want: "what s up"},
		{in: "info\tnk", want: "info nk"},
	}
	for _, tc := range tests {
		got := normaliseInput(tc.in)
		if got != tc.want {
			t.Fatalf("normaliseInput(%q)=%q want=%q", tc.in, got, tc.want)
		}
	}
}

func TestAliasCheckMapsToSubmit(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "check")
	if intent.Verb != "submit" {
		t.Fatalf("expected submit verb, got %q", intent.Verb)
	}
	if intent.Kind != Command {
		t.Fatalf("expected command kind, got %v", intent.Kind)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestTypoSubmittMapsToSubmit(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "submitt")
	if intent.Verb != "submit" {
		t.Fatalf("expected submit verb, got %q", intent.Verb)
	}
	if intent.Confidence < 0.6 {
		t.Fatalf("expected decent confidence for typo correction, got %.2f", intent.Confidence)
	}
}

func TestTypoInEntityResolvesMacrophage(t *testing.T) {
	p := New()
	intent := p.Parse(responseContext(), "add macrophge")
	if intent.Verb != "add" {
		t.Fatalf("expected add verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "macrophage" {
		t.Fatalf("expected macrophage, got %+v", intent.Args)
	}
	if intent.Clarify != nil {
		t.Fatalf("did not expect clarify: %+v", intent.Clarify)
	}
}

func TestMultiWordNameWithArticle(t *testing.T) {
	p := New()
	intent := p.Parse(responseContext(), "select the helper t cell")
	if intent.Verb != "add" {
		t.Fatalf("expected add verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "helper t cell" {
		t.Fatalf("expected helper t cell, got %+v", intent.Args)
	}
}

func TestPrefixResolvesAndSelectionBoostsRemove(t *testing.T) {
	p := New()
	ctx := responseContext()
	ctx.Selected = []string{"neutrophil"}
	intent := p.Parse(ctx, "rm neu")
	if intent.Verb != "remove" {
		t.Fatalf("expected remove verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "neutrophil" {
		t.Fatalf("expected neutrophil, got %+v", intent.Args)
	}
}

func TestUnknownEntityPassesThrough(t *testing.T) {
	p := New()
	intent := p.Parse(responseContext(), "add platelets")
	if intent.Verb != "add" {
		t.Fatalf("expected add verb, got %q", intent.Verb)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "platelets" {
		t.Fatalf("expected raw reference to pass through, got %+v", intent.Args)
	}
}

func TestMissingEntityReturnsClarify(t *testing.T) {
	p := New()
	intent := p.Parse(responseContext(), "add")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for target-less add")
	}
	if len(intent.Clarify.Options) < 2 {
		t.Fatalf("expected at least 2 clarify options, got %d", len(intent.Clarify.Options))
	}
	if intent.Clarify.Options[0].Verb != "add" {
		t.Fatalf("expected add options, got %+v", intent.Clarify.Options[0])
	}
}

func TestRemoveClarifyOffersOnlySelection(t *testing.T) {
	p := New()
	ctx := responseContext()
	ctx.Selected = []string{"macrophage"}
	intent := p.Parse(ctx, "remove")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for target-less remove")
	}
	if len(intent.Clarify.Options) != 1 || intent.Clarify.Options[0].Args[0] != "macrophage" {
		t.Fatalf("expected only the selected response, got %+v", intent.Clarify.Options)
	}
}

func TestAmbiguousEntityReturnsClarify(t *testing.T) {
	p := New()
	intent := p.Parse(responseContext(), "info tcell")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for ambiguous tcell")
	}
	if len(intent.Clarify.Options) != 2 {
		t.Fatalf("expected 2 clarify options, got %d", len(intent.Clarify.Options))
	}
	got := []string{intent.Clarify.Options[0].Args[0], intent.Clarify.Options[1].Args[0]}
	if got[0] != "tcell cytotoxic" || got[1] != "tcell helper" {
		t.Fatalf("unexpected options %v", got)
	}
}

func TestPronounResolutionRemoveIt(t *testing.T) {
	p := New()
	ctx := ParseContext{
		Selected:   []string{"macrophage"},
		LastEntity: "macrophage",
	}
	intent := p.Parse(ctx, "remove it")
	if intent.Clarify != nil {
		t.Fatalf("unexpected clarify: %+v", intent.Clarify)
	}
	if intent.Verb != "remove" {
		t.Fatalf("expected remove verb, got %q", intent.Verb)
	}
	if len(intent.Args) == 0 || intent.Args[0] != "macrophage" {
		t.Fatalf("expected pronoun to resolve to macrophage, got %+v", intent.Args)
	}
}

func TestPronounWithoutHistoryAsks(t *testing.T) {
	p := New()
	intent := p.Parse(responseContext(), "add that")
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for unresolved pronoun")
	}
}

func TestWhatIsAliasMapsToInfo(t *testing.T) {
	p := New()
	intent := p.Parse(responseContext(), "what is a b cell")
	if intent.Verb != "info" || intent.Kind != Query {
		t.Fatalf("expected info query, got %q kind=%v", intent.Verb, intent.Kind)
	}
	if len(intent.Args) != 1 || intent.Args[0] != "b cell" {
		t.Fatalf("expected b cell, got %+v", intent.Args)
	}
}

func TestFreeTextInference(t *testing.T) {
	tests := []struct {
		in       string
		wantVerb string
		wantArgs []string
	}{
		{in: "I'm stuck", wantVerb: "hint"},
		{in: "am i right?", wantVerb: "submit"},
		{in: "show my picks", wantVerb: "selection"},
		{in: "tell me about macrophages", wantVerb: "info", wantArgs: []string{"macrophage"}},
		{in: "what does a b cell do", wantVerb: "info", wantArgs: []string{"b cell"}},
	}
	p := New()
	for _, tc := range tests {
		intent := p.Parse(responseContext(), tc.in)
		if intent.Verb != tc.wantVerb {
			t.Fatalf("Parse(%q) verb=%q want=%q", tc.in, intent.Verb, tc.wantVerb)
		}
		if len(intent.Args) != len(tc.wantArgs) {
			t.Fatalf("Parse(%q) args=%v want=%v", tc.in, intent.Args, tc.wantArgs)
		}
		for i := range tc.wantArgs {
			if intent.Args[i] != tc.wantArgs[i] {
				t.Fatalf("Parse(%q) args=%v want=%v", tc.in, intent.Args, tc.wantArgs)
			}
		}
	}
}

func TestGibberishAsksForCommand(t *testing.T) {
	p := New()
	intent := p.Parse(ParseContext{}, "xyzzy plugh")
	if intent.Verb != "" || intent.Kind != Unknown {
		t.Fatalf("expected unknown intent, got %q", intent.Verb)
	}
	if intent.Clarify == nil {
		t.Fatalf("expected clarify for gibberish")
	}
}

func TestIntentToCommandString(t *testing.T) {
	got := IntentToCommandString(Intent{Verb: "add", Args: []string{"tcell_helper"}})
	if got != "add tcell helper" {
		t.Fatalf("unexpected command string %q", got)
	}
	if got := IntentToCommandString(Intent{Verb: "submit"}); got != "submit" {
		t.Fatalf("unexpected command string %q", got)
	}
	if got := IntentToCommandString(Intent{}); got != "" {
		t.Fatalf("expected empty command string, got %q", got)
	}
}
