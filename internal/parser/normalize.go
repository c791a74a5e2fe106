package parser

import (
	"regexp"
	"strings"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

// normaliseInput lower-cases raw input, keeps letters and digits, and folds
// separators (including '_' so catalog ids read as words) into single spaces.
func normaliseInput(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" {
		return ""
	}
	var b strings.Builder
	lastSpace := false
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastSpace = false
			continue
		}
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '-' || r == '_' || r == '/' || r == '\'' {
			if !lastSpace {
				b.WriteByte(' ')
			}
			lastSpace = true
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}

func isPronoun(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "it", "that", "them", "this", "those":
		return true
	default:
		return false
	}
}

// fillerWords are dropped from the front of an entity reference, so that
// "add the macrophage" and "info a b cell" resolve like the bare name.
var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "some": true, "my": true,
}

func stripFiller(tokens []string) []string {
	for len(tokens) > 1 && fillerWords[tokens[0]] {
		tokens = tokens[1:]
	}
	return tokens
}
