package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/appengine-ltd/immune-defense/internal/catalog"
	"github.com/appengine-ltd/immune-defense/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	cat, err := catalog.Builtin()
	if err != nil {
		fatal(err)
	}

	root := filepath.Join("docs", "reference", "catalog")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	files := []docFile{
		generateResponsesDoc(cat),
		generatePrerequisitesDoc(cat),
		generateScenariosDoc(cat),
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateCatalogIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateCatalogIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Immune Catalog\n\n")
	b.WriteString("Generated from `internal/catalog/data/immune.yaml` using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		b.WriteString(fmt.Sprintf("- [%s](./%s)\n", f.Title, f.Name))
	}
	return b.String()
}

var categoryRank = map[catalog.Category]int{
	catalog.CategoryInnate:    0,
	catalog.CategoryAdaptive:  1,
	catalog.CategoryMolecules: 2,
}

func generateResponsesDoc(cat *catalog.Catalog) docFile {
	items := cat.Items()
	sort.Slice(items, func(i, j int) bool {
		ri := categoryRank[items[i].Category]
		rj := categoryRank[items[j].Category]
		if ri != rj {
			return ri < rj
		}
		return items[i].Name < items[j].Name
	})

	var b strings.Builder
	b.WriteString("# Immune Responses\n\n")
	b.WriteString(fmt.Sprintf("Total responses: **%d**.\n\n", len(items)))
	b.WriteString("| ID | Name | Kind | Category | Effective Against | Requires | Summary |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, it := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(it.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(it.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(it.Kind)))
		b.WriteString(" | ")
		b.WriteString(escape(string(it.Category)))
		b.WriteString(" | ")
		b.WriteString(escape(formatTargetTypes(it.EffectiveAgainst)))
		b.WriteString(" | ")
		b.WriteString(escape(formatIDs(it.Requires)))
		b.WriteString(" | ")
		b.WriteString(escape(it.Summary))
		b.WriteString(" |\n")
	}

	return docFile{Name: "responses.md", Title: "Immune Responses", Content: b.String()}
}

// generatePrerequisitesDoc shows what a fresh scenario offers before any
// pick: responses with prerequisites start disabled.
func generatePrerequisitesDoc(cat *catalog.Catalog) docFile {
	ctrl := game.NewController(cat, game.WithSessionID("docsgen"))
	ctrl.Start()
	snap := ctrl.Snapshot()

	items := cat.Items()
	sort.Slice(items, func(i, j int) bool {
		if len(items[i].Requires) != len(items[j].Requires) {
			return len(items[i].Requires) < len(items[j].Requires)
		}
		return items[i].ID < items[j].ID
	})

	var b strings.Builder
	b.WriteString("# Prerequisites\n\n")
	b.WriteString("A response is disabled until each prerequisite has been validated earlier in the scenario or is in the current selection.\n\n")
	b.WriteString("| ID | Requires | Status at scenario start |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, it := range items {
		b.WriteString("| ")
		b.WriteString(escape(string(it.ID)))
		b.WriteString(" | ")
		b.WriteString(escape(formatIDs(it.Requires)))
		b.WriteString(" | ")
		b.WriteString(escape(string(snap.Statuses[it.ID])))
		b.WriteString(" |\n")
	}

	return docFile{Name: "prerequisites.md", Title: "Prerequisites", Content: b.String()}
}

func generateScenariosDoc(cat *catalog.Catalog) docFile {
	scenarios := cat.Scenarios()
	steps := 0
	for _, sc := range scenarios {
		steps += len(sc.Sequence)
	}
	maxScore := steps*game.PointsPerStep + len(scenarios)*game.CompletionBonus

	var b strings.Builder
	b.WriteString("# Scenarios\n\n")
	b.WriteString(fmt.Sprintf("Total scenarios: **%d**. Maximum score: **%d**.\n\n", len(scenarios), maxScore))
	b.WriteString("| # | Name | Target | Type | Difficulty | Position | Sequence |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for i, sc := range scenarios {
		b.WriteString("| ")
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(" | ")
		b.WriteString(escape(sc.Name))
		b.WriteString(" | ")
		b.WriteString(escape(sc.Target.Name))
		b.WriteString(" | ")
		b.WriteString(escape(string(sc.Target.Type)))
		b.WriteString(" | ")
		b.WriteString(strconv.Itoa(sc.Target.Difficulty))
		b.WriteString(" | ")
		b.WriteString(formatVec(sc.Target.Position))
		b.WriteString(" | ")
		b.WriteString(escape(strings.Join(idStrings(sc.Sequence), " → ")))
		b.WriteString(" |\n")
	}

	b.WriteString("\n## Objectives\n\n")
	for i, sc := range scenarios {
		b.WriteString(fmt.Sprintf("%d. **%s**: %s\n", i+1, escape(sc.Name), escape(sc.Objective)))
	}

	return docFile{Name: "scenarios.md", Title: "Scenarios", Content: b.String()}
}

func idStrings(ids []catalog.ItemID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

func formatIDs(ids []catalog.ItemID) string {
	if len(ids) == 0 {
		return "-"
	}
	return strings.Join(idStrings(ids), ", ")
}

func formatTargetTypes(types []catalog.TargetType) string {
	if len(types) == 0 {
		return "-"
	}
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = string(t)
	}
	return strings.Join(out, ", ")
}

func formatVec(v catalog.Vec3) string {
	return fmt.Sprintf("(%s, %s, %s)", formatFloat(float64(v.X)), formatFloat(float64(v.Y)), formatFloat(float64(v.Z)))
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func escape(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	v = strings.ReplaceAll(v, "|", "\\|")
	v = strings.ReplaceAll(v, "\n", "<br>")
	return v
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
