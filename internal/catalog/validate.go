package catalog

import (
	"fmt"
	"strings"
)

// Validate checks the referential integrity of a catalog: unique ids, known
// enum values, every requires edge and sequence id resolving to an item, an
// acyclic prerequisite graph and non-empty scenario sequences.
func Validate(items []Item, scenarios []Scenario) error {
	known := make(map[ItemID]bool, len(items))
	for _, item := range items {
		if strings.TrimSpace(string(item.ID)) == "" {
			return &ConfigError{Err: ErrInvalidField, Detail: "item with empty id"}
		}
		if known[item.ID] {
			return &ConfigError{Err: ErrDuplicateID, ItemID: item.ID}
		}
		known[item.ID] = true

		if !validKind(item.Kind) {
			return &ConfigError{Err: ErrInvalidField, ItemID: item.ID, Detail: fmt.Sprintf("kind %q", item.Kind)}
		}
		if !validCategory(item.Category) {
			return &ConfigError{Err: ErrInvalidField, ItemID: item.ID, Detail: fmt.Sprintf("category %q", item.Category)}
		}
		for _, t := range item.EffectiveAgainst {
			if !validTargetType(t) {
				return &ConfigError{Err: ErrInvalidField, ItemID: item.ID, Detail: fmt.Sprintf("target type %q", t)}
			}
		}
	}

	for _, item := range items {
		for _, req := range item.Requires {
			if !known[req] {
				return &ConfigError{Err: ErrDanglingReference, ItemID: item.ID, Detail: fmt.Sprintf("requires unknown item %q", req)}
			}
		}
	}

	if err := checkAcyclic(items); err != nil {
		return err
	}

	seen := make(map[int]bool, len(scenarios))
	for _, s := range scenarios {
		if seen[s.ID] {
			return &ConfigError{Err: ErrDuplicateID, ScenarioID: s.ID}
		}
		seen[s.ID] = true

		if len(s.Sequence) == 0 {
			return &ConfigError{Err: ErrEmptySequence, ScenarioID: s.ID}
		}
		if strings.TrimSpace(s.Target.ID) == "" {
			return &ConfigError{Err: ErrInvalidField, ScenarioID: s.ID, Detail: "target with empty id"}
		}
		if !validTargetType(s.Target.Type) {
			return &ConfigError{Err: ErrInvalidField, ScenarioID: s.ID, Detail: fmt.Sprintf("target type %q", s.Target.Type)}
		}
		inSequence := make(map[ItemID]bool, len(s.Sequence))
		for _, id := range s.Sequence {
			if !known[id] {
				return &ConfigError{Err: ErrDanglingReference, ScenarioID: s.ID, ItemID: id, Detail: "sequence references unknown item"}
			}
			if inSequence[id] {
				return &ConfigError{Err: ErrDuplicateID, ScenarioID: s.ID, ItemID: id, Detail: "item repeated in sequence"}
			}
			inSequence[id] = true
		}
	}
	return nil
}

const (
	white = iota
	grey
	black
)

// checkAcyclic runs a three-colour DFS over the requires graph and reports
// the first item found on a back edge.
func checkAcyclic(items []Item) error {
	edges := make(map[ItemID][]ItemID, len(items))
	for _, item := range items {
		edges[item.ID] = item.Requires
	}
	colour := make(map[ItemID]int, len(items))
	var path []ItemID

	var visit func(id ItemID) error
	visit = func(id ItemID) error {
		colour[id] = grey
		path = append(path, id)
		for _, next := range edges[id] {
			switch colour[next] {
			case grey:
				return &ConfigError{Err: ErrPrerequisiteCycle, ItemID: next, Detail: cyclePath(path, next)}
			case white:
				if err := visit(next); err != nil {
					return err
				}
			}
		}
		path = path[:len(path)-1]
		colour[id] = black
		return nil
	}

	for _, item := range items {
		if colour[item.ID] != white {
			continue
		}
		if err := visit(item.ID); err != nil {
			return err
		}
	}
	return nil
}

func cyclePath(path []ItemID, back ItemID) string {
	start := 0
	for i, id := range path {
		if id == back {
			start = i
			break
		}
	}
	parts := make([]string, 0, len(path)-start+1)
	for _, id := range path[start:] {
		parts = append(parts, string(id))
	}
	parts = append(parts, string(back))
	return strings.Join(parts, " -> ")
}
