package catalog

type ItemID string

type ItemKind string

const (
	KindCell     ItemKind = "cell"
	KindMolecule ItemKind = "molecule"
	KindProcess  ItemKind = "process"
)

type Category string

const (
	CategoryInnate    Category = "innate"
	CategoryAdaptive  Category = "adaptive"
	CategoryMolecules Category = "molecules"
)

type TargetType string

const (
	TargetVirus    TargetType = "virus"
	TargetBacteria TargetType = "bacteria"
	TargetFungus   TargetType = "fungus"
	TargetParasite TargetType = "parasite"
)

// Item is a selectable immune response.
type Item struct {
	ID               ItemID       `yaml:"id"`
	Name             string       `yaml:"name"`
	Kind             ItemKind     `yaml:"kind"`
	Category         Category     `yaml:"category"`
	Summary          string       `yaml:"summary"`
	Description      string       `yaml:"description"`
	EffectiveAgainst []TargetType `yaml:"effective_against"`
	Requires         []ItemID     `yaml:"requires"`
}

func (i Item) IsEffectiveAgainst(t TargetType) bool {
	for _, candidate := range i.EffectiveAgainst {
		if candidate == t {
			return true
		}
	}
	return false
}

type Vec3 struct {
	X float32 `yaml:"x"`
	Y float32 `yaml:"y"`
	Z float32 `yaml:"z"`
}

// Target is the pathogen a scenario is played against.
type Target struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Type        TargetType `yaml:"type"`
	Description string     `yaml:"description"`
	Position    Vec3       `yaml:"position"`
	Difficulty  int        `yaml:"difficulty"`
}

type Scenario struct {
	ID          int      `yaml:"id"`
	Name        string   `yaml:"name"`
	Objective   string   `yaml:"objective"`
	Description string   `yaml:"description"`
	Target      Target   `yaml:"target"`
	Sequence    []ItemID `yaml:"sequence"`
	Hint        string   `yaml:"hint"`
	Outcome     string   `yaml:"outcome"`
}

func validKind(k ItemKind) bool {
	switch k {
	case KindCell, KindMolecule, KindProcess:
		return true
	default:
		return false
	}
}

func validCategory(c Category) bool {
	switch c {
	case CategoryInnate, CategoryAdaptive, CategoryMolecules:
		return true
	default:
		return false
	}
}

func validTargetType(t TargetType) bool {
	switch t {
	case TargetVirus, TargetBacteria, TargetFungus, TargetParasite:
		return true
	default:
		return false
	}
}
