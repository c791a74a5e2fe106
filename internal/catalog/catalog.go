package catalog

// Catalog is the immutable registry of items and scenarios. Build one with
// New, Load or Builtin; all of them validate referential integrity first.
type Catalog struct {
	items     []Item
	byID      map[ItemID]int
	scenarios []Scenario
}

// New validates items and scenarios and returns a read-only catalog.
func New(items []Item, scenarios []Scenario) (*Catalog, error) {
	if err := Validate(items, scenarios); err != nil {
		return nil, err
	}
	c := &Catalog{
		items:     cloneItems(items),
		byID:      make(map[ItemID]int, len(items)),
		scenarios: cloneScenarios(scenarios),
	}
	for i, item := range c.items {
		c.byID[item.ID] = i
	}
	return c, nil
}

func (c *Catalog) Item(id ItemID) (Item, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return cloneItem(c.items[idx]), true
}

// Has reports whether id names a catalog item.
func (c *Catalog) Has(id ItemID) bool {
	_, ok := c.byID[id]
	return ok
}

// Scenario returns the scenario at the zero-based index.
func (c *Catalog) Scenario(index int) (Scenario, bool) {
	if index < 0 || index >= len(c.scenarios) {
		return Scenario{}, false
	}
	return cloneScenario(c.scenarios[index]), true
}

func (c *Catalog) ScenarioByID(id int) (Scenario, bool) {
	for _, s := range c.scenarios {
		if s.ID == id {
			return cloneScenario(s), true
		}
	}
	return Scenario{}, false
}

func (c *Catalog) ScenarioCount() int {
	return len(c.scenarios)
}

func (c *Catalog) Items() []Item {
	return cloneItems(c.items)
}

func (c *Catalog) Scenarios() []Scenario {
	return cloneScenarios(c.scenarios)
}

// EffectiveAgainst returns the items tagged as effective against t, in
// catalog order.
func (c *Catalog) EffectiveAgainst(t TargetType) []Item {
	var out []Item
	for _, item := range c.items {
		if item.IsEffectiveAgainst(t) {
			out = append(out, cloneItem(item))
		}
	}
	return out
}

func (c *Catalog) ItemsByCategory(cat Category) []Item {
	var out []Item
	for _, item := range c.items {
		if item.Category == cat {
			out = append(out, cloneItem(item))
		}
	}
	return out
}

func cloneItem(item Item) Item {
	item.EffectiveAgainst = append([]TargetType(nil), item.EffectiveAgainst...)
	item.Requires = append([]ItemID(nil), item.Requires...)
	return item
}

func cloneItems(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[i] = cloneItem(item)
	}
	return out
}

func cloneScenario(s Scenario) Scenario {
	s.Sequence = append([]ItemID(nil), s.Sequence...)
	return s
}

func cloneScenarios(scenarios []Scenario) []Scenario {
	out := make([]Scenario, len(scenarios))
	for i, s := range scenarios {
		out[i] = cloneScenario(s)
	}
	return out
}
