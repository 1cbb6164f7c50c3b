package catalog

import "sort"

// Catalog is the aggregate of all discovered plugins for one run. It is
// populated plugin-by-plugin during scanning and treated as read-only from
// validation onward. Nothing persists across runs.
type Catalog struct {
	plugins map[string]*PluginRecord
	order   []string // discovery order
}

// New returns an empty catalog.
func New() *Catalog {
	return &Catalog{plugins: make(map[string]*PluginRecord)}
}

// Add inserts a plugin record. Duplicate ids are ignored; plugin directories
// are unique on disk, so a duplicate can only come from a caller bug.
func (c *Catalog) Add(p *PluginRecord) {
	if _, exists := c.plugins[p.ID]; exists {
		return
	}
	c.plugins[p.ID] = p
	c.order = append(c.order, p.ID)
}

// Get returns the plugin with the given id, or nil.
func (c *Catalog) Get(id string) *PluginRecord {
	return c.plugins[id]
}

// Len returns the number of plugins in the catalog.
func (c *Catalog) Len() int {
	return len(c.plugins)
}

// Plugins returns all plugin records sorted lexicographically by id. All
// rendered listings derive from this ordering so output is deterministic
// no matter what order the scanner walked the directories in.
func (c *Catalog) Plugins() []*PluginRecord {
	ids := make([]string, 0, len(c.plugins))
	for id := range c.plugins {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]*PluginRecord, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.plugins[id])
	}
	return out
}

// Stats summarizes catalog contents for rendered documentation.
type Stats struct {
	TotalPlugins  int
	TotalAgents   int
	TotalCommands int
	TotalSkills   int
}

// Stats counts plugins and components across the catalog.
func (c *Catalog) Stats() Stats {
	s := Stats{TotalPlugins: len(c.plugins)}
	for _, p := range c.plugins {
		for _, comp := range p.Components {
			switch comp.Kind {
			case KindAgent:
				s.TotalAgents++
			case KindCommand:
				s.TotalCommands++
			case KindSkill:
				s.TotalSkills++
			}
		}
	}
	return s
}

// TaggedComponent is a component paired with its owning plugin id, used for
// catalog-wide listings ("all agents", "all skills").
type TaggedComponent struct {
	PluginID string
	ComponentRecord
}

// ComponentsOfKind returns every component of one kind across all plugins,
// sorted by plugin id then component name.
func (c *Catalog) ComponentsOfKind(kind ComponentKind) []TaggedComponent {
	var out []TaggedComponent
	for _, p := range c.Plugins() {
		comps := p.ComponentsOfKind(kind)
		sort.SliceStable(comps, func(i, j int) bool { return comps[i].Name < comps[j].Name })
		for _, comp := range comps {
			out = append(out, TaggedComponent{PluginID: p.ID, ComponentRecord: comp})
		}
	}
	return out
}
