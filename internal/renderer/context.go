package renderer

import (
	"sort"
	"time"

	"github.com/plugsmith-labs/plugsmith/internal/catalog"
)

// Context is the data handed to documentation templates. Every slice is
// pre-sorted so template output is deterministic.
type Context struct {
	Plugins     []*catalog.PluginRecord
	Categories  []CategoryGroup
	AllAgents   []catalog.TaggedComponent
	AllCommands []catalog.TaggedComponent
	AllSkills   []catalog.TaggedComponent
	Stats       catalog.Stats
	GeneratedAt string
}

// CategoryGroup holds the plugins of one category, for grouped listings.
type CategoryGroup struct {
	Category string
	Plugins  []*catalog.PluginRecord
}

// BuildContext assembles the template context from a catalog. The timestamp
// appears only in documentation targets, never in the manifest, so manifest
// bytes stay a pure function of the catalog.
func BuildContext(cat *catalog.Catalog, now time.Time) *Context {
	plugins := cat.Plugins()

	byCategory := make(map[string][]*catalog.PluginRecord)
	for _, p := range plugins {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}
	categories := make([]CategoryGroup, 0, len(byCategory))
	for name, members := range byCategory {
		categories = append(categories, CategoryGroup{Category: name, Plugins: members})
	}
	sort.SliceStable(categories, func(i, j int) bool { return categories[i].Category < categories[j].Category })

	return &Context{
		Plugins:     plugins,
		Categories:  categories,
		AllAgents:   cat.ComponentsOfKind(catalog.KindAgent),
		AllCommands: cat.ComponentsOfKind(catalog.KindCommand),
		AllSkills:   cat.ComponentsOfKind(catalog.KindSkill),
		Stats:       cat.Stats(),
		GeneratedAt: now.UTC().Format("2006-01-02 15:04:05"),
	}
}
