package manifest

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/plugsmith-labs/plugsmith/internal/branding"
	"github.com/plugsmith-labs/plugsmith/internal/catalog"
)

// marketplaceVersion is the schema revision of the manifest itself.
const marketplaceVersion = "1.0.0"

// Build derives a Marketplace from a catalog. Plugins are sorted by id and
// components by name within each kind, so two builds from the same catalog
// are identical regardless of scan order.
func Build(cat *catalog.Catalog) *Marketplace {
	m := &Marketplace{
		Name: branding.CLIName() + "-marketplace",
		Owner: Owner{
			Name: branding.OwnerName(),
			URL:  branding.OwnerURL(),
		},
		Metadata: Metadata{
			Description: branding.Description(),
			Version:     marketplaceVersion,
		},
		Plugins: []Plugin{},
	}

	for _, p := range cat.Plugins() {
		entry := Plugin{
			Name:        p.ID,
			Source:      "./plugins/" + p.ID,
			Description: p.Description,
			Version:     p.Version,
			Category:    p.Category,
			License:     p.License,
			Strict:      p.Strict,
			Keywords:    p.Keywords,
			Author:      p.Author,
			Agents:      componentEntries(p, catalog.KindAgent),
			Commands:    componentEntries(p, catalog.KindCommand),
			Skills:      componentEntries(p, catalog.KindSkill),
		}
		m.Plugins = append(m.Plugins, entry)
	}

	return m
}

// componentEntries converts one kind of a plugin's components into manifest
// entries sorted by name.
func componentEntries(p *catalog.PluginRecord, kind catalog.ComponentKind) []Component {
	comps := p.ComponentsOfKind(kind)
	sort.SliceStable(comps, func(i, j int) bool { return comps[i].Name < comps[j].Name })

	var out []Component
	for _, c := range comps {
		out = append(out, Component{
			Name:        c.Name,
			Description: c.Description,
			Model:       c.Model,
			File:        componentFile(kind, c),
		})
	}
	return out
}

// componentFile builds the plugin-relative source reference for a component,
// matching the "./agents/x.md" path style of the marketplace format.
func componentFile(kind catalog.ComponentKind, c catalog.ComponentRecord) string {
	switch kind {
	case catalog.KindAgent:
		return "./agents/" + filepath.Base(c.FilePath)
	case catalog.KindCommand:
		return "./commands/" + filepath.Base(c.FilePath)
	case catalog.KindSkill:
		return "./skills/" + c.Name
	}
	return filepath.Base(c.FilePath)
}

// Encode serializes a Marketplace with two-space indentation and a trailing
// newline. Byte-for-byte stable for an unchanged catalog.
func Encode(m *Marketplace) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding marketplace manifest: %w", err)
	}
	return append(data, '\n'), nil
}
