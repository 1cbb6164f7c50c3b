package renderer

import (
	"fmt"
	"sort"
	"strings"
)

// manifestTargetName is the target that produces marketplace.json. It has no
// template; its content comes straight from the manifest encoder.
const manifestTargetName = "manifest"

// RenderTarget describes one document the renderer can produce. The set of
// targets is compiled in, not user data.
type RenderTarget struct {
	Name        string
	Description string
	TemplateID  string // template file under templates/, empty for the manifest
	OutputPath  string // relative to the output directory
}

var targets = []RenderTarget{
	{
		Name:        manifestTargetName,
		Description: "Machine-readable marketplace manifest",
		OutputPath:  ".claude-plugin/marketplace.json",
	},
	{
		Name:        "agents",
		Description: "Agent reference documentation",
		TemplateID:  "agents.md.tmpl",
		OutputPath:  "docs/agents.md",
	},
	{
		Name:        "skills",
		Description: "Skill reference documentation",
		TemplateID:  "agent-skills.md.tmpl",
		OutputPath:  "docs/agent-skills.md",
	},
	{
		Name:        "plugins",
		Description: "Plugin reference documentation",
		TemplateID:  "plugins.md.tmpl",
		OutputPath:  "docs/plugins.md",
	},
	{
		Name:        "usage",
		Description: "Marketplace usage guide",
		TemplateID:  "usage.md.tmpl",
		OutputPath:  "docs/usage.md",
	},
}

// Targets returns every known render target sorted by name.
func Targets() []RenderTarget {
	out := make([]RenderTarget, len(targets))
	copy(out, targets)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// FindTargets resolves target names to RenderTargets. The special name "all"
// (or an empty list) selects everything.
func FindTargets(names []string) ([]RenderTarget, error) {
	if len(names) == 0 {
		return Targets(), nil
	}
	for _, name := range names {
		if name == "all" {
			return Targets(), nil
		}
	}

	byName := make(map[string]RenderTarget, len(targets))
	for _, t := range targets {
		byName[t.Name] = t
	}

	var out []RenderTarget
	for _, name := range names {
		t, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("unknown render target %q (known: %s)", name, strings.Join(targetNames(), ", "))
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func targetNames() []string {
	var names []string
	for _, t := range Targets() {
		names = append(names, t.Name)
	}
	return names
}
