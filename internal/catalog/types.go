package catalog

import (
	"regexp"
	"sort"
)

// ComponentKind identifies the class of a plugin component.
type ComponentKind string

const (
	KindAgent   ComponentKind = "agent"
	KindCommand ComponentKind = "command"
	KindSkill   ComponentKind = "skill"
)

// Kinds lists all component kinds in display order.
var Kinds = []ComponentKind{KindAgent, KindCommand, KindSkill}

// pluginIDPattern is strict hyphen-case: lowercase letters, digits, and
// single interior hyphens. "demo-plugin" is valid; "DupCmd" and "-x-" are not.
var pluginIDPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// ValidPluginID reports whether id is a valid hyphen-case plugin identifier.
func ValidPluginID(id string) bool {
	return pluginIDPattern.MatchString(id)
}

// ExtraUseWhen is the Extra key under which a skill's trigger sentence is
// stored when its description contains a "Use when ..." clause.
const ExtraUseWhen = "use_when"

// ComponentRecord is one discovered component. Records are immutable after
// the scanner creates them and are owned by their parent PluginRecord.
type ComponentRecord struct {
	Kind        ComponentKind
	Name        string
	Description string
	Model       string // agents only, may be empty
	FilePath    string // path to the source Markdown file
	Extra       map[string]string
}

// Author identifies the author of a plugin in the marketplace manifest.
type Author struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// PluginRecord is one discovered plugin directory with its parsed components
// and optional marketplace metadata from a plugin.json sibling file.
type PluginRecord struct {
	ID          string
	Description string
	Version     string // may be empty; checked as semver when present
	Category    string
	Keywords    []string
	License     string
	Strict      bool
	Author      *Author
	Dir         string // absolute path to the plugin directory
	Components  []ComponentRecord
}

// ComponentsOfKind returns the plugin's components of one kind, in discovery order.
func (p *PluginRecord) ComponentsOfKind(kind ComponentKind) []ComponentRecord {
	var out []ComponentRecord
	for _, c := range p.Components {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Agents returns the plugin's agents sorted by name. Used by templates.
func (p *PluginRecord) Agents() []ComponentRecord { return p.sortedOfKind(KindAgent) }

// Commands returns the plugin's commands sorted by name. Used by templates.
func (p *PluginRecord) Commands() []ComponentRecord { return p.sortedOfKind(KindCommand) }

// Skills returns the plugin's skills sorted by name. Used by templates.
func (p *PluginRecord) Skills() []ComponentRecord { return p.sortedOfKind(KindSkill) }

func (p *PluginRecord) sortedOfKind(kind ComponentKind) []ComponentRecord {
	out := p.ComponentsOfKind(kind)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// HasRequiredComponent reports whether the plugin satisfies the minimum
// requirement of at least one agent or command.
func (p *PluginRecord) HasRequiredComponent() bool {
	for _, c := range p.Components {
		if c.Kind == KindAgent || c.Kind == KindCommand {
			return true
		}
	}
	return false
}
