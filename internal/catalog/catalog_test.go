package catalog

import (
	"reflect"
	"testing"
)

func TestValidPluginID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"demo-plugin", true},
		{"a", true},
		{"code-review-2", true},
		{"DupCmd", false},
		{"demo_plugin", false},
		{"-leading", false},
		{"trailing-", false},
		{"double--hyphen", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			if got := ValidPluginID(tt.id); got != tt.valid {
				t.Errorf("ValidPluginID(%q) = %v, want %v", tt.id, got, tt.valid)
			}
		})
	}
}

func TestCatalog_PluginsSorted(t *testing.T) {
	c := New()
	// Insert out of lexicographic order.
	c.Add(&PluginRecord{ID: "zeta"})
	c.Add(&PluginRecord{ID: "alpha"})
	c.Add(&PluginRecord{ID: "mid"})

	var ids []string
	for _, p := range c.Plugins() {
		ids = append(ids, p.ID)
	}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(ids, want) {
		t.Errorf("Plugins order = %v, want %v", ids, want)
	}
}

func TestCatalog_AddDuplicateIgnored(t *testing.T) {
	c := New()
	c.Add(&PluginRecord{ID: "demo", Description: "first"})
	c.Add(&PluginRecord{ID: "demo", Description: "second"})

	if c.Len() != 1 {
		t.Fatalf("Len = %d, want 1", c.Len())
	}
	if got := c.Get("demo").Description; got != "first" {
		t.Errorf("Description = %q, want %q", got, "first")
	}
}

func TestCatalog_Stats(t *testing.T) {
	c := New()
	c.Add(&PluginRecord{ID: "p1", Components: []ComponentRecord{
		{Kind: KindAgent, Name: "a1"},
		{Kind: KindCommand, Name: "c1"},
		{Kind: KindSkill, Name: "s1"},
	}})
	c.Add(&PluginRecord{ID: "p2", Components: []ComponentRecord{
		{Kind: KindAgent, Name: "a2"},
	}})

	s := c.Stats()
	if s.TotalPlugins != 2 || s.TotalAgents != 2 || s.TotalCommands != 1 || s.TotalSkills != 1 {
		t.Errorf("Stats = %+v, want 2 plugins, 2 agents, 1 command, 1 skill", s)
	}
}

func TestCatalog_ComponentsOfKind(t *testing.T) {
	c := New()
	c.Add(&PluginRecord{ID: "beta", Components: []ComponentRecord{
		{Kind: KindAgent, Name: "zeta-agent"},
		{Kind: KindAgent, Name: "alpha-agent"},
	}})
	c.Add(&PluginRecord{ID: "alpha", Components: []ComponentRecord{
		{Kind: KindAgent, Name: "solo"},
		{Kind: KindSkill, Name: "ignored"},
	}})

	got := c.ComponentsOfKind(KindAgent)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	// Plugin id first, then component name within each plugin.
	wantOrder := []string{"solo", "alpha-agent", "zeta-agent"}
	for i, w := range wantOrder {
		if got[i].Name != w {
			t.Errorf("ComponentsOfKind[%d].Name = %q, want %q", i, got[i].Name, w)
		}
	}
	if got[0].PluginID != "alpha" || got[1].PluginID != "beta" {
		t.Errorf("plugin tagging wrong: %q, %q", got[0].PluginID, got[1].PluginID)
	}
}

func TestPluginRecord_HasRequiredComponent(t *testing.T) {
	tests := []struct {
		name  string
		comps []ComponentRecord
		want  bool
	}{
		{"agent only", []ComponentRecord{{Kind: KindAgent}}, true},
		{"command only", []ComponentRecord{{Kind: KindCommand}}, true},
		{"skill only", []ComponentRecord{{Kind: KindSkill}}, false},
		{"none", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &PluginRecord{ID: "x", Components: tt.comps}
			if got := p.HasRequiredComponent(); got != tt.want {
				t.Errorf("HasRequiredComponent = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSortDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		Warnf("b.code", "zeta", "z/file.md", "later"),
		Errorf("a.code", "alpha", "", "first"),
		Warnf("a.code", "alpha", "a/file.md", "second"),
	}
	SortDiagnostics(diags)

	if diags[0].PluginID != "alpha" || diags[0].ComponentPath != "" {
		t.Errorf("first = %+v, want alpha with empty path", diags[0])
	}
	if diags[1].ComponentPath != "a/file.md" {
		t.Errorf("second = %+v, want a/file.md", diags[1])
	}
	if diags[2].PluginID != "zeta" {
		t.Errorf("third = %+v, want zeta", diags[2])
	}
}

func TestHasErrors(t *testing.T) {
	if HasErrors([]Diagnostic{Warnf("c", "", "", "m")}) {
		t.Error("warnings alone should not report errors")
	}
	if !HasErrors([]Diagnostic{Warnf("c", "", "", "m"), Errorf("c", "", "", "m")}) {
		t.Error("expected HasErrors true when an error is present")
	}
}
