package manifest

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/plugsmith-labs/plugsmith/internal/catalog"
)

func sampleCatalog() *catalog.Catalog {
	cat := catalog.New()
	// Inserted out of order on purpose.
	cat.Add(&catalog.PluginRecord{
		ID:          "zeta-tools",
		Description: "Zeta tools",
		Category:    "general",
		License:     "MIT",
		Components: []catalog.ComponentRecord{
			{Kind: catalog.KindCommand, Name: "deploy", Description: "Deploys", FilePath: "/x/zeta-tools/commands/deploy.md"},
		},
	})
	cat.Add(&catalog.PluginRecord{
		ID:          "alpha-review",
		Description: "Review helpers",
		Version:     "1.0.0",
		Category:    "productivity",
		License:     "MIT",
		Components: []catalog.ComponentRecord{
			{Kind: catalog.KindAgent, Name: "reviewer", Description: "Reviews code", Model: "opus", FilePath: "/x/alpha-review/agents/reviewer.md"},
			{Kind: catalog.KindAgent, Name: "assistant", Description: "Assists", FilePath: "/x/alpha-review/agents/assistant.md"},
			{Kind: catalog.KindSkill, Name: "style-guide", Description: "Use when styling.", FilePath: "/x/alpha-review/skills/style-guide/SKILL.md"},
		},
	})
	return cat
}

func TestBuild_SortedPluginsAndComponents(t *testing.T) {
	m := Build(sampleCatalog())

	if len(m.Plugins) != 2 {
		t.Fatalf("plugins = %d, want 2", len(m.Plugins))
	}
	if m.Plugins[0].Name != "alpha-review" || m.Plugins[1].Name != "zeta-tools" {
		t.Errorf("plugin order = %s, %s; want alpha-review, zeta-tools", m.Plugins[0].Name, m.Plugins[1].Name)
	}

	agents := m.Plugins[0].Agents
	if len(agents) != 2 {
		t.Fatalf("agents = %d, want 2", len(agents))
	}
	if agents[0].Name != "assistant" || agents[1].Name != "reviewer" {
		t.Errorf("agent order = %s, %s; want assistant, reviewer", agents[0].Name, agents[1].Name)
	}
	if agents[1].Model != "opus" {
		t.Errorf("reviewer model = %q, want opus", agents[1].Model)
	}
}

func TestBuild_ComponentFilePaths(t *testing.T) {
	m := Build(sampleCatalog())

	alpha := m.Plugins[0]
	if got := alpha.Agents[1].File; got != "./agents/reviewer.md" {
		t.Errorf("agent file = %q, want ./agents/reviewer.md", got)
	}
	if got := alpha.Skills[0].File; got != "./skills/style-guide" {
		t.Errorf("skill file = %q, want ./skills/style-guide", got)
	}
	if got := alpha.Source; got != "./plugins/alpha-review" {
		t.Errorf("source = %q, want ./plugins/alpha-review", got)
	}
	zeta := m.Plugins[1]
	if got := zeta.Commands[0].File; got != "./commands/deploy.md" {
		t.Errorf("command file = %q, want ./commands/deploy.md", got)
	}
}

func TestEncode_Deterministic(t *testing.T) {
	cat := sampleCatalog()

	first, err := Encode(Build(cat))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	second, err := Encode(Build(cat))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("two encodes of the same catalog differ")
	}
	if first[len(first)-1] != '\n' {
		t.Error("encoded manifest missing trailing newline")
	}
}

func TestEncode_ValidJSON(t *testing.T) {
	data, err := Encode(Build(sampleCatalog()))
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	for _, key := range []string{"name", "owner", "metadata", "plugins"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("manifest missing top-level key %q", key)
		}
	}
}

func TestValidate_BuiltManifestPassesSchema(t *testing.T) {
	result, err := Validate(Build(sampleCatalog()))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("built manifest failed schema validation: %v", result.Issues)
	}
}

func TestValidate_BadPluginNameFailsSchema(t *testing.T) {
	m := Build(sampleCatalog())
	m.Plugins[0].Name = "Not Hyphen Case"

	result, err := Validate(m)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected schema violation for invalid plugin name")
	}
	if len(result.Issues) == 0 {
		t.Error("expected at least one issue")
	}
}

func TestBuild_EmptyCatalog(t *testing.T) {
	m := Build(catalog.New())
	if m.Plugins == nil {
		t.Error("Plugins should be an empty array, not nil, so JSON renders []")
	}

	result, err := Validate(m)
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if !result.Valid {
		t.Errorf("empty marketplace should pass schema: %v", result.Issues)
	}
}
