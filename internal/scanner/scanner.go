// Package scanner converts a plugin root directory into an in-memory
// catalog. It applies only file-level checks; catalog-wide rules live in
// the validator. Scanning is read-only and degrades to diagnostics for
// everything except an unusable root directory.
package scanner

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/plugsmith-labs/plugsmith/internal/catalog"
	"github.com/plugsmith-labs/plugsmith/internal/frontmatter"
)

const (
	agentsDir  = "agents"
	cmdsDir    = "commands"
	skillsDir  = "skills"
	skillFile  = "SKILL.md"
	metaDir    = ".claude-plugin"
	metaFile   = "plugin.json"
	descrLimit = 1024
)

// pluginMeta mirrors the optional plugin.json sidecar carrying marketplace
// metadata that frontmatter cannot express.
type pluginMeta struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Version     string          `json:"version"`
	Category    string          `json:"category"`
	Keywords    []string        `json:"keywords"`
	License     string          `json:"license"`
	Strict      bool            `json:"strict"`
	Author      *catalog.Author `json:"author"`
}

// Scan walks rootPath and builds a catalog from its immediate plugin
// subdirectories. The returned diagnostics are sorted for reproducible
// output. The error return is non-nil only for an unreadable root or a
// cancelled context; every other problem becomes a diagnostic.
func Scan(ctx context.Context, rootPath string) (*catalog.Catalog, []catalog.Diagnostic, error) {
	info, err := os.Stat(rootPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading plugin root %s: %w", rootPath, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("plugin root %s is not a directory", rootPath)
	}

	entries, err := os.ReadDir(rootPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading plugin root %s: %w", rootPath, err)
	}

	cat := catalog.New()
	var diags []catalog.Diagnostic

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, nil, err
		}
		if !entry.IsDir() {
			continue
		}

		id := entry.Name()
		if strings.HasPrefix(id, ".") {
			continue
		}
		if !catalog.ValidPluginID(id) {
			diags = append(diags, catalog.Errorf(catalog.CodeInvalidName, id, "",
				fmt.Sprintf("plugin directory %q is not hyphen-case (lowercase letters, digits, hyphens)", id)))
			continue
		}

		pluginDir := filepath.Join(rootPath, id)
		record, pluginDiags := scanPlugin(id, pluginDir)
		diags = append(diags, pluginDiags...)

		if len(record.Components) == 0 {
			diags = append(diags, catalog.Errorf(catalog.CodeEmptyPlugin, id, "",
				fmt.Sprintf("plugin %q contains no parseable agents, commands, or skills", id)))
			continue
		}
		cat.Add(record)
	}

	catalog.SortDiagnostics(diags)
	return cat, diags, nil
}

// scanPlugin reads one plugin directory: optional plugin.json metadata, then
// the agents/, commands/, and skills/ subdirectories.
func scanPlugin(id, dir string) (*catalog.PluginRecord, []catalog.Diagnostic) {
	record := &catalog.PluginRecord{
		ID:       id,
		Category: "general",
		License:  "MIT",
		Dir:      dir,
	}
	var diags []catalog.Diagnostic

	if diag := loadPluginMeta(record); diag != nil {
		diags = append(diags, *diag)
	}

	for _, sub := range []struct {
		dir  string
		kind catalog.ComponentKind
	}{
		{agentsDir, catalog.KindAgent},
		{cmdsDir, catalog.KindCommand},
	} {
		comps, compDiags := scanMarkdownDir(id, filepath.Join(dir, sub.dir), sub.kind)
		record.Components = append(record.Components, comps...)
		diags = append(diags, compDiags...)
	}

	skills, skillDiags := scanSkillsDir(id, filepath.Join(dir, skillsDir))
	record.Components = append(record.Components, skills...)
	diags = append(diags, skillDiags...)

	return record, diags
}

// loadPluginMeta overlays plugin.json metadata onto the record. The file is
// optional; a malformed one keeps the defaults and produces a warning.
func loadPluginMeta(record *catalog.PluginRecord) *catalog.Diagnostic {
	var path string
	for _, candidate := range []string{
		filepath.Join(record.Dir, metaDir, metaFile),
		filepath.Join(record.Dir, metaFile),
	} {
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
			break
		}
	}
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		d := catalog.Warnf(catalog.CodeInvalidManifest, record.ID, path,
			fmt.Sprintf("reading plugin metadata: %v", err))
		return &d
	}

	var m pluginMeta
	if err := json.Unmarshal(data, &m); err != nil {
		d := catalog.Warnf(catalog.CodeInvalidManifest, record.ID, path,
			fmt.Sprintf("parsing plugin metadata: %v", err))
		return &d
	}

	record.Description = m.Description
	record.Version = m.Version
	record.Keywords = m.Keywords
	record.Strict = m.Strict
	record.Author = m.Author
	if m.Category != "" {
		record.Category = m.Category
	}
	if m.License != "" {
		record.License = m.License
	}
	return nil
}

// scanMarkdownDir parses each .md file directly inside dir as a component of
// the given kind. A missing directory yields nothing.
func scanMarkdownDir(pluginID, dir string, kind catalog.ComponentKind) ([]catalog.ComponentRecord, []catalog.Diagnostic) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	var comps []catalog.ComponentRecord
	var diags []catalog.Diagnostic

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		comp, compDiags := parseComponent(pluginID, path, kind)
		diags = append(diags, compDiags...)
		if comp != nil {
			comps = append(comps, *comp)
		}
	}
	return comps, diags
}

// scanSkillsDir parses each immediate subdirectory of dir containing a
// SKILL.md. The skill's name is the subdirectory name, not the frontmatter
// name, so skills stay addressable by their on-disk path.
func scanSkillsDir(pluginID, dir string) ([]catalog.ComponentRecord, []catalog.Diagnostic) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil
	}

	var comps []catalog.ComponentRecord
	var diags []catalog.Diagnostic

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name(), skillFile)
		if _, err := os.Stat(path); err != nil {
			continue
		}

		comp, compDiags := parseComponent(pluginID, path, catalog.KindSkill)
		diags = append(diags, compDiags...)
		if comp == nil {
			continue
		}
		comp.Name = entry.Name()

		if len(comp.Description) > descrLimit {
			diags = append(diags, catalog.Warnf(catalog.CodeDescriptionTooLong, pluginID, path,
				fmt.Sprintf("skill description is %d characters (limit %d)", len(comp.Description), descrLimit)))
		}
		if trigger := useWhenClause(comp.Description); trigger != "" {
			comp.Extra[catalog.ExtraUseWhen] = trigger
		} else {
			diags = append(diags, catalog.Warnf(catalog.CodeMissingTrigger, pluginID, path,
				`skill description has no "Use when" trigger clause`))
		}

		comps = append(comps, *comp)
	}
	return comps, diags
}

// parseComponent extracts and checks frontmatter from one Markdown file.
// A nil record means the file was excluded; diagnostics explain why.
func parseComponent(pluginID, path string, kind catalog.ComponentKind) (*catalog.ComponentRecord, []catalog.Diagnostic) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, []catalog.Diagnostic{catalog.Warnf(catalog.CodeInvalidFrontmatter, pluginID, path,
			fmt.Sprintf("reading component file: %v", err))}
	}

	fields, err := frontmatter.Extract(content)
	if err != nil {
		return nil, []catalog.Diagnostic{catalog.Warnf(catalog.CodeInvalidFrontmatter, pluginID, path,
			err.Error())}
	}

	for _, key := range []string{"name", "description"} {
		if fields.Get(key) == "" {
			return nil, []catalog.Diagnostic{catalog.Warnf(catalog.CodeInvalidFrontmatter, pluginID, path,
				fmt.Sprintf("frontmatter is missing required key %q", key))}
		}
	}

	comp := &catalog.ComponentRecord{
		Kind:        kind,
		Name:        fields.Get("name"),
		Description: fields.Get("description"),
		FilePath:    path,
		Extra:       make(map[string]string),
	}
	if kind == catalog.KindAgent {
		comp.Model = fields.Get("model")
	}
	for k, v := range fields {
		switch k {
		case "name", "description", "model":
		default:
			comp.Extra[k] = v
		}
	}
	return comp, nil
}

// useWhenClause returns the "Use when ..." clause from a description, up to
// the end of its sentence. Matching is case-insensitive. Empty means no clause.
func useWhenClause(description string) string {
	idx := strings.Index(strings.ToLower(description), "use when")
	if idx < 0 {
		return ""
	}
	clause := description[idx:]
	if end := strings.IndexAny(clause, ".\n"); end >= 0 {
		clause = clause[:end]
	}
	return strings.TrimSpace(clause)
}
