// Package validator applies catalog-wide invariants that cannot be checked
// file-by-file: the minimum component rule, name uniqueness, model labels,
// version strings, and a JSON Schema self-check of the manifest the catalog
// would produce. All checks run to completion; nothing fails fast.
package validator

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
	"github.com/plugsmith-labs/plugsmith/internal/catalog"
	"github.com/plugsmith-labs/plugsmith/internal/manifest"
)

// Options configures validation behavior.
type Options struct {
	// AllowedModels is the accepted set of agent model labels. Empty means
	// every label is accepted.
	AllowedModels []string
}

// Validate runs every catalog-wide check and returns the collected
// diagnostics, sorted for reproducible output. The catalog is not mutated.
func Validate(cat *catalog.Catalog, opts Options) []catalog.Diagnostic {
	var diags []catalog.Diagnostic

	allowed := make(map[string]bool, len(opts.AllowedModels))
	for _, m := range opts.AllowedModels {
		allowed[m] = true
	}

	skillOwners := make(map[string][]string) // skill name -> plugin ids

	for _, p := range cat.Plugins() {
		if !p.HasRequiredComponent() {
			diags = append(diags, catalog.Errorf(catalog.CodeMissingRequired, p.ID, "",
				fmt.Sprintf("plugin %q must contain at least one agent or command", p.ID)))
		}

		diags = append(diags, checkDuplicateNames(p)...)

		if p.Version != "" {
			if _, err := semver.StrictNewVersion(p.Version); err != nil {
				diags = append(diags, catalog.Warnf(catalog.CodeInvalidVersion, p.ID, "",
					fmt.Sprintf("plugin version %q is not valid semver: %v", p.Version, err)))
			}
		}

		for _, c := range p.Components {
			switch c.Kind {
			case catalog.KindAgent:
				if c.Model != "" && len(allowed) > 0 && !allowed[c.Model] {
					diags = append(diags, catalog.Warnf(catalog.CodeUnknownModel, p.ID, c.FilePath,
						fmt.Sprintf("agent %q declares unknown model %q", c.Name, c.Model)))
				}
			case catalog.KindSkill:
				skillOwners[c.Name] = append(skillOwners[c.Name], p.ID)
			}
		}
	}

	diags = append(diags, checkSkillCollisions(skillOwners)...)
	diags = append(diags, checkManifestSchema(cat)...)

	catalog.SortDiagnostics(diags)
	return diags
}

// checkDuplicateNames enforces name uniqueness within each (plugin, kind)
// pair, naming every conflicting file path in the diagnostic.
func checkDuplicateNames(p *catalog.PluginRecord) []catalog.Diagnostic {
	var diags []catalog.Diagnostic

	for _, kind := range catalog.Kinds {
		byName := make(map[string][]string)
		for _, c := range p.ComponentsOfKind(kind) {
			byName[c.Name] = append(byName[c.Name], c.FilePath)
		}
		for name, paths := range byName {
			if len(paths) < 2 {
				continue
			}
			diags = append(diags, catalog.Errorf(catalog.CodeDuplicateName, p.ID, paths[0],
				fmt.Sprintf("%s name %q is declared by multiple files: %v", kind, name, paths)))
		}
	}
	return diags
}

// checkSkillCollisions warns when two plugins declare a skill with the same
// name. Skills may later be invoked by name alone, so collisions are worth
// surfacing even though they are not errors.
func checkSkillCollisions(skillOwners map[string][]string) []catalog.Diagnostic {
	var diags []catalog.Diagnostic
	for name, owners := range skillOwners {
		if len(owners) < 2 {
			continue
		}
		for _, owner := range owners {
			diags = append(diags, catalog.Warnf(catalog.CodeSkillNameCollision, owner, "",
				fmt.Sprintf("skill %q is also defined by other plugins: %v", name, owners)))
		}
	}
	return diags
}

// checkManifestSchema builds the manifest this catalog would produce and
// validates it against the embedded marketplace schema.
func checkManifestSchema(cat *catalog.Catalog) []catalog.Diagnostic {
	result, err := manifest.Validate(manifest.Build(cat))
	if err != nil {
		return []catalog.Diagnostic{catalog.Errorf(catalog.CodeManifestSchema, "", "",
			fmt.Sprintf("validating manifest against schema: %v", err))}
	}
	if result.Valid {
		return nil
	}

	var diags []catalog.Diagnostic
	for _, issue := range result.Issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		diags = append(diags, catalog.Errorf(catalog.CodeManifestSchema, "", "", msg))
	}
	return diags
}
