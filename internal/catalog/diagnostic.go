package catalog

import "sort"

// Severity classifies a diagnostic as a hard error or an advisory warning.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic codes emitted by the scanner and validator.
const (
	CodeInvalidName        = "plugin.invalid_name"
	CodeEmptyPlugin        = "plugin.empty"
	CodeInvalidManifest    = "plugin.invalid_manifest"
	CodeInvalidVersion     = "plugin.invalid_version"
	CodeMissingRequired    = "plugin.missing_required_component"
	CodeInvalidFrontmatter = "component.invalid_frontmatter"
	CodeDuplicateName      = "component.duplicate_name"
	CodeDescriptionTooLong = "skill.description_too_long"
	CodeMissingTrigger     = "skill.missing_trigger"
	CodeSkillNameCollision = "skill.name_collision_across_plugins"
	CodeUnknownModel       = "agent.unknown_model"
	CodeManifestSchema     = "manifest.schema"
	CodeTemplateMissing    = "render.template_missing"
	CodeWriteFailed        = "render.write_failed"
)

// Diagnostic is a structured, non-fatal report of a problem found while
// scanning, validating, or rendering. Diagnostics travel upward as data;
// only unreadable roots and fully unrenderable runs abort a pipeline.
type Diagnostic struct {
	Severity      Severity
	PluginID      string // empty when not tied to one plugin
	ComponentPath string // empty when not tied to one file
	Code          string
	Message       string
}

// Errorf builds an error-severity diagnostic.
func Errorf(code, pluginID, componentPath, message string) Diagnostic {
	return Diagnostic{
		Severity:      SeverityError,
		PluginID:      pluginID,
		ComponentPath: componentPath,
		Code:          code,
		Message:       message,
	}
}

// Warnf builds a warning-severity diagnostic.
func Warnf(code, pluginID, componentPath, message string) Diagnostic {
	return Diagnostic{
		Severity:      SeverityWarning,
		PluginID:      pluginID,
		ComponentPath: componentPath,
		Code:          code,
		Message:       message,
	}
}

// HasErrors reports whether any diagnostic in the sequence is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// SortDiagnostics orders diagnostics by plugin id, then component path, then
// code. Output must be reproducible across runs regardless of discovery order.
func SortDiagnostics(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].PluginID != diags[j].PluginID {
			return diags[i].PluginID < diags[j].PluginID
		}
		if diags[i].ComponentPath != diags[j].ComponentPath {
			return diags[i].ComponentPath < diags[j].ComponentPath
		}
		return diags[i].Code < diags[j].Code
	})
}
