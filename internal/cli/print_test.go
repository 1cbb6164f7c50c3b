package cli

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/plugsmith-labs/plugsmith/internal/catalog"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation exit", exitWithCode(exitValidation, errors.New("validation errors present")), 1},
		{"scan exit", exitWithCode(exitFatalScan, errors.New("bad root")), 2},
		{"render exit", exitWithCode(exitFatalRender, errors.New("no targets produced")), 3},
		{"wrapped exit", fmt.Errorf("outer: %w", exitWithCode(exitFatalScan, errors.New("bad root"))), 2},
		{"plain error", errors.New("something else"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExitCode(tt.err)
			if got != tt.expected {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.expected)
			}
		})
	}
}

func TestExcludedPlugins(t *testing.T) {
	diags := []catalog.Diagnostic{
		catalog.Errorf(catalog.CodeInvalidName, "BadName", "/r/BadName", "directory name is not a valid plugin id"),
		catalog.Errorf(catalog.CodeEmptyPlugin, "empty-plugin", "/r/empty-plugin", "plugin contains no components"),
		catalog.Errorf(catalog.CodeInvalidName, "BadName", "/r/BadName", "reported twice"),
		catalog.Errorf(catalog.CodeDuplicateName, "kept-plugin", "/r/kept-plugin/agents/a.md", "duplicate name"),
		catalog.Warnf(catalog.CodeMissingTrigger, "kept-plugin", "/r/kept-plugin/skills/s/SKILL.md", "no trigger phrase"),
	}

	got := excludedPlugins(diags)
	if len(got) != 2 {
		t.Fatalf("excludedPlugins = %v, want 2 entries", got)
	}
	if got[0] != "BadName" || got[1] != "empty-plugin" {
		t.Errorf("excludedPlugins = %v, want [BadName empty-plugin]", got)
	}
}

func TestPrintSummary(t *testing.T) {
	diags := []catalog.Diagnostic{
		catalog.Errorf(catalog.CodeEmptyPlugin, "empty-plugin", "/r/empty-plugin", "plugin contains no components"),
		catalog.Warnf(catalog.CodeMissingTrigger, "kept-plugin", "/r/kept-plugin/skills/s/SKILL.md", "no trigger phrase"),
		catalog.Warnf(catalog.CodeInvalidVersion, "kept-plugin", "", "not semver"),
	}

	var buf strings.Builder
	printSummary(&buf, diags)
	out := buf.String()

	if !strings.Contains(out, "1 error(s), 2 warning(s)") {
		t.Errorf("summary missing counts: %q", out)
	}
	if !strings.Contains(out, "Excluded from catalog: empty-plugin") {
		t.Errorf("summary missing excluded plugins: %q", out)
	}
}

func TestPrintSummaryClean(t *testing.T) {
	var buf strings.Builder
	printSummary(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("expected no output for a clean run, got %q", buf.String())
	}
}

func TestPrintDiagnosticsGrouping(t *testing.T) {
	diags := []catalog.Diagnostic{
		catalog.Warnf(catalog.CodeMissingTrigger, "plugin-a", "/r/plugin-a/skills/s/SKILL.md", "no trigger phrase"),
		catalog.Errorf(catalog.CodeDuplicateName, "plugin-a", "/r/plugin-a/agents/a.md", "duplicate name"),
	}

	var buf strings.Builder
	printDiagnostics(&buf, diags)
	out := buf.String()

	errIdx := strings.Index(out, "Errors:")
	warnIdx := strings.Index(out, "Warnings:")
	if errIdx < 0 || warnIdx < 0 {
		t.Fatalf("missing severity headings in %q", out)
	}
	if errIdx > warnIdx {
		t.Error("errors should be printed before warnings")
	}
	if !strings.Contains(out, "[component.duplicate_name]") {
		t.Errorf("error line missing code: %q", out)
	}
}
