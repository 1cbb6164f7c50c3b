package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/plugsmith-labs/plugsmith/internal/catalog"
)

// printDiagnostics writes diagnostics grouped by severity, errors first.
// The caller is expected to have sorted them already.
func printDiagnostics(w io.Writer, diags []catalog.Diagnostic) {
	printGroup(w, "Errors", diags, catalog.SeverityError)
	printGroup(w, "Warnings", diags, catalog.SeverityWarning)
}

func printGroup(w io.Writer, heading string, diags []catalog.Diagnostic, severity catalog.Severity) {
	var group []catalog.Diagnostic
	for _, d := range diags {
		if d.Severity == severity {
			group = append(group, d)
		}
	}
	if len(group) == 0 {
		return
	}

	fmt.Fprintf(w, "%s:\n", heading)
	for _, d := range group {
		where := d.PluginID
		if d.ComponentPath != "" {
			if where != "" {
				where += " "
			}
			where += d.ComponentPath
		}
		if where != "" {
			fmt.Fprintf(w, "  [%s] %s: %s\n", d.Code, where, d.Message)
		} else {
			fmt.Fprintf(w, "  [%s] %s\n", d.Code, d.Message)
		}
	}
}

// excludedPlugins lists plugin ids that never made it into the catalog
// because of scanner errors, for the end-of-run summary.
func excludedPlugins(diags []catalog.Diagnostic) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range diags {
		if d.Severity != catalog.SeverityError {
			continue
		}
		if d.Code != catalog.CodeInvalidName && d.Code != catalog.CodeEmptyPlugin {
			continue
		}
		if d.PluginID != "" && !seen[d.PluginID] {
			seen[d.PluginID] = true
			out = append(out, d.PluginID)
		}
	}
	return out
}

// printSummary writes the diagnostic counts and any excluded plugins.
func printSummary(w io.Writer, diags []catalog.Diagnostic) {
	var errs, warns int
	for _, d := range diags {
		if d.Severity == catalog.SeverityError {
			errs++
		} else {
			warns++
		}
	}
	if errs == 0 && warns == 0 {
		return
	}
	fmt.Fprintf(w, "%d error(s), %d warning(s)\n", errs, warns)
	if excluded := excludedPlugins(diags); len(excluded) > 0 {
		fmt.Fprintf(w, "Excluded from catalog: %s\n", strings.Join(excluded, ", "))
	}
}
