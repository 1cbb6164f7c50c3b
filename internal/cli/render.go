package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/plugsmith-labs/plugsmith/internal/catalog"
	"github.com/plugsmith-labs/plugsmith/internal/config"
	"github.com/plugsmith-labs/plugsmith/internal/renderer"
	"github.com/plugsmith-labs/plugsmith/internal/scanner"
	"github.com/plugsmith-labs/plugsmith/internal/validator"
	"github.com/spf13/cobra"
)

var (
	renderTargetNames []string
	renderDryRun      bool
	renderDiff        bool
	renderOutputDir   string
)

func init() {
	renderCmd.Flags().StringSliceVar(&renderTargetNames, "target", nil, "Render target(s) to produce (default: all)")
	renderCmd.Flags().BoolVar(&renderDryRun, "dry-run", false, "Print rendered content instead of writing files")
	renderCmd.Flags().BoolVar(&renderDiff, "diff", false, "With --dry-run, show a unified diff against the current files")
	renderCmd.Flags().StringVar(&renderOutputDir, "output", "", "Output directory (default: current directory)")
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <root>",
	Short: "Regenerate the marketplace manifest and documentation",
	Long: `Render runs the full pipeline: scan the plugin root, validate the catalog,
and regenerate the requested output documents. Validation errors do not stop
rendering; whatever was scanned successfully is still rendered, and the exit
code reports the validation result.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	root := args[0]

	targets, err := renderer.FindTargets(renderTargetNames)
	if err != nil {
		return err
	}

	cat, diags, err := scanner.Scan(cmd.Context(), root)
	if err != nil {
		return exitWithCode(exitFatalScan, fmt.Errorf("scanning %s: %w", root, err))
	}

	diags = append(diags, validator.Validate(cat, validator.Options{
		AllowedModels: config.Models(),
	})...)

	outputDir := renderOutputDir
	if outputDir == "" {
		outputDir = config.OutputDir(".")
	}

	mode := renderer.ModeWrite
	if renderDryRun {
		mode = renderer.ModeDryRun
	}

	r := renderer.New(renderer.Options{Diff: renderDiff})
	results, renderDiags, renderErr := r.Render(cmd.Context(), cat, targets, mode, outputDir)
	diags = append(diags, renderDiags...)
	catalog.SortDiagnostics(diags)

	printDiagnostics(cmd.ErrOrStderr(), diags)
	printSummary(cmd.ErrOrStderr(), diags)

	if renderErr != nil {
		return exitWithCode(exitFatalRender, renderErr)
	}

	out := cmd.OutOrStdout()
	for _, res := range results {
		switch {
		case renderDryRun && renderDiff:
			if res.Diff == "" {
				fmt.Fprintf(out, "--- %s: up to date\n", res.Target.OutputPath)
			} else {
				fmt.Fprint(out, res.Diff)
			}
		case renderDryRun:
			fmt.Fprintf(out, "--- %s ---\n%s\n", res.Target.OutputPath, res.Content)
		default:
			fmt.Fprintf(out, "Wrote %s (%d bytes)\n", filepath.Join(outputDir, res.Target.OutputPath), res.BytesWritten)
		}
	}

	if catalog.HasErrors(diags) {
		return exitWithCode(exitValidation, errors.New("validation errors present"))
	}
	return nil
}
