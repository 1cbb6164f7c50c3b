package cli

import (
	"errors"
	"fmt"

	"github.com/plugsmith-labs/plugsmith/internal/catalog"
	"github.com/plugsmith-labs/plugsmith/internal/config"
	"github.com/plugsmith-labs/plugsmith/internal/scanner"
	"github.com/plugsmith-labs/plugsmith/internal/validator"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(scanCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan <root>",
	Short: "Scan and validate a plugin directory tree",
	Long: `Scan walks the plugin root, parses every agent, command, and skill, and
applies the marketplace validation rules. Diagnostics are printed to stderr;
nothing is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func runScan(cmd *cobra.Command, args []string) error {
	root := args[0]

	cat, diags, err := scanner.Scan(cmd.Context(), root)
	if err != nil {
		return exitWithCode(exitFatalScan, fmt.Errorf("scanning %s: %w", root, err))
	}

	diags = append(diags, validator.Validate(cat, validator.Options{
		AllowedModels: config.Models(),
	})...)
	catalog.SortDiagnostics(diags)

	printDiagnostics(cmd.ErrOrStderr(), diags)
	printSummary(cmd.ErrOrStderr(), diags)

	stats := cat.Stats()
	fmt.Fprintf(cmd.OutOrStdout(), "Scanned %d plugin(s): %d agent(s), %d command(s), %d skill(s)\n",
		stats.TotalPlugins, stats.TotalAgents, stats.TotalCommands, stats.TotalSkills)

	if catalog.HasErrors(diags) {
		return exitWithCode(exitValidation, errors.New("validation errors present"))
	}
	return nil
}
