package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/plugsmith-labs/plugsmith/internal/renderer"
	"github.com/spf13/cobra"
)

var targetsJSON bool

func init() {
	targetsCmd.Flags().BoolVar(&targetsJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(targetsCmd)
}

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "List available render targets",
	RunE:  runTargets,
}

// targetEntry represents a render target for display.
type targetEntry struct {
	Name        string `json:"name"`
	Output      string `json:"output"`
	Description string `json:"description"`
}

func runTargets(cmd *cobra.Command, args []string) error {
	var entries []targetEntry
	for _, t := range renderer.Targets() {
		entries = append(entries, targetEntry{
			Name:        t.Name,
			Output:      t.OutputPath,
			Description: t.Description,
		})
	}

	if targetsJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tOUTPUT\tDESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, e.Output, e.Description)
	}
	return w.Flush()
}
