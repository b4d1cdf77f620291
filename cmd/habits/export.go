// ABOUTME: CLI commands for export and import of the full data set.
// ABOUTME: Import is all-or-nothing; a malformed file changes nothing.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as JSON or YAML",
	Long: `Export all data to stdout or a file.

Examples:
  habits export > backup.json
  habits export --format yaml --out backup.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := appState.Export(exportFormat)
		if err != nil {
			return err
		}

		if exportOut == "" {
			fmt.Println(string(data))
			return nil
		}
		if err := os.WriteFile(exportOut, data, 0600); err != nil {
			return fmt.Errorf("write export file: %w", err)
		}
		color.Green("✓ Exported to %s", exportOut)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read import file: %w", err)
		}

		if err := appState.Import(raw); err != nil {
			return err
		}
		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Wipe all local data (destructive)",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			return fmt.Errorf("this deletes everything including achievements; re-run with --force")
		}
		if err := appState.Reset(); err != nil {
			return err
		}
		color.Green("✓ All data wiped")
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "export format: json or yaml")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "output file (default stdout)")
	resetCmd.Flags().Bool("force", false, "confirm the wipe")
}
