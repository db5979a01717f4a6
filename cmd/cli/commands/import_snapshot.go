package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/crestview-health/wardroster/pkg/core/services"
)

// ImportSnapshotCmd creates the importSnapshot command
func ImportSnapshotCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "importSnapshot",
		Short: "Import a YAML snapshot into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("snapshot")
			if path == "" {
				path = app.Cfg.SnapshotPath
			}
			if path == "" {
				return fmt.Errorf("no snapshot to import: pass --snapshot or configure snapshotPath")
			}
			if app.Database == nil {
				return fmt.Errorf("importSnapshot requires databaseURL to be configured")
			}

			result, err := services.ImportSnapshot(app.Ctx, path, app.Database, app.Logger)
			if err != nil {
				return fmt.Errorf("import failed: %w", err)
			}

			fmt.Printf("\n📦 Snapshot imported\n\n")
			fmt.Printf("Import ID: %s\n", result.ImportID)
			fmt.Printf("Period:    %s %d\n", time.Month(result.Month), result.Year)
			fmt.Printf("Doctors:   %d\n", result.Doctors)
			fmt.Printf("Dates:     %d\n", result.Dates)

			return nil
		},
	}

	cmd.Flags().String("snapshot", "", "Path to the YAML snapshot file")

	return cmd
}
