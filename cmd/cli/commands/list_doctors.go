package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crestview-health/wardroster/pkg/core/services"
	"github.com/crestview-health/wardroster/pkg/snapshot"
)

// ListDoctorsCmd creates the listDoctors command
func ListDoctorsCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listDoctors",
		Short: "List the doctor directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			snapshotPath, _ := cmd.Flags().GetString("snapshot")

			var store services.SnapshotStore
			switch {
			case snapshotPath != "":
				s, err := snapshot.Load(snapshotPath)
				if err != nil {
					return err
				}
				store = s
			case app.Database != nil:
				store = app.Database
			case app.Cfg.SnapshotPath != "":
				s, err := snapshot.Load(app.Cfg.SnapshotPath)
				if err != nil {
					return err
				}
				store = s
			default:
				return fmt.Errorf("no roster source: pass --snapshot or configure snapshotPath or databaseURL")
			}

			doctors, err := store.GetDoctors(app.Ctx)
			if err != nil {
				return fmt.Errorf("failed to list doctors: %w", err)
			}

			fmt.Printf("\nFound %d doctors:\n\n", len(doctors))
			for _, doc := range doctors {
				extras := ""
				if doc.Preference != "" {
					extras += fmt.Sprintf(" [Prefers: %s]", doc.Preference)
				}
				if doc.IsContract() {
					extras += fmt.Sprintf(" [Contract: Day %d / Evening %d / Night %d]",
						doc.ContractShifts.Day, doc.ContractShifts.Evening, doc.ContractShifts.Night)
				}
				if doc.MaxShiftsPerWeek > 0 {
					extras += fmt.Sprintf(" [Max %d/week]", doc.MaxShiftsPerWeek)
				}
				fmt.Printf("- %s - %s%s\n", doc.Name, doc.Seniority, extras)
			}

			return nil
		},
	}

	cmd.Flags().String("snapshot", "", "Path to a YAML snapshot file (overrides the configured store)")

	return cmd
}
