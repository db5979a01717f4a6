package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crestview-health/wardroster/pkg/core/services"
	"github.com/crestview-health/wardroster/pkg/core/verifier"
	"github.com/crestview-health/wardroster/pkg/snapshot"
)

// VerifyRosterCmd creates the verifyRoster command
func VerifyRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verifyRoster",
		Short: "Verify a month's roster against all scheduling rules",
		Long:  "Re-derive every rule violation in the roster for the target month, partitioned into hard and soft categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetInt("month")
			year, _ := cmd.Flags().GetInt("year")
			snapshotPath, _ := cmd.Flags().GetString("snapshot")
			save, _ := cmd.Flags().GetBool("save")
			asJSON, _ := cmd.Flags().GetBool("json")

			app.Logger.Debug("verifyRoster command",
				zap.Int("month", month),
				zap.Int("year", year),
				zap.String("snapshot", snapshotPath),
				zap.Bool("save", save))

			store, defaultMonth, defaultYear, err := resolveStore(app, snapshotPath)
			if err != nil {
				return err
			}
			if month == 0 {
				month = defaultMonth
			}
			if month < 1 || month > 12 {
				return fmt.Errorf("month must be between 1 and 12, got %d", month)
			}
			if year == 0 {
				year = defaultYear
			}

			var sink services.ReportSink
			if save {
				if app.Database == nil {
					return fmt.Errorf("--save requires databaseURL to be configured")
				}
				sink = app.Database
			}

			result, err := services.VerifyMonth(app.Ctx, store, sink, app.Cfg, app.Logger, time.Month(month), year)
			if errors.Is(err, verifier.ErrNoRosterData) {
				fmt.Printf("\n📭 No roster data for %s %d - the schedule has not been generated yet.\n",
					time.Month(month), year)
				return nil
			}
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			if asJSON {
				payload, err := json.MarshalIndent(result.Report, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to encode report: %w", err)
				}
				fmt.Println(string(payload))
				return nil
			}

			printReport(result)
			return nil
		},
	}

	cmd.Flags().Int("month", 0, "Target month (1-12, defaults to the snapshot's month)")
	cmd.Flags().Int("year", 0, "Target year (0 matches the month in any year)")
	cmd.Flags().String("snapshot", "", "Path to a YAML snapshot file (overrides the configured store)")
	cmd.Flags().Bool("save", false, "Persist the report to the database")
	cmd.Flags().Bool("json", false, "Print the raw report as JSON")

	return cmd
}

// resolveStore picks the snapshot source: an explicit --snapshot path, the
// configured database, or the configured snapshot path, in that order.
func resolveStore(app *AppContext, snapshotPath string) (services.SnapshotStore, int, int, error) {
	if snapshotPath == "" && app.Database != nil {
		return app.Database, 0, 0, nil
	}
	if snapshotPath == "" {
		snapshotPath = app.Cfg.SnapshotPath
	}
	if snapshotPath == "" {
		return nil, 0, 0, fmt.Errorf("no roster source: pass --snapshot or configure snapshotPath or databaseURL")
	}

	store, err := snapshot.Load(snapshotPath)
	if err != nil {
		return nil, 0, 0, err
	}
	return store, int(store.Month()), store.Year(), nil
}

func printReport(result *services.VerifyMonthResult) {
	report := result.Report

	fmt.Printf("\n🏥 Roster Verification Report\n\n")
	fmt.Printf("Period:    %s %d\n", result.Month, result.Year)
	fmt.Printf("Report ID: %s\n", result.ReportID)
	if result.Saved {
		fmt.Printf("Saved:     ✅ (database)\n")
	}
	fmt.Println()

	if report.Total() == 0 {
		fmt.Println("✅ No violations found - the roster satisfies every rule.")
		return
	}

	fmt.Printf("❌ Hard violations: %d\n", report.HardTotal())
	printRestCategory("Night followed by work", report.NightFollowedByWork)
	printRestCategory("Evening followed by day", report.EveningFollowedByDay)
	printRestCategory("Night, rest day, then day", report.NightRestThenDay)
	printPreferenceCategory("Day/Evening doctor on night shift", report.PreferredToNight)
	printHolidayCategory("Senior on long holiday", report.SeniorOnLongHoliday)
	printSeniorityCategory("Senior hours above junior hours", report.SeniorJuniorHours)
	printSeniorityCategory("Senior weekend/holiday hours above junior", report.SeniorJuniorWeekendHours)
	printAvailabilityCategory("Assigned while unavailable", report.Availability)
	printContractCategory("Contract quota mismatch", report.Contract)
	printWeeklyCapCategory("Weekly shift cap exceeded", report.WeeklyCap)

	fmt.Printf("\n⚠️  Soft violations: %d\n", report.SoftTotal())
	printPreferenceCategory("Preference not honoured", report.Preference)
	printBalanceCategory("Monthly hours out of balance", report.HourBalance)

	fmt.Printf("\nTotal: %d violation(s)\n", report.Total())
}

func printRestCategory(label string, c verifier.Category[verifier.RestViolation]) {
	if c.Count == 0 {
		return
	}
	fmt.Printf("\n  %s (%d):\n", label, c.Count)
	for _, v := range c.Details {
		fmt.Printf("    • %s: %s\n", v.Doctor, v.Transition)
	}
}

func printPreferenceCategory(label string, c verifier.Category[verifier.PreferenceViolation]) {
	if c.Count == 0 {
		return
	}
	fmt.Printf("\n  %s (%d):\n", label, c.Count)
	for _, v := range c.Details {
		fmt.Printf("    • %s: %s shift on %s (prefers %s)\n", v.Doctor, v.Shift, v.Date, v.Preference)
	}
}

func printHolidayCategory(label string, c verifier.Category[verifier.HolidayViolation]) {
	if c.Count == 0 {
		return
	}
	fmt.Printf("\n  %s (%d):\n", label, c.Count)
	for _, v := range c.Details {
		fmt.Printf("    • %s: %s shift on %s (%s holiday)\n", v.Doctor, v.Shift, v.Date, v.Class)
	}
}

func printSeniorityCategory(label string, c verifier.Category[verifier.SeniorityHoursViolation]) {
	if c.Count == 0 {
		return
	}
	fmt.Printf("\n  %s (%d):\n", label, c.Count)
	for _, v := range c.Details {
		fmt.Printf("    • senior mean %.1fh vs junior mean %.1fh (difference %.1fh)\n",
			v.SeniorMeanHours, v.JuniorMeanHours, v.DifferenceHours)
	}
}

func printAvailabilityCategory(label string, c verifier.Category[verifier.AvailabilityViolation]) {
	if c.Count == 0 {
		return
	}
	fmt.Printf("\n  %s (%d):\n", label, c.Count)
	for _, v := range c.Details {
		fmt.Printf("    • %s: %s shift on %s (status: %s)\n", v.Doctor, v.Shift, v.Date, v.Status)
	}
}

func printContractCategory(label string, c verifier.Category[verifier.ContractViolation]) {
	if c.Count == 0 {
		return
	}
	fmt.Printf("\n  %s (%d):\n", label, c.Count)
	for _, v := range c.Details {
		fmt.Printf("    • %s: expected Day %d / Evening %d / Night %d, worked Day %d / Evening %d / Night %d\n",
			v.Doctor,
			v.Expected.Day, v.Expected.Evening, v.Expected.Night,
			v.Actual.Day, v.Actual.Evening, v.Actual.Night)
	}
}

func printWeeklyCapCategory(label string, c verifier.Category[verifier.WeeklyCapViolation]) {
	if c.Count == 0 {
		return
	}
	fmt.Printf("\n  %s (%d):\n", label, c.Count)
	for _, v := range c.Details {
		fmt.Printf("    • %s: %d shifts in week %d (cap %d, excess %d)\n",
			v.Doctor, v.Shifts, v.Week, v.Cap, v.Excess)
	}
}

func printBalanceCategory(label string, c verifier.Category[verifier.HourBalanceViolation]) {
	if c.Count == 0 {
		return
	}
	fmt.Printf("\n  %s (%d):\n", label, c.Count)
	for _, v := range c.Details {
		fmt.Printf("    • max %dh (%v) vs min %dh (%v), spread %dh\n",
			v.MaxHours, v.MaxDoctors, v.MinHours, v.MinDoctors, v.Variance)
		if len(v.Excluded) > 0 {
			fmt.Printf("      excluded from comparison: %v\n", v.Excluded)
		}
	}
}
