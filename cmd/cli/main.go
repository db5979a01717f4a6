package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crestview-health/wardroster/cmd/cli/commands"
	"github.com/crestview-health/wardroster/internal/config"
	"github.com/crestview-health/wardroster/pkg/postgres"
	"github.com/crestview-health/wardroster/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "wardroster",
		Short: "Ward Roster CLI - Verify hospital shift rosters",
		Long:  `A CLI tool for verifying hospital shift rosters against rest, preference, seniority, workload, availability, contract, and weekly-cap rules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Database != nil {
					app.Database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(commands.VerifyRosterCmd(appRef()))
	rootCmd.AddCommand(commands.ListDoctorsCmd(appRef()))
	rootCmd.AddCommand(commands.ImportSnapshotCmd(appRef()))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, creating the empty shell up front
// so commands can capture it before initApp fills it in.
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp sets up logger, config, and the optional database connection
func initApp() error {
	ctx := context.Background()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load config", zap.Error(err))
		return err
	}

	a := appRef()
	a.Cfg = cfg
	a.Logger = logger
	a.Ctx = ctx

	if cfg.DatabaseURL != "" {
		database, err := postgres.NewDB(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("Failed to connect to database", zap.Error(err))
			return err
		}
		if err := database.RunMigrations(ctx); err != nil {
			logger.Error("Failed to run migrations", zap.Error(err))
			return err
		}
		a.Database = database
	}

	logger.Debug("Application initialised",
		zap.String("env", env),
		zap.Bool("database", a.Database != nil))

	return nil
}
