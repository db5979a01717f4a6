package commands

import (
	"context"

	"go.uber.org/zap"

	"github.com/crestview-health/wardroster/internal/config"
	"github.com/crestview-health/wardroster/pkg/postgres"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg      *config.Config
	Database *postgres.DB // nil unless databaseURL is configured
	Logger   *zap.Logger
	Ctx      context.Context
}
