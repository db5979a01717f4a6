package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crestview-health/wardroster/pkg/snapshot"
)

// SnapshotWriter defines the write operations needed to import a snapshot
// into a persistent store.
type SnapshotWriter interface {
	ReplaceSnapshot(ctx context.Context, importID string, file *snapshot.File) error
}

// ImportSnapshotResult contains the outcome of a snapshot import.
type ImportSnapshotResult struct {
	ImportID string
	Month    int
	Year     int
	Doctors  int
	Dates    int
}

// ImportSnapshot loads a YAML snapshot file and replaces the store's
// contents with it.
func ImportSnapshot(ctx context.Context, path string, writer SnapshotWriter, logger *zap.Logger) (*ImportSnapshotResult, error) {
	logger.Debug("Loading snapshot file", zap.String("path", path))

	store, err := snapshot.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	file := store.File()

	importID := uuid.New().String()
	logger.Info("Importing snapshot",
		zap.String("import_id", importID),
		zap.Int("month", file.Month),
		zap.Int("year", file.Year),
		zap.Int("doctors", len(file.Doctors)),
		zap.Int("dates", len(file.Roster)))

	if err := writer.ReplaceSnapshot(ctx, importID, file); err != nil {
		return nil, fmt.Errorf("failed to import snapshot: %w", err)
	}

	return &ImportSnapshotResult{
		ImportID: importID,
		Month:    file.Month,
		Year:     file.Year,
		Doctors:  len(file.Doctors),
		Dates:    len(file.Roster),
	}, nil
}
