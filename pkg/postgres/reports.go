package postgres

import (
	"context"
	"fmt"

	"github.com/crestview-health/wardroster/pkg/core/services"
)

// InsertReport persists a verification report record.
func (d *DB) InsertReport(ctx context.Context, record *services.ReportRecord) error {
	_, err := d.pool.Exec(ctx, `
		INSERT INTO verification_report
			(id, month, year, generated_at, hard_count, soft_count, total, report)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, record.ID, int(record.Month), record.Year, record.GeneratedAt,
		record.HardCount, record.SoftCount, record.Total, record.Report)
	if err != nil {
		return fmt.Errorf("failed to insert verification report: %w", err)
	}
	return nil
}
