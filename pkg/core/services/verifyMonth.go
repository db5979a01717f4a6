package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crestview-health/wardroster/internal/config"
	"github.com/crestview-health/wardroster/pkg/core/model"
	"github.com/crestview-health/wardroster/pkg/core/verifier"
)

// SnapshotStore defines the read operations needed to assemble the
// verifier's four inputs for a month.
type SnapshotStore interface {
	GetDoctors(ctx context.Context) ([]model.Doctor, error)
	GetRoster(ctx context.Context, month time.Month, year int) (model.Roster, error)
	GetHolidays(ctx context.Context, month time.Month, year int) (model.HolidayMap, error)
	GetAvailability(ctx context.Context) (model.AvailabilityMap, error)
}

// ReportRecord is the persisted form of one evaluation.
type ReportRecord struct {
	ID          string
	Month       time.Month
	Year        int
	GeneratedAt time.Time
	HardCount   int
	SoftCount   int
	Total       int
	Report      []byte
}

// ReportSink persists verification reports.
type ReportSink interface {
	InsertReport(ctx context.Context, record *ReportRecord) error
}

// VerifyMonthResult contains the outcome of one verification run.
type VerifyMonthResult struct {
	ReportID string
	Month    time.Month
	Year     int
	Report   *verifier.Report
	Elapsed  time.Duration
	Saved    bool
}

// VerifyMonth loads the four inputs from the store, merges the configured
// recurring holidays into the holiday map, evaluates the roster, and
// persists the report through the sink when one is provided.
// verifier.ErrNoRosterData passes through untouched so callers can tell a
// clean schedule from a schedule that was never generated.
func VerifyMonth(
	ctx context.Context,
	store SnapshotStore,
	sink ReportSink,
	cfg *config.Config,
	logger *zap.Logger,
	month time.Month,
	year int,
) (*VerifyMonthResult, error) {
	logger.Debug("Starting verifyMonth",
		zap.Int("month", int(month)),
		zap.Int("year", year))

	logger.Debug("Fetching doctor directory")
	doctors, err := store.GetDoctors(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch doctors: %w", err)
	}
	logger.Debug("Found doctors", zap.Int("count", len(doctors)))

	logger.Debug("Fetching roster")
	roster, err := store.GetRoster(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch roster: %w", err)
	}
	logger.Debug("Found roster dates", zap.Int("count", len(roster)))

	logger.Debug("Fetching holidays")
	holidays, err := store.GetHolidays(ctx, month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch holidays: %w", err)
	}

	holidays, err = mergeHolidayRules(cfg, holidays, month, year)
	if err != nil {
		return nil, err
	}
	logger.Debug("Holiday map assembled", zap.Int("count", len(holidays)))

	logger.Debug("Fetching availability")
	availability, err := store.GetAvailability(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability: %w", err)
	}
	logger.Debug("Found availability entries", zap.Int("doctors", len(availability)))

	started := time.Now()
	report, err := verifier.Evaluate(verifier.Input{
		Roster:       roster,
		Doctors:      doctors,
		Holidays:     holidays,
		Availability: availability,
		Month:        month,
		Year:         year,
	})
	if err != nil {
		if errors.Is(err, verifier.ErrNoRosterData) {
			logger.Info("No roster data for period",
				zap.Int("month", int(month)),
				zap.Int("year", year))
		}
		return nil, err
	}
	elapsed := time.Since(started)

	result := &VerifyMonthResult{
		ReportID: uuid.New().String(),
		Month:    month,
		Year:     year,
		Report:   report,
		Elapsed:  elapsed,
	}

	logger.Info("Verification complete",
		zap.String("report_id", result.ReportID),
		zap.Int("hard", report.HardTotal()),
		zap.Int("soft", report.SoftTotal()),
		zap.Int("total", report.Total()),
		zap.Duration("elapsed", elapsed))

	if sink != nil {
		record, err := buildReportRecord(result)
		if err != nil {
			return nil, err
		}
		if err := sink.InsertReport(ctx, record); err != nil {
			return nil, fmt.Errorf("failed to persist report: %w", err)
		}
		result.Saved = true
		logger.Debug("Report persisted", zap.String("report_id", result.ReportID))
	}

	return result, nil
}

// mergeHolidayRules overlays the store's explicit holidays on top of the
// holidays expanded from the configured recurrence rules. Explicit entries
// win on conflicting dates.
func mergeHolidayRules(cfg *config.Config, explicit model.HolidayMap, month time.Month, year int) (model.HolidayMap, error) {
	if cfg == nil || len(cfg.HolidayRules) == 0 {
		return explicit, nil
	}

	merged, err := cfg.ExpandHolidays(month, year)
	if err != nil {
		return nil, fmt.Errorf("failed to expand holiday rules: %w", err)
	}
	for date, class := range explicit {
		merged[date] = class
	}
	return merged, nil
}

func buildReportRecord(result *VerifyMonthResult) (*ReportRecord, error) {
	payload, err := json.Marshal(result.Report)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return &ReportRecord{
		ID:          result.ReportID,
		Month:       result.Month,
		Year:        result.Year,
		GeneratedAt: time.Now().UTC(),
		HardCount:   result.Report.HardTotal(),
		SoftCount:   result.Report.SoftTotal(),
		Total:       result.Report.Total(),
		Report:      payload,
	}, nil
}
