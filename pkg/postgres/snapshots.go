package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crestview-health/wardroster/pkg/core/model"
	"github.com/crestview-health/wardroster/pkg/snapshot"
)

const dateLayout = "2006-01-02"

// GetDoctors retrieves the doctor directory ordered by name.
func (d *DB) GetDoctors(ctx context.Context) ([]model.Doctor, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT name, seniority, preference, contract,
		       contract_day, contract_evening, contract_night,
		       max_shifts_per_week
		FROM doctor
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var doctors []model.Doctor
	for rows.Next() {
		var doc model.Doctor
		if err := rows.Scan(&doc.Name, &doc.Seniority, &doc.Preference, &doc.Contract,
			&doc.ContractShifts.Day, &doc.ContractShifts.Evening, &doc.ContractShifts.Night,
			&doc.MaxShiftsPerWeek); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctors: %w", err)
	}

	return doctors, nil
}

// GetRoster assembles the roster for the given month. A zero year matches
// the month in any year, mirroring the verifier's legacy month-only filter.
func (d *DB) GetRoster(ctx context.Context, month time.Month, year int) (model.Roster, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT shift_date, shift_kind, doctor_name
		FROM shift_assignment
		WHERE EXTRACT(MONTH FROM shift_date) = $1
		  AND ($2 = 0 OR EXTRACT(YEAR FROM shift_date) = $2)
		ORDER BY shift_date, shift_kind, position
	`, int(month), year)
	if err != nil {
		return nil, fmt.Errorf("failed to query shift assignments: %w", err)
	}
	defer rows.Close()

	roster := make(model.Roster)
	for rows.Next() {
		var date time.Time
		var kind model.ShiftKind
		var name string
		if err := rows.Scan(&date, &kind, &name); err != nil {
			return nil, fmt.Errorf("failed to scan shift assignment: %w", err)
		}
		key := date.Format(dateLayout)
		day, ok := roster[key]
		if !ok {
			day = make(model.DayAssignments)
			roster[key] = day
		}
		day[kind] = append(day[kind], name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating shift assignments: %w", err)
	}

	return roster, nil
}

// GetHolidays retrieves the holidays falling in the given month.
func (d *DB) GetHolidays(ctx context.Context, month time.Month, year int) (model.HolidayMap, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT holiday_date, class
		FROM holiday
		WHERE EXTRACT(MONTH FROM holiday_date) = $1
		  AND ($2 = 0 OR EXTRACT(YEAR FROM holiday_date) = $2)
	`, int(month), year)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	defer rows.Close()

	holidays := make(model.HolidayMap)
	for rows.Next() {
		var date time.Time
		var class model.HolidayClass
		if err := rows.Scan(&date, &class); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays[date.Format(dateLayout)] = class
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holidays: %w", err)
	}

	return holidays, nil
}

// GetAvailability retrieves all raw availability entries.
func (d *DB) GetAvailability(ctx context.Context) (model.AvailabilityMap, error) {
	rows, err := d.pool.Query(ctx, `
		SELECT doctor_name, entry_date, status
		FROM availability_entry
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query availability entries: %w", err)
	}
	defer rows.Close()

	availability := make(model.AvailabilityMap)
	for rows.Next() {
		var name, status string
		var date time.Time
		if err := rows.Scan(&name, &date, &status); err != nil {
			return nil, fmt.Errorf("failed to scan availability entry: %w", err)
		}
		byDate, ok := availability[name]
		if !ok {
			byDate = make(map[string]string)
			availability[name] = byDate
		}
		byDate[date.Format(dateLayout)] = status
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating availability entries: %w", err)
	}

	return availability, nil
}

// ReplaceSnapshot replaces the store's contents with the given snapshot
// file inside one transaction and records the import.
func (d *DB) ReplaceSnapshot(ctx context.Context, importID string, file *snapshot.File) error {
	tx, err := d.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin snapshot transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, table := range []string{"doctor", "shift_assignment", "holiday", "availability_entry"} {
		if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for _, doc := range file.Doctors {
		_, err := tx.Exec(ctx, `
			INSERT INTO doctor (name, seniority, preference, contract,
			                    contract_day, contract_evening, contract_night,
			                    max_shifts_per_week)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, doc.Name, doc.Seniority, doc.Preference, doc.Contract,
			doc.ContractShifts.Day, doc.ContractShifts.Evening, doc.ContractShifts.Night,
			doc.MaxShiftsPerWeek)
		if err != nil {
			return fmt.Errorf("failed to insert doctor %s: %w", doc.Name, err)
		}
	}

	for date, day := range file.Roster {
		if _, err := time.Parse(dateLayout, date); err != nil {
			// Metadata keys carry no schedule data.
			continue
		}
		for _, kind := range model.ShiftKinds {
			for position, name := range day[kind] {
				_, err := tx.Exec(ctx, `
					INSERT INTO shift_assignment (id, shift_date, shift_kind, doctor_name, position)
					VALUES ($1, $2, $3, $4, $5)
				`, uuid.New().String(), date, kind, name, position)
				if err != nil {
					return fmt.Errorf("failed to insert assignment on %s: %w", date, err)
				}
			}
		}
	}

	for date, class := range file.Holidays {
		_, err := tx.Exec(ctx, `
			INSERT INTO holiday (holiday_date, class) VALUES ($1, $2)
		`, date, class)
		if err != nil {
			return fmt.Errorf("failed to insert holiday %s: %w", date, err)
		}
	}

	for name, byDate := range file.Availability {
		for date, status := range byDate {
			_, err := tx.Exec(ctx, `
				INSERT INTO availability_entry (doctor_name, entry_date, status)
				VALUES ($1, $2, $3)
			`, name, date, status)
			if err != nil {
				return fmt.Errorf("failed to insert availability for %s on %s: %w", name, date, err)
			}
		}
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO snapshot_import (id, month, year) VALUES ($1, $2, $3)
	`, importID, file.Month, file.Year)
	if err != nil {
		return fmt.Errorf("failed to record snapshot import: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit snapshot import: %w", err)
	}
	return nil
}
