// Package snapshot reads a month snapshot — roster, doctor directory,
// holiday map, and availability map — from a single YAML document. It is
// the interchange format for operators running without a database.
package snapshot

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

// File is the on-disk shape of a month snapshot.
type File struct {
	Month        int                   `yaml:"month" validate:"required,min=1,max=12"`
	Year         int                   `yaml:"year" validate:"min=0"`
	Doctors      []model.Doctor        `yaml:"doctors" validate:"required,dive"`
	Roster       model.Roster          `yaml:"roster" validate:"required"`
	Holidays     model.HolidayMap      `yaml:"holidays,omitempty"`
	Availability model.AvailabilityMap `yaml:"availability,omitempty"`
}

var validate = validator.New()

// Store serves a loaded snapshot file through the same getters the
// database store exposes.
type Store struct {
	file File
}

// Load reads and validates a snapshot file.
func Load(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot file: %w", err)
	}

	if err := Validate(&file); err != nil {
		return nil, err
	}

	return &Store{file: file}, nil
}

// Validate checks the snapshot structure and the doctor directory.
func Validate(file *File) error {
	if err := validate.Struct(file); err != nil {
		return fmt.Errorf("snapshot validation failed: %w", err)
	}

	seen := make(map[string]bool, len(file.Doctors))
	for i, doc := range file.Doctors {
		if doc.Name == "" {
			return fmt.Errorf("doctors[%d]: name is required", i)
		}
		if seen[doc.Name] {
			return fmt.Errorf("doctors[%d]: duplicate doctor name %q", i, doc.Name)
		}
		seen[doc.Name] = true
		if doc.Seniority != model.Senior && doc.Seniority != model.Junior {
			return fmt.Errorf("doctors[%d]: unknown seniority %q", i, doc.Seniority)
		}
	}

	return nil
}

// Month returns the snapshot's target month.
func (s *Store) Month() time.Month {
	return time.Month(s.file.Month)
}

// Year returns the snapshot's target year (zero when unset).
func (s *Store) Year() int {
	return s.file.Year
}

// File returns the underlying snapshot document.
func (s *Store) File() *File {
	return &s.file
}

// GetDoctors returns the doctor directory in file order.
func (s *Store) GetDoctors(ctx context.Context) ([]model.Doctor, error) {
	return s.file.Doctors, nil
}

// GetRoster returns the full roster. The verifier applies the month filter
// itself, so no filtering happens here.
func (s *Store) GetRoster(ctx context.Context, month time.Month, year int) (model.Roster, error) {
	return s.file.Roster, nil
}

// GetHolidays returns the snapshot's explicit holiday map.
func (s *Store) GetHolidays(ctx context.Context, month time.Month, year int) (model.HolidayMap, error) {
	return s.file.Holidays, nil
}

// GetAvailability returns the raw availability map.
func (s *Store) GetAvailability(ctx context.Context) (model.AvailabilityMap, error) {
	return s.file.Availability, nil
}
