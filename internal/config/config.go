package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"
	"gopkg.in/yaml.v3"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

// HolidayRule defines a recurring holiday as an RFC 5545 recurrence rule.
// Occurrences falling inside the verified month are merged into the holiday
// map; explicit snapshot holidays win on the same date.
type HolidayRule struct {
	RRule string             `yaml:"rrule" validate:"required"`
	Class model.HolidayClass `yaml:"class" validate:"required,oneof=Long Short"`
	Label string             `yaml:"label,omitempty"`
}

// Config represents the application configuration
type Config struct {
	SnapshotPath string        `yaml:"snapshotPath,omitempty"`
	DatabaseURL  string        `yaml:"databaseURL,omitempty"`
	HolidayRules []HolidayRule `yaml:"holidayRules,omitempty" validate:"dive"`
}

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Load loads and validates the configuration from wardroster_config.yaml.
// It looks for the config file in the current directory first, then in the
// user's home directory.
func Load() (*Config, error) {
	configPath, err := findConfigFile()
	if err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}

	return LoadFromPath(configPath)
}

// LoadFromPath loads and validates the configuration from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate validates the configuration struct and checks rrule syntax
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	for i, rule := range cfg.HolidayRules {
		if _, err := rrule.StrToRRule(rule.RRule); err != nil {
			return fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
	}

	return nil
}

// ExpandHolidays expands the recurring holiday rules into holiday map
// entries for the given month. When two rules land on the same date the
// Long class wins.
func (c *Config) ExpandHolidays(month time.Month, year int) (model.HolidayMap, error) {
	holidays := make(model.HolidayMap)
	if len(c.HolidayRules) == 0 {
		return holidays, nil
	}

	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Second)

	for i, rule := range c.HolidayRules {
		r, err := rrule.StrToRRule(rule.RRule)
		if err != nil {
			return nil, fmt.Errorf("invalid rrule in holidayRules[%d]: %w", i, err)
		}
		for _, occurrence := range r.Between(monthStart, monthEnd, true) {
			date := occurrence.Format("2006-01-02")
			if existing, ok := holidays[date]; ok && existing == model.HolidayLong {
				continue
			}
			holidays[date] = rule.Class
		}
	}

	return holidays, nil
}

// findConfigFile searches for wardroster_config.yaml in current directory and home directory
func findConfigFile() (string, error) {
	configFileName := "wardroster_config.yaml"

	// Check current directory
	if _, err := os.Stat(configFileName); err == nil {
		return configFileName, nil
	}

	// Check home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	homeConfigPath := filepath.Join(homeDir, configFileName)
	if _, err := os.Stat(homeConfigPath); err == nil {
		return homeConfigPath, nil
	}

	return "", fmt.Errorf("config file not found in current directory or home directory")
}
