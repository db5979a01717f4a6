package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wardroster_config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromPath(t *testing.T) {
	path := writeConfig(t, `
snapshotPath: /data/roster.yaml
databaseURL: postgres://localhost:5432/wardroster
holidayRules:
  - rrule: "DTSTART=20260101T000000Z;FREQ=YEARLY;BYMONTH=1;BYMONTHDAY=1"
    class: Long
    label: New Year
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/roster.yaml", cfg.SnapshotPath)
	assert.Equal(t, "postgres://localhost:5432/wardroster", cfg.DatabaseURL)
	require.Len(t, cfg.HolidayRules, 1)
	assert.Equal(t, model.HolidayLong, cfg.HolidayRules[0].Class)
	assert.Equal(t, "New Year", cfg.HolidayRules[0].Label)
}

func TestLoadFromPathMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadRRule(t *testing.T) {
	cfg := &Config{
		HolidayRules: []HolidayRule{
			{RRule: "FREQ=SOMETIMES", Class: model.HolidayShort},
		},
	}
	assert.Error(t, Validate(cfg))
}

func TestValidateRejectsBadClass(t *testing.T) {
	cfg := &Config{
		HolidayRules: []HolidayRule{
			{RRule: "FREQ=YEARLY;BYMONTH=1;BYMONTHDAY=1", Class: "Medium"},
		},
	}
	assert.Error(t, Validate(cfg))
}

func TestValidateEmptyConfig(t *testing.T) {
	assert.NoError(t, Validate(&Config{}))
}

func TestExpandHolidays(t *testing.T) {
	cfg := &Config{
		HolidayRules: []HolidayRule{
			{
				RRule: "DTSTART=20260101T000000Z;FREQ=YEARLY;BYMONTH=3;BYMONTHDAY=17",
				Class: model.HolidayShort,
				Label: "St Patrick's Day",
			},
		},
	}

	holidays, err := cfg.ExpandHolidays(time.March, 2026)
	require.NoError(t, err)
	assert.Equal(t, model.HolidayMap{"2026-03-17": model.HolidayShort}, holidays)
}

func TestExpandHolidaysOutsideMonth(t *testing.T) {
	cfg := &Config{
		HolidayRules: []HolidayRule{
			{
				RRule: "DTSTART=20260101T000000Z;FREQ=YEARLY;BYMONTH=12;BYMONTHDAY=25",
				Class: model.HolidayLong,
			},
		},
	}

	holidays, err := cfg.ExpandHolidays(time.March, 2026)
	require.NoError(t, err)
	assert.Empty(t, holidays)
}

func TestExpandHolidaysLongWinsOnConflict(t *testing.T) {
	cfg := &Config{
		HolidayRules: []HolidayRule{
			{
				RRule: "DTSTART=20260101T000000Z;FREQ=YEARLY;BYMONTH=3;BYMONTHDAY=17",
				Class: model.HolidayLong,
			},
			{
				RRule: "DTSTART=20260101T000000Z;FREQ=YEARLY;BYMONTH=3;BYMONTHDAY=17",
				Class: model.HolidayShort,
			},
		},
	}

	holidays, err := cfg.ExpandHolidays(time.March, 2026)
	require.NoError(t, err)
	assert.Equal(t, model.HolidayLong, holidays["2026-03-17"])
}

func TestExpandHolidaysWeeklyRule(t *testing.T) {
	cfg := &Config{
		HolidayRules: []HolidayRule{
			{
				// Every Friday.
				RRule: "DTSTART=20260101T000000Z;FREQ=WEEKLY;BYDAY=FR",
				Class: model.HolidayShort,
			},
		},
	}

	holidays, err := cfg.ExpandHolidays(time.March, 2026)
	require.NoError(t, err)
	assert.Len(t, holidays, 4, "March 2026 has four Fridays")
	assert.Contains(t, holidays, "2026-03-06")
	assert.Contains(t, holidays, "2026-03-27")
}
