package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

func TestDayPreferenceOnNightIsHard(t *testing.T) {
	roster := model.Roster{
		"2026-03-02": {model.ShiftNight: {"Priya"}},
	}
	doctors := []model.Doctor{
		{Name: "Priya", Seniority: model.Junior, Preference: model.PreferDay},
	}

	report := evaluateMarch(t, roster, doctors)

	require.Equal(t, 1, report.PreferredToNight.Count)
	v := report.PreferredToNight.Details[0]
	assert.Equal(t, "Priya", v.Doctor)
	assert.Equal(t, "2026-03-02", v.Date)
	assert.Equal(t, model.ShiftNight, v.Shift)
	assert.Equal(t, model.PreferDay, v.Preference)

	assert.Equal(t, 0, report.Preference.Count, "the night carve-out must not double-report as a soft violation")
}

func TestEveningPreferenceOnNightIsHard(t *testing.T) {
	roster := model.Roster{
		"2026-03-02": {model.ShiftNight: {"Omar"}},
	}
	doctors := []model.Doctor{
		{Name: "Omar", Seniority: model.Junior, Preference: model.PreferEvening},
	}

	report := evaluateMarch(t, roster, doctors)
	assert.Equal(t, 1, report.PreferredToNight.Count)
	assert.Equal(t, 0, report.Preference.Count)
}

func TestNightPreferenceOnDayIsSoft(t *testing.T) {
	roster := model.Roster{
		"2026-03-02": {model.ShiftDay: {"Omar"}},
	}
	doctors := []model.Doctor{
		{Name: "Omar", Seniority: model.Junior, Preference: model.PreferNight},
	}

	report := evaluateMarch(t, roster, doctors)

	require.Equal(t, 1, report.Preference.Count)
	v := report.Preference.Details[0]
	assert.Equal(t, "Omar", v.Doctor)
	assert.Equal(t, model.ShiftDay, v.Shift)
	assert.Equal(t, model.PreferNight, v.Preference)
	assert.Equal(t, 0, report.PreferredToNight.Count)
}

func TestDayPreferenceOnEveningIsSoft(t *testing.T) {
	roster := model.Roster{
		"2026-03-02": {model.ShiftEvening: {"Priya"}},
	}
	doctors := []model.Doctor{
		{Name: "Priya", Seniority: model.Junior, Preference: model.PreferDay},
	}

	report := evaluateMarch(t, roster, doctors)
	assert.Equal(t, 1, report.Preference.Count)
	assert.Equal(t, 0, report.PreferredToNight.Count)
}

func TestNoPreferenceNeverFlags(t *testing.T) {
	roster := model.Roster{
		"2026-03-02": {
			model.ShiftDay:   {"Alice"},
			model.ShiftNight: {"Bob"},
		},
	}
	doctors := []model.Doctor{junior("Alice"), junior("Bob")}

	report := evaluateMarch(t, roster, doctors)
	assert.Equal(t, 0, report.Preference.Count)
	assert.Equal(t, 0, report.PreferredToNight.Count)
}

func TestPreferenceSkipsUnknownDoctors(t *testing.T) {
	roster := model.Roster{
		"2026-03-02": {model.ShiftNight: {"Stranger"}},
		"2026-03-03": {model.ShiftDay: {"Alice"}},
	}

	report := evaluateMarch(t, roster, []model.Doctor{junior("Alice")})
	assert.Equal(t, 0, report.Preference.Count)
	assert.Equal(t, 0, report.PreferredToNight.Count)
}
