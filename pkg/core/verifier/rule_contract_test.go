package verifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

func TestContractQuotaMetExactly(t *testing.T) {
	roster := make(model.Roster)
	dayRange(roster, model.ShiftDay, "Carl", "2026-03-02", "2026-03-03")
	dayRange(roster, model.ShiftNight, "Carl", "2026-03-05", "2026-03-09", "2026-03-12")

	doctors := []model.Doctor{{
		Name:           "Carl",
		Seniority:      model.Junior,
		Contract:       true,
		ContractShifts: model.ShiftCounts{Day: 2, Night: 3},
	}}

	report := evaluateMarch(t, roster, doctors)
	assert.Equal(t, 0, report.Contract.Count)
}

func TestContractQuotaUnderworked(t *testing.T) {
	roster := make(model.Roster)
	dayRange(roster, model.ShiftNight, "Carl", "2026-03-02", "2026-03-05")

	doctors := []model.Doctor{{
		Name:           "Carl",
		Seniority:      model.Junior,
		Contract:       true,
		ContractShifts: model.ShiftCounts{Night: 3},
	}}

	report := evaluateMarch(t, roster, doctors)

	require.Equal(t, 1, report.Contract.Count)
	v := report.Contract.Details[0]
	assert.Equal(t, "Carl", v.Doctor)
	assert.Equal(t, model.ShiftCounts{Night: 3}, v.Expected)
	assert.Equal(t, model.ShiftCounts{Night: 2}, v.Actual)
}

func TestContractQuotaWrongKind(t *testing.T) {
	// Right total, wrong mix: three evenings against a three-night quota.
	roster := make(model.Roster)
	dayRange(roster, model.ShiftEvening, "Carl", "2026-03-02", "2026-03-04", "2026-03-06")

	report := evaluateMarch(t, roster, []model.Doctor{{
		Name:           "Carl",
		Seniority:      model.Junior,
		Contract:       true,
		ContractShifts: model.ShiftCounts{Night: 3},
	}})

	require.Equal(t, 1, report.Contract.Count)
	v := report.Contract.Details[0]
	assert.Equal(t, model.ShiftCounts{Evening: 3}, v.Actual)
}

func TestContractDoctorAbsentFromRoster(t *testing.T) {
	roster := model.Roster{
		"2026-03-02": {model.ShiftDay: {"Alice"}},
	}

	doctors := []model.Doctor{
		junior("Alice"),
		{Name: "Carl", Seniority: model.Junior, Contract: true, ContractShifts: model.ShiftCounts{Night: 2}},
	}

	report := evaluateMarch(t, roster, doctors)

	require.Equal(t, 1, report.Contract.Count)
	v := report.Contract.Details[0]
	assert.Equal(t, "Carl", v.Doctor)
	assert.Equal(t, model.ShiftCounts{}, v.Actual)
}

func TestNonContractDoctorsNeverChecked(t *testing.T) {
	roster := make(model.Roster)
	dayRange(roster, model.ShiftNight, "Alice", "2026-03-02", "2026-03-03")

	report := evaluateMarch(t, roster, []model.Doctor{junior("Alice")})
	assert.Equal(t, 0, report.Contract.Count)
}
