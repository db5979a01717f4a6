package verifier

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

func evaluateMarchWithHolidays(t *testing.T, roster model.Roster, doctors []model.Doctor, holidays model.HolidayMap) *Report {
	t.Helper()
	report, err := Evaluate(Input{
		Roster:   roster,
		Doctors:  doctors,
		Holidays: holidays,
		Month:    time.March,
		Year:     2026,
	})
	require.NoError(t, err)
	return report
}

func TestSeniorOnLongHoliday(t *testing.T) {
	roster := model.Roster{
		"2026-03-05": {
			model.ShiftDay:     {"Sam"},
			model.ShiftEvening: {"Jess"},
		},
	}
	doctors := []model.Doctor{senior("Sam"), junior("Jess")}
	holidays := model.HolidayMap{"2026-03-05": model.HolidayLong}

	report := evaluateMarchWithHolidays(t, roster, doctors, holidays)

	require.Equal(t, 1, report.SeniorOnLongHoliday.Count, "only the senior assignment counts")
	v := report.SeniorOnLongHoliday.Details[0]
	assert.Equal(t, "Sam", v.Doctor)
	assert.Equal(t, "2026-03-05", v.Date)
	assert.Equal(t, model.ShiftDay, v.Shift)
	assert.Equal(t, model.HolidayLong, v.Class)
}

func TestSeniorOnShortHolidayIsFine(t *testing.T) {
	roster := model.Roster{
		"2026-03-05": {model.ShiftNight: {"Sam"}},
	}
	holidays := model.HolidayMap{"2026-03-05": model.HolidayShort}

	report := evaluateMarchWithHolidays(t, roster, []model.Doctor{senior("Sam")}, holidays)
	assert.Equal(t, 0, report.SeniorOnLongHoliday.Count)
}

func TestSeniorMeanHoursAboveJuniors(t *testing.T) {
	roster := make(model.Roster)
	dayRange(roster, model.ShiftDay, "Sam",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06", "2026-03-09")
	dayRange(roster, model.ShiftEvening, "Jess",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")

	report := evaluateMarch(t, roster, []model.Doctor{senior("Sam"), junior("Jess")})

	require.Equal(t, 1, report.SeniorJuniorHours.Count)
	v := report.SeniorJuniorHours.Details[0]
	assert.InDelta(t, 48.0, v.SeniorMeanHours, 0.001)
	assert.InDelta(t, 40.0, v.JuniorMeanHours, 0.001)
	assert.InDelta(t, 8.0, v.DifferenceHours, 0.001)
}

func TestEqualMeansIsFine(t *testing.T) {
	roster := make(model.Roster)
	dayRange(roster, model.ShiftDay, "Sam",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")
	dayRange(roster, model.ShiftEvening, "Jess",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")

	report := evaluateMarch(t, roster, []model.Doctor{senior("Sam"), junior("Jess")})
	assert.Equal(t, 0, report.SeniorJuniorHours.Count)
}

func TestJuniorsWorkingMoreIsFine(t *testing.T) {
	roster := make(model.Roster)
	dayRange(roster, model.ShiftDay, "Sam",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")
	dayRange(roster, model.ShiftEvening, "Jess",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06",
		"2026-03-09", "2026-03-10")

	report := evaluateMarch(t, roster, []model.Doctor{senior("Sam"), junior("Jess")})
	assert.Equal(t, 0, report.SeniorJuniorHours.Count, "juniors above seniors is the intended direction")
}

func TestLimitedDoctorsExcludedFromMeans(t *testing.T) {
	roster := make(model.Roster)
	dayRange(roster, model.ShiftDay, "Sam",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")
	dayRange(roster, model.ShiftEvening, "Jess",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")
	// Riley works two shifts and would otherwise drag the junior mean down.
	dayRange(roster, model.ShiftDay, "Riley", "2026-03-09", "2026-03-10")

	doctors := []model.Doctor{senior("Sam"), junior("Jess"), junior("Riley")}
	report := evaluateMarch(t, roster, doctors)
	assert.Equal(t, 0, report.SeniorJuniorHours.Count,
		"limited-availability doctors must not skew the comparison")
}

func TestMissingSeniorityGroupIsFine(t *testing.T) {
	roster := make(model.Roster)
	dayRange(roster, model.ShiftDay, "Sam",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")

	report := evaluateMarch(t, roster, []model.Doctor{senior("Sam")})
	assert.Equal(t, 0, report.SeniorJuniorHours.Count)
	assert.Equal(t, 0, report.SeniorJuniorWeekendHours.Count)
}

func TestSeniorWeekendHoursAboveJuniors(t *testing.T) {
	roster := make(model.Roster)
	// 2026-03-07 and 2026-03-08 are Saturday and Sunday; 2026-03-14 is the
	// next Saturday.
	dayRange(roster, model.ShiftDay, "Sam",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06",
		"2026-03-07", "2026-03-08")
	dayRange(roster, model.ShiftEvening, "Jess",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06",
		"2026-03-14")

	report := evaluateMarch(t, roster, []model.Doctor{senior("Sam"), junior("Jess")})

	require.Equal(t, 1, report.SeniorJuniorWeekendHours.Count)
	v := report.SeniorJuniorWeekendHours.Details[0]
	assert.InDelta(t, 16.0, v.SeniorMeanHours, 0.001)
	assert.InDelta(t, 8.0, v.JuniorMeanHours, 0.001)
	assert.InDelta(t, 8.0, v.DifferenceHours, 0.001)
}

func TestHolidaysCountAsWeekendLoad(t *testing.T) {
	roster := make(model.Roster)
	// 2026-03-10 is a Tuesday, marked as a short holiday below.
	dayRange(roster, model.ShiftDay, "Sam",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06",
		"2026-03-10")
	dayRange(roster, model.ShiftEvening, "Jess",
		"2026-03-02", "2026-03-03", "2026-03-04", "2026-03-05", "2026-03-06")

	holidays := model.HolidayMap{"2026-03-10": model.HolidayShort}
	report := evaluateMarchWithHolidays(t, roster,
		[]model.Doctor{senior("Sam"), junior("Jess")}, holidays)

	require.Equal(t, 1, report.SeniorJuniorWeekendHours.Count)
	v := report.SeniorJuniorWeekendHours.Details[0]
	assert.InDelta(t, 8.0, v.SeniorMeanHours, 0.001)
	assert.InDelta(t, 0.0, v.JuniorMeanHours, 0.001)
}
