// Package verifier re-derives every rule violation present in one month's
// roster. Evaluate is a pure function over four immutable inputs; it never
// fails for data-quality reasons and produces a deterministic report.
package verifier

import (
	"errors"
	"time"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

// ErrNoRosterData is returned when the month-filtered roster is empty, so
// callers can tell a clean schedule from a schedule that was never
// generated for the period.
var ErrNoRosterData = errors.New("no roster data for the requested period")

// Input carries the four collaborator-supplied snapshots and the target
// period. A zero Year disables year matching in the month filter.
type Input struct {
	Roster       model.Roster
	Doctors      []model.Doctor
	Holidays     model.HolidayMap
	Availability model.AvailabilityMap
	Month        time.Month
	Year         int
}

// Evaluate runs all twelve rule passes over the month-filtered roster and
// aggregates their findings into one report. Identical inputs always yield
// an identical report, and none of the inputs are modified.
func Evaluate(in Input) (*Report, error) {
	e := newEvaluation(in)
	if len(e.dates) == 0 {
		return nil, ErrNoRosterData
	}

	return &Report{
		NightFollowedByWork:      newCategory(e.nightFollowedByWork()),
		EveningFollowedByDay:     newCategory(e.eveningFollowedByDay()),
		NightRestThenDay:         newCategory(e.nightRestThenDay()),
		PreferredToNight:         newCategory(e.preferredToNight()),
		SeniorOnLongHoliday:      newCategory(e.seniorOnLongHoliday()),
		SeniorJuniorHours:        newCategory(e.seniorJuniorHours()),
		SeniorJuniorWeekendHours: newCategory(e.seniorJuniorWeekendHours()),
		Availability:             newCategory(e.availabilityViolations()),
		Contract:                 newCategory(e.contractViolations()),
		WeeklyCap:                newCategory(e.weeklyCapViolations()),
		Preference:               newCategory(e.preferenceViolations()),
		HourBalance:              newCategory(e.hourBalanceViolations()),
	}, nil
}
