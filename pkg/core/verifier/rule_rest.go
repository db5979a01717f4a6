package verifier

import (
	"fmt"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

// The rest-pattern rules walk the filtered dates in ascending order and
// look at the next one or two calendar days. A day absent from the roster
// has no shifts, so a doctor trivially does not appear on it.

// nightFollowedByWork flags doctors working a Day or Evening shift on the
// calendar day after a Night shift.
func (e *evaluation) nightFollowedByWork() []RestViolation {
	var violations []RestViolation

	for _, date := range e.dates {
		next := nextDay(e.times[date])
		for _, name := range e.in.Roster[date][model.ShiftNight] {
			for _, kind := range []model.ShiftKind{model.ShiftDay, model.ShiftEvening} {
				if !e.inShift(name, next, kind) {
					continue
				}
				violations = append(violations, RestViolation{
					Doctor: name,
					Dates:  []string{date, next},
					Shifts: []model.ShiftKind{model.ShiftNight, kind},
					Transition: fmt.Sprintf("Night (%s) -> %s (%s)",
						date, kind, next),
				})
			}
		}
	}

	return violations
}

// eveningFollowedByDay flags doctors working a Day shift on the calendar
// day after an Evening shift.
func (e *evaluation) eveningFollowedByDay() []RestViolation {
	var violations []RestViolation

	for _, date := range e.dates {
		next := nextDay(e.times[date])
		for _, name := range e.in.Roster[date][model.ShiftEvening] {
			if !e.inShift(name, next, model.ShiftDay) {
				continue
			}
			violations = append(violations, RestViolation{
				Doctor: name,
				Dates:  []string{date, next},
				Shifts: []model.ShiftKind{model.ShiftEvening, model.ShiftDay},
				Transition: fmt.Sprintf("Evening (%s) -> Day (%s)",
					date, next),
			})
		}
	}

	return violations
}

// nightRestThenDay flags a Night shift followed by a full rest day and then
// a Day shift. One rest day after nights is still insufficient recovery
// before a day shift.
func (e *evaluation) nightRestThenDay() []RestViolation {
	var violations []RestViolation

	for _, date := range e.dates {
		next := nextDay(e.times[date])
		dayAfter := nextDay(e.times[date].AddDate(0, 0, 1))
		for _, name := range e.in.Roster[date][model.ShiftNight] {
			if e.assignedOn(name, next) {
				continue
			}
			if !e.inShift(name, dayAfter, model.ShiftDay) {
				continue
			}
			violations = append(violations, RestViolation{
				Doctor: name,
				Dates:  []string{date, next, dayAfter},
				Shifts: []model.ShiftKind{model.ShiftNight, model.ShiftDay},
				Transition: fmt.Sprintf("Night (%s) -> Rest (%s) -> Day (%s)",
					date, next, dayAfter),
			})
		}
	}

	return violations
}
