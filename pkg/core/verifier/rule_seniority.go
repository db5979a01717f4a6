package verifier

import "github.com/crestview-health/wardroster/pkg/core/model"

// seniorOnLongHoliday flags any senior doctor assigned any shift on a date
// classed as a long holiday.
func (e *evaluation) seniorOnLongHoliday() []HolidayViolation {
	var violations []HolidayViolation

	for _, date := range e.dates {
		class, ok := e.in.Holidays[date]
		if !ok || class != model.HolidayLong {
			continue
		}
		for _, kind := range model.ShiftKinds {
			for _, name := range e.in.Roster[date][kind] {
				doc, known := e.doctors[name]
				if !known || doc.Seniority != model.Senior {
					continue
				}
				violations = append(violations, HolidayViolation{
					Doctor: name,
					Date:   date,
					Shift:  kind,
					Class:  class,
				})
			}
		}
	}

	return violations
}

// seniorityMeans computes the mean hours per seniority group over the
// doctors that qualify for workload comparisons. hours maps doctor name to
// the hour total being compared. Returns ok=false when either group is
// empty, the statistical degenerate case that contributes no violation.
func (e *evaluation) seniorityMeans(hours func(name string) int) (seniorMean, juniorMean float64, ok bool) {
	var seniorSum, seniorN, juniorSum, juniorN int

	for _, doc := range e.in.Doctors {
		if e.excludedFromBalance(doc.Name) {
			continue
		}
		if _, worked := e.totals[doc.Name]; !worked {
			continue
		}
		switch doc.Seniority {
		case model.Senior:
			seniorSum += hours(doc.Name)
			seniorN++
		case model.Junior:
			juniorSum += hours(doc.Name)
			juniorN++
		}
	}

	if seniorN == 0 || juniorN == 0 {
		return 0, 0, false
	}
	return float64(seniorSum) / float64(seniorN), float64(juniorSum) / float64(juniorN), true
}

// seniorJuniorHours produces one aggregate violation when the seniors' mean
// monthly hours exceed the juniors' mean.
func (e *evaluation) seniorJuniorHours() []SeniorityHoursViolation {
	seniorMean, juniorMean, ok := e.seniorityMeans(e.hoursFor)
	if !ok || seniorMean <= juniorMean {
		return nil
	}
	return []SeniorityHoursViolation{{
		SeniorMeanHours: seniorMean,
		JuniorMeanHours: juniorMean,
		DifferenceHours: seniorMean - juniorMean,
	}}
}

// seniorJuniorWeekendHours is the same comparison restricted to shifts on
// weekend or holiday dates (any holiday class).
func (e *evaluation) seniorJuniorWeekendHours() []SeniorityHoursViolation {
	weekendHours := func(name string) int {
		shifts := 0
		for _, date := range e.dates {
			if !e.isWeekendOrHoliday(date) {
				continue
			}
			for _, kind := range model.ShiftKinds {
				if e.inShift(name, date, kind) {
					shifts++
				}
			}
		}
		return shifts * model.ShiftHours
	}

	seniorMean, juniorMean, ok := e.seniorityMeans(weekendHours)
	if !ok || seniorMean <= juniorMean {
		return nil
	}
	return []SeniorityHoursViolation{{
		SeniorMeanHours: seniorMean,
		JuniorMeanHours: juniorMean,
		DifferenceHours: seniorMean - juniorMean,
	}}
}
