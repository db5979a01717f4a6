package verifier

import (
	"sort"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

// weeklyCapViolations buckets each doctor's shifts into ISO-8601 weeks (the
// Thursday-anchored numbering) and flags every week that exceeds the
// doctor's cap. A cap of zero disables the check. Buckets are keyed by ISO
// year and week so December/January edges never conflate.
func (e *evaluation) weeklyCapViolations() []WeeklyCapViolation {
	var violations []WeeklyCapViolation

	for _, doc := range e.in.Doctors {
		if doc.MaxShiftsPerWeek <= 0 {
			continue
		}

		weeks := make(map[int]int)
		for _, date := range e.dates {
			shifts := 0
			for _, kind := range model.ShiftKinds {
				if e.inShift(doc.Name, date, kind) {
					shifts++
				}
			}
			if shifts == 0 {
				continue
			}
			isoYear, isoWeek := e.times[date].ISOWeek()
			weeks[isoYear*100+isoWeek] += shifts
		}

		keys := make([]int, 0, len(weeks))
		for key := range weeks {
			keys = append(keys, key)
		}
		sort.Ints(keys)

		for _, key := range keys {
			count := weeks[key]
			if count <= doc.MaxShiftsPerWeek {
				continue
			}
			violations = append(violations, WeeklyCapViolation{
				Doctor: doc.Name,
				Week:   key % 100,
				Shifts: count,
				Cap:    doc.MaxShiftsPerWeek,
				Excess: count - doc.MaxShiftsPerWeek,
			})
		}
	}

	return violations
}
