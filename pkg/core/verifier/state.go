package verifier

import (
	"sort"
	"time"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

const dateLayout = "2006-01-02"

// limitedShiftThreshold is the shift count at or below which a doctor is
// treated as limited-availability and excluded from workload comparisons.
const limitedShiftThreshold = 4

// evaluation is the staged state shared by the rule passes: the
// month-filtered roster, the per-doctor workload census, and the derived
// exclusion sets. It is built once per Evaluate call and read-only after.
type evaluation struct {
	in Input

	// dates holds the filtered roster dates in ascending calendar order.
	dates []string
	// times maps each filtered date to its parsed form.
	times map[string]time.Time

	doctors map[string]model.Doctor
	totals  map[string]model.ShiftCounts

	// limited holds doctors working at most limitedShiftThreshold shifts in
	// the month. contract holds the contract-quota doctors. Both are
	// excluded from the workload-balance and seniority-average comparisons.
	limited  map[string]bool
	contract map[string]bool

	availability map[string]map[string]model.Availability
}

func newEvaluation(in Input) *evaluation {
	e := &evaluation{
		in:           in,
		times:        make(map[string]time.Time),
		doctors:      make(map[string]model.Doctor, len(in.Doctors)),
		totals:       make(map[string]model.ShiftCounts),
		limited:      make(map[string]bool),
		contract:     make(map[string]bool),
		availability: make(map[string]map[string]model.Availability, len(in.Availability)),
	}

	for _, doc := range in.Doctors {
		e.doctors[doc.Name] = doc
		if doc.IsContract() {
			e.contract[doc.Name] = true
		}
	}

	e.filterMonth()
	e.census()
	e.parseAvailability()

	return e
}

// filterMonth restricts the roster to dates in the target month. Keys that
// do not parse as dates carry metadata, not schedule data, and are skipped.
// A zero target year keeps the legacy month-only matching for rosters whose
// dates carry no reliable year.
func (e *evaluation) filterMonth() {
	for key := range e.in.Roster {
		t, err := time.Parse(dateLayout, key)
		if err != nil {
			continue
		}
		if t.Month() != e.in.Month {
			continue
		}
		if e.in.Year != 0 && t.Year() != e.in.Year {
			continue
		}
		e.dates = append(e.dates, key)
		e.times[key] = t
	}
	sort.Strings(e.dates)
}

// census tallies shifts per doctor across the filtered roster and derives
// the limited-availability set.
func (e *evaluation) census() {
	for _, date := range e.dates {
		for _, kind := range model.ShiftKinds {
			for _, name := range e.in.Roster[date][kind] {
				counts := e.totals[name]
				counts.Add(kind)
				e.totals[name] = counts
			}
		}
	}
	for name, counts := range e.totals {
		if counts.Total() <= limitedShiftThreshold {
			e.limited[name] = true
		}
	}
}

// parseAvailability converts the raw status strings into their parsed form
// once, so the availability rule never re-examines string prefixes.
func (e *evaluation) parseAvailability() {
	for name, byDate := range e.in.Availability {
		parsed := make(map[string]model.Availability, len(byDate))
		for date, raw := range byDate {
			parsed[date] = model.ParseAvailability(raw)
		}
		e.availability[name] = parsed
	}
}

// assignedOn reports whether the doctor works any shift on the given date.
func (e *evaluation) assignedOn(name, date string) bool {
	day, ok := e.in.Roster[date]
	if !ok {
		return false
	}
	for _, kind := range model.ShiftKinds {
		for _, assigned := range day[kind] {
			if assigned == name {
				return true
			}
		}
	}
	return false
}

// inShift reports whether the doctor works the given shift on the date.
func (e *evaluation) inShift(name, date string, kind model.ShiftKind) bool {
	day, ok := e.in.Roster[date]
	if !ok {
		return false
	}
	for _, assigned := range day[kind] {
		if assigned == name {
			return true
		}
	}
	return false
}

// hoursFor returns the doctor's total monthly shift-hours.
func (e *evaluation) hoursFor(name string) int {
	return e.totals[name].Total() * model.ShiftHours
}

// isWeekendOrHoliday reports whether a filtered date is a Saturday, a
// Sunday, or a holiday of any class.
func (e *evaluation) isWeekendOrHoliday(date string) bool {
	if _, ok := e.in.Holidays[date]; ok {
		return true
	}
	wd := e.times[date].Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// availabilityFor resolves the parsed availability for a doctor on a date.
// Absent entries mean fully available.
func (e *evaluation) availabilityFor(name, date string) model.Availability {
	return e.availability[name][date]
}

// excludedFromBalance reports whether the doctor sits outside the workload
// comparisons: unknown to the directory, limited-availability, or working
// to a contract quota.
func (e *evaluation) excludedFromBalance(name string) bool {
	if _, known := e.doctors[name]; !known {
		return true
	}
	return e.limited[name] || e.contract[name]
}

// excludedNames returns the sorted union of the limited-availability and
// contract doctors that appear in the filtered roster.
func (e *evaluation) excludedNames() []string {
	seen := make(map[string]bool)
	for name := range e.totals {
		if e.limited[name] || e.contract[name] {
			seen[name] = true
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func nextDay(t time.Time) string {
	return t.AddDate(0, 0, 1).Format(dateLayout)
}
