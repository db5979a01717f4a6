package verifier

import (
	"sort"

	"github.com/crestview-health/wardroster/pkg/core/model"
)

// hourBalanceViolations produces one aggregate violation when the monthly
// hour totals of the qualifying doctors spread further apart than one
// shift-equivalent. Qualifying means positive hours and not excluded as
// limited-availability or contract; fewer than two qualifying doctors is a
// degenerate sample and produces nothing.
func (e *evaluation) hourBalanceViolations() []HourBalanceViolation {
	type load struct {
		name  string
		hours int
	}
	var loads []load

	for name := range e.totals {
		if e.excludedFromBalance(name) {
			continue
		}
		if hours := e.hoursFor(name); hours > 0 {
			loads = append(loads, load{name: name, hours: hours})
		}
	}
	if len(loads) < 2 {
		return nil
	}

	maxHours, minHours := loads[0].hours, loads[0].hours
	for _, l := range loads[1:] {
		if l.hours > maxHours {
			maxHours = l.hours
		}
		if l.hours < minHours {
			minHours = l.hours
		}
	}
	if maxHours-minHours <= model.ShiftHours {
		return nil
	}

	var maxDoctors, minDoctors []string
	for _, l := range loads {
		if l.hours == maxHours {
			maxDoctors = append(maxDoctors, l.name)
		}
		if l.hours == minHours {
			minDoctors = append(minDoctors, l.name)
		}
	}
	sort.Strings(maxDoctors)
	sort.Strings(minDoctors)

	return []HourBalanceViolation{{
		MaxHours:   maxHours,
		MinHours:   minHours,
		Variance:   maxHours - minHours,
		MaxDoctors: maxDoctors,
		MinDoctors: minDoctors,
		Excluded:   e.excludedNames(),
	}}
}
