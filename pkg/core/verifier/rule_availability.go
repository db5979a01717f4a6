package verifier

import "github.com/crestview-health/wardroster/pkg/core/model"

// availabilityViolations flags every assignment on a date-and-shift the
// doctor declared themselves unavailable for. Statuses were parsed once at
// evaluation setup; an absent entry means fully available.
func (e *evaluation) availabilityViolations() []AvailabilityViolation {
	var violations []AvailabilityViolation

	for _, date := range e.dates {
		for _, kind := range model.ShiftKinds {
			for _, name := range e.in.Roster[date][kind] {
				if e.availabilityFor(name, date).CanWork(kind) {
					continue
				}
				violations = append(violations, AvailabilityViolation{
					Doctor: name,
					Date:   date,
					Shift:  kind,
					Status: e.in.Availability[name][date],
				})
			}
		}
	}

	return violations
}
