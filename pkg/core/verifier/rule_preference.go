package verifier

import "github.com/crestview-health/wardroster/pkg/core/model"

// isHardNightMismatch reports whether an assignment is the hard carve-out:
// a Day Only or Evening Only doctor placed on a Night shift.
func isHardNightMismatch(pref model.Preference, kind model.ShiftKind) bool {
	return kind == model.ShiftNight &&
		(pref == model.PreferDay || pref == model.PreferEvening)
}

// preferenceViolations flags assignments that conflict with a doctor's
// preference, except those covered by the hard Night carve-out.
func (e *evaluation) preferenceViolations() []PreferenceViolation {
	var violations []PreferenceViolation

	for _, date := range e.dates {
		for _, kind := range model.ShiftKinds {
			for _, name := range e.in.Roster[date][kind] {
				doc, known := e.doctors[name]
				if !known || doc.Preference.Matches(kind) {
					continue
				}
				if isHardNightMismatch(doc.Preference, kind) {
					continue
				}
				violations = append(violations, PreferenceViolation{
					Doctor:     name,
					Date:       date,
					Shift:      kind,
					Preference: doc.Preference,
				})
			}
		}
	}

	return violations
}

// preferredToNight flags Day Only and Evening Only doctors assigned to a
// Night shift. Always hard, carved out of the generic preference category.
func (e *evaluation) preferredToNight() []PreferenceViolation {
	var violations []PreferenceViolation

	for _, date := range e.dates {
		for _, name := range e.in.Roster[date][model.ShiftNight] {
			doc, known := e.doctors[name]
			if !known || !isHardNightMismatch(doc.Preference, model.ShiftNight) {
				continue
			}
			violations = append(violations, PreferenceViolation{
				Doctor:     name,
				Date:       date,
				Shift:      model.ShiftNight,
				Preference: doc.Preference,
			})
		}
	}

	return violations
}
