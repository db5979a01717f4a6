package verifier

// contractViolations compares each contract doctor's actual per-kind shift
// counts against their contracted quota. Any mismatch, in either direction
// and for any shift kind, is one violation carrying the full triple.
// Doctors are visited in directory order so the details are deterministic.
func (e *evaluation) contractViolations() []ContractViolation {
	var violations []ContractViolation

	for _, doc := range e.in.Doctors {
		if !doc.IsContract() {
			continue
		}
		actual := e.totals[doc.Name]
		if actual == doc.ContractShifts {
			continue
		}
		violations = append(violations, ContractViolation{
			Doctor:   doc.Name,
			Expected: doc.ContractShifts,
			Actual:   actual,
		})
	}

	return violations
}
