package verifier

import "github.com/crestview-health/wardroster/pkg/core/model"

// Category bundles the violations found for one rule: a count and the
// ordered detail records. Details are kept in ascending date order so the
// report is stable and legible.
type Category[T any] struct {
	Count   int `json:"count"`
	Details []T `json:"details"`
}

func newCategory[T any](details []T) Category[T] {
	return Category[T]{Count: len(details), Details: details}
}

// RestViolation records a breach of one of the rest-pattern rules: the
// doctor, the two or three dates involved, the shift labels, and a
// human-readable transition string.
type RestViolation struct {
	Doctor     string            `json:"doctor"`
	Dates      []string          `json:"dates"`
	Shifts     []model.ShiftKind `json:"shifts"`
	Transition string            `json:"transition"`
}

// PreferenceViolation records an assignment that conflicts with the
// doctor's standing shift preference.
type PreferenceViolation struct {
	Doctor     string           `json:"doctor"`
	Date       string           `json:"date"`
	Shift      model.ShiftKind  `json:"shift"`
	Preference model.Preference `json:"preference"`
}

// HolidayViolation records a senior doctor assigned on a long holiday.
type HolidayViolation struct {
	Doctor string             `json:"doctor"`
	Date   string             `json:"date"`
	Shift  model.ShiftKind    `json:"shift"`
	Class  model.HolidayClass `json:"class"`
}

// SeniorityHoursViolation is the single aggregate record produced when the
// senior group's mean hours exceed the junior group's.
type SeniorityHoursViolation struct {
	SeniorMeanHours float64 `json:"seniorMeanHours"`
	JuniorMeanHours float64 `json:"juniorMeanHours"`
	DifferenceHours float64 `json:"differenceHours"`
}

// HourBalanceViolation is the single aggregate record produced when monthly
// hours spread further apart than one shift-equivalent. Excluded lists the
// doctors left out of the comparison, for transparency in reporting.
type HourBalanceViolation struct {
	MaxHours   int      `json:"maxHours"`
	MinHours   int      `json:"minHours"`
	Variance   int      `json:"variance"`
	MaxDoctors []string `json:"maxDoctors"`
	MinDoctors []string `json:"minDoctors"`
	Excluded   []string `json:"excluded"`
}

// AvailabilityViolation records an assignment on a date the doctor marked
// themselves unavailable for. Status carries the raw status string.
type AvailabilityViolation struct {
	Doctor string          `json:"doctor"`
	Date   string          `json:"date"`
	Shift  model.ShiftKind `json:"shift"`
	Status string          `json:"status"`
}

// ContractViolation records a contract doctor whose actual per-kind counts
// diverge from the contracted quota in any direction.
type ContractViolation struct {
	Doctor   string            `json:"doctor"`
	Expected model.ShiftCounts `json:"expected"`
	Actual   model.ShiftCounts `json:"actual"`
}

// WeeklyCapViolation records one ISO week in which a doctor worked more
// shifts than their weekly cap allows.
type WeeklyCapViolation struct {
	Doctor string `json:"doctor"`
	Week   int    `json:"week"`
	Shifts int    `json:"shifts"`
	Cap    int    `json:"cap"`
	Excess int    `json:"excess"`
}

// Report is the full violation report for one month: one statically typed
// category per rule. Hard categories come first, then the soft ones.
type Report struct {
	// Hard categories.
	NightFollowedByWork      Category[RestViolation]           `json:"nightFollowedByWork"`
	EveningFollowedByDay     Category[RestViolation]           `json:"eveningFollowedByDay"`
	NightRestThenDay         Category[RestViolation]           `json:"nightRestThenDay"`
	PreferredToNight         Category[PreferenceViolation]     `json:"preferredToNight"`
	SeniorOnLongHoliday      Category[HolidayViolation]        `json:"seniorOnLongHoliday"`
	SeniorJuniorHours        Category[SeniorityHoursViolation] `json:"seniorJuniorHours"`
	SeniorJuniorWeekendHours Category[SeniorityHoursViolation] `json:"seniorJuniorWeekendHours"`
	Availability             Category[AvailabilityViolation]   `json:"availability"`
	Contract                 Category[ContractViolation]       `json:"contract"`
	WeeklyCap                Category[WeeklyCapViolation]      `json:"weeklyCap"`

	// Soft categories.
	Preference  Category[PreferenceViolation]  `json:"preference"`
	HourBalance Category[HourBalanceViolation] `json:"hourBalance"`
}

// HardTotal returns the summed count of all hard categories.
func (r *Report) HardTotal() int {
	return r.NightFollowedByWork.Count +
		r.EveningFollowedByDay.Count +
		r.NightRestThenDay.Count +
		r.PreferredToNight.Count +
		r.SeniorOnLongHoliday.Count +
		r.SeniorJuniorHours.Count +
		r.SeniorJuniorWeekendHours.Count +
		r.Availability.Count +
		r.Contract.Count +
		r.WeeklyCap.Count
}

// SoftTotal returns the summed count of all soft categories.
func (r *Report) SoftTotal() int {
	return r.Preference.Count + r.HourBalance.Count
}

// Total returns the grand total across all twelve categories.
func (r *Report) Total() int {
	return r.HardTotal() + r.SoftTotal()
}
