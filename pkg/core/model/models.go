package model

// ShiftKind identifies one of the three fixed 8-hour shift blocks in a day.
type ShiftKind string

const (
	ShiftDay     ShiftKind = "Day"
	ShiftEvening ShiftKind = "Evening"
	ShiftNight   ShiftKind = "Night"
)

// ShiftKinds lists all shift kinds in their fixed daily order.
var ShiftKinds = []ShiftKind{ShiftDay, ShiftEvening, ShiftNight}

// ShiftHours is the length of every shift block in hours.
const ShiftHours = 8

func (k ShiftKind) IsValid() bool {
	return k == ShiftDay || k == ShiftEvening || k == ShiftNight
}

// Seniority distinguishes senior doctors from junior doctors.
type Seniority string

const (
	Senior Seniority = "Senior"
	Junior Seniority = "Junior"
)

// Preference is a doctor's standing shift preference. The empty string means
// no preference.
type Preference string

const (
	PreferNone    Preference = ""
	PreferDay     Preference = "Day Only"
	PreferEvening Preference = "Evening Only"
	PreferNight   Preference = "Night Only"
)

// PreferredShift returns the shift kind a preference names, and false for no
// preference or an unrecognised value.
func (p Preference) PreferredShift() (ShiftKind, bool) {
	switch p {
	case PreferDay:
		return ShiftDay, true
	case PreferEvening:
		return ShiftEvening, true
	case PreferNight:
		return ShiftNight, true
	}
	return "", false
}

// Matches reports whether the assigned shift satisfies the preference.
// No preference matches every shift.
func (p Preference) Matches(kind ShiftKind) bool {
	preferred, ok := p.PreferredShift()
	if !ok {
		return true
	}
	return preferred == kind
}

// ShiftCounts holds a per-kind shift count triple.
type ShiftCounts struct {
	Day     int `json:"day" yaml:"day"`
	Evening int `json:"evening" yaml:"evening"`
	Night   int `json:"night" yaml:"night"`
}

// Get returns the count for the given shift kind.
func (c ShiftCounts) Get(kind ShiftKind) int {
	switch kind {
	case ShiftDay:
		return c.Day
	case ShiftEvening:
		return c.Evening
	case ShiftNight:
		return c.Night
	}
	return 0
}

// Add increments the count for the given shift kind.
func (c *ShiftCounts) Add(kind ShiftKind) {
	switch kind {
	case ShiftDay:
		c.Day++
	case ShiftEvening:
		c.Evening++
	case ShiftNight:
		c.Night++
	}
}

// Total returns the sum across all shift kinds.
func (c ShiftCounts) Total() int {
	return c.Day + c.Evening + c.Night
}

// Doctor is one entry in the doctor directory. Names are unique and are the
// foreign key used by the roster and the availability map.
type Doctor struct {
	Name             string      `json:"name" yaml:"name"`
	Seniority        Seniority   `json:"seniority" yaml:"seniority"`
	Preference       Preference  `json:"preference,omitempty" yaml:"preference,omitempty"`
	Contract         bool        `json:"contract,omitempty" yaml:"contract,omitempty"`
	ContractShifts   ShiftCounts `json:"contractShifts,omitempty" yaml:"contractShifts,omitempty"`
	MaxShiftsPerWeek int         `json:"maxShiftsPerWeek,omitempty" yaml:"maxShiftsPerWeek,omitempty"`
}

// IsContract reports whether the doctor works to an exact monthly shift
// quota. ContractShifts is only meaningful when this is true.
func (d Doctor) IsContract() bool {
	return d.Contract
}

// DayAssignments maps each shift kind to the ordered doctors working it.
type DayAssignments map[ShiftKind][]string

// Roster maps ISO dates (YYYY-MM-DD) to that day's assignments. The format
// is fixed-width, so lexicographic order is calendar order. Keys that do not
// parse as dates (the reserved metadata key among them) carry no schedule
// data and are skipped by evaluation.
type Roster map[string]DayAssignments

// MetadataKey is the reserved roster key that carries non-schedule metadata
// such as the roster's source year.
const MetadataKey = "metadata"

// HolidayClass classifies a holiday date. Only HolidayLong gets special
// treatment by the rules; any other non-empty class still marks the date as
// a holiday.
type HolidayClass string

const (
	// HolidayLong marks an extended holiday.
	HolidayLong HolidayClass = "Long"
	// HolidayShort marks an ordinary single-day holiday.
	HolidayShort HolidayClass = "Short"
)

// HolidayMap maps ISO dates to their holiday class. Absent dates are not
// holidays.
type HolidayMap map[string]HolidayClass

// AvailabilityMap maps doctor names to per-date raw availability statuses.
// An absent doctor or date means fully available.
type AvailabilityMap map[string]map[string]string
