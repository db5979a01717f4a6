package model

import "strings"

// Raw availability statuses as they arrive from the availability collector.
// Partial unavailability is encoded as "Not Available: Day, Evening". The
// single-shift "Day Only" / "Evening Only" / "Night Only" forms are legacy
// and mean available for that shift alone.
const (
	StatusAvailable    = "Available"
	StatusNotAvailable = "Not Available"

	notAvailablePrefix = StatusNotAvailable + ":"
	onlySuffix         = " Only"
)

// Availability is the parsed form of a raw status string: the set of shift
// kinds the doctor cannot work on that date. An empty set means fully
// available.
type Availability struct {
	Unavailable map[ShiftKind]bool
}

// FullyAvailable reports whether no shift is blocked.
func (a Availability) FullyAvailable() bool {
	return len(a.Unavailable) == 0
}

// CanWork reports whether the doctor may be assigned the given shift kind.
func (a Availability) CanWork(kind ShiftKind) bool {
	return !a.Unavailable[kind]
}

// ParseAvailability converts a raw status string into an Availability.
// Unrecognised statuses parse as fully available: availability is advisory
// data and a malformed entry must not invent violations.
func ParseAvailability(raw string) Availability {
	status := strings.TrimSpace(raw)

	switch status {
	case "", StatusAvailable:
		return Availability{}
	case StatusNotAvailable:
		return Availability{Unavailable: map[ShiftKind]bool{
			ShiftDay:     true,
			ShiftEvening: true,
			ShiftNight:   true,
		}}
	}

	if rest, ok := strings.CutPrefix(status, notAvailablePrefix); ok {
		blocked := make(map[ShiftKind]bool)
		for _, token := range strings.Split(rest, ",") {
			kind := ShiftKind(strings.TrimSpace(token))
			if kind.IsValid() {
				blocked[kind] = true
			}
		}
		if len(blocked) == 0 {
			return Availability{}
		}
		return Availability{Unavailable: blocked}
	}

	// Legacy "<Shift> Only" forms block the other two shifts.
	if name, ok := strings.CutSuffix(status, onlySuffix); ok {
		allowed := ShiftKind(strings.TrimSpace(name))
		if allowed.IsValid() {
			blocked := make(map[ShiftKind]bool)
			for _, kind := range ShiftKinds {
				if kind != allowed {
					blocked[kind] = true
				}
			}
			return Availability{Unavailable: blocked}
		}
	}

	return Availability{}
}
