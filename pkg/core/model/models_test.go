package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPreferenceMatches(t *testing.T) {
	assert.True(t, PreferNone.Matches(ShiftDay))
	assert.True(t, PreferNone.Matches(ShiftNight))

	assert.True(t, PreferDay.Matches(ShiftDay))
	assert.False(t, PreferDay.Matches(ShiftEvening))
	assert.False(t, PreferNight.Matches(ShiftDay))
	assert.True(t, PreferNight.Matches(ShiftNight))

	// Unrecognised preference values behave like no preference.
	assert.True(t, Preference("Weekends Only").Matches(ShiftDay))
}

func TestShiftCounts(t *testing.T) {
	var counts ShiftCounts
	counts.Add(ShiftDay)
	counts.Add(ShiftDay)
	counts.Add(ShiftNight)

	assert.Equal(t, 2, counts.Get(ShiftDay))
	assert.Equal(t, 0, counts.Get(ShiftEvening))
	assert.Equal(t, 1, counts.Get(ShiftNight))
	assert.Equal(t, 3, counts.Total())
}

func TestShiftKindIsValid(t *testing.T) {
	for _, kind := range ShiftKinds {
		assert.True(t, kind.IsValid())
	}
	assert.False(t, ShiftKind("Afternoon").IsValid())
}
