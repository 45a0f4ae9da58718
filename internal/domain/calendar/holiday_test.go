package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHolidayName(t *testing.T) {
	tests := []struct {
		date     Date
		expected string
	}{
		{New(2018, 1, 1), NewYears},
		{New(2018, 1, 2), ""},
		{New(2018, 1, 15), MartinLutherKing},
		{New(2018, 1, 22), ""},
		{New(2018, 2, 19), PresidentsDay},
		{New(2018, 5, 21), ""},
		{New(2018, 5, 28), MemorialDay},
		{New(2019, 5, 27), MemorialDay},
		{New(2018, 9, 3), LaborDay},
		{New(2018, 9, 10), ""},
		{New(2018, 11, 22), Thanksgiving},
		{New(2018, 11, 23), DayAfterThanksgiving},
		{New(2019, 11, 28), Thanksgiving},
		{New(2018, 12, 24), ChristmasEve},
		{New(2018, 12, 25), Christmas},
		{New(2018, 12, 31), NewYearsEve},
		{New(2018, 7, 14), ""},
	}
	for _, tt := range tests {
		got, ok := HolidayName(tt.date, nil)
		assert.Equal(t, tt.expected, got, "date %s", tt.date)
		assert.Equal(t, tt.expected != "", ok, "date %s", tt.date)
	}
}

// The built-in July rule fires on Jul 3, not Jul 4.
func TestHolidayNameJulyThird(t *testing.T) {
	got, ok := HolidayName(New(2019, 7, 3), nil)
	assert.True(t, ok)
	assert.Equal(t, IndependenceDay, got)

	_, ok = HolidayName(New(2019, 7, 4), nil)
	assert.False(t, ok)
}

// November 2019 starts on a Friday, so the 4th Friday (Nov 22) precedes
// Thanksgiving (Nov 28). The rule keeps matching the 4th Friday.
func TestHolidayNameDayAfterThanksgivingFridayStart(t *testing.T) {
	got, ok := HolidayName(New(2019, 11, 22), nil)
	assert.True(t, ok)
	assert.Equal(t, DayAfterThanksgiving, got)

	_, ok = HolidayName(New(2019, 11, 29), nil)
	assert.False(t, ok)
}

func TestHolidayNameOverrides(t *testing.T) {
	overrides := Overrides{
		New(2018, 1, 2):   "Company Day",
		New(2018, 12, 25): "Winter Break",
	}

	got, ok := HolidayName(New(2018, 1, 2), overrides)
	assert.True(t, ok)
	assert.Equal(t, "Company Day", got)

	got, ok = HolidayName(New(2018, 12, 25), overrides)
	assert.True(t, ok)
	assert.Equal(t, "Winter Break", got)

	// exact date only, no recurrence
	_, ok = HolidayName(New(2019, 1, 2), overrides)
	assert.False(t, ok)

	got, _ = HolidayName(New(2018, 1, 1), overrides)
	assert.Equal(t, NewYears, got)
}

func TestNthWeekdayOfMonth(t *testing.T) {
	tests := []struct {
		date     Date
		expected int
	}{
		{New(2019, 11, 1), 1},
		{New(2019, 11, 8), 2},
		{New(2019, 11, 29), 5},
		{New(2019, 11, 28), 4},
		{New(2019, 11, 4), 1},
		{New(2018, 1, 31), 5},
		{New(2018, 2, 28), 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, NthWeekdayOfMonth(tt.date), "date %s", tt.date)
	}
}
