package calendar

import "time"

// Holiday names returned by HolidayName.
const (
	NewYears             = "New Year's"
	MartinLutherKing     = "Martin Luther King"
	PresidentsDay        = "President's Day"
	MemorialDay          = "Memorial Day"
	IndependenceDay      = "4th of July"
	LaborDay             = "Labor Day"
	Thanksgiving         = "Thanksgiving"
	DayAfterThanksgiving = "Day After Thanksgiving"
	ChristmasEve         = "Christmas Eve"
	Christmas            = "Christmas"
	NewYearsEve          = "New Year's Eve"
)

// Overrides maps exact dates to holiday names. Entries win over the built-in
// rules. A nil map is valid.
type Overrides map[Date]string

type holidayRule struct {
	name    string
	matches func(d Date, nth int) bool
}

func fixedDay(month time.Month, day int) func(Date, int) bool {
	return func(d Date, _ int) bool {
		return d.Month == month && d.Day == day
	}
}

func nthWeekday(month time.Month, wd time.Weekday, n int) func(Date, int) bool {
	return func(d Date, nth int) bool {
		return d.Month == month && d.Weekday() == wd && nth == n
	}
}

// holidayRules is evaluated in order; the first match wins.
//
// The 4th of July rule is keyed to Jul 3 (the observed office closure) and
// Day After Thanksgiving is the 4th Friday of November, which is not the day
// after Thanksgiving in years where November starts on a Friday.
var holidayRules = []holidayRule{
	{NewYears, fixedDay(time.January, 1)},
	{MartinLutherKing, nthWeekday(time.January, time.Monday, 3)},
	{PresidentsDay, nthWeekday(time.February, time.Monday, 3)},
	{MemorialDay, func(d Date, _ int) bool {
		return d.Month == time.May && d.Weekday() == time.Monday && d.AddDays(7).Month != d.Month
	}},
	{IndependenceDay, fixedDay(time.July, 3)},
	{LaborDay, nthWeekday(time.September, time.Monday, 1)},
	{Thanksgiving, nthWeekday(time.November, time.Thursday, 4)},
	{DayAfterThanksgiving, nthWeekday(time.November, time.Friday, 4)},
	{ChristmasEve, fixedDay(time.December, 24)},
	{Christmas, fixedDay(time.December, 25)},
	{NewYearsEve, fixedDay(time.December, 31)},
}

// NthWeekdayOfMonth returns which occurrence of its weekday d is within its
// month: 1 for the first Monday, 2 for the second, and so on.
func NthWeekdayOfMonth(d Date) int {
	first := d.FirstOfMonth()
	fw, dw := mondayIndex(first), mondayIndex(d)
	var delta int
	if dw >= fw {
		delta = dw - fw
	} else {
		delta = 7 + dw - fw
	}
	firstSameWeekday := first.AddDays(delta)
	return d.DaysSince(firstSameWeekday)/7 + 1
}

// HolidayName returns the name of the holiday on d and true, or "" and false
// when d is not a holiday. overrides are consulted before the built-in rules.
func HolidayName(d Date, overrides Overrides) (string, bool) {
	if name, ok := overrides[d]; ok {
		return name, true
	}
	nth := NthWeekdayOfMonth(d)
	for _, r := range holidayRules {
		if r.matches(d, nth) {
			return r.name, true
		}
	}
	return "", false
}
