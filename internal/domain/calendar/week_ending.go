package calendar

import (
	"errors"
	"fmt"
	"time"
)

// DefaultWeekEnd is the designator used when callers have no preference.
const DefaultWeekEnd = "Sat"

var ErrInvalidWeekdayDesignator = errors.New("invalid weekday designator")

// weekdayAliases maps every accepted designator to its canonical weekday.
// Lookups are exact: no case folding, no prefixes.
var weekdayAliases = map[string]time.Weekday{
	"Mon":       time.Monday,
	"M":         time.Monday,
	"Monday":    time.Monday,
	"Tue":       time.Tuesday,
	"Tu":        time.Tuesday,
	"Tuesday":   time.Tuesday,
	"Wed":       time.Wednesday,
	"W":         time.Wednesday,
	"Wednesday": time.Wednesday,
	"Thu":       time.Thursday,
	"Th":        time.Thursday,
	"Thursday":  time.Thursday,
	"Fri":       time.Friday,
	"F":         time.Friday,
	"Friday":    time.Friday,
	"Sat":       time.Saturday,
	"Sa":        time.Saturday,
	"Saturday":  time.Saturday,
	"Sun":       time.Sunday,
	"Su":        time.Sunday,
	"Sunday":    time.Sunday,
}

// weekEndOffsets holds, per canonical weekday, how far a date's Monday-based
// weekday index is shifted before taking it mod 7 to find the week start.
var weekEndOffsets = map[time.Weekday]int{
	time.Monday:    6,
	time.Tuesday:   5,
	time.Wednesday: 4,
	time.Thursday:  3,
	time.Friday:    2,
	time.Saturday:  1,
	time.Sunday:    0,
}

// ParseWeekday resolves a designator such as "Sat", "Sa" or "Saturday".
func ParseWeekday(token string) (time.Weekday, error) {
	wd, ok := weekdayAliases[token]
	if !ok {
		return 0, fmt.Errorf("%w: cannot understand %q for week_ends_on", ErrInvalidWeekdayDesignator, token)
	}
	return wd, nil
}

// WeekEnding returns the last day of the 7-day week containing d, where weeks
// end on the weekday named by weekEndsOn. The result falls on that weekday and
// is never before d.
func WeekEnding(d Date, weekEndsOn string) (Date, error) {
	wd, err := ParseWeekday(weekEndsOn)
	if err != nil {
		return Date{}, err
	}
	shiftBack := (mondayIndex(d) + weekEndOffsets[wd]) % 7
	return d.AddDays(-shiftBack).AddDays(6), nil
}
