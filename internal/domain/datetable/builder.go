package datetable

import (
	"database/sql"
	"errors"
	"fmt"

	"date_dimension/internal/domain/calendar"
)

var ErrInvalidRange = errors.New("end date must not be before start date")

// Build returns one Row per day from start to end inclusive, using the
// built-in holiday rules only.
func Build(start, end calendar.Date) ([]Row, error) {
	return BuildWithOverrides(start, end, nil)
}

// BuildWithOverrides is Build with extra exact-date holidays.
//
// The walk begins on the 1st of start's month so BusinessDayOfMonth counts
// from the start of the month; days before start are not emitted.
func BuildWithOverrides(start, end calendar.Date, overrides calendar.Overrides) ([]Row, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}

	rows := make([]Row, 0, end.DaysSince(start)+1)
	busDaysInMonth := make(map[int]int) // keyed by YYYYMM
	busDayOfMonth := 0

	for d := start.FirstOfMonth(); !d.After(end); d = d.AddDays(1) {
		ym := d.YearMonth()
		if d.Day == 1 {
			busDayOfMonth = 0
		}
		if _, ok := busDaysInMonth[ym]; !ok {
			busDaysInMonth[ym] = calendar.BusinessDaysInMonth(d, overrides)
		}

		holiday, isHoliday := calendar.HolidayName(d, overrides)
		isWeekday := calendar.IsWeekday(d)
		isWorkday := isWeekday && !isHoliday
		if isWorkday {
			busDayOfMonth++
		}
		if d.Before(start) {
			continue
		}

		weekEnding, err := calendar.WeekEnding(d, "Saturday")
		if err != nil {
			return nil, err
		}
		quarter := (int(d.Month)-1)/3 + 1

		rows = append(rows, Row{
			DateID:              len(rows),
			DateInt:             d.Int(),
			Date:                d,
			Year:                d.Year,
			QuarterInt:          quarter,
			Quarter:             fmt.Sprintf("Q%d", quarter),
			MonthInt:            int(d.Month),
			Month:               d.Month.String(),
			MonthEnd:            d.MonthEnd(),
			DayOfMonth:          d.Day,
			WeekEnding:          weekEnding,
			DayOfWeekInt:        int(d.Weekday()),
			DayOfWeek:           d.Weekday().String(),
			YearMonth:           ym,
			Holiday:             sql.NullString{String: holiday, Valid: isHoliday},
			IsWeekday:           isWeekday,
			IsHoliday:           isHoliday,
			IsWorkday:           isWorkday,
			NumWeekdays:         boolToInt(isWeekday),
			NumHolidays:         boolToInt(isHoliday),
			NumWorkdays:         boolToInt(isWorkday),
			WeekNum:             d.ISOWeek(),
			BusinessDayOfMonth:  busDayOfMonth,
			BusinessDaysInMonth: busDaysInMonth[ym],
		})
	}
	return rows, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
