// Package datetable materializes a per-day date dimension table.
package datetable

import (
	"database/sql"

	"date_dimension/internal/domain/calendar"
)

// Row is one calendar day of the date dimension. DateInt is the natural key.
type Row struct {
	DateID               int // zero-based position in the built sequence
	DateInt              int // YYYYMMDD
	Date                 calendar.Date
	Year                 int
	QuarterInt           int
	Quarter              string // "Q1".."Q4"
	MonthInt             int
	Month                string
	MonthEnd             calendar.Date
	DayOfMonth           int
	WeekEnding           calendar.Date // weeks end on Saturday
	DayOfWeekInt         int           // 0 = Sunday .. 6 = Saturday
	DayOfWeek            string
	YearMonth            int // YYYYMM
	Holiday              sql.NullString
	IsWeekday            bool
	IsHoliday            bool
	IsWorkday            bool
	NumWeekdays          int
	NumHolidays          int
	NumWorkdays          int
	WeekNum              int           // ISO week
	WeekNumOfYear        sql.NullInt64 // reserved, never populated
	WeeksRemainingInYear sql.NullInt64 // reserved, never populated
	BusinessDayOfMonth   int
	BusinessDaysInMonth  int
}

// Columns lists the sink column names in the order returned by Row.Values.
var Columns = []string{
	"date_id",
	"date_int",
	"date",
	"year",
	"quarter_int",
	"quarter",
	"month_int",
	"month",
	"month_end",
	"day_of_month",
	"week_ending",
	"day_of_week_int",
	"day_of_week",
	"year_month",
	"holiday",
	"is_weekday",
	"is_holiday",
	"is_workday",
	"num_weekdays",
	"num_holidays",
	"num_workdays",
	"week_num",
	"week_num_of_year",
	"weeks_remaining_in_year",
	"business_day_of_month",
	"business_days_in_month",
}

// Values returns the column values of r, matching Columns.
func (r *Row) Values() []any {
	return []any{
		r.DateID,
		r.DateInt,
		r.Date,
		r.Year,
		r.QuarterInt,
		r.Quarter,
		r.MonthInt,
		r.Month,
		r.MonthEnd,
		r.DayOfMonth,
		r.WeekEnding,
		r.DayOfWeekInt,
		r.DayOfWeek,
		r.YearMonth,
		r.Holiday,
		r.IsWeekday,
		r.IsHoliday,
		r.IsWorkday,
		r.NumWeekdays,
		r.NumHolidays,
		r.NumWorkdays,
		r.WeekNum,
		r.WeekNumOfYear,
		r.WeeksRemainingInYear,
		r.BusinessDayOfMonth,
		r.BusinessDaysInMonth,
	}
}

// ScanTargets returns pointers to the fields of r, matching Columns.
func (r *Row) ScanTargets() []any {
	return []any{
		&r.DateID,
		&r.DateInt,
		&r.Date,
		&r.Year,
		&r.QuarterInt,
		&r.Quarter,
		&r.MonthInt,
		&r.Month,
		&r.MonthEnd,
		&r.DayOfMonth,
		&r.WeekEnding,
		&r.DayOfWeekInt,
		&r.DayOfWeek,
		&r.YearMonth,
		&r.Holiday,
		&r.IsWeekday,
		&r.IsHoliday,
		&r.IsWorkday,
		&r.NumWeekdays,
		&r.NumHolidays,
		&r.NumWorkdays,
		&r.WeekNum,
		&r.WeekNumOfYear,
		&r.WeeksRemainingInYear,
		&r.BusinessDayOfMonth,
		&r.BusinessDaysInMonth,
	}
}
