// Package export writes date dimension rows as CSV for warehouse loaders.
package export

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"date_dimension/internal/domain/datetable"

	"github.com/gocarina/gocsv"
)

// record is the flat CSV shape of a datetable.Row. Column order follows
// datetable.Columns. Flags are written as Yes/No; unset values are empty.
type record struct {
	DateID               int    `csv:"date_id"`
	DateInt              int    `csv:"date_int"`
	Date                 string `csv:"date"`
	Year                 int    `csv:"year"`
	QuarterInt           int    `csv:"quarter_int"`
	Quarter              string `csv:"quarter"`
	MonthInt             int    `csv:"month_int"`
	Month                string `csv:"month"`
	MonthEnd             string `csv:"month_end"`
	DayOfMonth           int    `csv:"day_of_month"`
	WeekEnding           string `csv:"week_ending"`
	DayOfWeekInt         int    `csv:"day_of_week_int"`
	DayOfWeek            string `csv:"day_of_week"`
	YearMonth            int    `csv:"year_month"`
	Holiday              string `csv:"holiday"`
	IsWeekday            string `csv:"is_weekday"`
	IsHoliday            string `csv:"is_holiday"`
	IsWorkday            string `csv:"is_workday"`
	NumWeekdays          int    `csv:"num_weekdays"`
	NumHolidays          int    `csv:"num_holidays"`
	NumWorkdays          int    `csv:"num_workdays"`
	WeekNum              int    `csv:"week_num"`
	WeekNumOfYear        string `csv:"week_num_of_year"`
	WeeksRemainingInYear string `csv:"weeks_remaining_in_year"`
	BusinessDayOfMonth   int    `csv:"business_day_of_month"`
	BusinessDaysInMonth  int    `csv:"business_days_in_month"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func nullInt(valid bool, v int64) string {
	if !valid {
		return ""
	}
	return strconv.FormatInt(v, 10)
}

func toRecord(r *datetable.Row) *record {
	return &record{
		DateID:               r.DateID,
		DateInt:              r.DateInt,
		Date:                 r.Date.String(),
		Year:                 r.Year,
		QuarterInt:           r.QuarterInt,
		Quarter:              r.Quarter,
		MonthInt:             r.MonthInt,
		Month:                r.Month,
		MonthEnd:             r.MonthEnd.String(),
		DayOfMonth:           r.DayOfMonth,
		WeekEnding:           r.WeekEnding.String(),
		DayOfWeekInt:         r.DayOfWeekInt,
		DayOfWeek:            r.DayOfWeek,
		YearMonth:            r.YearMonth,
		Holiday:              r.Holiday.String,
		IsWeekday:            yesNo(r.IsWeekday),
		IsHoliday:            yesNo(r.IsHoliday),
		IsWorkday:            yesNo(r.IsWorkday),
		NumWeekdays:          r.NumWeekdays,
		NumHolidays:          r.NumHolidays,
		NumWorkdays:          r.NumWorkdays,
		WeekNum:              r.WeekNum,
		WeekNumOfYear:        nullInt(r.WeekNumOfYear.Valid, r.WeekNumOfYear.Int64),
		WeeksRemainingInYear: nullInt(r.WeeksRemainingInYear.Valid, r.WeeksRemainingInYear.Int64),
		BusinessDayOfMonth:   r.BusinessDayOfMonth,
		BusinessDaysInMonth:  r.BusinessDaysInMonth,
	}
}

// WriteCSV writes rows, with a header line, to w.
func WriteCSV(w io.Writer, rows []datetable.Row) error {
	records := make([]*record, len(rows))
	for i := range rows {
		records[i] = toRecord(&rows[i])
	}
	if err := gocsv.Marshal(records, w); err != nil {
		return fmt.Errorf("error writing date table csv: %w", err)
	}
	return nil
}

// WriteCSVFile replaces the file at path with the CSV form of rows.
func WriteCSVFile(path string, rows []datetable.Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating csv file: %w", err)
	}
	if err := WriteCSV(f, rows); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
