package calendar

// IsWeekday reports whether d falls Monday through Friday.
func IsWeekday(d Date) bool {
	return mondayIndex(d) < 5
}

// IsBusinessDay reports whether d is a weekday that is not a holiday.
func IsBusinessDay(d Date, overrides Overrides) bool {
	if !IsWeekday(d) {
		return false
	}
	_, holiday := HolidayName(d, overrides)
	return !holiday
}

// BusinessDaysInMonth counts the business days in d's month.
func BusinessDaysInMonth(d Date, overrides Overrides) int {
	n := 0
	end := d.MonthEnd()
	for day := d.FirstOfMonth(); !day.After(end); day = day.AddDays(1) {
		if IsBusinessDay(day, overrides) {
			n++
		}
	}
	return n
}
