package calendar

import "time"

const dayKeyLayout = "2006-01-02"

// Holiday is one configured non-working date. Tables are data, versioned
// per jurisdiction, and injected into the Oracle so another jurisdiction
// can be substituted without touching aggregation code.
type Holiday struct {
	Year  int
	Month time.Month
	Day   int
}

// Table is the holiday configuration for one jurisdiction across the years
// it was compiled for.
type Table struct {
	Jurisdiction string
	Version      string
	Holidays     []Holiday
}

// Oracle answers working-day questions for a fixed jurisdiction. Dates in
// years the table does not cover fall back to weekday-only evaluation;
// CoversYear lets callers detect that limitation.
type Oracle struct {
	table        Table
	holidayDays  map[string]bool
	coveredYears map[int]bool
}

func NewOracle(table Table) *Oracle {
	holidayDays := make(map[string]bool, len(table.Holidays))
	coveredYears := make(map[int]bool)
	for _, holiday := range table.Holidays {
		date := time.Date(holiday.Year, holiday.Month, holiday.Day, 0, 0, 0, 0, time.UTC)
		holidayDays[date.Format(dayKeyLayout)] = true
		coveredYears[holiday.Year] = true
	}
	return &Oracle{
		table:        table,
		holidayDays:  holidayDays,
		coveredYears: coveredYears,
	}
}

func (oracle *Oracle) Jurisdiction() string {
	return oracle.table.Jurisdiction
}

func (oracle *Oracle) Version() string {
	return oracle.table.Version
}

// CoversYear reports whether the holiday table was compiled for the given
// year. Outside covered years IsWorkingDay degrades to weekday-only.
func (oracle *Oracle) CoversYear(year int) bool {
	return oracle.coveredYears[year]
}

func (oracle *Oracle) IsHoliday(date time.Time) bool {
	return oracle.holidayDays[dayKey(date)]
}

func (oracle *Oracle) IsWorkingDay(date time.Time) bool {
	weekday := date.Weekday()
	if weekday == time.Saturday || weekday == time.Sunday {
		return false
	}
	return !oracle.IsHoliday(date)
}

// WorkingDaysBetween counts the working days in [start, end] inclusive.
// Returns 0 when start is after end.
func (oracle *Oracle) WorkingDaysBetween(start time.Time, end time.Time) int {
	startDay := dateOnly(start)
	endDay := dateOnly(end)
	if startDay.After(endDay) {
		return 0
	}

	count := 0
	for day := startDay; !day.After(endDay); day = day.AddDate(0, 0, 1) {
		if oracle.IsWorkingDay(day) {
			count++
		}
	}
	return count
}

func dayKey(date time.Time) string {
	return dateOnly(date).Format(dayKeyLayout)
}

func dateOnly(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
