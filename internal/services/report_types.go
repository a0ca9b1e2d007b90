package services

import "time"

const DefaultReportTitle = "Activity Report"

// ReportRequest describes one report invocation. Start and End are
// inclusive calendar dates; Persons is the set of grouping keys to include.
type ReportRequest struct {
	Title   string
	Start   time.Time `validate:"required"`
	End     time.Time `validate:"required"`
	Persons []string  `validate:"required,min=1,dive,required"`
}

// Rollup aggregates hours for one grouping key with its working-day
// normalized average.
type Rollup struct {
	Key          string  `json:"key"`
	Hours        float64 `json:"hours"`
	AverageDaily float64 `json:"average_daily"`
}

// CrossTabCell is one non-zero activity x project total.
type CrossTabCell struct {
	Activity string  `json:"activity"`
	Project  string  `json:"project"`
	Hours    float64 `json:"hours"`
}

type PersonReport struct {
	Person            string         `json:"person"`
	TotalHours        float64        `json:"total_hours"`
	AverageDailyHours float64        `json:"average_daily_hours"`
	ByProject         []Rollup       `json:"by_project"`
	ByActivity        []Rollup       `json:"by_activity"`
	CrossTab          []CrossTabCell `json:"cross_tab"`
}

type DetailRow struct {
	Date       string  `json:"date"`
	Person     string  `json:"person"`
	Activity   string  `json:"activity"`
	Project    string  `json:"project"`
	Hours      float64 `json:"hours"`
	WorkingDay bool    `json:"working_day"`
}

type CalendarDay struct {
	Date       string `json:"date"`
	Weekday    string `json:"weekday"`
	WorkingDay bool   `json:"working_day"`
	Holiday    bool   `json:"holiday"`
}

type CalendarTotals struct {
	DaysInRange    int `json:"days_in_range"`
	WorkingDays    int `json:"working_days"`
	NonWorkingDays int `json:"non_working_days"`
}

type ReportSummary struct {
	TotalHours        float64  `json:"total_hours"`
	AverageDailyHours float64  `json:"average_daily_hours"`
	WorkingDays       int      `json:"working_days"`
	RecordCount       int      `json:"record_count"`
	Persons           []string `json:"persons"`
}

// ReportPayload is the complete, renderer-agnostic output of one report
// request. It is rebuilt per request and self-describing: rendering needs
// no further queries into the credential store or dataset.
type ReportPayload struct {
	ID             string         `json:"id"`
	Title          string         `json:"title"`
	Start          string         `json:"start"`
	End            string         `json:"end"`
	Jurisdiction   string         `json:"jurisdiction"`
	GeneratedAt    time.Time      `json:"generated_at"`
	GeneratedBy    string         `json:"generated_by"`
	Summary        ReportSummary  `json:"summary"`
	Persons        []PersonReport `json:"persons"`
	Details        []DetailRow    `json:"details"`
	Calendar       []CalendarDay  `json:"calendar"`
	CalendarTotals CalendarTotals `json:"calendar_totals"`
}
