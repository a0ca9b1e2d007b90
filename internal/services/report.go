package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lgalvis/horario/internal/calendar"
	"github.com/lgalvis/horario/internal/models"
)

var (
	ErrReportForbidden = errors.New("report generation requires the admin role")
	ErrHiddenPersons   = errors.New("requested persons exceed the caller's visibility")
	ErrInvalidRange    = errors.New("start date must not be after end date")
	ErrEmptyDataset    = errors.New("no activity records match the report filters")
)

type ActivityReader interface {
	FetchForReport(persons []string, from time.Time, to time.Time) ([]models.ActivityRecord, error)
}

// ReportService turns a validated ReportRequest into an immutable
// ReportPayload. The policy gate runs before any data is read.
type ReportService struct {
	activities ActivityReader
	oracle     *calendar.Oracle
	validate   *validator.Validate
}

func NewReportService(activities ActivityReader, oracle *calendar.Oracle) *ReportService {
	return &ReportService{
		activities: activities,
		oracle:     oracle,
		validate:   validator.New(),
	}
}

func (service *ReportService) Generate(session Session, request ReportRequest) (ReportPayload, error) {
	if !session.Authenticated || !Can(session.Role, session.Username, OpGenerateReport, "") {
		return ReportPayload{}, ErrReportForbidden
	}
	if err := service.validate.Struct(request); err != nil {
		return ReportPayload{}, fmt.Errorf("invalid report request: %w", err)
	}

	start := dayOf(request.Start)
	end := dayOf(request.End)
	if start.After(end) {
		return ReportPayload{}, ErrInvalidRange
	}

	if visible := VisiblePersons(session, request.Persons); len(visible) != len(request.Persons) {
		return ReportPayload{}, ErrHiddenPersons
	}

	title := request.Title
	if title == "" {
		title = DefaultReportTitle
	}

	records, err := service.activities.FetchForReport(request.Persons, start, end)
	if err != nil {
		return ReportPayload{}, fmt.Errorf("fetch activity records: %w", err)
	}
	if len(records) == 0 {
		return ReportPayload{}, ErrEmptyDataset
	}

	workingDays := service.oracle.WorkingDaysBetween(start, end)

	totalHours := 0.0
	for _, record := range records {
		totalHours += record.Hours
	}

	payload := ReportPayload{
		ID:           uuid.NewString(),
		Title:        title,
		Start:        start.Format("2006-01-02"),
		End:          end.Format("2006-01-02"),
		Jurisdiction: service.oracle.Jurisdiction(),
		GeneratedAt:  time.Now().UTC(),
		GeneratedBy:  session.Username,
		Summary: ReportSummary{
			TotalHours:        totalHours,
			AverageDailyHours: averagePerWorkingDay(totalHours, workingDays),
			WorkingDays:       workingDays,
			RecordCount:       len(records),
			Persons:           sortedCopy(request.Persons),
		},
		Persons: service.buildPersonReports(records, workingDays),
		Details: service.buildDetailRows(records),
	}
	payload.Calendar, payload.CalendarTotals = service.buildCalendarAppendix(start, end)

	return payload, nil
}

func (service *ReportService) buildPersonReports(records []models.ActivityRecord, workingDays int) []PersonReport {
	type crossKey struct {
		activity string
		project  string
	}

	recordsByPerson := make(map[string][]models.ActivityRecord)
	for _, record := range records {
		recordsByPerson[record.Person] = append(recordsByPerson[record.Person], record)
	}

	persons := make([]string, 0, len(recordsByPerson))
	for person := range recordsByPerson {
		persons = append(persons, person)
	}
	sort.Strings(persons)

	reports := make([]PersonReport, 0, len(persons))
	for _, person := range persons {
		byProject := make(map[string]float64)
		byActivity := make(map[string]float64)
		crossTab := make(map[crossKey]float64)
		total := 0.0

		for _, record := range recordsByPerson[person] {
			total += record.Hours
			byProject[record.Project] += record.Hours
			byActivity[record.Activity] += record.Hours
			crossTab[crossKey{record.Activity, record.Project}] += record.Hours
		}

		cells := make([]CrossTabCell, 0, len(crossTab))
		for key, hours := range crossTab {
			if hours == 0 {
				continue
			}
			cells = append(cells, CrossTabCell{Activity: key.activity, Project: key.project, Hours: hours})
		}
		sort.Slice(cells, func(i, j int) bool {
			if cells[i].Activity != cells[j].Activity {
				return cells[i].Activity < cells[j].Activity
			}
			return cells[i].Project < cells[j].Project
		})

		reports = append(reports, PersonReport{
			Person:            person,
			TotalHours:        total,
			AverageDailyHours: averagePerWorkingDay(total, workingDays),
			ByProject:         buildRollups(byProject, workingDays),
			ByActivity:        buildRollups(byActivity, workingDays),
			CrossTab:          cells,
		})
	}
	return reports
}

func (service *ReportService) buildDetailRows(records []models.ActivityRecord) []DetailRow {
	sorted := make([]models.ActivityRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Person != sorted[j].Person {
			return sorted[i].Person < sorted[j].Person
		}
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Project < sorted[j].Project
	})

	rows := make([]DetailRow, 0, len(sorted))
	for _, record := range sorted {
		day := dayOf(record.Date)
		rows = append(rows, DetailRow{
			Date:       day.Format("2006-01-02"),
			Person:     record.Person,
			Activity:   record.Activity,
			Project:    record.Project,
			Hours:      record.Hours,
			WorkingDay: service.oracle.IsWorkingDay(day),
		})
	}
	return rows
}

func (service *ReportService) buildCalendarAppendix(start time.Time, end time.Time) ([]CalendarDay, CalendarTotals) {
	days := make([]CalendarDay, 0)
	totals := CalendarTotals{}

	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		working := service.oracle.IsWorkingDay(day)
		days = append(days, CalendarDay{
			Date:       day.Format("2006-01-02"),
			Weekday:    day.Weekday().String(),
			WorkingDay: working,
			Holiday:    service.oracle.IsHoliday(day),
		})
		totals.DaysInRange++
		if working {
			totals.WorkingDays++
		} else {
			totals.NonWorkingDays++
		}
	}
	return days, totals
}

// buildRollups drops zero-hour groups but never faults on them; they are a
// defensive case since record hours are validated positive.
func buildRollups(totals map[string]float64, workingDays int) []Rollup {
	rollups := make([]Rollup, 0, len(totals))
	for key, hours := range totals {
		if hours == 0 {
			continue
		}
		rollups = append(rollups, Rollup{
			Key:          key,
			Hours:        hours,
			AverageDaily: averagePerWorkingDay(hours, workingDays),
		})
	}
	sort.Slice(rollups, func(i, j int) bool {
		if rollups[i].Hours != rollups[j].Hours {
			return rollups[i].Hours > rollups[j].Hours
		}
		return rollups[i].Key < rollups[j].Key
	})
	return rollups
}

func averagePerWorkingDay(hours float64, workingDays int) float64 {
	if workingDays == 0 {
		return 0
	}
	return hours / float64(workingDays)
}

func sortedCopy(values []string) []string {
	result := make([]string, len(values))
	copy(result, values)
	sort.Strings(result)
	return result
}

func dayOf(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
