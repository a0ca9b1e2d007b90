package db

import (
	"testing"
	"time"

	"github.com/lgalvis/horario/internal/models"
)

func testDate(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestActivityRepositoryFetchForReportFiltersAndSorts(t *testing.T) {
	repo := NewActivityRepository(openTestDatabase(t))

	records := []models.ActivityRecord{
		{Date: testDate(2024, time.March, 5), Person: "laura", Activity: "Reuniones", Project: "Cartografía", Hours: 2},
		{Date: testDate(2024, time.March, 4), Person: "laura", Activity: "Trabajo autónomo", Project: "Análisis de Datos", Hours: 6},
		{Date: testDate(2024, time.March, 4), Person: "diego", Activity: "Reuniones", Project: "Cartografía", Hours: 3},
		{Date: testDate(2024, time.March, 20), Person: "laura", Activity: "Reuniones", Project: "Cartografía", Hours: 4},
		{Date: testDate(2024, time.March, 4), Person: "martha", Activity: "Reuniones", Project: "Cartografía", Hours: 1},
	}
	for index := range records {
		if err := repo.Create(&records[index]); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	fetched, err := repo.FetchForReport([]string{"laura", "diego"}, testDate(2024, time.March, 1), testDate(2024, time.March, 10))
	if err != nil {
		t.Fatalf("fetch for report: %v", err)
	}

	if len(fetched) != 3 {
		t.Fatalf("expected 3 records, got %d", len(fetched))
	}
	// Sorted by person, then date, then project.
	if fetched[0].Person != "diego" {
		t.Fatalf("expected diego first, got %s", fetched[0].Person)
	}
	if fetched[1].Person != "laura" || !fetched[1].Date.Equal(testDate(2024, time.March, 4)) {
		t.Fatalf("unexpected second record: %+v", fetched[1])
	}
	if fetched[2].Person != "laura" || !fetched[2].Date.Equal(testDate(2024, time.March, 5)) {
		t.Fatalf("unexpected third record: %+v", fetched[2])
	}
}

func TestActivityRepositoryFetchForReportInclusiveBounds(t *testing.T) {
	repo := NewActivityRepository(openTestDatabase(t))

	boundary := []models.ActivityRecord{
		{Date: testDate(2024, time.March, 1), Person: "laura", Activity: "Reuniones", Project: "Cartografía", Hours: 1},
		{Date: testDate(2024, time.March, 10), Person: "laura", Activity: "Reuniones", Project: "Cartografía", Hours: 1},
		{Date: testDate(2024, time.March, 11), Person: "laura", Activity: "Reuniones", Project: "Cartografía", Hours: 1},
	}
	for index := range boundary {
		if err := repo.Create(&boundary[index]); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	fetched, err := repo.FetchForReport([]string{"laura"}, testDate(2024, time.March, 1), testDate(2024, time.March, 10))
	if err != nil {
		t.Fatalf("fetch for report: %v", err)
	}
	if len(fetched) != 2 {
		t.Fatalf("expected both boundary dates included and the day after excluded, got %d records", len(fetched))
	}
}

func TestActivityRepositoryPersons(t *testing.T) {
	repo := NewActivityRepository(openTestDatabase(t))

	for _, person := range []string{"martha", "diego", "martha", "ana"} {
		record := models.ActivityRecord{Date: testDate(2024, time.March, 4), Person: person, Activity: "Reuniones", Project: "Cartografía", Hours: 2}
		if err := repo.Create(&record); err != nil {
			t.Fatalf("create record: %v", err)
		}
	}

	persons, err := repo.Persons()
	if err != nil {
		t.Fatalf("list persons: %v", err)
	}
	expected := []string{"ana", "diego", "martha"}
	if len(persons) != len(expected) {
		t.Fatalf("expected %d persons, got %d", len(expected), len(persons))
	}
	for index := range expected {
		if persons[index] != expected[index] {
			t.Fatalf("expected %s at position %d, got %s", expected[index], index, persons[index])
		}
	}
}

func TestProjectRepositoryAddListRemove(t *testing.T) {
	repo := NewProjectRepository(openTestDatabase(t))

	for _, name := range []string{"Cartografía", "Análisis de Datos"} {
		if err := repo.Add(&models.Project{Name: name}); err != nil {
			t.Fatalf("add project: %v", err)
		}
	}

	exists, err := repo.ExistsByName("Cartografía")
	if err != nil {
		t.Fatalf("exists check: %v", err)
	}
	if !exists {
		t.Fatal("expected project to exist")
	}

	if err := repo.Remove("Cartografía"); err != nil {
		t.Fatalf("remove project: %v", err)
	}

	projects, err := repo.List()
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Análisis de Datos" {
		t.Fatalf("unexpected projects after removal: %+v", projects)
	}
}
