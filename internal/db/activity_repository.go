package db

import (
	"time"

	"github.com/lgalvis/horario/internal/models"
	"gorm.io/gorm"
)

type ActivityRepository struct {
	database *gorm.DB
}

func NewActivityRepository(database *gorm.DB) *ActivityRepository {
	return &ActivityRepository{database: database}
}

func (repo *ActivityRepository) Create(record *models.ActivityRecord) error {
	return repo.database.Create(record).Error
}

// FetchForReport returns records for the given persons whose date falls in
// [from, to], sorted person, date, project - the detail-row order reports
// expect.
func (repo *ActivityRepository) FetchForReport(persons []string, from time.Time, to time.Time) ([]models.ActivityRecord, error) {
	records := make([]models.ActivityRecord, 0)
	query := repo.database.
		Where("date >= ? AND date < ?", dayStart(from), dayStart(to).AddDate(0, 0, 1)).
		Order("person, date, project")
	if len(persons) > 0 {
		query = query.Where("person IN ?", persons)
	}
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (repo *ActivityRepository) FetchForPerson(person string, from time.Time, to time.Time) ([]models.ActivityRecord, error) {
	return repo.FetchForReport([]string{person}, from, to)
}

// Persons lists the distinct grouping keys present in the dataset.
func (repo *ActivityRepository) Persons() ([]string, error) {
	persons := make([]string, 0)
	if err := repo.database.Model(&models.ActivityRecord{}).
		Distinct("person").
		Order("person").
		Pluck("person", &persons).Error; err != nil {
		return nil, err
	}
	return persons, nil
}

func dayStart(value time.Time) time.Time {
	return time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
}
