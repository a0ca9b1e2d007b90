package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/lgalvis/horario/internal/models"
)

var (
	ErrSubmitForbidden  = errors.New("not allowed to submit records for that person")
	ErrViewForbidden    = errors.New("not allowed to view records for that person")
	ErrEmptyPerson      = errors.New("person must not be empty")
	ErrEmptyActivity    = errors.New("activity must not be empty")
	ErrEmptyProject     = errors.New("project must not be empty")
	ErrNonPositiveHours = errors.New("hours must be greater than zero")
)

type ActivityStore interface {
	Create(record *models.ActivityRecord) error
	FetchForPerson(person string, from time.Time, to time.Time) ([]models.ActivityRecord, error)
}

// ActivityService is the policy-gated write/read path into the
// time-allocation dataset.
type ActivityService struct {
	activities ActivityStore
}

func NewActivityService(activities ActivityStore) *ActivityService {
	return &ActivityService{activities: activities}
}

// Submit records one activity entry. Members may only submit for
// themselves; admins may submit for any person.
func (service *ActivityService) Submit(session Session, record models.ActivityRecord) error {
	if !session.Authenticated || !Can(session.Role, session.Username, OpSubmitActivity, record.Person) {
		return ErrSubmitForbidden
	}
	if record.Person == "" {
		return ErrEmptyPerson
	}
	if record.Activity == "" {
		return ErrEmptyActivity
	}
	if record.Project == "" {
		return ErrEmptyProject
	}
	if record.Hours <= 0 {
		return ErrNonPositiveHours
	}

	record.Date = dayOf(record.Date)
	if err := service.activities.Create(&record); err != nil {
		return fmt.Errorf("store activity record: %w", err)
	}
	return nil
}

// FetchVisible returns one person's records if the session may view them.
func (service *ActivityService) FetchVisible(session Session, person string, from time.Time, to time.Time) ([]models.ActivityRecord, error) {
	if !session.Authenticated || !Can(session.Role, session.Username, OpViewActivity, person) {
		return nil, ErrViewForbidden
	}
	return service.activities.FetchForPerson(person, dayOf(from), dayOf(to))
}
