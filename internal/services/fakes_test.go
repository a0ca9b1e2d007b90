package services

import (
	"sort"
	"time"

	"github.com/lgalvis/horario/internal/models"
	"gorm.io/gorm"
)

type fakeUserRepository struct {
	users  map[string]models.User
	nextID uint
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]models.User), nextID: 1}
}

func (repo *fakeUserRepository) CountUsers() (int64, error) {
	return int64(len(repo.users)), nil
}

func (repo *fakeUserRepository) CountAdmins() (int64, error) {
	count := int64(0)
	for _, user := range repo.users {
		if user.Role == models.RoleAdmin {
			count++
		}
	}
	return count, nil
}

func (repo *fakeUserRepository) FindByUsername(username string) (models.User, error) {
	user, exists := repo.users[username]
	if !exists {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

func (repo *fakeUserRepository) ExistsByUsername(username string) (bool, error) {
	_, exists := repo.users[username]
	return exists, nil
}

func (repo *fakeUserRepository) Create(user *models.User) error {
	user.ID = repo.nextID
	repo.nextID++
	repo.users[user.Username] = *user
	return nil
}

func (repo *fakeUserRepository) UpdatePassword(username string, passwordRecord string) error {
	user, exists := repo.users[username]
	if !exists {
		return gorm.ErrRecordNotFound
	}
	user.PasswordRecord = passwordRecord
	repo.users[username] = user
	return nil
}

func (repo *fakeUserRepository) UpdateByUsername(username string, updates map[string]any) error {
	user, exists := repo.users[username]
	if !exists {
		return gorm.ErrRecordNotFound
	}
	if role, ok := updates["role"].(string); ok {
		user.Role = role
	}
	if displayName, ok := updates["display_name"].(string); ok {
		user.DisplayName = displayName
	}
	repo.users[username] = user
	return nil
}

func (repo *fakeUserRepository) Delete(username string) error {
	delete(repo.users, username)
	return nil
}

func (repo *fakeUserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0, len(repo.users))
	for _, user := range repo.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

type fakeActivityStore struct {
	records     []models.ActivityRecord
	fetchCalled bool
}

func (store *fakeActivityStore) Create(record *models.ActivityRecord) error {
	record.ID = uint(len(store.records) + 1)
	store.records = append(store.records, *record)
	return nil
}

func (store *fakeActivityStore) FetchForReport(persons []string, from time.Time, to time.Time) ([]models.ActivityRecord, error) {
	store.fetchCalled = true

	requested := make(map[string]bool, len(persons))
	for _, person := range persons {
		requested[person] = true
	}

	matched := make([]models.ActivityRecord, 0)
	for _, record := range store.records {
		day := dayOf(record.Date)
		if day.Before(dayOf(from)) || day.After(dayOf(to)) {
			continue
		}
		if len(persons) > 0 && !requested[record.Person] {
			continue
		}
		matched = append(matched, record)
	}
	return matched, nil
}

func (store *fakeActivityStore) FetchForPerson(person string, from time.Time, to time.Time) ([]models.ActivityRecord, error) {
	return store.FetchForReport([]string{person}, from, to)
}

type fakeProjectRegistry struct {
	projects []models.Project
}

func (registry *fakeProjectRegistry) List() ([]models.Project, error) {
	return registry.projects, nil
}

func (registry *fakeProjectRegistry) ExistsByName(name string) (bool, error) {
	for _, project := range registry.projects {
		if project.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (registry *fakeProjectRegistry) Add(project *models.Project) error {
	project.ID = uint(len(registry.projects) + 1)
	registry.projects = append(registry.projects, *project)
	return nil
}

func (registry *fakeProjectRegistry) Remove(name string) error {
	kept := registry.projects[:0]
	for _, project := range registry.projects {
		if project.Name != name {
			kept = append(kept, project)
		}
	}
	registry.projects = kept
	return nil
}
