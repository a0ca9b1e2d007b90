package db

import (
	"github.com/lgalvis/horario/internal/models"
	"gorm.io/gorm"
)

type UserRepository struct {
	database *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{database: database}
}

func (repo *UserRepository) CountUsers() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (repo *UserRepository) CountAdmins() (int64, error) {
	var count int64
	if err := repo.database.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByUsername matches the username exactly; usernames are case-sensitive.
func (repo *UserRepository) FindByUsername(username string) (models.User, error) {
	var user models.User
	if err := repo.database.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (repo *UserRepository) ExistsByUsername(username string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *UserRepository) Create(user *models.User) error {
	return repo.database.Create(user).Error
}

func (repo *UserRepository) UpdatePassword(username string, passwordRecord string) error {
	return repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Update("password_record", passwordRecord).Error
}

func (repo *UserRepository) UpdateByUsername(username string, updates map[string]any) error {
	return repo.database.Model(&models.User{}).
		Where("username = ?", username).
		Updates(updates).Error
}

func (repo *UserRepository) Delete(username string) error {
	return repo.database.Where("username = ?", username).Delete(&models.User{}).Error
}

func (repo *UserRepository) List() ([]models.User, error) {
	users := make([]models.User, 0)
	if err := repo.database.Order("username").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
