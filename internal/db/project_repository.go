package db

import (
	"github.com/lgalvis/horario/internal/models"
	"gorm.io/gorm"
)

type ProjectRepository struct {
	database *gorm.DB
}

func NewProjectRepository(database *gorm.DB) *ProjectRepository {
	return &ProjectRepository{database: database}
}

func (repo *ProjectRepository) List() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	if err := repo.database.Order("name").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

func (repo *ProjectRepository) ExistsByName(name string) (bool, error) {
	var matched int64
	if err := repo.database.Model(&models.Project{}).
		Where("name = ?", name).
		Count(&matched).Error; err != nil {
		return false, err
	}
	return matched > 0, nil
}

func (repo *ProjectRepository) Add(project *models.Project) error {
	return repo.database.Create(project).Error
}

func (repo *ProjectRepository) Remove(name string) error {
	return repo.database.Where("name = ?", name).Delete(&models.Project{}).Error
}
