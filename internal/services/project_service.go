package services

import (
	"errors"
	"fmt"

	"github.com/lgalvis/horario/internal/models"
)

var (
	ErrProjectsForbidden = errors.New("project management requires the admin role")
	ErrEmptyProjectName  = errors.New("project name must not be empty")
	ErrProjectExists     = errors.New("project already registered")
	ErrProjectNotFound   = errors.New("project not found")
)

type ProjectRegistry interface {
	List() ([]models.Project, error)
	ExistsByName(name string) (bool, error)
	Add(project *models.Project) error
	Remove(name string) error
}

type ProjectService struct {
	projects ProjectRegistry
}

func NewProjectService(projects ProjectRegistry) *ProjectService {
	return &ProjectService{projects: projects}
}

// List is not gated; project names are not sensitive and every form in the
// surrounding application shows them.
func (service *ProjectService) List() ([]models.Project, error) {
	return service.projects.List()
}

func (service *ProjectService) Add(session Session, name string) error {
	if !session.Authenticated || !Can(session.Role, session.Username, OpManageProjects, "") {
		return ErrProjectsForbidden
	}
	if name == "" {
		return ErrEmptyProjectName
	}

	exists, err := service.projects.ExistsByName(name)
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	if exists {
		return ErrProjectExists
	}
	if err := service.projects.Add(&models.Project{Name: name}); err != nil {
		return fmt.Errorf("add project: %w", err)
	}
	return nil
}

func (service *ProjectService) Remove(session Session, name string) error {
	if !session.Authenticated || !Can(session.Role, session.Username, OpManageProjects, "") {
		return ErrProjectsForbidden
	}

	exists, err := service.projects.ExistsByName(name)
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	if !exists {
		return ErrProjectNotFound
	}
	if err := service.projects.Remove(name); err != nil {
		return fmt.Errorf("remove project: %w", err)
	}
	return nil
}
