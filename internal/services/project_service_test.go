package services

import (
	"errors"
	"testing"
)

func TestProjectAddListRemove(t *testing.T) {
	service := NewProjectService(&fakeProjectRegistry{})

	if err := service.Add(adminSession(), "Cartografía"); err != nil {
		t.Fatalf("add project: %v", err)
	}
	if err := service.Add(adminSession(), "Cartografía"); !errors.Is(err, ErrProjectExists) {
		t.Fatalf("expected ErrProjectExists, got %v", err)
	}

	projects, err := service.List()
	if err != nil {
		t.Fatalf("list projects: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Cartografía" {
		t.Fatalf("unexpected projects: %+v", projects)
	}

	if err := service.Remove(adminSession(), "Cartografía"); err != nil {
		t.Fatalf("remove project: %v", err)
	}
	if err := service.Remove(adminSession(), "Cartografía"); !errors.Is(err, ErrProjectNotFound) {
		t.Fatalf("expected ErrProjectNotFound, got %v", err)
	}
}

func TestProjectManagementIsAdminOnly(t *testing.T) {
	service := NewProjectService(&fakeProjectRegistry{})

	if err := service.Add(memberSession(), "Cartografía"); !errors.Is(err, ErrProjectsForbidden) {
		t.Fatalf("expected ErrProjectsForbidden, got %v", err)
	}
	if err := service.Remove(memberSession(), "Cartografía"); !errors.Is(err, ErrProjectsForbidden) {
		t.Fatalf("expected ErrProjectsForbidden, got %v", err)
	}
	if err := service.Add(Session{}, "Cartografía"); !errors.Is(err, ErrProjectsForbidden) {
		t.Fatalf("expected ErrProjectsForbidden for anonymous session, got %v", err)
	}
}

func TestProjectAddRejectsEmptyName(t *testing.T) {
	service := NewProjectService(&fakeProjectRegistry{})

	if err := service.Add(adminSession(), ""); !errors.Is(err, ErrEmptyProjectName) {
		t.Fatalf("expected ErrEmptyProjectName, got %v", err)
	}
}
