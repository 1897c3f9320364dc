package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/exalt/teamboard/internal/core/domain"
	"github.com/exalt/teamboard/internal/core/ports"
)

// ProjectService implements project CRUD keyed by the unique title.
type ProjectService struct {
	projects ports.ProjectRepository
}

func NewProjectService(projects ports.ProjectRepository) *ProjectService {
	return &ProjectService{projects: projects}
}

func (s *ProjectService) Create(ctx context.Context, in ports.ProjectInput) (*domain.Project, error) {
	if _, err := s.projects.FindByTitle(ctx, in.Title); err == nil {
		return nil, domain.ErrProjectTitleExists
	} else if !errors.Is(err, domain.ErrProjectNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	return s.projects.Create(ctx, &domain.Project{
		Title:       in.Title,
		Company:     in.Company,
		Description: in.Description,
		Status:      in.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
}

// Update replaces all project fields. Renaming onto a title that already
// belongs to another project is a conflict.
func (s *ProjectService) Update(ctx context.Context, title string, in ports.ProjectInput) (*domain.Project, error) {
	project, err := s.projects.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	if in.Title != title {
		if _, err := s.projects.FindByTitle(ctx, in.Title); err == nil {
			return nil, domain.ErrProjectTitleExists
		} else if !errors.Is(err, domain.ErrProjectNotFound) {
			return nil, err
		}
	}

	project.Title = in.Title
	project.Company = in.Company
	project.Description = in.Description
	project.Status = in.Status
	project.UpdatedAt = time.Now().UTC()

	return s.projects.Update(ctx, title, project)
}

func (s *ProjectService) UpdateStatus(ctx context.Context, title, status string) (*domain.Project, error) {
	if strings.TrimSpace(status) == "" {
		return nil, domain.ErrEmptyStatus
	}

	project, err := s.projects.FindByTitle(ctx, title)
	if err != nil {
		return nil, err
	}

	project.Status = status
	project.UpdatedAt = time.Now().UTC()
	return s.projects.Update(ctx, title, project)
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.projects.FindAll(ctx)
}

func (s *ProjectService) GetByTitle(ctx context.Context, title string) (*domain.Project, error) {
	return s.projects.FindByTitle(ctx, title)
}

func (s *ProjectService) DeleteByTitle(ctx context.Context, title string) error {
	return s.projects.DeleteByTitle(ctx, title)
}
