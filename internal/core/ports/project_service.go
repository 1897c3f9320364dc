package ports

import (
	"context"

	"github.com/exalt/teamboard/internal/core/domain"
)

// ProjectInput is the DTO passed from the transport layer to ProjectService.
type ProjectInput struct {
	Title       string
	Company     string
	Description string
	Status      string
}

// ProjectService provides project CRUD keyed by title.
type ProjectService interface {
	Create(ctx context.Context, in ProjectInput) (*domain.Project, error)
	Update(ctx context.Context, title string, in ProjectInput) (*domain.Project, error)
	UpdateStatus(ctx context.Context, title, status string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	GetByTitle(ctx context.Context, title string) (*domain.Project, error)
	DeleteByTitle(ctx context.Context, title string) error
}
