package ports

import (
	"context"

	"github.com/exalt/teamboard/internal/core/domain"
)

// ProjectRepository is the persistence boundary for projects. Title
// uniqueness is enforced by the store via a unique index.
type ProjectRepository interface {
	FindByTitle(ctx context.Context, title string) (*domain.Project, error)
	FindAll(ctx context.Context) ([]domain.Project, error)
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	Update(ctx context.Context, title string, project *domain.Project) (*domain.Project, error)
	DeleteByTitle(ctx context.Context, title string) error
}
