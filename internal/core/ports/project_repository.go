package ports

import (
	"context"

	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// ProjectCounts is the aggregation view over the projects collection.
type ProjectCounts struct {
	Total   int64
	ByOwner map[int64]int64
}

// ProjectRepository defines persistence operations for portfolio projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id int64) (*domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id int64) error
	// List returns all projects newest first.
	List(ctx context.Context) ([]*domain.Project, error)
	// Search returns projects whose title, description or tech stack match
	// the query, case-insensitive, newest first.
	Search(ctx context.Context, query string) ([]*domain.Project, error)
	Counts(ctx context.Context) (*ProjectCounts, error)
}
