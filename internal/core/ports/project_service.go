package ports

import (
	"context"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// CreateProjectInput carries the writable project fields. The owner is
// always the acting user.
type CreateProjectInput struct {
	Title       string
	Description string
	TechStack   string
	DemoLink    string
	SourceCode  string
	Image       string
}

// UpdateProjectInput is a partial project update; nil fields are left
// untouched.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	TechStack   *string
	DemoLink    *string
	SourceCode  *string
	Image       *string
}

// ProjectService defines portfolio use cases. Projects are publicly
// readable; mutation is owner-or-admin and denials are plain forbidden
// since project existence is not secret.
type ProjectService interface {
	Create(ctx context.Context, actor authz.Actor, input CreateProjectInput) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	Update(ctx context.Context, actor authz.Actor, id int64, input UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, actor authz.Actor, id int64) error
	Search(ctx context.Context, query string) ([]*domain.Project, error)
}
