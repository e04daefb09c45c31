package ports

import (
	"context"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// CreatePostInput carries the writable post fields. The author is always the
// acting user; ownership is fixed at creation.
type CreatePostInput struct {
	Title      string
	Content    string
	CoverImage string
	Tags       string
	Published  *bool // nil = published, matching the model default
}

// UpdatePostInput is a partial post update; nil fields are left untouched.
type UpdatePostInput struct {
	Title      *string
	Content    *string
	CoverImage *string
	Tags       *string
	Published  *bool
}

// PostService defines blog use cases. Every read goes through the post
// visibility filter; denied detail reads surface as domain.ErrPostNotFound.
type PostService interface {
	Create(ctx context.Context, actor authz.Actor, input CreatePostInput) (*domain.Post, error)
	Get(ctx context.Context, actor authz.Actor, id int64) (*domain.Post, error)
	List(ctx context.Context, actor authz.Actor) ([]*domain.Post, error)
	Update(ctx context.Context, actor authz.Actor, id int64, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, actor authz.Actor, id int64) error
	TogglePublish(ctx context.Context, actor authz.Actor, id int64) (*domain.Post, error)
	Search(ctx context.Context, actor authz.Actor, query string) ([]*domain.Post, error)
}
