package ports

import (
	"context"

	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// PostCounts is the aggregation view over the posts collection.
type PostCounts struct {
	Total       int64
	Published   int64
	Unpublished int64
	ByAuthor    map[int64]int64
}

// PostRepository defines persistence operations for blog posts.
// Listing returns the full candidate set; visibility narrowing is the
// service's job (explicit filter, testable without a database).
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id int64) (*domain.Post, error)
	Update(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
	// List returns all posts newest first.
	List(ctx context.Context) ([]*domain.Post, error)
	// Search returns posts whose title, content or tags match the query,
	// case-insensitive, newest first.
	Search(ctx context.Context, query string) ([]*domain.Post, error)
	Counts(ctx context.Context) (*PostCounts, error)
}
