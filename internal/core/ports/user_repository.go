package ports

import (
	"context"
	"time"

	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// UserCounts is the aggregation view over the users collection.
type UserCounts struct {
	Total    int64
	Active   int64
	Inactive int64
	ByRole   map[string]int64
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create assigns a new ID and inserts the user.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists profile fields; identity, role and active flag have
	// dedicated setters so the call sites stay explicit about intent.
	Update(ctx context.Context, user *domain.User) error
	// List returns accounts newest first. When activeOnly is set,
	// deactivated accounts are excluded.
	List(ctx context.Context, activeOnly bool) ([]*domain.User, error)
	SetRole(ctx context.Context, id int64, role domain.Role) error
	SetActive(ctx context.Context, id int64, active bool) error
	SetPassword(ctx context.Context, id int64, passwordHash string) error
	SetLastLogin(ctx context.Context, id int64, at time.Time) error
	Counts(ctx context.Context) (*UserCounts, error)
}
