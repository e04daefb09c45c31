package ports

import (
	"context"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// UpdateProfileInput is a partial profile update. Nil fields are left
// untouched. Role is carried so the policy can reject self-service role
// changes with a distinct error instead of silently ignoring them.
type UpdateProfileInput struct {
	Username     *string
	FirstName    *string
	LastName     *string
	Bio          *string
	Skills       *string
	ProfilePhoto *string
	LinkedInURL  *string
	GitHubURL    *string
	Website      *string
	Role         *string
}

// UserService defines profile and account-management use cases.
type UserService interface {
	Profile(ctx context.Context, actor authz.Actor) (*domain.User, error)
	UpdateProfile(ctx context.Context, actor authz.Actor, input UpdateProfileInput) (*domain.User, error)
	// List returns accounts per policy: all for admins, active only for
	// other authenticated actors.
	List(ctx context.Context, actor authz.Actor) ([]*domain.User, error)
	ChangeRole(ctx context.Context, actor authz.Actor, targetID int64, role string) (*domain.User, error)
	ToggleActive(ctx context.Context, actor authz.Actor, targetID int64) (*domain.User, error)
}
