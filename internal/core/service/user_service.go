package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamfolio/portfolio-api/internal/api/metrics"
	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

// UserService implements profile and account-management use cases.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Profile(ctx context.Context, actor authz.Actor) (*domain.User, error) {
	if !actor.Authenticated {
		return nil, domain.ErrNotAuthenticated
	}
	return s.users.FindByID(ctx, actor.ID)
}

// UpdateProfile applies a partial update to the actor's own profile. A role
// field in the payload is rejected outright: self-service role changes are a
// distinct denial, not a silently dropped field.
func (s *UserService) UpdateProfile(ctx context.Context, actor authz.Actor, input ports.UpdateProfileInput) (*domain.User, error) {
	if d := authz.CanUpdateProfile(actor, input.Role != nil); !d.Allowed {
		if input.Role != nil && actor.Authenticated {
			metrics.AuthzDenialsTotal.WithLabelValues("user", "manage-role").Inc()
			return nil, domain.ErrRoleChangeForbidden
		}
		return nil, d.Err(actor)
	}

	user, err := s.users.FindByID(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyString(&user.Username, input.Username)
	applyString(&user.FirstName, input.FirstName)
	applyString(&user.LastName, input.LastName)
	applyString(&user.Bio, input.Bio)
	applyString(&user.Skills, input.Skills)
	applyString(&user.ProfilePhoto, input.ProfilePhoto)
	applyString(&user.LinkedInURL, input.LinkedInURL)
	applyString(&user.GitHubURL, input.GitHubURL)
	applyString(&user.Website, input.Website)
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns accounts per policy: admins see everything, other
// authenticated actors see active accounts only.
func (s *UserService) List(ctx context.Context, actor authz.Actor) ([]*domain.User, error) {
	d, scope := authz.CanListUsers(actor)
	if !d.Allowed {
		return nil, d.Err(actor)
	}
	return s.users.List(ctx, scope.ActiveOnly)
}

func (s *UserService) ChangeRole(ctx context.Context, actor authz.Actor, targetID int64, role string) (*domain.User, error) {
	if d := authz.CanManageRole(actor); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("user", "manage-role").Inc()
		return nil, d.Err(actor)
	}
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.users.SetRole(ctx, targetID, domain.Role(role)); err != nil {
		return nil, err
	}
	target.Role = domain.Role(role)

	s.logger.Info().
		Int64("actor_id", actor.ID).
		Int64("user_id", targetID).
		Str("role", role).
		Msg("role changed")
	return target, nil
}

// ToggleActive flips an account's active flag. Self-deactivation is rejected
// as a validation failure and leaves the flag unchanged.
func (s *UserService) ToggleActive(ctx context.Context, actor authz.Actor, targetID int64) (*domain.User, error) {
	d := authz.CanToggleActive(actor, targetID)
	if !d.Allowed {
		if actor.IsAdmin() && targetID == actor.ID {
			return nil, domain.ErrSelfDeactivation
		}
		metrics.AuthzDenialsTotal.WithLabelValues("user", "manage-active").Inc()
		return nil, d.Err(actor)
	}

	target, err := s.users.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.users.SetActive(ctx, targetID, !target.Active); err != nil {
		return nil, err
	}
	target.Active = !target.Active

	s.logger.Info().
		Int64("actor_id", actor.ID).
		Int64("user_id", targetID).
		Bool("active", target.Active).
		Msg("active flag toggled")
	return target, nil
}
