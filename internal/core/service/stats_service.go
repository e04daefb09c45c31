package service

import (
	"context"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

// StatsService implements the read-only aggregation facet. The detailed
// breakdown is admin-only; totals are public.
type StatsService struct {
	users    ports.UserRepository
	posts    ports.PostRepository
	projects ports.ProjectRepository
}

func NewStatsService(users ports.UserRepository, posts ports.PostRepository, projects ports.ProjectRepository) *StatsService {
	return &StatsService{users: users, posts: posts, projects: projects}
}

func (s *StatsService) Public(ctx context.Context) (*ports.PublicStats, error) {
	userCounts, err := s.users.Counts(ctx)
	if err != nil {
		return nil, err
	}
	postCounts, err := s.posts.Counts(ctx)
	if err != nil {
		return nil, err
	}
	projectCounts, err := s.projects.Counts(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.PublicStats{
		Users: userCounts.Total,
		// Only published posts count towards the public total.
		Posts:    postCounts.Published,
		Projects: projectCounts.Total,
	}, nil
}

func (s *StatsService) Admin(ctx context.Context, actor authz.Actor) (*ports.AdminStats, error) {
	if !actor.Authenticated {
		return nil, domain.ErrNotAuthenticated
	}
	if !actor.IsAdmin() {
		return nil, domain.ErrForbidden
	}

	userCounts, err := s.users.Counts(ctx)
	if err != nil {
		return nil, err
	}
	postCounts, err := s.posts.Counts(ctx)
	if err != nil {
		return nil, err
	}
	projectCounts, err := s.projects.Counts(ctx)
	if err != nil {
		return nil, err
	}

	out := &ports.AdminStats{}
	out.Users.Total = userCounts.Total
	out.Users.Active = userCounts.Active
	out.Users.Inactive = userCounts.Inactive
	out.Users.ByRole = userCounts.ByRole
	out.Posts.Total = postCounts.Total
	out.Posts.Published = postCounts.Published
	out.Posts.Unpublished = postCounts.Unpublished
	out.Posts.ByAuthor = postCounts.ByAuthor
	out.Projects.Total = projectCounts.Total
	out.Projects.ByOwner = projectCounts.ByOwner
	return out, nil
}
