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

// ProjectService implements portfolio use cases. Projects are public to
// read; mutation rights come from the shared policy.
type ProjectService struct {
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewProjectService(projects ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{projects: projects, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, actor authz.Actor, input ports.CreateProjectInput) (*domain.Project, error) {
	if d := authz.CanCreate(actor); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("project", "create").Inc()
		return nil, d.Err(actor)
	}

	now := time.Now().UTC()
	project := &domain.Project{
		UserID:      actor.ID,
		Title:       input.Title,
		Description: input.Description,
		TechStack:   input.TechStack,
		DemoLink:    input.DemoLink,
		SourceCode:  input.SourceCode,
		Image:       input.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}

	metrics.ProjectsCreatedTotal.Inc()
	s.logger.Info().Int64("project_id", created.ID).Int64("owner_id", actor.ID).Msg("project created")
	return created, nil
}

func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.projects.FindByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]*domain.Project, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	return authz.VisibleProjects(authz.Anonymous, projects), nil
}

func (s *ProjectService) Update(ctx context.Context, actor authz.Actor, id int64, input ports.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.modifiableProject(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.TechStack != nil {
		project.TechStack = *input.TechStack
	}
	if input.DemoLink != nil {
		project.DemoLink = *input.DemoLink
	}
	if input.SourceCode != nil {
		project.SourceCode = *input.SourceCode
	}
	if input.Image != nil {
		project.Image = *input.Image
	}
	project.UpdatedAt = time.Now().UTC()

	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (s *ProjectService) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	project, err := s.modifiableProject(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.projects.Delete(ctx, project.ID); err != nil {
		return err
	}
	s.logger.Info().Int64("project_id", id).Int64("actor_id", actor.ID).Msg("project deleted")
	return nil
}

func (s *ProjectService) Search(ctx context.Context, query string) ([]*domain.Project, error) {
	return s.projects.Search(ctx, query)
}

// modifiableProject loads a project and checks update/delete rights.
// Project existence is public, so a denial is a plain forbidden, never a
// masked not-found.
func (s *ProjectService) modifiableProject(ctx context.Context, actor authz.Actor, id int64) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d := authz.CanModify(actor, project); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("project", "update").Inc()
		return nil, d.Err(actor)
	}
	return project, nil
}
