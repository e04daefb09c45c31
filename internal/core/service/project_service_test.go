package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

func TestCreateProject(t *testing.T) {
	projects := newStubProjectRepo()
	svc := NewProjectService(projects, zerolog.Nop())

	created, err := svc.Create(context.Background(), authorActor, ports.CreateProjectInput{
		Title:       "portfolio site",
		Description: "personal site",
		TechStack:   "Go, MongoDB, Redis",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.UserID != authorActor.ID {
		t.Fatalf("owner = %d, want %d", created.UserID, authorActor.ID)
	}

	if _, err := svc.Create(context.Background(), viewerActor, ports.CreateProjectInput{Title: "x", Description: "y"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("viewer create: got %v", err)
	}
	if _, err := svc.Create(context.Background(), authz.Anonymous, ports.CreateProjectInput{Title: "x", Description: "y"}); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("anonymous create: got %v", err)
	}
}

func TestGetProjectIsPublic(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.seed(&domain.Project{UserID: authorActor.ID, Title: "site"})
	svc := NewProjectService(projects, zerolog.Nop())

	if _, err := svc.Get(context.Background(), p.ID); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if _, err := svc.Get(context.Background(), 999); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("unknown project: got %v", err)
	}
}

func TestUpdateProject(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.seed(&domain.Project{UserID: authorActor.ID, Title: "old", Description: "desc"})
	svc := NewProjectService(projects, zerolog.Nop())

	updated, err := svc.Update(context.Background(), authorActor, p.ID, ports.UpdateProjectInput{
		Title: strPtr("new"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "new" || updated.Description != "desc" {
		t.Fatalf("partial update went wrong: %+v", updated)
	}

	// Project existence is public, so a denial is a plain forbidden.
	if _, err := svc.Update(context.Background(), otherActor, p.ID, ports.UpdateProjectInput{Title: strPtr("x")}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger updating: got %v", err)
	}

	if _, err := svc.Update(context.Background(), adminActor, p.ID, ports.UpdateProjectInput{Title: strPtr("moderated")}); err != nil {
		t.Fatalf("admin updating: %v", err)
	}
}

func TestDeleteProject(t *testing.T) {
	projects := newStubProjectRepo()
	p := projects.seed(&domain.Project{UserID: authorActor.ID, Title: "bye"})
	svc := NewProjectService(projects, zerolog.Nop())

	if err := svc.Delete(context.Background(), otherActor, p.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger deleting: got %v", err)
	}
	if err := svc.Delete(context.Background(), authorActor, p.ID); err != nil {
		t.Fatalf("owner deleting: %v", err)
	}
	if _, err := svc.Get(context.Background(), p.ID); !errors.Is(err, domain.ErrProjectNotFound) {
		t.Fatalf("deleted project must be gone, got %v", err)
	}
}

func TestSearchProjects(t *testing.T) {
	projects := newStubProjectRepo()
	projects.seed(&domain.Project{UserID: authorActor.ID, Title: "API server", TechStack: "Go"})
	projects.seed(&domain.Project{UserID: authorActor.ID, Title: "Frontend", TechStack: "React"})
	svc := NewProjectService(projects, zerolog.Nop())

	hits, err := svc.Search(context.Background(), "go")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(hits) != 1 || hits[0].Title != "API server" {
		t.Fatalf("search hits = %+v", hits)
	}
}
