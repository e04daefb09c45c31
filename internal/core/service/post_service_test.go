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

var (
	adminActor  = authz.Actor{ID: 1, Role: domain.RoleAdmin, Active: true, Authenticated: true}
	authorActor = authz.Actor{ID: 2, Role: domain.RoleMember, Active: true, Authenticated: true}
	otherActor  = authz.Actor{ID: 3, Role: domain.RoleMember, Active: true, Authenticated: true}
	viewerActor = authz.Actor{ID: 4, Role: domain.RoleViewer, Active: true, Authenticated: true}
)

func boolPtr(b bool) *bool { return &b }

func TestCreatePostDefaultsToPublished(t *testing.T) {
	posts := newStubPostRepo()
	svc := NewPostService(posts, zerolog.Nop())

	created, err := svc.Create(context.Background(), authorActor, ports.CreatePostInput{
		Title:   "hello",
		Content: "first post",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !created.Published {
		t.Fatalf("posts must default to published")
	}
	if created.AuthorID != authorActor.ID {
		t.Fatalf("author = %d, want %d", created.AuthorID, authorActor.ID)
	}

	draft, err := svc.Create(context.Background(), authorActor, ports.CreatePostInput{
		Title:     "draft",
		Content:   "wip",
		Published: boolPtr(false),
	})
	if err != nil {
		t.Fatalf("Create draft: %v", err)
	}
	if draft.Published {
		t.Fatalf("explicit is_published=false must stick")
	}
}

func TestCreatePostDenied(t *testing.T) {
	svc := NewPostService(newStubPostRepo(), zerolog.Nop())

	if _, err := svc.Create(context.Background(), viewerActor, ports.CreatePostInput{Title: "x", Content: "y"}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("viewer create: got %v", err)
	}
	if _, err := svc.Create(context.Background(), authz.Anonymous, ports.CreatePostInput{Title: "x", Content: "y"}); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("anonymous create: got %v", err)
	}
}

func TestGetPostHidesDrafts(t *testing.T) {
	posts := newStubPostRepo()
	draft := posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "draft", Published: false})
	svc := NewPostService(posts, zerolog.Nop())

	// A draft the actor may not see answers as not found, never forbidden.
	if _, err := svc.Get(context.Background(), otherActor, draft.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("stranger reading draft: got %v", err)
	}
	if _, err := svc.Get(context.Background(), authz.Anonymous, draft.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("anonymous reading draft: got %v", err)
	}

	if _, err := svc.Get(context.Background(), authorActor, draft.ID); err != nil {
		t.Fatalf("author reading own draft: %v", err)
	}
	if _, err := svc.Get(context.Background(), adminActor, draft.ID); err != nil {
		t.Fatalf("admin reading draft: %v", err)
	}
}

func TestListPostsVisibility(t *testing.T) {
	posts := newStubPostRepo()
	posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "public", Published: true})
	posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "draft", Published: false})
	svc := NewPostService(posts, zerolog.Nop())

	anon, err := svc.List(context.Background(), authz.Anonymous)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(anon) != 1 {
		t.Fatalf("anonymous sees %d posts, want 1", len(anon))
	}

	own, err := svc.List(context.Background(), authorActor)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("author sees %d posts, want 2", len(own))
	}
}

func TestUpdatePost(t *testing.T) {
	posts := newStubPostRepo()
	post := posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "old", Content: "body", Published: true})
	svc := NewPostService(posts, zerolog.Nop())

	updated, err := svc.Update(context.Background(), authorActor, post.ID, ports.UpdatePostInput{
		Title: strPtr("new"),
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "new" || updated.Content != "body" {
		t.Fatalf("partial update went wrong: %+v", updated)
	}

	// A visible post the actor may not touch answers as forbidden.
	if _, err := svc.Update(context.Background(), otherActor, post.ID, ports.UpdatePostInput{Title: strPtr("x")}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger updating published post: got %v", err)
	}
}

func TestUpdateDraftByStrangerIsNotFound(t *testing.T) {
	posts := newStubPostRepo()
	draft := posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "draft", Published: false})
	svc := NewPostService(posts, zerolog.Nop())

	// An invisible draft must not leak its existence through the error code.
	if _, err := svc.Update(context.Background(), otherActor, draft.ID, ports.UpdatePostInput{Title: strPtr("x")}); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("stranger updating draft: got %v", err)
	}
}

func TestDeletePost(t *testing.T) {
	posts := newStubPostRepo()
	post := posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "bye", Published: true})
	svc := NewPostService(posts, zerolog.Nop())

	if err := svc.Delete(context.Background(), otherActor, post.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger deleting: got %v", err)
	}
	if err := svc.Delete(context.Background(), adminActor, post.ID); err != nil {
		t.Fatalf("admin deleting: %v", err)
	}
	if _, err := svc.Get(context.Background(), adminActor, post.ID); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("deleted post must be gone, got %v", err)
	}
}

func TestTogglePublish(t *testing.T) {
	posts := newStubPostRepo()
	post := posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "flip", Published: true})
	svc := NewPostService(posts, zerolog.Nop())

	unpublished, err := svc.TogglePublish(context.Background(), authorActor, post.ID)
	if err != nil {
		t.Fatalf("TogglePublish: %v", err)
	}
	if unpublished.Published {
		t.Fatalf("toggle must unpublish")
	}

	republished, err := svc.TogglePublish(context.Background(), authorActor, post.ID)
	if err != nil {
		t.Fatalf("TogglePublish again: %v", err)
	}
	if !republished.Published {
		t.Fatalf("toggle must republish")
	}
}

func TestSearchPostsRespectsVisibility(t *testing.T) {
	posts := newStubPostRepo()
	posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "Go concurrency", Published: true})
	posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "Go drafts", Published: false})
	posts.seed(&domain.Post{AuthorID: authorActor.ID, Title: "Rust", Published: true})
	svc := NewPostService(posts, zerolog.Nop())

	anon, err := svc.Search(context.Background(), authz.Anonymous, "go")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(anon) != 1 {
		t.Fatalf("anonymous search sees %d posts, want 1", len(anon))
	}

	own, err := svc.Search(context.Background(), authorActor, "go")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("author search sees %d posts, want 2", len(own))
	}
}
