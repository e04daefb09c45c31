package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/teamfolio/portfolio-api/internal/api/middleware"
	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

type stubPostService struct {
	createFn func(ctx context.Context, actor authz.Actor, input ports.CreatePostInput) (*domain.Post, error)
	getFn    func(ctx context.Context, actor authz.Actor, id int64) (*domain.Post, error)
	listFn   func(ctx context.Context, actor authz.Actor) ([]*domain.Post, error)
}

func (s *stubPostService) Create(ctx context.Context, actor authz.Actor, input ports.CreatePostInput) (*domain.Post, error) {
	return s.createFn(ctx, actor, input)
}

func (s *stubPostService) Get(ctx context.Context, actor authz.Actor, id int64) (*domain.Post, error) {
	return s.getFn(ctx, actor, id)
}

func (s *stubPostService) List(ctx context.Context, actor authz.Actor) ([]*domain.Post, error) {
	return s.listFn(ctx, actor)
}

func (s *stubPostService) Update(context.Context, authz.Actor, int64, ports.UpdatePostInput) (*domain.Post, error) {
	return nil, nil
}

func (s *stubPostService) Delete(context.Context, authz.Actor, int64) error { return nil }

func (s *stubPostService) TogglePublish(context.Context, authz.Actor, int64) (*domain.Post, error) {
	return nil, nil
}

func (s *stubPostService) Search(context.Context, authz.Actor, string) ([]*domain.Post, error) {
	return nil, nil
}

func TestPostHandler_Create_Success(t *testing.T) {
	actor := authz.Actor{ID: 2, Role: domain.RoleMember, Active: true, Authenticated: true}
	stub := &stubPostService{
		createFn: func(_ context.Context, a authz.Actor, input ports.CreatePostInput) (*domain.Post, error) {
			if a.ID != actor.ID {
				t.Fatalf("actor = %+v", a)
			}
			return &domain.Post{ID: 1, AuthorID: a.ID, Title: input.Title, Content: input.Content, Tags: input.Tags, Published: true}, nil
		},
	}
	h := NewPostHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/posts",
		`{"title":"hello","content":"first post","tags":"go, web"}`)
	c.Set(middleware.ContextKeyActor, actor)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	tags, ok := resp["tags_list"].([]any)
	if !ok || len(tags) != 2 || tags[0] != "go" || tags[1] != "web" {
		t.Fatalf("tags_list = %v", resp["tags_list"])
	}
}

func TestPostHandler_Create_NoActor(t *testing.T) {
	stub := &stubPostService{
		createFn: func(context.Context, authz.Actor, ports.CreatePostInput) (*domain.Post, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPostHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/posts", `{"title":"x","content":"y"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPostHandler_Get_HiddenDraft(t *testing.T) {
	stub := &stubPostService{
		getFn: func(context.Context, authz.Actor, int64) (*domain.Post, error) {
			return nil, domain.ErrPostNotFound
		},
	}
	h := NewPostHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts/5", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("5")

	if err := h.Get(c); !errors.Is(err, domain.ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestPostHandler_Get_InvalidID(t *testing.T) {
	h := NewPostHandler(&stubPostService{})

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestPostHandler_List_UsesExcerpt(t *testing.T) {
	long := strings.Repeat("a", 300)
	stub := &stubPostService{
		listFn: func(context.Context, authz.Actor) ([]*domain.Post, error) {
			return []*domain.Post{{ID: 1, Title: "long", Content: long, Published: true}}, nil
		},
	}
	h := NewPostHandler(stub)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/posts", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 1 {
		t.Fatalf("expected one item, got %d", len(resp.Data))
	}
	excerpt, _ := resp.Data[0]["excerpt"].(string)
	if len(excerpt) != 203 || !strings.HasSuffix(excerpt, "...") {
		t.Fatalf("excerpt length = %d", len(excerpt))
	}
	if _, hasContent := resp.Data[0]["content"]; hasContent {
		t.Fatalf("list items must not carry full content")
	}
}
