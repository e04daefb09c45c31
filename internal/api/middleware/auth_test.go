package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

const testSecret = "secret"

type stubUserRepo struct {
	byID map[int64]*domain.User
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (r *stubUserRepo) Create(context.Context, *domain.User) (*domain.User, error) { return nil, nil }
func (r *stubUserRepo) FindByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}
func (r *stubUserRepo) Update(context.Context, *domain.User) error           { return nil }
func (r *stubUserRepo) List(context.Context, bool) ([]*domain.User, error)   { return nil, nil }
func (r *stubUserRepo) SetRole(context.Context, int64, domain.Role) error    { return nil }
func (r *stubUserRepo) SetActive(context.Context, int64, bool) error         { return nil }
func (r *stubUserRepo) SetPassword(context.Context, int64, string) error     { return nil }
func (r *stubUserRepo) SetLastLogin(context.Context, int64, time.Time) error { return nil }
func (r *stubUserRepo) Counts(context.Context) (*ports.UserCounts, error)    { return nil, nil }

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func accessToken(t *testing.T, userID int64) string {
	return signToken(t, jwt.MapClaims{
		"sub":  userID,
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	users := &stubUserRepo{byID: map[int64]*domain.User{
		7: {ID: 7, Role: domain.RoleMember, Active: true},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(testSecret, users)(func(c echo.Context) error {
		called = true
		actor, ok := c.Get(ContextKeyActor).(authz.Actor)
		if !ok {
			t.Fatalf("actor not set")
		}
		if actor.ID != 7 || actor.Role != domain.RoleMember || !actor.Authenticated {
			t.Fatalf("actor = %+v", actor)
		}
		if _, ok := c.Get(ContextKeyUser).(*domain.User); !ok {
			t.Fatalf("user not set")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret, &stubUserRepo{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_DisabledAccount(t *testing.T) {
	e := echo.New()
	users := &stubUserRepo{byID: map[int64]*domain.User{
		7: {ID: 7, Role: domain.RoleMember, Active: false},
	}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// A deactivated account's otherwise valid token is rejected immediately.
	handler := Auth(testSecret, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_RefreshTokenRejected(t *testing.T) {
	e := echo.New()
	users := &stubUserRepo{byID: map[int64]*domain.User{
		7: {ID: 7, Role: domain.RoleMember, Active: true},
	}}

	refresh := signToken(t, jwt.MapClaims{
		"sub":  int64(7),
		"type": "refresh",
		"jti":  "abc",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret, users)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_UnknownUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 99))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testSecret, &stubUserRepo{byID: map[int64]*domain.User{}})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOptionalAuth_NoHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := OptionalAuth(testSecret, &stubUserRepo{})(func(c echo.Context) error {
		called = true
		actor, ok := c.Get(ContextKeyActor).(authz.Actor)
		if !ok {
			t.Fatalf("actor not set")
		}
		if actor.Authenticated {
			t.Fatalf("actor must be anonymous")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOptionalAuth_BadHeaderStillRejected(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := OptionalAuth(testSecret, &stubUserRepo{})(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
