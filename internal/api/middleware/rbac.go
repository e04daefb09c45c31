package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
)

// RequireRoles gates a route to the given roles. It runs after Auth, so an
// absent actor means a wiring mistake and is rejected as unauthenticated.
func RequireRoles(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(ContextKeyActor).(authz.Actor)
			if !ok || !actor.Authenticated {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if _, ok := allowed[actor.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
