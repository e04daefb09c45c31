package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/teamfolio/portfolio-api/internal/api/middleware"
	"github.com/teamfolio/portfolio-api/internal/core/authz"
)

// ctxActor extracts the actor injected by the Auth middleware. An absent
// actor on a protected route proves the middleware did not run; reject with
// 401 before any service call.
func ctxActor(c echo.Context) (authz.Actor, error) {
	actor, ok := c.Get(middleware.ContextKeyActor).(authz.Actor)
	if !ok {
		return authz.Anonymous, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return actor, nil
}

// optionalActor returns the actor when present and the anonymous actor
// otherwise; used on routes readable without credentials.
func optionalActor(c echo.Context) authz.Actor {
	actor, ok := c.Get(middleware.ContextKeyActor).(authz.Actor)
	if !ok {
		return authz.Anonymous
	}
	return actor
}

// pathID parses the numeric :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
