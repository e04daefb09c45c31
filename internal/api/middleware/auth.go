package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

// Context keys set by the auth middleware.
const (
	ContextKeyActor = "actor"
	ContextKeyUser  = "user"
)

// Auth validates the access token, resolves the account and injects the
// actor into context. The account is loaded on every request so a
// deactivated account's tokens stop working immediately, not at expiry.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return authMiddleware(jwtSecret, users, true)
}

// OptionalAuth behaves like Auth but lets requests without an Authorization
// header through as the anonymous actor. A header that is present but
// invalid is still rejected.
func OptionalAuth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return authMiddleware(jwtSecret, users, false)
}

func authMiddleware(jwtSecret string, users ports.UserRepository, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				if !required {
					c.Set(ContextKeyActor, authz.Anonymous)
					return next(c)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if typ, _ := claims["type"].(string); typ != "access" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			sub, ok := claims["sub"].(float64)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			user, err := users.FindByID(c.Request().Context(), int64(sub))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			if !user.Active {
				return echo.NewHTTPError(http.StatusUnauthorized, "account disabled")
			}

			c.Set(ContextKeyActor, authz.ActorFor(user))
			c.Set(ContextKeyUser, user)

			return next(c)
		}
	}
}
