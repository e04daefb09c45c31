package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/teamfolio/portfolio-api/docs"
	"github.com/teamfolio/portfolio-api/internal/api/handler"
	"github.com/teamfolio/portfolio-api/internal/api/middleware"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
	"github.com/teamfolio/portfolio-api/internal/infrastructure/http/handlers"
)

// Deps carries everything the router needs. Services are wired in cmd/api.
type Deps struct {
	AuthService    ports.AuthService
	UserService    ports.UserService
	PostService    ports.PostService
	ProjectService ports.ProjectService
	StatsService   ports.StatsService

	// UserRepo backs the auth middleware's per-request account lookup.
	UserRepo  ports.UserRepository
	JWTSecret string

	Mongo  *mongo.Database
	Redis  *redis.Client
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("portfolio"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.AuthService)
	userHandler := handler.NewUserHandler(d.UserService)
	postHandler := handler.NewPostHandler(d.PostService)
	projectHandler := handler.NewProjectHandler(d.ProjectService)
	statsHandler := handler.NewStatsHandler(d.StatsService, d.PostService, d.ProjectService)

	requireAuth := middleware.Auth(d.JWTSecret, d.UserRepo)
	optionalAuth := middleware.OptionalAuth(d.JWTSecret, d.UserRepo)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)
	e.POST("/auth/password-reset", authHandler.PasswordResetRequest)
	e.POST("/auth/password-reset/confirm", authHandler.PasswordResetConfirm)

	// --- Profile ---
	e.GET("/profile", userHandler.Profile, requireAuth)
	e.PATCH("/profile", userHandler.UpdateProfile, requireAuth)

	// --- User management ---
	e.GET("/users", userHandler.List, requireAuth)
	e.POST("/users/:id/change_role", userHandler.ChangeRole, requireAuth, adminOnly)
	e.POST("/users/:id/toggle_active", userHandler.ToggleActive, requireAuth, adminOnly)

	// --- Posts (reads open with optional credentials) ---
	e.GET("/posts", postHandler.List, optionalAuth)
	e.GET("/posts/:id", postHandler.Get, optionalAuth)
	e.POST("/posts", postHandler.Create, requireAuth)
	e.PATCH("/posts/:id", postHandler.Update, requireAuth)
	e.DELETE("/posts/:id", postHandler.Delete, requireAuth)
	e.POST("/posts/:id/toggle_publish", postHandler.TogglePublish, requireAuth)

	// --- Projects (public reads) ---
	e.GET("/projects", projectHandler.List)
	e.GET("/projects/:id", projectHandler.Get)
	e.POST("/projects", projectHandler.Create, requireAuth)
	e.PATCH("/projects/:id", projectHandler.Update, requireAuth)
	e.DELETE("/projects/:id", projectHandler.Delete, requireAuth)

	// --- Aggregation ---
	e.GET("/search", statsHandler.Search, optionalAuth)
	e.GET("/stats", statsHandler.PublicStats)
	e.GET("/admin/stats", statsHandler.AdminStats, requireAuth, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(d.Mongo, d.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
