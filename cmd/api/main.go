package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teamfolio/portfolio-api/internal/api"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
	"github.com/teamfolio/portfolio-api/internal/core/service"
	"github.com/teamfolio/portfolio-api/internal/infrastructure/config"
	mongodb "github.com/teamfolio/portfolio-api/internal/infrastructure/db/mongo"
	redisdb "github.com/teamfolio/portfolio-api/internal/infrastructure/db/redis"
	"github.com/teamfolio/portfolio-api/internal/infrastructure/email"
	"github.com/teamfolio/portfolio-api/internal/infrastructure/queue"
	"github.com/teamfolio/portfolio-api/pkg/logger"
)

// @title           Portfolio API
// @version         1.0
// @description     Role-based content platform: users, blog posts and portfolio projects.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Service: "portfolio-api",
		Pretty:  !cfg.IsProduction(),
	})

	log.Info().
		Str("env", cfg.Env).
		Int("port", cfg.Port).
		Msg("starting portfolio api")

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = redisClient.Close() }()

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	postRepo := mongodb.NewPostRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	tokenStore := redisdb.NewTokenStore(redisClient)

	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := postRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("post indexes failed")
	}
	if err := projectRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("project indexes failed")
	}

	// --- Outbound mail ---
	var mailer ports.Mailer
	if cfg.SMTP.Host != "" {
		mailer = email.NewSMTPMailer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
	} else {
		log.Warn().Msg("no smtp host configured, mail goes to the log")
		mailer = email.NewLogMailer(log)
	}
	dispatcher := queue.NewDispatcher(cfg.MailWorkers, mailer, log)
	dispatcher.Start(ctx)

	// --- Services ---
	authService := service.NewAuthService(
		userRepo, tokenStore, dispatcher,
		cfg.JWTSecret, cfg.AccessTTL, cfg.RefreshTTL,
		cfg.ResetURL, log,
	)
	userService := service.NewUserService(userRepo, log)
	postService := service.NewPostService(postRepo, log)
	projectService := service.NewProjectService(projectRepo, log)
	statsService := service.NewStatsService(userRepo, postRepo, projectRepo)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		AuthService:    authService,
		UserService:    userService,
		PostService:    postService,
		ProjectService: projectService,
		StatsService:   statsService,
		UserRepo:       userRepo,
		JWTSecret:      cfg.JWTSecret,
		Mongo:          db,
		Redis:          redisClient,
		Logger:         log,
	})

	go func() {
		if err := e.Start(cfg.Addr()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
