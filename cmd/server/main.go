package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	_ "civicportal/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"civicportal/internal/auth"
	"civicportal/internal/config"
	apperrors "civicportal/internal/errors"
	"civicportal/internal/handler"
	"civicportal/internal/logger"
	"civicportal/internal/repository"
	"civicportal/internal/router"
	"civicportal/internal/service"
)

// @title Constituency Portal API
// @version 1.0
// @description Informational backend for a constituency website: news, projects, leadership, events, and citizen feedback, with session-based authentication for content management.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Environment: cfg.Env}); err != nil {
		log.Fatalf("logger init: %v", err)
	}
	zlog := logger.Get()

	// Repositories default to in-process memory. Setting MYSQL_DSN switches
	// every entity store to MySQL with auto-migrated schema.
	var (
		userRepo     repository.UserRepository
		newsRepo     repository.NewsRepository
		projectRepo  repository.ProjectRepository
		leaderRepo   repository.LeaderRepository
		eventRepo    repository.EventRepository
		feedbackRepo repository.FeedbackRepository
	)
	if cfg.MySQLDSN != "" {
		gormDB, err := repository.NewMySQL(cfg.MySQLDSN)
		if err != nil {
			zlog.Fatal("database init", zap.Error(err))
		}
		if err := repository.Migrate(gormDB); err != nil {
			zlog.Fatal("auto-migrate", zap.Error(err))
		}
		userRepo = repository.NewMySQLUserRepository(gormDB)
		newsRepo = repository.NewMySQLNewsRepository(gormDB)
		projectRepo = repository.NewMySQLProjectRepository(gormDB)
		leaderRepo = repository.NewMySQLLeaderRepository(gormDB)
		eventRepo = repository.NewMySQLEventRepository(gormDB)
		feedbackRepo = repository.NewMySQLFeedbackRepository(gormDB)
		zlog.Info("storage backend: mysql")
	} else {
		userRepo = repository.NewMemoryUserRepository()
		newsRepo = repository.NewMemoryNewsRepository()
		projectRepo = repository.NewMemoryProjectRepository()
		leaderRepo = repository.NewMemoryLeaderRepository()
		eventRepo = repository.NewMemoryEventRepository()
		feedbackRepo = repository.NewMemoryFeedbackRepository()
		zlog.Info("storage backend: memory")
	}

	// Sessions live in memory unless REDIS_ADDR points at a Redis instance,
	// in which case they survive restarts and expire via TTL.
	var sessionStore auth.SessionStore
	if cfg.RedisAddr != "" {
		sessionStore = auth.NewRedisSessionStore(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		zlog.Info("session backend: redis", zap.String("addr", cfg.RedisAddr))
	} else {
		sessionStore = auth.NewMemorySessionStore()
		zlog.Info("session backend: memory")
	}

	tokenService := auth.NewTokenService(cfg.SessionSecret)
	authService := service.NewAuthService(userRepo, tokenService, sessionStore, cfg.SessionTTL)

	if cfg.AdminPassword != "" {
		seedAdmin(authService, cfg, zlog)
	}

	authHandler := handler.NewAuthHandler(authService)
	newsHandler := handler.NewNewsHandler(newsRepo)
	projectHandler := handler.NewProjectHandler(projectRepo)
	leaderHandler := handler.NewLeaderHandler(leaderRepo)
	eventHandler := handler.NewEventHandler(eventRepo)
	feedbackHandler := handler.NewFeedbackHandler(feedbackRepo)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		cfg,
		authService,
		authHandler,
		newsHandler,
		projectHandler,
		leaderHandler,
		eventHandler,
		feedbackHandler,
	)

	addr := ":" + cfg.ServerPort
	zlog.Info("starting server", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		zlog.Fatal("server start", zap.Error(err))
	}
}

// seedAdmin ensures the administrator account from the environment exists.
// An existing account is left untouched.
func seedAdmin(authService service.AuthService, cfg *config.Config, zlog *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := authService.Register(ctx, service.RegisterParams{
		Username: cfg.AdminUsername,
		Password: cfg.AdminPassword,
		FullName: "Administrator",
		Role:     "admin",
	})
	switch {
	case err == nil:
		zlog.Info("admin account created", zap.String("username", cfg.AdminUsername))
	case errors.Is(err, apperrors.ErrUsernameTaken):
		zlog.Info("admin account already exists", zap.String("username", cfg.AdminUsername))
	default:
		zlog.Fatal("admin seed", zap.Error(err))
	}
}
