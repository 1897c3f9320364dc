package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/exalt/teamboard/docs"
	"github.com/exalt/teamboard/internal/api"
	"github.com/exalt/teamboard/internal/core/service"
	"github.com/exalt/teamboard/internal/infrastructure/bootstrap"
	"github.com/exalt/teamboard/internal/infrastructure/config"
	mongodb "github.com/exalt/teamboard/internal/infrastructure/db/mongo"
	redisdb "github.com/exalt/teamboard/internal/infrastructure/db/redis"
	"github.com/exalt/teamboard/internal/infrastructure/queue"
	"github.com/exalt/teamboard/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Teamboard API
// @version      1.0
// @description  User and project management with JWT authentication and role-based authorization.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := logger.Init(logger.Options{
		Level:  os.Getenv("LOG_LEVEL"),
		Pretty: os.Getenv("ENV") == "development",
	})

	cfg, err := config.Load(ctx)
	if err != nil {
		// A missing JWT_SECRET lands here.
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// --- Storage ---
	db, disconnect, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = disconnect(shutdownCtx)
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":        userRepo.EnsureIndexes,
		"projects":     projectRepo.EnsureIndexes,
		"audit_events": auditRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("failed to create indexes")
		}
	}

	// --- Core wiring ---
	hasher := service.NewPasswordHasher()
	tokens := service.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	if err := bootstrap.EnsureCEO(ctx, userRepo, hasher, cfg.CEO, log); err != nil {
		log.Fatal().Err(err).Msg("CEO bootstrap failed")
	}

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.Deps{
		Users:    userRepo,
		Projects: projectRepo,
		Tokens:   tokens,
		Hasher:   hasher,
		Throttle: redisdb.NewSigninThrottle(rdb),
		Audit:    dispatcher,
		Mongo:    db,
		Redis:    rdb,
		Log:      log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("teamboard api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("teamboard api stopped")
}
