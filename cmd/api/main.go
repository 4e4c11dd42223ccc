package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-studio/backoffice/internal/api"
	"github.com/inkwell-studio/backoffice/internal/core/domain"
	"github.com/inkwell-studio/backoffice/internal/infrastructure/config"
	mongodb "github.com/inkwell-studio/backoffice/internal/infrastructure/db/mongo"
	redisdb "github.com/inkwell-studio/backoffice/internal/infrastructure/db/redis"
	"github.com/inkwell-studio/backoffice/pkg/logger"

	_ "github.com/inkwell-studio/backoffice/docs"
)

// @title        Studio Backoffice API
// @version      1.0
// @description  Blog, portfolio and internal task board backend.
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Service: "backoffice",
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	if err := seedAdmin(ctx, db, cfg); err != nil {
		log.Fatal().Err(err).Msg("admin seeding failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// seedAdmin inserts the configured admin account when it does not exist yet.
// Registration only ever produces employees, so this is the single path that
// creates an admin.
func seedAdmin(ctx context.Context, db *mongodriver.Database, cfg *config.Config) error {
	if cfg.AdminUser == "" || cfg.AdminPass == "" {
		return nil
	}

	repo := mongodb.NewUserRepository(db)
	if _, err := repo.FindByUsername(ctx, cfg.AdminUser); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = repo.Insert(ctx, &domain.User{
		Username:     cfg.AdminUser,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		CreatedAt:    time.Now().UTC(),
	})
	if errors.Is(err, domain.ErrUserExists) {
		// concurrent boot already seeded it
		return nil
	}
	return err
}
