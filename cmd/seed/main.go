package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"redcross/internal/auth"
	"redcross/internal/config"
	"redcross/internal/db"
	"redcross/internal/model"
	"redcross/internal/repository"
	"redcross/internal/service"
)

// Creates the administrator account from ADMIN_SEED_* variables. Running it
// again is a no-op while the account exists.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := config.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	seed := cfg.AdminSeed
	if seed.Email == "" || seed.Password == "" {
		logger.Fatal("ADMIN_SEED_EMAIL and ADMIN_SEED_PASSWORD must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	gormDB, err := db.Connect(ctx, db.NewMySQL, cfg.MySQLDSN, cfg.DBRetryDelay, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	logger.Info("connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}

	authService := service.NewAuthService(
		repository.NewUserRepository(gormDB),
		auth.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry),
		logger,
	)

	created, err := authService.EnsureAdmin(ctx, seed.Name, seed.Email, seed.Password)
	if err != nil {
		logger.Fatal("failed to seed admin", zap.Error(err))
	}
	logger.Info("seed completed", zap.Bool("created", created))
}
