package main

import (
	"context"
	"log/slog"
	"os"

	"user_backend/internal/app/router"
	"user_backend/internal/feature/users/adapters"
	"user_backend/internal/feature/users/domain"
	userhandler "user_backend/internal/feature/users/transport/handler"
	"user_backend/internal/feature/users/usecase"
	"user_backend/internal/platform/config"
	"user_backend/internal/platform/db"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	// db
	conn, err := db.Open(cfg.DB)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	if cfg.RunMigrations {
		if err := db.Migrate(conn); err != nil {
			slog.Error("failed to migrate schema", "error", err)
			os.Exit(1)
		}
	}
	if cfg.SeedRoles {
		if err := db.SeedRoles(ctx, conn, domain.KnownRoleNames()); err != nil {
			slog.Error("failed to seed roles", "error", err)
			os.Exit(1)
		}
	}

	// Repository
	userRepo := adapters.NewUserPostgres(conn)
	roleRepo := adapters.NewRolePostgres(conn)
	txManager := adapters.NewGormTxManager(conn)

	// Usecase
	reconciler := usecase.NewRoleReconciler(roleRepo)
	userUC := usecase.NewUserUsecase(userRepo, reconciler, txManager)

	// Handler
	userH := userhandler.NewUserHandler(userUC)

	r := router.NewRouter(userH)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

// setupLogger installs a JSON slog handler at the configured level.
func setupLogger(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})))
}
