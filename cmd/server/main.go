package main

import (
	"net/http"

	"passvault/internal/config"
	"passvault/internal/handlers"
	"passvault/internal/middleware"
	"passvault/internal/repo"
	"passvault/internal/secrets"
	"passvault/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	key, err := secrets.ParseKey(cfg.VaultKey)
	if err != nil {
		sugar.Fatalw("invalid vault key", "error", err)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	entryRepo := repo.NewEntryRepository(gormDB)
	userService := service.NewUserService(userRepo)
	vaultService := service.NewVaultService(userRepo, entryRepo, key)

	h := handlers.NewHandler(userService, vaultService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
