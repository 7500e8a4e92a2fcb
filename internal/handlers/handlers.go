package handlers

import (
	"passvault/internal/config"
	"passvault/internal/middleware"
	"passvault/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	vaultService *service.VaultService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	vaultHandler := NewVaultHandler(vaultService, logger, config)

	// User routes
	r.Post("/signup", userHandler.Signup)
	r.Post("/login", userHandler.Login)
	r.Post("/userinfo", userHandler.Info)

	// Vault routes
	r.Get("/vault/{email}", vaultHandler.List)
	r.Put("/vault", vaultHandler.Upsert)
	r.Delete("/vault/{id}", vaultHandler.Delete)

	return &Handler{Router: r}
}
