package di

import (
	"fmt"

	"go.uber.org/zap"

	"tcp-user-service/cmd/api/infrastructure"
	"tcp-user-service/internal/adapter/db/postgres"
	tcphandler "tcp-user-service/internal/adapter/tcp/handler"
	tcprouter "tcp-user-service/internal/adapter/tcp/router"
	"tcp-user-service/internal/config"
	"tcp-user-service/internal/usecase/user"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *zap.Logger
	Provider user.Provider
	UserUC   user.Usecase
	Handler  *tcphandler.UserHandler
	Router   *tcprouter.Router
}

// NewContainer creates and initializes all application dependencies
func NewContainer(cfg *config.Config, l *zap.Logger) (*Container, error) {
	// Validate configuration before initializing any dependencies
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// Create the users table idempotently before serving anything
	if err := infrastructure.BootstrapDatabase(cfg, l); err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Fresh-connection-per-request provider; SharedProvider is the
	// pooled substitute and plugs in here without touching handlers.
	provider := postgres.NewDialProvider(cfg.DB.URL, l)

	// Initialize use case
	userUC := user.New(provider, l)

	// Initialize transport handler and router
	h := tcphandler.NewUserHandler(userUC, l)
	rt := tcprouter.New(h, l)

	return &Container{
		Config:   cfg,
		Logger:   l,
		Provider: provider,
		UserUC:   userUC,
		Handler:  h,
		Router:   rt,
	}, nil
}
