package app

import (
	"context"
	"net/http"

	"fruit_machine/internal/config"
	"fruit_machine/internal/config/env"

	"go.uber.org/zap"
)

const (
	envPath           = ".env"
	defaultConfigPath = "config.yaml"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider(env.ConfigPath(defaultConfigPath))
}

func (s *App) Run() error {
	// .env необязателен, переменные могут прийти из окружения
	envErr := config.Load(envPath)
	s.initServiceProvider()

	logger := s.ServiceProvider.Logger()
	defer func() { _ = logger.Sync() }()
	if envErr != nil {
		logger.Info("env file not loaded", zap.String("path", envPath), zap.Error(envErr))
	}

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	logger.Info("starting server", zap.String("address", s.ServiceProvider.HTTPCfg().Address()))
	return http.ListenAndServe(s.ServiceProvider.HTTPCfg().Address(), r)
}
