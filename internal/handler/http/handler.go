package http

import (
	"time"

	"github.com/MKhiriev/levelup/internal/config"
	"github.com/MKhiriev/levelup/internal/logger"
	"github.com/MKhiriev/levelup/internal/service"
)

type Handler struct {
	services *service.Services

	aiLimiter      *clientLimiter
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		aiLimiter:      newClientLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
