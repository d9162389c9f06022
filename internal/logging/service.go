package logging

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"safety-dashboard-go/internal/config"
)

func NewServiceLogger(cfg *config.Config, service string) zerolog.Logger {
	return log.With().Str("environment", cfg.Environment).Str("service", service).Logger()
}
