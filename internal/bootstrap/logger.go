package bootstrap

import (
	"github.com/skinpulse/skinpulse/config"
	"github.com/skinpulse/skinpulse/pkg/logger"
)

func InitLogger(cfg *config.Config) *logger.Logger {
	return logger.New(cfg.Log.Level)
}
