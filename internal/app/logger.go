// Package app provides logger initialization.
package app

import (
	"github.com/guttosm/menu-service/config"
	"github.com/guttosm/menu-service/internal/logger"
)

// InitializeLogger initializes the JSON logger from the server configuration.
func InitializeLogger(cfg config.ServerConfig) {
	logger.Init(cfg.LogLevel, cfg.PrettyLogs)
}
