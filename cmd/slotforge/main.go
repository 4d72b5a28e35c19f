package main

import (
	"log/slog"

	"github.com/slotforge/slotforge/internal/cli"
	"github.com/slotforge/slotforge/pkg/config"
	"github.com/slotforge/slotforge/pkg/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development", LogLevel: "info", LogFormat: "text"}
	}

	logConfig := observability.DefaultLogConfig()
	logConfig.Level = observability.LogLevel(cfg.LogLevel)
	logConfig.Format = observability.LogFormat(cfg.LogFormat)
	if cfg.IsProduction() {
		logConfig = observability.ProductionLogConfig()
	}
	logger := observability.NewLogger(logConfig)
	slog.SetDefault(logger)
	cli.SetLogger(logger)

	cli.Execute()
}
