package logger

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/sorting-hat-bot/internal/config"
)

// New builds a JSON logger in production and a console logger elsewhere.
// Debug forces the debug level in either mode.
func New(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	}

	if cfg.Debug {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	l, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	return l.With(zap.String("env", cfg.Env)), nil
}
