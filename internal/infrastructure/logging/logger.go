package logging

import (
	"fmt"

	"go.uber.org/zap"
)

// New builds a zap logger. level is any zap level name ("debug", "info", ...);
// format is "json" for production output or "console" for a human-readable one.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid level %q: %w", level, err)
	}

	var cfg zap.Config
	switch format {
	case "", "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("logging: invalid format %q (want json or console)", format)
	}
	cfg.Level = lvl

	return cfg.Build()
}
