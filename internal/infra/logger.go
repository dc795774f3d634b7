package infra

import (
	"go.uber.org/zap"

	"fittrack/internal/config"
)

// NewLogger builds the process logger and installs it as zap's global so
// package-level helpers log through the same sink.
func NewLogger(cfg *config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}

	logger = logger.With(zap.String("service", "fittrack"))
	zap.ReplaceGlobals(logger)
	return logger, nil
}
