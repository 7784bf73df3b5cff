package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/formdsl/internal/hcl"
)

// Loader reads and validates forms. *hcl.Loader implements it.
type Loader interface {
	Load(ctx context.Context, path string) (*hcl.Result, error)
	LoadAll(ctx context.Context, root string) ([]*hcl.Result, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader Loader
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW.
func NewApp(outW, logW io.Writer, cfg *Config, loader Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if loader == nil {
		loader = hcl.NewLoader(nil)
	}

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
