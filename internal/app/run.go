package app

import (
	"context"
	"fmt"
	"os"

	"github.com/specialistvlad/formdsl/internal/ctxlog"
	"github.com/specialistvlad/formdsl/internal/export"
	"github.com/specialistvlad/formdsl/internal/hcl"
	"github.com/specialistvlad/formdsl/internal/model"
)

// Run loads and validates the configured forms and writes them to the output
// in the configured format. The first invalid form stops the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "path", a.config.FormPath, "output", a.config.Output)

	results, err := a.load(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		a.logger.Warn("No forms found, nothing to check.", "path", a.config.FormPath)
		return nil
	}

	for _, res := range results {
		a.logger.Info("Form is valid.", "form", res.Form.Name, "sections", len(res.Form.Sections), "fields", len(res.Form.Fields()), "files", len(res.Files))
		if err := a.write(res.Form); err != nil {
			return err
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

func (a *App) load(ctx context.Context) ([]*hcl.Result, error) {
	info, err := os.Stat(a.config.FormPath)
	if err != nil {
		return nil, fmt.Errorf("failed to access %s: %w", a.config.FormPath, err)
	}

	if info.IsDir() {
		results, err := a.loader.LoadAll(ctx, a.config.FormPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load forms: %w", err)
		}
		return results, nil
	}

	res, err := a.loader.Load(ctx, a.config.FormPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load form: %w", err)
	}
	return []*hcl.Result{res}, nil
}

func (a *App) write(form *model.Form) error {
	switch a.config.Output {
	case OutputYAML:
		return export.YAML(a.outW, form)
	case OutputJSON:
		return export.JSON(a.outW, form)
	default:
		return writeSummary(a.outW, form)
	}
}
