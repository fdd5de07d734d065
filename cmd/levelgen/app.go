package main

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/vancomm/levelgen/internal/codec"
	"github.com/vancomm/levelgen/internal/engine"
	"github.com/vancomm/levelgen/internal/preview"
	"github.com/vancomm/levelgen/internal/rule"
)

type application struct {
	logger   *slog.Logger
	gen      *engine.Generator
	start    string
	stages   []string
	count    int
	out      string
	renderer *preview.Renderer // nil disables the terminal preview
	stdout   io.Writer
}

func validOutPattern(pattern string) bool {
	return strings.Count(pattern, "%d") == 1 && strings.Count(pattern, "%") == 1
}

func (app *application) outPath(i int) string {
	return fmt.Sprintf(app.out, i)
}

func (app *application) loadStages() ([]engine.Stage, error) {
	stages := make([]engine.Stage, 0, len(app.stages))
	for _, path := range app.stages {
		exemplar, err := codec.Load(path)
		if err != nil {
			return nil, fmt.Errorf("unable to load rule set: %w", err)
		}
		rules, err := rule.Extract(exemplar)
		if err != nil {
			return nil, fmt.Errorf("unable to extract rules from %s: %w", path, err)
		}
		stage := engine.NewStage(filepath.Base(path), rules)
		app.logger.Info("rule set loaded",
			slog.String("path", path),
			slog.Int("rules", len(rules)),
			slog.Int("oriented", len(stage.Rules)),
		)
		stages = append(stages, stage)
	}
	return stages, nil
}

func (app *application) generate(i int, stages []engine.Stage) error {
	logger := app.logger.With(slog.String("run", uuid.NewString()), slog.Int("index", i))

	level, err := codec.Load(app.start)
	if err != nil {
		return fmt.Errorf("unable to load start level: %w", err)
	}
	logger.Debug("start level loaded", slog.Int("cells", len(level)))

	stats, err := app.gen.Run(level, stages...)
	if err != nil {
		return fmt.Errorf("generation %d failed: %w", i, err)
	}
	for _, s := range stats {
		logger.Debug("stage finished",
			slog.String("stage", s.Name),
			slog.Int("applied", s.Applied),
			slog.Int("skipped", s.Skipped),
		)
	}

	path := app.outPath(i)
	if err := codec.Save(path, level); err != nil {
		return err
	}
	logger.Info("level written", slog.String("path", path))

	if app.renderer != nil {
		fmt.Fprintf(app.stdout, "%s:\n", path)
		if err := app.renderer.Render(app.stdout, level); err != nil {
			return err
		}
	}
	return nil
}

// run extracts every rule set once, then produces app.count levels, each
// from a freshly loaded start level. The first error aborts the batch.
func (app *application) run() error {
	stages, err := app.loadStages()
	if err != nil {
		return err
	}
	for i := range app.count {
		if err := app.generate(i, stages); err != nil {
			return err
		}
	}
	return nil
}
