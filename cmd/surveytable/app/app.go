package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/doroshv/wifi-heatmapper/internal/storage"
	"github.com/doroshv/wifi-heatmapper/internal/survey"
	"github.com/doroshv/wifi-heatmapper/internal/tui"
	"github.com/doroshv/wifi-heatmapper/internal/view"
)

func Run(ctx context.Context, config *Config, logger *slog.Logger) error {
	store := storage.NewSqliteStore(config.Storage.DBPath)
	defer store.Close()

	switch {
	case config.ImportFile != "":
		return importSnapshot(ctx, store, config.ImportFile, logger)
	case config.ExportFile != "":
		return exportSnapshot(ctx, store, config.ExportFile, logger)
	}

	engine := view.NewTable(config.View.PageSize, survey.SignalQuality)
	for _, key := range config.View.HiddenColumns {
		if engine.State().ColumnVisible(key) {
			engine.ToggleColumn(key)
		}
	}
	for _, key := range config.View.ShownColumns {
		if !engine.State().ColumnVisible(key) {
			engine.ToggleColumn(key)
		}
	}

	coordinator := view.NewCoordinator(engine, store)
	model := tui.New(ctx, engine, coordinator, store, logger)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running table view: %w", err)
	}
	return nil
}

func importSnapshot(ctx context.Context, store *storage.SqliteStore, path string, logger *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	n, err := store.ImportJSON(ctx, f)
	if err != nil {
		return fmt.Errorf("importing snapshot: %w", err)
	}

	logger.Info("snapshot imported", slog.String("path", path), slog.Int("points", n))
	return nil
}

func exportSnapshot(ctx context.Context, store *storage.SqliteStore, path string, logger *slog.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}

	if err = store.ExportJSON(ctx, f); err != nil {
		_ = f.Close()
		return fmt.Errorf("exporting snapshot: %w", err)
	}
	if err = f.Close(); err != nil {
		return err
	}

	logger.Info("snapshot exported", slog.String("path", path))
	return nil
}
