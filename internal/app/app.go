package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"picsort/internal/config"
	"picsort/internal/logging"
	"picsort/internal/services"
	"picsort/internal/state"
	"picsort/internal/ui"
)

// Run builds the services and the terminal UI and blocks until the user quits.
func Run(ctx context.Context, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}
	settings, err = config.ParseFlags(settings, args)
	if err != nil {
		return err
	}

	logger := logging.NewOrNop(logging.FileConfig(settings.LogFile, settings.LogLevel, settings.LogDev))
	defer func() { _ = logger.Sync() }()
	logger.Info("starting",
		zap.String("config", settings.ConfigPath),
		zap.String("source", settings.Source),
		zap.String("theme", settings.Theme))

	files := services.NewSerial(services.NewFS(settings.ConfigPath, logger))
	model := ui.NewModel(state.NewSession(), files, logger.Named("ui")).
		WithContext(ctx).
		WithTheme(settings.Theme).
		WithToastDuration(settings.ToastDuration).
		WithSourceFolder(settings.Source)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		logger.Error("program stopped", zap.Error(err))
		return fmt.Errorf("picsort: %w", err)
	}
	logger.Info("exited")
	return nil
}
