package client

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/tui"
)

type App struct {
	ui     *tui.TUI
	logger *logger.Logger
}

func NewApp(ui *tui.TUI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errors.New("nil ui")
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run implements [Client]. It drives the terminal UI until the user quits.
// A deliberate quit is not an error.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}
