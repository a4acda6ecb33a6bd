package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-post-board/internal/adapter"
	"github.com/MKhiriev/go-post-board/internal/logger"
	"github.com/MKhiriev/go-post-board/internal/workers"
	"github.com/MKhiriev/go-post-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	server          adapter.ServerAdapter
	refreshInterval time.Duration
}

func New(server adapter.ServerAdapter, refreshInterval time.Duration, _ *logger.Logger) (*TUI, error) {
	return &TUI{server: server, refreshInterval: refreshInterval}, nil
}

// Run starts the interactive terminal program and blocks until the user
// quits. A background feed refresher pushes fresh posts into the running
// program and is stopped before Run returns. Returns [ErrUserQuit] when the
// user left on purpose so callers can exit cleanly.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(newAppModel(ctx, t.server), tea.WithAltScreen())

	if t.refreshInterval > 0 {
		refresher := workers.NewFeedRefresher(t.server, t.refreshInterval, func(posts []models.Post) {
			program.Send(feedLoadedMsg{posts: posts})
		})
		refresher.Start(ctx)
		defer refresher.Stop()
	}

	finalModel, runErr := program.Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
