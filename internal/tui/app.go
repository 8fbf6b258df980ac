package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/tripplan/internal/submit"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates the interactive planning form
func New(ctx context.Context, c *submit.Controller, opts Options) *App {
	return &App{model: NewModel(ctx, c, opts)}
}

// Run starts the TUI and blocks until the operator quits. A submission still
// in flight when the program exits is abandoned; its result is discarded.
func (a *App) Run() error {
	a.program = tea.NewProgram(a.model, tea.WithAltScreen())
	_, err := a.program.Run()
	return err
}
