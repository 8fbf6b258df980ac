package msg

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Iron-Ham/tripplan/internal/submit"
	"github.com/Iron-Ham/tripplan/internal/trip"
)

// Submit returns a command that runs one submission on c and reports the
// terminal state.
func Submit(ctx context.Context, c *submit.Controller, endpoint string, fields trip.Fields) tea.Cmd {
	return func() tea.Msg {
		state, err := c.Submit(ctx, endpoint, fields)
		return SubmittedMsg{State: state, Err: err}
	}
}

// LoadEndpoint returns a command that restores the last-used endpoint.
func LoadEndpoint(ctx context.Context, c *submit.Controller) tea.Cmd {
	return func() tea.Msg {
		return EndpointLoadedMsg{Endpoint: c.Endpoint(ctx)}
	}
}
