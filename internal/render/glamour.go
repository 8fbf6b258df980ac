package render

import (
	"github.com/charmbracelet/glamour"
)

// Glamour renders markdown for a terminal. width <= 0 keeps glamour's default
// word wrap.
func Glamour(markdown string, width int) (string, error) {
	opts := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		opts = append(opts, glamour.WithWordWrap(width))
	}
	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return "", err
	}
	return r.Render(markdown)
}
