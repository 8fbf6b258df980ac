package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tripplan/internal/tui/styles"
)

// TerminalOptions tweaks Terminal output.
type TerminalOptions struct {
	Width         int
	ShowBreakdown bool
}

// Terminal lays out v with lipgloss styles inside a bordered panel. Hidden
// views render as "".
func Terminal(v View, opts TerminalOptions) string {
	if !v.Visible {
		return ""
	}

	var sections []string

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		styles.Title.UnsetMarginBottom().Render(v.Title),
		"  ",
		styles.RenderPill(string(v.Pill.Tone), v.Pill.Label),
	)
	sections = append(sections, header)

	if v.Message != "" {
		msgStyle := styles.Text
		if v.Kind == ViewFailed {
			msgStyle = styles.ErrorMsg
		}
		sections = append(sections, "", msgStyle.Render(v.Message))
	}
	if len(v.Missing) > 0 {
		items := make([]string, len(v.Missing))
		for i, m := range v.Missing {
			items[i] = styles.RiskItem.Render("• " + m)
		}
		sections = append(sections, "", strings.Join(items, "\n"))
	}
	if v.Hint != "" {
		sections = append(sections, "", styles.Muted.Render(v.Hint))
	}

	if v.Kind == ViewSuccess {
		sections = append(sections, "", renderCards(v.Cards))
		if opts.ShowBreakdown && len(v.Breakdown) > 0 {
			sections = append(sections, renderCards(v.Breakdown))
		}
		sections = append(sections, "", renderChips(v.Chips))

		sections = append(sections, styles.Section.Render("Itinerary"))
		for _, d := range v.Itinerary {
			sections = append(sections,
				styles.Primary.Bold(true).Render(d.Label),
				renderChips([]string{
					"Morning: " + d.Morning,
					"Afternoon: " + d.Afternoon,
					"Evening: " + d.Evening,
				}),
			)
		}

		sections = append(sections, styles.Section.Render("Risk flags"))
		if len(v.Risks) == 0 {
			sections = append(sections, styles.Chip.Render(v.RiskPlaceholder))
		}
		for _, r := range v.Risks {
			sections = append(sections, styles.RiskItem.Render("• "+r))
		}
	}

	box := styles.ResultBox
	if opts.Width > 0 {
		box = box.Width(opts.Width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func renderCards(cards []Card) string {
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = styles.Card.Render(
			styles.CardLabel.Render(c.Label) + "\n" + styles.CardValue.Render(c.Value),
		)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func renderChips(chips []string) string {
	rendered := make([]string, len(chips))
	for i, c := range chips {
		rendered[i] = styles.Chip.Render(c)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
