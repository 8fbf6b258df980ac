package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - all colors meet WCAG AA contrast (4.5:1) on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple (violet-400)
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red (red-400)
	InfoColor      = lipgloss.Color("#60A5FA") // Blue
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray (gray-500)

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Section heading inside the result panel
	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(TextColor).
		MarginTop(1)

	// Status pill; the background comes from PillColor
	Pill = lipgloss.NewStyle().
		Bold(true).
		Foreground(SurfaceColor).
		Padding(0, 1)

	// Summary card
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(BorderColor).
		Padding(0, 1).
		MarginRight(1)

	CardLabel = lipgloss.NewStyle().
			Foreground(MutedColor)

	CardValue = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	// Chip for request summary and itinerary slots
	Chip = lipgloss.NewStyle().
		Foreground(TextColor).
		Background(SurfaceColor).
		Padding(0, 1).
		MarginRight(1)

	RiskItem = lipgloss.NewStyle().
			Foreground(WarningColor)

	// Result panel
	ResultBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Form styles
	FieldLabel = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(14)

	FieldLabelFocused = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true).
				Width(14)

	SubmitButton = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2).
			MarginTop(1)

	SubmitButtonBusy = lipgloss.NewStyle().
				Foreground(MutedColor).
				Background(SurfaceColor).
				Padding(0, 2).
				MarginTop(1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Error message
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Success message
	SuccessMsg = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			Bold(true)
)

// PillColor returns the background color for a pill tone
// ("ok", "warn", "error" or "info").
func PillColor(tone string) lipgloss.Color {
	switch tone {
	case "ok":
		return SecondaryColor
	case "warn":
		return WarningColor
	case "error":
		return ErrorColor
	case "info":
		return InfoColor
	default:
		return MutedColor
	}
}

// PillIcon returns an icon for a pill tone
func PillIcon(tone string) string {
	switch tone {
	case "ok":
		return "✓"
	case "warn":
		return "!"
	case "error":
		return "✗"
	case "info":
		return "●"
	default:
		return "○"
	}
}

// RenderPill renders label as a colored pill
func RenderPill(tone, label string) string {
	return Pill.Background(PillColor(tone)).Render(PillIcon(tone) + " " + label)
}
