package render

import (
	"fmt"
	"strings"
)

// Text lays out v as plain text for logs and non-terminal output.
func Text(v View) string {
	if !v.Visible {
		if v.Title == "" {
			return ""
		}
		return v.Title + "\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s]\n", v.Title, v.Pill.Label)

	if v.Message != "" {
		b.WriteString("\n" + v.Message + "\n")
	}
	if len(v.Missing) > 0 {
		b.WriteString("\n")
		for _, m := range v.Missing {
			b.WriteString("  - " + m + "\n")
		}
	}
	if v.Hint != "" {
		b.WriteString("\n" + v.Hint + "\n")
	}

	if v.Kind != ViewSuccess {
		return b.String()
	}

	b.WriteString("\n")
	for _, c := range v.Cards {
		fmt.Fprintf(&b, "%-16s %s\n", c.Label+":", c.Value)
	}
	if len(v.Breakdown) > 0 {
		b.WriteString("\nBreakdown\n")
		for _, c := range v.Breakdown {
			fmt.Fprintf(&b, "  %-14s %s\n", c.Label+":", c.Value)
		}
	}

	b.WriteString("\n" + strings.Join(v.Chips, " | ") + "\n")

	b.WriteString("\nItinerary\n")
	for _, d := range v.Itinerary {
		fmt.Fprintf(&b, "  %s\n", d.Label)
		fmt.Fprintf(&b, "    Morning:   %s\n", d.Morning)
		fmt.Fprintf(&b, "    Afternoon: %s\n", d.Afternoon)
		fmt.Fprintf(&b, "    Evening:   %s\n", d.Evening)
	}

	b.WriteString("\nRisk flags\n")
	if len(v.Risks) == 0 {
		b.WriteString("  " + v.RiskPlaceholder + "\n")
	}
	for _, r := range v.Risks {
		b.WriteString("  - " + r + "\n")
	}
	return b.String()
}

// Markdown lays out v as a markdown document.
func Markdown(v View) string {
	if !v.Visible {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "## %s `%s`\n\n", v.Title, v.Pill.Label)

	if v.Message != "" {
		b.WriteString(v.Message + "\n\n")
	}
	for _, m := range v.Missing {
		b.WriteString("- " + m + "\n")
	}
	if len(v.Missing) > 0 {
		b.WriteString("\n")
	}
	if v.Hint != "" {
		b.WriteString("> " + v.Hint + "\n\n")
	}

	if v.Kind != ViewSuccess {
		return b.String()
	}

	b.WriteString("| | |\n|---|---|\n")
	for _, c := range v.Cards {
		fmt.Fprintf(&b, "| **%s** | %s |\n", c.Label, c.Value)
	}
	for _, c := range v.Breakdown {
		fmt.Fprintf(&b, "| %s | %s |\n", c.Label, c.Value)
	}
	b.WriteString("\n")

	for _, chip := range v.Chips {
		b.WriteString("`" + chip + "` ")
	}
	b.WriteString("\n\n### Itinerary\n\n")

	for _, d := range v.Itinerary {
		fmt.Fprintf(&b, "**%s**\n\n", d.Label)
		fmt.Fprintf(&b, "- Morning: %s\n- Afternoon: %s\n- Evening: %s\n\n", d.Morning, d.Afternoon, d.Evening)
	}

	b.WriteString("### Risk flags\n\n")
	if len(v.Risks) == 0 {
		b.WriteString("_" + v.RiskPlaceholder + "_\n")
	}
	for _, r := range v.Risks {
		b.WriteString("- " + r + "\n")
	}
	return b.String()
}
