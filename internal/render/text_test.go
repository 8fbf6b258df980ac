package render

import (
	"strings"
	"testing"

	"github.com/Iron-Ham/tripplan/internal/submit"
	"github.com/Iron-Ham/tripplan/internal/trip"
)

func TestText(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		out := Text(Render(submit.Success{Result: tokyoPlan()}))
		for _, want := range []string{
			"Plan result [within budget]",
			"¥4,000",
			"Day 1",
			"Day 3",
			"Morning:   Senso-ji",
			NoRisks,
		} {
			if !strings.Contains(out, want) {
				t.Errorf("Text() missing %q in:\n%s", want, out)
			}
		}
		if strings.Index(out, "Day 1") > strings.Index(out, "Day 2") {
			t.Error("Text() reordered itinerary")
		}
	})

	t.Run("needs info", func(t *testing.T) {
		out := Text(Render(submit.NeedsInfo{Info: trip.NeedsInfo{MissingFields: []string{"destination"}}}))
		if strings.Count(out, "  - ") != 1 {
			t.Errorf("Text() = %q, want exactly one missing entry", out)
		}
		if strings.Contains(out, "Itinerary") {
			t.Error("needs-info text must not include itinerary")
		}
	})

	t.Run("failed", func(t *testing.T) {
		out := Text(Render(submit.Failed{Message: "HTTP 500: internal error"}))
		if !strings.Contains(out, "HTTP 500: internal error") || !strings.Contains(out, FailedHint) {
			t.Errorf("Text() = %q, want message and hint", out)
		}
	})

	t.Run("idle is empty", func(t *testing.T) {
		if out := Text(Render(submit.Idle{})); out != "" {
			t.Errorf("Text(idle) = %q, want empty", out)
		}
	})
}

func TestMarkdown(t *testing.T) {
	p := tokyoPlan()
	p.RiskFlags = []string{"budget_exceeded"}
	out := Markdown(Render(submit.Success{Result: p}))

	for _, want := range []string{"## Plan result", "### Itinerary", "**Day 2**", "- budget_exceeded", "| **Estimated total** | ¥4,000 |"} {
		if !strings.Contains(out, want) {
			t.Errorf("Markdown() missing %q in:\n%s", want, out)
		}
	}

	failed := Markdown(Render(submit.Failed{}))
	if !strings.Contains(failed, "> "+FailedHint) {
		t.Errorf("Markdown(failed) = %q, want hint quote", failed)
	}
}

func TestTerminal(t *testing.T) {
	if out := Terminal(Render(submit.Busy{}), TerminalOptions{}); out != "" {
		t.Errorf("Terminal(busy) = %q, want empty", out)
	}

	p := tokyoPlan()
	p.PriceBreakdown.Hotel = 960
	out := Terminal(Render(submit.Success{Result: p}), TerminalOptions{Width: 100, ShowBreakdown: true})
	for _, want := range []string{"Plan result", "within budget", "Estimated total", "Hotel", "Itinerary", NoRisks} {
		if !strings.Contains(out, want) {
			t.Errorf("Terminal() missing %q", want)
		}
	}

	hidden := Terminal(Render(submit.Success{Result: p}), TerminalOptions{Width: 100})
	if strings.Contains(hidden, "Hotel") {
		t.Error("Terminal() showed breakdown with ShowBreakdown=false")
	}
}

func TestGlamour(t *testing.T) {
	out, err := Glamour(Markdown(Render(submit.Failed{Message: "boom"})), 80)
	if err != nil {
		t.Fatalf("Glamour() error = %v", err)
	}
	if !strings.Contains(out, "boom") {
		t.Errorf("Glamour() = %q, want it to contain the message", out)
	}
}
