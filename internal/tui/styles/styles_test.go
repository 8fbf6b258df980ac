package styles

import (
	"strings"
	"testing"
)

func TestPillColor(t *testing.T) {
	tests := []struct {
		tone     string
		expected string // Expected color hex value
	}{
		{"ok", "#10B981"},
		{"warn", "#F59E0B"},
		{"error", "#F87171"},
		{"info", "#60A5FA"},
		{"unknown", "#9CA3AF"}, // Should fall back to MutedColor
	}

	for _, tt := range tests {
		t.Run(tt.tone, func(t *testing.T) {
			got := PillColor(tt.tone)
			if string(got) != tt.expected {
				t.Errorf("PillColor(%q) = %q, want %q", tt.tone, got, tt.expected)
			}
		})
	}
}

func TestPillIcon(t *testing.T) {
	tests := []struct {
		tone     string
		expected string
	}{
		{"ok", "✓"},
		{"warn", "!"},
		{"error", "✗"},
		{"info", "●"},
		{"", "○"}, // Should fall back to default
	}

	for _, tt := range tests {
		t.Run(tt.tone, func(t *testing.T) {
			got := PillIcon(tt.tone)
			if got != tt.expected {
				t.Errorf("PillIcon(%q) = %q, want %q", tt.tone, got, tt.expected)
			}
		})
	}
}

func TestRenderPill(t *testing.T) {
	got := RenderPill("warn", "over budget")
	if !strings.Contains(got, "over budget") {
		t.Errorf("RenderPill() = %q, want it to contain the label", got)
	}
	if !strings.Contains(got, "!") {
		t.Errorf("RenderPill() = %q, want it to contain the warn icon", got)
	}
}
