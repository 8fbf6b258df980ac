// Package render maps a submission state to what the operator sees.
//
// Render is pure: it turns a submit.State into a View, a display tree with no
// styling. Text, Markdown and Terminal then lay a View out for a particular
// surface. Every state kind has a distinct View; an unknown kind renders as a
// failure rather than as nothing.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Iron-Ham/tripplan/internal/submit"
	"github.com/Iron-Ham/tripplan/internal/trip"
)

// ViewKind identifies which panel a View describes.
type ViewKind string

const (
	ViewIdle      ViewKind = "idle"
	ViewBusy      ViewKind = "busy"
	ViewSuccess   ViewKind = "success"
	ViewNeedsInfo ViewKind = "needs_info"
	ViewFailed    ViewKind = "failed"
)

// Tone is the visual weight of a pill.
type Tone string

const (
	ToneOK    Tone = "ok"
	ToneWarn  Tone = "warn"
	ToneError Tone = "error"
	ToneInfo  Tone = "info"
)

// BudgetState values.
const (
	BudgetWithin = "within"
	BudgetOver   = "over"
)

// Display strings.
const (
	TitleNeedsInfo   = "Input check"
	TitleSuccess     = "Plan result"
	TitleFailed      = "Request failed"
	TitleBusy        = "Generating..."
	PillIncomplete   = "Incomplete"
	PillWithin       = "within budget"
	PillOver         = "over budget"
	PillFailed       = "Network or service error"
	NeedsInfoDefault = "Please complete the required fields and try again."
	FailedDefault    = "Unknown error"
	FailedHint       = "Make sure the planning service is running and the endpoint is reachable."
	NoRisks          = "No high-risk items"
	NoPreferences    = "not specified"
)

// Pill is the status badge next to a title.
type Pill struct {
	Label string `json:"label"`
	Tone  Tone   `json:"tone"`
}

// Card is a labelled value.
type Card struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// DayEntry is one itinerary row.
type DayEntry struct {
	Day       int    `json:"day"`
	Label     string `json:"label"`
	Morning   string `json:"morning"`
	Afternoon string `json:"afternoon"`
	Evening   string `json:"evening"`
}

// View is the rendered form of a State. Visible is false for Idle and Busy:
// the result panel stays hidden until the first terminal state.
type View struct {
	Kind            ViewKind   `json:"kind"`
	Visible         bool       `json:"visible"`
	Title           string     `json:"title"`
	Pill            Pill       `json:"pill"`
	Message         string     `json:"message,omitempty"`
	Hint            string     `json:"hint,omitempty"`
	BudgetState     string     `json:"budget_state,omitempty"`
	Cards           []Card     `json:"cards,omitempty"`
	Chips           []string   `json:"chips,omitempty"`
	Itinerary       []DayEntry `json:"itinerary,omitempty"`
	Risks           []string   `json:"risks,omitempty"`
	RiskPlaceholder string     `json:"risk_placeholder,omitempty"`
	Missing         []string   `json:"missing,omitempty"`
	Breakdown       []Card     `json:"breakdown,omitempty"`
}

// Render returns the View for s.
func Render(s submit.State) View {
	switch st := s.(type) {
	case submit.Idle:
		return View{Kind: ViewIdle}
	case submit.Busy:
		return View{Kind: ViewBusy, Title: TitleBusy, Pill: Pill{Label: "busy", Tone: ToneInfo}}
	case submit.NeedsInfo:
		return needsInfo(st.Info)
	case submit.Success:
		return success(st.Result)
	case submit.Failed:
		return failed(st.Message)
	default:
		return failed(fmt.Sprintf("unrecognized state %T", s))
	}
}

func needsInfo(info trip.NeedsInfo) View {
	msg := info.Message
	if msg == "" {
		msg = NeedsInfoDefault
	}
	missing := make([]string, len(info.MissingFields))
	copy(missing, info.MissingFields)
	return View{
		Kind:    ViewNeedsInfo,
		Visible: true,
		Title:   TitleNeedsInfo,
		Pill:    Pill{Label: PillIncomplete, Tone: ToneError},
		Message: msg,
		Missing: missing,
	}
}

func success(p trip.PlanResult) View {
	v := View{
		Kind:    ViewSuccess,
		Visible: true,
		Title:   TitleSuccess,
	}

	if p.WithinBudget() {
		v.BudgetState = BudgetWithin
		v.Pill = Pill{Label: PillWithin, Tone: ToneOK}
	} else {
		v.BudgetState = BudgetOver
		v.Pill = Pill{Label: PillOver, Tone: ToneWarn}
	}

	v.Cards = []Card{
		{Label: "Estimated total", Value: FormatCurrency(p.PriceBreakdown.Total)},
		{Label: "Your budget", Value: FormatCurrency(p.RequestSummary.BudgetCNY)},
		{Label: "Human handoff", Value: yesNo(p.HandoffToHuman)},
	}

	s := p.RequestSummary
	prefs := strings.Join(s.Preferences, " / ")
	if prefs == "" {
		prefs = NoPreferences
	}
	v.Chips = []string{
		"Destination: " + s.Destination,
		"Days: " + strconv.Itoa(s.Days),
		"Travelers: " + strconv.Itoa(s.Travelers),
		"Preferences: " + prefs,
	}
	if p.Provider != "" {
		v.Chips = append(v.Chips, "Provider: "+p.Provider)
	}

	v.Itinerary = make([]DayEntry, 0, len(p.Itinerary))
	for _, d := range p.Itinerary {
		v.Itinerary = append(v.Itinerary, DayEntry{
			Day:       d.Day,
			Label:     "Day " + strconv.Itoa(d.Day),
			Morning:   d.Morning,
			Afternoon: d.Afternoon,
			Evening:   d.Evening,
		})
	}

	if len(p.RiskFlags) > 0 {
		v.Risks = append([]string(nil), p.RiskFlags...)
	} else {
		v.RiskPlaceholder = NoRisks
	}

	v.Breakdown = breakdown(p.PriceBreakdown)
	return v
}

// breakdown lists the non-zero cost lines the service reported.
func breakdown(b trip.PriceBreakdown) []Card {
	lines := []struct {
		label string
		value float64
	}{
		{"Transport", b.Transport},
		{"Hotel", b.Hotel},
		{"Tickets", b.Tickets},
		{"Meals", b.Meals},
		{"Service fee", b.ServiceFee},
	}
	var cards []Card
	for _, l := range lines {
		if l.value != 0 {
			cards = append(cards, Card{Label: l.label, Value: FormatCurrency(l.value)})
		}
	}
	return cards
}

func failed(message string) View {
	if message == "" {
		message = FailedDefault
	}
	return View{
		Kind:    ViewFailed,
		Visible: true,
		Title:   TitleFailed,
		Pill:    Pill{Label: PillFailed, Tone: ToneError},
		Message: message,
		Hint:    FailedHint,
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
