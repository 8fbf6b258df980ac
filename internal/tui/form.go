package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Iron-Ham/tripplan/internal/errors"
	"github.com/Iron-Ham/tripplan/internal/render"
	"github.com/Iron-Ham/tripplan/internal/submit"
	"github.com/Iron-Ham/tripplan/internal/trip"
	"github.com/Iron-Ham/tripplan/internal/tui/msg"
	"github.com/Iron-Ham/tripplan/internal/tui/styles"
)

// Field indexes, in focus order.
const (
	FieldDestination = iota
	FieldDays
	FieldTravelers
	FieldBudget
	FieldPreferences
	FieldEndpoint
	fieldCount
)

const (
	submitLabel = "Generate plan"
	busyLabel   = "Generating..."
)

var fieldLabels = [fieldCount]string{
	"Destination",
	"Days",
	"Travelers",
	"Budget (CNY)",
	"Preferences",
	"Service URL",
}

var fieldPlaceholders = [fieldCount]string{
	"成都",
	"3",
	"2",
	"6000",
	"food, museums, slow pace",
	"http://127.0.0.1:8000",
}

// Options controls how the result panel is drawn.
type Options struct {
	ResultWidth   int
	ShowBreakdown bool
}

// Model is the planning form.
type Model struct {
	ctx        context.Context
	controller *submit.Controller
	opts       Options

	inputs  [fieldCount]textinput.Model
	focus   int
	spinner spinner.Model

	busy      bool
	result    render.View
	hasResult bool

	width    int
	height   int
	quitting bool
}

// NewModel creates the form bound to c.
func NewModel(ctx context.Context, c *submit.Controller, opts Options) Model {
	var inputs [fieldCount]textinput.Model
	for i := range inputs {
		ti := textinput.New()
		ti.Placeholder = fieldPlaceholders[i]
		ti.CharLimit = 200
		ti.Width = 40
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[FieldDestination].Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Primary

	if opts.ResultWidth <= 0 {
		opts.ResultWidth = 72
	}

	return Model{
		ctx:        ctx,
		controller: c,
		opts:       opts,
		inputs:     inputs,
		spinner:    s,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, msg.LoadEndpoint(m.ctx, m.controller))
}

func (m Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width = message.Width
		m.height = message.Height
		return m, nil

	case msg.EndpointLoadedMsg:
		if m.inputs[FieldEndpoint].Value() == "" {
			m.inputs[FieldEndpoint].SetValue(message.Endpoint)
		}
		return m, nil

	case msg.SubmittedMsg:
		if errors.Is(message.Err, errors.ErrBusy) {
			return m, nil
		}
		m.busy = false
		if v := render.Render(message.State); v.Visible {
			m.result = v
			m.hasResult = true
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(message)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(message)
	}

	return m.updateFocused(message)
}

func (m Model) handleKey(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit

	case "tab", "down":
		return m.setFocus(m.focus + 1), nil

	case "shift+tab", "up":
		return m.setFocus(m.focus - 1), nil

	case "ctrl+s":
		return m.submit()

	case "enter":
		if m.focus == fieldCount-1 {
			return m.submit()
		}
		return m.setFocus(m.focus + 1), nil
	}

	return m.updateFocused(key)
}

func (m Model) updateFocused(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(message)
	return m, cmd
}

func (m Model) setFocus(i int) Model {
	i = (i + fieldCount) % fieldCount
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
	return m
}

// submit starts a submission unless one is outstanding.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.busy {
		return m, nil
	}
	m.busy = true
	return m, tea.Batch(
		m.spinner.Tick,
		msg.Submit(m.ctx, m.controller, m.inputs[FieldEndpoint].Value(), m.Fields()),
	)
}

// Fields returns the raw form values.
func (m Model) Fields() trip.Fields {
	return trip.Fields{
		Destination: m.inputs[FieldDestination].Value(),
		Days:        m.inputs[FieldDays].Value(),
		Travelers:   m.inputs[FieldTravelers].Value(),
		Budget:      m.inputs[FieldBudget].Value(),
		Preferences: m.inputs[FieldPreferences].Value(),
	}
}

// Busy reports whether the form is waiting for the service.
func (m Model) Busy() bool {
	return m.busy
}

// Result returns the last visible result and whether there is one.
func (m Model) Result() (render.View, bool) {
	return m.result, m.hasResult
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	headerWidth := m.opts.ResultWidth
	if m.width > 4 && m.width-4 < headerWidth {
		headerWidth = m.width - 4
	}
	b.WriteString(styles.Header.Width(headerWidth).Render("tripplan"))
	b.WriteString("\n")

	for i := range m.inputs {
		label := styles.FieldLabel.Render(fieldLabels[i])
		if i == m.focus {
			label = styles.FieldLabelFocused.Render(fieldLabels[i])
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, " ", m.inputs[i].View()))
		b.WriteString("\n")
	}

	if m.busy {
		b.WriteString(styles.SubmitButtonBusy.Render(m.spinner.View() + " " + busyLabel))
	} else {
		b.WriteString(styles.SubmitButton.Render(submitLabel))
	}
	b.WriteString("\n")

	if m.hasResult {
		b.WriteString("\n")
		b.WriteString(render.Terminal(m.result, render.TerminalOptions{
			Width:         m.opts.ResultWidth,
			ShowBreakdown: m.opts.ShowBreakdown,
		}))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHelp() string {
	keyStyle := styles.HelpKey
	return styles.HelpBar.Render(
		keyStyle.Render("tab") + " next field  " +
			keyStyle.Render("shift+tab") + " previous  " +
			keyStyle.Render("ctrl+s") + " generate  " +
			keyStyle.Render("esc") + " quit",
	)
}
