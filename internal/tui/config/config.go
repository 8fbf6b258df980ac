// Package config is the interactive editor opened by a bare `tripplan config`.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/viper"

	"github.com/Iron-Ham/tripplan/internal/config"
	"github.com/Iron-Ham/tripplan/internal/tui/styles"
)

// ItemType is how an item is edited.
type ItemType string

const (
	TypeString ItemType = "string"
	TypeInt    ItemType = "int"
	TypeBool   ItemType = "bool"
	TypeSelect ItemType = "select"
)

// ConfigItem is one editable key.
type ConfigItem struct {
	Key         string
	Label       string
	Description string
	Type        ItemType
	Options     []string // For TypeSelect
	Default     any
}

// Category groups items under a heading.
type Category struct {
	Name  string
	Items []ConfigItem
}

// Model is the Bubbletea model for the config editor.
type Model struct {
	categories    []Category
	categoryIndex int
	itemIndex     int
	width         int
	height        int
	editing       bool
	textInput     textinput.Model
	selectIndex   int
	errorMsg      string
	infoMsg       string
	quitting      bool
	configFile    string
}

// Categories returns the editable settings, with defaults taken from
// config.Default.
func Categories() []Category {
	d := config.Default()
	return []Category{
		{
			Name: "Endpoint store",
			Items: []ConfigItem{
				{Key: "endpoint.backend", Label: "Backend", Description: "Where the last-used service URL is remembered", Type: TypeSelect, Options: config.ValidBackends(), Default: d.Endpoint.Backend},
				{Key: "endpoint.state_file", Label: "State file", Description: "YAML file for the file backend (empty = config dir)", Type: TypeString, Default: d.Endpoint.StateFile},
				{Key: "endpoint.redis.addr", Label: "Redis address", Description: "host:port of the redis backend", Type: TypeString, Default: d.Endpoint.Redis.Addr},
				{Key: "endpoint.redis.db", Label: "Redis DB", Description: "Redis logical database number", Type: TypeInt, Default: d.Endpoint.Redis.DB},
				{Key: "endpoint.redis.prefix", Label: "Redis prefix", Description: "Prefix of the redis key holding the URL", Type: TypeString, Default: d.Endpoint.Redis.Prefix},
			},
		},
		{
			Name: "Client",
			Items: []ConfigItem{
				{Key: "client.user_agent", Label: "User agent", Description: "User-Agent header sent to the planning service", Type: TypeString, Default: d.Client.UserAgent},
				{Key: "client.timeout_seconds", Label: "Timeout (s)", Description: "Per-request timeout in seconds (0 = none)", Type: TypeInt, Default: d.Client.TimeoutSeconds},
			},
		},
		{
			Name: "Display",
			Items: []ConfigItem{
				{Key: "tui.show_breakdown", Label: "Show breakdown", Description: "Show per-category costs under the summary cards", Type: TypeBool, Default: d.TUI.ShowBreakdown},
				{Key: "tui.result_width", Label: "Result width", Description: "Width of the result panel (40-200)", Type: TypeInt, Default: d.TUI.ResultWidth},
				{Key: "output.format", Label: "Plan output", Description: "Default output of `tripplan plan`", Type: TypeSelect, Options: config.ValidOutputFormats(), Default: d.Output.Format},
			},
		},
		{
			Name: "Logging",
			Items: []ConfigItem{
				{Key: "logging.enabled", Label: "Enabled", Description: "Write debug logs to the log directory", Type: TypeBool, Default: d.Logging.Enabled},
				{Key: "logging.level", Label: "Level", Description: "Minimum level written", Type: TypeSelect, Options: config.ValidLogLevels(), Default: d.Logging.Level},
				{Key: "logging.max_size_mb", Label: "Max size (MB)", Description: "Rotate the log file at this size", Type: TypeInt, Default: d.Logging.MaxSizeMB},
				{Key: "logging.max_backups", Label: "Max backups", Description: "Rotated files to keep", Type: TypeInt, Default: d.Logging.MaxBackups},
			},
		},
	}
}

// New creates a config editor that saves to config.ConfigFile.
func New() Model {
	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 40

	return Model{
		categories: Categories(),
		textInput:  ti,
		configFile: config.ConfigFile(),
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		m.errorMsg = ""
		m.infoMsg = ""

		if m.editing {
			return m.handleEditingKeypress(msg)
		}

		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "tab":
			m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
			m.itemIndex = 0
		case "shift+tab":
			m.categoryIndex = (m.categoryIndex - 1 + len(m.categories)) % len(m.categories)
			m.itemIndex = 0
		case "enter", " ":
			m.beginEdit()
		case "r":
			item := m.currentItem()
			viper.Set(item.Key, item.Default)
			if m.save() {
				m.infoMsg = fmt.Sprintf("Reset %s to default", item.Label)
			}
		}
	}
	return m, nil
}

// move steps the selection by delta items, crossing category boundaries.
func (m *Model) move(delta int) {
	m.itemIndex += delta
	if m.itemIndex < 0 {
		m.categoryIndex = (m.categoryIndex - 1 + len(m.categories)) % len(m.categories)
		m.itemIndex = len(m.categories[m.categoryIndex].Items) - 1
	} else if m.itemIndex >= len(m.categories[m.categoryIndex].Items) {
		m.categoryIndex = (m.categoryIndex + 1) % len(m.categories)
		m.itemIndex = 0
	}
}

func (m *Model) beginEdit() {
	item := m.currentItem()
	switch item.Type {
	case TypeBool:
		viper.Set(item.Key, !viper.GetBool(item.Key))
		m.save()
	case TypeSelect:
		m.editing = true
		m.selectIndex = max(slices.Index(item.Options, viper.GetString(item.Key)), 0)
	default:
		m.editing = true
		m.textInput.SetValue(displayValue(item))
		m.textInput.Focus()
	}
}

func (m Model) handleEditingKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	item := m.currentItem()

	switch msg.String() {
	case "esc":
		m.editing = false
		m.textInput.SetValue("")
		return m, nil

	case "enter":
		value := m.textInput.Value()
		if item.Type == TypeSelect {
			value = item.Options[m.selectIndex]
		}
		if err := setValue(item, value); err != nil {
			m.errorMsg = err.Error()
			return m, nil
		}
		m.save()
		m.editing = false
		m.textInput.SetValue("")
		return m, nil

	case "up", "k":
		if item.Type == TypeSelect {
			m.selectIndex = (m.selectIndex - 1 + len(item.Options)) % len(item.Options)
			return m, nil
		}

	case "down", "j":
		if item.Type == TypeSelect {
			m.selectIndex = (m.selectIndex + 1) % len(item.Options)
			return m, nil
		}
	}

	if item.Type == TypeSelect {
		return m, nil
	}
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// setValue parses value for item and stores it in viper.
func setValue(item ConfigItem, value string) error {
	switch item.Type {
	case TypeInt:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("expected integer value")
		}
		if n < 0 {
			return fmt.Errorf("value must be non-negative")
		}
		viper.Set(item.Key, n)
	case TypeBool:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("expected true or false")
		}
		viper.Set(item.Key, b)
	case TypeSelect:
		if !slices.Contains(item.Options, value) {
			return fmt.Errorf("invalid option: %s", value)
		}
		viper.Set(item.Key, value)
	default:
		viper.Set(item.Key, value)
	}
	return nil
}

func (m *Model) save() bool {
	if err := os.MkdirAll(filepath.Dir(m.configFile), 0755); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to create config directory: %v", err)
		return false
	}
	if err := viper.WriteConfigAs(m.configFile); err != nil {
		m.errorMsg = fmt.Sprintf("Failed to save config: %v", err)
		return false
	}
	m.infoMsg = "Saved!"
	return true
}

func (m Model) currentItem() ConfigItem {
	return m.categories[m.categoryIndex].Items[m.itemIndex]
}

func displayValue(item ConfigItem) string {
	switch item.Type {
	case TypeBool:
		return strconv.FormatBool(viper.GetBool(item.Key))
	case TypeInt:
		return strconv.Itoa(viper.GetInt(item.Key))
	default:
		return viper.GetString(item.Key)
	}
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(styles.Header.Width(m.width - 4).Render("tripplan configuration"))
	b.WriteString("\n")
	b.WriteString(styles.Muted.Render("Config file: " + m.configFile))
	b.WriteString("\n\n")

	for ci, cat := range m.categories {
		catStyle := styles.Muted.Bold(true)
		if ci == m.categoryIndex {
			catStyle = styles.Primary.Bold(true)
		}
		b.WriteString(catStyle.Render("[ " + cat.Name + " ]"))
		b.WriteString("\n")
		for ii, item := range cat.Items {
			b.WriteString(renderItem(item, ci == m.categoryIndex && ii == m.itemIndex))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if m.editing {
		b.WriteString(m.renderEditOverlay())
	} else {
		b.WriteString(styles.Muted.Render(m.currentItem().Description))
	}
	b.WriteString("\n")

	if m.errorMsg != "" {
		b.WriteString(styles.ErrorMsg.Render("Error: " + m.errorMsg))
		b.WriteString("\n")
	}
	if m.infoMsg != "" {
		b.WriteString(styles.SuccessMsg.Render(m.infoMsg))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func renderItem(item ConfigItem, selected bool) string {
	label := fmt.Sprintf("%-18s", item.Label)
	value := displayValue(item)
	if selected {
		return fmt.Sprintf("  %s %s  %s",
			styles.Secondary.Render(">"),
			styles.Text.Bold(true).Render(label),
			styles.Primary.Render(value))
	}
	return fmt.Sprintf("    %s  %s", styles.Muted.Render(label), styles.Text.Render(value))
}

func (m Model) renderEditOverlay() string {
	item := m.currentItem()
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.PrimaryColor).
		Padding(1, 2).
		Width(50)

	var content strings.Builder
	if item.Type == TypeSelect {
		content.WriteString("Select " + item.Label + ":\n\n")
		for i, opt := range item.Options {
			if i == m.selectIndex {
				content.WriteString(styles.Primary.Bold(true).Render(" > "+opt) + "\n")
			} else {
				content.WriteString(styles.Text.Render("   "+opt) + "\n")
			}
		}
		content.WriteString("\n" + styles.Muted.Render("j/k to select, enter to confirm, esc to cancel"))
	} else {
		content.WriteString("Edit " + item.Label + ":\n\n")
		content.WriteString(m.textInput.View())
		content.WriteString("\n\n" + styles.Muted.Render("enter to save, esc to cancel"))
	}
	return box.Render(content.String())
}

func (m Model) renderHelp() string {
	key := styles.HelpKey
	if m.editing {
		return styles.HelpBar.Render(key.Render("enter") + " save  " + key.Render("esc") + " cancel")
	}
	return styles.HelpBar.Render(
		key.Render("j/k") + " navigate  " +
			key.Render("tab") + " next category  " +
			key.Render("enter/space") + " edit  " +
			key.Render("r") + " reset  " +
			key.Render("q") + " quit",
	)
}

// Run starts the interactive config editor.
func Run() error {
	p := tea.NewProgram(New(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
