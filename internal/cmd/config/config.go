// Package config provides CLI commands for managing tripplan configuration.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	appconfig "github.com/Iron-Ham/tripplan/internal/config"
	tuiconfig "github.com/Iron-Ham/tripplan/internal/tui/config"
)

// runEditor is swapped out in tests.
var runEditor = tuiconfig.Run

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify tripplan configuration",
	Long: `View or modify tripplan configuration.

Without arguments, opens an interactive configuration UI.
Use 'config show' to display configuration non-interactively.`,
	RunE: runConfigInteractive,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user's config file.

Keys use dot notation, e.g.:
  tripplan config set endpoint.backend redis
  tripplan config set client.timeout_seconds 30
  tripplan config set tui.show_breakdown false

Valid keys:
` + keyHelp(),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/tripplan/config.yaml with all available options.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Reset configuration to defaults",
	Long: `Reset configuration values to their defaults.

Without arguments, resets all configuration to defaults.
With a key argument, resets only that specific key.

Examples:
  tripplan config reset                  # Reset all to defaults
  tripplan config reset output.format    # Reset only output.format`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigReset,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configResetCmd)
}

// Register adds all config-related commands to the given parent command.
func Register(parent *cobra.Command) {
	parent.AddCommand(configCmd)
}

// items indexes the editable keys by name.
func items() map[string]tuiconfig.ConfigItem {
	out := make(map[string]tuiconfig.ConfigItem)
	for _, cat := range tuiconfig.Categories() {
		for _, item := range cat.Items {
			out[item.Key] = item
		}
	}
	return out
}

func keyHelp() string {
	var b strings.Builder
	for _, cat := range tuiconfig.Categories() {
		for _, item := range cat.Items {
			fmt.Fprintf(&b, "  %-24s - %s\n", item.Key, item.Description)
			if item.Type == tuiconfig.TypeSelect {
				fmt.Fprintf(&b, "  %-24s   Options: %s\n", "", strings.Join(item.Options, ", "))
			}
		}
	}
	return b.String()
}

func runConfigInteractive(cmd *cobra.Command, args []string) error {
	return runEditor()
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	cfg := appconfig.Get()
	if cfg.Endpoint.Redis.Password != "" {
		cfg.Endpoint.Redis.Password = "********"
	}

	fmt.Fprintln(out, "Current configuration:")
	fmt.Fprintln(out)

	// Show where config is being read from
	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Config file: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Config file: (none - using defaults)\n")
	}
	fmt.Fprintln(out)

	return writeYAML(out, cfg)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// parseValue converts value to the type item expects.
func parseValue(item tuiconfig.ConfigItem, value string) (any, error) {
	switch item.Type {
	case tuiconfig.TypeSelect:
		if !slices.Contains(item.Options, value) {
			return nil, fmt.Errorf("invalid value for %s: %s\nValid options: %s",
				item.Key, value, strings.Join(item.Options, ", "))
		}
		return value, nil
	case tuiconfig.TypeBool:
		if value != "true" && value != "false" {
			return nil, fmt.Errorf("invalid value for %s: expected true or false", item.Key)
		}
		return value == "true", nil
	case tuiconfig.TypeInt:
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: expected integer", item.Key)
		}
		if intVal < 0 {
			return nil, fmt.Errorf("invalid value for %s: must be non-negative", item.Key)
		}
		return intVal, nil
	default:
		return value, nil
	}
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	item, ok := items()[key]
	if !ok {
		return fmt.Errorf("unknown configuration key: %s\nRun 'tripplan config set --help' to see valid keys", key)
	}

	typedValue, err := parseValue(item, value)
	if err != nil {
		return err
	}

	viper.Set(key, typedValue)

	configFile, err := writeConfig()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %v\n", key, typedValue)
	fmt.Fprintf(cmd.OutOrStdout(), "Config saved to %s\n", configFile)
	return nil
}

// writeConfig persists the current viper settings to the user's config file.
func writeConfig() (string, error) {
	configFile := appconfig.ConfigFile()
	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := viper.WriteConfigAs(configFile); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return configFile, nil
}

const configHeader = `# tripplan configuration
#
# endpoint.backend: where the last-used service URL is kept (file, redis, memory)
# client.timeout_seconds: per-request timeout, 0 = none
# output.format: default output of 'tripplan plan' (text, markdown, json, yaml)
# metrics.addr: serve Prometheus metrics on this address, empty = off
#
# Every key can be overridden with TRIPPLAN_<SECTION>_<KEY>, e.g. TRIPPLAN_ENDPOINT_BACKEND.

`

func runConfigInit(cmd *cobra.Command, args []string) error {
	configFile := appconfig.ConfigFile()

	// Check if config file already exists
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists at %s\nUse 'tripplan config set' to modify values", configFile)
	}

	if err := os.MkdirAll(filepath.Dir(configFile), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	var body strings.Builder
	body.WriteString(configHeader)
	if err := writeYAML(&body, appconfig.Default()); err != nil {
		return err
	}

	if err := os.WriteFile(configFile, []byte(body.String()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created config file at %s\n", configFile)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if viper.ConfigFileUsed() != "" {
		fmt.Fprintf(out, "Active config: %s\n", viper.ConfigFileUsed())
	} else {
		fmt.Fprintf(out, "Default path: %s (not created)\n", appconfig.ConfigFile())
	}

	fmt.Fprintln(out, "\nSearch paths:")
	fmt.Fprintf(out, "  1. %s\n", appconfig.ConfigFile())
	fmt.Fprintf(out, "  2. ./config.yaml (current directory)\n")
	fmt.Fprintf(out, "\nEndpoint state: %s\n", appconfig.StateFile())
	fmt.Fprintln(out, "Environment variables: TRIPPLAN_* (e.g., TRIPPLAN_ENDPOINT_BACKEND)")
	return nil
}

func runConfigReset(cmd *cobra.Command, args []string) error {
	known := items()
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		for key, item := range known {
			viper.Set(key, item.Default)
		}
		fmt.Fprintln(out, "Reset all configuration to defaults.")
	} else {
		key := args[0]
		item, ok := known[key]
		if !ok {
			return fmt.Errorf("unknown configuration key: %s\nRun 'tripplan config set --help' to see valid keys", key)
		}
		viper.Set(key, item.Default)
		fmt.Fprintf(out, "Reset %s to default: %v\n", key, item.Default)
	}

	configFile, err := writeConfig()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Config saved to %s\n", configFile)
	return nil
}
